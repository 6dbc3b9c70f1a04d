package model

// Address - địa chỉ của user, chỉ đọc trong admin API
type Address struct {
	ID        int64   `json:"id" db:"id"`
	UserID    int64   `json:"user_id" db:"user_id"`
	Street    string  `json:"street" db:"street"`
	Ward      *string `json:"ward" db:"ward"`
	District  *string `json:"district" db:"district"`
	City      string  `json:"city" db:"city"`
	IsDefault bool    `json:"is_default" db:"is_default"`
}

type AddressRes struct {
	ID        int64   `json:"id"`
	Street    string  `json:"street,omitempty"`
	Ward      *string `json:"ward,omitempty"`
	District  *string `json:"district,omitempty"`
	City      string  `json:"city,omitempty"`
	IsDefault bool    `json:"is_default"`
}

func (a *Address) ToResponse() AddressRes {
	return AddressRes{
		ID:        a.ID,
		Street:    a.Street,
		Ward:      a.Ward,
		District:  a.District,
		City:      a.City,
		IsDefault: a.IsDefault,
	}
}

// ToResponses - nil/empty input trả về slice rỗng (JSON "[]")
func ToResponses(addrs []Address) []AddressRes {
	out := make([]AddressRes, 0, len(addrs))
	for i := range addrs {
		out = append(out, addrs[i].ToResponse())
	}
	return out
}
