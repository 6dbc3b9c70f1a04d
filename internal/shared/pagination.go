package shared

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrInvalidSort = errors.New("invalid sort parameter")

// PageRequest - page (0-based), page size và sort đã được chuẩn hóa
type PageRequest struct {
	Page       int
	PageSize   int
	SortColumn string
	SortDesc   bool
}

// Offset tính OFFSET cho SQL
func (p PageRequest) Offset() int {
	return p.Page * p.PageSize
}

// OrderBy trả về mệnh đề ORDER BY đã whitelist, thêm id làm tie-breaker
// để kết quả phân trang ổn định
func (p PageRequest) OrderBy() string {
	return p.OrderByAlias("")
}

// OrderByAlias giống OrderBy nhưng prefix column bằng table alias (vd: "u")
func (p PageRequest) OrderByAlias(alias string) string {
	prefix := ""
	if alias != "" {
		prefix = alias + "."
	}
	dir := "ASC"
	if p.SortDesc {
		dir = "DESC"
	}
	if p.SortColumn == "id" {
		return fmt.Sprintf("%sid %s", prefix, dir)
	}
	return fmt.Sprintf("%s%s %s, %sid %s", prefix, p.SortColumn, dir, prefix, dir)
}

// NewPageRequest chuẩn hóa page/pageSize và parse sort
//   - page < 0 → 0
//   - pageSize <= 0 → defaultSize, pageSize > maxSize → maxSize
//   - page bị chặn để page*pageSize không vượt MaxInt32 (trả về page rỗng)
//   - sort: "field" hoặc "field,asc|desc"; field phải nằm trong allowed
//     (map từ tên field API sang tên column)
func NewPageRequest(page, pageSize int, sort string, allowed map[string]string, defaultSort string, defaultSize, maxSize int) (PageRequest, error) {
	if page < 0 {
		page = 0
	}
	if pageSize <= 0 {
		pageSize = defaultSize
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}
	if maxPage := math.MaxInt32 / pageSize; page > maxPage {
		page = maxPage
	}

	column, desc, err := ParseSort(sort, allowed, defaultSort)
	if err != nil {
		return PageRequest{}, err
	}

	return PageRequest{
		Page:       page,
		PageSize:   pageSize,
		SortColumn: column,
		SortDesc:   desc,
	}, nil
}

// ParseSort parse "field[,direction]" theo whitelist
func ParseSort(sort string, allowed map[string]string, defaultSort string) (string, bool, error) {
	sort = strings.TrimSpace(sort)
	if sort == "" {
		sort = defaultSort
	}

	field, direction, _ := strings.Cut(sort, ",")
	field = strings.ToLower(strings.TrimSpace(field))
	direction = strings.ToLower(strings.TrimSpace(direction))

	column, ok := allowed[field]
	if !ok {
		return "", false, fmt.Errorf("%w: unknown sort field %q", ErrInvalidSort, field)
	}

	switch direction {
	case "", "asc":
		return column, false, nil
	case "desc":
		return column, true, nil
	default:
		return "", false, fmt.Errorf("%w: unknown sort direction %q", ErrInvalidSort, direction)
	}
}

// TotalPages làm tròn lên; pageSize luôn > 0 sau NewPageRequest
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// PageLimits - default và max page size lấy từ config
type PageLimits struct {
	DefaultSize int
	MaxSize     int
}

// DefaultPageLimits dùng khi service được khởi tạo không có config (test, worker)
var DefaultPageLimits = PageLimits{DefaultSize: 10, MaxSize: 100}
