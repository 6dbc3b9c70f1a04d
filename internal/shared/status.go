package shared

// Trạng thái dùng chung cho course, chapter, lesson, user.
// StatusDeleted chỉ được set qua soft delete, không nhận từ request create/update.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusDraft    = "draft"
	StatusArchived = "archived"
	StatusDeleted  = "deleted"
)

// EditableStatuses - các giá trị client được phép gửi khi create/update
var EditableStatuses = []interface{}{
	StatusActive,
	StatusInactive,
	StatusDraft,
	StatusArchived,
}

// SearchableStatuses - filter theo status được phép tìm cả record đã xóa
var SearchableStatuses = append(append([]interface{}{}, EditableStatuses...), StatusDeleted)
