package shared

// Task types cho asynq (API enqueue, cmd/worker xử lý)
const (
	TypeCascadeCourseSoftDelete = "course:cascade_soft_delete"
	TypeReconcileDeletedCourses = "course:reconcile_deleted"

	QueueCourse = "course"
)

// CascadeSoftDeletePayload - soft delete chapters + lessons của một course
type CascadeSoftDeletePayload struct {
	CourseID int64 `json:"course_id"`
}

// ReconcileDeletedCoursesPayload - job định kỳ, quét course đã xóa nhưng còn con active
type ReconcileDeletedCoursesPayload struct {
	Limit int `json:"limit"`
}
