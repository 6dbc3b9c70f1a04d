package main

import (
	"github.com/hibiken/asynq"

	courseJob "course-admin-backend/internal/domains/course/job"
	"course-admin-backend/internal/shared"
	"course-admin-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	cascadeSoftDelete *courseJob.CascadeSoftDeleteHandler
	reconcileDeleted  *courseJob.ReconcileDeletedHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		cascadeSoftDelete: courseJob.NewCascadeSoftDeleteHandler(c.CascadeService),
		reconcileDeleted:  courseJob.NewReconcileDeletedHandler(c.CascadeService),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeCascadeCourseSoftDelete, h.cascadeSoftDelete.ProcessTask)
	mux.HandleFunc(shared.TypeReconcileDeletedCourses, h.reconcileDeleted.ProcessTask)
}
