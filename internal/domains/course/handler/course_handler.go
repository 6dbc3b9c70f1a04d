package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"course-admin-backend/internal/domains/course/model"
	"course-admin-backend/internal/domains/course/service"
	"course-admin-backend/internal/shared"
	"course-admin-backend/internal/shared/response"
	"course-admin-backend/internal/shared/utils"
)

const msgCourseDeleted = "Course soft deleted successfully."

// Handler - HTTP Handler cho course
type Handler struct {
	service service.ServiceInterface
}

// NewHandler - Constructor with DI
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// CreateCourse - POST /api/v1/courses
func (h *Handler) CreateCourse(c *gin.Context) {
	var req model.CourseCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	res, err := h.service.CreateCourse(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, res)
}

// UpdateCourse - PUT /api/v1/courses/:course_id
func (h *Handler) UpdateCourse(c *gin.Context) {
	id, ok := utils.ParseID(c, "course_id")
	if !ok {
		h.handleError(c, model.ErrInvalidID)
		return
	}

	var req model.CourseUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	res, err := h.service.UpdateCourse(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, res)
}

// DeleteCourse - DELETE /api/v1/courses/:course_id (soft delete)
func (h *Handler) DeleteCourse(c *gin.Context) {
	id, ok := utils.ParseID(c, "course_id")
	if !ok {
		h.handleError(c, model.ErrInvalidID)
		return
	}

	if err := h.service.SoftDeleteCourse(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Message(c, msgCourseDeleted)
}

// GetCourse - GET /api/v1/courses/:course_id
func (h *Handler) GetCourse(c *gin.Context) {
	id, ok := utils.ParseID(c, "course_id")
	if !ok {
		h.handleError(c, model.ErrInvalidID)
		return
	}

	res, err := h.service.GetCourse(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, res)
}

// GetCourses - GET /api/v1/courses
// Filter trong JSON body (optional), query: page, page_size, sort
func (h *Handler) GetCourses(c *gin.Context) {
	var req model.CourseSearchReq
	if err := utils.BindOptionalJSON(c, &req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	query := service.SearchQuery{
		Page:     utils.QueryInt(c, "page", 0),
		PageSize: utils.QueryInt(c, "page_size", 0),
		Sort:     c.Query("sort"),
	}

	res, err := h.service.GetCourses(c.Request.Context(), req, query)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, res)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	if errors.Is(err, shared.ErrValidation) {
		response.ValidationError(c, err)
		return
	}

	status := model.ToHTTPStatus(err)
	if status >= 500 {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("Course request failed")
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}
