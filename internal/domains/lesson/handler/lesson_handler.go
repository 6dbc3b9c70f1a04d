package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"course-admin-backend/internal/domains/lesson/model"
	"course-admin-backend/internal/domains/lesson/service"
	"course-admin-backend/internal/shared/response"
	"course-admin-backend/internal/shared/utils"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// GetLesson - GET /api/v1/lessons/:lesson_id
func (h *Handler) GetLesson(c *gin.Context) {
	id, ok := utils.ParseID(c, "lesson_id")
	if !ok {
		response.BadRequest(c, model.ErrInvalidID.Error())
		return
	}

	res, err := h.service.GetLesson(c.Request.Context(), id)
	if err != nil {
		status := model.ToHTTPStatus(err)
		if status >= 500 {
			log.Error().Err(err).Int64("lesson_id", id).Msg("Get lesson failed")
			response.InternalServerError(c, "Internal server error")
			return
		}
		response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
		return
	}

	response.OK(c, res)
}
