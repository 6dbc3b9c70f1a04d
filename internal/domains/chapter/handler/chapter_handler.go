package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"course-admin-backend/internal/domains/chapter/model"
	"course-admin-backend/internal/domains/chapter/service"
	"course-admin-backend/internal/shared/response"
	"course-admin-backend/internal/shared/utils"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// GetChapter - GET /api/v1/chapters/:chapter_id
func (h *Handler) GetChapter(c *gin.Context) {
	id, ok := utils.ParseID(c, "chapter_id")
	if !ok {
		response.BadRequest(c, model.ErrInvalidID.Error())
		return
	}

	res, err := h.service.GetChapter(c.Request.Context(), id)
	if err != nil {
		status := model.ToHTTPStatus(err)
		if status >= 500 {
			log.Error().Err(err).Int64("chapter_id", id).Msg("Get chapter failed")
			response.InternalServerError(c, "Internal server error")
			return
		}
		response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
		return
	}

	response.OK(c, res)
}
