package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"course-admin-backend/internal/domains/user/model"
	"course-admin-backend/internal/domains/user/service"
	"course-admin-backend/internal/shared"
	"course-admin-backend/internal/shared/response"
	"course-admin-backend/internal/shared/utils"
)

const msgUserDeleted = "User soft deleted successfully."

type UserHandler struct {
	userService service.ServiceInterface
}

func NewUserHandler(userService service.ServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser - POST /api/v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req model.UserInfoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	res, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, res)
}

// UpdateUser - PUT /api/v1/users/:user_id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := utils.ParseID(c, "user_id")
	if !ok {
		h.handleError(c, model.ErrInvalidID)
		return
	}

	var req model.UserInfoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	res, err := h.userService.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, res)
}

// DeleteUser - DELETE /api/v1/users/:user_id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := utils.ParseID(c, "user_id")
	if !ok {
		h.handleError(c, model.ErrInvalidID)
		return
	}

	if err := h.userService.SoftDeleteUser(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Message(c, msgUserDeleted)
}

// GetUser - GET /api/v1/users/:user_id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := utils.ParseID(c, "user_id")
	if !ok {
		h.handleError(c, model.ErrInvalidID)
		return
	}

	res, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, res)
}

// SearchUsers - GET /api/v1/users
func (h *UserHandler) SearchUsers(c *gin.Context) {
	var req model.UserSearchReq
	if err := utils.BindOptionalJSON(c, &req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	query := service.SearchQuery{
		Page:     utils.QueryInt(c, "page", 0),
		PageSize: utils.QueryInt(c, "page_size", 0),
		Sort:     c.Query("sort"),
	}

	res, err := h.userService.SearchUsers(c.Request.Context(), req, query)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, res)
}

func (h *UserHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, shared.ErrValidation) {
		response.ValidationError(c, err)
		return
	}

	status := model.ToHTTPStatus(err)
	if status >= 500 {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("User request failed")
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}
