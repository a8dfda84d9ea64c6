package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskapi/internal/adapter/http/dto"
	"taskapi/internal/adapter/http/mapper"
	"taskapi/internal/adapter/http/validation"
	"taskapi/internal/core/ports"
	"taskapi/pkg/apierrors"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	q, err := validation.BuildUserQuery(c.Request.URL.Query())
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidQuery, "invalid user query")
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListUser, "failed to list users")
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItems(users))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		respondInvalidID(c, apierrors.MsgInvalidUserID)
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailGetUser, "failed to get user", zap.Stringer("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if _, err := bindBody(c, &req); err != nil {
		respondError(c, err, apierrors.MsgInvalidPayload, "invalid user payload")
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), validation.BuildCreateUserInput(req))
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateUser, "failed to create user")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToUserItem(user))
}

func (h *UserHandler) ReplaceUser(c *gin.Context) {
	h.update(c, true)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	h.update(c, false)
}

func (h *UserHandler) update(c *gin.Context, full bool) {
	userID, ok := parseID(c)
	if !ok {
		respondInvalidID(c, apierrors.MsgInvalidUserID)
		return
	}

	var req dto.UpdateUserRequest
	raw, err := bindBody(c, &req)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidPayload, "invalid user payload")
		return
	}

	in, err := validation.BuildUpdateUserInput(req, raw, full)
	if err != nil {
		respondError(c, err, apierrors.MsgInvalidPayload, "invalid user payload")
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, in)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateUser, "failed to update user", zap.Stringer("user_id", userID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		respondInvalidID(c, apierrors.MsgInvalidUserID)
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteUser, "failed to delete user", zap.Stringer("user_id", userID))
		return
	}

	c.Status(http.StatusNoContent)
}
