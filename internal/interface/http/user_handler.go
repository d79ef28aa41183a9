package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-management/internal/application"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/pkg/helpers"
	"github.com/oksasatya/go-ddd-user-management/pkg/response"
	"github.com/oksasatya/go-ddd-user-management/pkg/validation"
)

type UserHandler struct {
	UseCases *application.UserUseCases
	Logger   *logrus.Logger
}

func NewUserHandler(uc *application.UserUseCases, logger *logrus.Logger) *UserHandler {
	return &UserHandler{UseCases: uc, Logger: logger}
}

type createUserRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=255" example:"John Doe"`
	Email    string `json:"email" binding:"required,email,max=255" example:"john@example.com"`
	Password string `json:"password" binding:"required,min=6,max=72" example:"password123"`
}

type updateUserRequest struct {
	Name  string `json:"name" binding:"required,min=3,max=255" example:"John Updated"`
	Email string `json:"email" binding:"required,email,max=255" example:"john.updated@example.com"`
}

type listUsersQuery struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=100"`
}

type searchUsersQuery struct {
	Q    string `form:"q" binding:"required"`
	Size int    `form:"size" binding:"omitempty,min=1,max=50"`
}

// Create godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param payload body createUserRequest true "User payload"
// @Success 201 {object} response.APIResponse[application.UserDTO]
// @Failure 409 {object} response.APIResponse[any]
// @Failure 422 {object} response.APIResponse[any]
// @Router /api/v1/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	out, err := h.UseCases.Create.Execute(c.Request.Context(), application.CreateUserRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, out, "user created", nil)
}

// List godoc
// @Summary List users, newest first
// @Tags users
// @Produce json
// @Param page query int false "page number, default 1"
// @Param per_page query int false "page size 1..100, default 15"
// @Success 200 {object} response.APIResponse[[]application.UserDTO]
// @Failure 422 {object} response.APIResponse[any]
// @Router /api/v1/users [get]
func (h *UserHandler) List(c *gin.Context) {
	var q listUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid query", validation.ToDetails(err))
		return
	}
	out, err := h.UseCases.List.Execute(c.Request.Context(), application.ListUsersRequest{Page: q.Page, PerPage: q.PerPage})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, out.Users, "users", response.PageMeta{
		Total:      out.Total,
		Page:       out.Page,
		PerPage:    out.PerPage,
		TotalPages: out.TotalPages,
	})
}

// Search godoc
// @Summary Free-text search over name and email
// @Tags users
// @Produce json
// @Param q query string true "search text"
// @Param size query int false "max hits 1..50, default 10"
// @Success 200 {object} response.APIResponse[[]application.UserDTO]
// @Failure 422 {object} response.APIResponse[any]
// @Router /api/v1/users/search [get]
func (h *UserHandler) Search(c *gin.Context) {
	var q searchUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid query", validation.ToDetails(err))
		return
	}
	out, err := h.UseCases.Search.Execute(c.Request.Context(), application.SearchUsersRequest{Query: q.Q, Size: q.Size})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "search results", nil)
}

// Get godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "user id (UUID)"
// @Success 200 {object} response.APIResponse[application.UserDTO]
// @Failure 404 {object} response.APIResponse[any]
// @Failure 422 {object} response.APIResponse[any]
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	out, err := h.UseCases.Get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "user", nil)
}

// Update godoc
// @Summary Replace a user's name and email
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "user id (UUID)"
// @Param payload body updateUserRequest true "Profile"
// @Success 200 {object} response.APIResponse[application.UserDTO]
// @Failure 404 {object} response.APIResponse[any]
// @Failure 409 {object} response.APIResponse[any]
// @Failure 422 {object} response.APIResponse[any]
// @Router /api/v1/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "invalid payload", validation.ToDetails(err))
		return
	}
	out, err := h.UseCases.Update.Execute(c.Request.Context(), application.UpdateUserRequest{
		ID:    c.Param("id"),
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "user updated", nil)
}

// Delete godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path string true "user id (UUID)"
// @Success 200 {object} response.APIResponse[any]
// @Failure 404 {object} response.APIResponse[any]
// @Failure 422 {object} response.APIResponse[any]
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.UseCases.Delete.Execute(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "user deleted", nil)
}

// fail maps domain error kinds onto statuses. Anything unclassified is
// logged and hidden behind a generic 500.
func (h *UserHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		response.Error[any](c, http.StatusUnprocessableEntity, err.Error(), nil)
	case errors.Is(err, entity.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, entity.ErrConflict):
		response.Error[any](c, http.StatusConflict, err.Error(), nil)
	default:
		_ = c.Error(err)
		helpers.LogError(h.Logger, "user request failed", err, logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.FullPath(),
		})
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}
