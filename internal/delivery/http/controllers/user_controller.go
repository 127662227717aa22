package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"festx/internal/delivery/http/helpers"
	"festx/internal/domain"
)

// SetUserStatusRequest is the request body for POST /users/{userID}/status.
type SetUserStatusRequest struct {
	Status string `json:"status"`
}

// Validate implements Validator.
func (s SetUserStatusRequest) Validate() []string {
	if strings.TrimSpace(s.Status) == "" {
		return []string{"status is required"}
	}
	return nil
}

// ListUsersResponse is the response body for GET /users.
type ListUsersResponse struct {
	Items      []*domain.User         `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

func NewUserController(logger *slog.Logger, svc domain.UserService) *UserController {
	return &UserController{Logger: logger, Service: svc}
}

// ListUsers godoc
// @Summary List users
// @Description Admin only. Newest accounts first.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param role query string false "student, organizer or admin"
// @Param status query string false "active, pending, rejected or suspended"
// @Param q query string false "Matches name or email"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListUsersResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /users [get]
func (c *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	filter := domain.UserFilter{
		Role:   domain.Role(strings.TrimSpace(q.Get("role"))),
		Status: domain.UserStatus(strings.TrimSpace(q.Get("status"))),
		Search: q.Get("q"),
	}
	params := helpers.ParsePagination(r)
	users, total, err := c.Service.ListUsers(r.Context(), actor, filter, params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListUsersResponse{Items: users, Pagination: helpers.NewPaginationMeta(params, total)})
}

// SetStatus godoc
// @Summary Suspend or reactivate a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userID path string true "User ID"
// @Param body body SetUserStatusRequest true "active or suspended"
// @Success 200 {object} domain.User
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_transition (organizer still under review)"
// @Router /users/{userID}/status [post]
func (c *UserController) SetStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathValue(w, r, "userID")
	if !ok {
		return
	}
	var req SetUserStatusRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	user, err := c.Service.SetUserStatus(r.Context(), actor, userID, domain.UserStatus(strings.TrimSpace(req.Status)))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Security BearerAuth
// @Param userID path string true "User ID"
// @Success 204 "No Content"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (user still owns events or records)"
// @Router /users/{userID} [delete]
func (c *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathValue(w, r, "userID")
	if !ok {
		return
	}
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteUser(r.Context(), actor, userID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
