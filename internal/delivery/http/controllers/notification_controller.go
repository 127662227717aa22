package controllers

import (
	"log/slog"
	"net/http"

	"festx/internal/delivery/http/helpers"
	"festx/internal/domain"
)

// BroadcastRequest is the request body for POST /notifications/broadcast.
type BroadcastRequest struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	TargetRole string `json:"target_role"`
}

// AttendeeMessageRequest is the request body for POST /notifications/attendees.
// An empty event_id reaches the registrants of all the organizer's approved events.
type AttendeeMessageRequest struct {
	EventID string `json:"event_id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// AttendeeMessageResponse is the response body for POST /notifications/attendees.
type AttendeeMessageResponse struct {
	Sent int `json:"sent"`
}

// ListNotificationsResponse is the response body for GET /notifications.
type ListNotificationsResponse struct {
	Items      []*domain.InboxItem    `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

type NotificationController struct {
	Logger  *slog.Logger
	Service domain.NotificationService
}

func NewNotificationController(logger *slog.Logger, svc domain.NotificationService) *NotificationController {
	return &NotificationController{Logger: logger, Service: svc}
}

// List godoc
// @Summary List the caller's notifications
// @Description Notifications addressed to the caller or to their role, newest first.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListNotificationsResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /notifications [get]
func (c *NotificationController) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	params := helpers.ParsePagination(r)
	items, total, err := c.Service.ListForUser(r.Context(), actor, params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	meta := helpers.NewPaginationMeta(params, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListNotificationsResponse{Items: items, Pagination: meta})
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Security BearerAuth
// @Param notificationID path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /notifications/{notificationID}/read [post]
func (c *NotificationController) MarkRead(w http.ResponseWriter, r *http.Request) {
	notificationID, ok := pathValue(w, r, "notificationID")
	if !ok {
		return
	}
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	if err := c.Service.MarkRead(r.Context(), actor, notificationID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Broadcast godoc
// @Summary Broadcast a notification to a role
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BroadcastRequest true "target_role is all, student or organizer"
// @Success 201 {object} domain.Notification
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /notifications/broadcast [post]
func (c *NotificationController) Broadcast(w http.ResponseWriter, r *http.Request) {
	var req BroadcastRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	n, err := c.Service.Broadcast(r.Context(), actor, req.Title, req.Message, domain.AudienceRole(req.TargetRole))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, n)
}

// MessageAttendees godoc
// @Summary Message the registrants of an event
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AttendeeMessageRequest true "Message"
// @Success 201 {object} controllers.AttendeeMessageResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /notifications/attendees [post]
func (c *NotificationController) MessageAttendees(w http.ResponseWriter, r *http.Request) {
	var req AttendeeMessageRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	sent, err := c.Service.SendToAttendees(r.Context(), actor, req.EventID, req.Title, req.Message)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, AttendeeMessageResponse{Sent: sent})
}
