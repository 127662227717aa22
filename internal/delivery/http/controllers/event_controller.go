package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"festx/internal/delivery/http/helpers"
	"festx/internal/domain"
)

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	SocietyName string `json:"society_name"`
	SlotRequest
	IsPaid             bool               `json:"is_paid"`
	Amount             float64            `json:"amount"`
	ExpectedAttendance int                `json:"expected_attendance"`
	FormFields         []domain.FieldSpec `json:"form_fields"`
}

// Validate implements Validator. Only format errors are reported here; the
// domain checks the remaining rules.
func (c CreateEventRequest) Validate() []string {
	_, errs := c.Slot()
	return errs
}

func (c CreateEventRequest) draft() domain.EventDraft {
	slot, _ := c.Slot()
	return domain.EventDraft{
		Title:              c.Title,
		Description:        c.Description,
		Category:           c.Category,
		SocietyName:        c.SocietyName,
		Slot:               slot,
		IsPaid:             c.IsPaid,
		Amount:             c.Amount,
		ExpectedAttendance: c.ExpectedAttendance,
		FormFields:         c.FormFields,
	}
}

// VenueCheckRequest is the request body for POST /events/venue-check.
// Statuses defaults to ["approved"].
type VenueCheckRequest struct {
	SlotRequest
	ExcludeEventID string   `json:"exclude_event_id"`
	Statuses       []string `json:"statuses"`
}

// Validate implements Validator.
func (v VenueCheckRequest) Validate() []string {
	_, errs := v.Slot()
	for _, s := range v.Statuses {
		if !domain.EventStatus(s).Valid() {
			errs = append(errs, "unknown status "+s)
		}
	}
	return errs
}

// RejectEventRequest is the request body for POST /events/{eventID}/reject.
type RejectEventRequest struct {
	Reason string `json:"reason"`
}

// RescheduleEventRequest is the request body for POST /events/{eventID}/reschedule.
type RescheduleEventRequest struct {
	SlotRequest
	Reason string `json:"reason"`
}

// Validate implements Validator.
func (r RescheduleEventRequest) Validate() []string {
	_, errs := r.Slot()
	return errs
}

// RescheduleEventResponse is the response body for POST /events/{eventID}/reschedule.
type RescheduleEventResponse struct {
	Event             *EventView `json:"event"`
	NotifiedCount     int        `json:"notified_count"`
	NotificationError string     `json:"notification_error,omitempty"`
}

// ListEventsResponse is the response body for GET /events.
type ListEventsResponse struct {
	Items      []*EventView           `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// EventSuccessResponse is the success envelope of endpoints returning one event.
type EventSuccessResponse struct {
	Data  *EventView        `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
	Now     func() time.Time
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
		Now:     time.Now,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Description Organizers submit events for approval; events created by an admin are approved immediately and flag overlapping pending events.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict, error.details holds the booked event"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), actor, req.draft())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, newEventView(event, c.Now()))
}

// ListEvents godoc
// @Summary List events
// @Description Filters by status (pending, approved, rejected, completed), venue and organizer_id. Students only see approved and completed events.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param venue query string false "Venue filter"
// @Param organizer_id query string false "Organizer filter"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListEventsResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	filter := domain.EventFilter{
		Status:      domain.EventStatus(strings.TrimSpace(q.Get("status"))),
		Venue:       strings.TrimSpace(q.Get("venue")),
		OrganizerID: strings.TrimSpace(q.Get("organizer_id")),
	}
	if actor.Role == domain.RoleStudent && filter.Status != domain.StatusCompleted {
		filter.Status = domain.StatusApproved
	}
	params := helpers.ParsePagination(r)
	events, total, err := c.Service.ListEvents(r.Context(), filter, params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	meta := helpers.NewPaginationMeta(params, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListEventsResponse{Items: newEventViews(events, c.Now()), Pagination: meta})
}

// ListMyEvents godoc
// @Summary List the caller's events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {array} controllers.EventView
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /events/me [get]
func (c *EventController) ListMyEvents(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	events, err := c.Service.ListMyEvents(r.Context(), actor)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, newEventViews(events, c.Now()))
}

// GetEvent godoc
// @Summary Get an event by ID
// @Description Students get 404 for events that are not approved.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathValue(w, r, "eventID")
	if !ok {
		return
	}
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	event, err := c.Service.GetEvent(r.Context(), eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	// Students only see what ListEvents shows them.
	if actor.Role == domain.RoleStudent && event.Status != domain.StatusApproved {
		helpers.WriteServiceError(w, r, c.Logger, domain.ErrNotFound)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, newEventView(event, c.Now()))
}

// CheckVenue godoc
// @Summary Check a venue slot for conflicts
// @Description Read-only. Returns the first booking overlapping the slot among events in the given statuses.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body VenueCheckRequest true "Slot to check"
// @Success 200 {object} domain.ConflictResult
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /events/venue-check [post]
func (c *EventController) CheckVenue(w http.ResponseWriter, r *http.Request) {
	var req VenueCheckRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if _, ok := requireActor(w, r); !ok {
		return
	}
	slot, _ := req.Slot()
	var statuses domain.StatusSet
	for _, s := range req.Statuses {
		statuses = append(statuses, domain.EventStatus(s))
	}
	res, err := c.Service.CheckVenue(r.Context(), slot, req.ExcludeEventID, statuses)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}

// ApproveEvent godoc
// @Summary Approve a pending event
// @Description Admin only. The slot is re-checked against approved events at write time.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict, invalid_transition or version_conflict"
// @Router /events/{eventID}/approve [post]
func (c *EventController) ApproveEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathValue(w, r, "eventID")
	if !ok {
		return
	}
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	event, err := c.Service.ApproveEvent(r.Context(), actor, eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, newEventView(event, c.Now()))
}

// RejectEvent godoc
// @Summary Reject a pending event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param body body RejectEventRequest true "Rejection reason"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_transition"
// @Router /events/{eventID}/reject [post]
func (c *EventController) RejectEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathValue(w, r, "eventID")
	if !ok {
		return
	}
	var req RejectEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	event, err := c.Service.RejectEvent(r.Context(), actor, eventID, req.Reason)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, newEventView(event, c.Now()))
}

// CancelEvent godoc
// @Summary Cancel an approved event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_transition"
// @Router /events/{eventID}/cancel [post]
func (c *EventController) CancelEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathValue(w, r, "eventID")
	if !ok {
		return
	}
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	event, err := c.Service.CancelEvent(r.Context(), actor, eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, newEventView(event, c.Now()))
}

// RescheduleEvent godoc
// @Summary Reschedule an event
// @Description The owning organizer moves an approved or rejected event to a new slot; it returns to pending and registrants are notified.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param body body RescheduleEventRequest true "New slot and reason"
// @Success 200 {object} controllers.RescheduleEventResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict, invalid_transition or version_conflict"
// @Router /events/{eventID}/reschedule [post]
func (c *EventController) RescheduleEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathValue(w, r, "eventID")
	if !ok {
		return
	}
	var req RescheduleEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	slot, _ := req.Slot()
	res, err := c.Service.RescheduleEvent(r.Context(), actor, eventID, slot, req.Reason)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RescheduleEventResponse{
		Event:             newEventView(res.Event, c.Now()),
		NotifiedCount:     res.NotifiedCount,
		NotificationError: res.NotificationError,
	})
}
