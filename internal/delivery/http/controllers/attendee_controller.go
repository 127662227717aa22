package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"festx/internal/delivery/http/helpers"
	"festx/internal/domain"
)

// RegisterRequest is the request body for POST /events/{eventID}/registrations.
// Responses are keyed by form field label.
type RegisterRequest struct {
	Responses map[string]json.RawMessage `json:"responses"`
}

// ScanTicketRequest is the request body for POST /events/{eventID}/scan.
type ScanTicketRequest struct {
	QRCode string `json:"qr_code"`
}

// Validate implements Validator.
func (s ScanTicketRequest) Validate() []string {
	if strings.TrimSpace(s.QRCode) == "" {
		return []string{"qr_code is required"}
	}
	return nil
}

// EventRegistrationsResponse is the response body for GET /events/{eventID}/registrations.
type EventRegistrationsResponse struct {
	Registrations []*domain.Registration `json:"registrations"`
	Stats         domain.AttendanceStats `json:"stats"`
}

type AttendeeController struct {
	Logger  *slog.Logger
	Service domain.AttendeeService
}

func NewAttendeeController(logger *slog.Logger, svc domain.AttendeeService) *AttendeeController {
	return &AttendeeController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register for an event
// @Description Issues a QR ticket. Registering again returns the existing ticket with status 200.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param body body RegisterRequest false "Answers to the event's registration form"
// @Success 201 {object} domain.Registration
// @Success 200 {object} domain.Registration "already registered"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/registrations [post]
func (c *AttendeeController) Register(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathValue(w, r, "eventID")
	if !ok {
		return
	}
	var req RegisterRequest
	if r.ContentLength != 0 && !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	reg, created, err := c.Service.RegisterForEvent(r.Context(), actor, eventID, req.Responses)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	helpers.WriteJSONSuccess(w, status, reg)
}

// ListMyRegistrations godoc
// @Summary List the caller's tickets
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.RegistrationWithEvent
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /registrations/me [get]
func (c *AttendeeController) ListMyRegistrations(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	list, err := c.Service.ListMyRegistrations(r.Context(), actor)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

// ListEventRegistrations godoc
// @Summary List an event's registrations with attendance stats
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.EventRegistrationsResponse
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/registrations [get]
func (c *AttendeeController) ListEventRegistrations(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathValue(w, r, "eventID")
	if !ok {
		return
	}
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	regs, stats, err := c.Service.ListEventRegistrations(r.Context(), actor, eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventRegistrationsResponse{Registrations: regs, Stats: stats})
}

// ScanTicket godoc
// @Summary Check a ticket holder in
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param body body ScanTicketRequest true "Scanned code"
// @Success 200 {object} domain.ScanResult "outcome is checked_in or already_checked_in"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown ticket)"
// @Router /events/{eventID}/scan [post]
func (c *AttendeeController) ScanTicket(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathValue(w, r, "eventID")
	if !ok {
		return
	}
	var req ScanTicketRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	res, err := c.Service.ScanTicket(r.Context(), actor, eventID, req.QRCode)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}

// VerifyPayment godoc
// @Summary Mark a registration's fee as paid
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param registrationID path string true "Registration ID"
// @Success 200 {object} domain.Registration
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (free event)"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /registrations/{registrationID}/verify-payment [post]
func (c *AttendeeController) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	registrationID, ok := pathValue(w, r, "registrationID")
	if !ok {
		return
	}
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	reg, err := c.Service.VerifyPayment(r.Context(), actor, registrationID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reg)
}
