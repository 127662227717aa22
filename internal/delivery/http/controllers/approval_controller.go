package controllers

import (
	"log/slog"
	"net/http"

	"festx/internal/delivery/http/helpers"
	"festx/internal/domain"
)

// OrganizerRequestBody is the request body for POST /organizer-requests.
type OrganizerRequestBody struct {
	SocietyName string `json:"society_name"`
	Reason      string `json:"reason"`
}

// RejectOrganizerRequest is the request body for POST /organizer-requests/{requestID}/reject.
type RejectOrganizerRequest struct {
	Remarks string `json:"remarks"`
}

type ApprovalController struct {
	Logger  *slog.Logger
	Service domain.ApprovalService
}

func NewApprovalController(logger *slog.Logger, svc domain.ApprovalService) *ApprovalController {
	return &ApprovalController{Logger: logger, Service: svc}
}

// Submit godoc
// @Summary Ask to be activated as an organizer
// @Tags organizers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body OrganizerRequestBody true "Society details"
// @Success 201 {object} domain.OrganizerRequest
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_transition (already active or pending)"
// @Router /organizer-requests [post]
func (c *ApprovalController) Submit(w http.ResponseWriter, r *http.Request) {
	var req OrganizerRequestBody
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	created, err := c.Service.SubmitOrganizerRequest(r.Context(), actor, req.SocietyName, req.Reason)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// ListPending godoc
// @Summary List pending organizer requests
// @Tags organizers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.OrganizerRequest
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /organizer-requests [get]
func (c *ApprovalController) ListPending(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	list, err := c.Service.ListPending(r.Context(), actor)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

// Approve godoc
// @Summary Approve an organizer request
// @Tags organizers
// @Produce json
// @Security BearerAuth
// @Param requestID path string true "Request ID"
// @Success 200 {object} domain.OrganizerRequest
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_transition"
// @Router /organizer-requests/{requestID}/approve [post]
func (c *ApprovalController) Approve(w http.ResponseWriter, r *http.Request) {
	requestID, ok := pathValue(w, r, "requestID")
	if !ok {
		return
	}
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	req, err := c.Service.ApproveOrganizer(r.Context(), actor, requestID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, req)
}

// Reject godoc
// @Summary Reject an organizer request
// @Tags organizers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param requestID path string true "Request ID"
// @Param body body RejectOrganizerRequest true "Remarks"
// @Success 200 {object} domain.OrganizerRequest
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: invalid_transition"
// @Router /organizer-requests/{requestID}/reject [post]
func (c *ApprovalController) Reject(w http.ResponseWriter, r *http.Request) {
	requestID, ok := pathValue(w, r, "requestID")
	if !ok {
		return
	}
	var body RejectOrganizerRequest
	if !helpers.DecodeAndValidate(w, r, &body) {
		return
	}
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	req, err := c.Service.RejectOrganizer(r.Context(), actor, requestID, body.Remarks)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, req)
}
