package helpers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"festx/internal/domain"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest        = "bad_request"
	ErrCodeUnauthorized      = "unauthorized"
	ErrCodeForbidden         = "forbidden"
	ErrCodeNotFound          = "not_found"
	ErrCodeConflict          = "conflict"
	ErrCodeVersionConflict   = "version_conflict"
	ErrCodeInvalidTransition = "invalid_transition"
	ErrCodeInternalError     = "internal_error"
)

// APIError is the error object in the standardized API response envelope.
// Details carries structured context, e.g. the event occupying a venue.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// APIResponse is the standardized envelope for all API responses.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with the given data and error set to nil.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Data: data, Error: nil})
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with data nil and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	writeError(w, statusCode, &APIError{Code: code, Message: message})
}

func writeError(w http.ResponseWriter, statusCode int, apiErr *APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Data: nil, Error: apiErr})
}

// WriteServiceError maps a service error onto the API error envelope.
// Unrecognised errors are logged and answered with a generic 500.
func WriteServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var conflict *domain.ConflictError
	switch {
	case errors.As(err, &conflict):
		writeError(w, http.StatusConflict, &APIError{Code: ErrCodeConflict, Message: conflict.Error(), Details: conflict.Event})
	case errors.Is(err, domain.ErrInvalidInput):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		WriteJSONError(w, http.StatusForbidden, ErrCodeForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, "not found")
	case errors.Is(err, domain.ErrVersionConflict):
		WriteJSONError(w, http.StatusConflict, ErrCodeVersionConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		WriteJSONError(w, http.StatusConflict, ErrCodeInvalidTransition, err.Error())
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyRegistered), errors.Is(err, domain.ErrUserInUse):
		WriteJSONError(w, http.StatusConflict, ErrCodeConflict, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}
