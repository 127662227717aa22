package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by services, repositories and controllers.
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidInput      = errors.New("invalid input")
	ErrConflict          = errors.New("venue conflict")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrVersionConflict   = errors.New("event was modified concurrently")
	ErrAlreadyRegistered = errors.New("already registered for this event")
	ErrUserInUse         = errors.New("user still owns events or records; suspend the account instead")
)

// ValidationError lists the failed preconditions of a request. It wraps ErrInvalidInput.
type ValidationError struct {
	Problems []string
}

// NewValidationError returns a ValidationError for the given messages.
func NewValidationError(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// ConflictError reports the event already occupying the requested slot. It wraps ErrConflict.
type ConflictError struct {
	Event *Event
}

func (e *ConflictError) Error() string {
	if e.Event == nil {
		return ErrConflict.Error()
	}
	return "venue " + e.Event.Venue + " is booked by " + e.Event.Title + " on " +
		e.Event.Date.Format(DateLayout) + " from " + e.Event.StartTime.String() + " to " + e.Event.EndTime.String()
}

func (e *ConflictError) Unwrap() error { return ErrConflict }
