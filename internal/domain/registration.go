package domain

import (
	"context"
	"encoding/json"
	"time"
)

// PaymentStatus tracks the entry fee of a registration.
type PaymentStatus string

const (
	PaymentPaid          PaymentStatus = "paid"
	PaymentPending       PaymentStatus = "pending"
	PaymentNotApplicable PaymentStatus = "na"
)

// QRCodePrefix starts every ticket code.
const QRCodePrefix = "FESTX-"

// Registration is a user's ticket for an event. At most one exists per (event, user).
// swagger:model Registration
type Registration struct {
	ID            string                `json:"id"`
	EventID       string                `json:"event_id"`
	UserID        string                `json:"user_id"`
	UserName      string                `json:"user_name"`
	UserEmail     string                `json:"user_email"`
	FormResponses map[string]FieldValue `json:"form_responses"`
	QRCode        string                `json:"qr_code"`
	PaymentStatus PaymentStatus         `json:"payment_status"`
	Attended      bool                  `json:"attended"`
	AttendedAt    *time.Time            `json:"attended_at,omitempty"`
	ScannedBy     *string               `json:"scanned_by,omitempty"`
	RegisteredAt  time.Time             `json:"registered_at"`
}

// NewRegistration returns a registration for the user. ID is set by the repository on create.
func NewRegistration(eventID string, user *User, qrCode string, payment PaymentStatus, responses map[string]FieldValue, registeredAt time.Time) *Registration {
	return &Registration{
		EventID:       eventID,
		UserID:        user.ID,
		UserName:      user.Name,
		UserEmail:     user.Email,
		FormResponses: responses,
		QRCode:        qrCode,
		PaymentStatus: payment,
		RegisteredAt:  registeredAt,
	}
}

// RegistrationWithEvent bundles a registration with its event.
type RegistrationWithEvent struct {
	Registration *Registration `json:"registration"`
	Event        *Event        `json:"event"`
}

// ScanOutcome is the result of presenting a ticket at the door.
type ScanOutcome string

const (
	ScanCheckedIn        ScanOutcome = "checked_in"
	ScanAlreadyCheckedIn ScanOutcome = "already_checked_in"
)

// ScanResult reports a ticket scan.
type ScanResult struct {
	Outcome      ScanOutcome   `json:"outcome"`
	Registration *Registration `json:"registration"`
}

// AttendanceStats summarises check-ins for an event.
type AttendanceStats struct {
	Total    int `json:"total"`
	Attended int `json:"attended"`
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	// Create inserts the registration and increments the event's registration
	// count in one transaction. A duplicate (event, user) returns ErrAlreadyRegistered.
	Create(ctx context.Context, reg *Registration) error
	GetByID(ctx context.Context, id string) (*Registration, error)
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*Registration, error)
	GetByEventAndQRCode(ctx context.Context, eventID, qrCode string) (*Registration, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Registration, error)
	ListByUserID(ctx context.Context, userID string) ([]*Registration, error)
	// MarkAttended sets attended only if it was not already set; it reports whether it did.
	MarkAttended(ctx context.Context, id, scannedBy string, at time.Time) (bool, error)
	SetPaymentStatus(ctx context.Context, id string, status PaymentStatus) error
}

// AttendeeService defines registration, ticketing and attendance operations.
type AttendeeService interface {
	// RegisterForEvent returns (reg, created, err): created is false when the user was already registered.
	RegisterForEvent(ctx context.Context, actor Actor, eventID string, responses map[string]json.RawMessage) (*Registration, bool, error)
	ListMyRegistrations(ctx context.Context, actor Actor) ([]*RegistrationWithEvent, error)
	ListEventRegistrations(ctx context.Context, actor Actor, eventID string) ([]*Registration, AttendanceStats, error)
	ScanTicket(ctx context.Context, actor Actor, eventID, qrCode string) (*ScanResult, error)
	VerifyPayment(ctx context.Context, actor Actor, registrationID string) (*Registration, error)
}
