package domain

import (
	"context"
	"strings"
	"time"
)

// DateLayout is the wire format of an event's calendar day.
const DateLayout = "2006-01-02"

// CancelledByAdminReason is recorded when an admin cancels an approved event.
const CancelledByAdminReason = "Cancelled by Admin"

// EventStatus is the persisted approval state of an event.
type EventStatus string

const (
	StatusPending  EventStatus = "pending"
	StatusApproved EventStatus = "approved"
	StatusRejected EventStatus = "rejected"

	// StatusCompleted is derived at read time and never stored.
	StatusCompleted EventStatus = "completed"
)

// Valid reports whether s is a persisted status.
func (s EventStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Slot is a venue booking on one calendar day over the half-open interval [Start, End).
type Slot struct {
	Venue string    `json:"venue"`
	Date  time.Time `json:"date"`
	Start TimeOfDay `json:"start_time"`
	End   TimeOfDay `json:"end_time"`
}

// Validate checks that the slot names a venue and a non-empty time range.
func (s Slot) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Venue) == "" {
		errs = append(errs, "venue is required")
	}
	if s.Date.IsZero() {
		errs = append(errs, "date is required")
	}
	if !s.Start.Valid() || !s.End.Valid() {
		errs = append(errs, "start_time and end_time must be valid HH:MM times")
	} else if s.End <= s.Start {
		errs = append(errs, "end_time must be after start_time")
	}
	return errs
}

// CivilDate truncates t to its calendar day in UTC, using t's own year/month/day.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Event is a campus event and its scheduling state.
// swagger:model Event
type Event struct {
	ID                 string      `json:"id"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	Category           string      `json:"category"`
	SocietyName        string      `json:"society_name"`
	Venue              string      `json:"venue"`
	Date               time.Time   `json:"date"`
	StartTime          TimeOfDay   `json:"start_time"`
	EndTime            TimeOfDay   `json:"end_time"`
	Status             EventStatus `json:"status"`
	OrganizerID        string      `json:"organizer_id"`
	OrganizerName      string      `json:"organizer_name"`
	CreatedByAdmin     bool        `json:"created_by_admin"`
	IsPaid             bool        `json:"is_paid"`
	Amount             float64     `json:"amount"`
	ExpectedAttendance int         `json:"expected_attendance"`
	RegistrationCount  int         `json:"registration_count"`
	FormFields         []FieldSpec `json:"form_fields"`
	RejectionReason    *string     `json:"rejection_reason,omitempty"`
	HasConflict        bool        `json:"has_conflict"`
	ConflictReason     *string     `json:"conflict_reason,omitempty"`
	RescheduleReason   *string     `json:"reschedule_reason,omitempty"`
	RescheduledAt      *time.Time  `json:"rescheduled_at,omitempty"`
	ApprovedBy         *string     `json:"approved_by,omitempty"`
	ApprovedAt         *time.Time  `json:"approved_at,omitempty"`
	Version            int         `json:"version"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// Slot returns the event's current booking.
func (e *Event) Slot() Slot {
	return Slot{Venue: e.Venue, Date: e.Date, Start: e.StartTime, End: e.EndTime}
}

// Clone returns a copy that transitions may mutate without touching e.
func (e *Event) Clone() *Event {
	c := *e
	if e.FormFields != nil {
		c.FormFields = append([]FieldSpec(nil), e.FormFields...)
	}
	return &c
}

// IsCompleted reports whether an approved event's day is already over at now.
func (e *Event) IsCompleted(now time.Time) bool {
	return e.Status == StatusApproved && CivilDate(e.Date).Before(CivilDate(now))
}

// DisplayStatus returns the status shown to readers, including the derived completed state.
func (e *Event) DisplayStatus(now time.Time) EventStatus {
	if e.IsCompleted(now) {
		return StatusCompleted
	}
	return e.Status
}

// Approve moves a pending event to approved. Admin only.
func (e *Event) Approve(actor Actor, now time.Time) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if e.Status != StatusPending {
		return ErrInvalidTransition
	}
	e.Status = StatusApproved
	e.RejectionReason = nil
	e.ApprovedBy = &actor.ID
	e.ApprovedAt = &now
	e.UpdatedAt = now
	return nil
}

// Reject moves a pending event to rejected with a mandatory reason. Admin only.
func (e *Event) Reject(actor Actor, reason string, now time.Time) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return NewValidationError("rejection reason is required")
	}
	if e.Status != StatusPending {
		return ErrInvalidTransition
	}
	e.Status = StatusRejected
	e.RejectionReason = &reason
	e.UpdatedAt = now
	return nil
}

// Cancel moves an approved event to rejected with the fixed admin reason. Admin only.
func (e *Event) Cancel(actor Actor, now time.Time) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if e.Status != StatusApproved {
		return ErrInvalidTransition
	}
	reason := CancelledByAdminReason
	e.Status = StatusRejected
	e.RejectionReason = &reason
	e.UpdatedAt = now
	return nil
}

// Reschedule moves an approved or rejected event to a new slot and back to pending.
// Only the organizer who owns the event may reschedule it. The caller is
// responsible for checking the new slot against existing bookings.
func (e *Event) Reschedule(actor Actor, slot Slot, reason string, now time.Time) error {
	if !actor.IsOrganizer() || actor.ID == "" || e.OrganizerID != actor.ID {
		return ErrForbidden
	}
	var errs []string
	reason = strings.TrimSpace(reason)
	if reason == "" {
		errs = append(errs, "reschedule reason is required")
	}
	errs = append(errs, slot.Validate()...)
	if len(errs) > 0 {
		return NewValidationError(errs...)
	}
	if e.Status != StatusApproved && e.Status != StatusRejected {
		return ErrInvalidTransition
	}
	e.Venue = strings.TrimSpace(slot.Venue)
	e.Date = CivilDate(slot.Date)
	e.StartTime = slot.Start
	e.EndTime = slot.End
	e.Status = StatusPending
	e.RescheduleReason = &reason
	e.RescheduledAt = &now
	e.RejectionReason = nil
	e.HasConflict = false
	e.ConflictReason = nil
	e.ApprovedBy = nil
	e.ApprovedAt = nil
	e.UpdatedAt = now
	return nil
}

// EventDraft holds the organizer- or admin-supplied fields of a new event.
type EventDraft struct {
	Title              string
	Description        string
	Category           string
	SocietyName        string
	Slot               Slot
	IsPaid             bool
	Amount             float64
	ExpectedAttendance int
	FormFields         []FieldSpec
}

// Validate returns the failed field rules of the draft.
func (d EventDraft) Validate() []string {
	var errs []string
	if len(strings.TrimSpace(d.Title)) < 3 {
		errs = append(errs, "title must be at least 3 characters long")
	}
	errs = append(errs, d.Slot.Validate()...)
	if d.IsPaid && d.Amount <= 0 {
		errs = append(errs, "amount must be greater than 0 for paid events")
	}
	if d.ExpectedAttendance < 0 {
		errs = append(errs, "expected_attendance must not be negative")
	}
	if _, err := BuildSchema(d.FormFields); err != nil {
		errs = append(errs, err.Error())
	}
	return errs
}

// EventFilter narrows event listings. Empty fields match everything.
type EventFilter struct {
	Status      EventStatus
	Venue       string
	OrganizerID string
}

// GuardedWrite asks the repository to re-check a slot inside the write transaction.
// An empty Statuses set disables the check.
type GuardedWrite struct {
	Statuses StatusSet
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	// Create inserts the event. When guard.Statuses is non-empty the slot is
	// re-checked under a venue lock in the same transaction and a *ConflictError
	// is returned instead of inserting.
	Create(ctx context.Context, e *Event, guard GuardedWrite) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// ListByVenue returns events at the venue whose status is in statuses,
	// ordered by date, start_time and id.
	ListByVenue(ctx context.Context, venue string, statuses StatusSet) ([]*Event, error)
	List(ctx context.Context, filter EventFilter, params PaginationParams) ([]*Event, int, error)
	// Update persists e's mutable fields if the stored version still equals
	// expectedVersion, bumping e.Version. It returns ErrVersionConflict when the
	// row moved on and *ConflictError when the guard finds an overlap.
	Update(ctx context.Context, e *Event, expectedVersion int, guard GuardedWrite) error
	// FlagConflicts marks the given pending events as conflicting with reason.
	FlagConflicts(ctx context.Context, eventIDs []string, reason string) error
}

// RescheduleResult reports a successful reschedule and the outcome of the notification fan-out.
type RescheduleResult struct {
	Event             *Event `json:"event"`
	NotifiedCount     int    `json:"notified_count"`
	NotificationError string `json:"notification_error,omitempty"`
}

// EventService defines the scheduling workflow.
type EventService interface {
	CheckVenue(ctx context.Context, slot Slot, excludeEventID string, statuses StatusSet) (ConflictResult, error)
	CreateEvent(ctx context.Context, actor Actor, draft EventDraft) (*Event, error)
	GetEvent(ctx context.Context, eventID string) (*Event, error)
	ListEvents(ctx context.Context, filter EventFilter, params PaginationParams) ([]*Event, int, error)
	ListMyEvents(ctx context.Context, actor Actor) ([]*Event, error)
	ApproveEvent(ctx context.Context, actor Actor, eventID string) (*Event, error)
	RejectEvent(ctx context.Context, actor Actor, eventID, reason string) (*Event, error)
	CancelEvent(ctx context.Context, actor Actor, eventID string) (*Event, error)
	RescheduleEvent(ctx context.Context, actor Actor, eventID string, slot Slot, reason string) (*RescheduleResult, error)
}
