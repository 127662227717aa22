package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"festx/internal/domain"
)

// maxWriteAttempts bounds the read-transition-write cycle when the stored version moved on.
const maxWriteAttempts = 3

type eventService struct {
	eventRepo      domain.EventRepository
	userRepo       domain.UserRepository
	notifier       domain.NotificationService
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

func NewEventService(eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
	notifier domain.NotificationService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		notifier:       notifier,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// CheckVenue reports the first booking at the slot's venue that overlaps it. It never writes.
func (s *eventService) CheckVenue(ctx context.Context, slot domain.Slot, excludeEventID string, statuses domain.StatusSet) (domain.ConflictResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if errs := slot.Validate(); len(errs) > 0 {
		return domain.ConflictResult{}, domain.NewValidationError(errs...)
	}
	if len(statuses) == 0 {
		statuses = domain.StatusesForCreate
	}
	existing, err := s.eventRepo.ListByVenue(ctx, strings.TrimSpace(slot.Venue), statuses)
	if err != nil {
		return domain.ConflictResult{}, fmt.Errorf("list venue bookings: %w", err)
	}
	return domain.HasConflict(slot, excludeEventID, existing, statuses), nil
}

func (s *eventService) CreateEvent(ctx context.Context, actor domain.Actor, draft domain.EventDraft) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !actor.IsAdmin() && !actor.IsOrganizer() {
		return nil, domain.ErrForbidden
	}
	if errs := draft.Validate(); len(errs) > 0 {
		return nil, domain.NewValidationError(errs...)
	}

	user, err := s.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("get organizer: %w", err)
	}
	if user.Status == domain.UserSuspended || (actor.IsOrganizer() && user.Status != domain.UserActive) {
		return nil, domain.ErrForbidden
	}

	now := s.now()
	society := strings.TrimSpace(draft.SocietyName)
	if society == "" {
		society = user.SocietyName
	}
	event := &domain.Event{
		Title:              strings.TrimSpace(draft.Title),
		Description:        strings.TrimSpace(draft.Description),
		Category:           strings.TrimSpace(draft.Category),
		SocietyName:        society,
		Venue:              strings.TrimSpace(draft.Slot.Venue),
		Date:               domain.CivilDate(draft.Slot.Date),
		StartTime:          draft.Slot.Start,
		EndTime:            draft.Slot.End,
		Status:             domain.StatusPending,
		OrganizerID:        user.ID,
		OrganizerName:      user.Name,
		IsPaid:             draft.IsPaid,
		ExpectedAttendance: draft.ExpectedAttendance,
		FormFields:         draft.FormFields,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if draft.IsPaid {
		event.Amount = draft.Amount
	}
	if event.FormFields == nil {
		event.FormFields = []domain.FieldSpec{}
	}
	if actor.IsAdmin() {
		event.Status = domain.StatusApproved
		event.CreatedByAdmin = true
		event.ApprovedBy = &user.ID
		event.ApprovedAt = &now
	}

	if err := s.eventRepo.Create(ctx, event, domain.GuardedWrite{Statuses: domain.StatusesForCreate}); err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			return nil, err
		}
		return nil, fmt.Errorf("create event: %w", err)
	}

	if event.CreatedByAdmin {
		s.flagPendingOverlaps(ctx, event)
	}
	return event, nil
}

// flagPendingOverlaps marks pending events that now collide with an official event.
// Failures are logged; the official event is already stored.
func (s *eventService) flagPendingOverlaps(ctx context.Context, official *domain.Event) {
	pending, err := s.eventRepo.ListByVenue(ctx, official.Venue, domain.StatusSet{domain.StatusPending})
	if err != nil {
		s.logger.ErrorContext(ctx, "list pending events for conflict flagging", "event_id", official.ID, "err", err)
		return
	}
	var ids []string
	for _, e := range pending {
		if domain.SameDay(e.Date, official.Date) && domain.Overlaps(official.Slot(), e.Slot()) {
			ids = append(ids, e.ID)
		}
	}
	if len(ids) == 0 {
		return
	}
	reason := "Conflicts with official event " + official.Title
	if err := s.eventRepo.FlagConflicts(ctx, ids, reason); err != nil {
		s.logger.ErrorContext(ctx, "flag conflicting pending events", "event_id", official.ID, "count", len(ids), "err", err)
		return
	}
	s.logger.InfoContext(ctx, "flagged pending events", "event_id", official.ID, "count", len(ids))
}

func (s *eventService) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.GetByID(ctx, eventID)
}

func (s *eventService) ListEvents(ctx context.Context, filter domain.EventFilter, params domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if filter.Status != "" && !filter.Status.Valid() && filter.Status != domain.StatusCompleted {
		return nil, 0, domain.NewValidationError(fmt.Sprintf("unknown status %q", filter.Status))
	}
	events, total, err := s.eventRepo.List(ctx, filter, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	return events, total, nil
}

func (s *eventService) ListMyEvents(ctx context.Context, actor domain.Actor) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !actor.IsOrganizer() && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	events, _, err := s.eventRepo.List(ctx, domain.EventFilter{OrganizerID: actor.ID}, domain.PaginationParams{})
	if err != nil {
		return nil, fmt.Errorf("list organizer events: %w", err)
	}
	return events, nil
}

func (s *eventService) ApproveEvent(ctx context.Context, actor domain.Actor, eventID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.transition(ctx, eventID, domain.StatusesForCreate, func(e *domain.Event, now time.Time) error {
		return e.Approve(actor, now)
	})
}

func (s *eventService) RejectEvent(ctx context.Context, actor domain.Actor, eventID, reason string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(reason) == "" {
		return nil, domain.NewValidationError("rejection reason is required")
	}
	return s.transition(ctx, eventID, nil, func(e *domain.Event, now time.Time) error {
		return e.Reject(actor, reason, now)
	})
}

func (s *eventService) CancelEvent(ctx context.Context, actor domain.Actor, eventID string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.transition(ctx, eventID, nil, func(e *domain.Event, now time.Time) error {
		return e.Cancel(actor, now)
	})
}

// RescheduleEvent moves the event to slot, re-checking it against approved and
// pending bookings inside the write, then notifies the registrants. A failed
// fan-out does not undo the reschedule; it is reported in the result.
func (s *eventService) RescheduleEvent(ctx context.Context, actor domain.Actor, eventID string, slot domain.Slot, reason string) (*domain.RescheduleResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var errs []string
	if strings.TrimSpace(reason) == "" {
		errs = append(errs, "reschedule reason is required")
	}
	errs = append(errs, slot.Validate()...)
	if len(errs) > 0 {
		return nil, domain.NewValidationError(errs...)
	}
	if !actor.IsOrganizer() {
		return nil, domain.ErrForbidden
	}

	var oldSlot domain.Slot
	event, err := s.transition(ctx, eventID, domain.StatusesForReschedule, func(e *domain.Event, now time.Time) error {
		oldSlot = e.Slot()
		return e.Reschedule(actor, slot, reason, now)
	})
	if err != nil {
		return nil, err
	}

	result := &domain.RescheduleResult{Event: event}
	count, err := s.notifier.NotifyReschedule(ctx, actor, event, oldSlot, event.Slot(), *event.RescheduleReason)
	if err != nil {
		s.logger.ErrorContext(ctx, "reschedule notification failed", "event_id", event.ID, "err", err)
		result.NotificationError = "notifications could not be delivered"
		return result, nil
	}
	result.NotifiedCount = count
	return result, nil
}

// transition loads the event, applies fn to a copy and writes it back guarded by
// the stored version. When guard is non-empty the new slot is re-checked inside
// the write. A version conflict restarts the cycle from a fresh read.
func (s *eventService) transition(ctx context.Context, eventID string, guard domain.StatusSet, fn func(e *domain.Event, now time.Time) error) (*domain.Event, error) {
	var lastErr error
	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		current, err := s.eventRepo.GetByID(ctx, eventID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("get event: %w", err)
		}
		next := current.Clone()
		if err := fn(next, s.now()); err != nil {
			return nil, err
		}

		err = s.eventRepo.Update(ctx, next, current.Version, domain.GuardedWrite{Statuses: guard})
		if err == nil {
			return next, nil
		}
		if !errors.Is(err, domain.ErrVersionConflict) {
			var conflict *domain.ConflictError
			if errors.As(err, &conflict) {
				return nil, err
			}
			return nil, fmt.Errorf("update event: %w", err)
		}
		s.logger.WarnContext(ctx, "event changed during update, retrying", "event_id", eventID, "attempt", attempt)
		lastErr = err
	}
	return nil, lastErr
}
