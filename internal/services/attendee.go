package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"festx/internal/domain"
)

type attendeeService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	userRepo         domain.UserRepository
	logger           *slog.Logger
	contextTimeout   time.Duration
	now              func() time.Time
	newQRCode        func() string
}

// NewAttendeeService returns an AttendeeService for registrations, tickets and check-in.
func NewAttendeeService(eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	userRepo domain.UserRepository,
	logger *slog.Logger,
	timeout time.Duration,
) domain.AttendeeService {
	return &attendeeService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		userRepo:         userRepo,
		logger:           logger,
		contextTimeout:   timeout,
		now:              time.Now,
		newQRCode:        func() string { return domain.QRCodePrefix + uuid.NewString() },
	}
}

// RegisterForEvent issues a ticket for the actor. A second call returns the
// existing ticket with created=false.
func (s *attendeeService) RegisterForEvent(ctx context.Context, actor domain.Actor, eventID string, responses map[string]json.RawMessage) (*domain.Registration, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if actor.Role != domain.RoleStudent {
		return nil, false, domain.ErrForbidden
	}
	user, err := s.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, false, fmt.Errorf("get user: %w", err)
	}
	if user.Status == domain.UserSuspended {
		return nil, false, domain.ErrForbidden
	}
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, false, err
	}
	now := s.now()
	if event.Status != domain.StatusApproved || event.IsCompleted(now) {
		return nil, false, domain.NewValidationError("event is not open for registration")
	}

	existing, err := s.registrationRepo.GetByEventAndUser(ctx, eventID, actor.ID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("get registration: %w", err)
	}

	schema, err := domain.BuildSchema(event.FormFields)
	if err != nil {
		return nil, false, fmt.Errorf("event form fields: %w", err)
	}
	values, err := schema.Validate(responses)
	if err != nil {
		return nil, false, err
	}

	payment := domain.PaymentNotApplicable
	if event.IsPaid {
		payment = domain.PaymentPending
	}
	reg := domain.NewRegistration(eventID, user, s.newQRCode(), payment, values, now)
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			existing, getErr := s.registrationRepo.GetByEventAndUser(ctx, eventID, actor.ID)
			if getErr != nil {
				return nil, false, fmt.Errorf("get registration: %w", getErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("create registration: %w", err)
	}
	return reg, true, nil
}

func (s *attendeeService) ListMyRegistrations(ctx context.Context, actor domain.Actor) ([]*domain.RegistrationWithEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	regs, err := s.registrationRepo.ListByUserID(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	out := make([]*domain.RegistrationWithEvent, 0, len(regs))
	for _, reg := range regs {
		event, err := s.eventRepo.GetByID(ctx, reg.EventID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("get event %s: %w", reg.EventID, err)
		}
		out = append(out, &domain.RegistrationWithEvent{Registration: reg, Event: event})
	}
	return out, nil
}

func (s *attendeeService) ListEventRegistrations(ctx context.Context, actor domain.Actor, eventID string) ([]*domain.Registration, domain.AttendanceStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.managedEvent(ctx, actor, eventID); err != nil {
		return nil, domain.AttendanceStats{}, err
	}
	regs, err := s.registrationRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, domain.AttendanceStats{}, fmt.Errorf("list registrations: %w", err)
	}
	stats := domain.AttendanceStats{Total: len(regs)}
	for _, r := range regs {
		if r.Attended {
			stats.Attended++
		}
	}
	return regs, stats, nil
}

// ScanTicket checks the ticket holder in. Scanning an already used ticket is
// reported, not rejected.
func (s *attendeeService) ScanTicket(ctx context.Context, actor domain.Actor, eventID, qrCode string) (*domain.ScanResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	qrCode = strings.TrimSpace(qrCode)
	if qrCode == "" {
		return nil, domain.NewValidationError("qr_code is required")
	}
	if _, err := s.managedEvent(ctx, actor, eventID); err != nil {
		return nil, err
	}
	reg, err := s.registrationRepo.GetByEventAndQRCode(ctx, eventID, qrCode)
	if err != nil {
		return nil, err
	}
	if reg.Attended {
		return &domain.ScanResult{Outcome: domain.ScanAlreadyCheckedIn, Registration: reg}, nil
	}

	now := s.now()
	marked, err := s.registrationRepo.MarkAttended(ctx, reg.ID, actor.ID, now)
	if err != nil {
		return nil, fmt.Errorf("mark attended: %w", err)
	}
	if !marked {
		// another scanner got there first
		current, err := s.registrationRepo.GetByID(ctx, reg.ID)
		if err != nil {
			return nil, fmt.Errorf("get registration: %w", err)
		}
		return &domain.ScanResult{Outcome: domain.ScanAlreadyCheckedIn, Registration: current}, nil
	}
	scannedBy := actor.ID
	reg.Attended = true
	reg.AttendedAt = &now
	reg.ScannedBy = &scannedBy
	s.logger.InfoContext(ctx, "ticket scanned", "event_id", eventID, "registration_id", reg.ID)
	return &domain.ScanResult{Outcome: domain.ScanCheckedIn, Registration: reg}, nil
}

func (s *attendeeService) VerifyPayment(ctx context.Context, actor domain.Actor, registrationID string) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	reg, err := s.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	event, err := s.managedEvent(ctx, actor, reg.EventID)
	if err != nil {
		return nil, err
	}
	if !event.IsPaid {
		return nil, domain.NewValidationError("event has no entry fee")
	}
	if reg.PaymentStatus == domain.PaymentPaid {
		return reg, nil
	}
	if err := s.registrationRepo.SetPaymentStatus(ctx, reg.ID, domain.PaymentPaid); err != nil {
		return nil, fmt.Errorf("set payment status: %w", err)
	}
	reg.PaymentStatus = domain.PaymentPaid
	return reg, nil
}

// managedEvent loads the event and checks that actor is its organizer or an admin.
func (s *attendeeService) managedEvent(ctx context.Context, actor domain.Actor, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(event) {
		return nil, domain.ErrForbidden
	}
	return event, nil
}
