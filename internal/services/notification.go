package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"festx/internal/domain"
)

type notificationService struct {
	notificationRepo domain.NotificationRepository
	registrationRepo domain.RegistrationRepository
	eventRepo        domain.EventRepository
	emailService     domain.EmailService
	mail             *MailDispatcher
	translator       domain.Translator
	locale           string
	logger           *slog.Logger
	contextTimeout   time.Duration
	now              func() time.Time
	newID            func() string
}

func NewNotificationService(notificationRepo domain.NotificationRepository,
	registrationRepo domain.RegistrationRepository,
	eventRepo domain.EventRepository,
	emailService domain.EmailService,
	mail *MailDispatcher,
	translator domain.Translator,
	locale string,
	logger *slog.Logger,
	timeout time.Duration,
) domain.NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		emailService:     emailService,
		mail:             mail,
		translator:       translator,
		locale:           locale,
		logger:           logger,
		contextTimeout:   timeout,
		now:              time.Now,
		newID:            uuid.NewString,
	}
}

// NotifyReschedule writes one notification per registrant in a single batch and
// then emails them in the background. Email failures are logged and do not change the count.
func (s *notificationService) NotifyReschedule(ctx context.Context, sender domain.Actor, event *domain.Event, oldSlot, newSlot domain.Slot, reason string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	regs, err := s.registrationRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		return 0, fmt.Errorf("list registrations: %w", err)
	}
	if len(regs) == 0 {
		return 0, nil
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = s.translator.T(s.locale, domain.MsgRescheduleDefaultReason, nil)
	}
	before := domain.SummarizeSlot(oldSlot)
	after := domain.SummarizeSlot(newSlot)
	title := s.translator.T(s.locale, domain.MsgRescheduleTitle, map[string]any{"Title": event.Title})
	message := s.translator.T(s.locale, domain.MsgRescheduleMessage, map[string]any{
		"Reason":   reason,
		"OldDate":  before.Date,
		"OldTime":  before.Time,
		"OldVenue": before.Venue,
		"NewDate":  after.Date,
		"NewTime":  after.Time,
		"NewVenue": after.Venue,
	})

	batch := s.perRegistrant(regs, event.ID, sender, title, message)
	if err := s.notificationRepo.CreateBatch(ctx, batch); err != nil {
		return 0, fmt.Errorf("write reschedule notifications: %w", err)
	}

	notices := make([]*domain.RescheduleEmailData, 0, len(regs))
	for _, reg := range regs {
		if reg.UserEmail == "" {
			continue
		}
		notices = append(notices, &domain.RescheduleEmailData{
			Email:      reg.UserEmail,
			Name:       reg.UserName,
			EventTitle: event.Title,
			Reason:     reason,
			Old:        before,
			New:        after,
		})
	}
	if len(notices) > 0 {
		eventID := event.ID
		s.mail.Go(ctx, func(ctx context.Context) {
			s.sendRescheduleEmails(ctx, eventID, notices)
		})
	}
	return len(batch), nil
}

func (s *notificationService) sendRescheduleEmails(ctx context.Context, eventID string, notices []*domain.RescheduleEmailData) {
	failed := 0
	for i, notice := range notices {
		if ctx.Err() != nil {
			s.logger.ErrorContext(ctx, "reschedule emails abandoned", "event_id", eventID, "unsent", len(notices)-i, "err", ctx.Err())
			return
		}
		if err := s.emailService.SendRescheduleNotice(ctx, notice); err != nil {
			failed++
			s.logger.ErrorContext(ctx, "reschedule email failed", "event_id", eventID, "email", notice.Email, "err", err)
		}
	}
	s.logger.InfoContext(ctx, "reschedule emails sent", "event_id", eventID, "sent", len(notices)-failed, "failed", failed)
}

func (s *notificationService) Broadcast(ctx context.Context, actor domain.Actor, title, message string, audience domain.AudienceRole) (*domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	title, message = strings.TrimSpace(title), strings.TrimSpace(message)
	errs := validateMessage(title, message)
	if !audience.Valid() {
		errs = append(errs, "target_role must be one of all, student, organizer")
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationError(errs...)
	}

	n := &domain.Notification{
		ID:             s.newID(),
		Title:          title,
		Message:        message,
		TargetType:     domain.TargetRole,
		TargetRole:     &audience,
		SenderID:       actor.ID,
		SenderRole:     actor.Role,
		IsPlatformWide: true,
		ReadBy:         []string{},
		CreatedAt:      s.now(),
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create broadcast: %w", err)
	}
	return n, nil
}

func (s *notificationService) SendToAttendees(ctx context.Context, actor domain.Actor, eventID, title, message string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !actor.IsOrganizer() && !actor.IsAdmin() {
		return 0, domain.ErrForbidden
	}
	title, message = strings.TrimSpace(title), strings.TrimSpace(message)
	if errs := validateMessage(title, message); len(errs) > 0 {
		return 0, domain.NewValidationError(errs...)
	}

	var events []*domain.Event
	if eventID != "" {
		event, err := s.eventRepo.GetByID(ctx, eventID)
		if err != nil {
			return 0, err
		}
		if !actor.CanManage(event) {
			return 0, domain.ErrForbidden
		}
		if event.Status != domain.StatusApproved {
			return 0, domain.NewValidationError("messages can only be sent for approved events")
		}
		events = append(events, event)
	} else {
		if !actor.IsOrganizer() {
			return 0, domain.NewValidationError("event_id is required")
		}
		owned, _, err := s.eventRepo.List(ctx, domain.EventFilter{Status: domain.StatusApproved, OrganizerID: actor.ID}, domain.PaginationParams{})
		if err != nil {
			return 0, fmt.Errorf("list organizer events: %w", err)
		}
		events = owned
	}

	var batch []*domain.Notification
	for _, event := range events {
		regs, err := s.registrationRepo.ListByEventID(ctx, event.ID)
		if err != nil {
			return 0, fmt.Errorf("list registrations: %w", err)
		}
		batch = append(batch, s.perRegistrant(regs, event.ID, actor, title, message)...)
	}
	if len(batch) == 0 {
		return 0, nil
	}
	if err := s.notificationRepo.CreateBatch(ctx, batch); err != nil {
		return 0, fmt.Errorf("write attendee notifications: %w", err)
	}
	return len(batch), nil
}

func (s *notificationService) ListForUser(ctx context.Context, actor domain.Actor, params domain.PaginationParams) ([]*domain.InboxItem, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	list, total, err := s.notificationRepo.ListForUser(ctx, actor.ID, actor.Role, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}
	items := make([]*domain.InboxItem, len(list))
	for i, n := range list {
		items[i] = &domain.InboxItem{Notification: n, Read: n.IsReadBy(actor.ID)}
	}
	return items, total, nil
}

// MarkRead records that actor read the notification. Marking twice is a no-op.
func (s *notificationService) MarkRead(ctx context.Context, actor domain.Actor, notificationID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	n, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if !addressedTo(n, actor) {
		return domain.ErrForbidden
	}
	if n.IsReadBy(actor.ID) {
		return nil
	}
	if err := s.notificationRepo.MarkRead(ctx, notificationID, actor.ID); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

func (s *notificationService) perRegistrant(regs []*domain.Registration, eventID string, sender domain.Actor, title, message string) []*domain.Notification {
	now := s.now()
	out := make([]*domain.Notification, 0, len(regs))
	for _, reg := range regs {
		userID, evID := reg.UserID, eventID
		out = append(out, &domain.Notification{
			ID:            s.newID(),
			Title:         title,
			Message:       message,
			TargetType:    domain.TargetSpecificUser,
			TargetUserID:  &userID,
			TargetEventID: &evID,
			SenderID:      sender.ID,
			SenderRole:    sender.Role,
			ReadBy:        []string{},
			CreatedAt:     now,
		})
	}
	return out
}

func addressedTo(n *domain.Notification, actor domain.Actor) bool {
	switch n.TargetType {
	case domain.TargetSpecificUser:
		return n.TargetUserID != nil && *n.TargetUserID == actor.ID
	case domain.TargetRole:
		return n.TargetRole != nil && (*n.TargetRole == domain.AudienceAll || string(*n.TargetRole) == string(actor.Role))
	}
	return false
}

func validateMessage(title, message string) []string {
	var errs []string
	if title == "" {
		errs = append(errs, "title is required")
	}
	if message == "" {
		errs = append(errs, "message is required")
	}
	return errs
}
