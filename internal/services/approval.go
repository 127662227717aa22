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

type approvalService struct {
	requestRepo    domain.OrganizerRequestRepository
	userRepo       domain.UserRepository
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewApprovalService returns the organizer onboarding workflow.
func NewApprovalService(requestRepo domain.OrganizerRequestRepository,
	userRepo domain.UserRepository,
	logger *slog.Logger,
	timeout time.Duration,
) domain.ApprovalService {
	return &approvalService{
		requestRepo:    requestRepo,
		userRepo:       userRepo,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// SubmitOrganizerRequest files a pending request and puts the requester on hold until it is reviewed.
func (s *approvalService) SubmitOrganizerRequest(ctx context.Context, actor domain.Actor, societyName, reason string) (*domain.OrganizerRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !actor.IsOrganizer() {
		return nil, domain.ErrForbidden
	}
	societyName = strings.TrimSpace(societyName)
	if societyName == "" {
		return nil, domain.NewValidationError("society_name is required")
	}

	user, err := s.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user.Status == domain.UserSuspended {
		return nil, domain.ErrForbidden
	}
	if user.Status == domain.UserActive {
		return nil, domain.ErrInvalidTransition
	}
	pending, err := s.requestRepo.ListByStatus(ctx, domain.ApprovalPending)
	if err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}
	for _, p := range pending {
		if p.RequesterID == actor.ID {
			return nil, domain.ErrInvalidTransition
		}
	}

	req := &domain.OrganizerRequest{
		RequesterID: actor.ID,
		SocietyName: societyName,
		Reason:      strings.TrimSpace(reason),
		Status:      domain.ApprovalPending,
		CreatedAt:   s.now(),
	}
	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create organizer request: %w", err)
	}
	return req, nil
}

func (s *approvalService) ListPending(ctx context.Context, actor domain.Actor) ([]*domain.OrganizerRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	list, err := s.requestRepo.ListByStatus(ctx, domain.ApprovalPending)
	if err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}
	return list, nil
}

func (s *approvalService) ApproveOrganizer(ctx context.Context, actor domain.Actor, requestID string) (*domain.OrganizerRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.review(ctx, actor, requestID, domain.ApprovalApproved, nil, domain.UserActive)
}

func (s *approvalService) RejectOrganizer(ctx context.Context, actor domain.Actor, requestID, remarks string) (*domain.OrganizerRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	remarks = strings.TrimSpace(remarks)
	if remarks == "" {
		return nil, domain.NewValidationError("remarks are required")
	}
	return s.review(ctx, actor, requestID, domain.ApprovalRejected, &remarks, domain.UserRejected)
}

func (s *approvalService) review(ctx context.Context, actor domain.Actor, requestID string, decision domain.ApprovalStatus, remarks *string, userStatus domain.UserStatus) (*domain.OrganizerRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != domain.ApprovalPending {
		return nil, domain.ErrInvalidTransition
	}
	now := s.now()
	reviewer := actor.ID
	req.Status = decision
	req.ReviewedBy = &reviewer
	req.ReviewedAt = &now
	req.Remarks = remarks
	if err := s.requestRepo.Review(ctx, req, userStatus); err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) || errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("review organizer request: %w", err)
	}
	s.logger.InfoContext(ctx, "organizer request reviewed", "request_id", req.ID, "status", string(decision), "reviewer", reviewer)
	return req, nil
}
