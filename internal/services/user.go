package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"festx/internal/domain"
)

type userService struct {
	userRepo       domain.UserRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewUserService returns admin account management.
func NewUserService(userRepo domain.UserRepository, logger *slog.Logger, timeout time.Duration) domain.UserService {
	return &userService{
		userRepo:       userRepo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *userService) ListUsers(ctx context.Context, actor domain.Actor, filter domain.UserFilter, params domain.PaginationParams) ([]*domain.User, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !actor.IsAdmin() {
		return nil, 0, domain.ErrForbidden
	}
	var errs []string
	if filter.Role != "" && !filter.Role.Valid() {
		errs = append(errs, fmt.Sprintf("unknown role %q", filter.Role))
	}
	if filter.Status != "" && !filter.Status.Valid() {
		errs = append(errs, fmt.Sprintf("unknown status %q", filter.Status))
	}
	if len(errs) > 0 {
		return nil, 0, domain.NewValidationError(errs...)
	}
	filter.Search = strings.TrimSpace(filter.Search)

	users, total, err := s.userRepo.List(ctx, filter, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, total, nil
}

// SetUserStatus suspends or reactivates an account. Accounts still in organizer
// review are left to the approval workflow.
func (s *userService) SetUserStatus(ctx context.Context, actor domain.Actor, userID string, status domain.UserStatus) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if status != domain.UserActive && status != domain.UserSuspended {
		return nil, domain.NewValidationError("status must be active or suspended")
	}
	if userID == actor.ID {
		return nil, domain.NewValidationError("admins cannot change their own status")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Status != domain.UserActive && user.Status != domain.UserSuspended {
		return nil, domain.ErrInvalidTransition
	}
	if user.Status == status {
		return user, nil
	}
	if err := s.userRepo.UpdateStatus(ctx, userID, status); err != nil {
		return nil, fmt.Errorf("update user status: %w", err)
	}
	user.Status = status
	s.logger.InfoContext(ctx, "user status changed", "user_id", userID, "status", string(status), "admin", actor.ID)
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, actor domain.Actor, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if userID == actor.ID {
		return domain.NewValidationError("admins cannot delete themselves")
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "user deleted", "user_id", userID, "admin", actor.ID)
	return nil
}
