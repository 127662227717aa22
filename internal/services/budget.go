package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"festx/internal/domain"
)

type budgetService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	expenseRepo      domain.ExpenseRepository
	contextTimeout   time.Duration
	now              func() time.Time
}

func NewBudgetService(eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	expenseRepo domain.ExpenseRepository,
	timeout time.Duration,
) domain.BudgetService {
	return &budgetService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		expenseRepo:      expenseRepo,
		contextTimeout:   timeout,
		now:              time.Now,
	}
}

func (s *budgetService) AddExpense(ctx context.Context, actor domain.Actor, eventID string, expense *domain.Expense) (*domain.Expense, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if expense == nil {
		return nil, domain.NewValidationError("expense is required")
	}
	if errs := expense.Validate(); len(errs) > 0 {
		return nil, domain.NewValidationError(errs...)
	}
	if _, err := s.ownedEvent(ctx, actor, eventID); err != nil {
		return nil, err
	}

	now := s.now()
	expense.EventID = eventID
	expense.Description = strings.TrimSpace(expense.Description)
	expense.Category = strings.TrimSpace(expense.Category)
	expense.AddedBy = actor.ID
	expense.AddedAt = now
	if expense.Date.IsZero() {
		expense.Date = domain.CivilDate(now)
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return expense, nil
}

func (s *budgetService) DeleteExpense(ctx context.Context, actor domain.Actor, eventID, expenseID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEvent(ctx, actor, eventID); err != nil {
		return err
	}
	return s.expenseRepo.Delete(ctx, eventID, expenseID)
}

func (s *budgetService) GetSummary(ctx context.Context, actor domain.Actor, eventID string) (*domain.BudgetSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.ownedEvent(ctx, actor, eventID)
	if err != nil {
		return nil, err
	}
	regs, err := s.registrationRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	expenses, err := s.expenseRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return domain.ComputeBudget(event, regs, expenses), nil
}

func (s *budgetService) ownedEvent(ctx context.Context, actor domain.Actor, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(event) {
		return nil, domain.ErrForbidden
	}
	return event, nil
}
