package domain

import (
	"context"
	"strings"
	"time"
)

// Expense is a cost booked against an event's budget.
// swagger:model Expense
type Expense struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	ReceiptURL  *string   `json:"receipt_url,omitempty"`
	Date        time.Time `json:"date"`
	AddedBy     string    `json:"added_by"`
	AddedAt     time.Time `json:"added_at"`
}

// Validate returns the failed field rules of the expense.
func (e *Expense) Validate() []string {
	var errs []string
	if strings.TrimSpace(e.Description) == "" {
		errs = append(errs, "description is required")
	}
	if strings.TrimSpace(e.Category) == "" {
		errs = append(errs, "category is required")
	}
	if e.Amount <= 0 {
		errs = append(errs, "amount must be greater than 0")
	}
	return errs
}

// BudgetSummary is the computed budget of an event.
// swagger:model BudgetSummary
type BudgetSummary struct {
	EventID          string     `json:"event_id"`
	ExpectedIncome   float64    `json:"expected_income"`
	CollectedIncome  float64    `json:"collected_income"`
	VerifiedPayments int        `json:"verified_payments"`
	TotalExpenses    float64    `json:"total_expenses"`
	Balance          float64    `json:"balance"`
	Expenses         []*Expense `json:"expenses"`
}

// ComputeBudget derives the summary from the event, its registrations and its expenses.
func ComputeBudget(event *Event, regs []*Registration, expenses []*Expense) *BudgetSummary {
	s := &BudgetSummary{EventID: event.ID, Expenses: expenses}
	if s.Expenses == nil {
		s.Expenses = []*Expense{}
	}
	s.ExpectedIncome = float64(event.RegistrationCount) * event.Amount
	for _, r := range regs {
		if r.PaymentStatus == PaymentPaid {
			s.VerifiedPayments++
		}
	}
	s.CollectedIncome = float64(s.VerifiedPayments) * event.Amount
	for _, e := range expenses {
		s.TotalExpenses += e.Amount
	}
	s.Balance = s.CollectedIncome - s.TotalExpenses
	return s
}

// ExpenseRepository defines storage operations for expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, e *Expense) error
	ListByEventID(ctx context.Context, eventID string) ([]*Expense, error)
	Delete(ctx context.Context, eventID, expenseID string) error
}

// BudgetService defines budget tracking operations.
type BudgetService interface {
	AddExpense(ctx context.Context, actor Actor, eventID string, expense *Expense) (*Expense, error)
	DeleteExpense(ctx context.Context, actor Actor, eventID, expenseID string) error
	GetSummary(ctx context.Context, actor Actor, eventID string) (*BudgetSummary, error)
}
