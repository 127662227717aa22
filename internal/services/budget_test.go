package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"festx/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExpenseRepo struct {
	byEvent map[string][]*domain.Expense
	nextID  int
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{byEvent: make(map[string][]*domain.Expense), nextID: 1}
}

func (f *fakeExpenseRepo) Create(ctx context.Context, e *domain.Expense) error {
	e.ID = fmt.Sprintf("exp-%d", f.nextID)
	f.nextID++
	f.byEvent[e.EventID] = append(f.byEvent[e.EventID], e)
	return nil
}

func (f *fakeExpenseRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.Expense, error) {
	return f.byEvent[eventID], nil
}

func (f *fakeExpenseRepo) Delete(ctx context.Context, eventID, expenseID string) error {
	list := f.byEvent[eventID]
	for i, e := range list {
		if e.ID == expenseID {
			f.byEvent[eventID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func TestBudgetService(t *testing.T) {
	ctx := context.Background()
	event := storedEvent("e", orgUser.ID, domain.StatusApproved, slotAt("Main Auditorium", testDay, "10:00", "12:00"))
	event.IsPaid = true
	event.Amount = 200
	event.RegistrationCount = 3
	regs := newFakeRegistrationRepo(
		&domain.Registration{ID: "r1", EventID: "e", PaymentStatus: domain.PaymentPaid},
		&domain.Registration{ID: "r2", EventID: "e", PaymentStatus: domain.PaymentPaid},
		&domain.Registration{ID: "r3", EventID: "e", PaymentStatus: domain.PaymentPending},
	)
	expenses := newFakeExpenseRepo()
	svc := NewBudgetService(newFakeEventRepo(event), regs, expenses, 5*time.Second).(*budgetService)
	svc.now = func() time.Time { return testNow }

	added, err := svc.AddExpense(ctx, organizer, "e", &domain.Expense{Description: " Posters ", Category: "marketing", Amount: 150})
	require.NoError(t, err)
	assert.Equal(t, "exp-1", added.ID)
	assert.Equal(t, "Posters", added.Description)
	assert.Equal(t, organizer.ID, added.AddedBy)
	assert.Equal(t, domain.CivilDate(testNow), added.Date)

	_, err = svc.AddExpense(ctx, admin, "e", &domain.Expense{Description: "Sound", Category: "av", Amount: 50, Date: testDay})
	require.NoError(t, err)

	summary, err := svc.GetSummary(ctx, organizer, "e")
	require.NoError(t, err)
	assert.Equal(t, 600.0, summary.ExpectedIncome)
	assert.Equal(t, 2, summary.VerifiedPayments)
	assert.Equal(t, 400.0, summary.CollectedIncome)
	assert.Equal(t, 200.0, summary.TotalExpenses)
	assert.Equal(t, 200.0, summary.Balance)
	assert.Len(t, summary.Expenses, 2)

	require.NoError(t, svc.DeleteExpense(ctx, organizer, "e", "exp-1"))
	require.ErrorIs(t, svc.DeleteExpense(ctx, organizer, "e", "exp-1"), domain.ErrNotFound)

	tests := []struct {
		name    string
		actor   domain.Actor
		eventID string
		expense *domain.Expense
		wantErr error
	}{
		{"other organizer", stranger, "e", &domain.Expense{Description: "x", Category: "y", Amount: 1}, domain.ErrForbidden},
		{"zero amount", organizer, "e", &domain.Expense{Description: "x", Category: "y"}, domain.ErrInvalidInput},
		{"missing description", organizer, "e", &domain.Expense{Category: "y", Amount: 1}, domain.ErrInvalidInput},
		{"nil expense", organizer, "e", nil, domain.ErrInvalidInput},
		{"unknown event", organizer, "nope", &domain.Expense{Description: "x", Category: "y", Amount: 1}, domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddExpense(ctx, tt.actor, tt.eventID, tt.expense)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err = svc.GetSummary(ctx, student, "e")
	require.ErrorIs(t, err, domain.ErrForbidden)
}
