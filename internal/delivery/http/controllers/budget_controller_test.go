package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"festx/internal/delivery/http/helpers"
	"festx/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBudgetService struct {
	err     error
	summary *domain.BudgetSummary

	called        bool
	lastActor     domain.Actor
	lastEventID   string
	lastExpenseID string
	lastExpense   *domain.Expense
}

func (f *fakeBudgetService) AddExpense(ctx context.Context, actor domain.Actor, eventID string, expense *domain.Expense) (*domain.Expense, error) {
	f.called, f.lastActor, f.lastEventID, f.lastExpense = true, actor, eventID, expense
	if f.err != nil {
		return nil, f.err
	}
	out := *expense
	out.ID = "exp-1"
	out.EventID = eventID
	return &out, nil
}

func (f *fakeBudgetService) DeleteExpense(ctx context.Context, actor domain.Actor, eventID, expenseID string) error {
	f.called, f.lastActor, f.lastEventID, f.lastExpenseID = true, actor, eventID, expenseID
	return f.err
}

func (f *fakeBudgetService) GetSummary(ctx context.Context, actor domain.Actor, eventID string) (*domain.BudgetSummary, error) {
	f.called, f.lastActor, f.lastEventID = true, actor, eventID
	return f.summary, f.err
}

func TestBudgetController_GetSummary(t *testing.T) {
	tests := []struct {
		name       string
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "not the organizer", fakeErr: domain.ErrForbidden, wantStatus: http.StatusForbidden, wantCode: helpers.ErrCodeForbidden},
		{name: "unknown event", fakeErr: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: helpers.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeBudgetService{
				err: tt.fakeErr,
				summary: &domain.BudgetSummary{
					EventID:          "ev-1",
					ExpectedIncome:   1000,
					CollectedIncome:  600,
					VerifiedPayments: 6,
					TotalExpenses:    250,
					Balance:          350,
					Expenses:         []*domain.Expense{},
				},
			}
			ctrl := NewBudgetController(testLogger, fake)
			req := newRequest(http.MethodGet, "/events/ev-1/budget", "", organizer)
			req.SetPathValue("eventID", "ev-1")
			rr := httptest.NewRecorder()

			ctrl.GetSummary(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var summary domain.BudgetSummary
			apiErr := decodeEnvelope(t, rr, &summary)
			if tt.wantCode != "" {
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
				return
			}
			require.Nil(t, apiErr)
			assert.Equal(t, 350.0, summary.Balance)
			assert.Equal(t, 6, summary.VerifiedPayments)
		})
	}
}

func TestBudgetController_AddExpense(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fakeErr    error
		wantStatus int
		wantCode   string
		wantCalled bool
		check      func(t *testing.T, e *domain.Expense)
	}{
		{
			name:       "with date",
			body:       `{"description":"Banner","amount":250,"category":"printing","receipt_url":"https://r/1","date":"2026-10-12"}`,
			wantStatus: http.StatusCreated,
			wantCalled: true,
			check: func(t *testing.T, e *domain.Expense) {
				assert.Equal(t, "Banner", e.Description)
				assert.Equal(t, 250.0, e.Amount)
				require.NotNil(t, e.ReceiptURL)
				assert.Equal(t, "https://r/1", *e.ReceiptURL)
				assert.Equal(t, time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), e.Date)
			},
		},
		{
			name:       "date left to the service",
			body:       `{"description":"Tea","amount":80,"category":"food"}`,
			wantStatus: http.StatusCreated,
			wantCalled: true,
			check: func(t *testing.T, e *domain.Expense) {
				assert.True(t, e.Date.IsZero())
				assert.Nil(t, e.ReceiptURL)
			},
		},
		{
			name:       "bad date",
			body:       `{"description":"Tea","amount":80,"category":"food","date":"12-10-2026"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "non-positive amount",
			body:       `{"description":"Tea","amount":0,"category":"food"}`,
			fakeErr:    domain.NewValidationError("amount must be greater than 0"),
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeBudgetService{err: tt.fakeErr}
			ctrl := NewBudgetController(testLogger, fake)
			req := newRequest(http.MethodPost, "/events/ev-1/budget/expenses", tt.body, organizer)
			req.SetPathValue("eventID", "ev-1")
			rr := httptest.NewRecorder()

			ctrl.AddExpense(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalled, fake.called)
			var expense domain.Expense
			apiErr := decodeEnvelope(t, rr, &expense)
			if tt.wantCode != "" {
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
				return
			}
			require.Nil(t, apiErr)
			assert.Equal(t, "exp-1", expense.ID)
			tt.check(t, fake.lastExpense)
		})
	}
}

func TestBudgetController_DeleteExpense(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		fake := &fakeBudgetService{}
		ctrl := NewBudgetController(testLogger, fake)
		req := newRequest(http.MethodDelete, "/events/ev-1/budget/expenses/exp-1", "", organizer)
		req.SetPathValue("eventID", "ev-1")
		req.SetPathValue("expenseID", "exp-1")
		rr := httptest.NewRecorder()

		ctrl.DeleteExpense(rr, req)

		require.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
		assert.Equal(t, "ev-1", fake.lastEventID)
		assert.Equal(t, "exp-1", fake.lastExpenseID)
	})

	t.Run("expense of another event", func(t *testing.T) {
		fake := &fakeBudgetService{err: domain.ErrNotFound}
		ctrl := NewBudgetController(testLogger, fake)
		req := newRequest(http.MethodDelete, "/events/ev-1/budget/expenses/exp-9", "", organizer)
		req.SetPathValue("eventID", "ev-1")
		req.SetPathValue("expenseID", "exp-9")
		rr := httptest.NewRecorder()

		ctrl.DeleteExpense(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}
