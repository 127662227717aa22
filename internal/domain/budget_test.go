package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBudget(t *testing.T) {
	event := &Event{ID: "ev-1", IsPaid: true, Amount: 150, RegistrationCount: 4}
	regs := []*Registration{
		{ID: "r1", PaymentStatus: PaymentPaid},
		{ID: "r2", PaymentStatus: PaymentPending},
		{ID: "r3", PaymentStatus: PaymentPaid},
		{ID: "r4", PaymentStatus: PaymentPending},
	}
	expenses := []*Expense{
		{ID: "x1", Amount: 120.5},
		{ID: "x2", Amount: 79.5},
	}

	got := ComputeBudget(event, regs, expenses)

	assert.Equal(t, "ev-1", got.EventID)
	assert.InDelta(t, 600, got.ExpectedIncome, 1e-9)
	assert.Equal(t, 2, got.VerifiedPayments)
	assert.InDelta(t, 300, got.CollectedIncome, 1e-9)
	assert.InDelta(t, 200, got.TotalExpenses, 1e-9)
	assert.InDelta(t, 100, got.Balance, 1e-9)
	assert.Len(t, got.Expenses, 2)
}

func TestComputeBudget_FreeEventWithoutExpenses(t *testing.T) {
	got := ComputeBudget(&Event{ID: "ev-2", RegistrationCount: 30}, nil, nil)
	assert.Zero(t, got.ExpectedIncome)
	assert.Zero(t, got.Balance)
	assert.NotNil(t, got.Expenses)
	assert.Empty(t, got.Expenses)
}

func TestExpense_Validate(t *testing.T) {
	assert.Empty(t, (&Expense{Description: "Banners", Category: "marketing", Amount: 10}).Validate())
	errs := (&Expense{Description: " ", Amount: 0}).Validate()
	assert.ElementsMatch(t, []string{
		"description is required",
		"category is required",
		"amount must be greater than 0",
	}, errs)
}
