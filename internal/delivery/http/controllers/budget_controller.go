package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"festx/internal/delivery/http/helpers"
	"festx/internal/domain"
)

// AddExpenseRequest is the request body for POST /events/{eventID}/budget/expenses.
// Date is YYYY-MM-DD and defaults to today.
type AddExpenseRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	ReceiptURL  *string `json:"receipt_url"`
	Date        string  `json:"date"`
}

// Validate implements Validator.
func (a AddExpenseRequest) Validate() []string {
	if a.Date == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, a.Date); err != nil {
		return []string{"date must be YYYY-MM-DD"}
	}
	return nil
}

func (a AddExpenseRequest) expense() *domain.Expense {
	e := &domain.Expense{
		Description: a.Description,
		Amount:      a.Amount,
		Category:    a.Category,
		ReceiptURL:  a.ReceiptURL,
	}
	if a.Date != "" {
		e.Date, _ = time.Parse(domain.DateLayout, a.Date)
	}
	return e
}

type BudgetController struct {
	Logger  *slog.Logger
	Service domain.BudgetService
}

func NewBudgetController(logger *slog.Logger, svc domain.BudgetService) *BudgetController {
	return &BudgetController{Logger: logger, Service: svc}
}

// GetSummary godoc
// @Summary Get an event's budget
// @Tags budget
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} domain.BudgetSummary
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/budget [get]
func (c *BudgetController) GetSummary(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathValue(w, r, "eventID")
	if !ok {
		return
	}
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	summary, err := c.Service.GetSummary(r.Context(), actor, eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, summary)
}

// AddExpense godoc
// @Summary Book an expense against an event
// @Tags budget
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param body body AddExpenseRequest true "Expense"
// @Success 201 {object} domain.Expense
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /events/{eventID}/budget/expenses [post]
func (c *BudgetController) AddExpense(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathValue(w, r, "eventID")
	if !ok {
		return
	}
	var req AddExpenseRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	expense, err := c.Service.AddExpense(r.Context(), actor, eventID, req.expense())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, expense)
}

// DeleteExpense godoc
// @Summary Delete an expense
// @Tags budget
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param expenseID path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/budget/expenses/{expenseID} [delete]
func (c *BudgetController) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathValue(w, r, "eventID")
	if !ok {
		return
	}
	expenseID, ok := pathValue(w, r, "expenseID")
	if !ok {
		return
	}
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteExpense(r.Context(), actor, eventID, expenseID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
