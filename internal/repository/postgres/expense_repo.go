package postgres

import (
	"context"
	"database/sql"

	"festx/internal/domain"
)

type expenseRepository struct {
	DB *sql.DB
}

func NewExpenseRepository(db *sql.DB) domain.ExpenseRepository {
	return &expenseRepository{DB: db}
}

func (r *expenseRepository) Create(ctx context.Context, e *domain.Expense) error {
	query := `
		INSERT INTO expenses (event_id, description, amount, category, receipt_url, date, added_by, added_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.EventID, e.Description, e.Amount, e.Category, nullString(e.ReceiptURL), e.Date.Format(domain.DateLayout), e.AddedBy, e.AddedAt,
	).Scan(&e.ID)
}

func (r *expenseRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Expense, error) {
	query := `
		SELECT id, event_id, description, amount, category, receipt_url, date, added_by, added_at
		FROM expenses
		WHERE event_id = $1
		ORDER BY date, added_at, id
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	expenses := make([]*domain.Expense, 0)
	for rows.Next() {
		e := &domain.Expense{}
		var receipt sql.NullString
		if err := rows.Scan(&e.ID, &e.EventID, &e.Description, &e.Amount, &e.Category, &receipt, &e.Date, &e.AddedBy, &e.AddedAt); err != nil {
			return nil, err
		}
		e.ReceiptURL = stringPtr(receipt)
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (r *expenseRepository) Delete(ctx context.Context, eventID, expenseID string) error {
	query := `DELETE FROM expenses WHERE id = $1 AND event_id = $2`
	result, err := r.DB.ExecContext(ctx, query, expenseID, eventID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
