package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"festx/internal/domain"
)

const organizerRequestColumns = `id, requester_id, society_name, reason, status, reviewed_by, reviewed_at, remarks, created_at`

type organizerRequestRepository struct {
	DB *sql.DB
}

func NewOrganizerRequestRepository(db *sql.DB) domain.OrganizerRequestRepository {
	return &organizerRequestRepository{DB: db}
}

func (r *organizerRequestRepository) Create(ctx context.Context, req *domain.OrganizerRequest) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO organizer_requests (requester_id, society_name, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query, req.RequesterID, req.SocietyName, req.Reason, string(req.Status), req.CreatedAt).Scan(&req.ID)
	if err != nil {
		return fmt.Errorf("insert organizer request: %w", err)
	}
	if err := setUserStatus(ctx, tx, req.RequesterID, domain.UserPending, ""); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *organizerRequestRepository) GetByID(ctx context.Context, id string) (*domain.OrganizerRequest, error) {
	query := `SELECT ` + organizerRequestColumns + ` FROM organizer_requests WHERE id = $1`
	req, err := scanOrganizerRequest(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func (r *organizerRequestRepository) ListByStatus(ctx context.Context, status domain.ApprovalStatus) ([]*domain.OrganizerRequest, error) {
	query := `
		SELECT ` + organizerRequestColumns + `
		FROM organizer_requests
		WHERE status = $1
		ORDER BY created_at, id
	`
	rows, err := r.DB.QueryContext(ctx, query, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	list := make([]*domain.OrganizerRequest, 0)
	for rows.Next() {
		req, err := scanOrganizerRequest(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, req)
	}
	return list, rows.Err()
}

// Review records the decision only if the request is still pending, then
// applies userStatus to the requester in the same transaction.
func (r *organizerRequestRepository) Review(ctx context.Context, req *domain.OrganizerRequest, userStatus domain.UserStatus) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		UPDATE organizer_requests SET status = $1, reviewed_by = $2, reviewed_at = $3, remarks = $4
		WHERE id = $5 AND status = 'pending'
	`
	result, err := tx.ExecContext(ctx, query, string(req.Status), nullString(req.ReviewedBy), nullTime(req.ReviewedAt), nullString(req.Remarks), req.ID)
	if err != nil {
		return fmt.Errorf("update organizer request: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrInvalidTransition
	}
	society := ""
	if userStatus == domain.UserActive {
		society = req.SocietyName
	}
	if err := setUserStatus(ctx, tx, req.RequesterID, userStatus, society); err != nil {
		return err
	}
	return tx.Commit()
}

// setUserStatus updates the user's status and, when society is non-empty, their society name.
func setUserStatus(ctx context.Context, q querier, userID string, status domain.UserStatus, society string) error {
	query := `
		UPDATE users SET status = $1, society_name = COALESCE(NULLIF($2, ''), society_name), updated_at = NOW()
		WHERE id = $3
	`
	result, err := q.ExecContext(ctx, query, string(status), society, userID)
	if err != nil {
		return fmt.Errorf("update user status: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanOrganizerRequest(row scanner) (*domain.OrganizerRequest, error) {
	req := &domain.OrganizerRequest{}
	var reviewedBy, remarks sql.NullString
	var reviewedAt sql.NullTime
	err := row.Scan(&req.ID, &req.RequesterID, &req.SocietyName, &req.Reason, &req.Status, &reviewedBy, &reviewedAt, &remarks, &req.CreatedAt)
	if err != nil {
		return nil, err
	}
	req.ReviewedBy = stringPtr(reviewedBy)
	req.ReviewedAt = timePtr(reviewedAt)
	req.Remarks = stringPtr(remarks)
	return req, nil
}
