package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"festx/internal/domain"
)

const registrationColumns = `id, event_id, user_id, user_name, user_email, form_responses, qr_code, payment_status,
		attended, attended_at, scanned_by, registered_at`

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	responses := reg.FormResponses
	if responses == nil {
		responses = map[string]domain.FieldValue{}
	}
	encoded, err := json.Marshal(responses)
	if err != nil {
		return fmt.Errorf("encode form responses: %w", err)
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO registrations (event_id, user_id, user_name, user_email, form_responses, qr_code, payment_status, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query,
		reg.EventID, reg.UserID, reg.UserName, reg.UserEmail, encoded, reg.QRCode, string(reg.PaymentStatus), reg.RegisteredAt,
	).Scan(&reg.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert registration: %w", err)
	}
	result, err := tx.ExecContext(ctx, `UPDATE events SET registration_count = registration_count + 1 WHERE id = $1`, reg.EventID)
	if err != nil {
		return fmt.Errorf("increment registration count: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit()
}

func (r *registrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE id = $1`
	return getRegistration(r.DB.QueryRowContext(ctx, query, id))
}

func (r *registrationRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE event_id = $1 AND user_id = $2`
	return getRegistration(r.DB.QueryRowContext(ctx, query, eventID, userID))
}

func (r *registrationRepository) GetByEventAndQRCode(ctx context.Context, eventID, qrCode string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE event_id = $1 AND qr_code = $2`
	return getRegistration(r.DB.QueryRowContext(ctx, query, eventID, qrCode))
}

func (r *registrationRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE event_id = $1
		ORDER BY registered_at, id
	`
	return r.list(ctx, query, eventID)
}

func (r *registrationRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE user_id = $1
		ORDER BY registered_at DESC
	`
	return r.list(ctx, query, userID)
}

func (r *registrationRepository) MarkAttended(ctx context.Context, id, scannedBy string, at time.Time) (bool, error) {
	query := `
		UPDATE registrations SET attended = TRUE, attended_at = $2, scanned_by = $3
		WHERE id = $1 AND attended = FALSE
	`
	result, err := r.DB.ExecContext(ctx, query, id, at, scannedBy)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *registrationRepository) SetPaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE registrations SET payment_status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *registrationRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Registration, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func getRegistration(row *sql.Row) (*domain.Registration, error) {
	reg, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func scanRegistration(row scanner) (*domain.Registration, error) {
	reg := &domain.Registration{}
	var responses []byte
	var attendedAt sql.NullTime
	var scannedBy sql.NullString
	err := row.Scan(
		&reg.ID, &reg.EventID, &reg.UserID, &reg.UserName, &reg.UserEmail, &responses, &reg.QRCode, &reg.PaymentStatus,
		&reg.Attended, &attendedAt, &scannedBy, &reg.RegisteredAt,
	)
	if err != nil {
		return nil, err
	}
	if len(responses) > 0 {
		if err := json.Unmarshal(responses, &reg.FormResponses); err != nil {
			return nil, fmt.Errorf("decode form responses of registration %s: %w", reg.ID, err)
		}
	}
	reg.AttendedAt = timePtr(attendedAt)
	reg.ScannedBy = stringPtr(scannedBy)
	return reg, nil
}
