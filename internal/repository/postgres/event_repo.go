package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"festx/internal/domain"
)

const eventColumns = `id, title, description, category, society_name, venue, date, start_time, end_time, status,
		organizer_id, organizer_name, created_by_admin, is_paid, amount, expected_attendance, registration_count,
		form_fields, rejection_reason, has_conflict, conflict_reason, reschedule_reason, rescheduled_at,
		approved_by, approved_at, version, created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event, guard domain.GuardedWrite) error {
	formFields, err := json.Marshal(formFieldsOrEmpty(e.FormFields))
	if err != nil {
		return fmt.Errorf("encode form fields: %w", err)
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := checkSlot(ctx, tx, e, guard); err != nil {
		return err
	}
	query := `
		INSERT INTO events (title, description, category, society_name, venue, date, start_time, end_time, status,
			organizer_id, organizer_name, created_by_admin, is_paid, amount, expected_attendance, form_fields,
			has_conflict, conflict_reason, approved_by, approved_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING id, version
	`
	err = tx.QueryRowContext(ctx, query,
		e.Title, e.Description, e.Category, e.SocietyName, e.Venue, e.Date.Format(domain.DateLayout), e.StartTime, e.EndTime, string(e.Status),
		e.OrganizerID, e.OrganizerName, e.CreatedByAdmin, e.IsPaid, e.Amount, e.ExpectedAttendance, formFields,
		e.HasConflict, nullString(e.ConflictReason), nullString(e.ApprovedBy), nullTime(e.ApprovedAt), e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID, &e.Version)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return tx.Commit()
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ListByVenue(ctx context.Context, venue string, statuses domain.StatusSet) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE venue = $1 AND status = ANY($2)
		ORDER BY date, start_time, id
	`
	return queryEvents(ctx, r.DB, query, venue, pq.Array(statuses.Strings()))
}

func (r *eventRepository) List(ctx context.Context, filter domain.EventFilter, params domain.PaginationParams) ([]*domain.Event, int, error) {
	var where []string
	var args []any
	add := func(clause string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}
	switch filter.Status {
	case "":
	case domain.StatusCompleted:
		where = append(where, "status = 'approved' AND date < CURRENT_DATE")
	default:
		add("status = $%d", string(filter.Status))
	}
	if filter.Venue != "" {
		add("venue = $%d", filter.Venue)
	}
	if filter.OrganizerID != "" {
		add("organizer_id = $%d", filter.OrganizerID)
	}
	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + eventColumns + ` FROM events` + whereSQL + ` ORDER BY date DESC, start_time, id`
	if params.Paged() {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, params.PageSize, params.Offset())
	}
	events, err := queryEvents(ctx, r.DB, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event, expectedVersion int, guard domain.GuardedWrite) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := checkSlot(ctx, tx, e, guard); err != nil {
		return err
	}
	query := `
		UPDATE events SET title = $1, description = $2, category = $3, venue = $4, date = $5, start_time = $6,
			end_time = $7, status = $8, rejection_reason = $9, has_conflict = $10, conflict_reason = $11,
			reschedule_reason = $12, rescheduled_at = $13, approved_by = $14, approved_at = $15, updated_at = $16,
			version = version + 1
		WHERE id = $17 AND version = $18
		RETURNING version
	`
	err = tx.QueryRowContext(ctx, query,
		e.Title, e.Description, e.Category, e.Venue, e.Date.Format(domain.DateLayout), e.StartTime,
		e.EndTime, string(e.Status), nullString(e.RejectionReason), e.HasConflict, nullString(e.ConflictReason),
		nullString(e.RescheduleReason), nullTime(e.RescheduledAt), nullString(e.ApprovedBy), nullTime(e.ApprovedAt), e.UpdatedAt,
		e.ID, expectedVersion,
	).Scan(&e.Version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrVersionConflict
		}
		return fmt.Errorf("update event: %w", err)
	}
	return tx.Commit()
}

func (r *eventRepository) FlagConflicts(ctx context.Context, eventIDs []string, reason string) error {
	if len(eventIDs) == 0 {
		return nil
	}
	query := `
		UPDATE events SET has_conflict = TRUE, conflict_reason = $1, updated_at = NOW(), version = version + 1
		WHERE id = ANY($2) AND status = 'pending'
	`
	_, err := r.DB.ExecContext(ctx, query, reason, pq.Array(eventIDs))
	return err
}

// checkSlot serialises writers on the event's venue for the rest of tx and
// re-runs the conflict check against the rows visible under that lock.
func checkSlot(ctx context.Context, tx *sql.Tx, e *domain.Event, guard domain.GuardedWrite) error {
	if len(guard.Statuses) == 0 {
		return nil
	}
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, e.Venue); err != nil {
		return fmt.Errorf("lock venue: %w", err)
	}
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE venue = $1 AND date = $2 AND status = ANY($3)
		ORDER BY start_time, id
	`
	existing, err := queryEvents(ctx, tx, query, e.Venue, e.Date.Format(domain.DateLayout), pq.Array(guard.Statuses.Strings()))
	if err != nil {
		return fmt.Errorf("load venue bookings: %w", err)
	}
	if res := domain.HasConflict(e.Slot(), e.ID, existing, guard.Statuses); res.Conflict {
		return &domain.ConflictError{Event: res.ConflictingEvent}
	}
	return nil
}

func queryEvents(ctx context.Context, q querier, query string, args ...any) ([]*domain.Event, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func scanEvent(row scanner) (*domain.Event, error) {
	e := &domain.Event{}
	var formFields []byte
	var rejection, conflict, reschedule, approvedBy sql.NullString
	var rescheduledAt, approvedAt sql.NullTime
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Category, &e.SocietyName, &e.Venue, &e.Date, &e.StartTime, &e.EndTime, &e.Status,
		&e.OrganizerID, &e.OrganizerName, &e.CreatedByAdmin, &e.IsPaid, &e.Amount, &e.ExpectedAttendance, &e.RegistrationCount,
		&formFields, &rejection, &e.HasConflict, &conflict, &reschedule, &rescheduledAt,
		&approvedBy, &approvedAt, &e.Version, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(formFields) > 0 {
		if err := json.Unmarshal(formFields, &e.FormFields); err != nil {
			return nil, fmt.Errorf("decode form fields of event %s: %w", e.ID, err)
		}
	}
	e.RejectionReason = stringPtr(rejection)
	e.ConflictReason = stringPtr(conflict)
	e.RescheduleReason = stringPtr(reschedule)
	e.RescheduledAt = timePtr(rescheduledAt)
	e.ApprovedBy = stringPtr(approvedBy)
	e.ApprovedAt = timePtr(approvedAt)
	return e, nil
}

func formFieldsOrEmpty(fields []domain.FieldSpec) []domain.FieldSpec {
	if fields == nil {
		return []domain.FieldSpec{}
	}
	return fields
}
