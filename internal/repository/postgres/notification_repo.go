package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"festx/internal/domain"
)

const notificationColumns = `id, title, message, target_type, target_user_id, target_role, target_event_id,
		sender_id, sender_role, is_platform_wide, read_by, created_at`

const insertNotification = `
	INSERT INTO notifications (id, title, message, target_type, target_user_id, target_role, target_event_id,
		sender_id, sender_role, is_platform_wide, read_by, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`

type notificationRepository struct {
	DB *sql.DB
}

func NewNotificationRepository(db *sql.DB) domain.NotificationRepository {
	return &notificationRepository{
		DB: db,
	}
}

func (r *notificationRepository) CreateBatch(ctx context.Context, notifications []*domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, n := range notifications {
		if err := insertNotificationRow(ctx, tx, n); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	return insertNotificationRow(ctx, r.DB, n)
}

func (r *notificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`
	n, err := scanNotification(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

func (r *notificationRepository) ListForUser(ctx context.Context, userID string, role domain.Role, params domain.PaginationParams) ([]*domain.Notification, int, error) {
	where := ` WHERE target_user_id = $1 OR (target_type = 'role' AND target_role IN ('all', $2))`
	args := []any{userID, string(role)}

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM notifications`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + notificationColumns + ` FROM notifications` + where + ` ORDER BY created_at DESC, id`
	if params.Paged() {
		query += ` LIMIT $3 OFFSET $4`
		args = append(args, params.PageSize, params.Offset())
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	list := make([]*domain.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// MarkRead is a no-op when userID already read the notification.
func (r *notificationRepository) MarkRead(ctx context.Context, id, userID string) error {
	query := `
		UPDATE notifications SET read_by = array_append(read_by, $2)
		WHERE id = $1 AND NOT ($2 = ANY(read_by))
	`
	_, err := r.DB.ExecContext(ctx, query, id, userID)
	return err
}

func insertNotificationRow(ctx context.Context, q querier, n *domain.Notification) error {
	readBy := n.ReadBy
	if readBy == nil {
		readBy = []string{}
	}
	var targetRole sql.NullString
	if n.TargetRole != nil {
		targetRole = sql.NullString{String: string(*n.TargetRole), Valid: true}
	}
	_, err := q.ExecContext(ctx, insertNotification,
		n.ID, n.Title, n.Message, string(n.TargetType), nullString(n.TargetUserID), targetRole, nullString(n.TargetEventID),
		n.SenderID, string(n.SenderRole), n.IsPlatformWide, pq.Array(readBy), n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func scanNotification(row scanner) (*domain.Notification, error) {
	n := &domain.Notification{}
	var targetUser, targetRole, targetEvent sql.NullString
	err := row.Scan(
		&n.ID, &n.Title, &n.Message, &n.TargetType, &targetUser, &targetRole, &targetEvent,
		&n.SenderID, &n.SenderRole, &n.IsPlatformWide, pq.Array(&n.ReadBy), &n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	n.TargetUserID = stringPtr(targetUser)
	n.TargetEventID = stringPtr(targetEvent)
	if targetRole.Valid {
		role := domain.AudienceRole(targetRole.String)
		n.TargetRole = &role
	}
	if n.ReadBy == nil {
		n.ReadBy = []string{}
	}
	return n, nil
}
