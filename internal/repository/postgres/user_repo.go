package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"festx/internal/domain"
)

const userColumns = `id, name, email, role, status, society_name, created_at, updated_at`

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) List(ctx context.Context, filter domain.UserFilter, params domain.PaginationParams) ([]*domain.User, int, error) {
	var where []string
	var args []any
	add := func(clause string, v any) {
		args = append(args, v)
		where = append(where, strings.ReplaceAll(clause, "?", fmt.Sprintf("$%d", len(args))))
	}
	if filter.Role != "" {
		add("role = ?", string(filter.Role))
	}
	if filter.Status != "" {
		add("status = ?", string(filter.Status))
	}
	if q := strings.TrimSpace(filter.Search); q != "" {
		add("(name ILIKE ? OR email ILIKE ?)", "%"+escapeLike(q)+"%")
	}
	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + userColumns + ` FROM users` + whereSQL + ` ORDER BY created_at DESC, id`
	if params.Paged() {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, params.PageSize, params.Offset())
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	users := []*domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) UpdateStatus(ctx context.Context, id string, status domain.UserStatus) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE users SET status = $1, updated_at = NOW() WHERE id = $2`, string(status), id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserInUse
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func scanUser(row scanner) (*domain.User, error) {
	u := &domain.User{}
	var society sql.NullString
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status, &society, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.SocietyName = society.String
	return u, nil
}
