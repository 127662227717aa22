package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festx/internal/domain"
)

var eventColumnNames = []string{
	"id", "title", "description", "category", "society_name", "venue", "date", "start_time", "end_time", "status",
	"organizer_id", "organizer_name", "created_by_admin", "is_paid", "amount", "expected_attendance", "registration_count",
	"form_fields", "rejection_reason", "has_conflict", "conflict_reason", "reschedule_reason", "rescheduled_at",
	"approved_by", "approved_at", "version", "created_at", "updated_at",
}

var (
	testDay  = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	testTime = time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
)

func eventRow(id, venue, start, end, status string) []driver.Value {
	return []driver.Value{
		id, "Event " + id, "", "tech", "Coding Club", venue, testDay, start, end, status,
		"org-1", "Olivia", false, false, 0.0, 100, 0,
		[]byte(`[]`), nil, false, nil, nil, nil,
		nil, nil, 1, testTime, testTime,
	}
}

func newEvent(venue, start, end string, status domain.EventStatus) *domain.Event {
	return &domain.Event{
		Title:       "Hack Night",
		Category:    "tech",
		SocietyName: "Coding Club",
		Venue:       venue,
		Date:        testDay,
		StartTime:   domain.MustTimeOfDay(start),
		EndTime:     domain.MustTimeOfDay(end),
		Status:      status,
		OrganizerID: "org-1",
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

const slotQuery = `FROM events\s+WHERE venue = \$1 AND date = \$2 AND status = ANY\(\$3\)`

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		guard   domain.GuardedWrite
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		errIs   error
		wantErr bool
	}{
		{
			name:  "guarded insert with free slot",
			guard: domain.GuardedWrite{Statuses: domain.StatusesForCreate},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`pg_advisory_xact_lock`).
					WithArgs("Main Auditorium").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(slotQuery).
					WithArgs("Main Auditorium", "2026-10-20", pq.Array([]string{"approved"})).
					WillReturnRows(sqlmock.NewRows(eventColumnNames).
						AddRow(eventRow("ev-0", "Main Auditorium", "08:00", "10:00", "approved")...))
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "version"}).AddRow("ev-new", 1))
				mock.ExpectCommit()
			},
			wantID: "ev-new",
		},
		{
			name:  "guarded insert hits approved booking",
			guard: domain.GuardedWrite{Statuses: domain.StatusesForCreate},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`pg_advisory_xact_lock`).
					WithArgs("Main Auditorium").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(slotQuery).
					WillReturnRows(sqlmock.NewRows(eventColumnNames).
						AddRow(eventRow("ev-9", "Main Auditorium", "10:30", "12:00", "approved")...))
				mock.ExpectRollback()
			},
			wantErr: true,
			errIs:   domain.ErrConflict,
		},
		{
			name: "unguarded insert skips the lock",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "version"}).AddRow("ev-admin", 1))
				mock.ExpectCommit()
			},
			wantID: "ev-admin",
		},
		{
			name: "insert error rolls back",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO events`).WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			e := newEvent("Main Auditorium", "10:00", "11:00", domain.StatusPending)
			err = repo.Create(ctx, e, tt.guard)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, e.ID)
			require.Equal(t, 1, e.Version)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_Create_ConflictCarriesEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`pg_advisory_xact_lock`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(slotQuery).
		WillReturnRows(sqlmock.NewRows(eventColumnNames).
			AddRow(eventRow("ev-a", "Main Auditorium", "09:00", "10:00", "approved")...).
			AddRow(eventRow("ev-b", "Main Auditorium", "10:30", "12:00", "approved")...))
	mock.ExpectRollback()

	err = NewEventRepository(db).Create(context.Background(),
		newEvent("Main Auditorium", "10:00", "11:00", domain.StatusPending),
		domain.GuardedWrite{Statuses: domain.StatusesForCreate})

	var conflict *domain.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "ev-b", conflict.Event.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()
	guard := domain.GuardedWrite{Statuses: domain.StatusesForReschedule}

	tests := []struct {
		name        string
		mock        func(mock sqlmock.Sqlmock)
		wantVersion int
		errIs       error
	}{
		{
			name: "success ignores own row",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`pg_advisory_xact_lock`).WithArgs("Seminar Hall A").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(slotQuery).
					WithArgs("Seminar Hall A", "2026-10-20", pq.Array([]string{"approved", "pending"})).
					WillReturnRows(sqlmock.NewRows(eventColumnNames).
						AddRow(eventRow("ev-1", "Seminar Hall A", "10:00", "11:00", "pending")...))
				mock.ExpectQuery(`UPDATE events SET`).
					WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
						sqlmock.AnyArg(), "pending", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
						sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
						"ev-1", 3).
					WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(4))
				mock.ExpectCommit()
			},
			wantVersion: 4,
		},
		{
			name: "stale version",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`pg_advisory_xact_lock`).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(slotQuery).WillReturnRows(sqlmock.NewRows(eventColumnNames))
				mock.ExpectQuery(`UPDATE events SET`).WillReturnRows(sqlmock.NewRows([]string{"version"}))
				mock.ExpectRollback()
			},
			errIs: domain.ErrVersionConflict,
		},
		{
			name: "pending booking blocks reschedule",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`pg_advisory_xact_lock`).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(slotQuery).
					WillReturnRows(sqlmock.NewRows(eventColumnNames).
						AddRow(eventRow("ev-2", "Seminar Hall A", "10:30", "11:30", "pending")...))
				mock.ExpectRollback()
			},
			errIs: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			e := newEvent("Seminar Hall A", "10:00", "11:00", domain.StatusPending)
			e.ID = "ev-1"
			e.Version = 3
			err = NewEventRepository(db).Update(ctx, e, 3, guard)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantVersion, e.Version)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		row := eventRow("ev-1", "Main Auditorium", "10:00", "11:00", "rejected")
		row[17] = []byte(`[{"label":"Team","kind":"text","required":true}]`)
		row[18] = "Cancelled by Admin"
		mock.ExpectQuery(`SELECT id, title, description`).
			WithArgs("ev-1").
			WillReturnRows(sqlmock.NewRows(eventColumnNames).AddRow(row...))

		got, err := NewEventRepository(db).GetByID(ctx, "ev-1")
		require.NoError(t, err)
		assert.Equal(t, "ev-1", got.ID)
		assert.Equal(t, domain.StatusRejected, got.Status)
		assert.Equal(t, "10:00", got.StartTime.String())
		assert.Equal(t, "11:00", got.EndTime.String())
		require.NotNil(t, got.RejectionReason)
		assert.Equal(t, domain.CancelledByAdminReason, *got.RejectionReason)
		assert.Nil(t, got.ConflictReason)
		assert.Equal(t, []domain.FieldSpec{{Label: "Team", Kind: domain.FieldText, Required: true}}, got.FormFields)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, title, description`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		got, err := NewEventRepository(db).GetByID(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.Nil(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_ListByVenue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`WHERE venue = \$1 AND status = ANY\(\$2\)\s+ORDER BY date, start_time, id`).
		WithArgs("Main Auditorium", pq.Array([]string{"approved", "pending"})).
		WillReturnRows(sqlmock.NewRows(eventColumnNames).
			AddRow(eventRow("ev-1", "Main Auditorium", "09:00", "10:00", "approved")...).
			AddRow(eventRow("ev-2", "Main Auditorium", "13:00", "14:00", "pending")...))

	got, err := NewEventRepository(db).ListByVenue(context.Background(), "Main Auditorium", domain.StatusesForReschedule)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ev-1", got[0].ID)
	assert.Equal(t, domain.StatusPending, got[1].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		filter domain.EventFilter
		params domain.PaginationParams
		mock   func(mock sqlmock.Sqlmock)
		total  int
		count  int
	}{
		{
			name:   "status and organizer with page",
			filter: domain.EventFilter{Status: domain.StatusApproved, OrganizerID: "org-1"},
			params: domain.PaginationParams{Page: 2, PageSize: 10},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM events WHERE status = \$1 AND organizer_id = \$2`).
					WithArgs("approved", "org-1").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
				mock.ExpectQuery(`WHERE status = \$1 AND organizer_id = \$2 ORDER BY date DESC, start_time, id LIMIT \$3 OFFSET \$4`).
					WithArgs("approved", "org-1", 10, 10).
					WillReturnRows(sqlmock.NewRows(eventColumnNames).
						AddRow(eventRow("ev-11", "Lab 1", "09:00", "10:00", "approved")...))
			},
			total: 11,
			count: 1,
		},
		{
			name:   "completed is derived",
			filter: domain.EventFilter{Status: domain.StatusCompleted},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM events WHERE status = 'approved' AND date < CURRENT_DATE`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectQuery(`WHERE status = 'approved' AND date < CURRENT_DATE ORDER BY`).
					WillReturnRows(sqlmock.NewRows(eventColumnNames))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			got, total, err := NewEventRepository(db).List(ctx, tt.filter, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.total, total)
			assert.Len(t, got, tt.count)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_FlagConflicts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE events SET has_conflict = TRUE`).
		WithArgs("Conflicts with official event Convocation", pq.Array([]string{"ev-1", "ev-2"})).
		WillReturnResult(sqlmock.NewResult(0, 2))

	repo := NewEventRepository(db)
	require.NoError(t, repo.FlagConflicts(context.Background(), []string{"ev-1", "ev-2"}, "Conflicts with official event Convocation"))
	require.NoError(t, repo.FlagConflicts(context.Background(), nil, "ignored"))
	require.NoError(t, mock.ExpectationsWereMet())
}
