package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"festx/internal/delivery/http/helpers"
	"festx/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserService struct {
	err   error
	users []*domain.User
	total int

	called     bool
	lastActor  domain.Actor
	lastFilter domain.UserFilter
	lastParams domain.PaginationParams
	lastID     string
	lastStatus domain.UserStatus
}

func (f *fakeUserService) ListUsers(ctx context.Context, actor domain.Actor, filter domain.UserFilter, params domain.PaginationParams) ([]*domain.User, int, error) {
	f.called, f.lastActor, f.lastFilter, f.lastParams = true, actor, filter, params
	return f.users, f.total, f.err
}

func (f *fakeUserService) SetUserStatus(ctx context.Context, actor domain.Actor, userID string, status domain.UserStatus) (*domain.User, error) {
	f.called, f.lastActor, f.lastID, f.lastStatus = true, actor, userID, status
	if f.err != nil {
		return nil, f.err
	}
	return &domain.User{ID: userID, Status: status}, nil
}

func (f *fakeUserService) DeleteUser(ctx context.Context, actor domain.Actor, userID string) error {
	f.called, f.lastActor, f.lastID = true, actor, userID
	return f.err
}

func TestUserController_ListUsers(t *testing.T) {
	t.Run("filters and pagination reach the service", func(t *testing.T) {
		fake := &fakeUserService{users: []*domain.User{{ID: "stu-2", Status: domain.UserSuspended}}, total: 21}
		ctrl := NewUserController(testLogger, fake)
		rr := httptest.NewRecorder()

		ctrl.ListUsers(rr, newRequest(http.MethodGet, "/users?role=student&status=suspended&q=ria&page=2&page_size=10", "", admin))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp ListUsersResponse
		require.Nil(t, decodeEnvelope(t, rr, &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "stu-2", resp.Items[0].ID)
		assert.Equal(t, 3, resp.Pagination.TotalPages)
		assert.Equal(t, domain.UserFilter{Role: domain.RoleStudent, Status: domain.UserSuspended, Search: "ria"}, fake.lastFilter)
		assert.Equal(t, 2, fake.lastParams.Page)
		assert.Equal(t, admin, fake.lastActor)
	})

	t.Run("non admin", func(t *testing.T) {
		fake := &fakeUserService{err: domain.ErrForbidden}
		ctrl := NewUserController(testLogger, fake)
		rr := httptest.NewRecorder()

		ctrl.ListUsers(rr, newRequest(http.MethodGet, "/users", "", organizer))

		require.Equal(t, http.StatusForbidden, rr.Code)
		apiErr := decodeEnvelope(t, rr, nil)
		require.NotNil(t, apiErr)
		assert.Equal(t, helpers.ErrCodeForbidden, apiErr.Code)
	})
}

func TestUserController_SetStatus(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fakeErr    error
		wantStatus int
		wantCode   string
		wantCalled bool
	}{
		{name: "suspend", body: `{"status":"suspended"}`, wantStatus: http.StatusOK, wantCalled: true},
		{name: "missing status", body: `{}`, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "unknown field", body: `{"status":"active","role":"admin"}`, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "rejected by service", body: `{"status":"pending"}`, fakeErr: domain.NewValidationError("status must be active or suspended"), wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest, wantCalled: true},
		{name: "under review", body: `{"status":"active"}`, fakeErr: domain.ErrInvalidTransition, wantStatus: http.StatusConflict, wantCode: helpers.ErrCodeInvalidTransition, wantCalled: true},
		{name: "unknown user", body: `{"status":"active"}`, fakeErr: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: helpers.ErrCodeNotFound, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeUserService{err: tt.fakeErr}
			ctrl := NewUserController(testLogger, fake)
			req := newRequest(http.MethodPost, "/users/stu-1/status", tt.body, admin)
			req.SetPathValue("userID", "stu-1")
			rr := httptest.NewRecorder()

			ctrl.SetStatus(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalled, fake.called)
			var user domain.User
			apiErr := decodeEnvelope(t, rr, &user)
			if tt.wantCode != "" {
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
				return
			}
			require.Nil(t, apiErr)
			assert.Equal(t, domain.UserSuspended, user.Status)
			assert.Equal(t, "stu-1", fake.lastID)
		})
	}
}

func TestUserController_DeleteUser(t *testing.T) {
	tests := []struct {
		name       string
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "still referenced", fakeErr: domain.ErrUserInUse, wantStatus: http.StatusConflict, wantCode: helpers.ErrCodeConflict},
		{name: "forbidden", fakeErr: domain.ErrForbidden, wantStatus: http.StatusForbidden, wantCode: helpers.ErrCodeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeUserService{err: tt.fakeErr}
			ctrl := NewUserController(testLogger, fake)
			req := newRequest(http.MethodDelete, "/users/stu-1", "", admin)
			req.SetPathValue("userID", "stu-1")
			rr := httptest.NewRecorder()

			ctrl.DeleteUser(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "stu-1", fake.lastID)
			if tt.wantCode == "" {
				assert.Empty(t, rr.Body.String())
				return
			}
			apiErr := decodeEnvelope(t, rr, nil)
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}
