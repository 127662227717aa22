package services

import (
	"context"
	"testing"
	"time"

	"festx/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService() (*userService, *fakeUserRepo) {
	users := newFakeUserRepo(
		&domain.User{ID: adminUser.ID, Name: adminUser.Name, Email: "dean@campus.edu", Role: domain.RoleAdmin, Status: domain.UserActive},
		&domain.User{ID: "stu-1", Name: "Sam", Email: "sam@campus.edu", Role: domain.RoleStudent, Status: domain.UserActive},
		&domain.User{ID: "stu-2", Name: "Ria", Email: "ria@campus.edu", Role: domain.RoleStudent, Status: domain.UserSuspended},
		&domain.User{ID: "org-1", Name: "Robotics Club", Email: "robots@campus.edu", Role: domain.RoleOrganizer, Status: domain.UserActive},
		&domain.User{ID: "org-3", Name: "New Club", Email: "new@campus.edu", Role: domain.RoleOrganizer, Status: domain.UserPending},
	)
	return NewUserService(users, testLogger, 5*time.Second).(*userService), users
}

func TestUserService_ListUsers(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		actor   domain.Actor
		filter  domain.UserFilter
		wantIDs []string
		wantErr error
	}{
		{name: "all users", actor: admin, wantIDs: []string{"admin-1", "org-1", "org-3", "stu-1", "stu-2"}},
		{name: "students", actor: admin, filter: domain.UserFilter{Role: domain.RoleStudent}, wantIDs: []string{"stu-1", "stu-2"}},
		{name: "suspended students", actor: admin, filter: domain.UserFilter{Role: domain.RoleStudent, Status: domain.UserSuspended}, wantIDs: []string{"stu-2"}},
		{name: "search is trimmed", actor: admin, filter: domain.UserFilter{Search: "  robots@ "}, wantIDs: []string{"org-1"}},
		{name: "unknown role", actor: admin, filter: domain.UserFilter{Role: "faculty"}, wantErr: domain.ErrInvalidInput},
		{name: "unknown status", actor: admin, filter: domain.UserFilter{Status: "banned"}, wantErr: domain.ErrInvalidInput},
		{name: "organizer forbidden", actor: organizer, wantErr: domain.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestUserService()
			users, total, err := svc.ListUsers(ctx, tt.actor, tt.filter, domain.PaginationParams{})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			ids := []string{}
			for _, u := range users {
				ids = append(ids, u.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, len(tt.wantIDs), total)
		})
	}
}

func TestUserService_SetUserStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("suspend then reactivate", func(t *testing.T) {
		svc, users := newTestUserService()
		u, err := svc.SetUserStatus(ctx, admin, "stu-1", domain.UserSuspended)
		require.NoError(t, err)
		assert.Equal(t, domain.UserSuspended, u.Status)
		assert.Equal(t, domain.UserSuspended, users.byID["stu-1"].Status)

		u, err = svc.SetUserStatus(ctx, admin, "stu-1", domain.UserActive)
		require.NoError(t, err)
		assert.Equal(t, domain.UserActive, u.Status)
		assert.Equal(t, domain.UserActive, users.byID["stu-1"].Status)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		svc, _ := newTestUserService()
		u, err := svc.SetUserStatus(ctx, admin, "stu-2", domain.UserSuspended)
		require.NoError(t, err)
		assert.Equal(t, domain.UserSuspended, u.Status)
	})

	tests := []struct {
		name    string
		actor   domain.Actor
		userID  string
		status  domain.UserStatus
		wantErr error
	}{
		{"organizer forbidden", organizer, "stu-1", domain.UserSuspended, domain.ErrForbidden},
		{"pending is not settable", admin, "stu-1", domain.UserPending, domain.ErrInvalidInput},
		{"own account", admin, adminUser.ID, domain.UserSuspended, domain.ErrInvalidInput},
		{"organizer under review", admin, "org-3", domain.UserActive, domain.ErrInvalidTransition},
		{"unknown user", admin, "ghost", domain.UserSuspended, domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users := newTestUserService()
			_, err := svc.SetUserStatus(ctx, tt.actor, tt.userID, tt.status)
			require.ErrorIs(t, err, tt.wantErr)
			if u, ok := users.byID[tt.userID]; ok && tt.userID == "org-3" {
				assert.Equal(t, domain.UserPending, u.Status)
			}
		})
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("admin deletes a user", func(t *testing.T) {
		svc, users := newTestUserService()
		require.NoError(t, svc.DeleteUser(ctx, admin, "stu-2"))
		assert.NotContains(t, users.byID, "stu-2")
	})

	tests := []struct {
		name    string
		actor   domain.Actor
		userID  string
		wantErr error
	}{
		{"organizer forbidden", organizer, "stu-1", domain.ErrForbidden},
		{"own account", admin, adminUser.ID, domain.ErrInvalidInput},
		{"unknown user", admin, "ghost", domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users := newTestUserService()
			require.ErrorIs(t, svc.DeleteUser(ctx, tt.actor, tt.userID), tt.wantErr)
			assert.Len(t, users.byID, 5)
		})
	}
}
