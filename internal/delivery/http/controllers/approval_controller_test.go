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

type fakeApprovalService struct {
	err     error
	pending []*domain.OrganizerRequest

	called      bool
	lastActor   domain.Actor
	lastID      string
	lastSociety string
	lastReason  string
	lastRemarks string
}

func (f *fakeApprovalService) SubmitOrganizerRequest(ctx context.Context, actor domain.Actor, societyName, reason string) (*domain.OrganizerRequest, error) {
	f.called, f.lastActor, f.lastSociety, f.lastReason = true, actor, societyName, reason
	if f.err != nil {
		return nil, f.err
	}
	return &domain.OrganizerRequest{ID: "req-1", RequesterID: actor.ID, SocietyName: societyName, Reason: reason, Status: domain.ApprovalPending}, nil
}

func (f *fakeApprovalService) ListPending(ctx context.Context, actor domain.Actor) ([]*domain.OrganizerRequest, error) {
	f.called, f.lastActor = true, actor
	return f.pending, f.err
}

func (f *fakeApprovalService) ApproveOrganizer(ctx context.Context, actor domain.Actor, requestID string) (*domain.OrganizerRequest, error) {
	f.called, f.lastActor, f.lastID = true, actor, requestID
	if f.err != nil {
		return nil, f.err
	}
	return &domain.OrganizerRequest{ID: requestID, Status: domain.ApprovalApproved}, nil
}

func (f *fakeApprovalService) RejectOrganizer(ctx context.Context, actor domain.Actor, requestID, remarks string) (*domain.OrganizerRequest, error) {
	f.called, f.lastActor, f.lastID, f.lastRemarks = true, actor, requestID, remarks
	if f.err != nil {
		return nil, f.err
	}
	return &domain.OrganizerRequest{ID: requestID, Status: domain.ApprovalRejected, Remarks: &remarks}, nil
}

func TestApprovalController_Submit(t *testing.T) {
	tests := []struct {
		name       string
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{name: "submitted", wantStatus: http.StatusCreated},
		{name: "already pending", fakeErr: domain.ErrInvalidTransition, wantStatus: http.StatusConflict, wantCode: helpers.ErrCodeInvalidTransition},
		{name: "student forbidden", fakeErr: domain.ErrForbidden, wantStatus: http.StatusForbidden, wantCode: helpers.ErrCodeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeApprovalService{err: tt.fakeErr}
			ctrl := NewApprovalController(testLogger, fake)
			body := `{"society_name":"Robotics Club","reason":"Annual expo"}`
			rr := httptest.NewRecorder()

			ctrl.Submit(rr, newRequest(http.MethodPost, "/organizer-requests", body, organizer))

			require.Equal(t, tt.wantStatus, rr.Code)
			var req domain.OrganizerRequest
			apiErr := decodeEnvelope(t, rr, &req)
			if tt.wantCode != "" {
				require.NotNil(t, apiErr)
				assert.Equal(t, tt.wantCode, apiErr.Code)
				return
			}
			require.Nil(t, apiErr)
			assert.Equal(t, domain.ApprovalPending, req.Status)
			assert.Equal(t, "Robotics Club", fake.lastSociety)
			assert.Equal(t, "Annual expo", fake.lastReason)
		})
	}
}

func TestApprovalController_ListPending(t *testing.T) {
	fake := &fakeApprovalService{pending: []*domain.OrganizerRequest{
		{ID: "req-1", RequesterID: "org-3", SocietyName: "Drama Society", Status: domain.ApprovalPending},
	}}
	ctrl := NewApprovalController(testLogger, fake)
	rr := httptest.NewRecorder()

	ctrl.ListPending(rr, newRequest(http.MethodGet, "/organizer-requests", "", admin))

	require.Equal(t, http.StatusOK, rr.Code)
	var list []*domain.OrganizerRequest
	require.Nil(t, decodeEnvelope(t, rr, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Drama Society", list[0].SocietyName)
}

func TestApprovalController_Approve(t *testing.T) {
	fake := &fakeApprovalService{}
	ctrl := NewApprovalController(testLogger, fake)
	req := newRequest(http.MethodPost, "/organizer-requests/req-1/approve", "", admin)
	req.SetPathValue("requestID", "req-1")
	rr := httptest.NewRecorder()

	ctrl.Approve(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var out domain.OrganizerRequest
	require.Nil(t, decodeEnvelope(t, rr, &out))
	assert.Equal(t, domain.ApprovalApproved, out.Status)
	assert.Equal(t, "req-1", fake.lastID)
	assert.Equal(t, admin, fake.lastActor)
}

func TestApprovalController_Reject(t *testing.T) {
	t.Run("with remarks", func(t *testing.T) {
		fake := &fakeApprovalService{}
		ctrl := NewApprovalController(testLogger, fake)
		req := newRequest(http.MethodPost, "/organizer-requests/req-1/reject", `{"remarks":"Society not registered"}`, admin)
		req.SetPathValue("requestID", "req-1")
		rr := httptest.NewRecorder()

		ctrl.Reject(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var out domain.OrganizerRequest
		require.Nil(t, decodeEnvelope(t, rr, &out))
		assert.Equal(t, domain.ApprovalRejected, out.Status)
		require.NotNil(t, out.Remarks)
		assert.Equal(t, "Society not registered", *out.Remarks)
	})

	t.Run("already reviewed", func(t *testing.T) {
		fake := &fakeApprovalService{err: domain.ErrInvalidTransition}
		ctrl := NewApprovalController(testLogger, fake)
		req := newRequest(http.MethodPost, "/organizer-requests/req-1/reject", `{"remarks":"late"}`, admin)
		req.SetPathValue("requestID", "req-1")
		rr := httptest.NewRecorder()

		ctrl.Reject(rr, req)

		require.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("missing body", func(t *testing.T) {
		fake := &fakeApprovalService{}
		ctrl := NewApprovalController(testLogger, fake)
		req := newRequest(http.MethodPost, "/organizer-requests/req-1/reject", "", admin)
		req.SetPathValue("requestID", "req-1")
		rr := httptest.NewRecorder()

		ctrl.Reject(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.False(t, fake.called)
	})
}
