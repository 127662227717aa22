package domain

import (
	"context"
	"time"
)

// UserStatus is the account state of a user. Organizers start pending until
// approved; admins may suspend and reactivate accounts.
type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserPending   UserStatus = "pending"
	UserRejected  UserStatus = "rejected"
	UserSuspended UserStatus = "suspended"
)

func (s UserStatus) Valid() bool {
	switch s {
	case UserActive, UserPending, UserRejected, UserSuspended:
		return true
	}
	return false
}

// UserFilter narrows an admin user listing. Search matches name or email, case-insensitively.
type UserFilter struct {
	Role   Role
	Status UserStatus
	Search string
}

// User represents a registered user.
// swagger:model User
type User struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        Role       `json:"role"`
	Status      UserStatus `json:"status"`
	SocietyName string     `json:"society_name,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ApprovalStatus is the review state of an organizer request.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// OrganizerRequest asks an admin to activate a user as organizer.
// swagger:model OrganizerRequest
type OrganizerRequest struct {
	ID          string         `json:"id"`
	RequesterID string         `json:"requester_id"`
	SocietyName string         `json:"society_name"`
	Reason      string         `json:"reason"`
	Status      ApprovalStatus `json:"status"`
	ReviewedBy  *string        `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time     `json:"reviewed_at,omitempty"`
	Remarks     *string        `json:"remarks,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID and role.
type TokenVerifier interface {
	Verify(token string) (userID string, role Role, err error)
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	// List returns the page of matching users, newest first, and the total match count.
	List(ctx context.Context, filter UserFilter, params PaginationParams) ([]*User, int, error)
	UpdateStatus(ctx context.Context, id string, status UserStatus) error
	// Delete removes the user, or returns ErrUserInUse while other rows still reference it.
	Delete(ctx context.Context, id string) error
}

// UserService is the admin view of accounts.
type UserService interface {
	ListUsers(ctx context.Context, actor Actor, filter UserFilter, params PaginationParams) ([]*User, int, error)
	SetUserStatus(ctx context.Context, actor Actor, userID string, status UserStatus) (*User, error)
	DeleteUser(ctx context.Context, actor Actor, userID string) error
}

// OrganizerRequestRepository defines storage for organizer approval requests.
type OrganizerRequestRepository interface {
	// Create inserts the request and marks the requester pending in one transaction.
	Create(ctx context.Context, req *OrganizerRequest) error
	GetByID(ctx context.Context, id string) (*OrganizerRequest, error)
	ListByStatus(ctx context.Context, status ApprovalStatus) ([]*OrganizerRequest, error)
	// Review stores the decision on the request and the paired user status in one transaction.
	Review(ctx context.Context, req *OrganizerRequest, userStatus UserStatus) error
}

// ApprovalService defines organizer onboarding.
type ApprovalService interface {
	SubmitOrganizerRequest(ctx context.Context, actor Actor, societyName, reason string) (*OrganizerRequest, error)
	ListPending(ctx context.Context, actor Actor) ([]*OrganizerRequest, error)
	ApproveOrganizer(ctx context.Context, actor Actor, requestID string) (*OrganizerRequest, error)
	RejectOrganizer(ctx context.Context, actor Actor, requestID, remarks string) (*OrganizerRequest, error)
}
