package domain

import (
	"context"
	"time"
)

// NotificationTarget says how a notification's audience is resolved.
type NotificationTarget string

const (
	TargetSpecificUser NotificationTarget = "specific-user"
	TargetRole         NotificationTarget = "role"
)

// AudienceRole is the role audience of a broadcast; "all" reaches everyone.
type AudienceRole string

const (
	AudienceAll       AudienceRole = "all"
	AudienceStudent   AudienceRole = "student"
	AudienceOrganizer AudienceRole = "organizer"
)

// Valid reports whether r is a known audience.
func (r AudienceRole) Valid() bool {
	switch r {
	case AudienceAll, AudienceStudent, AudienceOrganizer:
		return true
	}
	return false
}

// Notification is an append-only message. Only ReadBy changes after creation.
// swagger:model Notification
type Notification struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Message        string             `json:"message"`
	TargetType     NotificationTarget `json:"target_type"`
	TargetUserID   *string            `json:"target_user_id,omitempty"`
	TargetRole     *AudienceRole      `json:"target_role,omitempty"`
	TargetEventID  *string            `json:"target_event_id,omitempty"`
	SenderID       string             `json:"sender_id"`
	SenderRole     Role               `json:"sender_role"`
	IsPlatformWide bool               `json:"is_platform_wide"`
	ReadBy         []string           `json:"read_by"`
	CreatedAt      time.Time          `json:"created_at"`
}

// IsReadBy reports whether userID has read the notification.
func (n *Notification) IsReadBy(userID string) bool {
	for _, id := range n.ReadBy {
		if id == userID {
			return true
		}
	}
	return false
}

// InboxItem is a notification as seen by one reader.
type InboxItem struct {
	*Notification
	Read bool `json:"read"`
}

// ScheduleSummary is the human-readable form of a slot embedded in messages.
type ScheduleSummary struct {
	Date  string
	Time  string
	Venue string
}

// SummarizeSlot formats a slot for display, e.g. "October 15, 2026", "09:00 - 11:00".
func SummarizeSlot(s Slot) ScheduleSummary {
	return ScheduleSummary{
		Date:  s.Date.Format("January 2, 2006"),
		Time:  s.Start.String() + " - " + s.End.String(),
		Venue: s.Venue,
	}
}

// NotificationRepository defines storage operations for notifications.
type NotificationRepository interface {
	// CreateBatch inserts all notifications in one transaction, or none.
	CreateBatch(ctx context.Context, notifications []*Notification) error
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id string) (*Notification, error)
	// ListForUser returns notifications addressed to the user or to their role, newest first.
	ListForUser(ctx context.Context, userID string, role Role, params PaginationParams) ([]*Notification, int, error)
	// MarkRead adds userID to read_by if absent.
	MarkRead(ctx context.Context, id, userID string) error
}

// Message IDs of the notification catalog.
const (
	MsgRescheduleTitle         = "notification_reschedule_title"
	MsgRescheduleMessage       = "notification_reschedule_message"
	MsgRescheduleDefaultReason = "notification_reschedule_default_reason"
)

// Translator renders catalogued messages.
type Translator interface {
	T(locale, key string, data map[string]any) string
}

// NotificationService defines the dispatcher and inbox operations.
type NotificationService interface {
	// NotifyReschedule writes one notification per registrant of the event and returns how many were written.
	NotifyReschedule(ctx context.Context, sender Actor, event *Event, oldSlot, newSlot Slot, reason string) (int, error)
	Broadcast(ctx context.Context, actor Actor, title, message string, audience AudienceRole) (*Notification, error)
	// SendToAttendees fans a message out to the registrants of one event, or of all the organizer's approved events when eventID is empty.
	SendToAttendees(ctx context.Context, actor Actor, eventID, title, message string) (int, error)
	ListForUser(ctx context.Context, actor Actor, params PaginationParams) ([]*InboxItem, int, error)
	MarkRead(ctx context.Context, actor Actor, notificationID string) error
}
