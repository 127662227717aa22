package domain

// Role is the application role carried by the caller's token.
type Role string

const (
	RoleStudent   Role = "student"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}

// Actor identifies who performs an operation. Every state-changing service call
// receives it explicitly instead of reading a session.
type Actor struct {
	ID   string
	Role Role
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// IsOrganizer reports whether the actor holds the organizer role.
func (a Actor) IsOrganizer() bool { return a.Role == RoleOrganizer }

// CanManage reports whether the actor may manage the event (its organizer or an admin).
func (a Actor) CanManage(e *Event) bool {
	if e == nil {
		return false
	}
	return a.IsAdmin() || (a.ID != "" && e.OrganizerID == a.ID)
}
