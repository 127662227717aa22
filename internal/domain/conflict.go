package domain

import (
	"strings"
	"time"
)

// StatusSet is a set of event statuses that take part in a conflict check.
type StatusSet []EventStatus

// Contains reports whether s is in the set.
func (set StatusSet) Contains(s EventStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// Strings returns the statuses as plain strings, for query parameters.
func (set StatusSet) Strings() []string {
	out := make([]string, len(set))
	for i, v := range set {
		out[i] = string(v)
	}
	return out
}

var (
	// StatusesForCreate is checked when a new event is submitted or approved.
	StatusesForCreate = StatusSet{StatusApproved}
	// StatusesForReschedule is checked when an organizer moves an event.
	StatusesForReschedule = StatusSet{StatusApproved, StatusPending}
)

// ConflictResult is the outcome of HasConflict.
type ConflictResult struct {
	Conflict         bool   `json:"conflict"`
	ConflictingEvent *Event `json:"conflicting_event,omitempty"`
}

// Overlaps reports whether two slots on the same venue and day intersect.
// Intervals are half-open, so an event ending at 10:00 does not overlap one starting at 10:00.
func Overlaps(a, b Slot) bool {
	return !(a.End <= b.Start || a.Start >= b.End)
}

// SameDay reports whether two dates fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// HasConflict returns the first event in existing that occupies candidate's
// venue on the same day with an overlapping interval. Events with id
// excludeEventID or a status outside statuses are ignored. The result depends
// on the order of existing; pass a sorted slice when determinism matters.
// HasConflict never mutates its arguments.
func HasConflict(candidate Slot, excludeEventID string, existing []*Event, statuses StatusSet) ConflictResult {
	venue := strings.TrimSpace(candidate.Venue)
	for _, e := range existing {
		if e == nil || (excludeEventID != "" && e.ID == excludeEventID) {
			continue
		}
		if !statuses.Contains(e.Status) || e.Venue != venue {
			continue
		}
		if !SameDay(e.Date, candidate.Date) {
			continue
		}
		if Overlaps(candidate, e.Slot()) {
			return ConflictResult{Conflict: true, ConflictingEvent: e}
		}
	}
	return ConflictResult{}
}
