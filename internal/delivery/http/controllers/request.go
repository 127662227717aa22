package controllers

import (
	"net/http"
	"strings"
	"time"

	"festx/internal/delivery/http/helpers"
	"festx/internal/delivery/http/middleware"
	"festx/internal/domain"
)

// SlotRequest is the venue booking part of event request bodies.
// Date is YYYY-MM-DD; times are HH:MM (24h).
type SlotRequest struct {
	Venue     string `json:"venue"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Slot parses the request into a domain.Slot. Both times are required here, as
// the zero TimeOfDay is midnight; venue, date and range rules are left to the domain.
func (s SlotRequest) Slot() (domain.Slot, []string) {
	var errs []string
	slot := domain.Slot{Venue: strings.TrimSpace(s.Venue)}
	if s.Date != "" {
		d, err := time.Parse(domain.DateLayout, s.Date)
		if err != nil {
			errs = append(errs, "date must be YYYY-MM-DD")
		}
		slot.Date = d
	}
	start, msg := parseTimeField("start_time", s.StartTime)
	if msg != "" {
		errs = append(errs, msg)
	}
	end, msg := parseTimeField("end_time", s.EndTime)
	if msg != "" {
		errs = append(errs, msg)
	}
	slot.Start, slot.End = start, end
	return slot, errs
}

func parseTimeField(name, value string) (domain.TimeOfDay, string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, name + " is required"
	}
	t, err := domain.ParseTimeOfDay(value)
	if err != nil {
		return 0, name + " must be HH:MM"
	}
	return t, ""
}

// EventView is an event as returned by the API, with its status as readers see it.
type EventView struct {
	*domain.Event
	DisplayStatus domain.EventStatus `json:"display_status"`
}

func newEventView(e *domain.Event, now time.Time) *EventView {
	if e == nil {
		return nil
	}
	return &EventView{Event: e, DisplayStatus: e.DisplayStatus(now)}
}

func newEventViews(events []*domain.Event, now time.Time) []*EventView {
	out := make([]*EventView, len(events))
	for i, e := range events {
		out[i] = newEventView(e, now)
	}
	return out
}

// requireActor writes 401 and returns false when the request carries no authenticated caller.
func requireActor(w http.ResponseWriter, r *http.Request) (domain.Actor, bool) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return domain.Actor{}, false
	}
	return actor, true
}

// pathValue writes 400 and returns false when the named path segment is empty.
func pathValue(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := r.PathValue(name)
	if v == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing "+name)
		return "", false
	}
	return v, true
}
