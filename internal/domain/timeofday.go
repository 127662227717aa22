package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// TimeOfDay is a wall-clock time within a day, stored as minutes since midnight.
//
// The external format is a zero-padded 24-hour "HH:MM" string. Values are
// compared numerically, so "09:00" and "10:00" order correctly regardless of
// how they would sort as text. Non-padded input such as "9:00" is rejected at
// the boundary rather than silently compared.
type TimeOfDay int

const minutesPerDay = 24 * 60

// ParseTimeOfDay parses a zero-padded "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("time %q must be formatted as HH:MM", s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("time %q must be formatted as HH:MM", s)
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("time %q is out of range", s)
	}
	return TimeOfDay(h*60 + m), nil
}

// MustTimeOfDay is like ParseTimeOfDay but panics on error. For constants and tests.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Valid reports whether t lies within a single day.
func (t TimeOfDay) Valid() bool { return t >= 0 && t < minutesPerDay }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("time must be a string: %w", err)
	}
	v, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Value implements driver.Valuer; the column holds the HH:MM text form.
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan implements sql.Scanner.
func (t *TimeOfDay) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
