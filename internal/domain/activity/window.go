// Package activity decides whether an appointment is currently active.
// The whole policy lives here as pure functions of the stored schedule
// and an explicit evaluation time, so it is testable without a database
// or the system clock.
package activity

import (
	"fmt"
	"time"
)

// Policy selects which side of the scheduled instant the window covers.
type Policy int

const (
	// PolicyForward marks an appointment active from its scheduled
	// instant T until T+Duration: T <= now < T+Duration.
	PolicyForward Policy = iota
	// PolicyBackward marks an appointment active for Duration after it
	// has passed: now-Duration <= T <= now.
	PolicyBackward
)

func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "forward":
		return PolicyForward, nil
	case "backward":
		return PolicyBackward, nil
	}
	return PolicyForward, fmt.Errorf("unknown activity window policy %q", s)
}

func (p Policy) String() string {
	if p == PolicyBackward {
		return "backward"
	}
	return "forward"
}

// Window is the full evaluation policy: how long an appointment stays
// active, on which side of the scheduled instant, and in which timezone
// stored local dates and times are interpreted.
type Window struct {
	Duration time.Duration
	Policy   Policy
	Location *time.Location
}

// Accepted layouts for the stored clock time. Postgres TIME columns read
// back as HH:MM:SS; request payloads may carry HH:MM.
var timeLayouts = []string{"15:04:05", "15:04"}

// Timestamp combines a calendar date and a clock time into a single
// instant in loc. The second return is false when either part is missing
// or the clock time does not parse.
func Timestamp(date *time.Time, timeOfDay *string, loc *time.Location) (time.Time, bool) {
	if date == nil || timeOfDay == nil {
		return time.Time{}, false
	}

	var tod time.Time
	parsed := false
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, *timeOfDay); err == nil {
			tod = t
			parsed = true
			break
		}
	}
	if !parsed {
		return time.Time{}, false
	}

	y, m, d := date.Date()
	return time.Date(y, m, d, tod.Hour(), tod.Minute(), tod.Second(), 0, loc), true
}

// Evaluate reports whether an appointment scheduled at date+timeOfDay is
// active at now under w. An appointment whose instant cannot be computed
// is never active.
func Evaluate(date *time.Time, timeOfDay *string, now time.Time, w Window) bool {
	t, ok := Timestamp(date, timeOfDay, w.Location)
	if !ok {
		return false
	}

	switch w.Policy {
	case PolicyBackward:
		// now-Duration <= T <= now
		return !t.After(now) && !t.Before(now.Add(-w.Duration))
	default:
		// T <= now < T+Duration
		return !now.Before(t) && now.Before(t.Add(w.Duration))
	}
}
