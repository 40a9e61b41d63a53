package domain

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// clock is the package-level time source for default record dates.
// Tests freeze it via SetClock.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source used for default record dates. Pass nil to
// reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// Today returns the current calendar date as midnight UTC.
func Today() time.Time {
	return CalendarDate(clock.Now())
}

// CalendarDate truncates t to midnight UTC of its UTC calendar day.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
