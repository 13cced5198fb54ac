package analytics

import (
	"fmt"
	"time"
)

// Period names a reporting window anchored at a reference instant.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ErrUnknownPeriod is returned for a period tag outside the supported set.
// Callers must not fall back to a default window.
var ErrUnknownPeriod = fmt.Errorf("unknown period")

// Window holds the current reporting interval [CurrentStart, Now] and the
// interval of identical length immediately preceding it,
// [PreviousStart, PreviousEnd).
type Window struct {
	CurrentStart  time.Time
	Now           time.Time
	PreviousStart time.Time
	PreviousEnd   time.Time
}

// ResolveWindow converts a period tag and a reference instant into the
// current and previous intervals. Month and year use calendar subtraction
// with the day-of-month clamped to the target month's length, never a
// fixed 30/365-day offset.
func ResolveWindow(period Period, now time.Time) (Window, error) {
	var start time.Time
	switch period {
	case PeriodDay:
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case PeriodWeek:
		start = now.AddDate(0, 0, -7)
	case PeriodMonth:
		start = addMonthsClamped(now, -1)
	case PeriodYear:
		start = addMonthsClamped(now, -12)
	default:
		return Window{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
	}

	d := now.Sub(start)
	return Window{
		CurrentStart:  start,
		Now:           now,
		PreviousStart: start.Add(-d),
		PreviousEnd:   start,
	}, nil
}

// addMonthsClamped shifts t by the given number of calendar months,
// clamping the day-of-month to the last day of the target month. Plain
// AddDate would normalize Mar 31 - 1 month to Mar 3 instead of Feb 28.
func addMonthsClamped(t time.Time, months int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month()+time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	day := t.Day()
	if last := daysIn(firstOfTarget.Year(), firstOfTarget.Month(), t.Location()); day > last {
		day = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	// day 0 of the next month is the last day of this month
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
