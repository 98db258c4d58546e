package billing

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidAnchorDay = errors.New("anchor day must be between 1 and 28")
	ErrZeroReference    = errors.New("reference date cannot be zero")
)

const (
	MinAnchorDay = 1
	MaxAnchorDay = 28
)

// Period is a contiguous billing window. Start and End are inclusive
// UTC civil dates; End is the day before the next anchor date, so
// consecutive periods for the same anchor tile exactly.
type Period struct {
	start time.Time
	end   time.Time
}

// PeriodFor maps a reference date onto the billing window that contains it.
// The reference time is an explicit argument; this function never reads the
// ambient clock.
func PeriodFor(ref time.Time, anchorDay int) (Period, error) {
	if anchorDay < MinAnchorDay || anchorDay > MaxAnchorDay {
		return Period{}, ErrInvalidAnchorDay
	}
	if ref.IsZero() {
		return Period{}, ErrZeroReference
	}

	ref = toDate(ref)

	var start time.Time
	if ref.Day() >= anchorDay {
		start = anchorDate(ref.Year(), ref.Month(), anchorDay)
	} else {
		prev := ref.AddDate(0, 0, -ref.Day()) // last day of previous month
		start = anchorDate(prev.Year(), prev.Month(), anchorDay)
	}

	nextMonth := start.AddDate(0, 0, daysInMonth(start.Year(), start.Month())-start.Day()+1)
	next := anchorDate(nextMonth.Year(), nextMonth.Month(), anchorDay)

	return Period{start: start, end: next.AddDate(0, 0, -1)}, nil
}

// ReconstructPeriod rebuilds a period from persisted dates without
// re-deriving it; statement rows are the source of truth once written.
func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: toDate(start), end: toDate(end)}
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

func (p Period) Contains(d time.Time) bool {
	d = toDate(d)
	return !d.Before(p.start) && !d.After(p.end)
}

// Next returns the window that begins the day after this one ends.
func (p Period) Next(anchorDay int) (Period, error) {
	return PeriodFor(p.end.AddDate(0, 0, 1), anchorDay)
}

// DueDate is the payment deadline: period end plus a grace window in days.
func (p Period) DueDate(graceDays int) time.Time {
	return p.end.AddDate(0, 0, graceDays)
}

func (p Period) String() string {
	return fmt.Sprintf("%s..%s", p.start.Format(time.DateOnly), p.end.Format(time.DateOnly))
}

// anchorDate clamps the anchor to the last day of short months.
func anchorDate(year int, month time.Month, anchorDay int) time.Time {
	day := anchorDay
	if dim := daysInMonth(year, month); day > dim {
		day = dim
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func toDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
