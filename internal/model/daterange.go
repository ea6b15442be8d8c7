package model

import "time"

// DateRange is an inclusive pair of calendar days as selected by a person
// picking two dates. Start after End is a valid-but-vacuous query, not an error.
type DateRange struct {
	Start time.Time // calendar day; time-of-day ignored
	End   time.Time
}

// NewDateRange builds a range covering both full days.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: start, End: end}
}

// Window expands the calendar-day pair to the closed timestamp interval
// [start 00:00:00, end 23:59:59]. Whole-day selection stays intuitive: picking
// the same date for both bounds covers exactly that day.
func (r DateRange) Window() (from, to time.Time) {
	loc := r.Start.Location()
	from = time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, loc)
	to = time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 23, 59, 59, 0, r.End.Location())
	return from, to
}

// Inverted reports whether the start day is after the end day.
func (r DateRange) Inverted() bool {
	from, to := r.Window()
	return from.After(to)
}

// Contains reports whether t falls inside the closed window.
func (r DateRange) Contains(t time.Time) bool {
	from, to := r.Window()
	return !t.Before(from) && !t.After(to)
}
