package model

import (
	"time"

	"github.com/ravener/Flowtime/internal/timecalc"
)

// Day represents one calendar day of tracked time. It is immutable after
// construction; a correction means building a replacement value.
type Day struct {
	date      time.Time
	worktime  int64
	breaktime int64
}

// NewDay constructs a Day from an already-validated date and non-negative
// worktime/breaktime counts in seconds.
func NewDay(date time.Time, worktime, breaktime int64) Day {
	return Day{date: date, worktime: worktime, breaktime: breaktime}
}

// Date returns the calendar date of the record.
func (d Day) Date() time.Time { return d.date }

// Worktime returns the tracked worktime in seconds.
func (d Day) Worktime() int64 { return d.worktime }

// Breaktime returns the tracked breaktime in seconds.
func (d Day) Breaktime() int64 { return d.breaktime }

// On reports whether the record falls on the same calendar day as t,
// evaluated in t's location. The reference clock is UTC unless the user
// configured a timezone, so a zone-less stored date compares as-is.
func (d Day) On(t time.Time) bool {
	return timecalc.SameDay(d.date.In(t.Location()), t)
}

// SameDay reports whether two records fall on the same calendar day.
func (d Day) SameDay(other Day) bool {
	return d.On(other.date)
}
