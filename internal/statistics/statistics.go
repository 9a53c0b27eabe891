package statistics

import (
	"time"

	"github.com/ravener/Flowtime/internal/model"
)

// Statistics stores the outcome of the most recent load: the full day
// history, the record designated as today, and the productive-day label
// computed elsewhere. It holds a finished result and does no parsing itself;
// a host embedding this in a multi-threaded program must serialize access.
type Statistics struct {
	days          []model.Day
	todayIndex    int
	anomalies     []Anomaly
	productiveDay string
}

// New wraps a parse result.
func New(res Result) *Statistics {
	return &Statistics{
		days:       res.Days,
		todayIndex: res.TodayIndex,
		anomalies:  res.Anomalies,
	}
}

// Empty returns the state of a first run with no statistics file: a single
// synthesized zero-valued record for the reference day, designated today.
func Empty(now time.Time) *Statistics {
	return &Statistics{
		days: []model.Day{model.NewDay(now, 0, 0)},
	}
}

// Days returns the day records in document order. The returned slice is a
// copy, so consumers cannot mutate loader state through it.
func (s *Statistics) Days() []model.Day {
	out := make([]model.Day, len(s.days))
	copy(out, s.days)
	return out
}

// Today returns the record designated for the reference day.
func (s *Statistics) Today() model.Day { return s.days[s.todayIndex] }

// Anomalies returns the problems recovered during the load, in document order.
func (s *Statistics) Anomalies() []Anomaly {
	out := make([]Anomaly, len(s.anomalies))
	copy(out, s.anomalies)
	return out
}

// ProductiveDay returns the most-productive-day label, or the empty string
// when it has not been computed yet.
func (s *Statistics) ProductiveDay() string { return s.productiveDay }

// SetProductiveDay stores the label computed by the caller. The computation
// itself lives outside this package.
func (s *Statistics) SetProductiveDay(label string) { s.productiveDay = label }
