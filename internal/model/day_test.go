package model_test

import (
	"testing"
	"time"

	"github.com/ravener/Flowtime/internal/model"
)

func TestDayAccessors(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	d := model.NewDay(date, 3600, 600)

	if !d.Date().Equal(date) {
		t.Errorf("Date() = %v, want %v", d.Date(), date)
	}
	if d.Worktime() != 3600 {
		t.Errorf("Worktime() = %d, want 3600", d.Worktime())
	}
	if d.Breaktime() != 600 {
		t.Errorf("Breaktime() = %d, want 600", d.Breaktime())
	}
}

func TestDayOn(t *testing.T) {
	d := model.NewDay(time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC), 0, 0)

	if !d.On(time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC)) {
		t.Error("On(same day) = false, want true")
	}
	if d.On(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)) {
		t.Error("On(next day) = true, want false")
	}
	// Same instant, different year.
	if d.On(time.Date(2023, 5, 1, 9, 30, 0, 0, time.UTC)) {
		t.Error("On(previous year) = true, want false")
	}
}

func TestDaySameDay(t *testing.T) {
	morning := model.NewDay(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), 100, 0)
	evening := model.NewDay(time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC), 200, 0)
	other := model.NewDay(time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC), 100, 0)

	if !morning.SameDay(evening) {
		t.Error("SameDay(morning, evening) = false, want true")
	}
	if morning.SameDay(other) {
		t.Error("SameDay(morning, other) = true, want false")
	}
}
