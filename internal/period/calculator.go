// Package period derives payday-anchored budget periods. All functions are
// pure: the reference date is always an explicit parameter and no ambient
// clock is read, so period math is fully deterministic.
package period

import (
	"fmt"
	"time"

	"github.com/elias000000000/bg/internal/model"
)

const (
	// MinPayday is the earliest allowed payday day-of-month.
	MinPayday = 1
	// MaxPayday is capped at 28 so every month contains the anchor day.
	MaxPayday = 28
)

// ValidatePayday checks the payday anchor range.
func ValidatePayday(payday int) error {
	if payday < MinPayday || payday > MaxPayday {
		return fmt.Errorf("payday must be between %d and %d, got %d", MinPayday, MaxPayday, payday)
	}
	return nil
}

// Containing returns the period that encloses date for the given payday
// anchor. The period starts on the payday at or before date and ends the
// day before the next payday, inclusive. The end is derived by adding one
// calendar month and subtracting one day, which handles 28/29/30/31-day
// months uniformly.
func Containing(date time.Time, payday int) (model.Period, error) {
	if err := ValidatePayday(payday); err != nil {
		return model.Period{}, err
	}

	d := midnight(date)
	start := time.Date(d.Year(), d.Month(), payday, 0, 0, 0, 0, time.UTC)
	if d.Before(start) {
		// payday <= 28, so stepping back a month never normalizes into
		// an unintended month.
		start = start.AddDate(0, -1, 0)
	}
	end := start.AddDate(0, 1, 0).AddDate(0, 0, -1)

	return model.Period{
		Start: start,
		End:   end,
		Label: label(start, end, payday),
	}, nil
}

// Between enumerates every period from the one containing earliest through
// the one containing reference, oldest first. It returns an empty slice
// when reference precedes earliest.
func Between(earliest, reference time.Time, payday int) ([]model.Period, error) {
	first, err := Containing(earliest, payday)
	if err != nil {
		return nil, err
	}
	last, err := Containing(reference, payday)
	if err != nil {
		return nil, err
	}
	if last.Start.Before(first.Start) {
		return nil, nil
	}

	var periods []model.Period
	for start := first.Start; !start.After(last.Start); start = start.AddDate(0, 1, 0) {
		p, err := Containing(start, payday)
		if err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, nil
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func label(start, end time.Time, payday int) string {
	if payday == MinPayday {
		// A payday of 1 makes periods coincide with calendar months.
		return start.Format("January 2006")
	}
	return fmt.Sprintf("%s - %s", start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
}
