// Package recurrence computes next-due and end dates of recurring entries.
package recurrence

import (
	"database/sql"
	"time"

	"github.com/jekabolt/resto-manager/internal/entity"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
)

// Schedule is the computed recurrence of a base date.
type Schedule struct {
	NextDueDate time.Time
	EndDate     time.Time
}

// ParseFrequency validates a frequency name. Empty input maps to FrequencyNone.
func ParseFrequency(s string) (entity.Frequency, error) {
	switch f := entity.Frequency(s); f {
	case entity.FrequencyDaily, entity.FrequencyWeekly, entity.FrequencyMonthly, entity.FrequencyYearly, entity.FrequencyNone:
		return f, nil
	case "":
		return entity.FrequencyNone, nil
	}
	return "", gerr.InvalidRequest("unsupported recurring frequency %q", s)
}

// step advances t by n periods of f.
func step(t time.Time, f entity.Frequency, n int) (time.Time, bool) {
	switch f {
	case entity.FrequencyDaily:
		return t.AddDate(0, 0, n), true
	case entity.FrequencyWeekly:
		return t.AddDate(0, 0, 7*n), true
	case entity.FrequencyMonthly:
		return t.AddDate(0, n, 0), true
	case entity.FrequencyYearly:
		return t.AddDate(n, 0, 0), true
	}
	return t, false
}

// Compute returns the next-due date (base + one period) and the end date
// (horizon periods after the next-due date). horizon must be at least 1.
// Calendar overflow follows time.AddDate: Jan 31 + 1 month is Mar 2 (or Mar 1 in leap years).
func Compute(base time.Time, f entity.Frequency, horizon int) (Schedule, error) {
	if horizon < 1 {
		return Schedule{}, gerr.InvalidRequest("recurrence horizon must be at least 1, got %d", horizon)
	}
	base = time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, base.Location())
	next, ok := step(base, f, 1)
	if !ok {
		return Schedule{}, gerr.InvalidRequest("unsupported recurring frequency %q", f)
	}
	end, _ := step(base, f, 1+horizon)
	return Schedule{NextDueDate: next, EndDate: end}, nil
}

// Apply fills the recurring fields of an entry dated base. Non-recurring entries
// get all recurring fields cleared.
func Apply(base time.Time, isRecurring bool, frequency string, horizon int) (entity.Recurrence, error) {
	f, err := ParseFrequency(frequency)
	if err != nil {
		return entity.Recurrence{}, err
	}
	if !isRecurring {
		return entity.Recurrence{}, nil
	}
	if f == entity.FrequencyNone {
		return entity.Recurrence{}, gerr.InvalidRequest("recurring entry requires a frequency")
	}
	s, err := Compute(base, f, horizon)
	if err != nil {
		return entity.Recurrence{}, err
	}
	return entity.Recurrence{
		IsRecurring: true,
		Frequency:   sql.NullString{String: string(f), Valid: true},
		NextDueDate: sql.NullTime{Time: s.NextDueDate, Valid: true},
		EndDate:     sql.NullTime{Time: s.EndDate, Valid: true},
	}, nil
}
