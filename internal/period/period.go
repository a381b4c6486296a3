// Package period resolves reporting granularities and date filters.
package period

import (
	"fmt"
	"regexp"
	"time"

	gerr "github.com/jekabolt/resto-manager/internal/errors"
)

// Granularity is the bucket size used to group timestamps.
type Granularity int

const (
	Daily Granularity = iota + 1
	Weekly
	Monthly
	Yearly
)

const (
	DayLayout   = "2006-01-02"
	MonthLayout = "2006-01"
	YearLayout  = "2006"

	// WallClockLayout renders a timestamp without zone for DATETIME comparisons.
	WallClockLayout = "2006-01-02 15:04:05"
)

var granularityNames = map[Granularity]string{
	Daily:   "daily",
	Weekly:  "weekly",
	Monthly: "monthly",
	Yearly:  "yearly",
}

var (
	dayRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)
	yearRe  = regexp.MustCompile(`^\d{4}$`)
)

func (g Granularity) String() string {
	if n, ok := granularityNames[g]; ok {
		return n
	}
	return "unknown"
}

// Valid reports whether g is one of the four known granularities.
func (g Granularity) Valid() bool {
	_, ok := granularityNames[g]
	return ok
}

// Parse maps a granularity name to its enum value. Besides the canonical
// names it accepts the short forms used by trend endpoints (day, week, month, year).
func Parse(s string) (Granularity, error) {
	switch s {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "yearly", "year":
		return Yearly, nil
	}
	return 0, gerr.InvalidRequest("unsupported period %q", s)
}

// ParseDate validates s against the single-date format of g and returns the
// first instant of the bucket it names in UTC.
func (g Granularity) ParseDate(s string) (time.Time, error) {
	return g.ParseDateIn(s, time.UTC)
}

// ParseDateIn is ParseDate with the bucket starting at midnight in loc.
func (g Granularity) ParseDateIn(s string, loc *time.Location) (time.Time, error) {
	var (
		re     *regexp.Regexp
		layout string
	)
	switch g {
	case Daily:
		re, layout = dayRe, DayLayout
	case Monthly:
		re, layout = monthRe, MonthLayout
	case Yearly:
		re, layout = yearRe, YearLayout
	case Weekly:
		return time.Time{}, gerr.InvalidRequest("filtering weekly period by a single date is not supported")
	default:
		return time.Time{}, gerr.InvalidRequest("unsupported period %q", g.String())
	}
	if !re.MatchString(s) {
		return time.Time{}, gerr.InvalidRequest("invalid %s date %q", g, s)
	}
	t, err := time.ParseInLocation(layout, s, loc)
	if err != nil {
		return time.Time{}, gerr.InvalidRequest("invalid %s date %q", g, s)
	}
	return t, nil
}

// Format renders t as the label of the bucket that contains it.
func (g Granularity) Format(t time.Time) string {
	switch g {
	case Daily:
		return t.Format(DayLayout)
	case Weekly:
		y, w := t.ISOWeek()
		return isoWeekLabel(y, w)
	case Monthly:
		return t.Format(MonthLayout)
	case Yearly:
		return t.Format(YearLayout)
	}
	return ""
}

// Next returns the start of the bucket following the one starting at t.
func (g Granularity) Next(t time.Time) time.Time {
	switch g {
	case Daily:
		return t.AddDate(0, 0, 1)
	case Weekly:
		return t.AddDate(0, 0, 7)
	case Monthly:
		return t.AddDate(0, 1, 0)
	case Yearly:
		return t.AddDate(1, 0, 0)
	}
	return t
}

// Previous returns the label of the last complete bucket before now:
// yesterday, the previous calendar month or the previous calendar year.
func Previous(g Granularity, now time.Time) string {
	switch g {
	case Daily:
		return now.AddDate(0, 0, -1).Format(DayLayout)
	case Weekly:
		return Weekly.Format(now.AddDate(0, 0, -7))
	case Monthly:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return first.AddDate(0, -1, 0).Format(MonthLayout)
	case Yearly:
		return time.Date(now.Year()-1, 1, 1, 0, 0, 0, 0, now.Location()).Format(YearLayout)
	}
	return ""
}

// ParseDay parses a YYYY-MM-DD date strictly.
func ParseDay(s string) (time.Time, error) {
	return Daily.ParseDate(s)
}

func isoWeekLabel(y, w int) string {
	return fmt.Sprintf("%04d-%02d", y, w)
}
