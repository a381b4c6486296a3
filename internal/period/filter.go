package period

import (
	"time"

	gerr "github.com/jekabolt/resto-manager/internal/errors"
)

// DefaultListLimit caps unfiltered listing queries to the most recent periods.
const DefaultListLimit = 30

var (
	minBound = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	maxBound = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
)

// Filter is an inclusive timestamp window. A zero Filter (Bounded == false)
// means "no window": listing queries then fall back to DefaultListLimit rows.
type Filter struct {
	From    time.Time
	To      time.Time
	Bounded bool
}

// Query is the raw set of period parameters accepted by listing endpoints.
type Query struct {
	Period string
	Date   string
	Start  string
	End    string
}

// Single returns the filter covering exactly the bucket that starts at t.
func Single(g Granularity, t time.Time) Filter {
	return Filter{
		From:    t,
		To:      g.Next(t).Add(-time.Second),
		Bounded: true,
	}
}

// Range builds an inclusive window from optional YYYY-MM-DD bounds. The end
// date is inclusive through 23:59:59 of that day.
func Range(start, end string) (Filter, error) {
	if start == "" && end == "" {
		return Filter{}, nil
	}
	f := Filter{From: minBound, To: maxBound, Bounded: true}
	if start != "" {
		t, err := ParseDay(start)
		if err != nil {
			return Filter{}, gerr.InvalidRequest("invalid start date %q", start)
		}
		f.From = t
	}
	if end != "" {
		t, err := ParseDay(end)
		if err != nil {
			return Filter{}, gerr.InvalidRequest("invalid end date %q", end)
		}
		f.To = t.Add(24*time.Hour - time.Second)
	}
	if f.To.Before(f.From) {
		return Filter{}, gerr.InvalidRequest("end date %q is before start date %q", end, start)
	}
	return f, nil
}

// Resolve validates q and returns its granularity together with the filter
// predicate. A single date and a start/end range are mutually exclusive.
func Resolve(q Query) (Granularity, Filter, error) {
	g, err := Parse(q.Period)
	if err != nil {
		return 0, Filter{}, err
	}
	if q.Date != "" {
		if q.Start != "" || q.End != "" {
			return 0, Filter{}, gerr.InvalidRequest("date and start/end are mutually exclusive")
		}
		t, err := g.ParseDate(q.Date)
		if err != nil {
			return 0, Filter{}, err
		}
		return g, Single(g, t), nil
	}
	f, err := Range(q.Start, q.End)
	if err != nil {
		return 0, Filter{}, err
	}
	return g, f, nil
}
