package period

import (
	"testing"
	"time"

	gerr "github.com/jekabolt/resto-manager/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		g     Granularity
		in    string
		valid bool
	}{
		{"daily ok", Daily, "2024-01-15", true},
		{"daily single digit month", Daily, "2024-1-15", false},
		{"daily month out of range", Daily, "2024-13-01", false},
		{"daily empty", Daily, "", false},
		{"daily feb 30", Daily, "2024-02-30", false},
		{"monthly ok", Monthly, "2024-03", true},
		{"monthly single digit", Monthly, "2024-3", false},
		{"monthly year only", Monthly, "2024", false},
		{"yearly ok", Yearly, "2024", true},
		{"yearly with month", Yearly, "2024-01", false},
		{"weekly rejected", Weekly, "2024-01-15", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.g.ParseDate(tt.in)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, gerr.IsInvalidRequest(err), "expected invalid request, got %v", err)
		})
	}
}

func TestParseDateIn(t *testing.T) {
	riga, err := time.LoadLocation("Europe/Riga")
	require.NoError(t, err)

	got, err := Daily.ParseDateIn("2024-03-01", riga)
	require.NoError(t, err)
	assert.Equal(t, riga, got.Location())
	assert.Equal(t, time.Date(2024, 2, 29, 22, 0, 0, 0, time.UTC), got.UTC())

	got, err = Monthly.ParseDate("2024-03")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = Daily.ParseDateIn("2024-3-01", riga)
	assert.True(t, gerr.IsInvalidRequest(err))
}

func TestParse(t *testing.T) {
	g, err := Parse("monthly")
	require.NoError(t, err)
	assert.Equal(t, Monthly, g)

	g, err = Parse("week")
	require.NoError(t, err)
	assert.Equal(t, Weekly, g)

	_, err = Parse("hourly")
	assert.True(t, gerr.IsInvalidRequest(err))
}

func TestResolve(t *testing.T) {
	t.Run("single month", func(t *testing.T) {
		g, f, err := Resolve(Query{Period: "monthly", Date: "2024-02"})
		require.NoError(t, err)
		assert.Equal(t, Monthly, g)
		assert.True(t, f.Bounded)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), f.From)
		assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC), f.To)
	})

	t.Run("range end inclusive", func(t *testing.T) {
		_, f, err := Resolve(Query{Period: "daily", Start: "2024-01-01", End: "2024-01-31"})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC), f.To)
	})

	t.Run("unfiltered", func(t *testing.T) {
		_, f, err := Resolve(Query{Period: "weekly"})
		require.NoError(t, err)
		assert.False(t, f.Bounded)
	})

	t.Run("weekly single date", func(t *testing.T) {
		_, _, err := Resolve(Query{Period: "weekly", Date: "2024-01-15"})
		assert.True(t, gerr.IsInvalidRequest(err))
	})

	t.Run("date and range", func(t *testing.T) {
		_, _, err := Resolve(Query{Period: "daily", Date: "2024-01-15", Start: "2024-01-01"})
		assert.True(t, gerr.IsInvalidRequest(err))
	})

	t.Run("reversed range", func(t *testing.T) {
		_, _, err := Resolve(Query{Period: "daily", Start: "2024-02-01", End: "2024-01-01"})
		assert.True(t, gerr.IsInvalidRequest(err))
	})

	t.Run("bad start", func(t *testing.T) {
		_, _, err := Resolve(Query{Period: "daily", Start: "01/02/2024"})
		assert.True(t, gerr.IsInvalidRequest(err))
	})
}

func TestPrevious(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 5, 0, 0, time.UTC)
	assert.Equal(t, "2024-02-29", Previous(Daily, now))
	assert.Equal(t, "2024-02", Previous(Monthly, now))
	assert.Equal(t, "2023", Previous(Yearly, now))

	jan := time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "2023-12", Previous(Monthly, jan))
}

func TestLabelsSortChronologically(t *testing.T) {
	for _, g := range []Granularity{Daily, Weekly, Monthly, Yearly} {
		a := time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC)
		b := g.Next(a)
		assert.Less(t, g.Format(a), g.Format(b), g.String())
	}
}
