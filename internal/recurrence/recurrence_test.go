package recurrence

import (
	"testing"
	"time"

	"github.com/jekabolt/resto-manager/internal/entity"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCompute(t *testing.T) {
	base := day("2024-01-10")
	tests := []struct {
		f       entity.Frequency
		horizon int
		next    string
		end     string
	}{
		{entity.FrequencyDaily, 1, "2024-01-11", "2024-01-12"},
		{entity.FrequencyWeekly, 1, "2024-01-17", "2024-01-24"},
		{entity.FrequencyMonthly, 1, "2024-02-10", "2024-03-10"},
		{entity.FrequencyYearly, 1, "2025-01-10", "2026-01-10"},
		{entity.FrequencyMonthly, 11, "2024-02-10", "2025-01-10"},
	}
	for _, tt := range tests {
		t.Run(string(tt.f), func(t *testing.T) {
			s, err := Compute(base, tt.f, tt.horizon)
			require.NoError(t, err)
			assert.Equal(t, tt.next, s.NextDueDate.Format("2006-01-02"))
			assert.Equal(t, tt.end, s.EndDate.Format("2006-01-02"))
		})
	}
}

func TestComputeOrdering(t *testing.T) {
	bases := []time.Time{day("2024-01-31"), day("2024-02-29"), day("2023-12-31"), day("2024-06-15")}
	for _, base := range bases {
		for _, f := range []entity.Frequency{entity.FrequencyDaily, entity.FrequencyWeekly, entity.FrequencyMonthly, entity.FrequencyYearly} {
			for _, h := range []int{1, 2, 11} {
				s, err := Compute(base, f, h)
				require.NoError(t, err)
				assert.True(t, s.NextDueDate.After(base), "%s %s", base, f)
				assert.True(t, s.EndDate.After(s.NextDueDate), "%s %s", base, f)
			}
		}
	}
}

func TestComputeRejects(t *testing.T) {
	_, err := Compute(day("2024-01-10"), "fortnightly", 1)
	assert.True(t, gerr.IsInvalidRequest(err))

	_, err = Compute(day("2024-01-10"), entity.FrequencyMonthly, 0)
	assert.True(t, gerr.IsInvalidRequest(err))
}

func TestApply(t *testing.T) {
	r, err := Apply(day("2024-01-10"), true, "monthly", 1)
	require.NoError(t, err)
	assert.True(t, r.IsRecurring)
	assert.Equal(t, "monthly", r.Frequency.String)
	assert.Equal(t, "2024-02-10", r.NextDueDate.Time.Format("2006-01-02"))
	assert.Equal(t, "2024-03-10", r.EndDate.Time.Format("2006-01-02"))

	r, err = Apply(day("2024-01-10"), false, "monthly", 1)
	require.NoError(t, err)
	assert.False(t, r.IsRecurring)
	assert.False(t, r.Frequency.Valid)
	assert.False(t, r.NextDueDate.Valid)

	_, err = Apply(day("2024-01-10"), true, "", 1)
	assert.True(t, gerr.IsInvalidRequest(err))

	_, err = Apply(day("2024-01-10"), false, "biweekly", 1)
	assert.True(t, gerr.IsInvalidRequest(err))
}
