package analytics

import (
	"context"
	"fmt"
	"testing"

	"github.com/jekabolt/resto-manager/internal/dependency/mocks"
	"github.com/jekabolt/resto-manager/internal/entity"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
	"github.com/jekabolt/resto-manager/internal/period"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pv(p, v string) entity.PeriodValue {
	return entity.PeriodValue{Period: p, Value: decimal.RequireFromString(v)}
}

func TestMergeNet(t *testing.T) {
	revenue := []entity.PeriodValue{pv("2024-03", "300"), pv("2024-01", "100")}
	expenses := []entity.PeriodValue{pv("2024-02", "50"), pv("2024-01", "40")}

	net := MergeNet(revenue, expenses)
	require.Len(t, net, 3)

	assert.Equal(t, "2024-03", net[0].Period)
	assert.True(t, net[0].Expenses.IsZero())
	assert.Equal(t, "300", net[0].Net.String())

	assert.Equal(t, "2024-02", net[1].Period)
	assert.True(t, net[1].Revenue.IsZero())
	assert.Equal(t, "-50", net[1].Net.String())

	assert.Equal(t, "2024-01", net[2].Period)
	assert.Equal(t, "60", net[2].Net.String())
}

func TestMergeNetUnionProperty(t *testing.T) {
	var revenue, expenses []entity.PeriodValue
	for i := 1; i <= 12; i++ {
		p := fmt.Sprintf("2023-%02d", i)
		if i%2 == 0 {
			revenue = append(revenue, pv(p, fmt.Sprintf("%d", i*10)))
		}
		if i%3 == 0 {
			expenses = append(expenses, pv(p, fmt.Sprintf("%d", i)))
		}
	}

	union := map[string]bool{}
	for _, r := range revenue {
		union[r.Period] = true
	}
	for _, e := range expenses {
		union[e.Period] = true
	}

	net := MergeNet(revenue, expenses)
	assert.Len(t, net, len(union))
	for _, n := range net {
		assert.True(t, union[n.Period])
		assert.True(t, n.Net.Equal(n.Revenue.Sub(n.Expenses)))
	}
}

func TestMergeNetEmpty(t *testing.T) {
	net := MergeNet(nil, nil)
	assert.NotNil(t, net)
	assert.Empty(t, net)
}

func TestNetProfit(t *testing.T) {
	a := mocks.NewAnalytics(t)
	a.EXPECT().RevenueByPeriod(mock.Anything, period.Daily, period.Filter{}).
		Return([]entity.PeriodValue{pv("2024-01-02", "20")}, nil)
	a.EXPECT().ExpensesByPeriod(mock.Anything, period.Daily, period.Filter{}).
		Return([]entity.PeriodValue{pv("2024-01-01", "5")}, nil)

	net, err := NetProfit(context.Background(), a, period.Daily, period.Filter{})
	require.NoError(t, err)
	require.Len(t, net, 2)
	assert.Equal(t, "2024-01-02", net[0].Period)
}

func TestNetProfitFailure(t *testing.T) {
	a := mocks.NewAnalytics(t)
	a.EXPECT().RevenueByPeriod(mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError)
	a.EXPECT().ExpensesByPeriod(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	_, err := NetProfit(context.Background(), a, period.Monthly, period.Filter{})
	assert.ErrorIs(t, err, gerr.ErrDependency)
}
