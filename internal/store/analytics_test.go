package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jekabolt/resto-manager/internal/entity"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
	"github.com/jekabolt/resto-manager/internal/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodExpr(t *testing.T) {
	tests := []struct {
		g    period.Granularity
		want string
	}{
		{period.Daily, "DATE_FORMAT(o.created_at, '%Y-%m-%d')"},
		{period.Weekly, "DATE_FORMAT(o.created_at, '%x-%v')"},
		{period.Monthly, "DATE_FORMAT(o.created_at, '%Y-%m')"},
		{period.Yearly, "DATE_FORMAT(o.created_at, '%Y')"},
	}
	for _, tt := range tests {
		got, err := periodExpr(tt.g, "o.created_at")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := periodExpr(period.Granularity(42), "o.created_at")
	assert.True(t, gerr.IsInvalidRequest(err))
}

func TestRevenueByPeriodUnfilteredIsCapped(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery(`FROM orders o\s+WHERE o.status = \?\s+GROUP BY period ORDER BY period DESC LIMIT \?`).
		WithArgs("paid", period.DefaultListLimit).
		WillReturnRows(sqlmock.NewRows([]string{"period", "value"}).
			AddRow("2024-02", "120.50").
			AddRow("2024-01", "80.00"))

	rows, err := ms.Analytics().RevenueByPeriod(context.Background(), period.Monthly, period.Filter{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-02", rows[0].Period)
	assert.Equal(t, "120.5", rows[0].Value.String())
}

func TestRevenueByPeriodBoundedIsNotCapped(t *testing.T) {
	ms, mock := newMockStore(t)

	f := period.Single(period.Monthly, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	mock.ExpectQuery(`o.created_at BETWEEN \? AND \?\s+GROUP BY period ORDER BY period DESC$`).
		WithArgs("paid", f.From, f.To).
		WillReturnRows(sqlmock.NewRows([]string{"period", "value"}))

	rows, err := ms.Analytics().RevenueByPeriod(context.Background(), period.Monthly, f)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestExpensesByPeriod(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery(`DATE_FORMAT\(e.expense_date, '%Y'\) AS period, COALESCE\(SUM\(e.amount\), 0\) AS value`).
		WithArgs(period.DefaultListLimit).
		WillReturnRows(sqlmock.NewRows([]string{"period", "value"}).AddRow("2024", "12.00"))

	rows, err := ms.Analytics().ExpensesByPeriod(context.Background(), period.Yearly, period.Filter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2024", rows[0].Period)
}

func TestPaidOrderCountTrendIsChronological(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery(`COUNT\(\*\) AS cnt\s+FROM orders o\s+WHERE o.status = \?\s+GROUP BY period ORDER BY period ASC`).
		WithArgs("paid").
		WillReturnRows(sqlmock.NewRows([]string{"period", "cnt"}).
			AddRow("2024-01", 3).
			AddRow("2024-02", 5))

	rows, err := ms.Analytics().PaidOrderCountTrend(context.Background(), period.Monthly, period.Filter{})
	require.NoError(t, err)
	assert.Equal(t, []entity.PeriodCount{{Period: "2024-01", Count: 3}, {Period: "2024-02", Count: 5}}, rows)
}

func TestOrderTrendsRejectsDaily(t *testing.T) {
	ms, _ := newMockStore(t)
	_, err := ms.Analytics().OrderTrends(context.Background(), period.Daily, period.Filter{})
	assert.True(t, gerr.IsInvalidRequest(err))
}

func TestOrderTrendsCountOnlyPaidOrders(t *testing.T) {
	ms, mock := newMockStore(t)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)

	mock.ExpectQuery(`COUNT\(\*\) AS cnt,\s+COALESCE\(SUM\(o.total_amount\), 0\) AS total\s+FROM orders o\s+WHERE o.status = \? AND o.created_at BETWEEN \? AND \?\s+GROUP BY period\s+ORDER BY period ASC`).
		WithArgs("paid", from, to).
		WillReturnRows(sqlmock.NewRows([]string{"period", "cnt", "total"}).
			AddRow("2024-01", 2, "30.00").
			AddRow("2024-02", 1, "12.50"))

	rows, err := ms.Analytics().OrderTrends(context.Background(), period.Monthly, period.Filter{From: from, To: to, Bounded: true})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Orders)
	assert.Equal(t, "12.5", rows[1].Total.String())
}

func TestPopularItems(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery(`ORDER BY quantity DESC\s+LIMIT \?`).
		WithArgs("paid", 3).
		WillReturnRows(sqlmock.NewRows([]string{"item_id", "name", "quantity"}).
			AddRow(4, "Margherita", 40).
			AddRow(2, "Espresso", 31).
			AddRow(9, "Tiramisu", 12))

	rows, err := ms.Analytics().PopularItems(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Margherita", rows[0].Name)
	assert.GreaterOrEqual(t, rows[0].Quantity, rows[1].Quantity)
	assert.GreaterOrEqual(t, rows[1].Quantity, rows[2].Quantity)

	_, err = ms.Analytics().PopularItems(context.Background(), 0)
	assert.True(t, gerr.IsInvalidRequest(err))
}

func TestRevenueHeatmap(t *testing.T) {
	ms, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT WEEKDAY\(o.created_at\) \+ 1 AS bucket`).
		WithArgs("paid").
		WillReturnRows(sqlmock.NewRows([]string{"bucket", "revenue", "cnt"}).
			AddRow(1, "10.00", 1).
			AddRow(5, "99.90", 7))

	rows, err := ms.Analytics().RevenueHeatmap(context.Background(), entity.HeatmapWeekly, period.Filter{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 5, rows[1].Bucket)

	_, err = ms.Analytics().RevenueHeatmap(context.Background(), "monthly", period.Filter{})
	assert.True(t, gerr.IsInvalidRequest(err))
}
