package store

import (
	"context"
	"fmt"

	"github.com/jekabolt/resto-manager/internal/dependency"
	"github.com/jekabolt/resto-manager/internal/entity"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
	"github.com/jekabolt/resto-manager/internal/period"
)

type analyticsStore struct {
	*MYSQLStore
}

// Analytics returns an object implementing the analytics interface
func (ms *MYSQLStore) Analytics() dependency.Analytics {
	return &analyticsStore{MYSQLStore: ms}
}

// periodExpr returns the grouping key expression for col. Labels sort
// lexicographically in chronological order.
func periodExpr(g period.Granularity, col string) (string, error) {
	switch g {
	case period.Daily:
		return fmt.Sprintf("DATE_FORMAT(%s, '%%Y-%%m-%%d')", col), nil
	case period.Weekly:
		return fmt.Sprintf("DATE_FORMAT(%s, '%%x-%%v')", col), nil
	case period.Monthly:
		return fmt.Sprintf("DATE_FORMAT(%s, '%%Y-%%m')", col), nil
	case period.Yearly:
		return fmt.Sprintf("DATE_FORMAT(%s, '%%Y')", col), nil
	}
	return "", gerr.InvalidRequest("unsupported period %q", g.String())
}

// window returns the filter predicate on col and fills its bounds into params.
func window(f period.Filter, col string, params map[string]any) string {
	if !f.Bounded {
		return ""
	}
	params["from"] = f.From
	params["to"] = f.To
	return fmt.Sprintf(" AND %s BETWEEN :from AND :to", col)
}

// listTail orders listing rows most recent first and caps unfiltered results.
func listTail(f period.Filter, params map[string]any) string {
	if f.Bounded {
		return " ORDER BY period DESC"
	}
	params["limit"] = period.DefaultListLimit
	return " ORDER BY period DESC LIMIT :limit"
}

func (ms *MYSQLStore) RevenueByPeriod(ctx context.Context, g period.Granularity, f period.Filter) ([]entity.PeriodValue, error) {
	expr, err := periodExpr(g, "o.created_at")
	if err != nil {
		return nil, err
	}
	params := map[string]any{"status": entity.OrderStatusPaid}
	query := fmt.Sprintf(`
		SELECT %s AS period, COALESCE(SUM(o.total_amount), 0) AS value
		FROM orders o
		WHERE o.status = :status%s
		GROUP BY period`, expr, window(f, "o.created_at", params)) + listTail(f, params)

	rows, err := QueryListNamed[entity.PeriodValue](ctx, ms.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get revenue by period: %w", err)
	}
	return rows, nil
}

func (ms *MYSQLStore) ExpensesByPeriod(ctx context.Context, g period.Granularity, f period.Filter) ([]entity.PeriodValue, error) {
	expr, err := periodExpr(g, "e.expense_date")
	if err != nil {
		return nil, err
	}
	params := map[string]any{}
	query := fmt.Sprintf(`
		SELECT %s AS period, COALESCE(SUM(e.amount), 0) AS value
		FROM expenses e
		WHERE 1 = 1%s
		GROUP BY period`, expr, window(f, "e.expense_date", params)) + listTail(f, params)

	rows, err := QueryListNamed[entity.PeriodValue](ctx, ms.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses by period: %w", err)
	}
	return rows, nil
}

func (ms *MYSQLStore) OrderCountByPeriod(ctx context.Context, g period.Granularity, f period.Filter) ([]entity.PeriodCount, error) {
	return ms.paidOrderCount(ctx, g, f, true)
}

func (ms *MYSQLStore) PaidOrderCountTrend(ctx context.Context, g period.Granularity, f period.Filter) ([]entity.PeriodCount, error) {
	return ms.paidOrderCount(ctx, g, f, false)
}

func (ms *MYSQLStore) paidOrderCount(ctx context.Context, g period.Granularity, f period.Filter, listing bool) ([]entity.PeriodCount, error) {
	expr, err := periodExpr(g, "o.created_at")
	if err != nil {
		return nil, err
	}
	params := map[string]any{"status": entity.OrderStatusPaid}
	query := fmt.Sprintf(`
		SELECT %s AS period, COUNT(*) AS cnt
		FROM orders o
		WHERE o.status = :status%s
		GROUP BY period`, expr, window(f, "o.created_at", params))
	if listing {
		query += listTail(f, params)
	} else {
		query += " ORDER BY period ASC"
	}

	rows, err := QueryListNamed[entity.PeriodCount](ctx, ms.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to count paid orders by period: %w", err)
	}
	return rows, nil
}

// OrderTrends counts and sums paid orders per month or year.
func (ms *MYSQLStore) OrderTrends(ctx context.Context, g period.Granularity, f period.Filter) ([]entity.OrderTrend, error) {
	if g != period.Monthly && g != period.Yearly {
		return nil, gerr.InvalidRequest("order trends support month or year grouping only")
	}
	expr, err := periodExpr(g, "o.created_at")
	if err != nil {
		return nil, err
	}
	params := map[string]any{"status": entity.OrderStatusPaid}
	query := fmt.Sprintf(`
		SELECT %s AS period,
			COUNT(*) AS cnt,
			COALESCE(SUM(o.total_amount), 0) AS total
		FROM orders o
		WHERE o.status = :status%s
		GROUP BY period
		ORDER BY period ASC`, expr, window(f, "o.created_at", params))

	rows, err := QueryListNamed[entity.OrderTrend](ctx, ms.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get order trends: %w", err)
	}
	return rows, nil
}

func (ms *MYSQLStore) PopularItems(ctx context.Context, limit int) ([]entity.PopularItem, error) {
	if limit < 1 {
		return nil, gerr.InvalidRequest("limit must be positive, got %d", limit)
	}
	query := `
		SELECT i.id AS item_id, i.name AS name, SUM(oi.quantity) AS quantity
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN items i ON i.id = oi.item_id
		WHERE o.status = :status
		GROUP BY i.id, i.name
		ORDER BY quantity DESC
		LIMIT :limit`

	rows, err := QueryListNamed[entity.PopularItem](ctx, ms.db, query, map[string]any{
		"status": entity.OrderStatusPaid,
		"limit":  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get popular items: %w", err)
	}
	return rows, nil
}

// RevenueHeatmap buckets paid revenue by hour (0-23) or ISO weekday (1-7).
// Empty buckets are absent.
func (ms *MYSQLStore) RevenueHeatmap(ctx context.Context, kind entity.HeatmapKind, f period.Filter) ([]entity.HeatmapBucket, error) {
	var bucket string
	switch kind {
	case entity.HeatmapHourly:
		bucket = "HOUR(o.created_at)"
	case entity.HeatmapWeekly:
		bucket = "WEEKDAY(o.created_at) + 1"
	default:
		return nil, gerr.InvalidRequest("unsupported heatmap type %q", kind)
	}
	params := map[string]any{"status": entity.OrderStatusPaid}
	query := fmt.Sprintf(`
		SELECT %s AS bucket, COALESCE(SUM(o.total_amount), 0) AS revenue, COUNT(*) AS cnt
		FROM orders o
		WHERE o.status = :status%s
		GROUP BY bucket
		ORDER BY bucket ASC`, bucket, window(f, "o.created_at", params))

	rows, err := QueryListNamed[entity.HeatmapBucket](ctx, ms.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get revenue heatmap: %w", err)
	}
	return rows, nil
}
