package store

import (
	"context"
	"fmt"

	"github.com/jekabolt/resto-manager/internal/dependency"
	"github.com/jekabolt/resto-manager/internal/entity"
	"github.com/jekabolt/resto-manager/internal/period"
	"github.com/shopspring/decimal"
)

type reportStore struct {
	*MYSQLStore
}

// Reports returns an object implementing the reports interface
func (ms *MYSQLStore) Reports() dependency.Reports {
	return &reportStore{MYSQLStore: ms}
}

func (ms *MYSQLStore) RevenueTotal(ctx context.Context, f period.Filter) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE status = :status AND created_at BETWEEN :from AND :to`
	v, err := QueryScalarNamed[decimal.Decimal](ctx, ms.db, query, map[string]any{
		"status": entity.OrderStatusPaid,
		"from":   f.From,
		"to":     f.To,
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get revenue total: %w", err)
	}
	return v, nil
}

// ExpenseTotal compares expense dates against the wall clock of f, since
// expense_date holds a calendar date rather than an instant.
func (ms *MYSQLStore) ExpenseTotal(ctx context.Context, f period.Filter) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE expense_date BETWEEN :from AND :to`
	v, err := QueryScalarNamed[decimal.Decimal](ctx, ms.db, query, map[string]any{
		"from": f.From.Format(period.WallClockLayout),
		"to":   f.To.Format(period.WallClockLayout),
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get expense total: %w", err)
	}
	return v, nil
}

func (ms *MYSQLStore) ItemSales(ctx context.Context, f period.Filter) ([]entity.ItemSale, error) {
	query := `
		SELECT i.id AS item_id, i.name AS name,
			SUM(oi.quantity) AS quantity,
			COALESCE(SUM(oi.quantity * oi.price), 0) AS total
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN items i ON i.id = oi.item_id
		WHERE o.status = :status AND o.created_at BETWEEN :from AND :to
		GROUP BY i.id, i.name
		ORDER BY total DESC, i.name ASC`
	rows, err := QueryListNamed[entity.ItemSale](ctx, ms.db, query, map[string]any{
		"status": entity.OrderStatusPaid,
		"from":   f.From,
		"to":     f.To,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item sales: %w", err)
	}
	return rows, nil
}
