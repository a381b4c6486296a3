// Package analytics merges revenue and expense aggregates into net profit rows.
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/jekabolt/resto-manager/internal/dependency"
	"github.com/jekabolt/resto-manager/internal/entity"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
	"github.com/jekabolt/resto-manager/internal/period"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// MergeNet joins revenue and expense rows on period label. Every period of
// either input appears once, with the missing side as zero. Rows are ordered
// most recent first.
func MergeNet(revenue, expenses []entity.PeriodValue) []entity.NetProfit {
	byPeriod := make(map[string]*entity.NetProfit, len(revenue)+len(expenses))
	get := func(p string) *entity.NetProfit {
		n, ok := byPeriod[p]
		if !ok {
			n = &entity.NetProfit{Period: p, Revenue: decimal.Zero, Expenses: decimal.Zero}
			byPeriod[p] = n
		}
		return n
	}
	for _, r := range revenue {
		n := get(r.Period)
		n.Revenue = n.Revenue.Add(r.Value)
	}
	for _, e := range expenses {
		n := get(e.Period)
		n.Expenses = n.Expenses.Add(e.Value)
	}

	out := make([]entity.NetProfit, 0, len(byPeriod))
	for _, n := range byPeriod {
		n.Net = n.Revenue.Sub(n.Expenses)
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Period > out[j].Period
	})
	return out
}

// NetProfit fetches revenue and expenses concurrently and merges them. For an
// unfiltered request the merged result keeps the default number of recent periods.
func NetProfit(ctx context.Context, a dependency.Analytics, g period.Granularity, f period.Filter) ([]entity.NetProfit, error) {
	var revenue, expenses []entity.PeriodValue

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		revenue, err = a.RevenueByPeriod(egCtx, g, f)
		if err != nil {
			return fmt.Errorf("revenue: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		expenses, err = a.ExpensesByPeriod(egCtx, g, f)
		if err != nil {
			return fmt.Errorf("expenses: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		if gerr.IsInvalidRequest(err) {
			return nil, err
		}
		return nil, gerr.Dependency(err, "can't get net profit")
	}

	net := MergeNet(revenue, expenses)
	if !f.Bounded && len(net) > period.DefaultListLimit {
		net = net[:period.DefaultListLimit]
	}
	return net, nil
}
