// Package report assembles the itemized sales report of one period.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jekabolt/resto-manager/internal/dependency"
	"github.com/jekabolt/resto-manager/internal/entity"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
	"github.com/jekabolt/resto-manager/internal/period"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Service implements dependency.ReportAssembler on top of the report store.
// Report dates name calendar periods in loc.
type Service struct {
	rep dependency.Repository
	loc *time.Location
}

// New creates a new report assembler. A nil loc means UTC.
func New(rep dependency.Repository, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{rep: rep, loc: loc}
}

// reportPeriod accepts only the granularities reports are produced for.
func reportPeriod(name string) (period.Granularity, error) {
	switch name {
	case "daily":
		return period.Daily, nil
	case "monthly":
		return period.Monthly, nil
	case "yearly":
		return period.Yearly, nil
	}
	return 0, gerr.InvalidRequest("unsupported report period %q, expected daily, monthly or yearly", name)
}

// GetReport validates periodName and date, then runs the revenue, expense and
// item sales queries concurrently. Missing totals are zero.
func (s *Service) GetReport(ctx context.Context, periodName, date string) (*entity.Report, error) {
	g, err := reportPeriod(periodName)
	if err != nil {
		return nil, err
	}
	start, err := g.ParseDateIn(date, s.loc)
	if err != nil {
		return nil, err
	}
	f := period.Single(g, start)

	r := &entity.Report{
		Period:   periodName,
		Date:     date,
		Items:    []entity.ItemSale{},
		Revenue:  decimal.Zero,
		Expenses: decimal.Zero,
	}

	reports := s.rep.Reports()
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		v, err := reports.RevenueTotal(egCtx, f)
		if err != nil {
			return fmt.Errorf("revenue: %w", err)
		}
		r.Revenue = v
		return nil
	})
	eg.Go(func() error {
		v, err := reports.ExpenseTotal(egCtx, f)
		if err != nil {
			return fmt.Errorf("expenses: %w", err)
		}
		r.Expenses = v
		return nil
	})
	eg.Go(func() error {
		items, err := reports.ItemSales(egCtx, f)
		if err != nil {
			return fmt.Errorf("item sales: %w", err)
		}
		if items != nil {
			r.Items = items
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, gerr.Dependency(err, "can't assemble report")
	}
	return r, nil
}
