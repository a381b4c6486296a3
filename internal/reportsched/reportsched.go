// Package reportsched emails the daily, monthly and yearly reports to opted-in receivers.
package reportsched

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/jekabolt/resto-manager/internal/dependency"
	"github.com/jekabolt/resto-manager/internal/document"
	"github.com/jekabolt/resto-manager/internal/entity"
	"github.com/jekabolt/resto-manager/internal/period"
	rlog "github.com/jekabolt/resto-manager/log"
	"github.com/robfig/cron/v3"
)

// Config holds the fire times of the three report jobs.
type Config struct {
	Enabled     bool   `mapstructure:"enabled"`
	Timezone    string `mapstructure:"timezone"`
	Hour        int    `mapstructure:"hour"`
	MonthlyDay  int    `mapstructure:"monthly_day"`
	YearlyMonth int    `mapstructure:"yearly_month"`
	YearlyDay   int    `mapstructure:"yearly_day"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		Enabled:     true,
		Timezone:    "UTC",
		Hour:        8,
		MonthlyDay:  1,
		YearlyMonth: 1,
		YearlyDay:   1,
	}
}

func (c *Config) validate() error {
	if c.Hour < 0 || c.Hour > 23 {
		return fmt.Errorf("report hour out of range: %d", c.Hour)
	}
	if c.MonthlyDay < 1 || c.MonthlyDay > 28 {
		return fmt.Errorf("monthly report day must be within 1..28: %d", c.MonthlyDay)
	}
	if c.YearlyMonth < 1 || c.YearlyMonth > 12 {
		return fmt.Errorf("yearly report month out of range: %d", c.YearlyMonth)
	}
	if c.YearlyDay < 1 || c.YearlyDay > 28 {
		return fmt.Errorf("yearly report day must be within 1..28: %d", c.YearlyDay)
	}
	return nil
}

// Dispatcher runs one cron entry per report granularity.
type Dispatcher struct {
	repo    dependency.Repository
	reports dependency.ReportAssembler
	mailer  dependency.Mailer
	render  func(*entity.Report) ([]byte, error)
	now     func() time.Time
	c       *Config
	loc     *time.Location
	cron    *cron.Cron
	ctx     context.Context
	stop    context.CancelFunc
}

// New creates a new report dispatcher.
func New(c *Config, repo dependency.Repository, reports dependency.ReportAssembler, mailer dependency.Mailer) (*Dispatcher, error) {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("can't load report timezone %q: %w", c.Timezone, err)
	}
	return &Dispatcher{
		repo:    repo,
		reports: reports,
		mailer:  mailer,
		render:  document.RenderPDF,
		now:     time.Now,
		c:       c,
		loc:     loc,
	}, nil
}

// specs returns the cron expression of each job.
func (d *Dispatcher) specs() map[period.Granularity]string {
	return map[period.Granularity]string{
		period.Daily:   fmt.Sprintf("0 %d * * *", d.c.Hour),
		period.Monthly: fmt.Sprintf("0 %d %d * *", d.c.Hour, d.c.MonthlyDay),
		period.Yearly:  fmt.Sprintf("0 %d %d %d *", d.c.Hour, d.c.YearlyDay, d.c.YearlyMonth),
	}
}

// Start schedules the jobs.
func (d *Dispatcher) Start(ctx context.Context) error {
	if d.ctx != nil && d.stop != nil {
		return fmt.Errorf("report dispatcher already started")
	}
	logger := rlog.CronLogger(slog.Default())
	c := cron.New(
		cron.WithLocation(d.loc),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger)),
	)
	d.ctx, d.stop = context.WithCancel(ctx)
	jobCtx := d.ctx
	for g, spec := range d.specs() {
		g := g
		if _, err := c.AddFunc(spec, func() { d.runJob(jobCtx, g) }); err != nil {
			d.stop()
			d.ctx, d.stop = nil, nil
			return fmt.Errorf("can't schedule %s report %q: %w", g, spec, err)
		}
	}
	d.cron = c
	d.cron.Start()
	slog.Default().InfoContext(ctx, "report dispatcher started",
		slog.String("timezone", d.loc.String()),
	)
	return nil
}

// Stop stops scheduling new runs and waits for running ones to return.
func (d *Dispatcher) Stop() error {
	if d.stop == nil {
		return fmt.Errorf("report dispatcher already stopped or not started")
	}
	<-d.cron.Stop().Done()
	d.stop()
	d.stop = nil
	d.ctx = nil
	return nil
}

// runJob reports on the last complete period. Failures are logged only.
func (d *Dispatcher) runJob(ctx context.Context, g period.Granularity) {
	date := period.Previous(g, d.now().In(d.loc))
	if err := d.AutoSend(ctx, g, date); err != nil {
		slog.Default().ErrorContext(ctx, "can't send scheduled report",
			slog.String("err", err.Error()),
			slog.String("period", g.String()),
			slog.String("date", date),
		)
	}
}

// AutoSend emails the report of g and date to every opted-in receiver in a
// single message. Having no receivers is not an error.
func (d *Dispatcher) AutoSend(ctx context.Context, g period.Granularity, date string) error {
	rs, err := d.repo.ReportReceivers().ListOptedIn(ctx, g)
	if err != nil {
		return fmt.Errorf("can't get report receivers: %w", err)
	}
	to := recipients(rs)
	if len(to) == 0 {
		slog.Default().InfoContext(ctx, "no receivers for scheduled report",
			slog.String("period", g.String()),
			slog.String("date", date),
		)
		return nil
	}

	r, err := d.reports.GetReport(ctx, g.String(), date)
	if err != nil {
		return fmt.Errorf("can't get report: %w", err)
	}
	pdf, err := d.render(r)
	if err != nil {
		return fmt.Errorf("can't render report: %w", err)
	}
	if err := d.mailer.SendReport(ctx, to, r, pdf); err != nil {
		return fmt.Errorf("can't mail report: %w", err)
	}
	return nil
}

// recipients returns the distinct non-empty emails in receiver order.
func recipients(rs []entity.ReportReceiver) []string {
	seen := make(map[string]struct{}, len(rs))
	to := make([]string, 0, len(rs))
	for _, r := range rs {
		if r.Email == "" {
			continue
		}
		if _, ok := seen[r.Email]; ok {
			continue
		}
		seen[r.Email] = struct{}{}
		to = append(to, r.Email)
	}
	return to
}
