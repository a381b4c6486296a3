package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jekabolt/resto-manager/config"
	httpapi "github.com/jekabolt/resto-manager/internal/api/http"
	"github.com/jekabolt/resto-manager/internal/auth"
	"github.com/jekabolt/resto-manager/internal/dependency"
	"github.com/jekabolt/resto-manager/internal/mail"
	"github.com/jekabolt/resto-manager/internal/report"
	"github.com/jekabolt/resto-manager/internal/reportsched"
	"github.com/jekabolt/resto-manager/internal/store"
)

// App is the main application
type App struct {
	hs   *httpapi.Server
	rs   *reportsched.Dispatcher
	db   dependency.Repository
	c    *config.Config
	once sync.Once
	done chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting resto manager")

	a.db, err = store.New(ctx, a.c.DB)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't connect to mysql", slog.String("err", err.Error()))
		return err
	}

	authS, err := auth.New(&a.c.Auth, a.db.Admin())
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create new auth server", slog.String("err", err.Error()))
		return err
	}

	mailer, err := mail.New(&a.c.Mailer)
	if err != nil {
		slog.Default().ErrorContext(ctx, "failed create new mailer", slog.String("err", err.Error()))
		return err
	}

	loc, err := time.LoadLocation(a.c.ReportSchedule.Timezone)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't load report timezone", slog.String("err", err.Error()))
		return err
	}
	reports := report.New(a.db, loc)

	if a.c.ReportSchedule.Enabled {
		a.rs, err = reportsched.New(&a.c.ReportSchedule, a.db, reports, mailer)
		if err != nil {
			slog.Default().ErrorContext(ctx, "failed create report dispatcher", slog.String("err", err.Error()))
			return err
		}
		if err := a.rs.Start(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "failed start report dispatcher", slog.String("err", err.Error()))
			return err
		}
	} else {
		slog.Default().InfoContext(ctx, "scheduled reports disabled")
	}

	a.hs = httpapi.New(&a.c.HTTP, a.c.Recurring(), a.db, reports, mailer, authS)
	if err = a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server", slog.String("err", err.Error()))
		return err
	}

	go func() {
		<-a.hs.Done()
		a.closeOnce()
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown failed", slog.String("err", err.Error()))
		}
	}
	if a.rs != nil {
		if err := a.rs.Stop(); err != nil {
			slog.Default().ErrorContext(ctx, "report dispatcher stop failed", slog.String("err", err.Error()))
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	a.closeOnce()
}

func (a *App) closeOnce() {
	a.once.Do(func() { close(a.done) })
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() <-chan struct{} {
	return a.done
}
