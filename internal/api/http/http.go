package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"
	"github.com/jekabolt/resto-manager/internal/auth"
	"github.com/jekabolt/resto-manager/internal/dependency"
	rlog "github.com/jekabolt/resto-manager/log"
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	LoginRateLimit int      `mapstructure:"login_rate_limit"`
}

// RecurringConfig is the number of periods past the next due date that
// recurring entries keep running.
type RecurringConfig struct {
	ExpenseHorizon int
	StockHorizon   int
}

// Server is the http server
type Server struct {
	hs      *http.Server
	c       *Config
	rc      RecurringConfig
	repo    dependency.Repository
	reports dependency.ReportAssembler
	mailer  dependency.Mailer
	auth    *auth.Server
	done    chan struct{}
}

// New creates a new server
func New(c *Config, rc RecurringConfig, repo dependency.Repository, reports dependency.ReportAssembler, mailer dependency.Mailer, a *auth.Server) *Server {
	return &Server{
		c:       c,
		rc:      rc,
		repo:    repo,
		reports: reports,
		mailer:  mailer,
		auth:    a,
		done:    make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Router builds the full route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(rlog.RequestLogger(slog.Default()))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.c.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/healthz", s.health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/menu", s.getMenu)

		r.Route("/auth", func(r chi.Router) {
			limit := s.c.LoginRateLimit
			if limit <= 0 {
				limit = 10
			}
			// login and admin creation share one per-IP budget of password guesses
			r.Use(httprate.LimitByIP(limit, time.Minute))
			r.Post("/login", s.login)
			r.Post("/admins", s.createAdmin)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.auth.WithAuth)

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/revenue", s.getRevenue)
				r.Get("/expenses", s.getExpensesByPeriod)
				r.Get("/net", s.getNetProfit)
				r.Get("/orders", s.getOrderCount)
				r.Get("/popular-items", s.getPopularItems)
				r.Get("/order-trends", s.getOrderTrends)
				r.Get("/customer-count", s.getCustomerCount)
				r.Get("/revenue-heatmap", s.getRevenueHeatmap)
			})

			r.Get("/report", s.getReport)
			r.Get("/report/export", s.exportReport)
			r.Post("/send-report", s.sendReport)

			r.Route("/report-receivers", func(r chi.Router) {
				r.Get("/", s.listReceivers)
				r.Post("/", s.addReceiver)
				r.Put("/{id}", s.updateReceiver)
				r.Delete("/{id}", s.deleteReceiver)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Get("/", s.listExpenses)
				r.Post("/", s.addExpense)
				r.Get("/{id}", s.getExpense)
				r.Put("/{id}", s.updateExpense)
				r.Delete("/{id}", s.deleteExpense)
			})

			r.Route("/stock", func(r chi.Router) {
				r.Get("/", s.listStock)
				r.Post("/", s.addStock)
				r.Get("/{id}", s.getStock)
				r.Put("/{id}", s.updateStock)
				r.Delete("/{id}", s.deleteStock)
			})

			r.Route("/wastage", func(r chi.Router) {
				r.Get("/", s.listWastage)
				r.Post("/", s.addWastage)
				r.Put("/{id}", s.updateWastage)
				r.Delete("/{id}", s.deleteWastage)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", s.listCategories)
				r.Post("/", s.addCategory)
				r.Put("/{id}", s.updateCategory)
				r.Delete("/{id}", s.deleteCategory)
			})

			r.Route("/items", func(r chi.Router) {
				r.Get("/", s.listItems)
				r.Post("/", s.addItem)
				r.Get("/{id}", s.getItem)
				r.Put("/{id}", s.updateItem)
				r.Delete("/{id}", s.deleteItem)
			})
		})
	})

	return r
}

// Start starts the server
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Default().InfoContext(ctx, "resto-manager listening", slog.String("addr", "http://"+listenerAddr))
		err := s.hs.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	return s.hs.Shutdown(ctx)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.Ping(r.Context()); err != nil {
		slog.Default().ErrorContext(r.Context(), "health check failed", slog.String("err", err.Error()))
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, map[string]string{"status": "unavailable"})
		return
	}
	render.JSON(w, r, map[string]string{"status": "ok"})
}
