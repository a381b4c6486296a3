package log

import (
	"context"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/robfig/cron/v3"
)

type Config struct {
	Level     int  `mapstructure:"level"`
	AddSource bool `mapstructure:"add_source"`
}

type cronLogger struct {
	l *slog.Logger
}

// CronLogger adapts slog logger to the cron scheduler logger.
func CronLogger(l *slog.Logger) cron.Logger {
	return cronLogger{l: l}
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Log(context.Background(), slog.LevelDebug, msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Log(context.Background(), slog.LevelError, msg, append([]interface{}{slog.String("err", err.Error())}, keysAndValues...)...)
}

// RequestLogger logs every served request once it completes.
func RequestLogger(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				l.InfoContext(r.Context(), "http request",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("status", ww.Status()),
					slog.Int("bytes", ww.BytesWritten()),
					slog.Duration("duration", time.Since(start)),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
