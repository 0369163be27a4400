// Package health serves the HTTP health and stats endpoints that run
// alongside the Telegram bot.
package health

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Stats is the counters snapshot exposed at /stats.
type Stats struct {
	Users          int   `json:"users"`
	Watchlists     int   `json:"watchlists"`
	ActiveAlerts   int   `json:"active_alerts"`
	HandledUpdates int64 `json:"handled_updates"`
}

// StatsFunc supplies the current counters. Called on every /stats
// request.
type StatsFunc func() Stats

// NewRouter creates a chi router serving the banner, health check, and
// stats endpoints with request logging.
func NewRouter(version string, startedAt time.Time, stats StatsFunc, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(requestLogging(logger))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "Stock Market Bot %s is running\n", version)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]any{
			"status":  "ok",
			"version": version,
			"uptime":  time.Since(startedAt).Round(time.Second).String(),
		})
	})

	r.Get("/stats", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, stats())
	})

	return r
}

// WriteJSON encodes data as a JSON response body. The Content-Type
// header must be set before the status code is written.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data) // nothing useful to do with an encode error here
}

// requestLogging is slog middleware for the probe endpoints: one line
// per request with method, path, status, and duration.
func requestLogging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// statusWriter records the status code on its way to the client, since
// net/http offers no way to read it back after the handler runs.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}
