package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"foods-backend/food-svc/internal/metrics"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	requestIDHeader = "X-Request-ID"
	unmatchedRoute  = "unmatched"
)

type routeKey struct{}

// RequestID echoes the caller's X-Request-ID or assigns a new one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(requestIDHeader, id)
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// Instrument logs each request and records it in m, which may be nil. It
// wraps the whole router so 404 and 405 responses are seen too; matched
// requests report their route through CaptureRoute.
func Instrument(logger *slog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			route := unmatchedRoute
			r = r.WithContext(context.WithValue(r.Context(), routeKey{}, &route))

			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			m.ObserveRequest(r.Method, route, ww.statusCode, elapsed)
			logger.InfoContext(r.Context(), "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"route", route,
				"status", ww.statusCode,
				"duration_ms", elapsed.Milliseconds(),
				"request_id", r.Header.Get(requestIDHeader),
				"remote_addr", r.RemoteAddr,
			)
		})
	}
}

// CaptureRoute is a mux middleware that hands the matched path template
// back to Instrument.
func CaptureRoute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if route, ok := r.Context().Value(routeKey{}).(*string); ok {
			if current := mux.CurrentRoute(r); current != nil {
				if tpl, err := current.GetPathTemplate(); err == nil {
					*route = tpl
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
