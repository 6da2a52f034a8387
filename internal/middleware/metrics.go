package middleware

import (
	"net/http"
	"strconv"
	"time"

	"azushop-client/internal/observability"

	"github.com/go-chi/chi/v5"
)

// Metrics records per-request duration and count. The path label uses
// the chi route pattern so path parameters do not explode cardinality.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(ww, r)

			path := chi.RouteContext(r.Context()).RoutePattern()
			if path == "" {
				path = r.URL.Path
			}
			status := strconv.Itoa(ww.statusCode)
			duration := time.Since(start).Seconds()

			observability.DemoServerRequestDuration.WithLabelValues(
				r.Method, path, status,
			).Observe(duration)

			observability.DemoServerRequestsTotal.WithLabelValues(
				r.Method, path, status,
			).Inc()
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	rw.statusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}
