package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/davidbz/cinematch/internal/metrics"
	"github.com/davidbz/cinematch/internal/observability"
)

const unmatchedRoute = "unmatched"

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Metrics records request latency by route pattern and status, then logs completion.
// The pattern is read after the mux has matched, so this must wrap the mux directly.
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			route := r.Pattern
			if route == "" {
				route = unmatchedRoute
			}
			elapsed := time.Since(start)

			metrics.HTTPRequestDuration.
				WithLabelValues(route, strconv.Itoa(recorder.status)).
				Observe(elapsed.Seconds())

			observability.FromContext(r.Context()).Info("request completed",
				observability.String("route", route),
				observability.Int("status", recorder.status),
				observability.Duration("elapsed", elapsed),
			)
		})
	}
}
