package middleware

import (
	"net/http"

	"github.com/davidbz/cinematch/internal/observability"
)

// Trace injects trace, span and request IDs into every request context,
// echoes them as response headers and logs the request start.
// An incoming X-Request-Id is kept so callers can correlate their own logs.
func Trace() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			traceID := observability.GenerateTraceID()
			ctx = observability.WithTraceID(ctx, traceID)
			ctx = observability.WithSpanID(ctx, observability.GenerateSpanID())

			requestID := r.Header.Get("X-Request-Id")
			if requestID == "" {
				requestID = observability.GenerateRequestID()
			}
			ctx = observability.WithRequestID(ctx, requestID)

			w.Header().Set("X-Trace-Id", traceID)
			w.Header().Set("X-Request-Id", requestID)

			observability.FromContext(ctx).Info("request started",
				observability.String("method", r.Method),
				observability.String("path", r.URL.Path),
				observability.String("remote_addr", r.RemoteAddr),
			)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
