package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/davidbz/cinematch/internal/observability"
)

// Recover turns a handler panic into a logged 500 so one bad request cannot
// take the process down. http.ErrAbortHandler is re-raised untouched.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity
					panic(rec)
				}

				observability.FromContext(r.Context()).Error("handler panicked",
					observability.String("method", r.Method),
					observability.String("path", r.URL.Path),
					zap.Any("panic", rec),
					zap.StackSkip("stack", 1))

				http.Error(w, "internal server error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
