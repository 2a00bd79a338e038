package middleware

import (
	"context"
	"net/http"

	"github.com/rs/cors"

	"github.com/davidbz/cinematch/internal/config"
	"github.com/davidbz/cinematch/internal/observability"
)

// exposedHeaders lets browser clients read the correlation IDs set by Trace.
//
//nolint:gochecknoglobals // fixed header list
var exposedHeaders = []string{"X-Trace-Id", "X-Request-Id"}

// corsLogger sends rs/cors decisions to the shared logger at debug level.
type corsLogger struct{}

func (corsLogger) Printf(format string, args ...any) {
	observability.FromContext(context.Background()).Sugar().Debugf("cors: "+format, args...)
}

// CORS applies the configured cross-origin policy. A nil config disables it.
func CORS(cfg *config.CORSConfig) Middleware {
	if cfg == nil {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	policy := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
		Logger:           corsLogger{},
	})

	return policy.Handler
}
