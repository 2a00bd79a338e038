package middleware

import (
	"net/http"

	"github.com/davidbz/cinematch/internal/config"
)

// Middleware decorates an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes middlewares; the first one listed sees the request first.
func Chain(middlewares ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		wrapped := final
		for i := range middlewares {
			wrapped = middlewares[len(middlewares)-1-i](wrapped)
		}
		return wrapped
	}
}

// BuildMiddlewareChain composes the production chain:
// CORS -> Trace -> Recover -> Metrics -> mux.
//
// Recover sits inside Trace so panic logs carry the request IDs. Metrics must
// wrap the mux directly: the mux stores the matched pattern on the request it
// receives, and Metrics reads it from that same request.
func BuildMiddlewareChain(corsConfig *config.CORSConfig) Middleware {
	return Chain(
		CORS(corsConfig),
		Trace(),
		Recover(),
		Metrics(),
	)
}
