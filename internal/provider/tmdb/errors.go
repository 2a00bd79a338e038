package tmdb

import (
	"fmt"
	"net/http"

	"github.com/davidbz/cinematch/internal/domain"
)

// APIError describes a failed TMDb call. Status is 0 when no response arrived.
// It matches domain.ErrNotFound for 404 and domain.ErrUpstreamUnavailable otherwise.
type APIError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tmdb %s: status %d: %v", e.Endpoint, e.Status, e.Err)
	}
	return fmt.Sprintf("tmdb %s: status %d", e.Endpoint, e.Status)
}

func (e *APIError) Unwrap() []error {
	kind := domain.ErrUpstreamUnavailable
	if e.Status == http.StatusNotFound {
		kind = domain.ErrNotFound
	}

	if e.Err != nil {
		return []error{kind, e.Err}
	}
	return []error{kind}
}
