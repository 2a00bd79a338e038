package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/davidbz/cinematch/internal/domain"
	"github.com/davidbz/cinematch/internal/metrics"
	"github.com/davidbz/cinematch/internal/observability"
)

const (
	// maxErrorBodySize limits how much of a failed response is kept for the log.
	maxErrorBodySize = 4 * 1024

	breakerName = "tmdb-api"

	// The breaker opens after this many consecutive failures and probes again after breakerTimeout.
	breakerMaxFailures = 5
	breakerTimeout     = 30 * time.Second
	breakerInterval    = time.Minute
	breakerHalfOpenMax = 3
)

// errCallerDone marks failures caused by the caller's own context ending
// (cancellation or its deadline), as opposed to http.Client's timeout.
var errCallerDone = errors.New("caller context done")

// callerAware tags err with errCallerDone when ctx has already ended.
func callerAware(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%w: %w", errCallerDone, err)
	}
	return err
}

// Client wraps the HTTP client for TMDb API calls with a rate limiter and a circuit breaker.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]byte]
}

// NewClient creates a new TMDb HTTP client.
func NewClient(config Config) *Client {
	limit := rate.Inf
	if config.RateLimit > 0 {
		limit = rate.Limit(config.RateLimit)
	}

	burst := config.RateBurst
	if burst <= 0 {
		burst = 1
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(float64(gobreaker.StateClosed))

	return &Client{
		apiKey:  config.APIKey,
		baseURL: config.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(config.Timeout) * time.Second,
		},
		limiter: rate.NewLimiter(limit, burst),
		breaker: gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
			Name:        breakerName,
			MaxRequests: breakerHalfOpenMax,
			Interval:    breakerInterval,
			Timeout:     breakerTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= breakerMaxFailures
			},
			IsSuccessful: func(err error) bool {
				// A missing movie or a caller that stopped waiting says nothing about upstream health.
				return err == nil || errors.Is(err, domain.ErrNotFound) || errors.Is(err, errCallerDone)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				observability.FromContext(context.Background()).Warn("circuit breaker state transition",
					observability.String("breaker", name),
					observability.String("from", from.String()),
					observability.String("to", to.String()))
				metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
			},
		}),
	}
}

// get performs a GET request and decodes the JSON body into out.
// Every failure is returned as *APIError.
func (c *Client) get(ctx context.Context, req *apiRequest, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return c.fail(ctx, req.endpoint, 0, fmt.Errorf("rate limiter: %w", err))
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.do(ctx, req)
	})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return apiErr
		}
		// Open breaker or half-open request cap: the request never left the process.
		return c.fail(ctx, req.endpoint, 0, err)
	}

	if decodeErr := json.Unmarshal(body, out); decodeErr != nil {
		return c.fail(ctx, req.endpoint, http.StatusOK, fmt.Errorf("failed to decode response: %w", decodeErr))
	}

	return nil
}

// do executes one HTTP round trip and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, req *apiRequest) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		req.buildURL(c.baseURL, c.apiKey),
		http.NoBody,
	)
	if err != nil {
		return nil, c.fail(ctx, req.endpoint, 0, fmt.Errorf("failed to create request: %w", err))
	}
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	metrics.UpstreamDuration.WithLabelValues(req.endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(req.endpoint, "error").Inc()
		return nil, c.fail(ctx, req.endpoint, 0, callerAware(ctx, fmt.Errorf("request failed: %w", err)))
	}
	defer resp.Body.Close()

	metrics.UpstreamRequests.WithLabelValues(req.endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, c.fail(ctx, req.endpoint, resp.StatusCode, errors.New(readBodyForError(resp.Body)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(ctx, req.endpoint, resp.StatusCode,
			callerAware(ctx, fmt.Errorf("failed to read response: %w", err)))
	}

	return body, nil
}

// fail logs the failure and builds the matching *APIError.
// Not-found is expected traffic and stays below warning level.
func (c *Client) fail(ctx context.Context, endpoint string, status int, cause error) *APIError {
	logger := observability.FromContext(ctx)

	if status == http.StatusNotFound {
		logger.Info("tmdb resource not found",
			observability.String("endpoint", endpoint),
			observability.Int("status", status))
	} else {
		logger.Warn("tmdb request failed",
			observability.String("endpoint", endpoint),
			observability.Int("status", status),
			observability.Error(cause))
	}

	return &APIError{
		Endpoint: endpoint,
		Status:   status,
		Err:      cause,
	}
}

// readBodyForError reads at most maxErrorBodySize bytes of a failed response.
func readBodyForError(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return "(failed to read response body)"
	}
	if len(body) == 0 {
		return "(empty response body)"
	}
	return string(body)
}
