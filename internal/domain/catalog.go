package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/singleflight"

	"github.com/davidbz/cinematch/internal/metrics"
	"github.com/davidbz/cinematch/internal/observability"
)

// Cache lifetimes per catalog operation.
const (
	SearchTTL   = 30 * time.Minute
	DetailsTTL  = 60 * time.Minute
	SimilarTTL  = 60 * time.Minute
	GenreTTL    = 30 * time.Minute
	ActorTTL    = 30 * time.Minute
	DirectorTTL = 60 * time.Minute
)

// sharedFetchTimeout bounds one upstream fetch shared by concurrent misses.
const sharedFetchTimeout = 30 * time.Second

// Cache key prefixes. Each also labels the operation in logs and metrics.
const (
	opSearch   = "Search"
	opMovie    = "Movie"
	opSimilar  = "Similar"
	opGenre    = "Genre"
	opActor    = "Actor"
	opDirector = "Director"
)

// CatalogService implements Catalog with the cache-aside pattern in front of a MovieSource.
// Failed fetches are never cached; successful empty results are.
type CatalogService struct {
	source MovieSource
	cache  CacheStore
	flight singleflight.Group
}

// NewCatalogService creates a new catalog service (DI constructor).
func NewCatalogService(source MovieSource, cache CacheStore) *CatalogService {
	return &CatalogService{
		source: source,
		cache:  cache,
	}
}

// CacheKey builds the cache key for an operation argument, e.g. "Genre:18".
func CacheKey(operation string, arg any) string {
	return fmt.Sprintf("%s:%v", operation, arg)
}

// SearchByTitle returns abbreviated movies matching query, at most limit of them.
func (s *CatalogService) SearchByTitle(ctx context.Context, query string, limit int) ([]Movie, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query cannot be empty", ErrInvalidInput)
	}

	return s.list(ctx, opSearch, query, SearchTTL, limit, func(ctx context.Context) ([]Movie, error) {
		return s.source.Search(ctx, query)
	}), nil
}

// GetDetails returns the full movie. Any upstream failure is reported as ErrNotFound.
func (s *CatalogService) GetDetails(ctx context.Context, movieID int) (*Movie, error) {
	if movieID <= 0 {
		return nil, fmt.Errorf("%w: movie id must be positive, got %d", ErrInvalidInput, movieID)
	}

	movie, err := loadThrough(ctx, s, opMovie, CacheKey(opMovie, movieID), DetailsTTL,
		func(ctx context.Context) (*Movie, error) {
			m, fetchErr := s.source.Details(ctx, movieID)
			if fetchErr == nil && m == nil {
				return nil, ErrNotFound
			}
			return m, fetchErr
		})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			observability.FromContext(ctx).Debug("movie details unavailable, reporting not found",
				observability.Int("movie_id", movieID),
				observability.Error(err))
		}
		return nil, fmt.Errorf("movie %d: %w", movieID, ErrNotFound)
	}

	return movie, nil
}

// GetSimilar returns movies the upstream ranks as similar to movieID.
func (s *CatalogService) GetSimilar(ctx context.Context, movieID int, limit int) []Movie {
	return s.list(ctx, opSimilar, movieID, SimilarTTL, limit, func(ctx context.Context) ([]Movie, error) {
		return s.source.Similar(ctx, movieID)
	})
}

// DiscoverByGenre returns movies of the named genre. Unknown names fall back to Action.
func (s *CatalogService) DiscoverByGenre(ctx context.Context, genre string, limit int) []Movie {
	genreID := GenreID(genre)

	return s.list(ctx, opGenre, genreID, GenreTTL, limit, func(ctx context.Context) ([]Movie, error) {
		return s.source.DiscoverByGenre(ctx, genreID)
	})
}

// DiscoverByCast returns movies featuring personID, most popular first.
func (s *CatalogService) DiscoverByCast(ctx context.Context, personID int, limit int) []Movie {
	return s.list(ctx, opActor, personID, ActorTTL, limit, func(ctx context.Context) ([]Movie, error) {
		return s.source.DiscoverByCast(ctx, personID)
	})
}

// GetCreditsAsDirector returns movies personID directed. Other crew jobs are
// filtered out by the source before limit applies.
func (s *CatalogService) GetCreditsAsDirector(ctx context.Context, personID int, limit int) []Movie {
	return s.list(ctx, opDirector, personID, DirectorTTL, limit, func(ctx context.Context) ([]Movie, error) {
		return s.source.DirectedBy(ctx, personID)
	})
}

// list runs a cache-aside list lookup and truncates to limit (non-positive means no limit).
func (s *CatalogService) list(
	ctx context.Context,
	operation string,
	arg any,
	ttl time.Duration,
	limit int,
	fetch func(context.Context) ([]Movie, error),
) []Movie {
	movies, err := loadThrough(ctx, s, operation, CacheKey(operation, arg), ttl, fetch)
	if err != nil {
		observability.FromContext(ctx).Debug("catalog lookup degraded to empty result",
			observability.String("lookup", operation),
			observability.Error(err))
		return []Movie{}
	}

	if limit > 0 && len(movies) > limit {
		movies = movies[:limit]
	}
	if movies == nil {
		movies = []Movie{}
	}

	return movies
}

// loadThrough reads key from the cache and, on a miss, fetches and stores it.
// Concurrent misses on one key share a single fetch. Each caller stops waiting
// when its own ctx ends; the shared fetch carries on for the remaining waiters. Every caller decodes its own
// copy of the payload, so cached values are never mutated in place.
func loadThrough[T any](
	ctx context.Context,
	s *CatalogService,
	operation string,
	key string,
	ttl time.Duration,
	fetch func(context.Context) (T, error),
) (T, error) {
	var value T
	logger := observability.FromContext(ctx)

	if payload, ok := s.cache.Get(ctx, key); ok {
		decodeErr := json.Unmarshal(payload, &value)
		if decodeErr == nil {
			metrics.CacheLookups.WithLabelValues(operation, metrics.ResultHit).Inc()
			return value, nil
		}
		logger.Warn("discarding undecodable cache entry",
			observability.String("key", key),
			observability.Error(decodeErr))
	}

	metrics.CacheLookups.WithLabelValues(operation, metrics.ResultMiss).Inc()

	results := s.flight.DoChan(key, func() (any, error) {
		// The fetch outlives any single waiter's ctx; only sharedFetchTimeout ends it.
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedFetchTimeout)
		defer cancel()

		fetched, fetchErr := fetch(fetchCtx)
		if fetchErr != nil {
			return nil, fetchErr
		}

		payload, encodeErr := json.Marshal(fetched)
		if encodeErr != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", key, encodeErr)
		}

		s.cache.Set(fetchCtx, key, payload, ttl)
		logger.Debug("cache populated",
			observability.String("key", key),
			observability.Duration("ttl", ttl))

		return payload, nil
	})

	var result singleflight.Result
	select {
	case result = <-results:
	case <-ctx.Done():
		return value, fmt.Errorf("gave up waiting for %s: %w", key, ctx.Err())
	}
	if result.Err != nil {
		return value, result.Err
	}

	payload, _ := result.Val.([]byte)
	if decodeErr := json.Unmarshal(payload, &value); decodeErr != nil {
		return value, fmt.Errorf("failed to decode %s: %w", key, decodeErr)
	}

	return value, nil
}
