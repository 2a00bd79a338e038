package domain

import (
	"context"
	"time"
)

// CacheStore is a process-wide key/value store with per-entry TTL.
// Get reports false both for keys never set and for expired entries.
type CacheStore interface {
	// Get returns the payload stored under key if it has not expired.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores payload under key for ttl, replacing any previous entry.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration)
}

// MovieSource fetches catalog data from the upstream metadata service.
// List methods return the first result page only; callers truncate.
type MovieSource interface {
	// Search returns abbreviated movies whose title matches query.
	Search(ctx context.Context, query string) ([]Movie, error)

	// Details returns the full movie or ErrNotFound.
	Details(ctx context.Context, movieID int) (*Movie, error)

	// Similar returns abbreviated movies similar to movieID, source-ranked.
	Similar(ctx context.Context, movieID int) ([]Movie, error)

	// DiscoverByGenre returns abbreviated movies tagged with genreID.
	DiscoverByGenre(ctx context.Context, genreID int) ([]Movie, error)

	// DiscoverByCast returns abbreviated movies featuring personID, most popular first.
	DiscoverByCast(ctx context.Context, personID int) ([]Movie, error)

	// DirectedBy returns abbreviated movies personID worked on as "Director".
	DirectedBy(ctx context.Context, personID int) ([]Movie, error)
}

// Catalog is the cache-aside view of the metadata service. List operations
// soft-fail to an empty slice; only input validation and not-found surface as errors.
type Catalog interface {
	SearchByTitle(ctx context.Context, query string, limit int) ([]Movie, error)
	GetDetails(ctx context.Context, movieID int) (*Movie, error)
	GetSimilar(ctx context.Context, movieID int, limit int) []Movie
	DiscoverByGenre(ctx context.Context, genre string, limit int) []Movie
	DiscoverByCast(ctx context.Context, personID int, limit int) []Movie
	GetCreditsAsDirector(ctx context.Context, personID int, limit int) []Movie
}

// Recommender ranks candidate movies for a set of selected movie IDs.
type Recommender interface {
	Recommend(ctx context.Context, selectedIDs []int) ([]Movie, error)
}
