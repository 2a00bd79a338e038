package domain

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/davidbz/cinematch/internal/metrics"
	"github.com/davidbz/cinematch/internal/observability"
)

// Signal names one source of recommendation evidence.
type Signal string

const (
	SignalSimilar  Signal = "similar"
	SignalGenre    Signal = "genre"
	SignalActor    Signal = "actor"
	SignalDirector Signal = "director"
)

const defaultMaxConcurrency = 16

// branch is one concurrent signal lookup and the weight its candidates earn.
type branch struct {
	signal Signal
	weight int
	fetch  func(ctx context.Context) []Movie
}

// RecommendationService fans out signal lookups for the selected movies,
// scores every candidate and returns them ranked.
type RecommendationService struct {
	catalog Catalog
	config  RecommendConfig
}

// NewRecommendationService creates a new recommendation service (DI constructor).
// A nil config selects DefaultRecommendConfig.
func NewRecommendationService(catalog Catalog, cfg *RecommendConfig) *RecommendationService {
	config := DefaultRecommendConfig()
	if cfg != nil {
		config = *cfg
	}

	return &RecommendationService{
		catalog: catalog,
		config:  config,
	}
}

// Recommend returns at most MaxResults movies ranked by accumulated signal weight,
// ties broken by ascending ID. Selected IDs never appear in the output.
// Only invalid input produces an error; upstream trouble yields fewer (or no) results.
func (r *RecommendationService) Recommend(ctx context.Context, selectedIDs []int) ([]Movie, error) {
	ids, err := normalizeSelection(selectedIDs)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		metrics.RecommendDuration.Observe(time.Since(start).Seconds())
	}()

	ctx = observability.WithOperation(ctx, "recommend")
	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	logger := observability.FromContext(ctx)
	logger.Info("recommendation started", observability.Ints("selected_ids", ids))

	selected := r.resolveSelection(ctx, ids)
	branches := r.planBranches(selected)

	board := NewScoringBoard()
	pool := newCandidatePool()
	r.fanOut(ctx, branches, board, pool)

	candidates := pool.movies()
	metrics.RecommendCandidates.Observe(float64(len(candidates)))

	ranked := rank(candidates, board, ids, r.config.MaxResults)

	logger.Info("recommendation completed",
		observability.Int("resolved", len(selected)),
		observability.Int("branches", len(branches)),
		observability.Int("candidates", len(candidates)),
		observability.Int("scored", board.Len()),
		observability.Int("returned", len(ranked)),
		observability.Duration("elapsed", time.Since(start)))

	return ranked, nil
}

// resolveSelection fetches details for every selected ID concurrently.
// IDs that cannot be resolved are dropped; order follows ids.
func (r *RecommendationService) resolveSelection(ctx context.Context, ids []int) []*Movie {
	resolved := make([]*Movie, len(ids))

	var group errgroup.Group
	group.SetLimit(r.concurrency())

	for i, id := range ids {
		group.Go(func() error {
			movie, err := r.catalog.GetDetails(ctx, id)
			if err != nil {
				observability.FromContext(ctx).Info("selected movie unresolved, skipping its signals",
					observability.Int("movie_id", id),
					observability.Error(err))
				return nil
			}
			resolved[i] = movie
			return nil
		})
	}
	_ = group.Wait() // branches never return errors

	movies := make([]*Movie, 0, len(resolved))
	for _, movie := range resolved {
		if movie != nil {
			movies = append(movies, movie)
		}
	}

	return movies
}

// planBranches lists the signal lookups for the resolved movies in a fixed order.
func (r *RecommendationService) planBranches(selected []*Movie) []branch {
	limit := r.config.SignalLimit
	branches := make([]branch, 0, len(selected)*4)

	for _, movie := range selected {
		movieID := movie.ID
		branches = append(branches, branch{
			signal: SignalSimilar,
			weight: r.config.SimilarWeight,
			fetch: func(ctx context.Context) []Movie {
				return r.catalog.GetSimilar(ctx, movieID, limit)
			},
		})

		for _, genre := range movie.Genres {
			branches = append(branches, branch{
				signal: SignalGenre,
				weight: r.config.GenreWeight,
				fetch: func(ctx context.Context) []Movie {
					return r.catalog.DiscoverByGenre(ctx, genre, limit)
				},
			})
		}

		for _, actor := range movie.Actors {
			branches = append(branches, branch{
				signal: SignalActor,
				weight: r.config.ActorWeight,
				fetch: func(ctx context.Context) []Movie {
					return r.catalog.DiscoverByCast(ctx, actor.ID, limit)
				},
			})
		}

		for _, director := range movie.Directors {
			branches = append(branches, branch{
				signal: SignalDirector,
				weight: r.config.DirectorWeight,
				fetch: func(ctx context.Context) []Movie {
					return r.catalog.GetCreditsAsDirector(ctx, director.ID, limit)
				},
			})
		}
	}

	return branches
}

// fanOut runs every branch and returns once all of them have finished.
func (r *RecommendationService) fanOut(
	ctx context.Context,
	branches []branch,
	board *ScoringBoard,
	pool *candidatePool,
) {
	var group errgroup.Group
	group.SetLimit(r.concurrency())

	for _, b := range branches {
		group.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			metrics.RecommendBranches.WithLabelValues(string(b.signal)).Inc()

			for _, candidate := range b.fetch(ctx) {
				board.AddWeight(candidate.ID, b.weight)
				pool.offer(candidate)
			}
			return nil
		})
	}
	_ = group.Wait() // branches never return errors
}

func (r *RecommendationService) concurrency() int {
	if r.config.MaxConcurrency > 0 {
		return r.config.MaxConcurrency
	}
	return defaultMaxConcurrency
}

// rank drops excluded IDs, sorts by weight descending then ID ascending, and truncates.
func rank(candidates []Movie, board *ScoringBoard, exclude []int, maxResults int) []Movie {
	excluded := make(map[int]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}

	ranked := make([]Movie, 0, len(candidates))
	for _, movie := range candidates {
		if _, skip := excluded[movie.ID]; skip {
			continue
		}
		ranked = append(ranked, movie)
	}

	slices.SortFunc(ranked, func(a, b Movie) int {
		if byWeight := cmp.Compare(board.WeightOf(b.ID), board.WeightOf(a.ID)); byWeight != 0 {
			return byWeight
		}
		return cmp.Compare(a.ID, b.ID)
	})

	if maxResults > 0 && len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}

	return ranked
}

// normalizeSelection validates ids and drops repeats, keeping first occurrences.
func normalizeSelection(ids []int) ([]int, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one selected movie is required", ErrInvalidInput)
	}

	seen := make(map[int]struct{}, len(ids))
	unique := make([]int, 0, len(ids))

	for _, id := range ids {
		if id <= 0 {
			return nil, fmt.Errorf("%w: movie id must be positive, got %d", ErrInvalidInput, id)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique, nil
}

// candidatePool keeps one representative Movie per ID, the first one offered.
type candidatePool struct {
	mu   sync.Mutex
	byID map[int]Movie
}

func newCandidatePool() *candidatePool {
	return &candidatePool{
		byID: make(map[int]Movie),
	}
}

func (p *candidatePool) offer(movie Movie) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.byID[movie.ID]; !exists {
		p.byID[movie.ID] = movie
	}
}

func (p *candidatePool) movies() []Movie {
	p.mu.Lock()
	defer p.mu.Unlock()

	movies := make([]Movie, 0, len(p.byID))
	for _, movie := range p.byID {
		movies = append(movies, movie)
	}
	return movies
}
