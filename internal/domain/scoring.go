package domain

import "sync"

// ScoringBoard accumulates additive weights per candidate movie ID.
// It is safe for concurrent use and lives for a single recommendation.
type ScoringBoard struct {
	mu      sync.Mutex
	weights map[int]int
}

// NewScoringBoard creates an empty board.
func NewScoringBoard() *ScoringBoard {
	return &ScoringBoard{
		weights: make(map[int]int),
	}
}

// AddWeight increments movieID's weight, starting from zero.
func (b *ScoringBoard) AddWeight(movieID, weight int) {
	b.mu.Lock()
	b.weights[movieID] += weight
	b.mu.Unlock()
}

// WeightOf returns the accumulated weight, 0 if movieID was never scored.
func (b *ScoringBoard) WeightOf(movieID int) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.weights[movieID]
}

// Len returns the number of scored movies.
func (b *ScoringBoard) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.weights)
}
