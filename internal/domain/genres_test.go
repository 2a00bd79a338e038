package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/cinematch/internal/domain"
)

func TestGenreID(t *testing.T) {
	tests := []struct {
		name     string
		genre    string
		expected int
	}{
		{name: "drama", genre: "Drama", expected: 18},
		{name: "multi-word name", genre: "Science Fiction", expected: 878},
		{name: "tv movie", genre: "TV Movie", expected: 10770},
		{name: "unknown falls back to action", genre: "Space Opera", expected: domain.DefaultGenreID},
		{name: "lookup is case-sensitive", genre: "drama", expected: domain.DefaultGenreID},
		{name: "empty", genre: "", expected: domain.DefaultGenreID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, domain.GenreID(tt.genre))
		})
	}
}

func TestGenreName_RoundTrip(t *testing.T) {
	names := []string{
		"Action", "Adventure", "Animation", "Comedy", "Crime", "Documentary", "Drama",
		"Family", "Fantasy", "History", "Horror", "Music", "Mystery", "Romance",
		"Science Fiction", "TV Movie", "Thriller", "War", "Western",
	}

	seen := make(map[int]bool, len(names))
	for _, name := range names {
		id := domain.GenreID(name)
		require.False(t, seen[id], "duplicate id %d for %s", id, name)
		seen[id] = true

		resolved, ok := domain.GenreName(id)
		require.True(t, ok, name)
		require.Equal(t, name, resolved)
	}
}

func TestGenreName(t *testing.T) {
	name, ok := domain.GenreName(10752)
	require.True(t, ok)
	require.Equal(t, "War", name)

	_, ok = domain.GenreName(1)
	require.False(t, ok)
}
