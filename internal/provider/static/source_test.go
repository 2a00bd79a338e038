package static_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/cinematch/internal/domain"
	"github.com/davidbz/cinematch/internal/provider/static"
)

func movieIDs(movies []domain.Movie) []int {
	ids := make([]int, 0, len(movies))
	for _, m := range movies {
		ids = append(ids, m.ID)
	}
	return ids
}

func loadTestCatalog(t *testing.T) *static.Source {
	t.Helper()

	source, err := static.New(static.Config{FixturePath: "testdata/catalog.json"})
	require.NoError(t, err)
	require.Equal(t, 3, source.Len())

	return source
}

func TestNew_EmbeddedCatalog(t *testing.T) {
	source, err := static.New(static.Config{})

	require.NoError(t, err)
	require.Positive(t, source.Len())

	heat, err := source.Details(context.Background(), 949)
	require.NoError(t, err)
	require.Equal(t, "Heat", heat.Title)
	require.Equal(t, []domain.Person{{ID: 638, Name: "Michael Mann"}}, heat.Directors)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "malformed json", data: `{"movies":`},
		{name: "non-positive id", data: `{"movies":[{"id":0,"title":"Zero"}]}`},
		{name: "duplicate id", data: `{"movies":[{"id":1,"title":"A"},{"id":1,"title":"B"}]}`},
		{name: "missing title", data: `{"movies":[{"id":1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, err := static.Parse([]byte(tt.data))

			require.Error(t, err)
			require.Nil(t, source)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := static.LoadFile("testdata/does-not-exist.json")

	require.Error(t, err)
}

func TestSource_Search(t *testing.T) {
	source := loadTestCatalog(t)

	movies, err := source.Search(context.Background(), "ALPHA")

	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, movieIDs(movies))
	require.Empty(t, movies[0].Genres)
	require.NotNil(t, movies[0].Genres)
}

func TestSource_Details(t *testing.T) {
	ctx := context.Background()
	source := loadTestCatalog(t)

	t.Run("should return an independent copy", func(t *testing.T) {
		movie, err := source.Details(ctx, 1)
		require.NoError(t, err)
		movie.Genres[0] = "Changed"

		again, err := source.Details(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, []string{"Drama"}, again.Genres)
	})

	t.Run("should report unknown ids as not found", func(t *testing.T) {
		movie, err := source.Details(ctx, 404)

		require.ErrorIs(t, err, domain.ErrNotFound)
		require.Nil(t, movie)
	})
}

func TestSource_Similar(t *testing.T) {
	ctx := context.Background()
	source := loadTestCatalog(t)

	movies, err := source.Similar(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []int{2}, movieIDs(movies))

	_, err = source.Similar(ctx, 404)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSource_Discovery(t *testing.T) {
	ctx := context.Background()
	source := loadTestCatalog(t)

	tests := []struct {
		name     string
		call     func() ([]domain.Movie, error)
		expected []int
	}{
		{
			name:     "genre ordered by popularity then id",
			call:     func() ([]domain.Movie, error) { return source.DiscoverByGenre(ctx, domain.GenreID("Comedy")) },
			expected: []int{2, 3},
		},
		{
			name:     "genre outside the table matches nothing",
			call:     func() ([]domain.Movie, error) { return source.DiscoverByGenre(ctx, 123456) },
			expected: []int{},
		},
		{
			name:     "cast",
			call:     func() ([]domain.Movie, error) { return source.DiscoverByCast(ctx, 10) },
			expected: []int{2, 1},
		},
		{
			name:     "director",
			call:     func() ([]domain.Movie, error) { return source.DirectedBy(ctx, 20) },
			expected: []int{3, 1},
		},
		{
			name:     "unknown person",
			call:     func() ([]domain.Movie, error) { return source.DirectedBy(ctx, 999) },
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movies, err := tt.call()

			require.NoError(t, err)
			require.Equal(t, tt.expected, movieIDs(movies))
		})
	}
}
