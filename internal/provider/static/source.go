// Package static provides an offline MovieSource backed by a JSON catalog.
// It makes no network calls, so the service can run in development and tests
// without metadata-service credentials.
package static

import (
	"cmp"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/goccy/go-json"

	"github.com/davidbz/cinematch/internal/domain"
	"github.com/davidbz/cinematch/internal/observability"
)

//go:embed fixture.json
var embeddedCatalog []byte

type fixtureMovie struct {
	domain.Movie

	Popularity float64 `json:"popularity"`
	Similar    []int   `json:"similar"`
}

type fixture struct {
	Movies []fixtureMovie `json:"movies"`
}

// Source implements domain.MovieSource over an in-memory catalog.
// It is read-only after construction and safe for concurrent use.
type Source struct {
	movies []fixtureMovie // catalog order
	byID   map[int]int    // movie id -> index in movies
}

// New loads the catalog named by config, or the embedded one.
func New(config Config) (*Source, error) {
	if config.FixturePath == "" {
		return Parse(embeddedCatalog)
	}
	return LoadFile(config.FixturePath)
}

// LoadFile reads a catalog from a JSON file.
func LoadFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog fixture: %w", err)
	}
	return Parse(data)
}

// Parse builds a source from catalog JSON. Movie IDs must be positive and unique.
func Parse(data []byte) (*Source, error) {
	var f fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode catalog fixture: %w", err)
	}

	s := &Source{
		movies: f.Movies,
		byID:   make(map[int]int, len(f.Movies)),
	}

	for i, m := range f.Movies {
		if m.ID <= 0 {
			return nil, fmt.Errorf("catalog fixture entry %d: movie id must be positive", i)
		}
		if _, dup := s.byID[m.ID]; dup {
			return nil, fmt.Errorf("catalog fixture entry %d: duplicate movie id %d", i, m.ID)
		}
		if m.Title == "" {
			return nil, errors.New("catalog fixture: every movie needs a title")
		}
		s.byID[m.ID] = i
	}

	return s, nil
}

// Len returns the number of movies in the catalog.
func (s *Source) Len() int {
	return len(s.movies)
}

// Search matches query as a case-insensitive title substring, in catalog order.
func (s *Source) Search(ctx context.Context, query string) ([]domain.Movie, error) {
	needle := strings.ToLower(strings.TrimSpace(query))

	results := s.filter(func(m fixtureMovie) bool {
		return strings.Contains(strings.ToLower(m.Title), needle)
	}, false)

	observability.FromContext(ctx).Debug("static catalog search",
		observability.String("query", query),
		observability.Int("results", len(results)))

	return results, nil
}

func (s *Source) Details(_ context.Context, movieID int) (*domain.Movie, error) {
	m, ok := s.lookup(movieID)
	if !ok {
		return nil, fmt.Errorf("movie %d: %w", movieID, domain.ErrNotFound)
	}

	movie := m.Movie
	movie.Genres = append([]string{}, m.Genres...)
	movie.Actors = append([]domain.Person{}, m.Actors...)
	movie.Directors = append([]domain.Person{}, m.Directors...)

	return &movie, nil
}

// Similar returns the movies listed as similar to movieID, in listed order.
// Listed IDs missing from the catalog are skipped.
func (s *Source) Similar(_ context.Context, movieID int) ([]domain.Movie, error) {
	m, ok := s.lookup(movieID)
	if !ok {
		return nil, fmt.Errorf("movie %d: %w", movieID, domain.ErrNotFound)
	}

	results := make([]domain.Movie, 0, len(m.Similar))
	for _, id := range m.Similar {
		if similar, found := s.lookup(id); found {
			results = append(results, similar.Abbreviated())
		}
	}

	return results, nil
}

// DiscoverByGenre returns movies tagged with the genre, most popular first.
// An id missing from the genre table matches nothing.
func (s *Source) DiscoverByGenre(_ context.Context, genreID int) ([]domain.Movie, error) {
	name, known := domain.GenreName(genreID)
	if !known {
		return []domain.Movie{}, nil
	}

	return s.filter(func(m fixtureMovie) bool {
		return slices.Contains(m.Genres, name)
	}, true), nil
}

func (s *Source) DiscoverByCast(_ context.Context, personID int) ([]domain.Movie, error) {
	return s.filter(func(m fixtureMovie) bool {
		return hasPerson(m.Actors, personID)
	}, true), nil
}

func (s *Source) DirectedBy(_ context.Context, personID int) ([]domain.Movie, error) {
	return s.filter(func(m fixtureMovie) bool {
		return hasPerson(m.Directors, personID)
	}, true), nil
}

func (s *Source) lookup(movieID int) (fixtureMovie, bool) {
	i, ok := s.byID[movieID]
	if !ok {
		return fixtureMovie{}, false
	}
	return s.movies[i], true
}

// filter returns abbreviated matches, optionally by popularity descending then id ascending.
func (s *Source) filter(match func(fixtureMovie) bool, byPopularity bool) []domain.Movie {
	matched := make([]fixtureMovie, 0)
	for _, m := range s.movies {
		if match(m) {
			matched = append(matched, m)
		}
	}

	if byPopularity {
		slices.SortStableFunc(matched, func(a, b fixtureMovie) int {
			if c := cmp.Compare(b.Popularity, a.Popularity); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		})
	}

	results := make([]domain.Movie, 0, len(matched))
	for _, m := range matched {
		results = append(results, m.Abbreviated())
	}
	return results
}

func hasPerson(people []domain.Person, personID int) bool {
	return slices.ContainsFunc(people, func(p domain.Person) bool {
		return p.ID == personID
	})
}
