package tmdb

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/davidbz/cinematch/internal/domain"
)

// ErrMissingAPIKey is returned by New when no API key is configured.
var ErrMissingAPIKey = errors.New("TMDb API key is required")

// Source implements domain.MovieSource against the TMDb v3 REST API.
type Source struct {
	client       *Client
	imageBaseURL string
	maxCast      int
	maxDirectors int
}

// New creates a TMDb-backed movie source from config.
func New(config Config) (*Source, error) {
	if config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return NewSource(NewClient(config), config), nil
}

// NewSource creates a movie source on top of an existing client.
func NewSource(client *Client, config Config) *Source {
	return &Source{
		client:       client,
		imageBaseURL: config.ImageBaseURL,
		maxCast:      config.MaxCast,
		maxDirectors: config.MaxDirectors,
	}
}

func (s *Source) Search(ctx context.Context, query string) ([]domain.Movie, error) {
	req := newAPIRequest("search/movie", "search/movie").
		addParam("query", query)

	var page moviePage
	if err := s.client.get(ctx, req, &page); err != nil {
		return nil, err
	}
	return s.abbreviatedList(page.Results), nil
}

func (s *Source) Details(ctx context.Context, movieID int) (*domain.Movie, error) {
	req := newAPIRequest("movie/{id}", fmt.Sprintf("movie/%d", movieID)).
		addParam("append_to_response", "credits")

	var details movieDetails
	if err := s.client.get(ctx, req, &details); err != nil {
		return nil, err
	}
	return s.fullMovie(details), nil
}

func (s *Source) Similar(ctx context.Context, movieID int) ([]domain.Movie, error) {
	req := newAPIRequest("movie/{id}/similar", fmt.Sprintf("movie/%d/similar", movieID))

	var page moviePage
	if err := s.client.get(ctx, req, &page); err != nil {
		return nil, err
	}
	return s.abbreviatedList(page.Results), nil
}

func (s *Source) DiscoverByGenre(ctx context.Context, genreID int) ([]domain.Movie, error) {
	req := newAPIRequest("discover/movie", "discover/movie").
		addIntParam("with_genres", genreID)

	var page moviePage
	if err := s.client.get(ctx, req, &page); err != nil {
		return nil, err
	}
	return s.abbreviatedList(page.Results), nil
}

func (s *Source) DiscoverByCast(ctx context.Context, personID int) ([]domain.Movie, error) {
	req := newAPIRequest("discover/movie", "discover/movie").
		addIntParam("with_cast", personID).
		addParam("sort_by", "popularity.desc")

	var page moviePage
	if err := s.client.get(ctx, req, &page); err != nil {
		return nil, err
	}
	return s.abbreviatedList(page.Results), nil
}

// DirectedBy keeps the person's "Director" crew credits, most popular first.
// A movie credited more than once appears once.
func (s *Source) DirectedBy(ctx context.Context, personID int) ([]domain.Movie, error) {
	req := newAPIRequest("person/{id}/movie_credits", fmt.Sprintf("person/%d/movie_credits", personID))

	var credits personMovieCredits
	if err := s.client.get(ctx, req, &credits); err != nil {
		return nil, err
	}

	directed := make([]movieResult, 0, len(credits.Crew))
	seen := make(map[int]struct{}, len(credits.Crew))
	for _, credit := range credits.Crew {
		if credit.Job != directorJob {
			continue
		}
		if _, dup := seen[credit.ID]; dup {
			continue
		}
		seen[credit.ID] = struct{}{}
		directed = append(directed, credit.movieResult)
	}

	sort.SliceStable(directed, func(i, j int) bool {
		return directed[i].Popularity > directed[j].Popularity
	})

	return s.abbreviatedList(directed), nil
}

func (s *Source) posterURL(path *string) string {
	if path == nil || *path == "" {
		return ""
	}
	return s.imageBaseURL + *path
}

func (s *Source) abbreviated(result movieResult) domain.Movie {
	return domain.Movie{
		ID:         result.ID,
		Title:      result.Title,
		PosterPath: s.posterURL(result.PosterPath),
		Overview:   result.Overview,
		Genres:     []string{},
		Actors:     []domain.Person{},
		Directors:  []domain.Person{},
	}
}

func (s *Source) abbreviatedList(results []movieResult) []domain.Movie {
	movies := make([]domain.Movie, 0, len(results))
	for _, result := range results {
		movies = append(movies, s.abbreviated(result))
	}
	return movies
}

// fullMovie keeps cast in billing order up to maxCast and crew whose job is
// exactly "Director" up to maxDirectors.
func (s *Source) fullMovie(details movieDetails) *domain.Movie {
	movie := s.abbreviated(details.movieResult)

	for _, g := range details.Genres {
		if g.Name != "" {
			movie.Genres = append(movie.Genres, g.Name)
		}
	}

	if details.Credits == nil {
		return &movie
	}

	for _, member := range details.Credits.Cast {
		if len(movie.Actors) >= s.maxCast {
			break
		}
		movie.Actors = append(movie.Actors, domain.Person{ID: member.ID, Name: member.Name})
	}

	seen := make(map[int]struct{})
	for _, member := range details.Credits.Crew {
		if len(movie.Directors) >= s.maxDirectors {
			break
		}
		if member.Job != directorJob {
			continue
		}
		if _, dup := seen[member.ID]; dup {
			continue
		}
		seen[member.ID] = struct{}{}
		movie.Directors = append(movie.Directors, domain.Person{ID: member.ID, Name: member.Name})
	}

	return &movie
}
