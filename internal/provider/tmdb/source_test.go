package tmdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/davidbz/cinematch/internal/cache/memory"
	"github.com/davidbz/cinematch/internal/domain"
	"github.com/davidbz/cinematch/internal/observability"
	"github.com/davidbz/cinematch/internal/provider/tmdb"
)

func newTestSource(t *testing.T, handler http.HandlerFunc) *tmdb.Source {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	source, err := tmdb.New(tmdb.Config{
		APIKey:       "test-key",
		BaseURL:      server.URL,
		ImageBaseURL: "https://image.tmdb.org/t/p/w500",
		Timeout:      5,
		MaxCast:      5,
		MaxDirectors: 2,
	})
	require.NoError(t, err)

	return source
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestNew_MissingAPIKey(t *testing.T) {
	source, err := tmdb.New(tmdb.Config{BaseURL: "http://localhost"})

	require.ErrorIs(t, err, tmdb.ErrMissingAPIKey)
	require.Nil(t, source)
}

func TestSource_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("should send query and api key and map abbreviated movies", func(t *testing.T) {
		source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search/movie", r.URL.Path)
			assert.Equal(t, "star wars", r.URL.Query().Get("query"))
			assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

			writeJSON(w, http.StatusOK, `{"page":1,"results":[
				{"id":11,"title":"Star Wars","poster_path":"/sw.jpg","overview":"A long time ago"},
				{"id":12,"title":"No Poster","poster_path":null,"overview":null}
			]}`)
		})

		movies, err := source.Search(ctx, "star wars")

		require.NoError(t, err)
		require.Len(t, movies, 2)
		require.Equal(t, 11, movies[0].ID)
		require.Equal(t, "https://image.tmdb.org/t/p/w500/sw.jpg", movies[0].PosterPath)
		require.Equal(t, "A long time ago", movies[0].Overview)
		require.Empty(t, movies[1].PosterPath)
		require.Empty(t, movies[1].Overview)
		require.NotNil(t, movies[1].Genres)
		require.NotNil(t, movies[1].Actors)
		require.NotNil(t, movies[1].Directors)
	})

	t.Run("should return empty list for null results", func(t *testing.T) {
		source := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, `{"page":1,"results":null}`)
		})

		movies, err := source.Search(ctx, "nothing")

		require.NoError(t, err)
		require.NotNil(t, movies)
		require.Empty(t, movies)
	})
}

func TestSource_Details(t *testing.T) {
	ctx := context.Background()

	t.Run("should map genres and cap cast and directors", func(t *testing.T) {
		source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/movie/42", r.URL.Path)
			assert.Equal(t, "credits", r.URL.Query().Get("append_to_response"))

			writeJSON(w, http.StatusOK, `{
				"id":42,"title":"Heat","poster_path":"/heat.jpg","overview":"Crime epic",
				"genres":[{"id":80,"name":"Crime"},{"id":18,"name":"Drama"}],
				"credits":{
					"cast":[
						{"id":1,"name":"A"},{"id":2,"name":"B"},{"id":3,"name":"C"},
						{"id":4,"name":"D"},{"id":5,"name":"E"},{"id":6,"name":"F"}
					],
					"crew":[
						{"id":90,"name":"Writer","job":"Screenplay"},
						{"id":91,"name":"Michael Mann","job":"Director"},
						{"id":92,"name":"Assistant","job":"Assistant Director"},
						{"id":91,"name":"Michael Mann","job":"Director"},
						{"id":93,"name":"Co","job":"Director"},
						{"id":94,"name":"Third","job":"Director"}
					]
				}
			}`)
		})

		movie, err := source.Details(ctx, 42)

		require.NoError(t, err)
		require.Equal(t, "Heat", movie.Title)
		require.Equal(t, []string{"Crime", "Drama"}, movie.Genres)
		require.Len(t, movie.Actors, 5)
		require.Equal(t, 1, movie.Actors[0].ID)
		require.Equal(t, 5, movie.Actors[4].ID)
		require.Equal(t, []domain.Person{
			{ID: 91, Name: "Michael Mann"},
			{ID: 93, Name: "Co"},
		}, movie.Directors)
	})

	t.Run("should return empty lists when genres and credits are null", func(t *testing.T) {
		source := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, `{"id":5,"title":"Bare","poster_path":"","genres":null,"credits":null}`)
		})

		movie, err := source.Details(ctx, 5)

		require.NoError(t, err)
		require.Empty(t, movie.PosterPath)
		require.NotNil(t, movie.Genres)
		require.Empty(t, movie.Genres)
		require.NotNil(t, movie.Actors)
		require.NotNil(t, movie.Directors)
	})

	t.Run("should report 404 as not found", func(t *testing.T) {
		source := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusNotFound, `{"status_code":34,"status_message":"not found"}`)
		})

		movie, err := source.Details(ctx, 7)

		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NotErrorIs(t, err, domain.ErrUpstreamUnavailable)
		require.Nil(t, movie)

		var apiErr *tmdb.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusNotFound, apiErr.Status)
		require.Equal(t, "movie/{id}", apiErr.Endpoint)
	})
}

func TestSource_ListEndpoints(t *testing.T) {
	ctx := context.Background()
	page := `{"page":1,"results":[{"id":100,"title":"X","poster_path":"/x.jpg"}]}`

	tests := []struct {
		name   string
		call   func(*tmdb.Source) ([]domain.Movie, error)
		path   string
		params map[string]string
	}{
		{
			name:   "similar",
			call:   func(s *tmdb.Source) ([]domain.Movie, error) { return s.Similar(ctx, 42) },
			path:   "/movie/42/similar",
			params: map[string]string{},
		},
		{
			name:   "discover by genre",
			call:   func(s *tmdb.Source) ([]domain.Movie, error) { return s.DiscoverByGenre(ctx, 18) },
			path:   "/discover/movie",
			params: map[string]string{"with_genres": "18"},
		},
		{
			name: "discover by cast",
			call: func(s *tmdb.Source) ([]domain.Movie, error) { return s.DiscoverByCast(ctx, 7) },
			path: "/discover/movie",
			params: map[string]string{
				"with_cast": "7",
				"sort_by":   "popularity.desc",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.path, r.URL.Path)
				for key, value := range tt.params {
					assert.Equal(t, value, r.URL.Query().Get(key))
				}
				writeJSON(w, http.StatusOK, page)
			})

			movies, err := tt.call(source)

			require.NoError(t, err)
			require.Len(t, movies, 1)
			require.Equal(t, 100, movies[0].ID)
			require.Equal(t, "https://image.tmdb.org/t/p/w500/x.jpg", movies[0].PosterPath)
		})
	}
}

func TestSource_DirectedBy(t *testing.T) {
	t.Run("should keep director credits only, most popular first", func(t *testing.T) {
		source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/person/91/movie_credits", r.URL.Path)

			writeJSON(w, http.StatusOK, `{"cast":[{"id":1,"title":"Cameo"}],"crew":[
				{"id":10,"title":"Low","popularity":1.5,"job":"Director"},
				{"id":11,"title":"Written","popularity":99,"job":"Writer"},
				{"id":12,"title":"High","popularity":50,"job":"Director"},
				{"id":12,"title":"High","popularity":50,"job":"Director"},
				{"id":13,"title":"Assistant","popularity":80,"job":"Assistant Director"},
				{"id":14,"title":"Mid","popularity":10,"job":"Director"}
			]}`)
		})

		movies, err := source.DirectedBy(context.Background(), 91)

		require.NoError(t, err)

		ids := make([]int, 0, len(movies))
		for _, m := range movies {
			ids = append(ids, m.ID)
		}
		require.Equal(t, []int{12, 14, 10}, ids)
	})
}

func TestSource_UpstreamFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("should report server errors as upstream unavailable and log a warning", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		restore := observability.ReplaceLogger(zap.New(core))
		defer restore()

		source := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusInternalServerError, `{"status_message":"boom"}`)
		})

		movies, err := source.Similar(ctx, 1)

		require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
		require.NotErrorIs(t, err, domain.ErrNotFound)
		require.Nil(t, movies)

		entries := logs.FilterMessage("tmdb request failed").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		require.Equal(t, "movie/{id}/similar", fields["endpoint"])
		require.EqualValues(t, http.StatusInternalServerError, fields["status"])
	})

	t.Run("should report undecodable bodies as upstream unavailable", func(t *testing.T) {
		source := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, `not json`)
		})

		_, err := source.Search(ctx, "x")

		require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	})

	t.Run("should open the breaker after consecutive failures", func(t *testing.T) {
		var calls atomic.Int32
		source := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			writeJSON(w, http.StatusServiceUnavailable, `{}`)
		})

		for range 5 {
			_, err := source.DiscoverByGenre(ctx, 18)
			require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
		}

		_, err := source.DiscoverByGenre(ctx, 18)

		require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
		require.Equal(t, int32(5), calls.Load())
	})

	t.Run("should not count not-found responses against the breaker", func(t *testing.T) {
		var calls atomic.Int32
		source := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			writeJSON(w, http.StatusNotFound, `{}`)
		})

		for range 8 {
			_, err := source.Details(ctx, 7)
			require.ErrorIs(t, err, domain.ErrNotFound)
		}

		require.Equal(t, int32(8), calls.Load())
	})
}

func TestSource_CallerDeadlineDoesNotTripBreaker(t *testing.T) {
	var calls atomic.Int32
	var slow atomic.Bool
	slow.Store(true)

	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if slow.Load() {
			<-r.Context().Done()
			return
		}
		writeJSON(w, http.StatusOK, `{"page":1,"results":[{"id":42,"title":"Heat"}]}`)
	})

	for range 6 {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		_, err := source.DiscoverByGenre(ctx, 18)
		cancel()

		require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	}

	slow.Store(false)

	movies, err := source.DiscoverByGenre(context.Background(), 18)

	require.NoError(t, err)
	require.Len(t, movies, 1)
	require.Equal(t, int32(7), calls.Load())
}

func TestMissingSelectionEndToEnd(t *testing.T) {
	ctx := context.Background()

	source := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/7", r.URL.Path)
		writeJSON(w, http.StatusNotFound, `{"status_code":34}`)
	})
	catalog := domain.NewCatalogService(source, memory.NewStore())

	t.Run("should report the movie as not found", func(t *testing.T) {
		movie, err := catalog.GetDetails(ctx, 7)

		require.ErrorIs(t, err, domain.ErrNotFound)
		require.Nil(t, movie)
	})

	t.Run("should recommend nothing without failing", func(t *testing.T) {
		recommender := domain.NewRecommendationService(catalog, nil)

		movies, err := recommender.Recommend(ctx, []int{7})

		require.NoError(t, err)
		require.Empty(t, movies)
	})
}
