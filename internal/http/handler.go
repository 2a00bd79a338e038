package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/davidbz/cinematch/internal/domain"
	"github.com/davidbz/cinematch/internal/observability"
)

const (
	// searchLimit caps search results returned to the client.
	searchLimit = 20

	maxRequestBodySize = 1 << 20
)

// RecommendRequest is the body of a recommendation request.
type RecommendRequest struct {
	SelectedMovieIDs []int `json:"selectedMovieIds"`
}

// Handler handles HTTP requests.
type Handler struct {
	catalog     domain.Catalog
	recommender domain.Recommender
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(catalog domain.Catalog, recommender domain.Recommender) *Handler {
	return &Handler{
		catalog:     catalog,
		recommender: recommender,
	}
}

// HandleSearch serves GET /api/movies/search?query=.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithOperation(r.Context(), "search")
	query := r.URL.Query().Get("query")

	movies, err := h.catalog.SearchByTitle(ctx, query, searchLimit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	observability.FromContext(ctx).Info("search served",
		observability.String("query", query),
		observability.Int("results", len(movies)))

	h.writeJSON(w, r, http.StatusOK, movies)
}

// HandleMovie serves GET /api/movies/{id}.
func (h *Handler) HandleMovie(w http.ResponseWriter, r *http.Request) {
	ctx := observability.WithOperation(r.Context(), "movie_details")

	movieID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: movie id must be an integer", domain.ErrInvalidInput))
		return
	}

	movie, err := h.catalog.GetDetails(ctx, movieID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, movie)
}

// HandleRecommend serves POST /api/movies/recommendations.
func (h *Handler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: invalid request body: %w", domain.ErrInvalidInput, err))
		return
	}

	movies, err := h.recommender.Recommend(r.Context(), req.SelectedMovieIDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, movies)
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Status already written, just log.
		observability.FromContext(r.Context()).Error("failed to encode response", observability.Error(err))
	}
}

// writeError maps domain errors onto status codes. Unexpected errors are logged
// and reported without their detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger := observability.FromContext(r.Context())

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		logger.Info("rejected invalid request", observability.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		logger.Error("request failed", observability.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
