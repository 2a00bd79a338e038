package tmdb

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// apiRequest holds parameters for one TMDb GET request.
type apiRequest struct {
	endpoint string // route template, used for logs and metrics
	path     string
	params   url.Values
}

// newAPIRequest creates a request for path, reported under endpoint.
func newAPIRequest(endpoint, path string) *apiRequest {
	return &apiRequest{
		endpoint: endpoint,
		path:     path,
		params:   url.Values{},
	}
}

// addParam adds a parameter to the request (skipped when empty).
func (r *apiRequest) addParam(key, value string) *apiRequest {
	if value != "" {
		r.params.Set(key, value)
	}
	return r
}

// addIntParam adds an integer parameter to the request.
func (r *apiRequest) addIntParam(key string, value int) *apiRequest {
	r.params.Set(key, strconv.Itoa(value))
	return r
}

// buildURL constructs the full URL including the api_key credential.
func (r *apiRequest) buildURL(baseURL, apiKey string) string {
	params := url.Values{}
	for key, values := range r.params {
		params[key] = values
	}
	params.Set("api_key", apiKey)

	return fmt.Sprintf("%s/%s?%s", strings.TrimRight(baseURL, "/"), r.path, params.Encode())
}
