package domain

import "errors"

var (
	// ErrInvalidInput marks a request rejected before reaching the catalog,
	// such as an empty search query or an empty selection.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a single-entity lookup produced no match.
	ErrNotFound = errors.New("not found")

	// ErrUpstreamUnavailable covers network failures and non-2xx responses from
	// the metadata service. It never leaves the catalog layer.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
