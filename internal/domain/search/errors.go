package search

import "errors"

var (
	ErrInvalidQuery = errors.New("invalid search query")
	// ErrSearchUnavailable distinguishes a datastore failure from an empty
	// result set so callers never render "no results" for an outage.
	ErrSearchUnavailable = errors.New("search unavailable")
)
