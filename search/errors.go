package search

import "errors"

var (
	// ErrEmptyQuery indicates a search was attempted with no query text.
	ErrEmptyQuery = errors.New("query text is empty")

	// ErrInvalidLimit indicates a non-positive result limit.
	ErrInvalidLimit = errors.New("limit must be positive")
)
