package ingestion

import "errors"

var (
	// ErrNoSources indicates the pipeline was started without any sources.
	ErrNoSources = errors.New("no sources configured")

	// ErrDimensionMismatch indicates the vectorizer and repository disagree
	// on vector length.
	ErrDimensionMismatch = errors.New("vectorizer and repository dimensions differ")

	// ErrMissingDependency indicates a pipeline was constructed without a
	// required collaborator.
	ErrMissingDependency = errors.New("missing dependency")
)
