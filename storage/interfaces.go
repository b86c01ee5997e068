package storage

import (
	"context"

	"github.com/newsvec/newsvec/core"
)

// Filterable metadata fields.
const (
	FilterCategory = "category"
	FilterSource   = "source"
)

// Filter restricts a query to records whose metadata field equals the
// given value. Filtering happens before scoring so the result limit is
// applied to the filtered set. Field must be one of the Filter* constants;
// anything else fails the query with ErrInvalidFilter.
type Filter struct {
	Field string
	Value string
}

// ArticleRepository persists embedded articles and answers similarity
// queries over them. Implementations must make Upsert idempotent on the
// article id.
type ArticleRepository interface {
	// Upsert writes the given records, replacing any existing record with
	// the same id. Records with vectors of the wrong length are rejected.
	Upsert(ctx context.Context, records []*core.StoredArticle) error

	// Query returns up to limit records nearest to vector in ascending
	// distance order. A non-nil filter is applied before scoring.
	Query(ctx context.Context, vector []float32, limit int, filter *Filter) ([]*core.QueryMatch, error)

	// AllMetadata returns the metadata of every stored record keyed by id.
	AllMetadata(ctx context.Context) (map[core.ID]*core.Metadata, error)

	// UpdateMetadata overwrites the metadata of the given records in one
	// transaction. A missing id fails the whole update with ErrNotFound.
	UpdateMetadata(ctx context.Context, updates map[core.ID]*core.Metadata) error

	// Dimensions reports the vector length this repository was created
	// with.
	Dimensions() int

	// Close releases the underlying resources.
	Close() error
}
