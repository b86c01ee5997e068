// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dgraph-io/badger/v4"

	"github.com/newsvec/newsvec/core"
	"github.com/newsvec/newsvec/storage"
)

// ArticleRepository implements storage.ArticleRepository over BadgerDB.
// Vectors are scanned linearly at query time; at news-feed scale a full
// scan beats maintaining an index.
type ArticleRepository struct {
	backend    *Backend
	dimensions int
	logger     *slog.Logger
}

var _ storage.ArticleRepository = (*ArticleRepository)(nil)

// NewArticleRepository creates a repository bound to the backend's
// article collection. The collection manifest is created on first use;
// opening an existing collection with different dimensions fails.
func NewArticleRepository(backend *Backend, dimensions int) (*ArticleRepository, error) {
	if backend == nil {
		return nil, errors.New("backend is required")
	}

	manifest, err := loadOrCreateCollection(backend, dimensions)
	if err != nil {
		return nil, err
	}

	return &ArticleRepository{
		backend:    backend,
		dimensions: manifest.Dimensions,
		logger:     slog.Default().With("component", "article-repository"),
	}, nil
}

// Dimensions reports the collection's vector length.
func (r *ArticleRepository) Dimensions() int {
	return r.dimensions
}

// Upsert writes records in a single transaction, replacing existing
// records with the same id. Any vector of the wrong length rejects the
// whole batch before the first write.
func (r *ArticleRepository) Upsert(ctx context.Context, records []*core.StoredArticle) error {
	if len(records) == 0 {
		return nil
	}

	for _, record := range records {
		if record == nil || record.ID == "" {
			return fmt.Errorf("%w: missing id", storage.ErrInvalidRecord)
		}
		if len(record.Vector) != r.dimensions {
			return fmt.Errorf("%w: record %s has %d dimensions, collection expects %d",
				storage.ErrDimensionMismatch, record.ID, len(record.Vector), r.dimensions)
		}
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			data, err := storage.MarshalStoredArticle(record)
			if err != nil {
				return err
			}
			if err := tx.Set(makeArticleKey(record.ID), data); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return err
	}

	r.logger.Debug("upserted records", "count", len(records))
	return nil
}

// Query scans all records, applies the filter before scoring, and
// returns up to limit matches in ascending distance order. Vectors are
// unit length so cosine distance reduces to 1 minus the dot product.
func (r *ArticleRepository) Query(ctx context.Context, vector []float32, limit int, filter *storage.Filter) ([]*core.QueryMatch, error) {
	if len(vector) != r.dimensions {
		return nil, fmt.Errorf("%w: query vector has %d dimensions, collection expects %d",
			storage.ErrDimensionMismatch, len(vector), r.dimensions)
	}
	if limit <= 0 {
		return nil, nil
	}
	if filter != nil {
		switch filter.Field {
		case storage.FilterCategory, storage.FilterSource:
		default:
			return nil, fmt.Errorf("%w: unknown field %q", storage.ErrInvalidFilter, filter.Field)
		}
	}

	var matches []*core.QueryMatch
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(articleRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.StoredArticle
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalStoredArticle(val)
				return err
			})
			if err != nil {
				return err
			}
			if record == nil || record.Metadata == nil {
				continue
			}
			if !matchesFilter(record.Metadata, filter) {
				continue
			}

			matches = append(matches, &core.QueryMatch{
				ID:       record.ID,
				Metadata: record.Metadata,
				Distance: 1 - dotProduct(vector, record.Vector),
			})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(matches, func(a, b *core.QueryMatch) int {
		if a.Distance < b.Distance {
			return -1
		}
		if a.Distance > b.Distance {
			return 1
		}
		return 0
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// AllMetadata returns the metadata of every record keyed by id.
func (r *ArticleRepository) AllMetadata(ctx context.Context) (map[core.ID]*core.Metadata, error) {
	all := make(map[core.ID]*core.Metadata)
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(articleRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.StoredArticle
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalStoredArticle(val)
				return err
			})
			if err != nil {
				return err
			}
			if record == nil || record.Metadata == nil {
				continue
			}
			all[record.ID] = record.Metadata
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return all, nil
}

// UpdateMetadata rewrites the metadata of the given records in one
// transaction, leaving vectors and documents untouched. A missing id
// fails the whole update.
func (r *ArticleRepository) UpdateMetadata(ctx context.Context, updates map[core.ID]*core.Metadata) error {
	if len(updates) == 0 {
		return nil
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		for id, meta := range updates {
			item, err := tx.Get(makeArticleKey(id))
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
			}
			if err != nil {
				return err
			}

			var record *core.StoredArticle
			err = item.Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalStoredArticle(val)
				return err
			})
			if err != nil {
				return err
			}

			record.Metadata = meta
			data, err := storage.MarshalStoredArticle(record)
			if err != nil {
				return err
			}
			if err := tx.Set(makeArticleKey(id), data); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Close closes the underlying backend.
func (r *ArticleRepository) Close() error {
	return r.backend.Close()
}

// matchesFilter reports whether meta satisfies the filter. A nil filter
// matches everything. Unknown fields are rejected before the scan starts.
func matchesFilter(meta *core.Metadata, filter *storage.Filter) bool {
	if filter == nil {
		return true
	}
	switch filter.Field {
	case storage.FilterCategory:
		return meta.Category == filter.Value
	case storage.FilterSource:
		return meta.Source == filter.Value
	default:
		return false
	}
}

// dotProduct calculates the dot product of two vectors.
func dotProduct(a, b []float32) float32 {
	var sum float32
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	for i := 0; i < minLen; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
