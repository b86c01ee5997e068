package badger

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/newsvec/newsvec/storage"
)

const cosineMetric = "cosine"

// collectionManifest records the fixed parameters of the article
// collection. It is written once on first open and checked on every
// subsequent open so a database is never reused with a different
// embedding geometry.
type collectionManifest struct {
	Dimensions int    `json:"dimensions"`
	Metric     string `json:"metric"`
}

// loadOrCreateCollection reads the manifest, creating it when the
// database is fresh. A dimension conflict with an existing manifest is
// fatal.
func loadOrCreateCollection(backend *Backend, dimensions int) (*collectionManifest, error) {
	if dimensions <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %d",
			storage.ErrDimensionMismatch, dimensions)
	}

	var manifest *collectionManifest
	err := backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeCollectionKey())
		if errors.Is(err, badger.ErrKeyNotFound) {
			manifest = &collectionManifest{
				Dimensions: dimensions,
				Metric:     cosineMetric,
			}
			data, err := json.Marshal(manifest)
			if err != nil {
				return fmt.Errorf("%w: %w", storage.ErrSerialization, err)
			}
			if err := tx.Set(makeCollectionKey(), data); err != nil {
				return err
			}
			return tx.Commit()
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			var existing collectionManifest
			if err := json.Unmarshal(val, &existing); err != nil {
				return fmt.Errorf("%w: %w", storage.ErrSerialization, err)
			}
			if existing.Dimensions != dimensions {
				return fmt.Errorf("%w: collection has %d dimensions, embedder produces %d",
					storage.ErrDimensionMismatch, existing.Dimensions, dimensions)
			}
			manifest = &existing
			return nil
		})
	}, true)
	if err != nil {
		return nil, err
	}

	return manifest, nil
}
