package migrate

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/newsvec/newsvec/ai"
	"github.com/newsvec/newsvec/core"
	"github.com/newsvec/newsvec/storage"
)

// Migrator rewrites legacy category metadata into the current scalar
// form and stamps the schema version. Running it against an
// already-migrated store is a no-op.
type Migrator struct {
	repository storage.ArticleRepository
	progress   io.Writer
	logger     *slog.Logger
}

// MigratorOption configures a Migrator.
type MigratorOption func(*Migrator)

// WithProgress sets the writer for human-readable progress output.
func WithProgress(w io.Writer) MigratorOption {
	return func(m *Migrator) {
		if w != nil {
			m.progress = w
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) MigratorOption {
	return func(m *Migrator) {
		if logger != nil {
			m.logger = logger.With("component", "migrator")
		}
	}
}

// NewMigrator creates a migrator over the given repository.
func NewMigrator(repository storage.ArticleRepository, opts ...MigratorOption) (*Migrator, error) {
	if repository == nil {
		return nil, fmt.Errorf("repository is required")
	}
	m := &Migrator{
		repository: repository,
		progress:   io.Discard,
		logger:     slog.Default().With("component", "migrator"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Run migrates every stored record and returns the number touched.
// Records already at the current schema version are skipped without
// decoding. A category that cannot be decoded is forced to the fallback
// rather than aborting the run; all rewrites land in one transaction.
func (m *Migrator) Run(ctx context.Context) (int, error) {
	all, err := m.repository.AllMetadata(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading metadata: %w", err)
	}

	fmt.Fprintf(m.progress, "migrating %d records\n", len(all))

	updates := make(map[core.ID]*core.Metadata)
	for id, meta := range all {
		if meta.SchemaVersion >= core.SchemaVersion {
			continue
		}

		category, changed, err := decodeLegacyCategory(meta.Category)
		if err != nil {
			m.logger.Warn("unreadable legacy category, using fallback",
				"id", id,
				"error", err)
			category = ai.FallbackCategory
			changed = true
		}
		if changed {
			meta.Category = category
		}
		meta.SchemaVersion = core.SchemaVersion
		updates[id] = meta
	}

	if len(updates) == 0 {
		fmt.Fprintf(m.progress, "nothing to migrate\n")
		return 0, nil
	}

	if err := m.repository.UpdateMetadata(ctx, updates); err != nil {
		return 0, fmt.Errorf("writing migrated metadata: %w", err)
	}

	fmt.Fprintf(m.progress, "migrated %d records\n", len(updates))
	m.logger.Info("migration complete", "migrated", len(updates), "total", len(all))
	return len(updates), nil
}
