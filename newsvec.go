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

// Package newsvec assembles the ingestion pipeline, vector store and
// search layer into a single store facade.
package newsvec

import (
	"context"
	"log/slog"

	"github.com/newsvec/newsvec/ai"
	"github.com/newsvec/newsvec/ai/openai"
	"github.com/newsvec/newsvec/classify"
	"github.com/newsvec/newsvec/core"
	"github.com/newsvec/newsvec/ingestion"
	"github.com/newsvec/newsvec/migrate"
	"github.com/newsvec/newsvec/scrape"
	"github.com/newsvec/newsvec/search"
	"github.com/newsvec/newsvec/storage"
	"github.com/newsvec/newsvec/storage/badger"
)

// Store bundles the article repository with the AI services and the
// operations built on top of them.
type Store struct {
	backend      *badger.Backend
	articles     storage.ArticleRepository
	provider     ai.Provider
	vectorizer   *ingestion.Vectorizer
	searcher     *search.Searcher
	classifyOpts []classify.Option
	logger       *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*storeOptions)

type storeOptions struct {
	aiConfig     *ai.Config
	provider     ai.Provider
	classifyOpts []classify.Option
	logger       *slog.Logger
}

// WithAIConfig sets the AI service configuration used when no provider
// is supplied.
func WithAIConfig(config *ai.Config) StoreOption {
	return func(o *storeOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithProvider injects a pre-built AI provider, bypassing the default
// OpenAI-compatible one. Tests use this to substitute mocks.
func WithProvider(provider ai.Provider) StoreOption {
	return func(o *storeOptions) {
		o.provider = provider
	}
}

// WithClassifierOptions passes options through to the categorizer built
// for each ingestion run (label set, batch size, hypothesis template).
func WithClassifierOptions(opts ...classify.Option) StoreOption {
	return func(o *storeOptions) {
		o.classifyOpts = append(o.classifyOpts, opts...)
	}
}

// WithStoreLogger sets a custom logger.
func WithStoreLogger(logger *slog.Logger) StoreOption {
	return func(o *storeOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Open opens a store at filePath, creating it if needed. An empty path
// opens an ephemeral in-memory store. Opening fails if the database was
// created with different embedding dimensions than the configuration
// requests.
func Open(filePath string, opts ...StoreOption) (*Store, error) {
	options := &storeOptions{
		aiConfig: ai.DefaultConfig(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, filePath == "")
	if err != nil {
		return nil, err
	}

	articles, err := badger.NewArticleRepository(backend, options.aiConfig.EmbeddingDimensions)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			backend.Close()
			return nil, err
		}
	}

	vectorizer, err := ingestion.NewVectorizer(provider.Embedder(), options.aiConfig.EmbeddingDimensions)
	if err != nil {
		provider.Close()
		backend.Close()
		return nil, err
	}

	searcher, err := search.NewSearcher(articles, vectorizer)
	if err != nil {
		provider.Close()
		backend.Close()
		return nil, err
	}

	return &Store{
		backend:      backend,
		articles:     articles,
		provider:     provider,
		vectorizer:   vectorizer,
		searcher:     searcher,
		classifyOpts: options.classifyOpts,
		logger:       options.logger,
	}, nil
}

// Articles returns the underlying article repository.
func (s *Store) Articles() storage.ArticleRepository {
	return s.articles
}

// Ingest runs the full pipeline over the given sources using fetcher
// and returns the stored articles.
func (s *Store) Ingest(ctx context.Context, sources []scrape.Source, fetcher scrape.Fetcher, opts ...ingestion.PipelineOption) ([]*core.Article, error) {
	categorizer := classify.NewCategorizer(s.provider.Classifier(), s.classifyOpts...)
	pipeline, err := ingestion.NewPipeline(fetcher, sources, categorizer, s.vectorizer, s.articles, opts...)
	if err != nil {
		return nil, err
	}
	return pipeline.Run(ctx)
}

// Search returns up to limit articles nearest to the query text,
// optionally restricted to one category.
func (s *Store) Search(ctx context.Context, query string, limit int, category string) ([]*core.QueryMatch, error) {
	return s.searcher.Search(ctx, query, limit, category)
}

// Migrate upgrades legacy metadata in place and returns the number of
// records touched.
func (s *Store) Migrate(ctx context.Context, opts ...migrate.MigratorOption) (int, error) {
	migrator, err := migrate.NewMigrator(s.articles, opts...)
	if err != nil {
		return 0, err
	}
	return migrator.Run(ctx)
}

// Close releases the AI provider and the underlying database.
func (s *Store) Close() error {
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
