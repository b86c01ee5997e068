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

package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/newsvec/newsvec/core"
	"github.com/newsvec/newsvec/ingestion"
	"github.com/newsvec/newsvec/storage"
)

// DefaultLimit is the number of results returned when the caller does
// not specify one.
const DefaultLimit = 5

// Searcher answers natural-language queries against the article store.
// The query is embedded with the same vectorizer the pipeline used, so
// query and document vectors share a space.
type Searcher struct {
	repository storage.ArticleRepository
	vectorizer *ingestion.Vectorizer
	logger     *slog.Logger
}

// NewSearcher creates a searcher over the given repository.
func NewSearcher(repository storage.ArticleRepository, vectorizer *ingestion.Vectorizer) (*Searcher, error) {
	if repository == nil {
		return nil, fmt.Errorf("repository is required")
	}
	if vectorizer == nil {
		return nil, fmt.Errorf("vectorizer is required")
	}
	return &Searcher{
		repository: repository,
		vectorizer: vectorizer,
		logger:     slog.Default().With("component", "searcher"),
	}, nil
}

// Search returns up to limit articles nearest to the query text, closest
// first. A non-empty category restricts results to that category before
// the limit is applied.
func (s *Searcher) Search(ctx context.Context, query string, limit int, category string) ([]*core.QueryMatch, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}

	vector, err := s.vectorizer.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	var filter *storage.Filter
	if category != "" {
		filter = &storage.Filter{Field: storage.FilterCategory, Value: category}
	}

	s.logger.Debug("executing query",
		"limit", limit,
		"category", category)
	return s.repository.Query(ctx, vector, limit, filter)
}
