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

package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/newsvec/newsvec/classify"
	"github.com/newsvec/newsvec/core"
	"github.com/newsvec/newsvec/scrape"
	"github.com/newsvec/newsvec/storage"
)

// DefaultSourceDelay is the pause between consecutive sources. Sources
// are polite targets; a fixed gap keeps request rates low.
const DefaultSourceDelay = 1 * time.Second

// Pipeline runs the full ingestion flow: fetch each source, extract and
// normalize its items, categorize them, embed them and write them to
// the repository. Sources are processed strictly in order, one at a
// time. A failing source is logged and skipped; a failing store write
// aborts the run.
type Pipeline struct {
	fetcher     scrape.Fetcher
	sources     []scrape.Source
	categorizer *classify.Categorizer
	vectorizer  *Vectorizer
	repository  storage.ArticleRepository
	sourceDelay time.Duration
	logger      *slog.Logger
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithSourceDelay sets the pause between sources.
func WithSourceDelay(delay time.Duration) PipelineOption {
	return func(p *Pipeline) {
		if delay >= 0 {
			p.sourceDelay = delay
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger.With("component", "pipeline")
		}
	}
}

// NewPipeline creates an ingestion pipeline. The vectorizer and
// repository must agree on vector dimensions; a mismatch is reported
// here, before any work starts, rather than on the first write.
func NewPipeline(
	fetcher scrape.Fetcher,
	sources []scrape.Source,
	categorizer *classify.Categorizer,
	vectorizer *Vectorizer,
	repository storage.ArticleRepository,
	opts ...PipelineOption,
) (*Pipeline, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("%w: fetcher", ErrMissingDependency)
	}
	if categorizer == nil {
		return nil, fmt.Errorf("%w: categorizer", ErrMissingDependency)
	}
	if vectorizer == nil {
		return nil, fmt.Errorf("%w: vectorizer", ErrMissingDependency)
	}
	if repository == nil {
		return nil, fmt.Errorf("%w: repository", ErrMissingDependency)
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	if vectorizer.Dimensions() != repository.Dimensions() {
		return nil, fmt.Errorf("%w: vectorizer produces %d, repository expects %d",
			ErrDimensionMismatch, vectorizer.Dimensions(), repository.Dimensions())
	}

	p := &Pipeline{
		fetcher:     fetcher,
		sources:     sources,
		categorizer: categorizer,
		vectorizer:  vectorizer,
		repository:  repository,
		sourceDelay: DefaultSourceDelay,
		logger:      slog.Default().With("component", "pipeline"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run processes every configured source and returns all articles that
// were successfully stored. Source-level failures are logged and
// skipped so one broken site cannot sink the run; repository write
// failures propagate because losing data silently is worse than
// stopping.
func (p *Pipeline) Run(ctx context.Context) ([]*core.Article, error) {
	var collected []*core.Article

	for i, source := range p.sources {
		if i > 0 {
			if err := p.pause(ctx); err != nil {
				return collected, err
			}
		}

		articles, err := p.processSource(ctx, source)
		if err != nil {
			p.logger.Error("source failed, skipping",
				"source", source.Name,
				"error", err)
			continue
		}
		if len(articles) == 0 {
			p.logger.Warn("source yielded no articles", "source", source.Name)
			continue
		}

		p.categorizer.CategorizeBatch(ctx, articles)

		if err := p.store(ctx, articles); err != nil {
			return collected, fmt.Errorf("storing articles from %s: %w", source.Name, err)
		}

		p.logger.Info("source complete",
			"source", source.Name,
			"articles", len(articles))
		collected = append(collected, articles...)
	}

	if len(collected) == 0 {
		p.logger.Warn("run produced no articles")
	}
	return collected, nil
}

// processSource fetches one source and returns its normalized articles.
func (p *Pipeline) processSource(ctx context.Context, source scrape.Source) ([]*core.Article, error) {
	html, err := p.fetcher.FetchRenderedHTML(ctx, source.URL)
	if err != nil {
		return nil, err
	}

	items, err := scrape.Extract(html, source.Selectors, source.Limit)
	if err != nil {
		return nil, err
	}

	var articles []*core.Article
	for _, item := range items {
		article, ok := scrape.Normalize(item, source.URL)
		if !ok {
			continue
		}
		articles = append(articles, article)
	}

	p.logger.Debug("extracted articles",
		"source", source.Name,
		"raw", len(items),
		"normalized", len(articles))
	return articles, nil
}

// store embeds the articles and upserts them in one batch.
func (p *Pipeline) store(ctx context.Context, articles []*core.Article) error {
	texts := make([]string, len(articles))
	for i, article := range articles {
		texts[i] = article.Document()
	}

	vectors, err := p.vectorizer.EmbedTexts(ctx, texts)
	if err != nil {
		return err
	}

	records := make([]*core.StoredArticle, len(articles))
	for i, article := range articles {
		records[i] = &core.StoredArticle{
			ID:       core.ArticleID(article.URL, article.Headline),
			Vector:   vectors[i],
			Document: article.Document(),
			Metadata: core.NewMetadata(article),
		}
	}

	return p.repository.Upsert(ctx, records)
}

// pause waits the configured source delay, honoring cancellation.
func (p *Pipeline) pause(ctx context.Context) error {
	if p.sourceDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(p.sourceDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
