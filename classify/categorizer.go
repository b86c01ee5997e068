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

package classify

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/newsvec/newsvec/ai"
	"github.com/newsvec/newsvec/core"
)

const (
	// DefaultBatchSize is the number of articles classified per batch.
	DefaultBatchSize = 4

	// minTokens is the shortest text worth classifying. Anything below
	// this falls through to the fallback category without a model call.
	minTokens = 3
)

// Result is a single categorization outcome.
type Result struct {
	Category   string
	Confidence float64
}

// Categorizer assigns a category label to article text using a zero-shot
// classifier. Classification is advisory: any failure yields the fallback
// category instead of an error so ingestion never stalls on a label.
type Categorizer struct {
	classifier ai.Classifier
	labels     []string
	template   string
	batchSize  int
	logger     *slog.Logger
}

// Option configures a Categorizer.
type Option func(*Categorizer)

// WithLabels overrides the candidate label set.
func WithLabels(labels []string) Option {
	return func(c *Categorizer) {
		if len(labels) > 0 {
			c.labels = labels
		}
	}
}

// WithHypothesisTemplate overrides the zero-shot hypothesis template.
func WithHypothesisTemplate(template string) Option {
	return func(c *Categorizer) {
		if template != "" {
			c.template = template
		}
	}
}

// WithBatchSize sets how many articles are classified per batch.
func WithBatchSize(size int) Option {
	return func(c *Categorizer) {
		if size > 0 {
			c.batchSize = size
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Categorizer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCategorizer creates a categorizer backed by the given classifier.
func NewCategorizer(classifier ai.Classifier, opts ...Option) *Categorizer {
	c := &Categorizer{
		classifier: classifier,
		labels:     ai.Categories,
		template:   ai.DefaultHypothesisTemplate,
		batchSize:  DefaultBatchSize,
		logger:     slog.Default().With("component", "categorizer"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Categorize labels a single text. Texts shorter than three tokens get
// the fallback category with full confidence without touching the
// classifier. Classifier failures degrade to the fallback as well.
func (c *Categorizer) Categorize(ctx context.Context, text string) Result {
	if len(strings.Fields(text)) < minTokens {
		return Result{Category: ai.FallbackCategory, Confidence: 1.0}
	}

	classification, err := c.classifier.Classify(ctx, text, c.labels, c.template)
	if err != nil {
		c.logger.Warn("classification failed, using fallback category",
			"error", err)
		return Result{Category: ai.FallbackCategory, Confidence: 1.0}
	}

	label, score := classification.Top()
	if label == "" {
		c.logger.Warn("classifier returned no labels, using fallback category")
		return Result{Category: ai.FallbackCategory, Confidence: 1.0}
	}

	return Result{
		Category:   label,
		Confidence: math.Round(score*100) / 100,
	}
}

// CategorizeBatch labels articles in place, walking them in fixed-size
// batches. Each article is classified independently so one failure never
// affects its neighbors.
func (c *Categorizer) CategorizeBatch(ctx context.Context, articles []*core.Article) {
	for start := 0; start < len(articles); start += c.batchSize {
		end := start + c.batchSize
		if end > len(articles) {
			end = len(articles)
		}
		c.logger.Debug("categorizing batch",
			"start", start,
			"size", end-start)
		for _, article := range articles[start:end] {
			result := c.Categorize(ctx, article.Document())
			article.Category = result.Category
			article.Confidence = result.Confidence
		}
	}
}
