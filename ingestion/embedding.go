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
	"strings"

	"github.com/newsvec/newsvec/ai"
)

// Vectorizer wraps an embedder with the pipeline's vector policy: a
// fixed dimensionality, unit normalization, and a zero-vector stand-in
// for empty text so a blank document never reaches the model.
type Vectorizer struct {
	embedder   ai.Embedder
	dimensions int
	logger     *slog.Logger
}

// NewVectorizer creates a vectorizer producing vectors of the given
// length.
func NewVectorizer(embedder ai.Embedder, dimensions int) (*Vectorizer, error) {
	if embedder == nil {
		return nil, fmt.Errorf("%w: embedder", ErrMissingDependency)
	}
	if dimensions <= 0 {
		return nil, fmt.Errorf("%w: dimensions must be positive, got %d",
			ErrDimensionMismatch, dimensions)
	}
	return &Vectorizer{
		embedder:   embedder,
		dimensions: dimensions,
		logger:     slog.Default().With("component", "vectorizer"),
	}, nil
}

// Dimensions reports the vector length this vectorizer produces.
func (v *Vectorizer) Dimensions() int {
	return v.dimensions
}

// EmbedText embeds a single text. Whitespace-only text yields a zero
// vector without calling the model.
func (v *Vectorizer) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return make([]float32, v.dimensions), nil
	}

	vector, err := v.embedder.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(vector) != v.dimensions {
		return nil, fmt.Errorf("%w: model returned %d dimensions, expected %d",
			ErrDimensionMismatch, len(vector), v.dimensions)
	}
	return NormalizeVector(vector), nil
}

// EmbedTexts embeds a batch of texts, preserving order. Whitespace-only
// entries come back as zero vectors; the remainder go to the model in a
// single call.
func (v *Vectorizer) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))

	var pending []string
	var pendingIdx []int
	for i, text := range texts {
		if strings.TrimSpace(text) == "" {
			vectors[i] = make([]float32, v.dimensions)
			continue
		}
		pending = append(pending, text)
		pendingIdx = append(pendingIdx, i)
	}

	if len(pending) == 0 {
		return vectors, nil
	}

	v.logger.Debug("generating embeddings", "texts", len(pending))
	embedded, err := v.embedder.EmbedTexts(ctx, pending)
	if err != nil {
		return nil, err
	}
	if len(embedded) != len(pending) {
		return nil, fmt.Errorf("embedding result mismatch. expected %d, received %d",
			len(pending), len(embedded))
	}

	for j, vector := range embedded {
		if len(vector) != v.dimensions {
			return nil, fmt.Errorf("%w: model returned %d dimensions, expected %d",
				ErrDimensionMismatch, len(vector), v.dimensions)
		}
		vectors[pendingIdx[j]] = NormalizeVector(vector)
	}
	return vectors, nil
}
