package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Classifier performs zero-shot classification of text against a set of
// candidate labels. Implementations must be thread-safe for concurrent use.
type Classifier interface {
	// Classify scores the text against each candidate label, framing each
	// label as a hypothesis built from hypothesisTemplate (the "{}" marker is
	// replaced by the label). The result's labels and scores are parallel
	// slices sorted by score descending.
	// Returns an error if classification fails; callers decide the fallback.
	Classify(ctx context.Context, text string, candidateLabels []string, hypothesisTemplate string) (*Classification, error)
}

// Classification is the result of a zero-shot classification call.
// Labels and Scores are parallel and ordered by descending score.
type Classification struct {
	Labels []string
	Scores []float64
}

// Top returns the highest-scoring label and its score.
// Returns ("", 0) if the classification is empty.
func (c *Classification) Top() (string, float64) {
	if c == nil || len(c.Labels) == 0 || len(c.Scores) == 0 {
		return "", 0
	}
	return c.Labels[0], c.Scores[0]
}

// Provider aggregates AI services for convenient initialization and lifecycle
// management. A provider creates and manages Embedder and Classifier
// instances, ensuring they share configuration and resources appropriately.
type Provider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Classifier returns the zero-shot classification service.
	// The returned Classifier is safe for concurrent use.
	Classifier() Classifier

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
