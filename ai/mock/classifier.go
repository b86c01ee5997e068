package mock

import (
	"context"

	"github.com/newsvec/newsvec/ai"
)

// MockClassifier is a test double for ai.Classifier.
// It allows custom behavior injection via function fields.
type MockClassifier struct {
	// ClassifyFunc is called by Classify if set.
	// If nil, uses default deterministic behavior.
	ClassifyFunc func(ctx context.Context, text string, candidateLabels []string, hypothesisTemplate string) (*ai.Classification, error)

	callCount int
}

// NewMockClassifier creates a mock classifier with default deterministic
// behavior. Note: Returns concrete type to allow test assertions via
// GetMockClassifier().
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{}
}

// Classify returns the candidate labels in their given order with
// deterministic descending scores (the first label always wins).
func (m *MockClassifier) Classify(ctx context.Context, text string, candidateLabels []string, hypothesisTemplate string) (*ai.Classification, error) {
	m.callCount++

	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, text, candidateLabels, hypothesisTemplate)
	}

	labels := make([]string, len(candidateLabels))
	copy(labels, candidateLabels)

	// First label gets the bulk of the mass, the remainder is spread evenly.
	scores := make([]float64, len(labels))
	if len(scores) == 1 {
		scores[0] = 1.0
	} else if len(scores) > 1 {
		scores[0] = 0.9
		rest := 0.1 / float64(len(scores)-1)
		for i := 1; i < len(scores); i++ {
			scores[i] = rest
		}
	}

	return &ai.Classification{
		Labels: labels,
		Scores: scores,
	}, nil
}

// CallCount returns the number of times Classify was called.
func (m *MockClassifier) CallCount() int {
	return m.callCount
}

// Reset clears the call count and any injected behavior.
func (m *MockClassifier) Reset() {
	m.callCount = 0
	m.ClassifyFunc = nil
}
