package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildClassifierPrompt(t *testing.T) {
	prompt := buildClassifierPrompt([]string{"tech", "sports"}, "This text is about {}.")

	assert.Contains(t, prompt, "This text is about {L}.")
	assert.Contains(t, prompt, "tech, sports")
	assert.Contains(t, prompt, `"labels"`)
}

func TestValidateClassification(t *testing.T) {
	candidates := []string{"tech", "sports", "economy"}

	t.Run("valid response", func(t *testing.T) {
		result := &classification{
			Labels: []string{"tech", "economy"},
			Scores: []float64{0.7, 0.3},
		}
		require.NoError(t, validateClassification(result, candidates))
	})

	t.Run("no labels", func(t *testing.T) {
		assert.Error(t, validateClassification(&classification{}, candidates))
	})

	t.Run("length mismatch", func(t *testing.T) {
		result := &classification{
			Labels: []string{"tech", "sports"},
			Scores: []float64{0.7},
		}
		assert.Error(t, validateClassification(result, candidates))
	})

	t.Run("unknown label", func(t *testing.T) {
		result := &classification{
			Labels: []string{"gossip"},
			Scores: []float64{1.0},
		}
		assert.Error(t, validateClassification(result, candidates))
	})
}

func TestSortByScore(t *testing.T) {
	result := &classification{
		Labels: []string{"sports", "tech", "economy"},
		Scores: []float64{0.1, 0.6, 0.3},
	}

	sortByScore(result)

	assert.Equal(t, []string{"tech", "economy", "sports"}, result.Labels)
	assert.Equal(t, []float64{0.6, 0.3, 0.1}, result.Scores)
}
