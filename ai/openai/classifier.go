// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/newsvec/newsvec/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Classifier implements ai.Classifier using OpenAI-compatible chat APIs.
type Classifier struct {
	client llms.Model
	logger *slog.Logger
}

// classification is an internal type used for JSON unmarshaling.
// It matches the structure requested from the model.
type classification struct {
	Labels []string  `json:"labels"`
	Scores []float64 `json:"scores"`
}

// newClassifier is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newClassifier(config *ai.Config) (*Classifier, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat/classification
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ClassifierHost),
		openai.WithToken("none"),
		openai.WithModel(config.ClassifierModel),
	)
	if err != nil {
		return nil, err
	}

	return &Classifier{
		client: client,
		logger: slog.Default().With("component", "openai-classifier"),
	}, nil
}

// NewClassifier creates a new zero-shot classifier using the provided
// configuration.
//
// Returns ai.Classifier interface to enforce abstraction.
func NewClassifier(config *ai.Config) (ai.Classifier, error) {
	return newClassifier(config)
}

// Classify scores text against the candidate labels using a JSON-mode chat
// completion. Results are returned sorted by score descending.
func (c *Classifier) Classify(ctx context.Context, text string, candidateLabels []string, hypothesisTemplate string) (*ai.Classification, error) {
	if len(candidateLabels) == 0 {
		return nil, fmt.Errorf("candidate labels required")
	}

	systemPrompt := buildClassifierPrompt(candidateLabels, hypothesisTemplate)
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result classification
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := c.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			c.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			c.logger.Warn("no choices returned from model")
			return nil, fmt.Errorf("classifier returned no choices")
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			c.logger.Warn("error parsing classifier response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		if err := validateClassification(&result, candidateLabels); err != nil {
			lastErr = err
			c.logger.Warn("classifier response failed validation",
				"attempt", attempt+1,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		c.logger.Error("failed to parse classifier response after retries", "err", lastErr)
		return nil, lastErr
	}

	// Models occasionally ignore the ordering rule; enforce it here so the
	// contract (descending score) always holds.
	sortByScore(&result)

	return &ai.Classification{
		Labels: result.Labels,
		Scores: result.Scores,
	}, nil
}

// validateClassification checks the structural contract of a parsed response:
// parallel slices, at least one label, every label from the candidate set.
func validateClassification(result *classification, candidateLabels []string) error {
	if len(result.Labels) == 0 {
		return fmt.Errorf("response contains no labels")
	}
	if len(result.Labels) != len(result.Scores) {
		return fmt.Errorf("labels/scores length mismatch: %d vs %d", len(result.Labels), len(result.Scores))
	}

	valid := make(map[string]bool, len(candidateLabels))
	for _, label := range candidateLabels {
		valid[label] = true
	}
	for _, label := range result.Labels {
		if !valid[label] {
			return fmt.Errorf("label %q not in candidate set", label)
		}
	}
	return nil
}

func sortByScore(result *classification) {
	type pair struct {
		label string
		score float64
	}
	pairs := make([]pair, len(result.Labels))
	for i := range result.Labels {
		pairs[i] = pair{result.Labels[i], result.Scores[i]}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].score > pairs[j].score
	})
	for i, p := range pairs {
		result.Labels[i] = p.label
		result.Scores[i] = p.score
	}
}
