package openai

import (
	"fmt"
	"strings"
)

const classifierResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "labels": {
      "type": "array",
      "items": {"type": "string"}
    },
    "scores": {
      "type": "array",
      "items": {"type": "number", "minimum": 0, "maximum": 1}
    }
  },
  "required": ["labels", "scores"],
  "additionalProperties": false
}`

const classifierPromptTemplate = `You are a zero-shot text classifier. Score how well each candidate label describes the text the user provides, and return the result as JSON.

For every candidate label L, consider the hypothesis "%s" with L substituted for the placeholder, and score how strongly the text supports that hypothesis.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- "labels" must contain every candidate label exactly once, spelled exactly as given: %s.
- "scores" must be parallel to "labels", each score in [0, 1], all scores summing to 1.
- Sort both arrays together by score, highest first.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "The central bank raised interest rates for the third time this year."
Candidate labels: economy, sports, tech
Output:
{
  "labels": ["economy", "tech", "sports"],
  "scores": [0.91, 0.06, 0.03]
}`

// buildClassifierPrompt creates the system prompt with the hypothesis
// template and candidate labels embedded.
func buildClassifierPrompt(candidateLabels []string, hypothesisTemplate string) string {
	hypothesis := strings.ReplaceAll(hypothesisTemplate, "{}", "{L}")
	return fmt.Sprintf(classifierPromptTemplate,
		hypothesis,
		classifierResponseSchema,
		strings.Join(candidateLabels, ", "))
}
