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

package migrate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/newsvec/newsvec/ai"
)

// legacyScore is one entry of an old serialized classification result.
// Early versions of the scraper stored the full ranked label list
// instead of a single category.
type legacyScore struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
}

// decodeLegacyCategory maps a stored category value to its scalar form.
// It handles the three historical encodings in order of precedence:
// empty values, JSON-serialized score arrays, and comma-joined label
// lists. Already-scalar values pass through unchanged.
func decodeLegacyCategory(raw string) (category string, changed bool, err error) {
	if raw == "" {
		return ai.FallbackCategory, true, nil
	}

	if strings.HasPrefix(raw, "[") {
		var scores []legacyScore
		if err := json.Unmarshal([]byte(raw), &scores); err != nil {
			return "", false, fmt.Errorf("%w: %w", ErrMalformedCategory, err)
		}
		if len(scores) == 0 || scores[0].Category == "" {
			return ai.FallbackCategory, true, nil
		}
		return scores[0].Category, true, nil
	}

	if strings.Contains(raw, ",") {
		first := strings.TrimSpace(strings.SplitN(raw, ",", 2)[0])
		if first == "" {
			return ai.FallbackCategory, true, nil
		}
		return first, true, nil
	}

	return raw, false, nil
}
