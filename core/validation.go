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


package core

import (
	"fmt"
	"net/url"
)

// PlaceholderHeadline is the sentinel value legacy extractors emit for items
// without a headline element. Articles carrying it are rejected.
const PlaceholderHeadline = "No headline"

// ValidateArticle validates an Article according to domain rules.
//
// Validation rules:
//   - Headline must not be empty and must not be the placeholder sentinel
//   - URL must be present and absolute
//   - Confidence must be in [0, 1]
//
// NOT validated (populated by the categorizer):
//   - Category (empty until categorization runs; the categorizer only emits
//     labels from the closed set or the fallback)
func ValidateArticle(article *Article) error {
	if article == nil {
		return fmt.Errorf("%w: article is nil", ErrInvalidArticle)
	}

	if article.Headline == "" {
		return fmt.Errorf("%w: %w", ErrInvalidArticle, ErrEmptyHeadline)
	}

	if article.Headline == PlaceholderHeadline {
		return fmt.Errorf("%w: %w", ErrInvalidArticle, ErrPlaceholderHeadline)
	}

	if article.URL == "" {
		return fmt.Errorf("%w: %w", ErrInvalidArticle, ErrMissingURL)
	}

	if !IsAbsoluteURL(article.URL) {
		return fmt.Errorf("%w: %w", ErrInvalidArticle, ErrRelativeURL)
	}

	if article.Confidence < 0 || article.Confidence > 1 {
		return fmt.Errorf("%w: %w", ErrInvalidArticle, ErrInvalidConfidence)
	}

	return nil
}

// IsAbsoluteURL checks if a raw URL parses and carries a scheme and host.
func IsAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.IsAbs() && u.Host != ""
}
