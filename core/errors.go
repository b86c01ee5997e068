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

import "errors"

// Domain validation errors
var (
	// ErrInvalidArticle indicates an Article failed validation.
	ErrInvalidArticle = errors.New("invalid article")

	// ErrEmptyHeadline indicates the headline field is empty.
	ErrEmptyHeadline = errors.New("headline cannot be empty")

	// ErrPlaceholderHeadline indicates the headline is an extraction placeholder.
	ErrPlaceholderHeadline = errors.New("headline is a placeholder")

	// ErrMissingURL indicates the article URL is empty.
	ErrMissingURL = errors.New("article URL cannot be empty")

	// ErrRelativeURL indicates the article URL is not absolute.
	ErrRelativeURL = errors.New("article URL must be absolute")

	// ErrInvalidConfidence indicates a confidence score outside [0, 1].
	ErrInvalidConfidence = errors.New("confidence must be in [0, 1]")
)
