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


// Package openai provides ai.Provider implementations backed by
// OpenAI-compatible APIs (OpenAI, Ollama, LocalAI, vLLM, etc).
//
// Embeddings use the service's embedding endpoint. Zero-shot classification
// is implemented as a JSON-mode chat completion at temperature 0: the model
// is asked to score every candidate label against a hypothesis built from the
// configured template and to return parallel label/score arrays. Malformed
// responses are re-asked a bounded number of times before the error is
// surfaced to the caller.
package openai
