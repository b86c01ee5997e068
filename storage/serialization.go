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

package storage

import (
	"encoding/json"
	"fmt"

	"github.com/newsvec/newsvec/core"
)

// MarshalStoredArticle serializes a stored article for persistence.
func MarshalStoredArticle(record *core.StoredArticle) ([]byte, error) {
	if record == nil {
		return nil, fmt.Errorf("%w: nil record", ErrInvalidRecord)
	}
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return data, nil
}

// UnmarshalStoredArticle deserializes a stored article.
func UnmarshalStoredArticle(data []byte) (*core.StoredArticle, error) {
	var record core.StoredArticle
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return &record, nil
}

// MarshalMetadata serializes metadata on its own, used when only the
// metadata portion of a record changes.
func MarshalMetadata(meta *core.Metadata) ([]byte, error) {
	if meta == nil {
		return nil, fmt.Errorf("%w: nil metadata", ErrInvalidRecord)
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return data, nil
}
