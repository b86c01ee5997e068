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

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrSerialization indicates a record could not be encoded or decoded.
	ErrSerialization = errors.New("serialization failed")

	// ErrDimensionMismatch indicates a vector's length does not match the
	// collection it is being written to or queried against.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrInvalidRecord indicates a record is missing required fields.
	ErrInvalidRecord = errors.New("invalid record")

	// ErrInvalidFilter indicates a query filter naming a field that is not
	// filterable.
	ErrInvalidFilter = errors.New("invalid query filter")

	// ErrBackendClosed indicates an operation on a closed backend.
	ErrBackendClosed = errors.New("backend is closed")
)
