// Copyright 2025 Mobidoc
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
	// ErrInvalidDocument indicates a Document failed validation.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrNoSections indicates a document contains no sections.
	ErrNoSections = errors.New("document has no sections")

	// ErrEmptySection indicates a section has neither title nor content.
	ErrEmptySection = errors.New("section has neither title nor content")

	// ErrInvalidCache indicates an EmbeddingCache failed validation.
	ErrInvalidCache = errors.New("invalid embedding cache")

	// ErrCacheVersion indicates a persisted cache uses an unknown schema version.
	ErrCacheVersion = errors.New("unsupported cache schema version")

	// ErrCacheMisaligned indicates cache vectors are not aligned 1:1 with sections.
	ErrCacheMisaligned = errors.New("cache vectors not aligned with sections")
)
