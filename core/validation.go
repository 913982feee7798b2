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

import "fmt"

// ValidateDocument validates a Document according to domain rules.
//
// Validation rules:
//   - Document must not be nil
//   - Document must contain at least one section
//   - Every section must have a title or content (a section with
//     neither carries no relevance signal and cannot be ranked)
//
// NOT validated:
//   - Source (may be empty when the upload carries no file name)
//   - Keywords and subsections (both may legitimately be empty)
//   - Page ranges (manuals in the wild carry sloppy page metadata)
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if len(doc.Sections) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrNoSections)
	}

	for i := range doc.Sections {
		if err := ValidateSection(&doc.Sections[i]); err != nil {
			return fmt.Errorf("%w: section %d: %w", ErrInvalidDocument, i, err)
		}
	}

	return nil
}

// ValidateSection validates a single Section.
// A section is acceptable as long as it has a title or content;
// individual scoring signals degrade to 0 for any missing field.
func ValidateSection(section *Section) error {
	if section == nil {
		return fmt.Errorf("%w: section is nil", ErrEmptySection)
	}

	if section.Title == "" && section.Content == "" {
		return ErrEmptySection
	}

	return nil
}

// ValidateCache validates an EmbeddingCache's internal consistency.
//
// Validation rules:
//   - Schema version must match CacheSchemaVersion
//   - Vectors must align 1:1 with sections
//
// Alignment against the currently active document (fingerprint check)
// is the store's responsibility, not the cache's.
func ValidateCache(cache *EmbeddingCache) error {
	if cache == nil {
		return fmt.Errorf("%w: cache is nil", ErrInvalidCache)
	}

	if cache.SchemaVersion != CacheSchemaVersion {
		return fmt.Errorf("%w: %w: got %d, want %d",
			ErrInvalidCache, ErrCacheVersion, cache.SchemaVersion, CacheSchemaVersion)
	}

	if len(cache.Vectors) != len(cache.Sections) {
		return fmt.Errorf("%w: %w: %d vectors for %d sections",
			ErrInvalidCache, ErrCacheMisaligned, len(cache.Vectors), len(cache.Sections))
	}

	return nil
}
