package core

import (
	"errors"
	"testing"
)

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		doc     *Document
		wantErr error
	}{
		{
			name: "valid document",
			doc: &Document{
				Source: "sonata_manual.json",
				Sections: []Section{
					{Number: "1", Title: "엔진오일 교체 방법", Content: "절차..."},
				},
			},
			wantErr: nil,
		},
		{
			name:    "nil document",
			doc:     nil,
			wantErr: ErrInvalidDocument,
		},
		{
			name:    "no sections",
			doc:     &Document{Source: "empty.json"},
			wantErr: ErrNoSections,
		},
		{
			name: "section with neither title nor content",
			doc: &Document{
				Source: "bad.json",
				Sections: []Section{
					{Number: "1", Title: "타이어 점검", Content: "..."},
					{Number: "2", Keywords: []string{"오일"}},
				},
			},
			wantErr: ErrEmptySection,
		},
		{
			name: "title only is acceptable",
			doc: &Document{
				Sections: []Section{{Number: "1", Title: "퓨즈 교체"}},
			},
			wantErr: nil,
		},
		{
			name: "content only is acceptable",
			doc: &Document{
				Sections: []Section{{Number: "1", Content: "1. 보닛을 엽니다."}},
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.doc)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDocument() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDocument() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCache(t *testing.T) {
	sections := []Section{
		{Number: "1", Title: "엔진오일 교체 방법", Content: "..."},
		{Number: "2", Title: "타이어 점검", Content: "..."},
	}

	tests := []struct {
		name    string
		cache   *EmbeddingCache
		wantErr error
	}{
		{
			name: "valid cache",
			cache: &EmbeddingCache{
				SchemaVersion: CacheSchemaVersion,
				Collection:    "sonata",
				Sections:      sections,
				Vectors:       [][]float32{{0.1, 0.2}, {0.3, 0.4}},
			},
			wantErr: nil,
		},
		{
			name:    "nil cache",
			cache:   nil,
			wantErr: ErrInvalidCache,
		},
		{
			name: "unknown schema version",
			cache: &EmbeddingCache{
				SchemaVersion: CacheSchemaVersion + 1,
				Sections:      sections,
				Vectors:       [][]float32{{0.1}, {0.2}},
			},
			wantErr: ErrCacheVersion,
		},
		{
			name: "vector count mismatch",
			cache: &EmbeddingCache{
				SchemaVersion: CacheSchemaVersion,
				Sections:      sections,
				Vectors:       [][]float32{{0.1, 0.2}},
			},
			wantErr: ErrCacheMisaligned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCache(tt.cache)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateCache() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateCache() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
