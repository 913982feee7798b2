package storage

import (
	"context"

	"github.com/mobidoc/manualqa/core"
)

// Snapshot is the immutable (document, vectors) pair for one collection.
// A ranking operation reads one snapshot and works on it for its whole
// duration; replacement installs a new snapshot rather than mutating
// fields, so a reader never observes old sections against new vectors.
type Snapshot struct {
	Document    *core.Document
	Fingerprint core.ID
	Vectors     [][]float32 // aligned with Document.Sections; nil until embedded
}

// DocumentStore holds the single active document per collection.
// Implementations must be thread-safe and support concurrent access.
type DocumentStore interface {
	// SetDocument installs doc as the active document for the
	// collection, replacing any prior document and discarding its
	// vectors. The document is validated before installation.
	SetDocument(collection string, doc *core.Document) error

	// AttachVectors installs section vectors for the collection's
	// active document. The fingerprint must match the active
	// document's fingerprint; a stale embedding run (computed against
	// a document that has since been replaced) is rejected with
	// ErrCacheMismatch.
	AttachVectors(collection string, fingerprint core.ID, vectors [][]float32) error

	// Snapshot returns the collection's current (document, vectors)
	// pair. Returns false if the collection has no active document.
	Snapshot(collection string) (*Snapshot, bool)

	// Document returns the collection's active document.
	// Returns false if the collection has no active document.
	Document(collection string) (*core.Document, bool)

	// Collections returns the names of all collections holding an
	// active document, sorted.
	Collections() []string
}

// CacheRepository persists embedding caches so section vectors survive
// process restarts. Implementations must be thread-safe.
type CacheRepository interface {
	// SaveCache persists the embedding cache for its collection,
	// replacing any prior cache. The cache is validated before
	// persistence.
	SaveCache(ctx context.Context, cache *core.EmbeddingCache) error

	// LoadCache retrieves the persisted embedding cache for a
	// collection. Returns ErrCacheNotFound if none exists. The blob
	// is validated on load (schema version, vector/section alignment);
	// a corrupt or misaligned blob is a hard error, never a silently
	// degraded result.
	LoadCache(ctx context.Context, collection string) (*core.EmbeddingCache, error)

	// DeleteCache removes the persisted cache for a collection.
	// Deleting a missing cache is not an error.
	DeleteCache(ctx context.Context, collection string) error

	// Close closes the storage backend and releases resources.
	Close() error
}
