package storage

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/mobidoc/manualqa/core"
)

// Store is an in-memory DocumentStore using copy-on-write snapshots.
// Each collection maps to an immutable Snapshot; replacement swaps the
// pointer under a short lock, so concurrent rankings keep reading the
// snapshot they started with. No lock is held during scoring.
type Store struct {
	mu          sync.RWMutex
	collections map[string]*Snapshot
	logger      *slog.Logger
}

var _ DocumentStore = (*Store)(nil)

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewStore creates an empty document store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		collections: make(map[string]*Snapshot),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetDocument installs doc as the collection's active document.
// Any prior document and its vectors are discarded atomically; an
// in-flight ranking keeps the snapshot it already read.
func (s *Store) SetDocument(collection string, doc *core.Document) error {
	if err := core.ValidateDocument(doc); err != nil {
		return err
	}

	snapshot := &Snapshot{
		Document:    doc,
		Fingerprint: doc.Fingerprint(),
	}

	s.mu.Lock()
	s.collections[collection] = snapshot
	s.mu.Unlock()

	s.logger.Info("document installed",
		"collection", collection,
		"source", doc.Source,
		"sections", len(doc.Sections))
	return nil
}

// AttachVectors installs section vectors for the collection's active
// document by swapping in a new snapshot. Vectors computed against a
// document that has since been replaced are rejected.
func (s *Store) AttachVectors(collection string, fingerprint core.ID, vectors [][]float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.collections[collection]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoActiveDocument, collection)
	}
	if current.Fingerprint != fingerprint {
		return fmt.Errorf("%w: stale fingerprint for %q", ErrCacheMismatch, collection)
	}
	if len(vectors) != len(current.Document.Sections) {
		return fmt.Errorf("%w: %d vectors for %d sections",
			ErrCacheMismatch, len(vectors), len(current.Document.Sections))
	}

	s.collections[collection] = &Snapshot{
		Document:    current.Document,
		Fingerprint: current.Fingerprint,
		Vectors:     vectors,
	}
	return nil
}

// Snapshot returns the collection's current snapshot.
func (s *Store) Snapshot(collection string) (*Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot, ok := s.collections[collection]
	return snapshot, ok
}

// Document returns the collection's active document.
func (s *Store) Document(collection string) (*core.Document, bool) {
	snapshot, ok := s.Snapshot(collection)
	if !ok {
		return nil, false
	}
	return snapshot.Document, true
}

// Collections returns the names of all collections holding a document.
func (s *Store) Collections() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CollectionStats summarizes a collection's loaded document.
type CollectionStats struct {
	Source   string
	Sections int
	Embedded bool // section vectors attached
}

// Stats returns per-collection statistics for all loaded documents.
func (s *Store) Stats() map[string]CollectionStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make(map[string]CollectionStats, len(s.collections))
	for name, snapshot := range s.collections {
		stats[name] = CollectionStats{
			Source:   snapshot.Document.Source,
			Sections: len(snapshot.Document.Sections),
			Embedded: len(snapshot.Vectors) > 0,
		}
	}
	return stats
}
