package core

import (
	"encoding/binary"
	"strconv"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// CacheSchemaVersion identifies the persisted embedding cache layout.
// Bump it whenever the Section shape or vector encoding changes so that
// stale blobs are rejected at load time instead of silently producing
// misaligned scores.
const CacheSchemaVersion uint32 = 1

// PageRange is the page span a section covers in the printed manual.
type PageRange struct {
	Start int
	End   int
}

// Subsection is a nested block of a section. The search core treats
// subsections as opaque payload and passes them through to callers.
type Subsection struct {
	Title   string
	Content string
}

// Section is a titled, keyworded block of manual content.
// Sections are immutable once loaded and are identified within a
// document by position and section number.
type Section struct {
	Number      string
	Title       string
	Content     string
	Keywords    []string
	Pages       PageRange
	Subsections []Subsection
}

// Document is the full set of sections for one manual.
// A document belongs to exactly one collection; loading a new document
// into a collection replaces any prior one.
type Document struct {
	Source   string // derived from the uploaded file name or metadata
	Sections []Section
}

// Fingerprint returns a deterministic content hash of the document.
// Two documents with the same source, section order, titles, and
// contents produce the same fingerprint. It is used to detect stale
// embedding caches after a document has been replaced.
func (d *Document) Fingerprint() ID {
	h, _ := blake2b.New(8, nil)
	h.Write([]byte(d.Source))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(len(d.Sections))))
	for i := range d.Sections {
		s := &d.Sections[i]
		h.Write([]byte{0})
		h.Write([]byte(s.Title))
		h.Write([]byte{0})
		h.Write([]byte(s.Content))
	}
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// EmbeddingCache holds one vector per section of a collection's active
// document, aligned positionally with Document.Sections.
type EmbeddingCache struct {
	SchemaVersion uint32
	Collection    string
	Fingerprint   ID
	Sections      []Section
	Vectors       [][]float32
}

// SubScores are the per-signal components of a section's total score.
type SubScores struct {
	Title    float64
	Keyword  float64
	Semantic float64
	Bonus    float64
}

// ScoredSection is a section annotated with its relevance scores for
// one query. It is created per query and never persisted.
type ScoredSection struct {
	Section *Section
	Source  string
	Score   float64
	Details SubScores
}
