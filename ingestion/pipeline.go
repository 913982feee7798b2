package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/mobidoc/manualqa/ai"
	"github.com/mobidoc/manualqa/core"
	"github.com/mobidoc/manualqa/search"
	"github.com/mobidoc/manualqa/storage"
	"github.com/panjf2000/ants/v2"
)

// Embedding text is capped per section: very long sections are
// represented by their head and tail, which carry the section's topic
// sentence and its closing instructions.
const (
	maxEmbedRunes    = 1000
	embedSampleRunes = 500
)

// Pipeline loads manual documents into the store and computes section
// embeddings. Embedding runs asynchronously on a worker pool; a loaded
// document is searchable lexically right away and gains semantic
// scoring once its vectors land.
type Pipeline struct {
	store          storage.DocumentStore
	cacheRepo      storage.CacheRepository
	embedder       ai.Embedder
	pool           *ants.Pool
	maxRetries     int
	retryBaseDelay time.Duration
	wg             sync.WaitGroup
	logger         *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithRetry configures retry behavior for embedding calls.
// Default is 3 attempts with a 500ms base delay.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(p *Pipeline) error {
		if maxAttempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		p.maxRetries = maxAttempts
		p.retryBaseDelay = baseDelay
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	store storage.DocumentStore,
	cacheRepo storage.CacheRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Pipeline, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if cacheRepo == nil {
		return nil, ErrCacheRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		store:          store,
		cacheRepo:      cacheRepo,
		embedder:       provider.Embedder(),
		pool:           pool,
		maxRetries:     3,
		retryBaseDelay: 500 * time.Millisecond,
		logger:         slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// LoadDocument installs doc as the collection's active document and
// arranges for its section vectors. A persisted cache whose
// fingerprint matches the document supplies vectors immediately;
// otherwise an embedding job runs asynchronously. Embedding errors are
// logged but never fail the load, so the document is always at least
// lexically searchable.
func (p *Pipeline) LoadDocument(ctx context.Context, collection string, doc *core.Document) error {
	if err := p.store.SetDocument(collection, doc); err != nil {
		return err
	}

	fingerprint := doc.Fingerprint()

	cache, err := p.cacheRepo.LoadCache(ctx, collection)
	switch {
	case err == nil && cache.Fingerprint == fingerprint:
		if attachErr := p.store.AttachVectors(collection, fingerprint, cache.Vectors); attachErr != nil {
			return attachErr
		}
		p.logger.Info("embedding cache hit",
			"collection", collection, "sections", len(cache.Vectors))
		return nil
	case err == nil:
		p.logger.Info("embedding cache is for a different document, re-embedding",
			"collection", collection)
	case !errors.Is(err, storage.ErrCacheNotFound):
		p.logger.Warn("error loading embedding cache, re-embedding",
			"collection", collection, "err", err)
	}

	p.wg.Add(1)
	submitErr := p.pool.Submit(func() {
		defer p.wg.Done()
		if err := p.embedAndAttach(context.Background(), collection, doc, fingerprint); err != nil {
			p.logger.Error("error embedding document sections",
				"collection", collection, "err", err)
		}
	})
	if submitErr != nil {
		p.wg.Done()
		p.logger.Error("error submitting embedding job",
			"collection", collection, "err", submitErr)
	}
	return nil
}

// LoadManualFile parses a manual JSON file and loads it.
func (p *Pipeline) LoadManualFile(ctx context.Context, collection, path string) (*core.Document, error) {
	doc, err := ParseManualFile(path)
	if err != nil {
		return nil, err
	}
	if err := p.LoadDocument(ctx, collection, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// embedAndAttach embeds the document's sections, attaches the vectors
// to the live document, and persists them. Vectors are normalized so
// cosine scoring degenerates to a dot product of unit vectors.
func (p *Pipeline) embedAndAttach(ctx context.Context, collection string, doc *core.Document, fingerprint core.ID) error {
	texts := make([]string, len(doc.Sections))
	for i := range doc.Sections {
		texts[i] = embeddingText(&doc.Sections[i])
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var embedErr error
		embeddings, embedErr = p.embedder.EmbedTexts(ctx, texts)
		return embedErr
	}, p.maxRetries, p.retryBaseDelay)
	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", p.maxRetries, err)
	}

	if len(embeddings) != len(doc.Sections) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(doc.Sections), len(embeddings))
	}

	vectors := make([][]float32, len(embeddings))
	for i, embedding := range embeddings {
		vectors[i] = search.NormalizeVector(embedding)
	}

	if err := p.store.AttachVectors(collection, fingerprint, vectors); err != nil {
		if errors.Is(err, storage.ErrCacheMismatch) || errors.Is(err, storage.ErrNoActiveDocument) {
			// The document was replaced while embedding ran. The new
			// document has its own embedding job; these vectors are stale.
			p.logger.Info("document replaced during embedding, discarding vectors",
				"collection", collection)
			return nil
		}
		return err
	}

	cache := &core.EmbeddingCache{
		SchemaVersion: core.CacheSchemaVersion,
		Collection:    collection,
		Fingerprint:   fingerprint,
		Sections:      doc.Sections,
		Vectors:       vectors,
	}
	if err := p.cacheRepo.SaveCache(ctx, cache); err != nil {
		return fmt.Errorf("persisting embedding cache: %w", err)
	}

	p.logger.Info("document sections embedded",
		"collection", collection, "sections", len(vectors))
	return nil
}

// Wait blocks until all in-flight embedding jobs complete.
func (p *Pipeline) Wait() {
	p.wg.Wait()
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// embeddingText builds the text embedded for a section. The title
// anchors the topic; oversized content is sampled from both ends.
func embeddingText(section *core.Section) string {
	content := section.Content
	if runes := []rune(content); len(runes) > maxEmbedRunes {
		content = string(runes[:embedSampleRunes]) + " ... " + string(runes[len(runes)-embedSampleRunes:])
	}
	if section.Title == "" {
		return content
	}
	return section.Title + "\n" + content
}
