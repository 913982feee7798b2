package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/mobidoc/manualqa/core"
	"github.com/mobidoc/manualqa/storage"
)

// CacheRepository implements storage.CacheRepository on BadgerDB.
// One schema-versioned blob is stored per collection.
type CacheRepository struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.CacheRepository = (*CacheRepository)(nil)

// NewCacheRepository creates a cache repository on the given backend.
func NewCacheRepository(backend *Backend) (*CacheRepository, error) {
	if backend == nil {
		return nil, errors.New("backend required")
	}
	return &CacheRepository{
		backend: backend,
		logger:  slog.Default().With("component", "cache-repository"),
	}, nil
}

// SaveCache persists the embedding cache for its collection, replacing
// any prior cache. The cache is validated before persistence so a
// misaligned cache can never be written.
func (r *CacheRepository) SaveCache(ctx context.Context, cache *core.EmbeddingCache) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := core.ValidateCache(cache); err != nil {
		return err
	}

	data := storage.MarshalCache(cache)
	key := makeCacheKey(cache.Collection)

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		return tx.Set(key, data)
	}, true)
	if err != nil {
		return fmt.Errorf("saving cache for %q: %w", cache.Collection, err)
	}

	r.logger.Debug("embedding cache saved",
		"collection", cache.Collection,
		"sections", len(cache.Sections),
		"bytes", len(data))
	return nil
}

// LoadCache retrieves and validates the persisted embedding cache for
// a collection.
func (r *CacheRepository) LoadCache(ctx context.Context, collection string) (*core.EmbeddingCache, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var cache *core.EmbeddingCache
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeCacheKey(collection))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %q", storage.ErrCacheNotFound, collection)
			}
			return err
		}
		return item.Value(func(val []byte) error {
			cache, err = storage.UnmarshalCache(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}

	if err := core.ValidateCache(cache); err != nil {
		return nil, err
	}
	return cache, nil
}

// DeleteCache removes the persisted cache for a collection.
func (r *CacheRepository) DeleteCache(ctx context.Context, collection string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		return tx.Delete(makeCacheKey(collection))
	}, true)
}

// Close closes the repository. The underlying backend is shared and
// closed by its owner.
func (r *CacheRepository) Close() error {
	return nil
}
