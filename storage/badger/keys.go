package badger

// Key prefixes for different data types
const (
	embeddingCachePrefix = "emcache"
)

// makeCacheKey generates a key for a collection's embedding cache.
func makeCacheKey(collection string) []byte {
	prefix := embeddingCachePrefix + ":"
	buf := make([]byte, len(prefix)+len(collection))
	offset := copy(buf, prefix)
	copy(buf[offset:], collection)
	return buf
}
