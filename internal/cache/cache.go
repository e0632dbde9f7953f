package cache

import (
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/ppiankov/tkdgloss/internal/segment"
)

// keyVersion is bumped whenever the cached report layout changes
const keyVersion = "v1"

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives the cache key of an analysis from the phrase's tokens, so
// phrases the segmenter reads identically share a key.
func Key(phrase string, maxDistance int) string {
	normalized := strings.Join(segment.Tokenize(phrase), " ")

	h := xxhash.New()
	_, _ = h.WriteString(normalized)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(strconv.Itoa(maxDistance))
	return "tkdgloss:" + keyVersion + ":" + strconv.FormatUint(h.Sum64(), 16)
}

// New builds the cache described by the given settings: memory only when
// dir is empty, memory in front of disk otherwise.
func New(dir string, memoryTTL, diskTTL time.Duration) Cache {
	if dir == "" {
		return NewMemoryCache(memoryTTL, 10*time.Minute)
	}
	return NewLayeredCache(memoryTTL, dir, diskTTL)
}
