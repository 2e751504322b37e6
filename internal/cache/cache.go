package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching serialized analyses.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key for one analysis input. The catalog version
// is part of the key: swapping rule catalogs must never serve a stale
// analysis.
func Key(catalogVersion, text string) string {
	h := sha256.New()
	h.Write([]byte(catalogVersion))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return "lexlens:v1:" + hex.EncodeToString(h.Sum(nil))
}
