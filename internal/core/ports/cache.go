package ports

import "time"

// Cache is a process-wide key/value store with per-entry TTL and
// content-hash invalidation. It is a performance layer only: a cold cache
// must produce identical results to a warm one, so entries that cannot be
// trusted (expired, hash mismatch, corrupt) are treated as absent and
// evicted on read.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type Cache interface {
	// Get returns the entry for key, or false if absent or expired.
	// Expiry is evaluated lazily here, not by a background sweep.
	Get(key string) (any, bool)

	// Set stores value under key. A non-positive ttl selects the default
	// for generic entries.
	Set(key string, value any, ttl time.Duration)

	// GetFile looks up a file-keyed entry by path and current content
	// hash. A stored hash that differs from currentHash is a miss and
	// evicts the stale entry even before its TTL expires.
	GetFile(path, currentHash string) (any, bool)

	// SetFile stores a file-keyed entry under both the hash-qualified key
	// and the legacy path-only key. A non-positive ttl selects the
	// file-entry default.
	SetFile(path string, value any, hash string, ttl time.Duration)

	// Has reports whether key is present and unexpired, evicting on expiry
	// like Get.
	Has(key string) bool

	// Delete removes key and reports whether it was present.
	Delete(key string) bool

	// Clear removes every entry.
	Clear()
}
