// Package cache implements the hash-validated TTL cache used to skip
// redundant work between verification runs in one process.
package cache

import (
	"sync"
	"time"

	"go.lancet.dev/lancet/internal/core/ports"
)

const (
	// DefaultGenericTTL is the lifetime for computed entries.
	DefaultGenericTTL = 30 * time.Minute
	// DefaultFileTTL is the lifetime for file-content entries. Shorter
	// than the generic default because file content is more volatile than
	// computed rule data.
	DefaultFileTTL = 5 * time.Minute
)

var _ ports.Cache = (*Cache)(nil)

type entry struct {
	data        any
	storedAt    time.Time
	ttl         time.Duration
	contentHash string
}

// Cache is an in-memory key/value store with lazy TTL expiry and
// content-hash invalidation. It is constructed explicitly and injected,
// never shared through a package-level singleton, so tests get isolated
// instances. Nothing is persisted: a cold cache must produce the same
// results as a warm one.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]entry
	genericTTL time.Duration
	fileTTL    time.Duration

	// now is replaceable in tests to exercise expiry without sleeping.
	now func() time.Time
}

// New creates a Cache with the default TTLs.
func New() *Cache {
	return NewWithTTLs(DefaultGenericTTL, DefaultFileTTL)
}

// NewWithTTLs creates a Cache with explicit default TTLs.
func NewWithTTLs(genericTTL, fileTTL time.Duration) *Cache {
	return &Cache{
		entries:    make(map[string]entry),
		genericTTL: genericTTL,
		fileTTL:    fileTTL,
		now:        time.Now,
	}
}

// Get returns the value for key, or false when absent or expired.
// Expired entries are evicted on the spot.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.lookup(key)
	if !ok {
		return nil, false
	}
	return e.data, true
}

// Set stores value under key. A non-positive ttl selects the generic default.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.genericTTL
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{data: value, storedAt: c.now(), ttl: ttl}
}

// GetFile looks up the entry for path validated against currentHash.
// It first tries the hash-qualified key, then falls back to the legacy
// path-only key; a legacy entry whose stored hash differs from currentHash
// is stale and gets evicted even if its TTL has not run out.
func (c *Cache) GetFile(path, currentHash string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.lookup(fileKey(path, currentHash)); ok {
		return e.data, true
	}

	legacy := legacyFileKey(path)
	e, ok := c.lookup(legacy)
	if !ok {
		return nil, false
	}
	if e.contentHash != currentHash {
		delete(c.entries, legacy)
		return nil, false
	}
	return e.data, true
}

// SetFile stores value for path under the hash-qualified key and the legacy
// path-only key. A non-positive ttl selects the file default.
//
// The dual write is a migration shim for callers that still look up by bare
// path; remove it (and legacyFileKey) once no caller reads the hash-less key.
func (c *Cache) SetFile(path string, value any, hash string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.fileTTL
	}
	e := entry{data: value, storedAt: c.now(), ttl: ttl, contentHash: hash}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[fileKey(path, hash)] = e
	c.entries[legacyFileKey(path)] = e
}

// Has reports whether key is present and unexpired, evicting like Get.
func (c *Cache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.lookup(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (c *Cache) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	delete(c.entries, key)
	return ok
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// lookup returns the live entry for key, evicting it when expired.
// Callers must hold c.mu.
func (c *Cache) lookup(key string) (entry, bool) {
	e, ok := c.entries[key]
	if !ok {
		return entry{}, false
	}
	if c.now().Sub(e.storedAt) > e.ttl {
		delete(c.entries, key)
		return entry{}, false
	}
	return e, true
}

func fileKey(path, hash string) string {
	return "file:" + path + ":" + hash
}

func legacyFileKey(path string) string {
	return "file:" + path
}
