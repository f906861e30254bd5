package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetGet(t *testing.T) {
	c := New()
	c.Set("key", "value", 0)

	v, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", v)
}

func TestCache_GetMissing(t *testing.T) {
	c := New()
	_, ok := c.Get("missing")
	assert.False(t, ok)
}

func TestCache_TTLExpiry(t *testing.T) {
	c := New()
	c.Set("key", "value", 100*time.Millisecond)

	time.Sleep(150 * time.Millisecond)

	_, ok := c.Get("key")
	assert.False(t, ok, "entry must expire after its TTL")
	assert.Equal(t, 0, c.Len(), "expired entry must be evicted on read")
}

func TestCache_TTLExpiry_Clocked(t *testing.T) {
	c := New()
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("key", "value", time.Minute)

	now = now.Add(59 * time.Second)
	_, ok := c.Get("key")
	assert.True(t, ok, "entry within TTL must be served")

	now = now.Add(2 * time.Second)
	_, ok = c.Get("key")
	assert.False(t, ok, "entry past TTL must be a miss")
}

func TestCache_DefaultTTLs(t *testing.T) {
	c := NewWithTTLs(time.Hour, time.Second)
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("generic", 1, 0)
	c.SetFile("/src/a.ts", 2, "hashA", 0)

	now = now.Add(2 * time.Second)
	_, ok := c.Get("generic")
	assert.True(t, ok, "generic entry uses the longer default TTL")
	_, ok = c.GetFile("/src/a.ts", "hashA")
	assert.False(t, ok, "file entry uses the shorter default TTL")
}

func TestCache_HashInvalidation(t *testing.T) {
	c := New()
	c.SetFile("/src/a.ts", "parsed-v1", "hashA", 0)

	// Same hash: hit.
	v, ok := c.GetFile("/src/a.ts", "hashA")
	require.True(t, ok)
	assert.Equal(t, "parsed-v1", v)

	// Different hash: miss, even though the TTL has not expired.
	_, ok = c.GetFile("/src/a.ts", "hashB")
	assert.False(t, ok)
}

func TestCache_LegacyKeyFallback(t *testing.T) {
	c := New()
	c.SetFile("/src/a.ts", "parsed", "hashA", 0)

	// Simulate an older writer: drop the hash-qualified key, keep legacy.
	require.True(t, c.Delete("file:/src/a.ts:hashA"))

	v, ok := c.GetFile("/src/a.ts", "hashA")
	require.True(t, ok, "lookup must fall back to the legacy path-only key")
	assert.Equal(t, "parsed", v)
}

func TestCache_LegacyKeyStaleEvicted(t *testing.T) {
	c := New()
	c.SetFile("/src/a.ts", "parsed", "hashA", 0)
	require.True(t, c.Delete("file:/src/a.ts:hashA"))

	_, ok := c.GetFile("/src/a.ts", "hashB")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len(), "stale legacy entry must be evicted")
}

func TestCache_Has(t *testing.T) {
	c := New()
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("key", "value", time.Second)
	assert.True(t, c.Has("key"))

	now = now.Add(2 * time.Second)
	assert.False(t, c.Has("key"))
	assert.Equal(t, 0, c.Len(), "Has must evict expired entries like Get")
}

func TestCache_DeleteAndClear(t *testing.T) {
	c := New()
	c.Set("a", 1, 0)
	c.Set("b", 2, 0)

	assert.True(t, c.Delete("a"))
	assert.False(t, c.Delete("a"))

	c.Clear()
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("b")
	assert.False(t, ok)
}

func TestCache_LastWriteWins(t *testing.T) {
	c := New()
	c.Set("key", "first", 0)
	c.Set("key", "second", 0)

	v, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, "second", v)
}
