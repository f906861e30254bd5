package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.lancet.dev/lancet/internal/adapters/fs"
)

func TestHasher_SumMatchesContentHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.ts")
	content := []byte("import './b'\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	h := fs.NewHasher()

	fromFile, err := h.ContentHash(path)
	require.NoError(t, err)
	assert.Equal(t, h.Sum(content), fromFile)
	assert.Len(t, fromFile, 64, "SHA-256 hex digest")
}

func TestHasher_ContentSensitive(t *testing.T) {
	h := fs.NewHasher()
	assert.NotEqual(t, h.Sum([]byte("a")), h.Sum([]byte("b")))
}

func TestHasher_MissingFile(t *testing.T) {
	_, err := fs.NewHasher().ContentHash(filepath.Join(t.TempDir(), "missing.ts"))
	assert.Error(t, err)
}
