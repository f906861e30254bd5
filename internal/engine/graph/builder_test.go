package graph_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.lancet.dev/lancet/internal/adapters/cache"
	"go.lancet.dev/lancet/internal/adapters/fs"
	"go.lancet.dev/lancet/internal/core/domain"
	"go.lancet.dev/lancet/internal/core/ports/mocks"
	"go.lancet.dev/lancet/internal/engine/graph"
)

func testConfig(roots ...string) *domain.Config {
	return &domain.Config{
		Roots:      roots,
		Extensions: []string{".ts"},
		MaxFiles:   20000,
	}
}

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

func newBuilder(t *testing.T, c *cache.Cache) *graph.Builder {
	t.Helper()
	return graph.NewBuilder(c, fs.NewHasher(), graph.NewRegexExtractor(), fs.NewResolver(), quietLogger(t))
}

func writeSource(t *testing.T, path, content string) domain.SourceFile {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return domain.SourceFile{Path: path, Ext: filepath.Ext(path)}
}

func TestBuilder_ForwardEdges(t *testing.T) {
	root := t.TempDir()
	a := writeSource(t, filepath.Join(root, "a.ts"), "import './b'\n")
	b := writeSource(t, filepath.Join(root, "b.ts"), "export const b = 1\n")

	forward, failed := newBuilder(t, cache.New()).Build(context.Background(), testConfig(root), []domain.SourceFile{a, b})

	assert.Empty(t, failed)
	assert.Equal(t, 2, forward.Len())
	assert.Equal(t, []string{b.Path}, forward.Imports(a.Path))
	assert.Empty(t, forward.Imports(b.Path), "a leaf file still gets an entry")
}

func TestBuilder_DropsEdgesOutsideScannedSet(t *testing.T) {
	root := t.TempDir()
	a := writeSource(t, filepath.Join(root, "a.ts"), "import './outside'\nimport 'react'\n")
	// outside.ts exists on disk but is not part of the scanned set.
	writeSource(t, filepath.Join(root, "outside.ts"), "")

	forward, _ := newBuilder(t, cache.New()).Build(context.Background(), testConfig(root), []domain.SourceFile{a})

	assert.Empty(t, forward.Imports(a.Path))
	assert.False(t, forward.Contains(filepath.Join(root, "outside.ts")),
		"no node is added for files outside the scanned set")
}

func TestBuilder_UnreadableFileContributesZeroEdges(t *testing.T) {
	root := t.TempDir()
	a := writeSource(t, filepath.Join(root, "a.ts"), "import './b'\n")
	b := writeSource(t, filepath.Join(root, "b.ts"), "")
	ghost := domain.SourceFile{Path: filepath.Join(root, "deleted.ts"), Ext: ".ts"}

	forward, failed := newBuilder(t, cache.New()).Build(context.Background(), testConfig(root), []domain.SourceFile{a, b, ghost})

	require.Contains(t, failed, ghost.Path)
	assert.True(t, forward.Contains(ghost.Path), "a failed file is still a node")
	assert.Empty(t, forward.Imports(ghost.Path))
	assert.Equal(t, []string{b.Path}, forward.Imports(a.Path), "other files are unaffected")
}

func TestBuilder_Idempotent(t *testing.T) {
	root := t.TempDir()
	files := []domain.SourceFile{
		writeSource(t, filepath.Join(root, "a.ts"), "import './b'\nimport './c'\n"),
		writeSource(t, filepath.Join(root, "b.ts"), "import './c'\n"),
		writeSource(t, filepath.Join(root, "c.ts"), ""),
	}

	builder := newBuilder(t, cache.New())
	first, _ := builder.Build(context.Background(), testConfig(root), files)
	second, _ := builder.Build(context.Background(), testConfig(root), files)

	assert.Equal(t, first.Fingerprint(), second.Fingerprint())
	assert.Equal(t, first.Nodes(), second.Nodes())
	for _, node := range first.Nodes() {
		assert.Equal(t, first.Imports(node), second.Imports(node))
	}
}

func TestBuilder_CachesExtraction(t *testing.T) {
	root := t.TempDir()
	a := writeSource(t, filepath.Join(root, "a.ts"), "import './b'\n")
	b := writeSource(t, filepath.Join(root, "b.ts"), "")

	ctrl := gomock.NewController(t)
	mockCache := mocks.NewMockCache(ctrl)
	builder := graph.NewBuilder(mockCache, fs.NewHasher(), graph.NewRegexExtractor(), fs.NewResolver(), quietLogger(t))

	// First build: both files miss and get stored.
	mockCache.EXPECT().GetFile(a.Path, gomock.Any()).Return(nil, false)
	mockCache.EXPECT().GetFile(b.Path, gomock.Any()).Return(nil, false)
	mockCache.EXPECT().SetFile(a.Path, []string{"./b"}, gomock.Any(), gomock.Any())
	mockCache.EXPECT().SetFile(b.Path, gomock.Nil(), gomock.Any(), gomock.Any())

	forward, _ := builder.Build(context.Background(), testConfig(root), []domain.SourceFile{a, b})
	assert.Equal(t, []string{b.Path}, forward.Imports(a.Path))

	// Second build: hits serve the cached specifiers, no SetFile calls.
	mockCache.EXPECT().GetFile(a.Path, gomock.Any()).Return([]string{"./b"}, true)
	mockCache.EXPECT().GetFile(b.Path, gomock.Any()).Return([]string(nil), true)

	forward, _ = builder.Build(context.Background(), testConfig(root), []domain.SourceFile{a, b})
	assert.Equal(t, []string{b.Path}, forward.Imports(a.Path))
}

func TestBuilder_CorruptCacheEntryIsMiss(t *testing.T) {
	root := t.TempDir()
	a := writeSource(t, filepath.Join(root, "a.ts"), "import './b'\n")
	b := writeSource(t, filepath.Join(root, "b.ts"), "")

	ctrl := gomock.NewController(t)
	mockCache := mocks.NewMockCache(ctrl)
	builder := graph.NewBuilder(mockCache, fs.NewHasher(), graph.NewRegexExtractor(), fs.NewResolver(), quietLogger(t))

	// A value of the wrong shape falls through to re-extraction.
	mockCache.EXPECT().GetFile(a.Path, gomock.Any()).Return(42, true)
	mockCache.EXPECT().GetFile(b.Path, gomock.Any()).Return(nil, false)
	mockCache.EXPECT().SetFile(a.Path, []string{"./b"}, gomock.Any(), gomock.Any())
	mockCache.EXPECT().SetFile(b.Path, gomock.Nil(), gomock.Any(), gomock.Any())

	forward, _ := builder.Build(context.Background(), testConfig(root), []domain.SourceFile{a, b})
	assert.Equal(t, []string{b.Path}, forward.Imports(a.Path))
}

func TestBuilder_ImportCycle(t *testing.T) {
	root := t.TempDir()
	files := []domain.SourceFile{
		writeSource(t, filepath.Join(root, "a.ts"), "import './b'\n"),
		writeSource(t, filepath.Join(root, "b.ts"), "import './c'\n"),
		writeSource(t, filepath.Join(root, "c.ts"), "import './a'\n"),
	}

	forward, failed := newBuilder(t, cache.New()).Build(context.Background(), testConfig(root), files)

	assert.Empty(t, failed)
	radius := forward.Invert().BlastRadius(files[0].Path)
	assert.ElementsMatch(t, []string{files[1].Path, files[2].Path}, radius)
}
