package graph

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"go.lancet.dev/lancet/internal/core/domain"
	"go.lancet.dev/lancet/internal/core/ports"
)

// Builder constructs the forward import graph for a scanned file set.
//
// Extraction results are cached per file keyed by content hash, so an
// unchanged file is not re-parsed across runs within one process. Only raw
// specifiers are cached; resolution runs fresh every build because it
// depends on which files currently exist, not on the importer's content.
type Builder struct {
	cache     ports.Cache
	hasher    ports.Hasher
	extractor ports.SpecifierExtractor
	resolver  ports.ImportResolver
	log       ports.Logger
}

// NewBuilder creates a new Builder.
func NewBuilder(
	cache ports.Cache,
	hasher ports.Hasher,
	extractor ports.SpecifierExtractor,
	resolver ports.ImportResolver,
	log ports.Logger,
) *Builder {
	return &Builder{
		cache:     cache,
		hasher:    hasher,
		extractor: extractor,
		resolver:  resolver,
		log:       log,
	}
}

// Build reads every file, extracts and resolves its import specifiers, and
// returns the forward graph plus the files that could not be read. A read
// failure contributes a node with zero edges, never an aborted build; the
// caller decides whether a failed file matters (it does when it is the
// change target).
//
// Edges only connect files inside the scanned set. Specifiers resolving to
// external packages, unresolvable paths, or files outside the scanned roots
// are dropped.
func (b *Builder) Build(ctx context.Context, cfg *domain.Config, files []domain.SourceFile) (*domain.ForwardGraph, map[string]error) {
	scanned := make(map[string]struct{}, len(files))
	for _, f := range files {
		scanned[f.Path] = struct{}{}
	}

	forward := domain.NewForwardGraph()
	failed := make(map[string]error)
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, f := range files {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			edges, err := b.fileEdges(cfg, f.Path, scanned)

			mu.Lock()
			defer mu.Unlock()
			forward.AddNode(f.Path)
			if err != nil {
				failed[f.Path] = err
				return nil
			}
			for _, edge := range edges {
				forward.AddEdge(f.Path, edge)
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors, failures degrade to zero edges

	if len(failed) > 0 {
		b.log.Debug(fmt.Sprintf("graph build: %d of %d files unreadable", len(failed), len(files)))
	}

	return forward, failed
}

// fileEdges returns the resolved, deduplicated in-set imports of one file.
func (b *Builder) fileEdges(cfg *domain.Config, path string, scanned map[string]struct{}) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the scanner
	if err != nil {
		return nil, err
	}

	specs := b.cachedSpecifiers(path, data, cfg.FileTTL)

	var edges []string
	seen := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		resolved, ok := b.resolver.Resolve(cfg, path, spec)
		if !ok {
			continue
		}
		if _, inSet := scanned[resolved]; !inSet {
			continue
		}
		if _, dup := seen[resolved]; dup {
			continue
		}
		seen[resolved] = struct{}{}
		edges = append(edges, resolved)
	}
	return edges, nil
}

// cachedSpecifiers extracts raw specifiers, consulting the cache keyed by
// the file's content hash. A cached value of the wrong shape counts as
// corruption and is treated as a miss.
func (b *Builder) cachedSpecifiers(path string, data []byte, ttl time.Duration) []string {
	hash := b.hasher.Sum(data)

	if v, ok := b.cache.GetFile(path, hash); ok {
		if specs, valid := v.([]string); valid {
			return specs
		}
	}

	specs := b.extractor.Extract(data)
	b.cache.SetFile(path, specs, hash, ttl)
	return specs
}
