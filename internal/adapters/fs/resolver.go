package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.lancet.dev/lancet/internal/core/domain"
	"go.lancet.dev/lancet/internal/core/ports"
)

var _ ports.ImportResolver = (*Resolver)(nil)

// Resolver maps raw import specifiers to files on disk. External package
// specifiers are out of scope of the graph and always miss.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve turns specifier, as found in sourceFile, into a concrete path.
// Alias prefixes are substituted first, then relative specifiers resolve
// against sourceFile's directory. For the resulting base path the probe
// order is: the exact path, the path plus each configured extension, then
// an index file per extension. The first existing regular file wins.
func (r *Resolver) Resolve(cfg *domain.Config, sourceFile, specifier string) (string, bool) {
	base, ok := r.basePath(cfg, sourceFile, specifier)
	if !ok {
		return "", false
	}

	if isRegularFile(base) {
		return filepath.Clean(base), true
	}
	for _, ext := range cfg.Extensions {
		if candidate := base + ext; isRegularFile(candidate) {
			return filepath.Clean(candidate), true
		}
	}
	for _, ext := range cfg.Extensions {
		if candidate := filepath.Join(base, "index"+ext); isRegularFile(candidate) {
			return filepath.Clean(candidate), true
		}
	}

	return "", false
}

// basePath applies alias substitution or relative resolution. Bare package
// specifiers (no alias, no leading dot) have no base path.
func (r *Resolver) basePath(cfg *domain.Config, sourceFile, specifier string) (string, bool) {
	// Longest alias prefix wins so "@app/" beats "@".
	prefixes := make([]string, 0, len(cfg.Aliases))
	for prefix := range cfg.Aliases {
		prefixes = append(prefixes, prefix)
	}
	sort.Slice(prefixes, func(i, j int) bool { return len(prefixes[i]) > len(prefixes[j]) })

	for _, prefix := range prefixes {
		if strings.HasPrefix(specifier, prefix) {
			return filepath.Join(cfg.Aliases[prefix], specifier[len(prefix):]), true
		}
	}

	if strings.HasPrefix(specifier, ".") {
		return filepath.Join(filepath.Dir(sourceFile), specifier), true
	}

	return "", false
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
