// Package config provides the configuration loader for lancet.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.lancet.dev/lancet/internal/core/domain"
	"go.lancet.dev/lancet/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up when no path is given.
const DefaultFilename = "lancet.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	log ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{log: log}
}

// Load reads the configuration at path. An empty path selects
// DefaultFilename in the working directory; a missing file yields the
// defaults rooted at the working directory rather than an error.
func (l *Loader) Load(path string) (*domain.Config, error) {
	if path == "" {
		path = DefaultFilename
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.log.Debug("no config file found, using defaults")
			return Default(".")
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	return build(&f, filepath.Dir(path))
}

// Default returns the configuration used when no file exists, with baseDir
// as the single scan root.
func Default(baseDir string) (*domain.Config, error) {
	return build(&File{}, baseDir)
}

// build converts the DTO into a domain.Config, applying defaults and making
// every path absolute relative to baseDir.
func build(f *File, baseDir string) (*domain.Config, error) {
	baseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve config directory")
	}

	roots := f.Roots
	if len(roots) == 0 {
		roots = []string{"."}
	}
	absRoots := make([]string, len(roots))
	for i, root := range roots {
		absRoots[i] = absolutize(baseDir, root)
	}

	excludeDirs := f.Exclude.Dirs
	if excludeDirs == nil {
		excludeDirs = []string{"node_modules", "dist", "build", "coverage", "vendor", "out"}
	}
	excludeSet := make(map[string]struct{}, len(excludeDirs))
	for _, d := range excludeDirs {
		excludeSet[d] = struct{}{}
	}

	prefixes := f.Exclude.Prefixes
	if prefixes == nil {
		prefixes = []string{"."}
	}

	extensions := f.Extensions
	if len(extensions) == 0 {
		extensions = []string{".ts", ".tsx", ".js", ".jsx", ".mts", ".mjs", ".cts", ".cjs"}
	}

	aliases := make(map[string]string, len(f.Aliases))
	for prefix, dir := range f.Aliases {
		aliases[prefix] = absolutize(baseDir, dir)
	}

	triggers := f.Triggers
	if triggers == nil {
		triggers = []string{
			"package.json", "package-lock.json", "pnpm-lock.yaml", "yarn.lock",
			"tsconfig*.json", ".eslintrc*", "*.config.js", "*.config.ts",
			"*.config.mjs", ".env*",
		}
	}

	threshold := f.Policy.Threshold
	if threshold == 0 {
		threshold = 50
	}
	if threshold < 0 {
		return nil, zerr.With(domain.ErrInvalidThreshold, "threshold", threshold)
	}

	maxFiles := f.Scan.MaxFiles
	if maxFiles == 0 {
		maxFiles = 20000
	}

	genericTTL, err := parseTTL(f.Cache.GenericTTL, 30*time.Minute)
	if err != nil {
		return nil, err
	}
	fileTTL, err := parseTTL(f.Cache.FileTTL, 5*time.Minute)
	if err != nil {
		return nil, err
	}

	statePath := f.State
	if statePath != "" {
		statePath = absolutize(baseDir, statePath)
	}

	cfg := &domain.Config{
		Roots:           absRoots,
		ExcludeDirs:     excludeSet,
		ExcludePrefixes: prefixes,
		Extensions:      extensions,
		Aliases:         aliases,
		GlobalTriggers:  triggers,
		Threshold:       threshold,
		MaxFiles:        maxFiles,
		GenericTTL:      genericTTL,
		FileTTL:         fileTTL,
		StatePath:       statePath,
	}

	if len(cfg.Roots) == 0 {
		return nil, domain.ErrNoRoots
	}

	return cfg, nil
}

func parseTTL(raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "invalid cache TTL"), "ttl", raw)
	}
	return d, nil
}

func absolutize(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(baseDir, path)
}
