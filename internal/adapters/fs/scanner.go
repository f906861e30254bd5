// Package fs provides file system adapters for scanning, resolving, and hashing source files.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.lancet.dev/lancet/internal/core/domain"
	"go.lancet.dev/lancet/internal/core/ports"
)

var _ ports.Scanner = (*Scanner)(nil)

// Scanner discovers candidate source files under the configured roots.
// The walk uses an explicit queue rather than recursion so deeply nested
// trees cannot exhaust the call stack.
type Scanner struct {
	log ports.Logger
}

// NewScanner creates a new Scanner.
func NewScanner(log ports.Logger) *Scanner {
	return &Scanner{log: log}
}

// Scan walks every configured root breadth-first and returns the files
// whose extension is in cfg.Extensions. Unreadable directories are skipped;
// a scan never fails because of one inaccessible subtree. The result is
// capped at cfg.MaxFiles.
func (s *Scanner) Scan(ctx context.Context, cfg *domain.Config) []domain.SourceFile {
	queue := make([]string, 0, len(cfg.Roots))
	for _, root := range cfg.Roots {
		queue = append(queue, filepath.Clean(root))
	}

	var files []domain.SourceFile
	for len(queue) > 0 {
		if ctx.Err() != nil {
			break
		}

		dir := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(dir)
		if err != nil {
			s.log.Debug(fmt.Sprintf("skipping unreadable directory %s: %v", dir, err))
			continue
		}

		for _, entry := range entries {
			name := entry.Name()

			if entry.IsDir() {
				if s.excluded(cfg, name) {
					continue
				}
				queue = append(queue, filepath.Join(dir, name))
				continue
			}

			ext := filepath.Ext(name)
			if !extensionWanted(cfg, ext) {
				continue
			}

			info, err := entry.Info()
			if err != nil {
				// Raced with deletion, treat as absent.
				continue
			}

			files = append(files, domain.SourceFile{
				Path:    filepath.Join(dir, name),
				Ext:     ext,
				ModTime: info.ModTime(),
			})
			if cfg.MaxFiles > 0 && len(files) >= cfg.MaxFiles {
				s.log.Warn(fmt.Sprintf("scan stopped at max file cap (%d)", cfg.MaxFiles))
				return files
			}
		}
	}

	return files
}

func (s *Scanner) excluded(cfg *domain.Config, name string) bool {
	if _, ok := cfg.ExcludeDirs[name]; ok {
		return true
	}
	for _, prefix := range cfg.ExcludePrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func extensionWanted(cfg *domain.Config, ext string) bool {
	for _, want := range cfg.Extensions {
		if ext == want {
			return true
		}
	}
	return false
}
