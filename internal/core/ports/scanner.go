// Package ports defines the interfaces between the engine core and its adapters.
package ports

import (
	"context"

	"go.lancet.dev/lancet/internal/core/domain"
)

// Scanner discovers candidate source files under the configured roots.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type Scanner interface {
	// Scan walks every root in cfg and returns the candidate files.
	// Traversal errors are never fatal; an unreadable subtree is treated
	// as empty.
	Scan(ctx context.Context, cfg *domain.Config) []domain.SourceFile
}
