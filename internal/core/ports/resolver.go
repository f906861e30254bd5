package ports

import "go.lancet.dev/lancet/internal/core/domain"

// ImportResolver maps a raw import specifier found in a source file to a
// concrete file on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ImportResolver interface {
	// Resolve returns the resolved path and true on success. Bare package
	// specifiers and broken imports return "", false; a miss is a normal
	// outcome, not an error.
	Resolve(cfg *domain.Config, sourceFile, specifier string) (string, bool)
}
