package ports

import "go.lancet.dev/lancet/internal/core/domain"

// ConfigLoader loads the engine configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path, or the defaults when path does
	// not exist.
	Load(path string) (*domain.Config, error)
}
