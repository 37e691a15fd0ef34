package ports

import "go.trai.ch/promptx/internal/core/domain"

// ConfigLoader defines the interface for loading the promptx configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers promptx.yaml from cwd upwards and returns the resolved configuration.
	Load(cwd string) (domain.Config, error)

	// LoadFile reads the configuration from an explicit path.
	LoadFile(path string) (domain.Config, error)
}
