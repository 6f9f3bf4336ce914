package ports

import "github.com/pymk-dev/pymk/internal/core/domain"

// ConfigLoader loads the project configuration and builds the task graph.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory and
	// returns the resolved settings together with a validated task graph.
	Load(cwd string) (*domain.Project, error)
}
