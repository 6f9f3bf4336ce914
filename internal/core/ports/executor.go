// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"github.com/pymk-dev/pymk/internal/core/domain"
)

// Executor runs a single step's external command.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the step's command in dir, streaming the command's
	// stdout and stderr line by line to the given writers. A step without
	// a command is a no-op. The returned error carries the subprocess
	// exit code in its metadata when one is available.
	Execute(ctx context.Context, dir string, step *domain.Step, stdout, stderr io.Writer) error
}
