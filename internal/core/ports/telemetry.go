package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records per-task progress.
type Telemetry interface {
	// Record opens a vertex for the named task.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer capturing the task's standard output.
	Stdout() io.Writer
	// Stderr returns a writer capturing the task's error output.
	Stderr() io.Writer
	// Complete marks the vertex as finished, with err nil on success.
	Complete(err error)
}
