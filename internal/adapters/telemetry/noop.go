package telemetry

import (
	"context"
	"io"

	"github.com/pymk-dev/pymk/internal/core/ports"
)

// NoopTelemetry is a no-op implementation of ports.Telemetry.
type NoopTelemetry struct{}

// NewNoop creates a new NoopTelemetry.
func NewNoop() *NoopTelemetry {
	return &NoopTelemetry{}
}

// Record returns a vertex that discards everything.
func (t *NoopTelemetry) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &NoopVertex{}
}

// Close does nothing.
func (t *NoopTelemetry) Close() error { return nil }

// NoopVertex discards all writes.
type NoopVertex struct{}

// Stdout returns a discarding writer.
func (v *NoopVertex) Stdout() io.Writer { return io.Discard }

// Stderr returns a discarding writer.
func (v *NoopVertex) Stderr() io.Writer { return io.Discard }

// Complete does nothing.
func (v *NoopVertex) Complete(error) {}
