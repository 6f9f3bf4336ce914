// Package telemetry records per-task progress using progrock.
package telemetry

import (
	"context"
	"io"
	"os"

	"github.com/opencontainers/go-digest"
	"github.com/pymk-dev/pymk/internal/core/ports"
	"github.com/vito/progrock"
)

// Recorder implements ports.Telemetry on a progrock recorder. Every task
// becomes a vertex on the tape; step output is streamed into the vertex's
// stdout/stderr buffers and mirrored to the user-facing writers, so a
// failing pip or pytest run stays visible on the terminal.
type Recorder struct {
	w      progrock.Writer
	rec    *progrock.Recorder
	out    io.Writer
	errOut io.Writer
}

// New creates a Recorder backed by a fresh tape, mirroring step output to
// the process's stdout and stderr.
func New() *Recorder {
	return NewRecorder(progrock.NewTape(), os.Stdout, os.Stderr)
}

// NewRecorder creates a Recorder writing to w and mirroring step output to
// out and errOut.
func NewRecorder(w progrock.Writer, out, errOut io.Writer) *Recorder {
	return &Recorder{
		w:      w,
		rec:    progrock.NewRecorder(w),
		out:    out,
		errOut: errOut,
	}
}

// Record opens a vertex for the named task.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	return ctx, &Vertex{vertex: v, out: r.out, errOut: r.errOut}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
