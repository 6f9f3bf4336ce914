package telemetry

import (
	"io"

	"github.com/vito/progrock"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder. Writes
// land on the vertex's tape buffers and on the user-facing writers.
type Vertex struct {
	vertex *progrock.VertexRecorder
	out    io.Writer
	errOut io.Writer
}

// Stdout returns the writer capturing standard output.
func (v *Vertex) Stdout() io.Writer {
	return io.MultiWriter(v.vertex.Stdout(), v.out)
}

// Stderr returns the writer capturing error output.
func (v *Vertex) Stderr() io.Writer {
	return io.MultiWriter(v.vertex.Stderr(), v.errOut)
}

// Complete marks the vertex as finished.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}
