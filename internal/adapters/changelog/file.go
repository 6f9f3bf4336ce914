// Package changelog implements the append-only changelog file adapter.
package changelog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// File implements ports.Changelog backed by a plain text file. Lines are
// appended with O_APPEND and the file is never truncated or parsed back.
// Concurrent invocations may interleave appends; the tool assumes one
// invocation at a time and takes no lock.
type File struct {
	path  string
	runID string
	now   func() time.Time
}

// NewFile creates a changelog writing to the file at path. Each line is
// stamped with the invocation ID so appends from separate runs of the tool
// remain attributable in the shared file.
func NewFile(path string) *File {
	return &File{
		path:  filepath.Clean(path),
		runID: newRunID(),
		now:   time.Now,
	}
}

// newRunID derives a short per-invocation identifier from the process ID
// and start time.
func newRunID() string {
	h := xxhash.New()
	_, _ = fmt.Fprintf(h, "%d/%d", os.Getpid(), time.Now().UnixNano())
	return fmt.Sprintf("%08x", h.Sum64()&0xffffffff)
}

// Append writes one line to the changelog, creating the file if needed.
// The file is opened per append so a run that never logs leaves no file
// behind.
func (f *File) Append(line string) error {
	//nolint:gosec // path comes from the loaded configuration
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open changelog"), "path", f.path)
	}
	stamp := f.now().UTC().Format(time.RFC3339)
	if _, err := fmt.Fprintf(file, "%s [%s] %s\n", stamp, f.runID, line); err != nil {
		_ = file.Close()
		return zerr.With(zerr.Wrap(err, "failed to append changelog"), "path", f.path)
	}
	if err := file.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close changelog"), "path", f.path)
	}
	return nil
}
