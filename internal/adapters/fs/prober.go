// Package fs provides the filesystem precondition prober.
package fs

import (
	"errors"
	"io/fs"
	"os"

	"github.com/pymk-dev/pymk/internal/core/domain"
	"go.trai.ch/zerr"
)

// Prober implements ports.Prober against the real filesystem.
type Prober struct{}

// NewProber creates a new Prober.
func NewProber() *Prober {
	return &Prober{}
}

// Probe stats the precondition path. A path of the wrong kind (a file
// where a directory is expected, or the reverse) counts as absent, not as
// an error: the caller treats absence as "skip", which is the right
// behavior for a stale placeholder.
func (p *Prober) Probe(pre *domain.Precondition) (domain.Presence, error) {
	info, err := os.Stat(pre.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.PresenceAbsent, nil
	}
	if err != nil {
		return domain.PresenceError, zerr.With(zerr.Wrap(err, "failed to probe path"), "path", pre.Path)
	}

	switch pre.Kind {
	case domain.KindDir:
		if !info.IsDir() {
			return domain.PresenceAbsent, nil
		}
	case domain.KindFile:
		if info.IsDir() {
			return domain.PresenceAbsent, nil
		}
	}
	return domain.PresencePresent, nil
}
