package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pymk-dev/pymk/internal/adapters/fs"
	"github.com/pymk-dev/pymk/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProber_Probe(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "requirements.txt")
	require.NoError(t, os.WriteFile(file, []byte("requests\n"), 0o644))
	sub := filepath.Join(dir, "tests")
	require.NoError(t, os.Mkdir(sub, 0o755))

	tests := []struct {
		name string
		pre  domain.Precondition
		want domain.Presence
	}{
		{
			name: "existing file",
			pre:  domain.Precondition{Kind: domain.KindFile, Path: file},
			want: domain.PresencePresent,
		},
		{
			name: "existing dir",
			pre:  domain.Precondition{Kind: domain.KindDir, Path: sub},
			want: domain.PresencePresent,
		},
		{
			name: "missing path",
			pre:  domain.Precondition{Kind: domain.KindFile, Path: filepath.Join(dir, "nope")},
			want: domain.PresenceAbsent,
		},
		{
			name: "dir where file expected",
			pre:  domain.Precondition{Kind: domain.KindFile, Path: sub},
			want: domain.PresenceAbsent,
		},
		{
			name: "file where dir expected",
			pre:  domain.Precondition{Kind: domain.KindDir, Path: file},
			want: domain.PresenceAbsent,
		},
	}

	p := fs.NewProber()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Probe(&tt.pre)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProber_Probe_StatError(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	// Using a regular file as a path component forces a stat error that is
	// not ErrNotExist on every platform.
	p := fs.NewProber()
	got, err := p.Probe(&domain.Precondition{
		Kind: domain.KindFile,
		Path: filepath.Join(file, "child"),
	})
	require.Error(t, err)
	assert.Equal(t, domain.PresenceError, got)
}
