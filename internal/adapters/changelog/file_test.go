package changelog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pymk-dev/pymk/internal/adapters/changelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_Append_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "changelog.txt")
	f := changelog.NewFile(path)

	require.NoError(t, f.Append("ran setup"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], "ran setup"), "line %q", lines[0])
}

func TestFile_Append_AppendsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "changelog.txt")

	require.NoError(t, changelog.NewFile(path).Append("ran A"))
	require.NoError(t, changelog.NewFile(path).Append("ran B"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "ran A"))
	assert.True(t, strings.HasSuffix(lines[1], "ran B"))
}

func TestFile_Append_LineFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "changelog.txt")
	f := changelog.NewFile(path)

	require.NoError(t, f.Append("installed dependencies"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimRight(string(data), "\n")

	// <RFC3339 stamp> [<run id>] <message>
	fields := strings.SplitN(line, " ", 3)
	require.Len(t, fields, 3)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`, fields[0])
	assert.Regexp(t, `^\[[0-9a-f]{8}\]$`, fields[1])
	assert.Equal(t, "installed dependencies", fields[2])
}

func TestFile_Append_SharedRunID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "changelog.txt")
	f := changelog.NewFile(path)

	require.NoError(t, f.Append("ran A"))
	require.NoError(t, f.Append("ran B"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)

	id := func(line string) string { return strings.SplitN(line, " ", 3)[1] }
	assert.Equal(t, id(lines[0]), id(lines[1]))
}

func TestFile_Append_OpenFailure(t *testing.T) {
	// The parent directory does not exist, so the open must fail.
	path := filepath.Join(t.TempDir(), "missing", "changelog.txt")
	f := changelog.NewFile(path)

	err := f.Append("ran setup")
	require.Error(t, err)
}

func TestFile_NoFileWithoutAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "changelog.txt")
	_ = changelog.NewFile(path)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
