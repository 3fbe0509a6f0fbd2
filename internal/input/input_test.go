package input

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	jobFile := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(jobFile, []byte("Required Skills: go\n"), 0o644))
	emptyFile := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(emptyFile, nil, 0o644))

	t.Run("file wins over value", func(t *testing.T) {
		text, err := Load(Source{Name: "job", Value: "inline", File: jobFile})
		require.NoError(t, err)
		assert.Equal(t, "Required Skills: go\n", text)
	})

	t.Run("inline value", func(t *testing.T) {
		text, err := Load(Source{Name: "job", Value: "  Min GPA: 3.0  "})
		require.NoError(t, err)
		assert.Equal(t, "  Min GPA: 3.0  ", text)
	})

	t.Run("empty file is valid", func(t *testing.T) {
		text, err := Load(Source{Name: "job", File: emptyFile})
		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("nothing configured", func(t *testing.T) {
		_, err := Load(Source{Name: "job"})
		assert.ErrorIs(t, err, ErrNotConfigured)
		assert.Contains(t, err.Error(), "job")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(Source{Name: "job", File: filepath.Join(dir, "nope.txt")})
		require.Error(t, err)

		var srcErr *SourceError
		require.True(t, errors.As(err, &srcErr))
		assert.Equal(t, "read", srcErr.Op)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestListResumes(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "notes.md", "c.TXT", "d.txt.bak"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.txt"), 0o755))

	paths, err := ListResumes(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}, paths)
}

func TestListResumesMissingDir(t *testing.T) {
	_, err := ListResumes(filepath.Join(t.TempDir(), "missing"))

	var srcErr *SourceError
	require.True(t, errors.As(err, &srcErr))
	assert.Equal(t, "list", srcErr.Op)
}
