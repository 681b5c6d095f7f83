package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.txt"))
	writeFile(t, filepath.Join(dir, "a.txt"))
	writeFile(t, filepath.Join(dir, "nested", "c.txt"))
	writeFile(t, filepath.Join(dir, "case.html"))
	writeFile(t, filepath.Join(dir, "notes.md"))

	files, err := CollectFiles(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "case.html"),
		filepath.Join(dir, "nested", "c.txt"),
	}, files)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sgca", "one.txt"))
	writeFile(t, filepath.Join(dir, "sgca", "two.txt"))
	writeFile(t, filepath.Join(dir, "uksc", "three.html"))
	writeFile(t, filepath.Join(dir, "uksc", "skip.json"))

	t.Run("recursive glob", func(t *testing.T) {
		files, err := Discover([]string{filepath.Join(dir, "**", "*.txt")})
		require.NoError(t, err)
		assert.Len(t, files, 2)
	})

	t.Run("plain directory walks recursively", func(t *testing.T) {
		files, err := Discover([]string{dir})
		require.NoError(t, err)
		assert.Len(t, files, 3)
	})

	t.Run("non-judgment extensions filtered", func(t *testing.T) {
		files, err := Discover([]string{filepath.Join(dir, "uksc", "*")})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "uksc", "three.html")}, files)
	})

	t.Run("duplicates across patterns removed", func(t *testing.T) {
		files, err := Discover([]string{
			filepath.Join(dir, "sgca", "*.txt"),
			filepath.Join(dir, "sgca"),
		})
		require.NoError(t, err)
		assert.Len(t, files, 2)
	})
}
