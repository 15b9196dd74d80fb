package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/packlint/internal/adapters/fs"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestScanner_Exists(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"))

	s := fs.NewScanner()
	assert.True(t, s.Exists(filepath.Join(dir, "a.txt")))
	assert.True(t, s.Exists(dir))
	assert.False(t, s.Exists(filepath.Join(dir, "missing.txt")))
}

func TestScanner_IsDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"))

	s := fs.NewScanner()
	assert.True(t, s.IsDirectory(dir))
	assert.False(t, s.IsDirectory(filepath.Join(dir, "a.txt")))
	assert.False(t, s.IsDirectory(filepath.Join(dir, "missing")))
}

func TestScanner_IsEmptyDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "empty"), 0o755))
	writeFile(t, filepath.Join(dir, "full", "a.txt"))

	s := fs.NewScanner()
	assert.True(t, s.IsEmptyDir(filepath.Join(dir, "empty")))
	assert.False(t, s.IsEmptyDir(filepath.Join(dir, "full")))
	assert.False(t, s.IsEmptyDir(filepath.Join(dir, "missing")))
}

func TestScanner_FilesRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "include", "zlib.h"))
	writeFile(t, filepath.Join(dir, "lib", "zlib.lib"))
	writeFile(t, filepath.Join(dir, "a.txt"))

	s := fs.NewScanner()
	got := s.FilesRecursive(dir)

	want := []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "include"),
		filepath.Join(dir, "include", "zlib.h"),
		filepath.Join(dir, "lib"),
		filepath.Join(dir, "lib", "zlib.lib"),
	}
	assert.Equal(t, want, got)
}

func TestScanner_FilesRecursive_MissingDir(t *testing.T) {
	s := fs.NewScanner()
	assert.Empty(t, s.FilesRecursive(filepath.Join(t.TempDir(), "missing")))
}

func TestScanner_FilesNonRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.lib"))
	writeFile(t, filepath.Join(dir, "a.lib"))
	writeFile(t, filepath.Join(dir, "sub", "c.lib"))

	s := fs.NewScanner()
	got := s.FilesNonRecursive(dir)

	want := []string{
		filepath.Join(dir, "a.lib"),
		filepath.Join(dir, "b.lib"),
		filepath.Join(dir, "sub"),
	}
	assert.Equal(t, want, got)

	assert.Empty(t, s.FilesNonRecursive(filepath.Join(dir, "missing")))
}
