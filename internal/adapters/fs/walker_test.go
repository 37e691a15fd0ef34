package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/promptx/internal/adapters/fs"
)

func TestWalker_WalkSources(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "components", "forms"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "App.tsx"), []byte("app"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "components", "Counter.promptx"), []byte("c"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "components", "forms", "contact-form.promptx"), []byte("f"), 0o600))

	files := fs.NewWalker().Collect(tmpDir)

	assert.ElementsMatch(t, []string{
		filepath.Join(tmpDir, "components", "Counter.promptx"),
		filepath.Join(tmpDir, "components", "forms", "contact-form.promptx"),
	}, files)
}

func TestWalker_WalkSources_SkipsIgnoredDirs(t *testing.T) {
	tmpDir := t.TempDir()

	for _, dir := range []string{".git", ".jj", "node_modules", ".cache", "src"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, dir), 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, dir, "Counter.promptx"), []byte("c"), 0o600))
	}

	files := fs.NewWalker().Collect(tmpDir)

	assert.Equal(t, []string{filepath.Join(tmpDir, "src", "Counter.promptx")}, files)
}

func TestWalker_WalkSources_FileRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Counter.promptx")
	require.NoError(t, os.WriteFile(path, []byte("c"), 0o600))

	assert.Equal(t, []string{path}, fs.NewWalker().Collect(path))
}

func TestWalker_WalkSources_StopsEarly(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"A.promptx", "B.promptx", "C.promptx"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte(name), 0o600))
	}

	count := 0
	for range fs.NewWalker().WalkSources(tmpDir) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestWalker_WalkCacheDirs(t *testing.T) {
	tmpDir := t.TempDir()

	for _, dir := range []string{
		filepath.Join("src", ".cache", ".cache"),
		filepath.Join("orphaned", ".cache"),
		filepath.Join("node_modules", "pkg", ".cache"),
		filepath.Join("empty"),
	} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, dir), 0o750))
	}

	var dirs []string
	for dir := range fs.NewWalker().WalkCacheDirs(tmpDir) {
		dirs = append(dirs, dir)
	}

	assert.ElementsMatch(t, []string{
		filepath.Join(tmpDir, "src", ".cache"),
		filepath.Join(tmpDir, "orphaned", ".cache"),
	}, dirs)
}
