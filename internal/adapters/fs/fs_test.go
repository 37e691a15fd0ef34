package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/promptx/internal/adapters/fs"
	"go.trai.ch/promptx/internal/core/domain"
)

func TestReader_Read(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "Counter.promptx")
	require.NoError(t, os.WriteFile(path, []byte("A counter button"), 0o600))

	reader := fs.NewReader()

	src, err := reader.Read(path)
	require.NoError(t, err)
	assert.Equal(t, path, src.Path)
	assert.Equal(t, []byte("A counter button"), src.Content)
	assert.True(t, reader.Exists(path))
}

func TestReader_ReadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Missing.promptx")
	reader := fs.NewReader()

	_, err := reader.Read(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceUnreadable)
	assert.False(t, reader.Exists(path))
}

func TestReader_ExistsRejectsDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Dir.promptx")
	require.NoError(t, os.Mkdir(dir, 0o750))

	assert.False(t, fs.NewReader().Exists(dir))
}
