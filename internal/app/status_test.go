package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/promptx/internal/app"
	"go.trai.ch/promptx/internal/core/domain"
)

func TestStatus(t *testing.T) {
	f := newFixture(t)
	fresh := f.write(t, "Fresh.promptx", "v1")
	stale := f.write(t, "Stale.promptx", "v1")
	missing := f.write(t, "Missing.promptx", "v1")
	a := f.app()

	require.NoError(t, a.Build(context.Background(), []string{fresh, stale}, app.BuildOptions{}))
	require.NoError(t, os.WriteFile(stale, []byte("v2"), 0o600))

	orphanSource := f.write(t, "Gone.promptx", "v1")
	require.NoError(t, a.Build(context.Background(), []string{orphanSource}, app.BuildOptions{}))
	require.NoError(t, os.Remove(orphanSource))

	var out bytes.Buffer
	entries, err := a.Status(context.Background(), f.dir, &out)
	require.NoError(t, err)

	assert.Equal(t, []app.StatusEntry{
		{Path: artifactFor(orphanSource, "v1"), Status: app.StatusOrphaned},
		{Path: fresh, Status: app.StatusFresh},
		{Path: missing, Status: app.StatusMissing},
		{Path: stale, Status: app.StatusStale},
	}, entries)
	assert.Contains(t, out.String(), "fresh")
	assert.Contains(t, out.String(), fresh)
	assert.Contains(t, out.String(), "orphaned")
}

func TestClean(t *testing.T) {
	f := newFixture(t)
	f.write(t, "Counter.promptx", "a")
	f.write(t, filepath.Join("nested", "Card.promptx"), "b")
	a := f.app()

	require.NoError(t, a.Build(context.Background(), []string{f.dir}, app.BuildOptions{}))
	require.DirExists(t, filepath.Join(f.dir, domain.CacheDirName))
	require.DirExists(t, filepath.Join(f.dir, "nested", domain.CacheDirName))

	require.NoError(t, a.Clean(context.Background(), f.dir))
	assert.NoDirExists(t, filepath.Join(f.dir, domain.CacheDirName))
	assert.NoDirExists(t, filepath.Join(f.dir, "nested", domain.CacheDirName))
	assert.Contains(t, f.infos, "removed "+filepath.Join(f.dir, "nested", domain.CacheDirName))
	assert.FileExists(t, filepath.Join(f.dir, "Counter.promptx"))
}
