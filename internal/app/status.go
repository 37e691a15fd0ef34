package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/promptx/internal/adapters/checksum"
	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/promptx/internal/ui/style"
	"go.trai.ch/zerr"
)

// UnitStatus is the cache state of a source unit or an orphaned artifact.
type UnitStatus string

const (
	// StatusFresh means an artifact for the current source content exists.
	StatusFresh UnitStatus = "fresh"
	// StatusStale means only artifacts for older content exist.
	StatusStale UnitStatus = "stale"
	// StatusMissing means no artifact exists for the source unit.
	StatusMissing UnitStatus = "missing"
	// StatusUnreadable means the source unit could not be read.
	StatusUnreadable UnitStatus = "unreadable"
	// StatusOrphaned means the artifact's source unit no longer exists.
	StatusOrphaned UnitStatus = "orphaned"
)

// StatusEntry is one line of a status report.
type StatusEntry struct {
	Path   string
	Status UnitStatus
}

// Status reports the cache state of every source unit below dir and every
// artifact whose source unit was removed.
func (a *App) Status(ctx context.Context, dir string, w io.Writer) ([]StatusEntry, error) {
	if dir == "" {
		dir = "."
	}

	cfg, err := a.loadConfig(dir)
	if err != nil {
		return nil, err
	}
	sum, err := checksum.New(cfg.Checksum)
	if err != nil {
		return nil, err
	}

	var entries []StatusEntry
	for path := range a.walker.WalkSources(dir) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		src, err := a.reader.Read(path)
		if err != nil {
			entries = append(entries, StatusEntry{Path: path, Status: StatusUnreadable})
			continue
		}

		artifact := domain.ArtifactPath(path, sum.Checksum(src.Content), cfg.ArtifactExt)
		cached, err := a.store.List(filepath.Dir(artifact))
		if err != nil {
			return nil, err
		}

		status := StatusMissing
		for _, entry := range cached {
			if entry.SourceBase != src.Base() {
				continue
			}
			if entry.Path == artifact {
				status = StatusFresh
				break
			}
			status = StatusStale
		}
		entries = append(entries, StatusEntry{Path: path, Status: status})
	}

	for cacheDir := range a.walker.WalkCacheDirs(dir) {
		cached, err := a.store.List(cacheDir)
		if err != nil {
			return nil, err
		}
		for _, entry := range cached {
			source := filepath.Join(filepath.Dir(cacheDir), entry.SourceBase)
			if !a.reader.Exists(source) {
				entries = append(entries, StatusEntry{Path: entry.Path, Status: StatusOrphaned})
			}
		}
	}

	slices.SortStableFunc(entries, func(x, y StatusEntry) int { return strings.Compare(x.Path, y.Path) })

	if w != nil {
		if err := renderStatus(w, entries); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func renderStatus(w io.Writer, entries []StatusEntry) error {
	var b strings.Builder
	for _, entry := range entries {
		marker := style.Failed
		switch entry.Status {
		case StatusFresh:
			marker = style.Generated
		case StatusStale:
			marker = style.Changed
		case StatusMissing:
			marker = style.Absent
		case StatusOrphaned:
			marker = style.Attention
		}
		fmt.Fprintf(&b, "%s %-10s %s\n", marker, entry.Status, entry.Path)
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return zerr.Wrap(err, "failed to write status")
	}
	return nil
}

// Clean removes every artifact cache directory below dir.
func (a *App) Clean(ctx context.Context, dir string) error {
	if dir == "" {
		dir = "."
	}

	var dirs []string
	for cacheDir := range a.walker.WalkCacheDirs(dir) {
		dirs = append(dirs, cacheDir)
	}

	for _, cacheDir := range dirs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.store.Purge(cacheDir); err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("removed %s", cacheDir))
	}
	return nil
}
