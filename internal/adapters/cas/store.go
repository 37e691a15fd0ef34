// Package cas implements the content-addressed artifact store.
package cas

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/promptx/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactStore = (*Store)(nil)

// Store implements ports.ArtifactStore with one file per artifact, colocated
// with the source units in a per-directory cache.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// EnsureDirectory creates cacheDir if it does not exist.
func (s *Store) EnsureDirectory(cacheDir string) error {
	if err := os.MkdirAll(cacheDir, domain.DirPerm); err != nil {
		return zerr.With(domain.Classify(domain.ErrCacheDirCreateFailed, err), "dir", cacheDir)
	}
	return nil
}

// Lookup reads the artifact at artifactPath. A missing artifact is reported as
// found == false with a nil error.
func (s *Store) Lookup(artifactPath string) (string, bool, error) {
	//nolint:gosec // Path is derived from the source path and checksum
	data, err := os.ReadFile(artifactPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, zerr.With(domain.Classify(domain.ErrCacheReadFailed, err), "path", artifactPath)
	}
	return string(data), true, nil
}

// Write stores content at artifactPath. The content is written to a temporary
// file in the same directory and renamed into place, so readers observe either
// no artifact or the complete one.
func (s *Store) Write(artifactPath, content string) error {
	if err := s.atomicWriteFile(artifactPath, []byte(content)); err != nil {
		return zerr.With(domain.Classify(domain.ErrCacheWriteFailed, err), "path", artifactPath)
	}
	return nil
}

func (s *Store) atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, domain.TempPattern())
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

// EvictStale removes every artifact in cacheDir produced for sourceBase except
// keepPath. It returns the removed paths. Removal continues past individual
// failures, which are joined into the returned error.
func (s *Store) EvictStale(cacheDir, sourceBase, keepPath string) ([]string, error) {
	entries, err := os.ReadDir(cacheDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(domain.Classify(domain.ErrCacheListFailed, err), "dir", cacheDir)
	}

	keep := filepath.Clean(keepPath)

	var removed []string
	var errs error
	for _, entry := range entries {
		if !domain.BelongsTo(entry.Name(), sourceBase) {
			continue
		}

		path := filepath.Join(cacheDir, entry.Name())
		if path == keep {
			continue
		}

		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = errors.Join(errs, zerr.With(domain.Classify(domain.ErrCacheEvictFailed, err), "path", path))
			continue
		}
		removed = append(removed, path)
	}

	return removed, errs
}

// List returns the artifacts stored in cacheDir, sorted by source basename.
// Temporary files and unrelated files are skipped. Content is not loaded.
func (s *Store) List(cacheDir string) ([]domain.CacheEntry, error) {
	entries, err := os.ReadDir(cacheDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(domain.Classify(domain.ErrCacheListFailed, err), "dir", cacheDir)
	}

	result := make([]domain.CacheEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		checksum, base, ext, ok := domain.ParseArtifactName(entry.Name())
		if !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			continue
		}

		result = append(result, domain.CacheEntry{
			Path:       filepath.Join(cacheDir, entry.Name()),
			Checksum:   checksum,
			SourceBase: base,
			Ext:        ext,
			Size:       info.Size(),
			CreatedAt:  info.ModTime(),
		})
	}

	slices.SortFunc(result, func(a, b domain.CacheEntry) int {
		if c := strings.Compare(a.SourceBase, b.SourceBase); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return result, nil
}

// Purge removes cacheDir and everything in it.
func (s *Store) Purge(cacheDir string) error {
	if err := os.RemoveAll(cacheDir); err != nil {
		return zerr.With(domain.Classify(domain.ErrCachePurgeFailed, err), "dir", cacheDir)
	}
	return nil
}
