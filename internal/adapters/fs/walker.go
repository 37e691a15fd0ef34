// Package fs provides file system adapters for reading and discovering source units.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/promptx/internal/core/domain"
)

// skipDirs are never descended into while discovering source units.
var skipDirs = []string{".git", ".jj", "node_modules", domain.CacheDirName}

// Walker discovers source units below a root directory.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkSources yields the path of every source unit below root, skipping
// version control, dependency and cache directories. Paths start with root.
// A root that is itself a source unit is yielded as is.
func (w *Walker) WalkSources(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && w.shouldSkipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if !domain.IsPromptFile(path) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// WalkCacheDirs yields every artifact cache directory below root without
// descending into it. Cache directories are found even when their source
// units were removed.
func (w *Walker) WalkCacheDirs(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}
			if d.Name() == domain.CacheDirName {
				if !yield(path) {
					return filepath.SkipAll
				}
				return filepath.SkipDir
			}
			if path != root && w.shouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		})
	}
}

// Collect returns every source unit found below each root, in walk order.
func (w *Walker) Collect(roots ...string) []string {
	var paths []string
	for _, root := range roots {
		for path := range w.WalkSources(root) {
			paths = append(paths, path)
		}
	}
	return paths
}

func (w *Walker) shouldSkipDir(name string) bool {
	for _, skip := range skipDirs {
		if matched, _ := filepath.Match(skip, name); matched {
			return true
		}
	}
	return false
}
