// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/promptx/internal/core/domain"

// ArtifactStore defines the directory-scoped operations on cached artifacts.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ArtifactStore interface {
	// EnsureDirectory creates the cache directory if it does not exist.
	EnsureDirectory(cacheDir string) error

	// Lookup reads the artifact at artifactPath.
	// A missing artifact is reported as hit == false with a nil error.
	Lookup(artifactPath string) (content string, hit bool, err error)

	// Write stores content at artifactPath. Readers never observe a partial file.
	Write(artifactPath, content string) error

	// EvictStale removes every artifact of sourceBase in cacheDir except keepPath.
	// It returns the removed paths. Individual removal failures are logged, not returned.
	EvictStale(cacheDir, sourceBase, keepPath string) ([]string, error)

	// List returns the artifacts stored in cacheDir without their content.
	List(cacheDir string) ([]domain.CacheEntry, error)

	// Purge removes cacheDir and everything in it.
	Purge(cacheDir string) error
}
