package ports

import "go.trai.ch/promptx/internal/core/domain"

// SourceReader reads source units from disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type SourceReader interface {
	// Read returns the current content of the source unit at path.
	Read(path string) (domain.SourceUnit, error)

	// Exists reports whether a source unit exists at path.
	Exists(path string) bool
}
