package fs

import (
	"os"

	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/promptx/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceReader = (*Reader)(nil)

// Reader reads source units from disk.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read returns the current content of the source unit at path.
func (r *Reader) Read(path string) (domain.SourceUnit, error) {
	//nolint:gosec // Path is supplied by the host build tool
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.SourceUnit{}, zerr.With(domain.Classify(domain.ErrSourceUnreadable, err), "path", path)
	}
	return domain.SourceUnit{Path: path, Content: data}, nil
}

// Exists reports whether path names an existing regular file.
func (r *Reader) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
