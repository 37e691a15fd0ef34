package domain

import (
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// SourceUnit is a single prompt file as read for one pipeline invocation.
type SourceUnit struct {
	Path    string
	Content []byte
}

// Base returns the basename of the source unit, including its extension.
func (s SourceUnit) Base() string {
	return filepath.Base(s.Path)
}

// Name returns the component name derived from the source basename.
func (s SourceUnit) Name() string {
	return ComponentName(s.Path)
}

// ComponentName converts a source path such as "user-card.promptx" into "UserCard".
func ComponentName(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), SourceExt)

	var b strings.Builder
	for part := range strings.SplitSeq(stem, "-") {
		if part == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(part[size:])
	}
	return b.String()
}

// CacheEntry is a generated artifact stored under a content-addressed path.
type CacheEntry struct {
	// Path is the resolved artifact path.
	Path string
	// Checksum is the checksum of the source content that produced the artifact.
	Checksum string
	// SourceBase is the basename of the source unit.
	SourceBase string
	// Ext is the artifact extension.
	Ext string
	// Content is the generated code. It is empty when the entry was only listed.
	Content string
	// Size is the artifact size in bytes.
	Size int64
	// CreatedAt is the artifact modification time, for diagnostics only.
	CreatedAt time.Time
}
