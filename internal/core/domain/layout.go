package domain

import (
	"path/filepath"
	"strings"
)

const (
	// SourceExt is the file extension of prompt source units.
	SourceExt = ".promptx"

	// CacheDirName is the name of the per-directory artifact cache.
	CacheDirName = ".cache"

	// DefaultArtifactExt is the extension given to generated artifacts.
	DefaultArtifactExt = "tsx"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "promptx.yaml"

	// WatchGlob is the glob registered with host file watchers.
	WatchGlob = "**/*" + SourceExt

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// tempPattern names in-flight writes. It never contains a source basename,
	// so eviction and listing ignore it.
	tempPattern = ".tmp-*"
)

// TempPattern returns the os.CreateTemp pattern used for in-flight artifact writes.
func TempPattern() string {
	return tempPattern
}

// IsPromptFile reports whether path names a prompt source unit.
func IsPromptFile(path string) bool {
	return strings.HasSuffix(path, SourceExt)
}

// CacheDir returns the cache directory colocated with the source at sourcePath.
func CacheDir(sourcePath string) string {
	return filepath.Join(filepath.Dir(sourcePath), CacheDirName)
}

// ArtifactName returns the file name of the artifact for a source basename and checksum.
func ArtifactName(sourceBase, checksum, ext string) string {
	return checksum + "-" + sourceBase + "." + ext
}

// ArtifactPath derives the cache artifact path for a source unit.
// The result is <sourceDir>/.cache/<checksum>-<sourceBasename>.<ext>.
func ArtifactPath(sourcePath, checksum, ext string) string {
	return filepath.Join(CacheDir(sourcePath), ArtifactName(filepath.Base(sourcePath), checksum, ext))
}

// ParseArtifactName splits an artifact file name into its checksum, source basename
// and extension. The source basename is expected to end in SourceExt, which is how
// it is told apart from the artifact extension.
func ParseArtifactName(name string) (checksum, sourceBase, ext string, ok bool) {
	checksum, rest, found := strings.Cut(name, "-")
	if !found || !isHex(checksum) {
		return "", "", "", false
	}

	idx := strings.LastIndex(rest, SourceExt+".")
	if idx < 0 {
		return "", "", "", false
	}

	sourceBase = rest[:idx+len(SourceExt)]
	ext = rest[idx+len(SourceExt)+1:]
	if ext == "" {
		return "", "", "", false
	}
	return checksum, sourceBase, ext, true
}

// BelongsTo reports whether the artifact file name was produced for sourceBase.
func BelongsTo(name, sourceBase string) bool {
	_, base, _, ok := ParseArtifactName(name)
	return ok && base == sourceBase
}

// ValidArtifactExt reports whether ext can be used as an artifact extension.
func ValidArtifactExt(ext string) bool {
	return ext != "" && !strings.ContainsAny(ext, `./\`)
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}
