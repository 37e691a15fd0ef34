package domain

import "go.trai.ch/zerr"

var (
	// ErrSourceUnreadable is returned when a source unit cannot be read from disk.
	ErrSourceUnreadable = zerr.New("failed to read source unit")

	// ErrStorage is returned when a cache directory operation fails.
	ErrStorage = zerr.New("cache storage failure")

	// ErrCacheDirCreateFailed is returned when the cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheReadFailed is returned when an artifact exists but cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cached artifact")

	// ErrCacheWriteFailed is returned when an artifact cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cached artifact")

	// ErrCacheListFailed is returned when the cache directory cannot be listed.
	ErrCacheListFailed = zerr.New("failed to list cache directory")

	// ErrCacheEvictFailed is returned when a stale artifact cannot be removed.
	ErrCacheEvictFailed = zerr.New("failed to evict stale artifact")

	// ErrCachePurgeFailed is returned when a cache directory cannot be removed.
	ErrCachePurgeFailed = zerr.New("failed to purge cache directory")

	// ErrGenerationFailed is returned when the generator could not produce code.
	ErrGenerationFailed = zerr.New("code generation failed")

	// ErrEmptyGeneration is returned when the generator returned no text at all.
	ErrEmptyGeneration = zerr.New("generator returned empty output")

	// ErrResolution is returned when a referenced source unit cannot be located.
	ErrResolution = zerr.New("cannot find promptx file")

	// ErrNotPromptFile is returned when a path does not carry the promptx extension.
	ErrNotPromptFile = zerr.New("not a promptx file")

	// ErrModelRequired is returned at startup when no model is configured.
	ErrModelRequired = zerr.New("language model is required for promptx")

	// ErrUnknownProvider is returned when the configured model provider is not supported.
	ErrUnknownProvider = zerr.New("unknown model provider")

	// ErrMissingAPIKey is returned when a provider needs an API key that is not set.
	ErrMissingAPIKey = zerr.New("missing API key")

	// ErrMissingCommand is returned when the command provider has no command to run.
	ErrMissingCommand = zerr.New("command provider requires a command")

	// ErrUnknownChecksum is returned when the configured checksum algorithm is not supported.
	ErrUnknownChecksum = zerr.New("unknown checksum algorithm, expected 'md5' or 'xxhash'")

	// ErrInvalidArtifactExt is returned when the artifact extension is empty or contains a separator.
	ErrInvalidArtifactExt = zerr.New("invalid artifact extension")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no promptx.yaml can be found.
	ErrConfigNotFound = zerr.New("could not find promptx.yaml")

	// ErrInvalidDebounce is returned when the watch debounce window cannot be parsed.
	ErrInvalidDebounce = zerr.New("invalid watch debounce duration")

	// ErrBuildFailed is returned when at least one source unit failed during a batch build.
	ErrBuildFailed = zerr.New("build failed")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to start watcher")

	// ErrUnknownOperation is returned by the host server for unsupported request operations.
	ErrUnknownOperation = zerr.New("unknown operation")
)

// Annotate attaches metadata to a sentinel error while keeping it matchable
// with errors.Is. Calling zerr.With on a sentinel directly yields a detached
// copy.
func Annotate(sentinel error, key string, value any) error {
	return zerr.With(zerr.Wrap(sentinel, ""), key, value)
}

// Classify reports cause as an instance of sentinel. The result matches both
// with errors.Is and reads "sentinel: cause".
func Classify(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return &classified{sentinel: sentinel, cause: cause}
}

type classified struct {
	sentinel error
	cause    error
}

func (e *classified) Error() string { return e.sentinel.Error() + ": " + e.cause.Error() }

func (e *classified) Unwrap() []error { return []error{e.sentinel, e.cause} }
