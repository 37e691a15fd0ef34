package domain

// State is a step of the transform pipeline.
type State uint8

const (
	// StateStart is the initial state before the source is read.
	StateStart State = iota
	// StateChecksumKnown means the source was read and its artifact path derived.
	StateChecksumKnown
	// StateCacheHit means a stored artifact matched the current checksum.
	StateCacheHit
	// StateCacheMiss means no artifact matched the current checksum.
	StateCacheMiss
	// StateGenerating means the generator is being invoked.
	StateGenerating
	// StateGenerated means the generator produced an artifact.
	StateGenerated
	// StateWriteCache means the artifact is being persisted.
	StateWriteCache
	// StateEvict means stale artifacts for the same source are being removed.
	StateEvict
	// StateDone is the terminal success state.
	StateDone
	// StateGenerationFailed means the generator returned an error.
	StateGenerationFailed
	// StateStorageFailed means a cache operation failed.
	StateStorageFailed
	// StateSourceUnreadable means the source could not be read.
	StateSourceUnreadable
	// StateFailed is the terminal failure state.
	StateFailed
)

var stateNames = [...]string{
	StateStart:            "start",
	StateChecksumKnown:    "checksum_known",
	StateCacheHit:         "cache_hit",
	StateCacheMiss:        "cache_miss",
	StateGenerating:       "generating",
	StateGenerated:        "generated",
	StateWriteCache:       "write_cache",
	StateEvict:            "evict",
	StateDone:             "done",
	StateGenerationFailed: "generation_failed",
	StateStorageFailed:    "storage_failed",
	StateSourceUnreadable: "source_unreadable",
	StateFailed:           "failed",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Terminal reports whether no further transition can leave s.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}
