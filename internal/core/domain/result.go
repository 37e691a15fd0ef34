package domain

// Result is the outcome of one pipeline run for a source unit.
type Result struct {
	// Code is the artifact content. It is empty when the run failed.
	Code         string
	ArtifactPath string
	Checksum     string
	// State is the terminal state of the run.
	State State
	// Cached reports whether Code was read from an existing artifact.
	Cached bool
}
