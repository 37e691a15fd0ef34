package ports

// Checksummer computes the change-detection fingerprint of a source unit.
//
//go:generate go run go.uber.org/mock/mockgen -source=checksummer.go -destination=mocks/mock_checksummer.go -package=mocks
type Checksummer interface {
	// Checksum returns a fixed-length lowercase hex digest of content.
	// The same bytes always produce the same digest, across process restarts.
	Checksum(content []byte) string

	// Algorithm returns the name of the digest algorithm.
	Algorithm() string
}
