// Package checksum provides content checksum implementations for cache keys.
package checksum

import (
	"crypto/md5" //nolint:gosec // Not used for security, matches existing cache artifacts.
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/promptx/internal/core/domain"
	"go.trai.ch/promptx/internal/core/ports"
)

var (
	_ ports.Checksummer = MD5{}
	_ ports.Checksummer = XXHash{}
)

// MD5 computes lowercase hex MD5 digests.
type MD5 struct{}

// Checksum returns the 32 character hex digest of content.
func (MD5) Checksum(content []byte) string {
	sum := md5.Sum(content) //nolint:gosec // See import.
	return hex.EncodeToString(sum[:])
}

// Algorithm returns the algorithm name.
func (MD5) Algorithm() string {
	return domain.ChecksumMD5
}

// XXHash computes 64-bit xxhash digests rendered as 16 hex characters.
type XXHash struct{}

// Checksum returns the 16 character hex digest of content.
func (XXHash) Checksum(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

// Algorithm returns the algorithm name.
func (XXHash) Algorithm() string {
	return domain.ChecksumXXHash
}

// New returns the Checksummer for the named algorithm. An empty name selects MD5.
func New(algorithm string) (ports.Checksummer, error) {
	switch algorithm {
	case "", domain.ChecksumMD5:
		return MD5{}, nil
	case domain.ChecksumXXHash:
		return XXHash{}, nil
	default:
		return nil, domain.Annotate(domain.ErrUnknownChecksum, "algorithm", algorithm)
	}
}
