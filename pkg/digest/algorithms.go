// Package digest provides checksum computation, checksum-file
// formatting and constant-time verification for the Sophia hash
// family, alongside a small set of established algorithms (SHA-2,
// SHA-3, BLAKE2b families) for migration and interop checks.
// Deprecated algorithms (MD5, SHA-1, CRC32, Adler32) are explicitly
// rejected.
package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/forcebit/sophia-go/pkg/sophia"
)

// Algorithm identifiers accepted by this package.
const (
	// Sophia family (this module)
	AlgorithmSophia224 = "sophia-224"
	AlgorithmSophia256 = "sophia-256"
	AlgorithmSophia384 = "sophia-384"
	AlgorithmSophia512 = "sophia-512"

	// SHA-2 family (NIST FIPS 180-4)
	AlgorithmSHA256 = "sha-256"
	AlgorithmSHA512 = "sha-512"

	// SHA-3 family (NIST FIPS 202)
	AlgorithmSHA3256 = "sha3-256"
	AlgorithmSHA3512 = "sha3-512"

	// BLAKE2b family (RFC 7693)
	AlgorithmBLAKE2b256 = "blake2b-256"
	AlgorithmBLAKE2b512 = "blake2b-512"
)

// DefaultAlgorithm is used when the caller does not pick one.
const DefaultAlgorithm = AlgorithmSophia256

// SupportedAlgorithms is a set of all algorithms supported by this
// package. Use O(1) lookup: _, ok := SupportedAlgorithms[algorithm].
var SupportedAlgorithms = map[string]struct{}{
	AlgorithmSophia224:  {},
	AlgorithmSophia256:  {},
	AlgorithmSophia384:  {},
	AlgorithmSophia512:  {},
	AlgorithmSHA256:     {},
	AlgorithmSHA512:     {},
	AlgorithmSHA3256:    {},
	AlgorithmSHA3512:    {},
	AlgorithmBLAKE2b256: {},
	AlgorithmBLAKE2b512: {},
}

// digestSizes maps algorithm names to their digest size in bytes.
var digestSizes = map[string]int{
	AlgorithmSophia224:  sophia.Size224,
	AlgorithmSophia256:  sophia.Size256,
	AlgorithmSophia384:  sophia.Size384,
	AlgorithmSophia512:  sophia.Size512,
	AlgorithmSHA256:     sha256.Size,
	AlgorithmSHA512:     sha512.Size,
	AlgorithmSHA3256:    32,
	AlgorithmSHA3512:    64,
	AlgorithmBLAKE2b256: blake2b.Size256,
	AlgorithmBLAKE2b512: blake2b.Size,
}

// deprecatedAlgorithms are recognized but rejected, with the reason
// reported to the caller.
var deprecatedAlgorithms = map[string]string{
	"md5":       "cryptographically broken",
	"sha-1":     "cryptographically broken",
	"sha1":      "cryptographically broken",
	"adler32":   "not a cryptographic hash",
	"crc32":     "not a cryptographic hash",
	"crc32c":    "not a cryptographic hash",
	"unixsum":   "not a cryptographic hash",
	"unixcksum": "not a cryptographic hash",
}

// NewDigester creates a hash.Hash instance for streaming digest
// computation with the named algorithm. This is the primary API for
// memory-efficient operation: content of any size streams through in
// O(1) memory.
//
// Returns error if:
//   - The algorithm is deprecated (md5, sha-1, adler32, crc32, ...)
//   - The algorithm is unknown
func NewDigester(algorithm string) (hash.Hash, error) {
	switch algorithm {
	case AlgorithmSophia224:
		return sophia.New224(), nil
	case AlgorithmSophia256:
		return sophia.New256(), nil
	case AlgorithmSophia384:
		return sophia.New384(), nil
	case AlgorithmSophia512:
		return sophia.New512(), nil
	case AlgorithmSHA256:
		return sha256.New(), nil
	case AlgorithmSHA512:
		return sha512.New(), nil
	case AlgorithmSHA3256:
		return sha3.New256(), nil
	case AlgorithmSHA3512:
		return sha3.New512(), nil
	case AlgorithmBLAKE2b256:
		h, err := blake2b.New256(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize BLAKE2b-256 hasher: %w", err)
		}
		return h, nil
	case AlgorithmBLAKE2b512:
		h, err := blake2b.New512(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize BLAKE2b-512 hasher: %w", err)
		}
		return h, nil
	default:
		if reason, deprecated := deprecatedAlgorithms[algorithm]; deprecated {
			return nil, fmt.Errorf("algorithm %q is rejected: %s", algorithm, reason)
		}
		return nil, fmt.Errorf("unsupported algorithm %q", algorithm)
	}
}

// DigestSize returns the digest size in bytes for the named algorithm.
//
// Returns error if the algorithm is unsupported.
func DigestSize(algorithm string) (int, error) {
	size, ok := digestSizes[algorithm]
	if !ok {
		return 0, fmt.Errorf("unsupported algorithm %q", algorithm)
	}
	return size, nil
}
