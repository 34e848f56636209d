package digest

import (
	"crypto/subtle"
	"fmt"
	"io"
)

// Verify checks that the digest of body under the named algorithm
// equals expected. Uses constant-time comparison via
// crypto/subtle.ConstantTimeCompare for security.
//
// Returns error if:
//   - The algorithm is unsupported
//   - expected has the wrong length for the algorithm
//   - The digests do not match
func Verify(body []byte, algorithm string, expected []byte) error {
	if err := checkExpected(algorithm, expected); err != nil {
		return err
	}

	actual, err := ComputeDigest(body, algorithm)
	if err != nil {
		return fmt.Errorf("failed to compute digest: %w", err)
	}

	if subtle.ConstantTimeCompare(actual, expected) != 1 {
		return fmt.Errorf("digest mismatch for algorithm %q: verification failed", algorithm)
	}
	return nil
}

// VerifyReader is the streaming variant of Verify: it checks the
// digest of reader's content in O(1) memory.
//
// Returns error if:
//   - The algorithm is unsupported
//   - expected has the wrong length for the algorithm
//   - Reading fails
//   - The digests do not match
func VerifyReader(reader io.Reader, algorithm string, expected []byte) error {
	if err := checkExpected(algorithm, expected); err != nil {
		return err
	}

	actual, err := ComputeDigestReader(reader, algorithm)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare(actual, expected) != 1 {
		return fmt.Errorf("digest mismatch for algorithm %q: verification failed", algorithm)
	}
	return nil
}

func checkExpected(algorithm string, expected []byte) error {
	size, err := DigestSize(algorithm)
	if err != nil {
		return err
	}
	if len(expected) != size {
		return fmt.Errorf("expected digest is %d bytes, %s digests are %d",
			len(expected), algorithm, size)
	}
	return nil
}
