package digest

import (
	"fmt"
	"io"
)

// ComputeDigest is a convenience function that computes a digest for
// the entire body using the specified algorithm. This is a wrapper
// around NewDigester for cases where the entire body is available in
// memory.
//
// For memory-efficient streaming operations with large bodies, use
// ComputeDigestReader or NewDigester directly.
//
// Returns the computed digest bytes, or error if the algorithm is
// unsupported.
func ComputeDigest(body []byte, algorithm string) ([]byte, error) {
	h, err := NewDigester(algorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to create digester: %w", err)
	}

	_, err = h.Write(body)
	if err != nil {
		return nil, fmt.Errorf("failed to write body to hasher: %w", err)
	}

	return h.Sum(nil), nil
}

// ComputeDigestReader computes a digest by streaming reader through the
// named algorithm. Memory guarantee: O(1) regardless of content size.
//
// Returns the computed digest bytes, or error if:
//   - The algorithm is unsupported
//   - Reading from reader fails
func ComputeDigestReader(reader io.Reader, algorithm string) ([]byte, error) {
	h, err := NewDigester(algorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to create digester: %w", err)
	}

	if _, err := io.Copy(h, reader); err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	return h.Sum(nil), nil
}
