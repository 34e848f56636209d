package digest

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// ParseChecksums parses a checksum file produced by FormatEntries (or
// by the conventional sum tools) for the named algorithm. Lines are
// "<hex digest>  <name>"; blank lines and lines starting with '#' are
// skipped. Digest lengths are validated against the algorithm's size.
//
// Returns error if:
//   - The algorithm is unsupported
//   - A line is not in "<hex>  <name>" form
//   - A digest is not valid hex or has the wrong length
//   - Reading fails
func ParseChecksums(reader io.Reader, algorithm string) ([]Entry, error) {
	size, err := DigestSize(algorithm)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	scanner := bufio.NewScanner(reader)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		hexDigest, name, found := strings.Cut(line, "  ")
		if !found || name == "" {
			return nil, fmt.Errorf("line %d: expected \"<hex digest>  <name>\", got %q", lineNo, line)
		}

		digest, err := hex.DecodeString(hexDigest)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid hex digest for %q: %w", lineNo, name, err)
		}
		if len(digest) != size {
			return nil, fmt.Errorf("line %d: digest for %q is %d bytes, %s digests are %d",
				lineNo, name, len(digest), algorithm, size)
		}

		entries = append(entries, Entry{Name: name, Digest: digest})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read checksum file: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("checksum file contains no entries")
	}
	return entries, nil
}
