package digest

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Entry is one line of a checksum file: a digest and the name it was
// computed for.
type Entry struct {
	Name   string
	Digest []byte
}

// FormatEntry formats a single checksum line in the conventional
// sum-tool layout: the lowercase hex digest, two spaces, the name.
//
// Returns error if:
//   - The name is empty or contains a newline
//   - The digest is nil or empty
func FormatEntry(entry Entry) (string, error) {
	if entry.Name == "" {
		return "", fmt.Errorf("entry name cannot be empty")
	}
	if strings.ContainsAny(entry.Name, "\r\n") {
		return "", fmt.Errorf("entry name %q cannot contain line breaks", entry.Name)
	}
	if len(entry.Digest) == 0 {
		return "", fmt.Errorf("digest for %q cannot be nil or empty", entry.Name)
	}
	return fmt.Sprintf("%s  %s", hex.EncodeToString(entry.Digest), entry.Name), nil
}

// FormatEntries formats a checksum file from entries, one line per
// entry, sorted by name so output is reproducible. A trailing newline
// terminates the final line.
//
// Returns error if:
//   - entries is empty
//   - Any entry fails FormatEntry validation
//   - Two entries share a name
func FormatEntries(entries []Entry) (string, error) {
	if len(entries) == 0 {
		return "", fmt.Errorf("entries cannot be empty")
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var b strings.Builder
	prev := ""
	for i, entry := range sorted {
		if i > 0 && entry.Name == prev {
			return "", fmt.Errorf("duplicate entry for %q", entry.Name)
		}
		prev = entry.Name

		line, err := FormatEntry(entry)
		if err != nil {
			return "", err
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}
