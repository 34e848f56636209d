// Cross-package integration tests: the registry in pkg/digest, the
// contexts in pkg/sophia and the checksum-file surfaces must agree
// with each other regardless of how input is delivered.
package tests

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/forcebit/sophia-go/pkg/digest"
	"github.com/forcebit/sophia-go/pkg/sophia"
)

func testBody(n int) []byte {
	body := make([]byte, n)
	for i := range body {
		body[i] = byte('a' + (i % 26))
	}
	return body
}

func TestRegistryMatchesDirectContexts(t *testing.T) {
	body := testBody(10 * 1024)

	tests := []struct {
		algorithm string
		direct    func([]byte) []byte
	}{
		{digest.AlgorithmSophia224, func(b []byte) []byte { s := sophia.Sum224(b); return s[:] }},
		{digest.AlgorithmSophia256, func(b []byte) []byte { s := sophia.Sum256(b); return s[:] }},
		{digest.AlgorithmSophia384, func(b []byte) []byte { s := sophia.Sum384(b); return s[:] }},
		{digest.AlgorithmSophia512, func(b []byte) []byte { s := sophia.Sum512(b); return s[:] }},
	}
	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			viaRegistry, err := digest.ComputeDigest(body, tt.algorithm)
			if err != nil {
				t.Fatalf("ComputeDigest() error: %v", err)
			}
			if direct := tt.direct(body); !bytes.Equal(viaRegistry, direct) {
				t.Errorf("registry digest %x, direct digest %x", viaRegistry, direct)
			}
		})
	}
}

func TestCopyBufferSizeInvariance(t *testing.T) {
	body := testBody(100*1024 + 17)

	want, err := digest.ComputeDigest(body, digest.AlgorithmSophia512)
	if err != nil {
		t.Fatalf("ComputeDigest() error: %v", err)
	}

	for _, bufSize := range []int{1, 7, 64, 128, 1000, 32 * 1024} {
		h, err := digest.NewDigester(digest.AlgorithmSophia512)
		if err != nil {
			t.Fatalf("NewDigester() error: %v", err)
		}
		buf := make([]byte, bufSize)
		if _, err := io.CopyBuffer(h, struct{ io.Reader }{bytes.NewReader(body)}, buf); err != nil {
			t.Fatalf("CopyBuffer(size=%d) error: %v", bufSize, err)
		}
		if got := h.Sum(nil); !bytes.Equal(got, want) {
			t.Errorf("buffer size %d: digest %x, want %x", bufSize, got, want)
		}
	}
}

func TestChecksumFileEndToEnd(t *testing.T) {
	bodies := map[string][]byte{
		"small.bin": testBody(10),
		"block.bin": testBody(sophia.BlockSizeBig),
		"large.bin": testBody(64 * 1024),
	}

	var entries []digest.Entry
	for name, body := range bodies {
		sum, err := digest.ComputeDigest(body, digest.AlgorithmSophia384)
		if err != nil {
			t.Fatalf("ComputeDigest() error: %v", err)
		}
		entries = append(entries, digest.Entry{Name: name, Digest: sum})
	}

	formatted, err := digest.FormatEntries(entries)
	if err != nil {
		t.Fatalf("FormatEntries() error: %v", err)
	}

	parsed, err := digest.ParseChecksums(strings.NewReader(formatted), digest.AlgorithmSophia384)
	if err != nil {
		t.Fatalf("ParseChecksums() error: %v", err)
	}
	if len(parsed) != len(entries) {
		t.Fatalf("parsed %d entries, want %d", len(parsed), len(entries))
	}

	for _, entry := range parsed {
		body, ok := bodies[entry.Name]
		if !ok {
			t.Fatalf("parsed unknown entry %q", entry.Name)
		}
		if err := digest.Verify(body, digest.AlgorithmSophia384, entry.Digest); err != nil {
			t.Errorf("Verify(%q): %v", entry.Name, err)
		}
	}
}

func TestCloneSurvivesRegistryUse(t *testing.T) {
	// A context handed out through the registry is still a Sophia
	// context underneath; snapshotting it mid-stream must behave.
	h, err := digest.NewDigester(digest.AlgorithmSophia256)
	if err != nil {
		t.Fatalf("NewDigester() error: %v", err)
	}
	d, ok := h.(*sophia.Digest[uint64])
	if !ok {
		t.Fatalf("registry returned %T, want *sophia.Digest[uint64]", h)
	}

	body := testBody(5000)
	d.Write(body[:2500])
	snapshot := d.Clone()
	d.Write(body[2500:])

	snapshot.Write(body[2500:])
	a := make([]byte, d.Size())
	b := make([]byte, snapshot.Size())
	if err := d.Close(a); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := snapshot.Close(b); err != nil {
		t.Fatalf("snapshot Close() error: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("snapshot diverged: %x vs %x", b, a)
	}
}
