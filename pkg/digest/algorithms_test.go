package digest

import (
	"strings"
	"testing"
)

func TestNewDigester_SupportedAlgorithms(t *testing.T) {
	for algorithm := range SupportedAlgorithms {
		t.Run(algorithm, func(t *testing.T) {
			h, err := NewDigester(algorithm)
			if err != nil {
				t.Fatalf("NewDigester(%q) error: %v", algorithm, err)
			}

			wantSize, err := DigestSize(algorithm)
			if err != nil {
				t.Fatalf("DigestSize(%q) error: %v", algorithm, err)
			}
			if h.Size() != wantSize {
				t.Errorf("Size() = %d, DigestSize reports %d", h.Size(), wantSize)
			}
			if got := len(h.Sum(nil)); got != wantSize {
				t.Errorf("len(Sum(nil)) = %d, want %d", got, wantSize)
			}
		})
	}
}

func TestNewDigester_DeprecatedRejected(t *testing.T) {
	deprecated := []string{"md5", "sha-1", "sha1", "adler32", "crc32", "crc32c", "unixsum", "unixcksum"}
	for _, algorithm := range deprecated {
		t.Run(algorithm, func(t *testing.T) {
			_, err := NewDigester(algorithm)
			if err == nil {
				t.Fatalf("NewDigester(%q) accepted a deprecated algorithm", algorithm)
			}
			if !strings.Contains(err.Error(), "rejected") {
				t.Errorf("error %q does not explain the rejection", err)
			}
		})
	}
}

func TestNewDigester_Unknown(t *testing.T) {
	for _, algorithm := range []string{"", "sophia-128", "whirlpool", "SOPHIA-256"} {
		if _, err := NewDigester(algorithm); err == nil {
			t.Errorf("NewDigester(%q) did not return an error", algorithm)
		}
	}
}

func TestDigestSize_Unknown(t *testing.T) {
	if _, err := DigestSize("md5"); err == nil {
		t.Error("DigestSize(\"md5\") did not return an error")
	}
}

func TestSupportedAlgorithmsHaveSizes(t *testing.T) {
	for algorithm := range SupportedAlgorithms {
		if _, ok := digestSizes[algorithm]; !ok {
			t.Errorf("algorithm %q has no digest size", algorithm)
		}
	}
	for algorithm := range digestSizes {
		if _, ok := SupportedAlgorithms[algorithm]; !ok {
			t.Errorf("digest size listed for unsupported algorithm %q", algorithm)
		}
	}
}
