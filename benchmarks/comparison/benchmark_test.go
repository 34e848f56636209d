// Package comparison benchmarks the Sophia family against the
// established hash implementations Go projects reach for: stdlib
// SHA-2 and golang.org/x/crypto SHA-3 and BLAKE2b.
//
// Run with:
//
//	go test -bench . -benchmem ./benchmarks/comparison
package comparison

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"testing"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"github.com/forcebit/sophia-go/pkg/sophia"
)

func benchmarkHash(b *testing.B, newHash func() hash.Hash, input []byte) {
	b.SetBytes(int64(len(input)))
	h := newHash()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Reset()
		h.Write(input)
		sink(h.Sum(nil))
	}
}

func newBlake2b256() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	return h
}

// =============================================================================
// 256-bit class, 1 KiB inputs
// =============================================================================

func BenchmarkSophia256_1KB(b *testing.B) {
	benchmarkHash(b, func() hash.Hash { return sophia.New256() }, input1KB)
}

func BenchmarkSHA256_1KB(b *testing.B) {
	benchmarkHash(b, sha256.New, input1KB)
}

func BenchmarkSHA3_256_1KB(b *testing.B) {
	benchmarkHash(b, func() hash.Hash { return sha3.New256() }, input1KB)
}

func BenchmarkBLAKE2b256_1KB(b *testing.B) {
	benchmarkHash(b, newBlake2b256, input1KB)
}

// =============================================================================
// 512-bit class, 1 KiB inputs
// =============================================================================

func BenchmarkSophia512_1KB(b *testing.B) {
	benchmarkHash(b, func() hash.Hash { return sophia.New512() }, input1KB)
}

func BenchmarkSHA512_1KB(b *testing.B) {
	benchmarkHash(b, sha512.New, input1KB)
}

func BenchmarkSHA3_512_1KB(b *testing.B) {
	benchmarkHash(b, func() hash.Hash { return sha3.New512() }, input1KB)
}

// =============================================================================
// Throughput on larger inputs
// =============================================================================

func BenchmarkSophia256_64KB(b *testing.B) {
	benchmarkHash(b, func() hash.Hash { return sophia.New256() }, input64KB)
}

func BenchmarkSHA256_64KB(b *testing.B) {
	benchmarkHash(b, sha256.New, input64KB)
}

func BenchmarkSophia512_1MB(b *testing.B) {
	benchmarkHash(b, func() hash.Hash { return sophia.New512() }, input1MB)
}

func BenchmarkSHA512_1MB(b *testing.B) {
	benchmarkHash(b, sha512.New, input1MB)
}
