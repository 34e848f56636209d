// Package sophia implements the Sophia hash family with outputs of
// 224, 256, 384 and 512 bits.
//
// The four widths share one streaming engine: Sophia-224 and
// Sophia-256 operate on 64-byte blocks over a 512-bit state (the
// "small" shape), Sophia-384 and Sophia-512 on 128-byte blocks over a
// 1024-bit state (the "big" shape). Each width has its own
// initialization vector; the 224- and 384-bit digests are produced by
// their own full-width computations and truncated only when the final
// state is serialized.
//
// Beyond the standard hash.Hash interface, a *Digest supports
// bit-oriented protocols through CloseBits, which appends 0 to 7
// trailing bits before padding, and can be snapshotted mid-stream with
// Clone. After Close or CloseBits the context is reinitialized and may
// be reused for a fresh computation without reallocation.
//
// The compression primitive is pluggable: callers with their own
// block transform can instantiate the engine through New with a custom
// Profile, including 32-bit-word ("narrow") state layouts via
// Profile[uint32].
package sophia

import "hash"

// Digest sizes in bytes.
const (
	Size224 = 28
	Size256 = 32
	Size384 = 48
	Size512 = 64
)

// Block sizes in bytes for the small (224/256) and big (384/512)
// context shapes.
const (
	BlockSizeSmall = 64
	BlockSizeBig   = 128
)

// New224 returns a new Digest computing the Sophia-224 checksum.
func New224() *Digest[uint64] {
	d, _ := New(Profile224)
	return d
}

// New256 returns a new Digest computing the Sophia-256 checksum.
func New256() *Digest[uint64] {
	d, _ := New(Profile256)
	return d
}

// New384 returns a new Digest computing the Sophia-384 checksum.
func New384() *Digest[uint64] {
	d, _ := New(Profile384)
	return d
}

// New512 returns a new Digest computing the Sophia-512 checksum.
func New512() *Digest[uint64] {
	d, _ := New(Profile512)
	return d
}

// Sum224 returns the Sophia-224 checksum of data.
func Sum224(data []byte) (sum [Size224]byte) {
	sumInto(New224(), data, sum[:])
	return
}

// Sum256 returns the Sophia-256 checksum of data.
func Sum256(data []byte) (sum [Size256]byte) {
	sumInto(New256(), data, sum[:])
	return
}

// Sum384 returns the Sophia-384 checksum of data.
func Sum384(data []byte) (sum [Size384]byte) {
	sumInto(New384(), data, sum[:])
	return
}

// Sum512 returns the Sophia-512 checksum of data.
func Sum512(data []byte) (sum [Size512]byte) {
	sumInto(New512(), data, sum[:])
	return
}

func sumInto(d *Digest[uint64], data, dst []byte) {
	d.Write(data)
	d.Close(dst)
}

var (
	_ hash.Hash = (*Digest[uint64])(nil)
	_ hash.Hash = (*Digest[uint32])(nil)
)
