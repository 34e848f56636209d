package sophia

import (
	"encoding/binary"
	"fmt"
)

// Digest is an in-progress hash computation: the buffered tail of the
// input, the running chaining value and the message length counter.
// It implements hash.Hash.
//
// The zero value is not usable; obtain a Digest from New or one of the
// NewXXX constructors. A Digest holds no references to memory outside
// itself, so independent instances (including Clones of one another)
// may be driven concurrently. A single Digest must not be mutated from
// two goroutines without external locking.
type Digest[W Word] struct {
	profile *Profile[W]
	state   []W    // chaining value: the IV or the compression of whole blocks
	buf     []byte // unprocessed tail, one block long
	fill    int    // valid bytes in buf; 0 <= fill < BlockSize between calls
	count   uint64 // message bytes absorbed since the last (re)initialization
}

// New returns a Digest for the given profile with the state set to the
// profile's IV, an empty buffer and a zeroed length counter. The only
// allocations are the fixed-size state and block buffer; all later
// operations, including reuse after Close, allocate nothing.
//
// Returns an error if the profile is structurally invalid (nil
// compression primitive, block size too small for padding and the
// length field, digest size not covered by the state).
func New[W Word](p *Profile[W]) (*Digest[W], error) {
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("sophia: %w", err)
	}
	d := &Digest[W]{
		profile: p,
		state:   make([]W, len(p.IV)),
		buf:     make([]byte, p.BlockSize),
	}
	copy(d.state, p.IV)
	return d, nil
}

// Name returns the profile name, e.g. "sophia-256".
func (d *Digest[W]) Name() string { return d.profile.Name }

// Size returns the digest size in bytes.
func (d *Digest[W]) Size() int { return d.profile.Size }

// BlockSize returns the input block size in bytes.
func (d *Digest[W]) BlockSize() int { return d.profile.BlockSize }

// Reset returns the Digest to its freshly initialized state: chaining
// value back to the IV, buffer empty, length counter zero.
func (d *Digest[W]) Reset() {
	copy(d.state, d.profile.IV)
	d.fill = 0
	d.count = 0
}

// Clone returns a deep, independently resumable copy of the Digest.
// Finishing the original and the clone with different further input
// yields the digests of the two diverged streams; no state is shared.
func (d *Digest[W]) Clone() *Digest[W] {
	c := &Digest[W]{
		profile: d.profile,
		state:   make([]W, len(d.state)),
		buf:     make([]byte, len(d.buf)),
		fill:    d.fill,
		count:   d.count,
	}
	copy(c.state, d.state)
	copy(c.buf, d.buf)
	return c
}

// Write absorbs p into the running hash. It never fails and never
// retains or modifies p; a zero-length write is a no-op. Whole blocks
// are compressed directly from p without passing through the internal
// buffer.
//
// The length counter is kept in bytes and wraps at 2^64; messages at
// or beyond 2^61 bytes therefore wrap the encoded bit length. That
// limitation is inherent to the 64-bit length field and is not
// detected.
func (d *Digest[W]) Write(p []byte) (n int, err error) {
	n = len(p)
	d.count += uint64(n)

	bs := d.profile.BlockSize
	if d.fill > 0 {
		c := copy(d.buf[d.fill:], p)
		d.fill += c
		p = p[c:]
		if d.fill < bs {
			return n, nil
		}
		d.profile.Compress(d.state, d.buf)
		d.fill = 0
	}
	for len(p) >= bs {
		d.profile.Compress(d.state, p[:bs])
		p = p[bs:]
	}
	if len(p) > 0 {
		d.fill = copy(d.buf, p)
	}
	return n, nil
}

// Close terminates the computation and writes the digest into dst,
// which must be exactly Size bytes long. The buffered tail is padded
// with a 0x80 marker byte, zero bytes, and the big-endian message bit
// length in the last 8 bytes of the final block (one extra block is
// used when marker and length field do not both fit). The Digest is
// then reinitialized as if New had just been called, so it can be
// reused immediately; it must not be read again before that reuse.
//
// Returns an error, leaving the Digest untouched, if len(dst) != Size.
func (d *Digest[W]) Close(dst []byte) error {
	return d.CloseBits(dst, 0, 0)
}

// CloseBits is Close with n extra trailing bits, 0 <= n <= 7, appended
// to the message before padding. The bits used are the most
// significant n bits of extraBits, in big-endian bit order: if bit
// number i of extraBits has value 2^i, the appended bits are those
// numbered 7 down to 8-n. The padding marker bit follows immediately
// after them rather than at a byte boundary, and the encoded message
// length includes the n extra bits. CloseBits(dst, 0, 0) is identical
// to Close(dst).
//
// Returns an error, leaving the Digest untouched, if n > 7 or
// len(dst) != Size. Both indicate a caller bug; no partial output is
// produced.
func (d *Digest[W]) CloseBits(dst []byte, extraBits byte, n uint8) error {
	if n > 7 {
		return fmt.Errorf("sophia: %d extra bits requested, must be 0 to 7", n)
	}
	if len(dst) != d.profile.Size {
		return fmt.Errorf("sophia: destination is %d bytes, %s digests are %d",
			len(dst), d.profile.Name, d.profile.Size)
	}

	bitLen := d.count<<3 + uint64(n)

	// Keep the top n bits of extraBits and set the marker bit right
	// below them; the low bits of the marker byte are zero.
	z := byte(0x80) >> n
	d.buf[d.fill] = (extraBits & -z) | z

	bs := d.profile.BlockSize
	pos := d.fill + 1
	if pos > bs-lengthFieldSize {
		// No room left for the length field: flush a marker-terminated
		// block and pad a second, final one.
		for i := pos; i < bs; i++ {
			d.buf[i] = 0
		}
		d.profile.Compress(d.state, d.buf)
		pos = 0
	}
	for i := pos; i < bs-lengthFieldSize; i++ {
		d.buf[i] = 0
	}
	binary.BigEndian.PutUint64(d.buf[bs-lengthFieldSize:], bitLen)
	d.profile.Compress(d.state, d.buf)

	d.extract(dst)
	d.Reset()
	return nil
}

// Sum appends the current digest to b and returns the resulting slice.
// Unlike Close it finalizes a clone, so the running computation is
// undisturbed and further Writes continue the original stream. This is
// the hash.Hash contract.
func (d *Digest[W]) Sum(b []byte) []byte {
	out := make([]byte, d.profile.Size)
	if err := d.Clone().CloseBits(out, 0, 0); err != nil {
		// out is sized from the profile and n is 0; CloseBits has
		// nothing left to reject.
		panic("sophia: " + err.Error())
	}
	return append(b, out...)
}

// extract serializes the state words big-endian and copies the first
// Size bytes into dst. Truncation (224, 384) happens only here, by
// byte count.
func (d *Digest[W]) extract(dst []byte) {
	ws := wordSize[W]()
	var tmp [8]byte
	for i := 0; len(dst) > 0; i++ {
		putWord(tmp[:ws], d.state[i])
		n := copy(dst, tmp[:ws])
		dst = dst[n:]
	}
}

// wordSize returns the byte width of the state word type.
func wordSize[W Word]() int {
	var w W
	switch any(w).(type) {
	case uint32:
		return 4
	default:
		return 8
	}
}

// putWord stores w big-endian into b, which must be exactly the word
// width.
func putWord[W Word](b []byte, w W) {
	for i := len(b) - 1; i >= 0; i-- {
		b[i] = byte(w)
		w >>= 8
	}
}
