package sophia

import "encoding/binary"

// The built-in compression primitive. The state is an 8-row byte
// matrix with 8 (small shape) or 16 (big shape) columns, held as
// big-endian 64-bit column words: byte 8j+i of a block lands in row i
// of column j, and the most significant byte of a column word is
// row 0. One block is absorbed as
//
//	h' = P(h XOR m) XOR Q(m) XOR h
//
// where P and Q are wide permutations built from AddRoundConstant,
// SubBytes (AES S-box), ShiftBytes and MixBytes rounds: 10 rounds over
// 8 columns for the small shape, 14 over 16 for the big one.

const (
	stateWordsSmall = 8
	stateWordsBig   = 16

	roundsSmall = 10
	roundsBig   = 14
)

// Row rotation amounts for ShiftBytes. P and Q use different vectors,
// and the big shape moves its last row further to make the wider
// matrix diffuse.
var (
	shiftsSmallP = [8]int{0, 1, 2, 3, 4, 5, 6, 7}
	shiftsSmallQ = [8]int{1, 3, 5, 7, 0, 2, 4, 6}
	shiftsBigP   = [8]int{0, 1, 2, 3, 4, 5, 6, 11}
	shiftsBigQ   = [8]int{1, 3, 5, 11, 0, 2, 4, 6}
)

func compressSmall(h []uint64, block []byte) {
	compressWide(h, block, roundsSmall, &shiftsSmallP, &shiftsSmallQ)
}

func compressBig(h []uint64, block []byte) {
	compressWide(h, block, roundsBig, &shiftsBigP, &shiftsBigQ)
}

func compressWide(h []uint64, block []byte, rounds int, shiftsP, shiftsQ *[8]int) {
	var m, g [stateWordsBig]uint64
	n := len(h)
	for i := 0; i < n; i++ {
		m[i] = binary.BigEndian.Uint64(block[8*i:])
		g[i] = m[i] ^ h[i]
	}
	permute(g[:n], rounds, shiftsP, false)
	permute(m[:n], rounds, shiftsQ, true)
	for i := 0; i < n; i++ {
		h[i] ^= g[i] ^ m[i]
	}
}

// permute applies the P (q == false) or Q (q == true) permutation in
// place. The two differ only in round constants and shift vector: P
// XORs (16j XOR r) into row 0 of column j, Q complements the whole
// state and XORs (16j XOR r) into row 7.
func permute(cols []uint64, rounds int, shifts *[8]int, q bool) {
	var tmp [stateWordsBig]uint64
	n := len(cols)
	for r := 0; r < rounds; r++ {
		for j := 0; j < n; j++ {
			rc := uint64(byte(j<<4) ^ byte(r))
			if q {
				cols[j] = ^cols[j] ^ rc
			} else {
				cols[j] ^= rc << 56
			}
		}
		for j := 0; j < n; j++ {
			var col [8]byte
			for i := 0; i < 8; i++ {
				src := cols[(j+shifts[i])%n]
				col[i] = sbox[byte(src>>(56-8*i))]
			}
			tmp[j] = mixColumn(&col)
		}
		copy(cols, tmp[:n])
	}
}

// mixCoeff is the first row of the circulant MixBytes matrix; row i is
// the same vector rotated right by i.
var mixCoeff = [8]byte{2, 2, 3, 4, 5, 3, 5, 7}

func mixColumn(in *[8]byte) uint64 {
	var out uint64
	for i := 0; i < 8; i++ {
		var v byte
		for j := 0; j < 8; j++ {
			v ^= mulTable[mixCoeff[(j-i+8)&7]][in[j]]
		}
		out = out<<8 | uint64(v)
	}
	return out
}

var (
	sbox [256]byte

	// mulTable[c][x] is c*x in GF(2^8) mod x^8+x^4+x^3+x+1, for the
	// MixBytes coefficients only.
	mulTable [8][256]byte
)

func init() {
	// The AES S-box: multiplicative inverse in GF(2^8) followed by the
	// affine transform, built here rather than hardcoded.
	for x := 0; x < 256; x++ {
		b := gfInverse(byte(x))
		sbox[x] = b ^ rotl8(b, 1) ^ rotl8(b, 2) ^ rotl8(b, 3) ^ rotl8(b, 4) ^ 0x63
	}
	for _, c := range mixCoeff {
		for x := 0; x < 256; x++ {
			mulTable[c][x] = gfMul(c, byte(x))
		}
	}
}

func rotl8(x byte, n uint) byte {
	return x<<n | x>>(8-n)
}

func gfMul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return p
}

// gfInverse returns the multiplicative inverse of x in GF(2^8), with
// gfInverse(0) == 0.
func gfInverse(x byte) byte {
	if x == 0 {
		return 0
	}
	// x^254 == x^-1 by Fermat; square-and-multiply over the 8-bit
	// exponent 0b11111110.
	result := byte(1)
	base := x
	for e := byte(254); e != 0; e >>= 1 {
		if e&1 != 0 {
			result = gfMul(result, base)
		}
		base = gfMul(base, base)
	}
	return result
}
