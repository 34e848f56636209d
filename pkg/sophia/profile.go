package sophia

import "fmt"

// Word constrains the two state word widths the engine supports:
// 32-bit ("narrow") and 64-bit ("wide") states share the buffering,
// padding and finalization code.
type Word interface {
	uint32 | uint64
}

// CompressFunc is the block compression primitive of a profile. It
// must replace state in place with the compression of exactly one
// block (len(block) == Profile.BlockSize), be deterministic, and be
// defined for every block and state value. It must not retain block.
type CompressFunc[W Word] func(state []W, block []byte)

// Profile is the fixed parameter set distinguishing a hash variant:
// block size, digest size, initialization vector and compression
// primitive. A Profile is immutable for the lifetime of any Digest
// instantiated from it.
//
// The four Sophia widths are available as Profile224 through
// Profile512. Callers may define their own profiles, including
// narrow-state ones over Profile[uint32], and instantiate them with
// New.
type Profile[W Word] struct {
	// Name identifies the variant, e.g. "sophia-256".
	Name string

	// BlockSize is the input block size in bytes.
	BlockSize int

	// Size is the digest size in bytes.
	Size int

	// IV is the initial chaining value. Its serialized length fixes
	// the state size.
	IV []W

	// Compress is the block compression primitive.
	Compress CompressFunc[W]
}

// lengthFieldSize is the number of trailing bytes of the final padded
// block that hold the big-endian message bit length. Narrow profiles
// conceptually store it as two 32-bit big-endian halves; the encoded
// bytes are identical.
const lengthFieldSize = 8

// validate reports why a profile cannot be instantiated, or nil.
func (p *Profile[W]) validate() error {
	switch {
	case p == nil:
		return fmt.Errorf("profile cannot be nil")
	case p.Compress == nil:
		return fmt.Errorf("profile %q: compression primitive cannot be nil", p.Name)
	case p.BlockSize <= lengthFieldSize:
		return fmt.Errorf("profile %q: block size %d cannot hold padding and the %d-byte length field",
			p.Name, p.BlockSize, lengthFieldSize)
	case p.Size <= 0:
		return fmt.Errorf("profile %q: digest size %d must be positive", p.Name, p.Size)
	case p.Size > len(p.IV)*wordSize[W]():
		return fmt.Errorf("profile %q: digest size %d exceeds the %d-byte state",
			p.Name, p.Size, len(p.IV)*wordSize[W]())
	}
	return nil
}

// Built-in profiles for the four Sophia output widths. Each width has
// its own IV (zero state with the output size in bits in the last
// word); 224 and 384 are full-width computations truncated only at
// serialization.
var (
	Profile224 = &Profile[uint64]{
		Name:      "sophia-224",
		BlockSize: BlockSizeSmall,
		Size:      Size224,
		IV:        ivFor(224, stateWordsSmall),
		Compress:  compressSmall,
	}
	Profile256 = &Profile[uint64]{
		Name:      "sophia-256",
		BlockSize: BlockSizeSmall,
		Size:      Size256,
		IV:        ivFor(256, stateWordsSmall),
		Compress:  compressSmall,
	}
	Profile384 = &Profile[uint64]{
		Name:      "sophia-384",
		BlockSize: BlockSizeBig,
		Size:      Size384,
		IV:        ivFor(384, stateWordsBig),
		Compress:  compressBig,
	}
	Profile512 = &Profile[uint64]{
		Name:      "sophia-512",
		BlockSize: BlockSizeBig,
		Size:      Size512,
		IV:        ivFor(512, stateWordsBig),
		Compress:  compressBig,
	}
)

func ivFor(bits int, words int) []uint64 {
	iv := make([]uint64, words)
	iv[words-1] = uint64(bits)
	return iv
}
