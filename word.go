package encodepacked

import (
	"github.com/holiman/uint256"
)

// WordSize is the size in bytes of a full EVM word.
const WordSize = 32

// fitsWidth reports whether v can be represented in width bytes without loss.
func fitsWidth(v *uint256.Int, width int) bool {
	return v.BitLen() <= width*8
}

// lowBytes returns the least-significant width bytes of v's 32-byte
// big-endian representation. Bits above width*8 are dropped.
func lowBytes(v *uint256.Int, width int) []byte {
	word := v.Bytes32()
	out := make([]byte, width)
	copy(out, word[WordSize-width:])
	return out
}
