// Package scan contains the byte search primitives used by the tokenizer.
//
// All functions operate on a read-only window of the input and return a byte
// offset, or -1 when nothing was found. The hot functions process the window
// in 16-byte chunks and accumulate a comparison mask instead of branching on
// every byte. Windows shorter than one chunk, and the remainder after the
// last full chunk, always go through the scalar path.
package scan

import "math/bits"

// ChunkSize is the number of bytes processed per iteration of the fast path.
const ChunkSize = 16

// eq1 returns 1 if a == b, 0 otherwise, without branching.
// a ^ b is at most 255, so subtracting 1 underflows to 0xFFFF exactly when
// the bytes are equal.
func eq1(a, b byte) uint16 {
	d := uint16(a ^ b)
	return (d - 1) >> 15
}

// IndexByte returns the offset of the first occurrence of needle in s, or -1.
func IndexByte(s string, needle byte) int {
	n := len(s)
	if n < ChunkSize {
		return indexByteScalar(s, needle)
	}

	i := 0
	for ; i+ChunkSize <= n; i += ChunkSize {
		var mask uint16
		for j := 0; j < ChunkSize; j++ {
			mask |= eq1(s[i+j], needle) << j
		}

		if mask != 0 {
			return i + bits.TrailingZeros16(mask)
		}
	}

	if rel := indexByteScalar(s[i:], needle); rel != -1 {
		return i + rel
	}

	return -1
}

// IndexAny4 returns the offset of the first occurrence of any of the four
// needles in s, or -1. Repeat a needle to search for fewer than four bytes.
func IndexAny4(s string, needles [4]byte) int {
	n := len(s)
	if n < ChunkSize {
		return indexAny4Scalar(s, needles)
	}

	i := 0
	for ; i+ChunkSize <= n; i += ChunkSize {
		var mask uint16
		for j := 0; j < ChunkSize; j++ {
			c := s[i+j]
			hit := eq1(c, needles[0]) | eq1(c, needles[1]) | eq1(c, needles[2]) | eq1(c, needles[3])
			mask |= hit << j
		}

		if mask != 0 {
			return i + bits.TrailingZeros16(mask)
		}
	}

	if rel := indexAny4Scalar(s[i:], needles); rel != -1 {
		return i + rel
	}

	return -1
}

// IndexNonIdent returns the offset of the first byte of s that is not a
// valid identifier byte (see [IsIdent]), or -1 if s consists entirely of
// identifier bytes.
func IndexNonIdent(s string) int {
	n := len(s)
	if n < ChunkSize {
		return indexNonIdentScalar(s)
	}

	i := 0
	for ; i+ChunkSize <= n; i += ChunkSize {
		var mask uint16
		for j := 0; j < ChunkSize; j++ {
			mask |= nonIdentTable[s[i+j]] << j
		}

		if mask != 0 {
			return i + bits.TrailingZeros16(mask)
		}
	}

	if rel := indexNonIdentScalar(s[i:]); rel != -1 {
		return i + rel
	}

	return -1
}

// EqualFoldLower reports whether s matches needle, ignoring ASCII case in s.
// needle must already be lowercase. The comparison accumulates into a single
// flag instead of returning on the first mismatch, so the loop stays
// branch-free for fixed small lengths.
func EqualFoldLower(s string, needle string) bool {
	if len(s) != len(needle) {
		return false
	}

	var ok uint16 = 1
	for i := 0; i < len(needle); i++ {
		ok &= eq1(ToLower(s[i]), needle[i])
	}

	return ok != 0
}

// IsIdent reports whether c is a valid identifier byte:
// alphanumeric, '-' or '_'.
func IsIdent(c byte) bool {
	return nonIdentTable[c] == 0
}

// IsClosing reports whether c terminates a tag head ('/' or '>').
func IsClosing(c byte) bool {
	return c == '/' || c == '>'
}

// ToLower lowercases a single ASCII byte without branching.
func ToLower(c byte) byte {
	isUpper := byte(0)
	if c >= 'A' && c <= 'Z' {
		isUpper = 1
	}
	return c + isUpper*0x20
}

// nonIdentTable maps each byte to 1 if it is NOT an identifier byte.
// A table lookup keeps the chunked loop of [IndexNonIdent] branch-free.
var nonIdentTable [256]uint16

func init() {
	for c := 0; c < 256; c++ {
		b := byte(c)
		ident := b >= '0' && b <= '9' ||
			b >= 'A' && b <= 'Z' ||
			b >= 'a' && b <= 'z' ||
			b == '-' || b == '_'

		if !ident {
			nonIdentTable[c] = 1
		}
	}
}

func indexByteScalar(s string, needle byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == needle {
			return i
		}
	}
	return -1
}

func indexAny4Scalar(s string, needles [4]byte) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == needles[0] || c == needles[1] || c == needles[2] || c == needles[3] {
			return i
		}
	}
	return -1
}

func indexNonIdentScalar(s string) int {
	for i := 0; i < len(s); i++ {
		if nonIdentTable[s[i]] != 0 {
			return i
		}
	}
	return -1
}
