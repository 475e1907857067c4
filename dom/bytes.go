package dom

import (
	"math"
	"strings"
	"unsafe"
)

// MaxLength is the ceiling on the length of any [Bytes] content and on the
// parser input. Offsets throughout the document model are stored as uint32,
// so content past this length cannot be represented.
const MaxLength = math.MaxUint32

// Bytes is a byte-string that is either *borrowed* (a window into the
// source document, valid for as long as the source string is reachable)
// or *owned*, backed by a private allocation created by mutation.
//
// Every string produced by the parser (tag names, attribute values, text
// runs) starts out borrowed, so parsing never copies substrings out of the
// input. A value only becomes owned when the caller replaces its content
// through [Bytes.Set].
//
// Equality and ordering operate on the referenced content, never on the
// representation: a borrowed and an owned value holding the same bytes
// compare equal.
type Bytes struct {
	// str is the borrowed window. Go strings are immutable and shared, so
	// holding a substring here keeps the source alive without copying it.
	str string

	// owned is non-nil when this value owns a private allocation. It takes
	// precedence over str.
	owned []byte
}

// BorrowedBytes wraps a window of the source document. It never allocates
// and never fails; the parser guarantees up front that source offsets fit
// the uint32 ceiling.
func BorrowedBytes(s string) Bytes {
	return Bytes{str: s}
}

// OwnedBytes copies content into a fresh private allocation. It fails with
// [ErrLengthOverflow] if content exceeds [MaxLength].
func OwnedBytes(content []byte) (Bytes, error) {
	if uint64(len(content)) > MaxLength {
		return Bytes{}, ErrLengthOverflow
	}

	owned := make([]byte, len(content))
	copy(owned, content)
	return Bytes{owned: owned}, nil
}

// IsOwned reports whether the value holds a private allocation.
func (b Bytes) IsOwned() bool {
	return b.owned != nil
}

// Len returns the content length in bytes.
func (b Bytes) Len() int {
	if b.owned != nil {
		return len(b.owned)
	}
	return len(b.str)
}

// Raw returns the referenced bytes without copying. The returned slice is a
// read-only view: for borrowed values it aliases the immutable source
// string, for owned values it aliases the private allocation. Callers must
// not modify it; use [Bytes.Set] to change content.
func (b Bytes) Raw() []byte {
	if b.owned != nil {
		return b.owned
	}
	return unsafe.Slice(unsafe.StringData(b.str), len(b.str))
}

// AsUTF8Str returns the content as a string, replacing invalid UTF-8
// sequences with U+FFFD. For borrowed values holding valid UTF-8 this does
// not allocate.
func (b Bytes) AsUTF8Str() string {
	if b.owned != nil {
		return strings.ToValidUTF8(string(b.owned), "�")
	}
	return strings.ToValidUTF8(b.str, "�")
}

// TryBorrowed returns the borrowed window if the value still borrows from
// the source document. Once a value has been mutated it owns its bytes and
// the zero-copy fast path is gone, in which case ok is false.
func (b Bytes) TryBorrowed() (s string, ok bool) {
	if b.owned != nil {
		return "", false
	}
	return b.str, true
}

// Set replaces the content with a private copy of content. If the value
// previously owned an allocation, that allocation is returned to the caller
// instead of being discarded, so a caller that writes repeatedly can reuse
// it. old is nil when the value was borrowed.
//
// Fails with [ErrLengthOverflow] if content exceeds [MaxLength]; the value
// is left unchanged in that case.
func (b *Bytes) Set(content []byte) (old []byte, err error) {
	if uint64(len(content)) > MaxLength {
		return nil, ErrLengthOverflow
	}

	old = b.owned

	owned := make([]byte, len(content))
	copy(owned, content)

	b.owned = owned
	b.str = ""
	return old, nil
}

// Clone returns a value with identical content. Borrowed values share the
// source window (shallow), owned values are deep-copied so that the clone
// and the original never alias one allocation.
func (b Bytes) Clone() Bytes {
	if b.owned == nil {
		return b
	}

	owned := make([]byte, len(b.owned))
	copy(owned, b.owned)
	return Bytes{owned: owned}
}

// Eq reports whether both values reference identical content, regardless of
// representation.
func (b Bytes) Eq(other Bytes) bool {
	return b.view() == other.view()
}

// EqStr reports whether the content equals s.
func (b Bytes) EqStr(s string) bool {
	return b.view() == s
}

// Compare orders two values by content, like [strings.Compare].
func (b Bytes) Compare(other Bytes) int {
	return strings.Compare(b.view(), other.view())
}

// view returns the content as a string without copying. The owned branch
// aliases the private allocation and must only be used for reading.
func (b Bytes) view() string {
	if b.owned != nil {
		return unsafe.String(unsafe.SliceData(b.owned), len(b.owned))
	}
	return b.str
}
