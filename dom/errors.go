package dom

import "errors"

var (
	// ErrInvalidLength means the input was too large for its byte offsets
	// to fit in a uint32. This is the only way a parse can fail, and it is
	// checked once before any node is built.
	ErrInvalidLength = errors.New("input length does not fit in a uint32 span")

	// ErrLengthOverflow means the content given to a [Bytes] value was too
	// large to fit the uint32 length ceiling.
	ErrLengthOverflow = errors.New("byte-string content length does not fit in a uint32")
)
