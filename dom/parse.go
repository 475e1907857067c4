// Package dom is a streaming, zero-copy HTML parser and in-memory document
// model. A parse walks the input exactly once and produces a flat arena of
// nodes connected by handle (index) relationships; tag names, attribute
// values and text runs are windows into the input, not copies.
//
// The parser is deliberately permissive: mismatched closing tags, unusual
// attribute quoting and unknown <!...> constructs are interpreted
// best-effort instead of rejected, which is how real-world HTML has to be
// consumed. The single fatal condition is input larger than the uint32
// span ceiling.
package dom

// Parse parses input into a [Document].
//
// The document borrows from input: keep input reachable for as long as the
// document is in use (Go's garbage collector does this automatically as
// long as the document itself is referenced, since its nodes hold windows
// of the input string). To bind the two together explicitly, use
// [ParseOwned].
//
// The only error is [ErrInvalidLength], returned before any node is built
// when len(input) exceeds [MaxLength].
func Parse(input string, opts Options) (*Document, error) {
	p := newParser(input, opts)

	if err := p.parse(); err != nil {
		return nil, err
	}

	return &Document{parser: p}, nil
}
