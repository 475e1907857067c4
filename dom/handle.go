package dom

// NodeHandle is an opaque reference to a node, issued by the [Parser] that
// built it. It is a plain index into that parser's node table: cheap to
// copy, hash and compare, and it stays valid for the lifetime of the parser
// because the table only ever grows.
//
// A handle has no meaning on its own. Resolving it against a parser other
// than the one that issued it is a caller error: it is not guarded against
// at runtime and yields an unrelated node or nil.
type NodeHandle uint32

// Get resolves the handle to its node. It returns nil if the handle is out
// of range for p's table.
func (h NodeHandle) Get(p *Parser) *Node {
	return p.Resolve(h)
}
