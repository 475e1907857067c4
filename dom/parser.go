package dom

import (
	"strings"

	"github.com/Drolfothesgnir/skim/inline"
	"github.com/Drolfothesgnir/skim/scan"
)

// Parser owns the arena of a parsed document: a single append-only node
// table that every [NodeHandle] indexes into. The flat table plus index
// relationships replace a pointer tree, so child links, retained handles
// and back-references never form reference cycles.
//
// A Parser is exclusively owned by the [Document] built from it. Handles
// may be copied and shared freely for reading; mutation through
// [Parser.Resolve] requires the caller to hold exclusive access to the
// parser, there is no internal locking.
type Parser struct {
	input string
	pos   int
	opts  Options

	// nodes is the arena. It only grows, so handles never invalidate.
	nodes []Node

	// topLevel collects the handles attached directly to the document root.
	topLevel []NodeHandle

	// stack tracks the currently open tags. Nesting depth is bounded by
	// Options.MaxDepth here, on an explicit stack, instead of on the call
	// stack, so adversarial nesting cannot overflow it.
	stack []openTag

	ids     map[string]NodeHandle
	classes map[string]inline.Vec[NodeHandle]

	version HTMLVersion
}

// openTag is one open-tag stack entry: the registered handle plus the
// source offset of the opening '<', needed to finalize the span on close.
type openTag struct {
	handle NodeHandle
	start  int
}

func newParser(input string, opts Options) *Parser {
	p := &Parser{
		input:   input,
		opts:    opts,
		version: VersionUnknown,
	}

	if opts.TrackIDs {
		p.ids = make(map[string]NodeHandle)
	}
	if opts.TrackClasses {
		p.classes = make(map[string]inline.Vec[NodeHandle])
	}

	return p
}

// Resolve returns the node a handle refers to, or nil if the handle is out
// of range. The returned pointer aliases the arena slot, so mutating
// through it mutates the document; callers doing so must have exclusive
// access to the parser. Resolving a handle issued by a different parser is
// a caller error and yields an unrelated node.
func (p *Parser) Resolve(h NodeHandle) *Node {
	if int(h) >= len(p.nodes) {
		return nil
	}
	return &p.nodes[h]
}

// Register appends a node to the arena and returns its handle. The new
// node is not attached to any parent; callers wiring nodes in after a
// parse must also add the handle to some tag's child list.
func (p *Parser) Register(n Node) NodeHandle {
	p.nodes = append(p.nodes, n)
	return NodeHandle(len(p.nodes) - 1)
}

// Nodes returns the full arena in registration order.
func (p *Parser) Nodes() []Node {
	return p.nodes
}

// NewTextNode builds an unattached raw text node for [Parser.Register].
func NewTextNode(text Bytes) Node {
	return newRawNode(text)
}

// NewTagNode builds an unattached tag node with the given name for
// [Parser.Register].
func NewTagNode(name Bytes) Node {
	return newTagNode(Tag{name: name})
}

// parse runs the single-pass tokenizer over the whole input. The only
// failure is the up-front length check; malformed markup degrades to
// "treat as text" or "skip this construct" and never aborts.
func (p *Parser) parse() error {
	if uint64(len(p.input)) > MaxLength {
		return ErrInvalidLength
	}

	n := len(p.input)

	for p.pos < n {
		p.skipWhitespace()
		if p.pos >= n {
			break
		}

		if p.input[p.pos] == '<' {
			p.parseMarkup()
		} else {
			p.parseText()
		}
	}

	// tags still open at end of input close here, with spans running to EOF
	for len(p.stack) > 0 {
		p.closeTop()
	}

	return nil
}

// parseText emits everything up to the next '<' (or EOF) as one raw node.
func (p *Parser) parseText() {
	start := p.pos

	end := len(p.input)
	if rel := scan.IndexByte(p.input[p.pos:], '<'); rel >= 0 {
		end = p.pos + rel
	}

	p.pos = end

	h := p.Register(newRawNode(BorrowedBytes(p.input[start:end])))
	p.appendToParent(h)
}

// parseMarkup handles one '<'-introduced construct: a closing tag, a
// comment, a markup declaration or an element.
func (p *Parser) parseMarkup() {
	start := p.pos
	p.pos++ // the '<'

	if p.pos >= len(p.input) {
		// lone '<' at EOF, nothing to build
		return
	}

	switch p.input[p.pos] {
	case '/':
		p.pos++
		// the identifier is consumed but never matched against the open
		// tag: mismatched closers are tolerated, not rejected
		p.readIdent()
		p.skipPast('>')
		p.closeTop()

	case '!':
		p.pos++
		p.parseMarkupDeclaration(start)

	default:
		p.parseOpenTag(start)
	}
}

// parseMarkupDeclaration handles "<!..." constructs: comments become nodes,
// an HTML5 DOCTYPE sets the version, everything else is discarded.
func (p *Parser) parseMarkupDeclaration(start int) {
	n := len(p.input)

	if strings.HasPrefix(p.input[start:], commentOpen) {
		p.pos = start + len(commentOpen)

		rel := strings.Index(p.input[p.pos:], commentClose)
		if rel < 0 {
			// unterminated comment runs to EOF and produces no node
			p.pos = n
			return
		}

		p.pos += rel + len(commentClose)

		h := p.Register(newCommentNode(BorrowedBytes(p.input[start:p.pos])))
		p.appendToParent(h)
		return
	}

	name := p.readIdent()

	if scan.EqualFoldLower(name, "doctype") {
		p.skipWhitespace()
		if scan.EqualFoldLower(p.readIdent(), "html") {
			p.version = VersionHTML5
		}
	}

	// any other <!...> construct is dropped without a node
	p.skipPast('>')
}

// parseOpenTag reads a tag name and its attributes, registers the node and
// decides whether it can have children.
func (p *Parser) parseOpenTag(start int) {
	n := len(p.input)

	name := p.readIdent()
	if name == "" {
		// '<' followed by a non-identifier; skip the byte and move on
		return
	}

	attributes := p.parseAttributes()

	selfClosing := false
	if p.pos < n && p.input[p.pos] == '/' {
		selfClosing = true
		p.pos++
	}

	p.skipWhitespace()
	if p.pos < n && p.input[p.pos] == '>' {
		p.pos++
	}

	tag := Tag{
		name:       BorrowedBytes(name),
		attributes: attributes,
		raw:        BorrowedBytes(p.input[start:p.pos]),
	}

	h := p.Register(newTagNode(tag))
	p.appendToParent(h)

	if selfClosing || isVoidTag(name) {
		// no children: the span is already final
		p.finalizeTag(h)
		return
	}

	if len(p.stack) < p.opts.maxDepth() {
		p.stack = append(p.stack, openTag{handle: h, start: start})
		return
	}

	// depth bound hit: the tag stays in the tree but descent stops here,
	// so whatever follows becomes its sibling
	p.finalizeTag(h)
}

// parseAttributes reads `name` and `name=value` pairs until the tag head
// closes. Values may be single-quoted, double-quoted or bare.
func (p *Parser) parseAttributes() Attributes {
	var attributes Attributes

	n := len(p.input)

	for p.pos < n {
		p.skipWhitespace()
		if p.pos >= n || scan.IsClosing(p.input[p.pos]) {
			break
		}

		name := p.readIdent()
		if name == "" {
			// stray byte inside the tag head; tolerate and continue
			p.pos++
			continue
		}

		p.skipWhitespace()

		if p.pos < n && p.input[p.pos] == '=' {
			p.pos++
			p.skipWhitespace()
			attributes.Set(name, BorrowedBytes(p.readAttributeValue()))
		} else {
			attributes.SetFlag(name)
		}
	}

	return attributes
}

// readAttributeValue reads a quoted value through its matching quote, or a
// bare value up to the next whitespace, '/' or '>'.
func (p *Parser) readAttributeValue() string {
	n := len(p.input)
	if p.pos >= n {
		return ""
	}

	if quote := p.input[p.pos]; quote == '"' || quote == '\'' {
		p.pos++
		start := p.pos

		rel := scan.IndexByte(p.input[p.pos:], quote)
		if rel < 0 {
			p.pos = n
			return p.input[start:]
		}

		value := p.input[start : start+rel]
		p.pos = start + rel + 1 // past the closing quote
		return value
	}

	start := p.pos

	rel := scan.IndexAny4(p.input[p.pos:], [4]byte{' ', '\t', '\n', '>'})
	if rel < 0 {
		p.pos = n
		return p.input[start:]
	}

	end := start + rel
	if end > start {
		switch {
		case p.input[end] == '>' && p.input[end-1] == '/':
			// the '/' belongs to a self-closing "/>", not the value; a lone
			// '/' stays part of the value ("href=http://x")
			end--
		case p.input[end] == '\n' && p.input[end-1] == '\r':
			end--
		}
	}

	p.pos = end
	return p.input[start:end]
}

// closeTop closes the innermost open tag: its span now runs through the
// current position, its subtree is sealed, and it lands in the id/class
// indices. A close with nothing open is silently dropped.
func (p *Parser) closeTop() {
	if len(p.stack) == 0 {
		return
	}

	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]

	tag := p.nodes[top.handle].AsTag()
	tag.raw = BorrowedBytes(p.input[top.start:p.pos])
	tag.subtreeEnd = NodeHandle(len(p.nodes))

	p.indexTag(top.handle, tag)
}

// finalizeTag seals a tag that can have no children.
func (p *Parser) finalizeTag(h NodeHandle) {
	tag := p.nodes[h].AsTag()
	tag.subtreeEnd = h + 1
	p.indexTag(h, tag)
}

// indexTag records the tag in the opt-in id/class indices. This runs at the
// moment a tag is closed; attribute mutations after the parse do not update
// the indices.
func (p *Parser) indexTag(h NodeHandle, tag *Tag) {
	if p.opts.TrackIDs {
		if id, ok := tag.attributes.ID(); ok && id.Len() > 0 {
			if s, borrowed := id.TryBorrowed(); borrowed {
				p.ids[s] = h
			}
		}
	}

	if p.opts.TrackClasses {
		if class, ok := tag.attributes.Class(); ok {
			s, _ := class.TryBorrowed()
			for _, token := range strings.Fields(s) {
				bucket := p.classes[token]
				bucket.Push(h)
				p.classes[token] = bucket
			}
		}
	}
}

// appendToParent attaches a freshly registered node to the innermost open
// tag, or to the document root when nothing is open.
func (p *Parser) appendToParent(h NodeHandle) {
	if len(p.stack) == 0 {
		p.topLevel = append(p.topLevel, h)
		return
	}

	parent := p.stack[len(p.stack)-1].handle
	p.nodes[parent].AsTag().children.Push(h)
}

// readIdent consumes and returns the identifier at the current position,
// which may be empty.
func (p *Parser) readIdent() string {
	rel := scan.IndexNonIdent(p.input[p.pos:])
	if rel < 0 {
		ident := p.input[p.pos:]
		p.pos = len(p.input)
		return ident
	}

	ident := p.input[p.pos : p.pos+rel]
	p.pos += rel
	return ident
}

// skipPast consumes input through the next occurrence of c, or to EOF.
func (p *Parser) skipPast(c byte) {
	rel := scan.IndexByte(p.input[p.pos:], c)
	if rel < 0 {
		p.pos = len(p.input)
		return
	}
	p.pos += rel + 1
}

func (p *Parser) skipWhitespace() {
	n := len(p.input)
	for p.pos < n {
		c := p.input[p.pos]
		if c != ' ' && c != '\n' && c != '\t' && c != '\r' {
			return
		}
		p.pos++
	}
}
