package dom

import "strings"

// NodeKind discriminates the three node shapes of a parsed document.
type NodeKind uint8

const (
	// KindTag is a regular HTML element.
	KindTag NodeKind = iota

	// KindRaw is a run of text with no markup in it.
	KindRaw

	// KindComment is a <!-- --> comment, delimiters included.
	KindComment
)

// Node is one slot of the arena. Exactly one payload is meaningful,
// selected by the kind: the tag for [KindTag], the text for the others.
type Node struct {
	kind NodeKind
	tag  Tag
	text Bytes
}

// Kind returns the node's shape.
func (n *Node) Kind() NodeKind {
	return n.kind
}

// AsTag returns the tag payload, or nil if the node is not a tag.
func (n *Node) AsTag() *Tag {
	if n.kind != KindTag {
		return nil
	}
	return &n.tag
}

// AsRaw returns the text of a raw text node.
func (n *Node) AsRaw() (Bytes, bool) {
	if n.kind != KindRaw {
		return Bytes{}, false
	}
	return n.text, true
}

// AsComment returns the full delimited text of a comment node.
func (n *Node) AsComment() (Bytes, bool) {
	if n.kind != KindComment {
		return Bytes{}, false
	}
	return n.text, true
}

// InnerText returns the concatenated text of this node and all its
// descendants, excluding markup. Comments contribute nothing. The parser
// that issued this node must be passed in to resolve child handles.
func (n *Node) InnerText(p *Parser) string {
	switch n.kind {
	case KindRaw:
		return n.text.AsUTF8Str()
	case KindComment:
		return ""
	default:
		return n.tag.InnerText(p)
	}
}

func newRawNode(text Bytes) Node {
	return Node{kind: KindRaw, text: text}
}

func newCommentNode(text Bytes) Node {
	return Node{kind: KindComment, text: text}
}

func newTagNode(tag Tag) Node {
	return Node{kind: KindTag, tag: tag}
}

func (n *Node) appendInnerText(p *Parser, sb *strings.Builder) {
	switch n.kind {
	case KindRaw:
		sb.WriteString(n.text.AsUTF8Str())
	case KindTag:
		n.tag.appendInnerText(p, sb)
	}
}
