// Package selector implements CSS-style query selectors over a parsed
// [dom.Document]: a small expression tree, a recursive-descent parser for
// the selector grammar, and iteration over arena regions yielding matching
// handles.
package selector

import (
	"strings"

	"github.com/Drolfothesgnir/skim/dom"
)

// Selector is one node of a parsed selector expression. Matching a single
// document node is a pure evaluation with no side effects.
//
// The structural combinators [Descendant] and [Child] cannot be decided by
// looking at one node in isolation; they always report false from Matches
// and are resolved by [QueryAll] / [QueryTag], which walk the arena.
type Selector interface {
	// Matches evaluates the selector against one node. p must be the
	// parser that issued the node.
	Matches(p *dom.Parser, n *dom.Node) bool
}

// Tag matches elements by tag name: `div`.
type Tag string

func (s Tag) Matches(_ *dom.Parser, n *dom.Node) bool {
	tag := n.AsTag()
	return tag != nil && tag.Name().EqStr(string(s))
}

// ID matches elements by id attribute: `#foo`.
type ID string

func (s ID) Matches(_ *dom.Parser, n *dom.Node) bool {
	tag := n.AsTag()
	if tag == nil {
		return false
	}

	id, ok := tag.Attributes().ID()
	return ok && id.EqStr(string(s))
}

// Class matches elements carrying a class token: `.foo`.
type Class string

func (s Class) Matches(_ *dom.Parser, n *dom.Node) bool {
	tag := n.AsTag()
	return tag != nil && tag.Attributes().ClassMember(string(s))
}

// All matches every node: `*`.
type All struct{}

func (All) Matches(_ *dom.Parser, _ *dom.Node) bool {
	return true
}

// And matches nodes satisfying both sides: `div.foo`.
type And struct {
	Left, Right Selector
}

func (s And) Matches(p *dom.Parser, n *dom.Node) bool {
	return s.Left.Matches(p, n) && s.Right.Matches(p, n)
}

// Or matches nodes satisfying either side: `.foo, .bar`.
type Or struct {
	Left, Right Selector
}

func (s Or) Matches(p *dom.Parser, n *dom.Node) bool {
	return s.Left.Matches(p, n) || s.Right.Matches(p, n)
}

// Descendant matches right-side nodes anywhere inside a left-side match:
// `.foo .bar`. Resolved during iteration, not per node.
type Descendant struct {
	Left, Right Selector
}

func (Descendant) Matches(*dom.Parser, *dom.Node) bool {
	return false
}

// Child matches right-side nodes that are direct children of a left-side
// match: `.foo > .bar`. Resolved during iteration, not per node.
type Child struct {
	Left, Right Selector
}

func (Child) Matches(*dom.Parser, *dom.Node) bool {
	return false
}

// Attr matches elements that have an attribute, value or not: `[foo]`.
type Attr string

func (s Attr) Matches(_ *dom.Parser, n *dom.Node) bool {
	tag := n.AsTag()
	return tag != nil && tag.Attributes().Contains(string(s))
}

// AttrOp selects how [AttrValue] compares the attribute's value.
type AttrOp uint8

const (
	// OpEquals is `[foo=bar]`.
	OpEquals AttrOp = iota
	// OpToken is `[foo~=bar]`: bar appears in the whitespace-separated list.
	OpToken
	// OpPrefix is `[foo^=bar]`.
	OpPrefix
	// OpSuffix is `[foo$=bar]`.
	OpSuffix
	// OpSubstring is `[foo*=bar]`.
	OpSubstring
)

// AttrValue matches elements whose attribute value relates to Value
// according to Op. Flag attributes without a value never match.
type AttrValue struct {
	Name  string
	Value string
	Op    AttrOp
}

func (s AttrValue) Matches(_ *dom.Parser, n *dom.Node) bool {
	tag := n.AsTag()
	if tag == nil {
		return false
	}

	value, ok := tag.Attributes().Get(s.Name)
	if !ok {
		return false
	}

	got := value.AsUTF8Str()

	switch s.Op {
	case OpEquals:
		return got == s.Value
	case OpPrefix:
		return strings.HasPrefix(got, s.Value)
	case OpSuffix:
		return strings.HasSuffix(got, s.Value)
	case OpSubstring:
		return strings.Contains(got, s.Value)
	case OpToken:
		for _, token := range strings.Fields(got) {
			if token == s.Value {
				return true
			}
		}
		return false
	default:
		return false
	}
}
