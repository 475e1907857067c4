package dom

import (
	"strings"

	"github.com/Drolfothesgnir/skim/inline"
)

// attrValue distinguishes `name="value"` pairs from bare flag attributes
// like `disabled`, which exist but carry no value.
type attrValue struct {
	value    Bytes
	hasValue bool
}

// Attributes stores the attributes of one tag: the full set in a small
// inline map, plus the id and class values split out because they are on
// the lookup fast path.
//
// Attribute names are windows into the source document, so storing them
// costs no copies during parsing.
type Attributes struct {
	raw inline.Map[string, attrValue]

	id       Bytes
	hasID    bool
	class    Bytes
	hasClass bool
}

// Len returns the number of attributes, flags included.
func (a *Attributes) Len() int {
	return a.raw.Len()
}

// Contains reports whether an attribute with the given name exists, whether
// or not it has a value.
func (a *Attributes) Contains(name string) bool {
	return a.raw.Contains(name)
}

// Get returns the value of the named attribute. ok is false when the
// attribute is absent or is a bare flag.
func (a *Attributes) Get(name string) (value Bytes, ok bool) {
	v, present := a.raw.Get(name)
	if !present || !v.hasValue {
		return Bytes{}, false
	}
	return v.value, true
}

// Set stores value under name, replacing any previous value. The id and
// class fast-path fields follow the change; the parse-time id/class indices
// of the owning document do not, they are a snapshot.
func (a *Attributes) Set(name string, value Bytes) {
	a.raw.Set(name, attrValue{value: value, hasValue: true})

	switch name {
	case idAttr:
		a.id = value
		a.hasID = true
	case classAttr:
		a.class = value
		a.hasClass = true
	}
}

// SetFlag stores a bare flag attribute under name.
func (a *Attributes) SetFlag(name string) {
	a.raw.Set(name, attrValue{})
}

// Remove deletes the named attribute, reporting whether it existed.
func (a *Attributes) Remove(name string) bool {
	_, ok := a.raw.Delete(name)
	if !ok {
		return false
	}

	switch name {
	case idAttr:
		a.id = Bytes{}
		a.hasID = false
	case classAttr:
		a.class = Bytes{}
		a.hasClass = false
	}
	return true
}

// Range calls f for every attribute until f returns false. hasValue is
// false for bare flags. Order is unspecified.
func (a *Attributes) Range(f func(name string, value Bytes, hasValue bool) bool) {
	a.raw.Range(func(name string, v attrValue) bool {
		return f(name, v.value, v.hasValue)
	})
}

// ID returns the id attribute value, if present.
func (a *Attributes) ID() (Bytes, bool) {
	return a.id, a.hasID
}

// Class returns the raw class attribute value, if present.
func (a *Attributes) Class() (Bytes, bool) {
	return a.class, a.hasClass
}

// ClassMember reports whether name appears as one of the whitespace
// separated tokens of the class attribute.
func (a *Attributes) ClassMember(name string) bool {
	if !a.hasClass || name == "" {
		return false
	}

	class, _ := a.class.TryBorrowed()
	if a.class.IsOwned() {
		class = a.class.AsUTF8Str()
	}

	for _, token := range strings.Fields(class) {
		if token == name {
			return true
		}
	}
	return false
}

// Tag is the payload of a [KindTag] node: name, attributes, child handles
// and the exact source span the element occupies.
type Tag struct {
	name       Bytes
	attributes Attributes
	children   inline.Vec[NodeHandle]

	// raw spans from the opening '<' through the matching close, or through
	// the tag's own '>' for self-closing and void tags.
	raw Bytes

	// subtreeEnd is one past the highest arena index belonging to this
	// tag's subtree, finalized when the tag is closed. Children register
	// after their parent, so the subtree is exactly the half-open handle
	// range (own handle, subtreeEnd).
	subtreeEnd NodeHandle
}

// Name returns the tag name as it appeared in the source.
func (t *Tag) Name() Bytes {
	return t.name
}

// SetName replaces the tag name.
func (t *Tag) SetName(name Bytes) {
	t.name = name
}

// Attributes returns the attribute set for reading and mutation.
func (t *Tag) Attributes() *Attributes {
	return &t.attributes
}

// Children returns the child handle list for reading and mutation. Handles
// resolve against the parser that produced this tag.
func (t *Tag) Children() *inline.Vec[NodeHandle] {
	return &t.children
}

// Raw returns the source span of the whole element. Mutations made after
// parsing do not rewrite this span; it is the original markup.
func (t *Tag) Raw() Bytes {
	return t.raw
}

// SubtreeEnd returns one past the last arena index of this tag's subtree.
// Together with the tag's own handle it bounds the region that descendant
// iteration and selector matching walk.
func (t *Tag) SubtreeEnd() NodeHandle {
	return t.subtreeEnd
}

// InnerText returns the concatenated text of all descendants, skipping
// markup and comments.
func (t *Tag) InnerText(p *Parser) string {
	children := t.children.Slice()

	if len(children) == 0 {
		return ""
	}

	// single text child is the common case and needs no builder
	if len(children) == 1 {
		if node := children[0].Get(p); node != nil {
			return node.InnerText(p)
		}
		return ""
	}

	var sb strings.Builder
	t.appendInnerText(p, &sb)
	return sb.String()
}

func (t *Tag) appendInnerText(p *Parser, sb *strings.Builder) {
	for _, h := range t.children.Slice() {
		if node := h.Get(p); node != nil {
			node.appendInnerText(p, sb)
		}
	}
}
