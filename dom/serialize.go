package dom

import "strings"

// InnerHTML re-serializes the tag's children from the arena. Attribute
// order and internal whitespace are not guaranteed to match the original
// source; for the untouched original markup use [Tag.Raw].
func (t *Tag) InnerHTML(p *Parser) string {
	var sb strings.Builder
	for _, h := range t.children.Slice() {
		appendNodeHTML(p, h, &sb)
	}
	return sb.String()
}

// OuterHTML re-serializes the whole element, its own tag included.
func (t *Tag) OuterHTML(p *Parser) string {
	var sb strings.Builder
	t.appendHTML(p, &sb)
	return sb.String()
}

func (t *Tag) appendHTML(p *Parser, sb *strings.Builder) {
	name := t.name.AsUTF8Str()

	sb.WriteByte('<')
	sb.WriteString(name)

	t.attributes.Range(func(attr string, value Bytes, hasValue bool) bool {
		sb.WriteByte(' ')
		sb.WriteString(attr)
		if hasValue {
			sb.WriteString(`="`)
			sb.WriteString(value.AsUTF8Str())
			sb.WriteByte('"')
		}
		return true
	})

	if isVoidTag(name) && t.children.Len() == 0 {
		sb.WriteByte('>')
		return
	}

	sb.WriteByte('>')

	for _, h := range t.children.Slice() {
		appendNodeHTML(p, h, sb)
	}

	sb.WriteString("</")
	sb.WriteString(name)
	sb.WriteByte('>')
}

func appendNodeHTML(p *Parser, h NodeHandle, sb *strings.Builder) {
	node := h.Get(p)
	if node == nil {
		return
	}

	switch node.kind {
	case KindTag:
		node.tag.appendHTML(p, sb)
	default:
		// raw text and comments serialize as-is; comment text already
		// carries its delimiters
		sb.WriteString(node.text.AsUTF8Str())
	}
}

// TreeNode is the JSON-friendly shape of one node, used by callers that
// want to ship a parsed document over the wire.
type TreeNode struct {
	Kind       string            `json:"kind"`
	Name       string            `json:"name,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Text       string            `json:"text,omitempty"`
	Children   []TreeNode        `json:"children,omitempty"`
}

// SerializedDocument is the JSON-friendly shape of a whole document.
type SerializedDocument struct {
	Version   string     `json:"version"`
	NodeCount int        `json:"node_count"`
	Children  []TreeNode `json:"children"`
}

var kindToString = map[NodeKind]string{
	KindTag:     "tag",
	KindRaw:     "text",
	KindComment: "comment",
}

// serializeTask places the node behind handle into parent.Children[childIdx].
type serializeTask struct {
	parent   *[]TreeNode
	childIdx int
	handle   NodeHandle
}

// Serialize converts the document into a tree of [TreeNode] values. The
// walk uses an explicit task stack, same as the parse itself, so document
// depth never translates into call-stack depth.
func (d *Document) Serialize() SerializedDocument {
	p := d.parser

	out := SerializedDocument{
		Version:   p.version.String(),
		NodeCount: len(p.nodes),
		Children:  make([]TreeNode, len(p.topLevel)),
	}

	stack := make([]serializeTask, 0, len(p.topLevel))
	for i, h := range p.topLevel {
		stack = append(stack, serializeTask{&out.Children, i, h})
	}

	for len(stack) > 0 {
		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := task.handle.Get(p)
		if node == nil {
			continue
		}

		tn := TreeNode{Kind: kindToString[node.kind]}

		switch node.kind {
		case KindTag:
			tag := &node.tag
			tn.Name = tag.name.AsUTF8Str()

			if tag.attributes.Len() > 0 {
				tn.Attributes = make(map[string]string, tag.attributes.Len())
				tag.attributes.Range(func(name string, value Bytes, hasValue bool) bool {
					if hasValue {
						tn.Attributes[name] = value.AsUTF8Str()
					} else {
						tn.Attributes[name] = ""
					}
					return true
				})
			}

			children := tag.children.Slice()
			tn.Children = make([]TreeNode, len(children))

			(*task.parent)[task.childIdx] = tn

			// need the placed slice so child tasks write into it
			placed := &(*task.parent)[task.childIdx].Children
			for i, h := range children {
				stack = append(stack, serializeTask{placed, i, h})
			}
			continue

		default:
			tn.Text = node.text.AsUTF8Str()
		}

		(*task.parent)[task.childIdx] = tn
	}

	return out
}
