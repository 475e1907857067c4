package dom

// HTMLVersion is the document version detected from a DOCTYPE declaration.
type HTMLVersion uint8

const (
	// VersionUnknown means no recognized DOCTYPE was seen.
	VersionUnknown HTMLVersion = iota
	// VersionHTML5 is <!DOCTYPE html>.
	VersionHTML5
	// VersionStrictHTML401 is strict HTML 4.01.
	VersionStrictHTML401
	// VersionTransitionalHTML401 is transitional HTML 4.01.
	VersionTransitionalHTML401
	// VersionFramesetHTML401 is frameset HTML 4.01.
	VersionFramesetHTML401
)

func (v HTMLVersion) String() string {
	switch v {
	case VersionHTML5:
		return "HTML5"
	case VersionStrictHTML401:
		return "HTML 4.01 Strict"
	case VersionTransitionalHTML401:
		return "HTML 4.01 Transitional"
	case VersionFramesetHTML401:
		return "HTML 4.01 Frameset"
	default:
		return "unknown"
	}
}

// Document is a fully parsed HTML document: the arena of nodes, the
// top-level handles, and the optional id/class lookup indices. It is the
// exclusive owner of its [Parser].
type Document struct {
	parser *Parser
}

// Parser exposes the owning parser, needed to resolve the handles this
// document hands out.
func (d *Document) Parser() *Parser {
	return d.parser
}

// Children returns the handles attached directly to the document root, in
// source order.
func (d *Document) Children() []NodeHandle {
	return d.parser.topLevel
}

// Nodes returns the full node table in registration order.
func (d *Document) Nodes() []Node {
	return d.parser.nodes
}

// Version returns the HTML version detected from the DOCTYPE, or
// [VersionUnknown].
func (d *Document) Version() HTMLVersion {
	return d.parser.version
}

// GetElementByID returns the handle of the tag whose id attribute equals id
// at parse time. With id tracking enabled this is a single map lookup;
// without it, a linear scan over the arena.
func (d *Document) GetElementByID(id string) (NodeHandle, bool) {
	if d.parser.ids != nil {
		h, ok := d.parser.ids[id]
		return h, ok
	}

	for i := range d.parser.nodes {
		tag := d.parser.nodes[i].AsTag()
		if tag == nil {
			continue
		}

		if got, ok := tag.attributes.ID(); ok && got.EqStr(id) {
			return NodeHandle(i), true
		}
	}

	return 0, false
}

// GetElementsByClassName returns the handles of every tag carrying class as
// one of its class tokens at parse time, in source order. With class
// tracking enabled this reads the prebuilt index; without it, it falls back
// to a linear scan.
func (d *Document) GetElementsByClassName(class string) []NodeHandle {
	if d.parser.classes != nil {
		bucket, ok := d.parser.classes[class]
		if !ok {
			return nil
		}

		out := make([]NodeHandle, bucket.Len())
		copy(out, bucket.Slice())
		return out
	}

	var out []NodeHandle
	for i := range d.parser.nodes {
		tag := d.parser.nodes[i].AsTag()
		if tag == nil {
			continue
		}

		if tag.attributes.ClassMember(class) {
			out = append(out, NodeHandle(i))
		}
	}
	return out
}
