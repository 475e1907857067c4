package dom

const (
	commentOpen  = "<!--"
	commentClose = "-->"

	idAttr    = "id"
	classAttr = "class"
)

// voidTags are the element kinds that never have children or a closing tag.
// Encountering one never pushes onto the open-tag stack, so the following
// markup becomes a sibling instead of a child.
var voidTags = map[string]struct{}{
	"area":   {},
	"base":   {},
	"br":     {},
	"col":    {},
	"embed":  {},
	"hr":     {},
	"img":    {},
	"input":  {},
	"keygen": {},
	"link":   {},
	"meta":   {},
	"param":  {},
	"source": {},
	"track":  {},
	"wbr":    {},
}

func isVoidTag(name string) bool {
	_, ok := voidTags[name]
	return ok
}
