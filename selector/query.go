package selector

import "github.com/Drolfothesgnir/skim/dom"

// QueryAll walks the whole document in arena index order and returns the
// handles of every node the selector matches. A nil selector (e.g. from a
// malformed selector string) matches nothing.
func QueryAll(doc *dom.Document, sel Selector) []dom.NodeHandle {
	if sel == nil {
		return nil
	}

	p := doc.Parser()
	return queryRegion(p, sel, 0, dom.NodeHandle(len(p.Nodes())))
}

// QueryString parses the selector string and runs [QueryAll] with it.
func QueryString(doc *dom.Document, sel string) []dom.NodeHandle {
	return QueryAll(doc, Parse(sel))
}

// QueryTag restricts the walk to one tag's subtree. h must be the handle
// the tag was resolved from, issued by doc's parser.
func QueryTag(doc *dom.Document, h dom.NodeHandle, sel Selector) []dom.NodeHandle {
	if sel == nil {
		return nil
	}

	p := doc.Parser()

	node := h.Get(p)
	if node == nil {
		return nil
	}

	tag := node.AsTag()
	if tag == nil {
		return nil
	}

	return queryRegion(p, sel, h+1, tag.SubtreeEnd())
}

// queryRegion yields matches within the half-open handle range
// [start, end). Descendants of a tag occupy exactly the range between the
// tag's own handle and its SubtreeEnd, so structural combinators reduce to
// re-running the right-hand side over a narrower region.
func queryRegion(p *dom.Parser, sel Selector, start, end dom.NodeHandle) []dom.NodeHandle {
	switch s := sel.(type) {
	case Descendant:
		var out []dom.NodeHandle
		seen := make(map[dom.NodeHandle]struct{})

		for _, left := range queryRegion(p, s.Left, start, end) {
			tag := left.Get(p).AsTag()
			if tag == nil {
				continue
			}

			// nested left matches can cover the same right match twice,
			// e.g. `div div` over <div><div><p>; dedupe, keep index order
			for _, h := range queryRegion(p, s.Right, left+1, tag.SubtreeEnd()) {
				if _, dup := seen[h]; dup {
					continue
				}
				seen[h] = struct{}{}
				out = append(out, h)
			}
		}
		return out

	case Child:
		var out []dom.NodeHandle

		for _, left := range queryRegion(p, s.Left, start, end) {
			tag := left.Get(p).AsTag()
			if tag == nil {
				continue
			}

			for _, child := range tag.Children().Slice() {
				if node := child.Get(p); node != nil && s.Right.Matches(p, node) {
					out = append(out, child)
				}
			}
		}
		return out

	default:
		var out []dom.NodeHandle

		for h := start; h < end; h++ {
			node := h.Get(p)
			if node == nil {
				break
			}
			if sel.Matches(p, node) {
				out = append(out, h)
			}
		}
		return out
	}
}
