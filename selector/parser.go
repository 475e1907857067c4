package selector

import "github.com/Drolfothesgnir/skim/scan"

// Parse parses a selector expression like `div#main .item > [href^=http]`.
// A malformed selector yields nil; a nil selector matches nothing, so bad
// input degrades to "no matches" rather than a runtime error.
func Parse(input string) Selector {
	p := &parser{input: input}

	sel, ok := p.selector()
	if !ok {
		return nil
	}
	return sel
}

// parser is a small recursive-descent parser over the selector bytes.
type parser struct {
	input string
	pos   int
}

func (p *parser) selector() (Selector, bool) {
	p.skipSpaces()

	c, ok := p.current()
	if !ok {
		return nil, false
	}

	var left Selector

	switch {
	case c == '#':
		p.pos++
		id := p.readIdent()
		if id == "" {
			return nil, false
		}
		left = ID(id)

	case c == '.':
		p.pos++
		class := p.readIdent()
		if class == "" {
			return nil, false
		}
		left = Class(class)

	case c == '*':
		p.pos++
		left = All{}

	case c == '[':
		p.pos++
		attr, ok := p.parseAttribute()
		if !ok {
			return nil, false
		}
		left = attr

	case scan.IsIdent(c):
		left = Tag(p.readIdent())

	default:
		return nil, false
	}

	return p.parseCombinator(left)
}

// parseCombinator continues after a simple selector: `,` builds Or, `>`
// builds Child, whitespace builds Descendant, and direct adjacency builds
// And. End of input returns left as-is.
func (p *parser) parseCombinator(left Selector) (Selector, bool) {
	hadSpaces := p.skipSpaces()

	c, ok := p.current()
	if !ok {
		return left, true
	}

	switch {
	case c == ',':
		p.pos++
		right, ok := p.selector()
		if !ok {
			return nil, false
		}
		return Or{left, right}, true

	case c == '>':
		p.pos++
		right, ok := p.selector()
		if !ok {
			return nil, false
		}
		return Child{left, right}, true

	case hadSpaces:
		right, ok := p.selector()
		if !ok {
			return nil, false
		}
		return Descendant{left, right}, true

	default:
		right, ok := p.selector()
		if !ok {
			return nil, false
		}
		return And{left, right}, true
	}
}

// parseAttribute continues after '[': `[name]`, `[name=value]` and the
// `~=` `^=` `$=` `*=` variants, with optionally quoted values.
func (p *parser) parseAttribute() (Selector, bool) {
	name := p.readIdent()
	if name == "" {
		return nil, false
	}

	c, ok := p.current()
	if !ok {
		return nil, false
	}

	switch c {
	case ']':
		p.pos++
		return Attr(name), true

	case '=':
		p.pos++
		value, ok := p.readAttrValue()
		if !ok {
			return nil, false
		}
		return AttrValue{Name: name, Value: value, Op: OpEquals}, true

	case '~', '^', '$', '*':
		p.pos++
		if !p.expect('=') {
			return nil, false
		}

		value, ok := p.readAttrValue()
		if !ok {
			return nil, false
		}

		op := OpToken
		switch c {
		case '^':
			op = OpPrefix
		case '$':
			op = OpSuffix
		case '*':
			op = OpSubstring
		}

		return AttrValue{Name: name, Value: value, Op: op}, true

	default:
		return nil, false
	}
}

// readAttrValue reads an optionally quoted value and the closing ']'.
// Bare values run to the bracket, so bytes like '.' and '/' that are not
// identifier bytes still work: `[href*=x.com/y]`.
func (p *parser) readAttrValue() (string, bool) {
	if c, ok := p.current(); ok && (c == '"' || c == '\'') {
		p.pos++
		start := p.pos

		rel := scan.IndexByte(p.input[p.pos:], c)
		if rel < 0 {
			return "", false
		}

		value := p.input[start : start+rel]
		p.pos = start + rel + 1

		if !p.expect(']') {
			return "", false
		}
		return value, true
	}

	start := p.pos

	rel := scan.IndexByte(p.input[p.pos:], ']')
	if rel < 0 {
		return "", false
	}

	value := p.input[start : start+rel]
	p.pos = start + rel + 1
	return value, true
}

func (p *parser) readIdent() string {
	start := p.pos

	rel := scan.IndexNonIdent(p.input[p.pos:])
	if rel < 0 {
		p.pos = len(p.input)
	} else {
		p.pos += rel
	}

	return p.input[start:p.pos]
}

// skipSpaces consumes whitespace and reports whether there was any; the
// answer decides between the And and Descendant combinators.
func (p *parser) skipSpaces() bool {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c != ' ' && c != '\t' && c != '\n' {
			break
		}
		p.pos++
	}
	return p.pos > start
}

func (p *parser) current() (byte, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *parser) expect(c byte) bool {
	if got, ok := p.current(); ok && got == c {
		p.pos++
		return true
	}
	return false
}
