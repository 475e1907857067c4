package selector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_Simple(t *testing.T) {
	testCases := []struct {
		input    string
		expected Selector
	}{
		{"div", Tag("div")},
		{"#main", ID("main")},
		{".item", Class("item")},
		{"*", All{}},
		{"[href]", Attr("href")},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.expected, Parse(tc.input))
		})
	}
}

func TestParse_Compound(t *testing.T) {
	// adjacency without whitespace builds And
	require.Equal(t, And{Tag("div"), ID("test")}, Parse("div#test"))
	require.Equal(t, And{Tag("a"), Class("ext")}, Parse("a.ext"))

	// And is right-associative over longer chains
	require.Equal(t,
		And{Tag("div"), And{ID("x"), Class("y")}},
		Parse("div#x.y"))
}

func TestParse_Combinators(t *testing.T) {
	require.Equal(t, Descendant{Tag("div"), Tag("p")}, Parse("div p"))
	require.Equal(t, Descendant{Tag("div"), Tag("p")}, Parse("div\tp"))
	require.Equal(t, Descendant{Tag("div"), Tag("p")}, Parse("div\n  p"))
	require.Equal(t, Child{Tag("ul"), Tag("li")}, Parse("ul > li"))
	require.Equal(t, Child{Tag("ul"), Tag("li")}, Parse("ul>li"))
	require.Equal(t, Child{Tag("ul"), Tag("li")}, Parse("ul\t>\tli"))
	require.Equal(t, Or{Class("a"), Class("b")}, Parse(".a, .b"))

	require.Equal(t,
		Descendant{ID("nav"), Child{Tag("ul"), Tag("li")}},
		Parse("#nav ul > li"))
}

func TestParse_AttributeOperators(t *testing.T) {
	testCases := []struct {
		input    string
		expected AttrValue
	}{
		{"[href=x]", AttrValue{Name: "href", Value: "x", Op: OpEquals}},
		{"[class~=x]", AttrValue{Name: "class", Value: "x", Op: OpToken}},
		{"[href^=x]", AttrValue{Name: "href", Value: "x", Op: OpPrefix}},
		{"[href$=x]", AttrValue{Name: "href", Value: "x", Op: OpSuffix}},
		{"[href*=x]", AttrValue{Name: "href", Value: "x", Op: OpSubstring}},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.expected, Parse(tc.input))
		})
	}
}

func TestParse_QuotedAttributeValue(t *testing.T) {
	require.Equal(t,
		AttrValue{Name: "type", Value: "text", Op: OpEquals},
		Parse(`[type="text"]`))
	require.Equal(t,
		AttrValue{Name: "type", Value: "text", Op: OpEquals},
		Parse(`[type='text']`))
}

func TestParse_Malformed(t *testing.T) {
	malformed := []string{
		"",
		"   ",
		"#",      // empty identifier
		"div >",  // combinator with no right-hand side
		"[href",  // unclosed attribute
		"[href=", // missing value and bracket
		`[a="x]`, // unterminated quote
		"!bad",
	}

	for _, input := range malformed {
		t.Run(input, func(t *testing.T) {
			require.Nil(t, Parse(input))
		})
	}
}
