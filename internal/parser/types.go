package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/NexRX/tauri-bridge/internal/models"
)

// The type grammar covers every shape the analyzer models: references with
// optional lifetime and mutability, paths with an outermost generic argument
// list, tuples, arrays, slices, and parenthesized types. Anything outside the
// grammar (fn pointers, trait objects, raw pointers) degrades to a verbatim
// leaf rather than a parse failure.

var typeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Lifetime", Pattern: `'[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "PathSep", Pattern: `::`},
	{Name: "Punct", Pattern: `[&<>,;()\[\]]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var typeParser = participle.MustBuild[typeNode](
	participle.Lexer(typeLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

type typeNode struct {
	Reference *referenceNode `parser:"@@"`
	Group     *groupNode     `parser:"| @@"`
	Bracket   *bracketNode   `parser:"| @@"`
	Path      *pathNode      `parser:"| @@"`
}

type referenceNode struct {
	Lifetime string    `parser:"'&' @Lifetime?"`
	Mutable  bool      `parser:"@'mut'?"`
	Elem     *typeNode `parser:"@@"`
}

// groupNode parses '(' ... ')'. A single element with no comma is a
// parenthesized type; everything else (including the empty unit and the
// one-element tuple with trailing comma) is a tuple.
type groupNode struct {
	First *typeNode   `parser:"'(' @@?"`
	Rest  []groupRest `parser:"@@* ')'"`
}

type groupRest struct {
	Comma bool      `parser:"@','"`
	Elem  *typeNode `parser:"@@?"`
}

// bracketNode parses '[' T ']' (slice) or '[' T ';' len ']' (array)
type bracketNode struct {
	Elem *typeNode `parser:"'[' @@"`
	Len  string    `parser:"(';' @(Int | Ident))? ']'"`
}

type pathNode struct {
	Segments []string          `parser:"@Ident ('::' @Ident)*"`
	Args     []*genericArgNode `parser:"('<' @@ (',' @@)* '>')?"`
}

type genericArgNode struct {
	Lifetime *string   `parser:"@Lifetime"`
	Const    *string   `parser:"| @Int"`
	Type     *typeNode `parser:"| @@"`
}

// ParseType parses a Rust type expression into a descriptor. It is total:
// syntax the grammar does not model comes back as a verbatim leaf with its
// whitespace normalized.
func ParseType(input string) models.TypeDescriptor {
	node, err := typeParser.ParseString("", strings.TrimSpace(input))
	if err != nil {
		return verbatimType(input)
	}
	return node.toDescriptor()
}

func verbatimType(input string) models.TypeDescriptor {
	return models.TypeDescriptor{
		Kind: models.TypeKindVerbatim,
		Raw:  strings.Join(strings.Fields(input), " "),
	}
}

func (n *typeNode) toDescriptor() models.TypeDescriptor {
	switch {
	case n.Reference != nil:
		elem := n.Reference.Elem.toDescriptor()
		return models.TypeDescriptor{
			Kind:     models.TypeKindReference,
			Lifetime: n.Reference.Lifetime,
			Mutable:  n.Reference.Mutable,
			Elem:     &elem,
		}
	case n.Group != nil:
		return n.Group.toDescriptor()
	case n.Bracket != nil:
		elem := n.Bracket.Elem.toDescriptor()
		if n.Bracket.Len != "" {
			return models.TypeDescriptor{Kind: models.TypeKindArray, Elem: &elem, Len: n.Bracket.Len}
		}
		return models.TypeDescriptor{Kind: models.TypeKindSlice, Elem: &elem}
	case n.Path != nil:
		return n.Path.toDescriptor()
	default:
		return verbatimType("")
	}
}

func (n *groupNode) toDescriptor() models.TypeDescriptor {
	if n.First == nil {
		return models.Unit()
	}
	if len(n.Rest) == 0 {
		elem := n.First.toDescriptor()
		return models.TypeDescriptor{Kind: models.TypeKindParen, Elem: &elem}
	}
	elems := []models.TypeDescriptor{n.First.toDescriptor()}
	for _, rest := range n.Rest {
		if rest.Elem != nil {
			elems = append(elems, rest.Elem.toDescriptor())
		}
	}
	return models.TypeDescriptor{Kind: models.TypeKindTuple, Elems: elems}
}

func (n *pathNode) toDescriptor() models.TypeDescriptor {
	out := models.TypeDescriptor{Kind: models.TypeKindPath, Segments: n.Segments}
	for _, arg := range n.Args {
		switch {
		case arg.Lifetime != nil:
			out.Args = append(out.Args, models.GenericArg{Raw: *arg.Lifetime})
		case arg.Const != nil:
			out.Args = append(out.Args, models.GenericArg{Raw: *arg.Const})
		case arg.Type != nil:
			inner := arg.Type.toDescriptor()
			out.Args = append(out.Args, models.GenericArg{Type: &inner})
		}
	}
	return out
}
