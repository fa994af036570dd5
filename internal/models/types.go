package models

import (
	"strings"
)

// TypeKind identifies the shape of a TypeDescriptor node
type TypeKind int

const (
	// TypeKindReference is a borrowed reference type like &str or &'static mut T
	TypeKindReference TypeKind = iota
	// TypeKindPath is a (possibly qualified, possibly generic) named type like std::borrow::Cow<'a, str>
	TypeKindPath
	// TypeKindTuple is a tuple type like (i32, String) or the unit type ()
	TypeKindTuple
	// TypeKindArray is a fixed-length array type like [u8; 16]
	TypeKindArray
	// TypeKindSlice is a slice type like [u8]
	TypeKindSlice
	// TypeKindParen is a parenthesized type like (T)
	TypeKindParen
	// TypeKindVerbatim is any type syntax the grammar does not model; it is
	// carried through as raw text and contains no references as far as
	// analysis is concerned
	TypeKindVerbatim
)

// String returns the kind name for diagnostics
func (k TypeKind) String() string {
	switch k {
	case TypeKindReference:
		return "Reference"
	case TypeKindPath:
		return "Path"
	case TypeKindTuple:
		return "Tuple"
	case TypeKindArray:
		return "Array"
	case TypeKindSlice:
		return "Slice"
	case TypeKindParen:
		return "Paren"
	case TypeKindVerbatim:
		return "Verbatim"
	default:
		return "Unknown"
	}
}

// GenericArg is a single generic argument of a path type. Type arguments are
// modeled structurally; lifetime and const arguments are carried verbatim in Raw.
type GenericArg struct {
	Type *TypeDescriptor
	Raw  string
}

// TypeDescriptor is an immutable value describing the structure of a Rust type.
// Which fields are meaningful depends on Kind:
//
//   - Reference: Lifetime (empty when elided), Mutable, Elem
//   - Path: Segments, Args (the outermost generic argument list only)
//   - Tuple: Elems
//   - Array: Elem, Len
//   - Slice: Elem
//   - Paren: Elem
//   - Verbatim: Raw
//
// Descriptors are never mutated in place; analysis reads them and the
// rewriter produces structural copies.
type TypeDescriptor struct {
	Kind TypeKind

	// Reference
	Lifetime string // includes the leading quote, e.g. "'static"
	Mutable  bool

	// Path
	Segments []string
	Args     []GenericArg

	// Tuple
	Elems []TypeDescriptor

	// Reference/Array/Slice/Paren
	Elem *TypeDescriptor

	// Array length expression, carried verbatim
	Len string

	// Verbatim
	Raw string
}

// NewPath builds a path descriptor from segments with no generic arguments
func NewPath(segments ...string) TypeDescriptor {
	return TypeDescriptor{Kind: TypeKindPath, Segments: segments}
}

// NewGenericPath builds a path descriptor with generic type arguments
func NewGenericPath(segments []string, args ...TypeDescriptor) TypeDescriptor {
	generic := make([]GenericArg, len(args))
	for i := range args {
		arg := args[i]
		generic[i] = GenericArg{Type: &arg}
	}
	return TypeDescriptor{Kind: TypeKindPath, Segments: segments, Args: generic}
}

// NewReference builds a reference descriptor around elem. An empty lifetime
// means the reference is elided and eligible for rewriting.
func NewReference(lifetime string, mutable bool, elem TypeDescriptor) TypeDescriptor {
	return TypeDescriptor{Kind: TypeKindReference, Lifetime: lifetime, Mutable: mutable, Elem: &elem}
}

// NewTuple builds a tuple descriptor; with no elements it is the unit type
func NewTuple(elems ...TypeDescriptor) TypeDescriptor {
	return TypeDescriptor{Kind: TypeKindTuple, Elems: elems}
}

// Unit returns the unit type descriptor ()
func Unit() TypeDescriptor {
	return TypeDescriptor{Kind: TypeKindTuple}
}

// String renders the descriptor back to canonical Rust type syntax
func (t TypeDescriptor) String() string {
	var sb strings.Builder
	t.render(&sb)
	return sb.String()
}

// Identity returns the normalized textual identity used for decode strategy
// dispatch. It is the canonical rendering, which already carries no incidental
// whitespace.
func (t TypeDescriptor) Identity() string {
	return t.String()
}

func (t TypeDescriptor) render(sb *strings.Builder) {
	switch t.Kind {
	case TypeKindReference:
		sb.WriteString("&")
		if t.Lifetime != "" {
			sb.WriteString(t.Lifetime)
			sb.WriteString(" ")
		}
		if t.Mutable {
			sb.WriteString("mut ")
		}
		if t.Elem != nil {
			t.Elem.render(sb)
		}
	case TypeKindPath:
		sb.WriteString(strings.Join(t.Segments, "::"))
		if len(t.Args) > 0 {
			sb.WriteString("<")
			for i, arg := range t.Args {
				if i > 0 {
					sb.WriteString(", ")
				}
				if arg.Type != nil {
					arg.Type.render(sb)
				} else {
					sb.WriteString(arg.Raw)
				}
			}
			sb.WriteString(">")
		}
	case TypeKindTuple:
		sb.WriteString("(")
		for i := range t.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			t.Elems[i].render(sb)
		}
		if len(t.Elems) == 1 {
			// A one-element tuple keeps its trailing comma so it stays
			// distinguishable from a parenthesized type
			sb.WriteString(",")
		}
		sb.WriteString(")")
	case TypeKindArray:
		sb.WriteString("[")
		if t.Elem != nil {
			t.Elem.render(sb)
		}
		sb.WriteString("; ")
		sb.WriteString(t.Len)
		sb.WriteString("]")
	case TypeKindSlice:
		sb.WriteString("[")
		if t.Elem != nil {
			t.Elem.render(sb)
		}
		sb.WriteString("]")
	case TypeKindParen:
		sb.WriteString("(")
		if t.Elem != nil {
			t.Elem.render(sb)
		}
		sb.WriteString(")")
	case TypeKindVerbatim:
		sb.WriteString(t.Raw)
	}
}
