// Package analysis implements the reference detection and lifetime rewriting
// queries over type descriptors. Both operations are pure and total: every
// descriptor kind has a defined answer and neither can fail.
package analysis

import (
	"github.com/NexRX/tauri-bridge/internal/models"
)

// HasBorrowedView reports whether t contains a reference anywhere in its
// structure. A bare reference is always true regardless of its referent.
// The walk descends through the outermost generic argument list of a path
// type, tuple elements, array/slice elements, and parenthesized inner types.
// Verbatim leaves never count as references.
func HasBorrowedView(t models.TypeDescriptor) bool {
	switch t.Kind {
	case models.TypeKindReference:
		return true
	case models.TypeKindPath:
		for _, arg := range t.Args {
			if arg.Type != nil && HasBorrowedView(*arg.Type) {
				return true
			}
		}
		return false
	case models.TypeKindTuple:
		for i := range t.Elems {
			if HasBorrowedView(t.Elems[i]) {
				return true
			}
		}
		return false
	case models.TypeKindArray, models.TypeKindSlice, models.TypeKindParen:
		return t.Elem != nil && HasBorrowedView(*t.Elem)
	default:
		return false
	}
}

// RewriteLifetime returns a structural copy of t in which every reference
// with an elided lifetime carries lifetime instead. References that already
// name an explicit lifetime (such as 'static) keep it unchanged, but the
// walk still enters their referent, so nested elided references are tagged
// at every level. A path type with no generic arguments and every verbatim
// leaf come back unchanged.
func RewriteLifetime(t models.TypeDescriptor, lifetime string) models.TypeDescriptor {
	switch t.Kind {
	case models.TypeKindReference:
		out := t
		if out.Lifetime == "" {
			out.Lifetime = lifetime
		}
		if t.Elem != nil {
			elem := RewriteLifetime(*t.Elem, lifetime)
			out.Elem = &elem
		}
		return out
	case models.TypeKindPath:
		if len(t.Args) == 0 {
			return t
		}
		out := t
		out.Args = make([]models.GenericArg, len(t.Args))
		for i, arg := range t.Args {
			if arg.Type != nil {
				rewritten := RewriteLifetime(*arg.Type, lifetime)
				out.Args[i] = models.GenericArg{Type: &rewritten}
			} else {
				out.Args[i] = arg
			}
		}
		return out
	case models.TypeKindTuple:
		if len(t.Elems) == 0 {
			return t
		}
		out := t
		out.Elems = make([]models.TypeDescriptor, len(t.Elems))
		for i := range t.Elems {
			out.Elems[i] = RewriteLifetime(t.Elems[i], lifetime)
		}
		return out
	case models.TypeKindArray, models.TypeKindSlice, models.TypeKindParen:
		if t.Elem == nil {
			return t
		}
		out := t
		elem := RewriteLifetime(*t.Elem, lifetime)
		out.Elem = &elem
		return out
	default:
		return t
	}
}

// NeedsSharedLifetime reports whether any parameter type in the list
// contains a reference, meaning the generated args struct and client
// functions must be parameterized by one shared lifetime.
func NeedsSharedLifetime(params []models.Parameter) bool {
	for i := range params {
		if HasBorrowedView(params[i].Type) {
			return true
		}
	}
	return false
}
