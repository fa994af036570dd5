package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NexRX/tauri-bridge/internal/models"
)

func TestHasBorrowedView(t *testing.T) {
	str := models.NewPath("str")
	i32 := models.NewPath("i32")

	tests := []struct {
		name string
		typ  models.TypeDescriptor
		want bool
	}{
		{"bare reference", models.NewReference("", false, str), true},
		{"static reference", models.NewReference("'static", false, str), true},
		{"mutable reference", models.NewReference("", true, str), true},
		{"plain path", models.NewPath("String"), false},
		{"qualified path", models.NewPath("std", "string", "String"), false},
		{"generic without reference", models.NewGenericPath([]string{"Vec"}, models.NewPath("u8")), false},
		{"generic with reference", models.NewGenericPath([]string{"Option"}, models.NewReference("", false, str)), true},
		{"deeply nested reference", models.NewGenericPath([]string{"Vec"},
			models.NewGenericPath([]string{"Option"}, models.NewReference("", false, str))), true},
		{"unit", models.Unit(), false},
		{"tuple without reference", models.NewTuple(i32, models.NewPath("String")), false},
		{"tuple with reference", models.NewTuple(i32, models.NewReference("", false, str)), true},
		{"slice of references", models.TypeDescriptor{
			Kind: models.TypeKindSlice,
			Elem: refTo(str),
		}, true},
		{"array without reference", models.TypeDescriptor{
			Kind: models.TypeKindArray,
			Elem: &i32,
			Len:  "4",
		}, false},
		{"parenthesized reference", models.TypeDescriptor{
			Kind: models.TypeKindParen,
			Elem: refTo(str),
		}, true},
		{"verbatim leaf never counts", models.TypeDescriptor{
			Kind: models.TypeKindVerbatim,
			Raw:  "&dyn Fn(&str)",
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasBorrowedView(tt.typ))
		})
	}
}

func TestRewriteLifetime_TagsElidedReferences(t *testing.T) {
	str := models.NewPath("str")

	rewritten := RewriteLifetime(models.NewReference("", false, str), "'a")
	assert.Equal(t, "&'a str", rewritten.String())

	mutable := RewriteLifetime(models.NewReference("", true, str), "'a")
	assert.Equal(t, "&'a mut str", mutable.String())
}

func TestRewriteLifetime_PreservesExplicitLifetimes(t *testing.T) {
	str := models.NewPath("str")

	rewritten := RewriteLifetime(models.NewReference("'static", false, str), "'a")
	assert.Equal(t, "&'static str", rewritten.String())
}

func TestRewriteLifetime_ReferenceToReference(t *testing.T) {
	// Every reference level gets the tag, not just the outermost
	str := models.NewPath("str")
	inner := models.NewReference("", false, str)
	outer := models.NewReference("", false, inner)

	rewritten := RewriteLifetime(outer, "'a")
	assert.Equal(t, "&'a &'a str", rewritten.String())
}

func TestRewriteLifetime_ExplicitOuterStillRecursesInner(t *testing.T) {
	str := models.NewPath("str")
	inner := models.NewReference("", false, str)
	outer := models.NewReference("'static", false, inner)

	rewritten := RewriteLifetime(outer, "'a")
	assert.Equal(t, "&'static &'a str", rewritten.String())
}

func TestRewriteLifetime_GenericArguments(t *testing.T) {
	str := models.NewPath("str")

	option := models.NewGenericPath([]string{"Option"}, models.NewReference("", false, str))
	assert.Equal(t, "Option<&'a str>", RewriteLifetime(option, "'a").String())

	nested := models.NewGenericPath([]string{"Vec"},
		models.NewGenericPath([]string{"Option"}, models.NewReference("", false, str)))
	assert.Equal(t, "Vec<Option<&'a str>>", RewriteLifetime(nested, "'a").String())
}

func TestRewriteLifetime_Tuples(t *testing.T) {
	str := models.NewPath("str")
	i32 := models.NewPath("i32")

	tuple := models.NewTuple(i32, models.NewReference("", false, str))
	assert.Equal(t, "(i32, &'a str)", RewriteLifetime(tuple, "'a").String())
}

func TestRewriteLifetime_NoReferencesIsNoOp(t *testing.T) {
	tests := []models.TypeDescriptor{
		models.NewPath("String"),
		models.NewPath("i64"),
		models.Unit(),
		models.NewGenericPath([]string{"Vec"}, models.NewPath("u8")),
		models.NewTuple(models.NewPath("i32"), models.NewPath("bool")),
		{Kind: models.TypeKindVerbatim, Raw: "impl Iterator<Item = u8>"},
	}

	for _, typ := range tests {
		t.Run(typ.String(), func(t *testing.T) {
			require.False(t, HasBorrowedView(typ))
			assert.Equal(t, typ.String(), RewriteLifetime(typ, "'a").String())
		})
	}
}

func TestRewriteLifetime_IdempotentUnderRetagging(t *testing.T) {
	// Rewriting an already fully tagged tree with the same tag again
	// yields a structurally identical tree
	str := models.NewPath("str")
	typ := models.NewTuple(
		models.NewReference("", false, str),
		models.NewGenericPath([]string{"Option"}, models.NewReference("", true, str)),
	)

	once := RewriteLifetime(typ, "'a")
	twice := RewriteLifetime(once, "'a")
	assert.Equal(t, once, twice)
	assert.True(t, HasBorrowedView(twice))
}

func TestRewriteLifetime_DoesNotMutateInput(t *testing.T) {
	str := models.NewPath("str")
	original := models.NewReference("", false, str)
	before := original.String()

	_ = RewriteLifetime(original, "'a")
	assert.Equal(t, before, original.String())
}

func TestNeedsSharedLifetime(t *testing.T) {
	str := models.NewPath("str")

	none := []models.Parameter{
		{Name: "count", Type: models.NewPath("i32")},
		{Name: "label", Type: models.NewPath("String")},
	}
	assert.False(t, NeedsSharedLifetime(none))

	one := []models.Parameter{
		{Name: "count", Type: models.NewPath("i32")},
		{Name: "name", Type: models.NewReference("", false, str)},
	}
	assert.True(t, NeedsSharedLifetime(one))

	assert.False(t, NeedsSharedLifetime(nil))
}

func refTo(t models.TypeDescriptor) *models.TypeDescriptor {
	ref := models.NewReference("", false, t)
	return &ref
}
