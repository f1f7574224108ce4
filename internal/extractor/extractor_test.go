package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/classmap/internal/syntax"
)

// Test Plan for Extractor:
// - A unit with no type declarations yields no entries
// - Each class yields a TypeEntry before any of its members
// - Categories are emitted fields, properties, methods, structs regardless of source interleaving
// - Within a category, entries keep source order
// - Multi-variable field statements report only the first name
// - Members of nested types are also reported under the outer class (descendants scope)
// - Direct scope reports only the class's own members
// - Classes nested in structs are discovered
// - Structs on their own do not open a section
// - All categories disabled yields only class entries
// - Extraction is idempotent
// - Non compilation-unit roots fail with ErrParseShape
// - Field statements with no variables fail with ErrEmptyDeclaration

func unit(children ...*syntax.Node) *syntax.SourceUnit {
	return &syntax.Node{Kind: syntax.KindCompilationUnit, Children: children}
}

func class(name string, children ...*syntax.Node) *syntax.Node {
	return &syntax.Node{Kind: syntax.KindClass, Name: name, Children: children}
}

func strct(name string, children ...*syntax.Node) *syntax.Node {
	return &syntax.Node{Kind: syntax.KindStruct, Name: name, Children: children}
}

func field(typ string, vars ...string) *syntax.Node {
	return &syntax.Node{Kind: syntax.KindField, Type: typ, Variables: vars}
}

func property(name, typ string) *syntax.Node {
	return &syntax.Node{Kind: syntax.KindProperty, Name: name, Type: typ}
}

func method(name, returns string) *syntax.Node {
	return &syntax.Node{Kind: syntax.KindMethod, Name: name, Type: returns}
}

func TestExtract_NoTypes(t *testing.T) {
	t.Parallel()

	entries, err := Extract(unit(), AllCategories())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExtract_SimpleClass(t *testing.T) {
	t.Parallel()

	u := unit(class("Foo",
		field("int", "Bar"),
		property("Baz", "string"),
		method("Qux", "void"),
	))

	entries, err := Extract(u, AllCategories())
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Kind: TypeEntry, Name: "Foo"},
		{Kind: FieldEntry, Name: "Bar", Type: "int"},
		{Kind: PropertyEntry, Name: "Baz", Type: "string"},
		{Kind: MethodEntry, Name: "Qux", Type: "void"},
	}, entries)
}

func TestExtract_FixedCategoryOrder(t *testing.T) {
	t.Parallel()

	u := unit(class("Mixed",
		strct("S"),
		method("M1", "void"),
		property("P1", "int"),
		field("int", "f1"),
		method("M2", "int"),
		field("string", "f2"),
		property("P2", "bool"),
		field("long", "f3"),
	))

	entries, err := Extract(u, AllCategories())
	require.NoError(t, err)

	var got []string
	for _, e := range entries {
		got = append(got, e.Kind.String()+":"+e.Name)
	}
	assert.Equal(t, []string{
		"class:Mixed",
		"field:f1", "field:f2", "field:f3",
		"property:P1", "property:P2",
		"method:M1", "method:M2",
		"struct:S",
	}, got)
}

func TestExtract_MultiVariableFieldReportsFirstName(t *testing.T) {
	t.Parallel()

	entries, err := Extract(unit(class("C", field("int", "a", "b"))), AllCategories())
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Kind: TypeEntry, Name: "C"},
		{Kind: FieldEntry, Name: "a", Type: "int"},
	}, entries)
}

func nestedUnit() *syntax.SourceUnit {
	return unit(class("Outer",
		field("int", "a"),
		strct("Inner", field("int", "X")),
		class("Nested",
			property("Name", "string"),
			method("Run", "void"),
		),
		method("Create", "Outer"),
	))
}

func TestExtract_DescendantsScopeIncludesNestedMembers(t *testing.T) {
	t.Parallel()

	entries, err := Extract(nestedUnit(), AllCategories())
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Kind: TypeEntry, Name: "Outer"},
		{Kind: FieldEntry, Name: "a", Type: "int"},
		{Kind: FieldEntry, Name: "X", Type: "int"},
		{Kind: PropertyEntry, Name: "Name", Type: "string"},
		{Kind: MethodEntry, Name: "Run", Type: "void"},
		{Kind: MethodEntry, Name: "Create", Type: "Outer"},
		{Kind: StructEntry, Name: "Inner"},
		{Kind: TypeEntry, Name: "Nested"},
		{Kind: PropertyEntry, Name: "Name", Type: "string"},
		{Kind: MethodEntry, Name: "Run", Type: "void"},
	}, entries)
}

func TestExtract_DirectScope(t *testing.T) {
	t.Parallel()

	entries, err := New(ScopeDirect).Extract(nestedUnit(), AllCategories())
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Kind: TypeEntry, Name: "Outer"},
		{Kind: FieldEntry, Name: "a", Type: "int"},
		{Kind: MethodEntry, Name: "Create", Type: "Outer"},
		{Kind: StructEntry, Name: "Inner"},
		{Kind: TypeEntry, Name: "Nested"},
		{Kind: PropertyEntry, Name: "Name", Type: "string"},
		{Kind: MethodEntry, Name: "Run", Type: "void"},
	}, entries)
}

func TestExtract_ClassInsideStruct(t *testing.T) {
	t.Parallel()

	u := unit(strct("Holder", class("Hidden", field("int", "x"))))

	entries, err := Extract(u, AllCategories())
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Kind: TypeEntry, Name: "Hidden"},
		{Kind: FieldEntry, Name: "x", Type: "int"},
	}, entries)
}

func TestExtract_StructOnlyOpensNoSection(t *testing.T) {
	t.Parallel()

	entries, err := Extract(unit(strct("Point", field("int", "X"))), AllCategories())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExtract_AllCategoriesDisabled(t *testing.T) {
	t.Parallel()

	entries, err := Extract(nestedUnit(), Filter{})
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Kind: TypeEntry, Name: "Outer"},
		{Kind: TypeEntry, Name: "Nested"},
	}, entries)
}

func TestExtract_SingleCategory(t *testing.T) {
	t.Parallel()

	entries, err := Extract(nestedUnit(), Filter{Structs: true})
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Kind: TypeEntry, Name: "Outer"},
		{Kind: StructEntry, Name: "Inner"},
		{Kind: TypeEntry, Name: "Nested"},
	}, entries)
}

func TestExtract_Idempotent(t *testing.T) {
	t.Parallel()

	u := nestedUnit()
	filter := Filter{Fields: true, Methods: true}

	first, err := Extract(u, filter)
	require.NoError(t, err)
	second, err := Extract(u, filter)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExtract_ClassPrecedesMembers(t *testing.T) {
	t.Parallel()

	entries, err := Extract(nestedUnit(), AllCategories())
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, TypeEntry, entries[0].Kind)

	classes := 0
	for i, e := range entries {
		if e.Kind == TypeEntry {
			classes++
			continue
		}
		assert.Positive(t, classes, "entry %d (%s %s) appears before any class", i, e.Kind, e.Name)
	}
	assert.Greater(t, classes, 1)
	assert.Greater(t, len(entries), classes)
}

func TestExtract_ParseShapeError(t *testing.T) {
	t.Parallel()

	_, err := Extract(&syntax.Node{Kind: syntax.KindClass, Name: "Loose"}, AllCategories())
	assert.ErrorIs(t, err, ErrParseShape)

	_, err = Extract(nil, AllCategories())
	assert.ErrorIs(t, err, ErrParseShape)
}

func TestExtract_EmptyDeclarationError(t *testing.T) {
	t.Parallel()

	u := unit(class("C", field("int")))

	_, err := Extract(u, AllCategories())
	assert.ErrorIs(t, err, ErrEmptyDeclaration)

	// Not scanned when fields are disabled
	entries, err := Extract(u, Filter{Methods: true})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestParseScope(t *testing.T) {
	t.Parallel()

	scope, err := ParseScope("")
	require.NoError(t, err)
	assert.Equal(t, ScopeDescendants, scope)

	scope, err = ParseScope("Direct")
	require.NoError(t, err)
	assert.Equal(t, ScopeDirect, scope)
	assert.Equal(t, "direct", scope.String())

	_, err = ParseScope("siblings")
	assert.ErrorIs(t, err, ErrUnknownScope)
}
