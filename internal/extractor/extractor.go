package extractor

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/mvp-joe/classmap/internal/syntax"
)

var (
	// ErrParseShape indicates the tree root is not a compilation unit.
	ErrParseShape = errors.New("unexpected syntax tree shape")

	// ErrEmptyDeclaration indicates a field statement declaring no variables.
	ErrEmptyDeclaration = errors.New("field declaration has no variables")

	// ErrUnknownScope indicates an unrecognized extraction scope name.
	ErrUnknownScope = errors.New("unknown extraction scope")
)

// Scope controls which members are reported under a class.
type Scope int

const (
	// ScopeDescendants reports every matching declaration below the class,
	// including members of nested types. This is the default.
	ScopeDescendants Scope = iota

	// ScopeDirect reports only declarations whose nearest enclosing type is
	// the class itself. Nested structs are still listed by name.
	ScopeDirect
)

func (s Scope) String() string {
	if s == ScopeDirect {
		return "direct"
	}
	return "descendants"
}

// ParseScope converts a configuration value into a Scope.
func ParseScope(name string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "descendants":
		return ScopeDescendants, nil
	case "direct":
		return ScopeDirect, nil
	default:
		return ScopeDescendants, fmt.Errorf("%w: %q", ErrUnknownScope, name)
	}
}

// scans maps each category to the declaration kind it searches for. The
// slice order is the emission order within a class section.
var scans = []struct {
	category Category
	kind     syntax.Kind
}{
	{Fields, syntax.KindField},
	{Properties, syntax.KindProperty},
	{Methods, syntax.KindMethod},
	{Structs, syntax.KindStruct},
}

// Extractor walks declaration trees and produces report entries.
type Extractor struct {
	scope Scope
}

// New creates an Extractor using the given member scope.
func New(scope Scope) *Extractor {
	return &Extractor{scope: scope}
}

// Extract runs a default-scope extraction over unit.
func Extract(unit *syntax.SourceUnit, filter Filter) ([]Entry, error) {
	return New(ScopeDescendants).Extract(unit, filter)
}

// Extract returns the entries for every class in unit, in pre-order.
//
// Each class contributes a TypeEntry followed by its enabled categories in
// the fixed order fields, properties, methods, structs. Within a category
// entries keep source order. A field statement declaring several variables
// is reported once, under its first name.
func (e *Extractor) Extract(unit *syntax.SourceUnit, filter Filter) ([]Entry, error) {
	if unit == nil {
		return nil, fmt.Errorf("%w: nil root", ErrParseShape)
	}
	if unit.Kind != syntax.KindCompilationUnit {
		return nil, fmt.Errorf("%w: root is %s, want compilation_unit", ErrParseShape, unit.Kind)
	}

	var entries []Entry
	for class := range syntax.Descendants(unit, syntax.OfKind(syntax.KindClass)) {
		entries = append(entries, Entry{Kind: TypeEntry, Name: class.Name, Line: class.Line})

		for _, scan := range scans {
			if !filter.Enabled(scan.category) {
				continue
			}
			for n := range e.members(class, syntax.OfKind(scan.kind)) {
				entry, err := entryFor(n)
				if err != nil {
					return nil, err
				}
				entries = append(entries, entry)
			}
		}
	}

	return entries, nil
}

func (e *Extractor) members(class *syntax.Node, pred syntax.Predicate) iter.Seq[*syntax.Node] {
	if e.scope == ScopeDirect {
		return syntax.Members(class, pred)
	}
	return syntax.Descendants(class, pred)
}

// entryFor converts a member declaration into its report entry.
func entryFor(n *syntax.Node) (Entry, error) {
	switch n.Kind {
	case syntax.KindField:
		if len(n.Variables) == 0 {
			return Entry{}, fmt.Errorf("%w (line %d)", ErrEmptyDeclaration, n.Line)
		}
		return Entry{Kind: FieldEntry, Name: n.Variables[0], Type: n.Type, Line: n.Line}, nil
	case syntax.KindProperty:
		return Entry{Kind: PropertyEntry, Name: n.Name, Type: n.Type, Line: n.Line}, nil
	case syntax.KindMethod:
		return Entry{Kind: MethodEntry, Name: n.Name, Type: n.Type, Line: n.Line}, nil
	case syntax.KindStruct:
		return Entry{Kind: StructEntry, Name: n.Name, Line: n.Line}, nil
	case syntax.KindClass:
		return Entry{Kind: TypeEntry, Name: n.Name, Line: n.Line}, nil
	default:
		return Entry{}, fmt.Errorf("%w: unexpected %s member", ErrParseShape, n.Kind)
	}
}
