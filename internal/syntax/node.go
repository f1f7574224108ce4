package syntax

// Kind identifies the declaration shape of a Node.
type Kind int

const (
	KindUnknown Kind = iota
	KindCompilationUnit
	KindClass
	KindStruct
	KindField
	KindProperty
	KindMethod
)

func (k Kind) String() string {
	switch k {
	case KindCompilationUnit:
		return "compilation_unit"
	case KindClass:
		return "class"
	case KindStruct:
		return "struct"
	case KindField:
		return "field"
	case KindProperty:
		return "property"
	case KindMethod:
		return "method"
	default:
		return "unknown"
	}
}

// Node is a declaration in a parsed source file.
//
// Only declarations are kept; everything between two declarations in the
// concrete syntax tree (bodies, blocks, namespaces) is collapsed, so a Node's
// Children are the declarations nested inside it in source order.
type Node struct {
	Kind Kind
	Name string

	// Type is the declared type of a field or property, or the return type
	// of a method.
	Type string

	// Variables lists the declarator names of a field statement in order
	// (`int a, b;` -> ["a", "b"]).
	Variables []string

	// Line is the 1-indexed line the declaration starts on.
	Line int

	Children []*Node
}

// SourceUnit is the root node of one parsed file.
type SourceUnit = Node

// IsType reports whether n declares a class or struct.
func (n *Node) IsType() bool {
	return n != nil && (n.Kind == KindClass || n.Kind == KindStruct)
}
