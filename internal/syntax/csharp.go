package syntax

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	csharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"
)

var (
	// ErrUnreadableFile indicates the source file could not be opened or read.
	ErrUnreadableFile = errors.New("unreadable file")

	// ErrParseFailure indicates the source text is not a valid compilation unit.
	ErrParseFailure = errors.New("parse failure")

	// ErrParserUnavailable indicates the C# grammar could not be loaded.
	ErrParserUnavailable = errors.New("parser unavailable")
)

// Parser turns C# source into a declaration tree.
type Parser interface {
	Parse(ctx context.Context, source []byte) (*SourceUnit, error)
	ParseFile(ctx context.Context, filePath string) (*SourceUnit, error)
}

// CSharpParser parses C# files with the tree-sitter C# grammar.
type CSharpParser struct {
	language *sitter.Language
	strict   bool
}

// Option configures a CSharpParser.
type Option func(*CSharpParser)

// WithStrict makes trees containing syntax errors fail with ErrParseFailure.
// When disabled, the parser's error recovery is trusted and whatever
// declarations it produced are returned.
func WithStrict(strict bool) Option {
	return func(p *CSharpParser) {
		p.strict = strict
	}
}

// NewCSharpParser creates a new C# parser. Strict mode is on by default.
func NewCSharpParser(opts ...Option) *CSharpParser {
	p := &CSharpParser{
		language: sitter.NewLanguage(csharp.Language()),
		strict:   true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFile reads and parses a C# source file.
func (p *CSharpParser) ParseFile(ctx context.Context, filePath string) (*SourceUnit, error) {
	source, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	return p.Parse(ctx, source)
}

// Parse parses C# source text into a declaration tree rooted at the
// compilation unit.
func (p *CSharpParser) Parse(ctx context.Context, source []byte) (*SourceUnit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(p.language); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParserUnavailable, err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("%w: parser returned no tree", ErrParseFailure)
	}
	defer tree.Close()

	rootNode := tree.RootNode()
	if p.strict && rootNode.HasError() {
		if bad := firstErrorNode(rootNode); bad != nil {
			return nil, fmt.Errorf("%w: syntax error at line %d", ErrParseFailure, int(bad.StartPosition().Row)+1)
		}
		return nil, fmt.Errorf("%w: syntax error", ErrParseFailure)
	}

	root := &Node{
		Kind: KindUnknown,
		Line: int(rootNode.StartPosition().Row) + 1,
	}
	if rootNode.Kind() == "compilation_unit" {
		root.Kind = KindCompilationUnit
	}

	collect(rootNode, source, root)
	return root, nil
}

// collect attaches every declaration below n to the nearest enclosing
// declaration, preserving source order.
func collect(n *sitter.Node, source []byte, parent *Node) {
	for i := uint(0); i < n.NamedChildCount(); i++ {
		child := n.NamedChild(i)
		if child == nil {
			continue
		}

		target := parent
		if decl := declaration(child, source); decl != nil {
			parent.Children = append(parent.Children, decl)
			target = decl
		}
		collect(child, source, target)
	}
}

// declaration converts a tree-sitter node into a Node when it is a
// declaration the extractor cares about, and returns nil otherwise.
func declaration(n *sitter.Node, source []byte) *Node {
	var decl *Node

	switch n.Kind() {
	case "class_declaration":
		decl = &Node{Kind: KindClass, Name: identifier(n.ChildByFieldName("name"), source)}
	case "struct_declaration":
		decl = &Node{Kind: KindStruct, Name: identifier(n.ChildByFieldName("name"), source)}
	case "field_declaration":
		decl = &Node{Kind: KindField}
		if vd := findChildByType(n, "variable_declaration"); vd != nil {
			decl.Type = nodeText(vd.ChildByFieldName("type"), source)
			for _, declarator := range findChildrenByType(vd, "variable_declarator") {
				nameNode := declarator.ChildByFieldName("name")
				if nameNode == nil {
					nameNode = findChildByType(declarator, "identifier")
				}
				if nameNode == nil {
					continue
				}
				decl.Variables = append(decl.Variables, identifier(nameNode, source))
			}
		}
	case "property_declaration":
		decl = &Node{
			Kind: KindProperty,
			Name: identifier(n.ChildByFieldName("name"), source),
			Type: nodeText(n.ChildByFieldName("type"), source),
		}
	case "method_declaration":
		returns := n.ChildByFieldName("returns")
		if returns == nil {
			// Older grammar releases name the return type field "type".
			returns = n.ChildByFieldName("type")
		}
		decl = &Node{
			Kind: KindMethod,
			Name: identifier(n.ChildByFieldName("name"), source),
			Type: nodeText(returns, source),
		}
	default:
		return nil
	}

	decl.Line = int(n.StartPosition().Row) + 1
	return decl
}

// identifier returns the value text of an identifier, dropping the verbatim
// prefix so `@class` reads as `class`.
func identifier(n *sitter.Node, source []byte) string {
	return strings.TrimPrefix(nodeText(n, source), "@")
}

func nodeText(n *sitter.Node, source []byte) string {
	if n == nil {
		return ""
	}
	return n.Utf8Text(source)
}

func findChildByType(n *sitter.Node, nodeType string) *sitter.Node {
	for i := uint(0); i < n.NamedChildCount(); i++ {
		child := n.NamedChild(i)
		if child != nil && child.Kind() == nodeType {
			return child
		}
	}
	return nil
}

func findChildrenByType(n *sitter.Node, nodeType string) []*sitter.Node {
	var results []*sitter.Node
	for i := uint(0); i < n.NamedChildCount(); i++ {
		child := n.NamedChild(i)
		if child != nil && child.Kind() == nodeType {
			results = append(results, child)
		}
	}
	return results
}

// firstErrorNode returns the first ERROR or MISSING node in document order.
func firstErrorNode(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child == nil || !(child.HasError() || child.IsMissing()) {
			continue
		}
		if bad := firstErrorNode(child); bad != nil {
			return bad
		}
	}
	return nil
}
