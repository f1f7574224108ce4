package mcp

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mvp-joe/classmap/internal/extractor"
	"github.com/mvp-joe/classmap/internal/runner"
)

// ExtractToolName is the name of the extraction tool.
const ExtractToolName = "classmap_extract"

// AddExtractTool registers the classmap_extract tool with an MCP server.
func AddExtractTool(s *server.MCPServer, r *runner.Runner, rootDir string) {
	tool := mcp.NewTool(
		ExtractToolName,
		mcp.WithDescription(`List the classes in C# source files with their fields, properties, methods and nested structs.

Returns one "Class: <name>" line per class followed by indented member lines:
  Field: <name>, Type: <type>
  Property: <name>, Type: <type>
  Method: <name>, Return Type: <type>
  Struct: <name>
Files that fail to parse are reported as "Error: <path>: <reason>" lines.`),
		mcp.WithString("path",
			mcp.Description("File or directory relative to the project root (default: the whole project)")),
		mcp.WithArray("categories",
			mcp.Description("Member categories to include: fields, properties, methods, structs (default: all)")),
		mcp.WithString("scope",
			mcp.Description("'descendants' (default) lists members of nested types under the outer class too; 'direct' lists only the class's own members"),
			mcp.Enum("descendants", "direct")),
		mcp.WithString("format",
			mcp.Description("'text' (default) or 'json'"),
			mcp.Enum("text", "json")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)

	s.AddTool(tool, createExtractHandler(r, rootDir))
}

// createExtractHandler creates the handler function for classmap_extract.
func createExtractHandler(r *runner.Runner, rootDir string) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args extractArgs
		if err := bindArguments(request, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		cfg := *r.Config()

		target := rootDir
		if args.Path != "" {
			resolved, err := resolveWithinRoot(rootDir, args.Path)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			target = resolved
		}

		if args.Categories != nil {
			filter, err := extractor.ParseCategories(args.Categories)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			cfg.Filter.Fields = filter.Fields
			cfg.Filter.Properties = filter.Properties
			cfg.Filter.Methods = filter.Methods
			cfg.Filter.Structs = filter.Structs
		}

		if args.Scope != "" {
			if _, err := extractor.ParseScope(args.Scope); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			cfg.Extract.Scope = args.Scope
		}

		if args.Format != "" {
			cfg.Output.Format = args.Format
		}
		// Tool output always uses LF.
		cfg.Output.LineEnding = "lf"

		var buf bytes.Buffer
		if _, err := runner.New(&cfg, nil).Run(ctx, []string{target}, &buf); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(buf.String()), nil
	}
}

// resolveWithinRoot joins path onto rootDir and rejects results outside it.
func resolveWithinRoot(rootDir, path string) (string, error) {
	resolved := path
	if !filepath.IsAbs(path) {
		resolved = filepath.Join(rootDir, path)
	}
	resolved = filepath.Clean(resolved)

	rel, err := filepath.Rel(rootDir, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q is outside the project root", path)
	}
	return resolved, nil
}
