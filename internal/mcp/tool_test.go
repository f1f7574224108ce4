package mcp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/classmap/internal/config"
	"github.com/mvp-joe/classmap/internal/runner"
)

// Test Plan for classmap_extract:
// - Registration on a server does not panic
// - A path argument limits the report to that file
// - Categories narrow the member lines
// - Unknown categories, scopes and paths outside the root are tool errors
// - JSON format returns a JSON document

func projectRoot(t *testing.T) string {
	t.Helper()
	root, err := filepath.Abs(filepath.Join("..", "..", "testdata", "code", "csharp", "project"))
	require.NoError(t, err)
	return root
}

func callExtract(t *testing.T, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()

	root := projectRoot(t)
	handler := createExtractHandler(runner.New(config.Default(), nil), root)

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      ExtractToolName,
			Arguments: args,
		},
	}

	result, err := handler(context.Background(), request)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return textContent.Text
}

func TestAddExtractTool_Registers(t *testing.T) {
	t.Parallel()

	s := server.NewMCPServer("test", "1.0.0", server.WithToolCapabilities(true))
	assert.NotPanics(t, func() {
		AddExtractTool(s, runner.New(config.Default(), nil), projectRoot(t))
	})
}

func TestExtractHandler_SingleFile(t *testing.T) {
	t.Parallel()

	result := callExtract(t, map[string]interface{}{"path": "Program.cs"})
	assert.False(t, result.IsError)
	assert.Equal(t, "Class: Program\n\tMethod: Main, Return Type: void\n", resultText(t, result))
}

func TestExtractHandler_WholeProject(t *testing.T) {
	t.Parallel()

	result := callExtract(t, nil)
	assert.False(t, result.IsError)

	text := resultText(t, result)
	assert.Contains(t, text, "Error: ")
	assert.Contains(t, text, "Class: Order\n")
	assert.Contains(t, text, "Class: Program\n")
	assert.NotContains(t, text, "Generated")
}

func TestExtractHandler_Categories(t *testing.T) {
	t.Parallel()

	result := callExtract(t, map[string]interface{}{
		"path":       "Models/Order.cs",
		"categories": []interface{}{"structs"},
		"scope":      "direct",
	})
	assert.False(t, result.IsError)
	assert.Equal(t, "Class: Order\n\tStruct: Line\n", resultText(t, result))
}

func TestExtractHandler_JSON(t *testing.T) {
	t.Parallel()

	result := callExtract(t, map[string]interface{}{
		"path":   "Program.cs",
		"format": "json",
	})
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), `"kind": "class"`)
}

func TestExtractHandler_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{"unknown category", map[string]interface{}{"categories": []interface{}{"events"}}},
		{"unknown scope", map[string]interface{}{"scope": "nested"}},
		{"path outside root", map[string]interface{}{"path": "../secret.cs"}},
		{"missing path", map[string]interface{}{"path": "Nope.cs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := callExtract(t, tt.args)
			assert.True(t, result.IsError)
		})
	}
}

func TestResolveWithinRoot(t *testing.T) {
	t.Parallel()

	root := projectRoot(t)

	resolved, err := resolveWithinRoot(root, "Models")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "Models"), resolved)

	_, err = resolveWithinRoot(root, "/etc/passwd")
	assert.Error(t, err)

	_, err = resolveWithinRoot(root, "../..")
	assert.Error(t, err)
}
