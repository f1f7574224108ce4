package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/classmap/internal/mcp"
	"github.com/mvp-joe/classmap/internal/runner"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp [dir]",
	Short: "Start the MCP server exposing the class report",
	Long: `Start the Model Context Protocol (MCP) server so coding assistants can ask
for the classes, fields, properties, methods and nested structs of the C#
files in a project.

The MCP server:
- Provides the classmap_extract tool
- Parses files on every request, so results always match the working tree
- Communicates via stdio (standard MCP transport)

Example:
  classmap mcp ./src`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	rootDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve directory: %w", err)
	}

	cfg, err := loadConfig(rootDir)
	if err != nil {
		return err
	}

	server := mcp.NewServer(rootDir, runner.New(cfg, nil), Version)
	if err := server.Serve(cmd.Context()); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}
	return nil
}
