package mcp

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	log "github.com/sirupsen/logrus"

	"github.com/mvp-joe/classmap/internal/runner"
)

// ServerName is reported to MCP clients.
const ServerName = "classmap-mcp"

// Server exposes classmap extraction to MCP clients over stdio.
type Server struct {
	rootDir string
	mcp     *server.MCPServer
}

// NewServer creates an MCP server answering requests for files under rootDir.
func NewServer(rootDir string, r *runner.Runner, version string) *Server {
	mcpServer := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(true),
	)

	AddExtractTool(mcpServer, r, rootDir)

	return &Server{
		rootDir: rootDir,
		mcp:     mcpServer,
	}
}

// Serve runs the server on stdio until the client disconnects, a signal
// arrives or ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		log.WithField("root", s.rootDir).Info("Starting MCP server on stdio")
		errCh <- server.ServeStdio(s.mcp)
	}()

	select {
	case <-sigCh:
		log.Info("Received shutdown signal, stopping")
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
