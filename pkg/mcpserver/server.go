package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/archlane/semindex/pkg/mcplog"
	"github.com/archlane/semindex/pkg/project"
)

const serverVersion = "0.1.0-dev"

// Server implements the MCP server over the Project Index, exposing
// index_file, list_definitions, and find_symbol as tools (§4.11).
type Server struct {
	mcpServer *server.MCPServer
	index     *project.Index
	logger    *mcplog.Logger // may be nil if logging is disabled
}

// NewServer creates a new MCP server backed by idx. Pass nil for logger to
// disable tool-call logging.
func NewServer(idx *project.Index, logger *mcplog.Logger) *Server {
	s := &Server{index: idx, logger: logger}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if logger != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer("semindex", serverVersion, opts...)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: indexFileTool(), Handler: s.handleIndexFile},
		server.ServerTool{Tool: listDefinitionsTool(), Handler: s.handleListDefinitions},
		server.ServerTool{Tool: findSymbolTool(), Handler: s.handleFindSymbol},
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// Close shuts down the logger if one is active. Should be deferred after NewServer.
func (s *Server) Close() error {
	if s.logger != nil {
		return s.logger.Close()
	}
	return nil
}
