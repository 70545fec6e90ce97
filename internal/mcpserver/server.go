// Package mcpserver exposes a tool registry over the Model Context Protocol.
//
// Session handling, framing and tool discovery all come from
// mark3labs/mcp-go; this package only bridges the registry's Tool interface
// onto it.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/MimeLyc/weather-mcp/internal/tools"
	"github.com/MimeLyc/weather-mcp/pkg/log"
)

// Server wraps an MCP server serving every tool from a registry.
type Server struct {
	mcp *server.MCPServer
}

// New builds an MCP server with the given identity and registers all tools
// from the registry on it.
func New(name, version string, registry *tools.Registry) *Server {
	s := server.NewMCPServer(name, version,
		server.WithToolCapabilities(false),
	)

	for _, tool := range registry.Tools() {
		s.AddTool(
			mcp.NewToolWithRawSchema(tool.Name(), tool.Description(), tool.Parameters()),
			makeHandler(tool),
		)
	}

	return &Server{mcp: s}
}

// ServeStdio serves the protocol over stdin/stdout until the client
// disconnects. Log output goes to stderr so the transport stays clean.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// makeHandler adapts one registry tool to an MCP tool handler. Expected
// upstream failures come back as ordinary text results; only defect-class
// errors from Execute propagate as protocol-level tool errors.
func makeHandler(tool tools.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := json.Marshal(request.GetArguments())
		if err != nil {
			return nil, fmt.Errorf("failed to encode arguments for %s: %w", tool.Name(), err)
		}

		result, err := tool.Execute(ctx, args)
		if err != nil {
			log.Error("tool %s failed: %v", tool.Name(), err)
			return nil, err
		}

		if result.IsError {
			return mcp.NewToolResultError(result.Content), nil
		}
		return mcp.NewToolResultText(result.Content), nil
	}
}
