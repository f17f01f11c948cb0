// ABOUTME: MCP server setup for the tipsy data store.
// ABOUTME: Wraps MCP server with storage Repository connection.
package mcp

import (
	"context"

	"github.com/harperreed/tipsy/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer   *mcp.Server
	repo        storage.Repository
	defaultUser string
}

// NewServer creates a new MCP server with the given storage.
func NewServer(repo storage.Repository, defaultUser string) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "tipsy",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer:   mcpServer,
		repo:        repo,
		defaultUser: defaultUser,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
