// ABOUTME: MCP server exposing the alias dashboard to AI agents.
// ABOUTME: Provides tools, an alias resource, and prompts over stdio.

package mcp

import (
	"context"

	"github.com/harper/tempmail/internal/api"
	"github.com/harper/tempmail/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Backend is the subset of the API client the server needs.
type Backend interface {
	Tags(ctx context.Context) ([]models.Tag, error)
	Active(ctx context.Context) ([]*models.Alias, error)
	History(ctx context.Context) ([]*models.Alias, error)
	FindInHistory(ctx context.Context, email string) (*models.Alias, error)
	Create(ctx context.Context, req api.CreateRequest) (*api.CreateResult, error)
	Pin(ctx context.Context, id string, pinned bool) error
	Delete(ctx context.Context, id string) error
	Destinations(ctx context.Context) ([]models.Destination, error)
}

type Server struct {
	server  *mcp.Server
	backend Backend
}

func NewServer(backend Backend, version string) *Server {
	s := &Server{backend: backend}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "tempmail",
			Version: version,
		},
		&mcp.ServerOptions{
			HasTools:     true,
			HasResources: true,
			HasPrompts:   true,
		},
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
