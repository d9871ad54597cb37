// ABOUTME: MCP resources exposing aliases from the history by address.
// ABOUTME: Renders one alias as markdown under the tempmail:// scheme.

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const aliasURIPrefix = "tempmail://alias/"

func (s *Server) registerResources() {
	s.server.AddResourceTemplate(
		&mcp.ResourceTemplate{
			URITemplate: aliasURIPrefix + "{email}",
			Name:        "Alias",
			Description: "Access an alias from the history by address",
			MIMEType:    "text/markdown",
		},
		s.handleReadResource,
	)
}

func (s *Server) handleReadResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	email, ok := strings.CutPrefix(req.Params.URI, aliasURIPrefix)
	if !ok || email == "" {
		return nil, fmt.Errorf("invalid resource URI: %s", req.Params.URI)
	}

	alias, err := s.backend.FindInHistory(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get alias: %w", err)
	}
	if alias == nil {
		return nil, fmt.Errorf("alias not found: %s", email)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", alias.Email)
	fmt.Fprintf(&b, "- **Status:** %s\n", alias.Status())
	fmt.Fprintf(&b, "- **Destination:** %s\n", alias.Destination)
	fmt.Fprintf(&b, "- **Created:** %s\n", alias.CreatedAt.Format("2006-01-02 15:04"))
	if alias.Pinned {
		b.WriteString("- **Pinned:** yes\n")
	}
	if names := alias.TagNames(); len(names) > 0 {
		fmt.Fprintf(&b, "- **Tags:** %s\n", strings.Join(names, ", "))
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     b.String(),
			},
		},
	}, nil
}
