// ABOUTME: MCP prompts for common alias workflows.
// ABOUTME: Guides agents through signing up with a fresh alias and tidying tags.

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "signup-alias",
		Description: "Create a dedicated alias for signing up to a service",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "service",
				Description: "Name of the service being signed up for",
				Required:    true,
			},
		},
	}, s.getSignupAliasPrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "tidy-aliases",
		Description: "Review active aliases and suggest tags, pins and removals",
	}, s.getTidyAliasesPrompt)
}

func (s *Server) getSignupAliasPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	service, ok := req.Params.Arguments["service"]
	if !ok || service == "" {
		service = "a new service"
	}

	template := fmt.Sprintf(`I am signing up for %s and want a throwaway address.

1. Use list_destinations and pick a verified destination.
2. Use list_tags to see which tags already exist and reuse one that fits.
3. Use create_alias with that destination and tags describing %s.
4. Reply with the new address only.`, service, service)

	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: template,
				},
			},
		},
	}, nil
}

func (s *Server) getTidyAliasesPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	template := `Review my active aliases.

Use list_active and list_tags, then suggest:

## Tags
- Aliases without tags and which existing tags fit them

## Pins
- Aliases I seem to rely on that should be pinned

## Cleanup
- Aliases that look unused and could be destroyed

Do not call destroy_alias or pin_alias until I confirm.`

	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: template,
				},
			},
		},
	}, nil
}
