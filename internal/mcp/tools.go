// ABOUTME: MCP tools for listing, creating, pinning and destroying aliases.
// ABOUTME: Tag arguments go through the same normalization as the tag editor.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harper/tempmail/internal/api"
	"github.com/harper/tempmail/internal/models"
	"github.com/harper/tempmail/internal/tagedit"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// list_tags
	s.server.AddTool(&mcp.Tool{
		Name:        "list_tags",
		Description: "List known tags with their colors",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	}, s.handleListTags)

	// list_active
	s.server.AddTool(&mcp.Tool{
		Name:        "list_active",
		Description: "List active aliases, pinned first",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"tag": {"type": "string", "description": "Only aliases carrying this tag"}
			}
		}`),
	}, s.handleListActive)

	// search_history
	s.server.AddTool(&mcp.Tool{
		Name:        "search_history",
		Description: "Search every alias ever created by address, destination or tag",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "Search term; empty lists everything"},
				"limit": {"type": "integer", "description": "Max results", "default": 50}
			}
		}`),
	}, s.handleSearchHistory)

	// create_alias
	s.server.AddTool(&mcp.Tool{
		Name:        "create_alias",
		Description: "Create a forwarding alias, random unless email is given",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"destination": {"type": "string", "description": "Verified destination mailbox"},
				"email": {"type": "string", "description": "Custom alias address"},
				"tags": {"type": "array", "items": {"type": "string"}, "description": "Optional tags"}
			},
			"required": ["destination"]
		}`),
	}, s.handleCreateAlias)

	// pin_alias
	s.server.AddTool(&mcp.Tool{
		Name:        "pin_alias",
		Description: "Pin or unpin an active alias",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Alias rule ID"},
				"pinned": {"type": "boolean", "description": "Pin state", "default": true}
			},
			"required": ["id"]
		}`),
	}, s.handlePinAlias)

	// destroy_alias
	s.server.AddTool(&mcp.Tool{
		Name:        "destroy_alias",
		Description: "Destroy an alias; it stays in history as expired",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Alias rule ID"}
			},
			"required": ["id"]
		}`),
	}, s.handleDestroyAlias)

	// list_destinations
	s.server.AddTool(&mcp.Tool{
		Name:        "list_destinations",
		Description: "List destination mailboxes and whether they are verified",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	}, s.handleListDestinations)
}

func errorResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf(format, args...)},
		},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	data, _ := json.MarshalIndent(v, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}
}

func textResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf(format, args...)},
		},
	}
}

func unmarshalArgs(req *mcp.CallToolRequest, v any) error {
	if len(req.Params.Arguments) == 0 {
		return nil
	}
	return json.Unmarshal(req.Params.Arguments, v)
}

func (s *Server) handleListTags(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tags, err := s.backend.Tags(ctx)
	if err != nil {
		return errorResult("failed to list tags: %v", err), nil
	}
	return jsonResult(tags), nil
}

func (s *Server) handleListActive(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Tag string `json:"tag"`
	}
	if err := unmarshalArgs(req, &params); err != nil {
		return nil, err
	}

	aliases, err := s.backend.Active(ctx)
	if err != nil {
		return errorResult("failed to list active aliases: %v", err), nil
	}

	if tag := models.NormalizeTagName(params.Tag); tag != "" {
		var filtered []*models.Alias
		for _, a := range aliases {
			for _, name := range a.TagNames() {
				if name == tag {
					filtered = append(filtered, a)
					break
				}
			}
		}
		aliases = filtered
	}
	return jsonResult(aliases), nil
}

func (s *Server) handleSearchHistory(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Query string `json:"query"`
		Limit int    `json:"limit"`
	}
	params.Limit = 50 // default
	if err := unmarshalArgs(req, &params); err != nil {
		return nil, err
	}

	history, err := s.backend.History(ctx)
	if err != nil {
		return errorResult("failed to load history: %v", err), nil
	}

	matches := models.FilterAliases(history, params.Query)
	if params.Limit > 0 && len(matches) > params.Limit {
		matches = matches[:params.Limit]
	}
	return jsonResult(matches), nil
}

func (s *Server) handleCreateAlias(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Destination string   `json:"destination"`
		Email       string   `json:"email"`
		Tags        []string `json:"tags"`
	}
	if err := unmarshalArgs(req, &params); err != nil {
		return nil, err
	}

	if strings.TrimSpace(params.Destination) == "" {
		return errorResult("destination cannot be empty"), nil
	}

	res, err := s.backend.Create(ctx, api.CreateRequest{
		Destination: strings.TrimSpace(params.Destination),
		Email:       strings.ToLower(strings.TrimSpace(params.Email)),
		Tags:        tagedit.NormalizeAll(params.Tags),
	})
	if err != nil {
		return errorResult("failed to create alias: %v", err), nil
	}
	return textResult("Created %s (id %s)", res.Email, res.ID), nil
}

func (s *Server) handlePinAlias(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := struct {
		ID     string `json:"id"`
		Pinned *bool  `json:"pinned"`
	}{}
	if err := unmarshalArgs(req, &params); err != nil {
		return nil, err
	}
	if params.ID == "" {
		return errorResult("id cannot be empty"), nil
	}

	pinned := params.Pinned == nil || *params.Pinned
	if err := s.backend.Pin(ctx, params.ID, pinned); err != nil {
		return errorResult("failed to update pin: %v", err), nil
	}
	if pinned {
		return textResult("Pinned %s", params.ID), nil
	}
	return textResult("Unpinned %s", params.ID), nil
}

func (s *Server) handleDestroyAlias(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := unmarshalArgs(req, &params); err != nil {
		return nil, err
	}
	if params.ID == "" {
		return errorResult("id cannot be empty"), nil
	}

	if err := s.backend.Delete(ctx, params.ID); err != nil {
		return errorResult("failed to destroy alias: %v", err), nil
	}
	return textResult("Destroyed %s", params.ID), nil
}

func (s *Server) handleListDestinations(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dests, err := s.backend.Destinations(ctx)
	if err != nil {
		return errorResult("failed to list destinations: %v", err), nil
	}
	return jsonResult(dests), nil
}
