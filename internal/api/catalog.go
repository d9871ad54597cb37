// ABOUTME: Tag catalog, destination and server config endpoints.
// ABOUTME: The client doubles as the tag editor's catalog source.

package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/harper/tempmail/internal/models"
)

// Tags lists every known tag with its color.
func (c *Client) Tags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := c.do(ctx, http.MethodGet, "/api/tags", nil, nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// FetchKnownTags implements tagedit.Catalog.
func (c *Client) FetchKnownTags(ctx context.Context) ([]models.Tag, error) {
	return c.Tags(ctx)
}

func (c *Client) Destinations(ctx context.Context) ([]models.Destination, error) {
	var dests []models.Destination
	if err := c.do(ctx, http.MethodGet, "/api/destinations", nil, nil, &dests); err != nil {
		return nil, err
	}
	return dests, nil
}

// AddDestination registers a mailbox; the provider sends it a verification mail.
func (c *Client) AddDestination(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email"`
	}{Email: email}
	return c.do(ctx, http.MethodPost, "/api/destinations", nil, body, nil)
}

// DeleteDestination removes the destination identified by its provider tag.
func (c *Client) DeleteDestination(ctx context.Context, tag string) error {
	return c.do(ctx, http.MethodDelete, "/api/destinations", url.Values{"id": {tag}}, nil, nil)
}

func (c *Client) ServerConfig(ctx context.Context) (*models.ServerConfig, error) {
	var cfg models.ServerConfig
	if err := c.do(ctx, http.MethodGet, "/api/config", nil, nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveServerConfig stores cfg. Sending the masked token back keeps the
// existing one.
func (c *Client) SaveServerConfig(ctx context.Context, cfg *models.ServerConfig) error {
	return c.do(ctx, http.MethodPost, "/api/config", nil, cfg, nil)
}
