// ABOUTME: Alias endpoints: create, check, list, pin and destroy.
// ABOUTME: Lists are returned in server order (pinned first for active).

package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/harper/tempmail/internal/models"
)

// CreateRequest asks the server for a new alias. An empty Email lets the
// server generate a random address on its domain.
type CreateRequest struct {
	Destination string   `json:"destination"`
	Email       string   `json:"email,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// CreateResult identifies the created routing rule.
type CreateResult struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// CheckResult reports whether an address is already in the history.
type CheckResult struct {
	Exists bool `json:"exists"`
	Active bool `json:"active"`
}

type pinRequest struct {
	ID     string `json:"id"`
	Pinned bool   `json:"pinned"`
}

func (c *Client) Create(ctx context.Context, req CreateRequest) (*CreateResult, error) {
	var res CreateResult
	if err := c.do(ctx, http.MethodPost, "/api/create", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Check(ctx context.Context, email string) (*CheckResult, error) {
	var res CheckResult
	q := url.Values{"email": {email}}
	if err := c.do(ctx, http.MethodGet, "/api/check", q, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Active lists the aliases currently routing mail.
func (c *Client) Active(ctx context.Context) ([]*models.Alias, error) {
	var list []*models.Alias
	if err := c.do(ctx, http.MethodGet, "/api/active", nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// History lists every alias ever created, newest first.
func (c *Client) History(ctx context.Context) ([]*models.Alias, error) {
	var list []*models.Alias
	if err := c.do(ctx, http.MethodGet, "/api/history", nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// FindInHistory returns the history entry for email, or nil.
func (c *Client) FindInHistory(ctx context.Context, email string) (*models.Alias, error) {
	list, err := c.History(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range list {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (c *Client) Pin(ctx context.Context, id string, pinned bool) error {
	return c.do(ctx, http.MethodPost, "/api/pin", nil, pinRequest{ID: id, Pinned: pinned}, nil)
}

// Delete destroys the routing rule; the alias stays in history as expired.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/delete", url.Values{"id": {id}}, nil, nil)
}
