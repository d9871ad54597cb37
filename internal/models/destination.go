// ABOUTME: Destination mailbox and server configuration models.
// ABOUTME: Destinations are verified once the provider records a timestamp.

package models

type Destination struct {
	Tag      string `json:"tag" yaml:"tag"`
	Email    string `json:"email" yaml:"email"`
	Verified string `json:"verified,omitempty" yaml:"verified,omitempty"`
}

func (d *Destination) IsVerified() bool {
	return d.Verified != ""
}

// ServerConfig is the routing configuration held by the API server. The
// provider token comes back masked with asterisks.
type ServerConfig struct {
	CFToken string `json:"cf_token"`
	ZoneID  string `json:"zone_id"`
	Domain  string `json:"domain"`
}
