// ABOUTME: Alias model representing a routed temporary address.
// ABOUTME: Provides status helpers and history search matching.

package models

import (
	"strings"
	"time"
)

type Alias struct {
	ID          string    `json:"id" yaml:"id"`
	Email       string    `json:"email" yaml:"email"`
	Destination string    `json:"destination" yaml:"destination"`
	CreatedAt   time.Time `json:"created_at" yaml:"created"`
	Active      bool      `json:"active" yaml:"active"`
	Pinned      bool      `json:"pinned" yaml:"pinned"`
	Tags        []Tag     `json:"tags" yaml:"tags"`
}

func (a *Alias) TagNames() []string {
	return TagNames(a.Tags)
}

func (a *Alias) Status() string {
	if a.Active {
		return "ACTIVE"
	}
	return "EXPIRED"
}

// Matches reports whether term occurs in the address, the destination or
// any tag name, ignoring case. An empty term matches everything.
func (a *Alias) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(a.Email), term) ||
		strings.Contains(strings.ToLower(a.Destination), term) {
		return true
	}
	for _, t := range a.Tags {
		if strings.Contains(strings.ToLower(t.Name), term) {
			return true
		}
	}
	return false
}

// FilterAliases returns the aliases matching term, preserving order.
func FilterAliases(aliases []*Alias, term string) []*Alias {
	out := make([]*Alias, 0, len(aliases))
	for _, a := range aliases {
		if a.Matches(term) {
			out = append(out, a)
		}
	}
	return out
}
