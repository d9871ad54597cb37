// ABOUTME: Tag model for labelling aliases.
// ABOUTME: Normalizes tag names to lowercase with commas and whitespace stripped.

package models

import "strings"

// Tag is a catalog entry as served by the API. Color is a CSS hex string.
type Tag struct {
	ID    int64  `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
}

func NewTag(name string) *Tag {
	return &Tag{
		Name: NormalizeTagName(name),
	}
}

// NormalizeTagName strips every comma, trims surrounding whitespace and
// lowercases the result.
func NormalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(name, ",", "")))
}

// TagNames returns the names of tags in order.
func TagNames(tags []Tag) []string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}
	return names
}
