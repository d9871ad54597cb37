// ABOUTME: Type-ahead suggestions drawn from the known tag catalog.
// ABOUTME: Pointer-down on the popup sets a flag that suppresses blur commit.

package tagedit

import (
	"slices"
	"strings"

	"github.com/harper/tempmail/internal/models"
)

// MatchSuggestions returns the catalog entries whose name contains the
// trimmed, lowercased input and that are not already committed.
func MatchSuggestions(catalog []models.Tag, committed []string, input string) []models.Tag {
	val := strings.ToLower(strings.TrimSpace(input))
	if val == "" {
		return nil
	}
	var matches []models.Tag
	for _, t := range catalog {
		if !strings.Contains(strings.ToLower(t.Name), val) {
			continue
		}
		if slices.Contains(committed, models.NormalizeTagName(t.Name)) {
			continue
		}
		matches = append(matches, t)
	}
	return matches
}

func (e *Editor) refreshSuggestions() {
	e.suggestions = MatchSuggestions(e.known, e.tags, e.input)
	e.popup = len(e.suggestions) > 0
}

func (e *Editor) hidePopup() {
	e.popup = false
	e.suggestions = nil
}

// PopupVisible reports whether the suggestion popup is shown.
func (e *Editor) PopupVisible() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.popup
}

// Suggestions returns the rows of the popup; empty when it is hidden.
func (e *Editor) Suggestions() []models.Tag {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.popup {
		return nil
	}
	return slices.Clone(e.suggestions)
}

// BeginSuggestionPick marks a pointer press on the popup. Until the pick
// completes or is cancelled, Blur does not commit the typed text.
func (e *Editor) BeginSuggestionPick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.picking = true
}

// PickSuggestion commits the suggestion at index and hides the popup. It
// reports false when index does not name a visible suggestion.
func (e *Editor) PickSuggestion(index int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.picking = false
	if !e.popup || index < 0 || index >= len(e.suggestions) {
		return false
	}
	name := e.suggestions[index].Name
	e.addTag(name)
	e.hidePopup()
	return true
}

// CancelSuggestionPick ends a pointer interaction that did not pick a row.
func (e *Editor) CancelSuggestionPick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.picking = false
}
