// ABOUTME: Keyboard, text, focus and pointer event handlers.
// ABOUTME: Implements the two-stage Backspace delete and blur commit.

package tagedit

import "strings"

// Key is the subset of keys the editor distinguishes.
type Key int

const (
	KeyOther Key = iota
	KeyEnter
	KeyTab
	KeySpace
	KeyBackspace
)

func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "enter"
	case KeyTab:
		return "tab"
	case KeySpace:
		return "space"
	case KeyBackspace:
		return "backspace"
	default:
		return "other"
	}
}

// KeyDown handles a key press before the host applies it to the input text.
// It reports whether the host must suppress the key's default effect.
func (e *Editor) KeyDown(k Key) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if k != KeyBackspace && e.pendingDelete {
		e.pendingDelete = false
	}

	switch k {
	case KeyEnter, KeyTab, KeySpace:
		if strings.TrimSpace(e.input) != "" {
			e.addTag(e.input)
			return true
		}
		return k == KeySpace
	case KeyBackspace:
		if e.input != "" || len(e.tags) == 0 {
			return false
		}
		if e.pendingDelete {
			e.removeTag(len(e.tags) - 1)
		} else {
			e.pendingDelete = true
		}
		return true
	}
	return false
}

// SetInput records a change of the typed text and recomputes suggestions.
func (e *Editor) SetInput(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.input = text
	if text != "" {
		e.pendingDelete = false
	}
	e.refreshSuggestions()
}

// Focus marks the input focused and recomputes suggestions.
func (e *Editor) Focus() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.focused = true
	e.refreshSuggestions()
}

// Blur disarms a pending delete, commits any typed text and hides the popup.
// While a suggestion pick is in progress the text and popup are left for the
// pick to resolve.
func (e *Editor) Blur() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pendingDelete = false
	e.focused = false
	if e.picking {
		return
	}
	if strings.TrimSpace(e.input) != "" {
		e.addTag(e.input)
		// addTag refocuses the input; a blur must leave it unfocused.
		e.focused = false
	}
	e.hidePopup()
}

// PointerDownOutside handles a pointer press landing outside the input, the
// pill container and the popup.
func (e *Editor) PointerDownOutside() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hidePopup()
	e.pendingDelete = false
}
