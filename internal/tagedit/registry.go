// ABOUTME: Registry of editors keyed by the input they are bound to.
// ABOUTME: Populated once at startup, then only read by forms.

package tagedit

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownEditor   = errors.New("unknown tag editor")
	ErrDuplicateEditor = errors.New("tag editor already registered")
)

// Registry maps input identifiers to editors. Register every editor before
// handing the registry to the UI; it is not safe for concurrent writes.
type Registry struct {
	editors map[string]*Editor
}

func NewRegistry() *Registry {
	return &Registry{editors: make(map[string]*Editor)}
}

// Register adds e under its name.
func (r *Registry) Register(e *Editor) error {
	if _, ok := r.editors[e.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateEditor, e.Name())
	}
	r.editors[e.Name()] = e
	return nil
}

// Get returns the editor bound to name.
func (r *Registry) Get(name string) (*Editor, error) {
	e, ok := r.editors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEditor, name)
	}
	return e, nil
}

// Names returns the registered names sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.editors))
	for n := range r.editors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// PointerDown dispatches a page-wide pointer press. Every editor other than
// owner sees it as landing outside; pass "" when the press hit no editor.
func (r *Registry) PointerDown(owner string) {
	for name, e := range r.editors {
		if name != owner {
			e.PointerDownOutside()
		}
	}
}

// NormalizeAll commits raw values through a scratch editor and returns the
// resulting tags: normalized, deduplicated, in first-seen order.
func NormalizeAll(raw []string) []string {
	e := New("", nil)
	for _, r := range raw {
		e.AddTag(r)
	}
	return e.Tags()
}
