// ABOUTME: Editor state and its public operations.
// ABOUTME: Add, remove, reset and catalog refresh with last-reset-wins ordering.

package tagedit

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/harper/tempmail/internal/models"
)

// Catalog supplies the known tags used for suggestions.
type Catalog interface {
	FetchKnownTags(ctx context.Context) ([]models.Tag, error)
}

// CatalogFunc adapts a function to Catalog.
type CatalogFunc func(ctx context.Context) ([]models.Tag, error)

func (f CatalogFunc) FetchKnownTags(ctx context.Context) ([]models.Tag, error) {
	return f(ctx)
}

// State of the delete confirmation.
type State int

const (
	StateIdle State = iota
	StateDeleteArmed
)

func (s State) String() string {
	if s == StateDeleteArmed {
		return "delete-armed"
	}
	return "idle"
}

// Pill is the view projection of one committed tag.
type Pill struct {
	Index  int
	Name   string
	Marked bool
}

// Editor is one tag input bound to one form.
type Editor struct {
	name    string
	catalog Catalog
	logger  *log.Logger

	mu            sync.Mutex
	tags          []string
	input         string
	pendingDelete bool
	known         []models.Tag
	focused       bool
	popup         bool
	suggestions   []models.Tag
	picking       bool
	generation    uint64
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger used for swallowed catalog errors.
func WithLogger(l *log.Logger) Option {
	return func(e *Editor) {
		e.logger = l
	}
}

// New creates an empty editor named after the input it is bound to.
// A nil catalog yields no suggestions.
func New(name string, catalog Catalog, opts ...Option) *Editor {
	e := &Editor{
		name:    name,
		catalog: catalog,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Editor) Name() string {
	return e.name
}

// AddTag commits raw as a tag. Empty names are ignored; duplicates only clear
// the input.
func (e *Editor) AddTag(raw string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.addTag(raw)
}

func (e *Editor) addTag(raw string) {
	name := models.NormalizeTagName(raw)
	if name == "" {
		return
	}
	if slices.Contains(e.tags, name) {
		e.input = ""
		return
	}
	e.pendingDelete = false
	e.tags = append(e.tags, name)
	e.input = ""
	e.hidePopup()
	e.focused = true
}

// RemoveTag removes the tag at index. It panics if index is out of range.
func (e *Editor) RemoveTag(index int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removeTag(index)
}

func (e *Editor) removeTag(index int) {
	if index < 0 || index >= len(e.tags) {
		panic(fmt.Sprintf("tagedit: %s: remove index %d out of range [0,%d)", e.name, index, len(e.tags)))
	}
	e.pendingDelete = false
	e.tags = slices.Delete(e.tags, index, index+1)
}

// Reset clears the editor and refreshes the catalog in the background. The
// returned channel is closed once the refresh has been applied or discarded.
// When Reset is called again before an earlier refresh finishes, the earlier
// result is dropped.
func (e *Editor) Reset(ctx context.Context) <-chan struct{} {
	e.mu.Lock()
	e.pendingDelete = false
	e.tags = nil
	e.input = ""
	e.known = nil
	e.picking = false
	e.hidePopup()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		known := e.fetch(ctx)

		e.mu.Lock()
		defer e.mu.Unlock()
		if gen != e.generation {
			e.logger.Debug("discarding stale tag catalog", "editor", e.name, "generation", gen)
			return
		}
		e.known = known
		e.refreshSuggestions()
	}()
	return done
}

func (e *Editor) fetch(ctx context.Context) []models.Tag {
	if e.catalog == nil {
		return nil
	}
	known, err := e.catalog.FetchKnownTags(ctx)
	if err != nil {
		e.logger.Debug("tag catalog unavailable", "editor", e.name, "err", err)
		return nil
	}
	return known
}

// Tags returns a copy of the committed tags in insertion order.
func (e *Editor) Tags() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.tags)
}

// Input returns the text currently typed.
func (e *Editor) Input() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.input
}

func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pendingDelete {
		return StateDeleteArmed
	}
	return StateIdle
}

func (e *Editor) Focused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.focused
}

// Catalog returns a copy of the cached known tags.
func (e *Editor) Catalog() []models.Tag {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.known)
}

// Pills projects the committed tags. The last pill is marked while a delete
// is armed.
func (e *Editor) Pills() []Pill {
	e.mu.Lock()
	defer e.mu.Unlock()
	pills := make([]Pill, len(e.tags))
	for i, t := range e.tags {
		pills[i] = Pill{
			Index:  i,
			Name:   t,
			Marked: e.pendingDelete && i == len(e.tags)-1,
		}
	}
	return pills
}
