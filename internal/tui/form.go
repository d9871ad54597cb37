// ABOUTME: Bubbletea form for creating random or custom aliases.
// ABOUTME: Resets its tag editor on open and waits for the catalog first.

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harper/tempmail/internal/models"
	"github.com/harper/tempmail/internal/tagedit"
)

// Editor names bound to each form.
const (
	CreateTagInput = "tag-input-create"
	CustomTagInput = "tag-input-custom"
)

// Mode selects which alias form to show.
type Mode int

const (
	ModeRandom Mode = iota
	ModeCustom
)

// Loader fetches what a form needs before it is shown.
type Loader interface {
	Destinations(ctx context.Context) ([]models.Destination, error)
	ServerConfig(ctx context.Context) (*models.ServerConfig, error)
}

// Result is what the user submitted.
type Result struct {
	Submitted   bool
	Alias       string
	Domain      string
	Destination string
	Tags        []string
}

// Email is the full custom address, or "" for random aliases.
func (r Result) Email() string {
	if r.Alias == "" {
		return ""
	}
	return r.Alias + "@" + r.Domain
}

type field int

const (
	fieldAlias field = iota
	fieldDestination
	fieldTags
)

type catalogReadyMsg struct{}

type destinationsMsg struct {
	dests []models.Destination
	err   error
}

type serverConfigMsg struct {
	cfg *models.ServerConfig
	err error
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f97316"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8")).Width(13)
	focusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f97316")).Width(13)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b"))
)

// Form is the create-alias dialog.
type Form struct {
	ctx    context.Context
	mode   Mode
	loader Loader
	tags   *TagField

	alias   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    formKeys

	loading       int
	dests         []models.Destination
	destIdx       int
	preferredDest string
	initialTags   []string
	domain        string
	focus         field
	err           error
	result        Result
	done          bool
}

// FormOption pre-fills a form.
type FormOption func(*Form)

// WithAlias pre-fills the custom alias input. A full address is cut to the
// part before @.
func WithAlias(alias string) FormOption {
	return func(f *Form) {
		local, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(alias)), "@")
		f.alias.SetValue(local)
	}
}

// WithTags commits tags to the editor once it has been reset.
func WithTags(tags []string) FormOption {
	return func(f *Form) {
		f.initialTags = tags
	}
}

// NewForm builds a form bound to the registry's editor for mode.
func NewForm(ctx context.Context, mode Mode, loader Loader, registry *tagedit.Registry, preferredDest string, opts ...FormOption) (*Form, error) {
	name := CreateTagInput
	if mode == ModeCustom {
		name = CustomTagInput
	}
	tags, err := NewTagField(registry, name)
	if err != nil {
		return nil, err
	}

	alias := textinput.New()
	alias.Placeholder = "alias"
	alias.Prompt = ""
	alias.CharLimit = 64

	f := &Form{
		ctx:           ctx,
		mode:          mode,
		loader:        loader,
		tags:          tags,
		alias:         alias,
		spinner:       spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:          help.New(),
		keys:          newFormKeys(),
		preferredDest: preferredDest,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Result returns the submission; Submitted is false when cancelled.
func (f *Form) Result() Result {
	return f.result
}

// Done reports whether the form has been submitted or cancelled.
func (f *Form) Done() bool {
	return f.done
}

func (f *Form) Init() tea.Cmd {
	ed := f.tags.Editor()
	done := ed.Reset(f.ctx)
	if len(f.initialTags) > 0 {
		for _, t := range f.initialTags {
			ed.AddTag(t)
		}
		// Committing focuses the editor; focus is placed once loading ends.
		ed.Blur()
	}
	cmds := []tea.Cmd{
		f.spinner.Tick,
		func() tea.Msg {
			<-done
			return catalogReadyMsg{}
		},
		f.loadDestinations,
	}
	f.loading = 2
	if f.mode == ModeCustom {
		cmds = append(cmds, f.loadServerConfig)
		f.loading++
	}
	return tea.Batch(cmds...)
}

func (f *Form) loadDestinations() tea.Msg {
	dests, err := f.loader.Destinations(f.ctx)
	return destinationsMsg{dests: dests, err: err}
}

func (f *Form) loadServerConfig() tea.Msg {
	cfg, err := f.loader.ServerConfig(f.ctx)
	return serverConfigMsg{cfg: cfg, err: err}
}

func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if f.loading == 0 {
			return f, nil
		}
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return f, cmd

	case catalogReadyMsg:
		return f, f.loaded()

	case destinationsMsg:
		if msg.err != nil {
			f.err = fmt.Errorf("load destinations: %w", msg.err)
		}
		f.dests = msg.dests
		f.destIdx = 0
		for i, d := range f.dests {
			if d.Email == f.preferredDest {
				f.destIdx = i
			}
		}
		return f, f.loaded()

	case serverConfigMsg:
		// A missing domain is reported on submit.
		if msg.err == nil && msg.cfg != nil {
			f.domain = msg.cfg.Domain
		}
		return f, f.loaded()

	case tea.FocusMsg:
		if f.focus == fieldTags && f.loading == 0 {
			f.tags.Focus()
		}
		return f, nil

	case tea.BlurMsg:
		if f.focus == fieldTags && f.loading == 0 {
			f.tags.Blur()
		}
		return f, nil

	case tea.MouseMsg:
		if f.loading == 0 && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return f, f.handleClick(msg.X, msg.Y)
		}
		return f, nil

	case tea.KeyMsg:
		return f, f.handleKey(msg)
	}
	return f, nil
}

// loaded counts down outstanding loads and focuses the first field once the
// form is ready.
func (f *Form) loaded() tea.Cmd {
	f.loading--
	if f.loading > 0 {
		return nil
	}
	if f.mode == ModeCustom {
		f.focus = fieldDestination
		return f.setFocus(fieldAlias)
	}
	f.focus = fieldAlias
	return f.setFocus(fieldDestination)
}

func (f *Form) fields() []field {
	if f.mode == ModeCustom {
		return []field{fieldAlias, fieldDestination, fieldTags}
	}
	return []field{fieldDestination, fieldTags}
}

func (f *Form) step(delta int) tea.Cmd {
	fs := f.fields()
	idx := 0
	for i, fl := range fs {
		if fl == f.focus {
			idx = i
		}
	}
	idx = (idx + delta + len(fs)) % len(fs)
	return f.setFocus(fs[idx])
}

func (f *Form) setFocus(next field) tea.Cmd {
	if next == f.focus {
		return nil
	}
	switch f.focus {
	case fieldAlias:
		f.alias.Blur()
	case fieldTags:
		f.tags.Blur()
	}
	f.focus = next
	switch next {
	case fieldAlias:
		return f.alias.Focus()
	case fieldTags:
		f.tags.Focus()
	}
	return nil
}

func (f *Form) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, f.keys.Cancel) {
		f.done = true
		f.result = Result{}
		return tea.Quit
	}
	if f.loading > 0 {
		return nil
	}

	if f.focus == fieldTags && f.tags.HandleKey(msg) {
		return nil
	}

	switch {
	case key.Matches(msg, f.keys.Next):
		return f.step(1)
	case key.Matches(msg, f.keys.Prev):
		return f.step(-1)
	case key.Matches(msg, f.keys.Submit):
		return f.submit()
	}

	switch f.focus {
	case fieldAlias:
		var cmd tea.Cmd
		f.alias, cmd = f.alias.Update(msg)
		return cmd
	case fieldDestination:
		if key.Matches(msg, f.keys.Cycle) && len(f.dests) > 0 {
			delta := 1
			if s := msg.String(); s == "left" || s == "up" {
				delta = -1
			}
			f.destIdx = (f.destIdx + delta + len(f.dests)) % len(f.dests)
		}
	}
	return nil
}

// Line offsets of the rendered form.
func (f *Form) aliasRow() int { return 2 }

func (f *Form) destinationRow() int {
	if f.mode == ModeCustom {
		return 3
	}
	return 2
}

func (f *Form) tagOrigin() int {
	return f.destinationRow() + 2
}

func (f *Form) handleClick(x, y int) tea.Cmd {
	origin := f.tagOrigin()
	if y >= origin && y < origin+f.tags.Height() {
		if f.tags.HandleMouse(x, y-origin) {
			if f.focus != fieldTags {
				return f.setFocus(fieldTags)
			}
			return nil
		}
	}

	f.tags.registry.PointerDown("")
	switch {
	case f.mode == ModeCustom && y == f.aliasRow():
		return f.setFocus(fieldAlias)
	case y == f.destinationRow():
		return f.setFocus(fieldDestination)
	}
	return nil
}

func (f *Form) submit() tea.Cmd {
	// Leaving the tag field commits any typed text.
	if f.focus == fieldTags {
		f.tags.Blur()
	}
	f.err = nil

	res := Result{Submitted: true, Tags: f.tags.Tags()}
	if len(f.dests) == 0 {
		f.err = errors.New("no destination mailbox - add one with 'tempmail dest add'")
		return nil
	}
	res.Destination = f.dests[f.destIdx].Email

	if f.mode == ModeCustom {
		alias := strings.ToLower(strings.TrimSpace(f.alias.Value()))
		if alias == "" {
			f.err = errors.New("enter an alias")
			return f.setFocus(fieldAlias)
		}
		if strings.Contains(alias, "@") {
			f.err = errors.New("enter only the part before @")
			return f.setFocus(fieldAlias)
		}
		if f.domain == "" {
			f.err = errors.New("server has no domain configured")
			return nil
		}
		res.Alias = alias
		res.Domain = f.domain
	}

	f.result = res
	f.done = true
	return tea.Quit
}

func (f *Form) label(fl field, text string) string {
	if f.focus == fl {
		return focusStyle.Render(text)
	}
	return labelStyle.Render(text)
}

func (f *Form) View() string {
	title := "New random alias"
	if f.mode == ModeCustom {
		title = "New custom alias"
	}

	if f.loading > 0 {
		return titleStyle.Render(title) + "\n\n" + f.spinner.View() + " Loading…\n"
	}
	if f.done {
		return ""
	}

	lines := []string{titleStyle.Render(title), ""}
	if f.mode == ModeCustom {
		lines = append(lines, f.label(fieldAlias, "Alias")+f.alias.View()+dimStyle.Render("@"+f.domain))
	}
	lines = append(lines, f.label(fieldDestination, "Destination")+f.destinationView())
	lines = append(lines, f.label(fieldTags, "Tags"))
	lines = append(lines, f.tags.View())
	lines = append(lines, "")
	if f.err != nil {
		lines = append(lines, errStyle.Render(f.err.Error()))
	}
	lines = append(lines, f.help.View(f.keys))
	return strings.Join(lines, "\n") + "\n"
}

func (f *Form) destinationView() string {
	if len(f.dests) == 0 {
		return dimStyle.Render("none")
	}
	d := f.dests[f.destIdx]
	out := "‹ " + d.Email + " ›"
	if !d.IsVerified() {
		out += dimStyle.Render(" (pending)")
	}
	return out
}
