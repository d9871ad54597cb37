// ABOUTME: Bubbletea adapter drawing a tag editor as pills and a popup.
// ABOUTME: Translates terminal keys and mouse presses into editor events.

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harper/tempmail/internal/tagedit"
)

const (
	defaultPillColor = "#475569"
	removeGlyph      = "✕"
	cursorGlyph      = "▏"

	// inputReach extends the input's hit area to the end of the line.
	inputReach = 1 << 16
)

var (
	pillStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Padding(0, 1)
	markedPillStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#dc2626")).
			Strikethrough(true).Padding(0, 1)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#e2e8f0"))
	placeholder     = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b"))
	suggestionStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("#cbd5e1"))
)

// span is a horizontal cell range [start, end).
type span struct {
	start, end int
}

func (s span) contains(x int) bool {
	return x >= s.start && x < s.end
}

// TagField hosts one editor inside a form. Its first line holds the pills and
// the input; each visible suggestion takes one line below it.
type TagField struct {
	editor      *tagedit.Editor
	registry    *tagedit.Registry
	Placeholder string
}

func NewTagField(registry *tagedit.Registry, name string) (*TagField, error) {
	ed, err := registry.Get(name)
	if err != nil {
		return nil, err
	}
	return &TagField{
		editor:      ed,
		registry:    registry,
		Placeholder: "add tags…",
	}, nil
}

func (f *TagField) Editor() *tagedit.Editor {
	return f.editor
}

func (f *TagField) Focus() {
	f.editor.Focus()
}

func (f *TagField) Blur() {
	f.editor.Blur()
}

func (f *TagField) Focused() bool {
	return f.editor.Focused()
}

// Tags returns the committed tags.
func (f *TagField) Tags() []string {
	return f.editor.Tags()
}

// HandleKey feeds a key press to the editor and applies it to the input text
// unless the editor suppressed it. It reports whether the key was consumed;
// unconsumed Enter and Tab are left for the form.
func (f *TagField) HandleKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEnter:
		return f.editor.KeyDown(tagedit.KeyEnter)
	case tea.KeyTab:
		return f.editor.KeyDown(tagedit.KeyTab)
	case tea.KeySpace:
		if !f.editor.KeyDown(tagedit.KeySpace) {
			f.editor.SetInput(f.editor.Input() + " ")
		}
		return true
	case tea.KeyBackspace:
		if !f.editor.KeyDown(tagedit.KeyBackspace) {
			in := []rune(f.editor.Input())
			if len(in) > 0 {
				f.editor.SetInput(string(in[:len(in)-1]))
			}
		}
		return true
	case tea.KeyRunes:
		if !f.editor.KeyDown(tagedit.KeyOther) {
			f.editor.SetInput(f.editor.Input() + string(msg.Runes))
		}
		return true
	case tea.KeyCtrlU:
		f.editor.KeyDown(tagedit.KeyOther)
		f.editor.SetInput("")
		return true
	default:
		f.editor.KeyDown(tagedit.KeyOther)
		return false
	}
}

// HandleMouse handles a left press at (x, y) relative to the field's first
// line. It reports whether the press landed inside the field.
func (f *TagField) HandleMouse(x, y int) bool {
	pills, removes, inputSpan := f.layout()

	if y == 0 {
		for i, r := range removes {
			if r.contains(x) {
				f.registry.PointerDown(f.editor.Name())
				f.editor.RemoveTag(i)
				f.editor.Focus()
				return true
			}
		}
		for _, p := range pills {
			if p.contains(x) {
				f.registry.PointerDown(f.editor.Name())
				f.editor.Focus()
				return true
			}
		}
		if x >= inputSpan.start {
			f.registry.PointerDown(f.editor.Name())
			f.editor.Focus()
			return true
		}
		return false
	}

	rows := f.editor.Suggestions()
	if idx := y - 1; idx >= 0 && idx < len(rows) {
		f.registry.PointerDown(f.editor.Name())
		f.editor.BeginSuggestionPick()
		if !f.editor.PickSuggestion(idx) {
			f.editor.CancelSuggestionPick()
		}
		return true
	}
	return false
}

// Height is the number of lines View renders.
func (f *TagField) Height() int {
	return 1 + len(f.editor.Suggestions())
}

func (f *TagField) colorOf(name string) string {
	for _, t := range f.editor.Catalog() {
		if t.Name == name && t.Color != "" {
			return t.Color
		}
	}
	return defaultPillColor
}

func (f *TagField) renderPill(p tagedit.Pill) (body, remove string) {
	style := pillStyle.Background(lipgloss.Color(f.colorOf(p.Name)))
	if p.Marked {
		style = markedPillStyle
	}
	return style.Render(p.Name), style.Render(removeGlyph)
}

// layout computes the cell spans of each pill, each remove control and the
// input on the first line, matching View.
func (f *TagField) layout() (pills, removes []span, input span) {
	x := 0
	for _, p := range f.editor.Pills() {
		body, remove := f.renderPill(p)
		bw, rw := lipgloss.Width(body), lipgloss.Width(remove)
		pills = append(pills, span{x, x + bw + rw})
		removes = append(removes, span{x + bw, x + bw + rw})
		x += bw + rw + 1
	}
	return pills, removes, span{x, x + inputReach}
}

func (f *TagField) View() string {
	var line strings.Builder
	for _, p := range f.editor.Pills() {
		body, remove := f.renderPill(p)
		line.WriteString(body)
		line.WriteString(remove)
		line.WriteString(" ")
	}

	text := f.editor.Input()
	switch {
	case text == "" && len(f.editor.Pills()) == 0 && !f.editor.Focused():
		line.WriteString(placeholder.Render(f.Placeholder))
	case f.editor.Focused():
		line.WriteString(inputStyle.Render(text) + cursorGlyph)
	default:
		line.WriteString(inputStyle.Render(text))
	}

	lines := []string{line.String()}
	for _, t := range f.editor.Suggestions() {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color)).Render("●")
		lines = append(lines, suggestionStyle.Render(dot+" "+t.Name))
	}
	return strings.Join(lines, "\n")
}
