// ABOUTME: Tests for the terminal tag field adapter.
// ABOUTME: Drives the field with key and mouse messages and checks the editor.

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harper/tempmail/internal/models"
	"github.com/harper/tempmail/internal/tagedit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCatalog = []models.Tag{
	{ID: 1, Name: "work", Color: "#2563eb"},
	{ID: 2, Name: "shopping", Color: "#16a34a"},
	{ID: 3, Name: "news", Color: "#9333ea"},
}

func newTestRegistry(t *testing.T) *tagedit.Registry {
	t.Helper()
	catalog := tagedit.CatalogFunc(func(ctx context.Context) ([]models.Tag, error) {
		return testCatalog, nil
	})
	reg := tagedit.NewRegistry()
	require.NoError(t, reg.Register(tagedit.New(CreateTagInput, catalog)))
	require.NoError(t, reg.Register(tagedit.New(CustomTagInput, catalog)))
	return reg
}

func newTestField(t *testing.T) *TagField {
	t.Helper()
	reg := newTestRegistry(t)
	f, err := NewTagField(reg, CreateTagInput)
	require.NoError(t, err)
	<-f.Editor().Reset(context.Background())
	f.Focus()
	return f
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestNewTagFieldUnknownEditor(t *testing.T) {
	_, err := NewTagField(tagedit.NewRegistry(), "missing")
	assert.ErrorIs(t, err, tagedit.ErrUnknownEditor)
}

func TestTagFieldTypingCommitsOnSpace(t *testing.T) {
	f := newTestField(t)

	assert.True(t, f.HandleKey(runes("Work")))
	assert.Equal(t, "Work", f.Editor().Input())
	assert.True(t, f.HandleKey(keyOf(tea.KeySpace)))

	assert.Equal(t, []string{"work"}, f.Tags())
	assert.Equal(t, "", f.Editor().Input())
}

func TestTagFieldSpaceOnEmptyInputIsSwallowed(t *testing.T) {
	f := newTestField(t)

	assert.True(t, f.HandleKey(keyOf(tea.KeySpace)))
	assert.Equal(t, "", f.Editor().Input())
	assert.Empty(t, f.Tags())
}

func TestTagFieldEnterAndTab(t *testing.T) {
	f := newTestField(t)

	assert.False(t, f.HandleKey(keyOf(tea.KeyEnter)), "empty enter belongs to the form")
	assert.False(t, f.HandleKey(keyOf(tea.KeyTab)), "empty tab belongs to the form")

	f.HandleKey(runes("news"))
	assert.True(t, f.HandleKey(keyOf(tea.KeyTab)))
	f.HandleKey(runes("misc"))
	assert.True(t, f.HandleKey(keyOf(tea.KeyEnter)))
	assert.Equal(t, []string{"news", "misc"}, f.Tags())
}

func TestTagFieldBackspace(t *testing.T) {
	f := newTestField(t)
	f.Editor().AddTag("work")
	f.Editor().AddTag("news")

	f.HandleKey(runes("ab"))
	f.HandleKey(keyOf(tea.KeyBackspace))
	assert.Equal(t, "a", f.Editor().Input())
	f.HandleKey(keyOf(tea.KeyBackspace))
	assert.Equal(t, "", f.Editor().Input())
	assert.Equal(t, tagedit.StateIdle, f.Editor().State())

	f.HandleKey(keyOf(tea.KeyBackspace))
	assert.Equal(t, tagedit.StateDeleteArmed, f.Editor().State())
	assert.Equal(t, []string{"work", "news"}, f.Tags())

	f.HandleKey(keyOf(tea.KeyBackspace))
	assert.Equal(t, tagedit.StateIdle, f.Editor().State())
	assert.Equal(t, []string{"work"}, f.Tags())
}

func TestTagFieldCtrlUClearsInput(t *testing.T) {
	f := newTestField(t)
	f.HandleKey(runes("draft"))

	assert.True(t, f.HandleKey(keyOf(tea.KeyCtrlU)))
	assert.Equal(t, "", f.Editor().Input())
}

func TestTagFieldUnhandledKeyDisarms(t *testing.T) {
	f := newTestField(t)
	f.Editor().AddTag("work")
	f.HandleKey(keyOf(tea.KeyBackspace))
	require.Equal(t, tagedit.StateDeleteArmed, f.Editor().State())

	assert.False(t, f.HandleKey(keyOf(tea.KeyLeft)))
	assert.Equal(t, tagedit.StateIdle, f.Editor().State())
	assert.Equal(t, []string{"work"}, f.Tags())
}

func TestTagFieldClickRemove(t *testing.T) {
	f := newTestField(t)
	f.Editor().AddTag("work")
	f.Editor().AddTag("news")

	_, removes, _ := f.layout()
	require.Len(t, removes, 2)

	assert.True(t, f.HandleMouse(removes[0].start, 0))
	assert.Equal(t, []string{"news"}, f.Tags())
}

func TestTagFieldClickPillFocuses(t *testing.T) {
	f := newTestField(t)
	f.Editor().AddTag("work")
	f.Blur()
	require.False(t, f.Focused())

	pills, _, _ := f.layout()
	assert.True(t, f.HandleMouse(pills[0].start, 0))
	assert.True(t, f.Focused())
	assert.Equal(t, []string{"work"}, f.Tags())
}

func TestTagFieldClickSuggestion(t *testing.T) {
	f := newTestField(t)
	f.HandleKey(runes("o"))

	rows := f.Editor().Suggestions()
	require.Len(t, rows, 2)
	assert.Equal(t, 3, f.Height())

	assert.True(t, f.HandleMouse(0, 2))
	assert.Equal(t, []string{rows[1].Name}, f.Tags())
	assert.False(t, f.Editor().PopupVisible())
	assert.Equal(t, 1, f.Height())
}

func TestTagFieldClickPastSuggestions(t *testing.T) {
	f := newTestField(t)
	f.HandleKey(runes("work"))

	assert.False(t, f.HandleMouse(0, 5))
	assert.Empty(t, f.Tags())
}

func TestTagFieldView(t *testing.T) {
	f := newTestField(t)
	f.Editor().AddTag("work")
	f.HandleKey(runes("sh"))

	view := f.View()
	assert.Contains(t, view, "work")
	assert.Contains(t, view, "shopping")
	assert.Contains(t, view, removeGlyph)
	assert.Contains(t, view, cursorGlyph)
}

func TestTagFieldPlaceholder(t *testing.T) {
	f := newTestField(t)
	f.Blur()

	assert.Contains(t, f.View(), f.Placeholder)
}
