// ABOUTME: Tests for the tag editor state machine.
// ABOUTME: Covers normalization, dedup, two-stage delete and reset ordering.

package tagedit

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/harper/tempmail/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticCatalog(tags ...models.Tag) Catalog {
	return CatalogFunc(func(context.Context) ([]models.Tag, error) {
		return tags, nil
	})
}

func waitReset(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reset did not finish")
	}
}

func requireInvariant(t *testing.T, e *Editor) {
	t.Helper()
	if e.State() == StateDeleteArmed {
		require.Empty(t, e.Input(), "armed with non-empty input")
		require.NotEmpty(t, e.Tags(), "armed with no tags")
	}
}

// typeText feeds runes the way a terminal host does: key down first, then
// the text change unless the key was suppressed.
func typeText(e *Editor, s string) {
	for _, r := range s {
		k := KeyOther
		if r == ' ' {
			k = KeySpace
		}
		if !e.KeyDown(k) {
			e.SetInput(e.Input() + string(r))
		}
	}
}

func pressBackspace(e *Editor) {
	if e.KeyDown(KeyBackspace) {
		return
	}
	in := []rune(e.Input())
	if len(in) > 0 {
		e.SetInput(string(in[:len(in)-1]))
	}
}

func editorWithTags(tags ...string) *Editor {
	e := New("tag-input-create", nil)
	for _, tag := range tags {
		e.AddTag(tag)
	}
	return e
}

func TestNewEditorIsEmpty(t *testing.T) {
	e := New("tag-input-create", nil)

	assert.Equal(t, "tag-input-create", e.Name())
	assert.Empty(t, e.Tags())
	assert.Empty(t, e.Input())
	assert.Equal(t, StateIdle, e.State())
	assert.False(t, e.PopupVisible())
}

func TestAddTagNormalizes(t *testing.T) {
	e := New("t", nil)
	e.SetInput("  Work, ")
	e.AddTag("  Work, ")

	assert.Equal(t, []string{"work"}, e.Tags())
	assert.Empty(t, e.Input())
	assert.True(t, e.Focused())
}

func TestAddTagIgnoresEmpty(t *testing.T) {
	e := New("t", nil)
	e.SetInput(" , ")
	e.AddTag(" , ")

	assert.Empty(t, e.Tags())
	assert.Equal(t, " , ", e.Input(), "empty names leave the input alone")
}

func TestAddTagDedupClearsInput(t *testing.T) {
	e := editorWithTags("work")
	e.SetInput("WORK")
	e.AddTag("WORK")

	assert.Equal(t, []string{"work"}, e.Tags())
	assert.Empty(t, e.Input())
}

func TestAddTagIdempotent(t *testing.T) {
	once := editorWithTags("x")
	twice := editorWithTags("x", "x")
	assert.Equal(t, once.Tags(), twice.Tags())
}

func TestRemoveTagShiftsAndReAddAppends(t *testing.T) {
	e := editorWithTags("a", "b", "c")
	e.RemoveTag(0)
	assert.Equal(t, []string{"b", "c"}, e.Tags())

	e.AddTag("a")
	assert.Equal(t, []string{"b", "c", "a"}, e.Tags())
}

func TestRemoveTagOutOfRangePanics(t *testing.T) {
	e := editorWithTags("a")
	assert.Panics(t, func() { e.RemoveTag(1) })
	assert.Panics(t, func() { e.RemoveTag(-1) })
	assert.Equal(t, []string{"a"}, e.Tags())
}

func TestRemoveTagDisarms(t *testing.T) {
	e := editorWithTags("a", "b")
	e.KeyDown(KeyBackspace)
	require.Equal(t, StateDeleteArmed, e.State())

	e.RemoveTag(0)
	assert.Equal(t, StateIdle, e.State())
	assert.Equal(t, []string{"b"}, e.Tags())
}

func TestTagsReturnsSnapshot(t *testing.T) {
	e := editorWithTags("a")
	tags := e.Tags()
	tags[0] = "mutated"
	assert.Equal(t, []string{"a"}, e.Tags())
}

func TestBackspaceOnEmptyEditorDoesNothing(t *testing.T) {
	e := New("t", nil)
	suppressed := e.KeyDown(KeyBackspace)

	assert.False(t, suppressed)
	assert.Equal(t, StateIdle, e.State())
	assert.Empty(t, e.Tags())
}

func TestBackspaceArmsThenRemoves(t *testing.T) {
	e := editorWithTags("a", "b")

	require.True(t, e.KeyDown(KeyBackspace))
	assert.Equal(t, StateDeleteArmed, e.State())
	assert.Equal(t, []string{"a", "b"}, e.Tags())
	pills := e.Pills()
	require.Len(t, pills, 2)
	assert.False(t, pills[0].Marked)
	assert.True(t, pills[1].Marked)

	require.True(t, e.KeyDown(KeyBackspace))
	assert.Equal(t, StateIdle, e.State())
	assert.Equal(t, []string{"a"}, e.Tags())
	for _, p := range e.Pills() {
		assert.False(t, p.Marked)
	}
}

func TestTypingCancelsArmedDelete(t *testing.T) {
	e := editorWithTags("a", "b")
	e.KeyDown(KeyBackspace)
	require.Equal(t, StateDeleteArmed, e.State())

	typeText(e, "x")

	assert.Equal(t, StateIdle, e.State())
	assert.Equal(t, []string{"a", "b"}, e.Tags())
	assert.Equal(t, "x", e.Input())
}

func TestBackspaceWithTextEditsText(t *testing.T) {
	e := editorWithTags("a")
	typeText(e, "xy")
	pressBackspace(e)

	assert.Equal(t, "x", e.Input())
	assert.Equal(t, StateIdle, e.State())
	assert.Equal(t, []string{"a"}, e.Tags())
}

func TestCommitKeys(t *testing.T) {
	for _, k := range []Key{KeyEnter, KeyTab, KeySpace} {
		t.Run(k.String(), func(t *testing.T) {
			e := New("t", nil)
			e.SetInput("Work, ")
			assert.True(t, e.KeyDown(k))
			assert.Equal(t, []string{"work"}, e.Tags())
			assert.Empty(t, e.Input())
		})
	}
}

func TestCommitKeysWithEmptyInput(t *testing.T) {
	tests := []struct {
		key        Key
		suppressed bool
	}{
		{KeyEnter, false},
		{KeyTab, false},
		{KeySpace, true},
	}

	for _, tt := range tests {
		e := New("t", nil)
		e.SetInput("   ")
		got := e.KeyDown(tt.key)
		if got != tt.suppressed {
			t.Errorf("KeyDown(%s) suppressed = %v, want %v", tt.key, got, tt.suppressed)
		}
		if len(e.Tags()) != 0 {
			t.Errorf("KeyDown(%s) added %v", tt.key, e.Tags())
		}
	}
}

func TestTypeThenEnter(t *testing.T) {
	e := New("t", nil)
	typeText(e, "Work,")
	e.SetInput(e.Input() + " ")
	e.KeyDown(KeyEnter)

	assert.Equal(t, []string{"work"}, e.Tags())
	assert.Empty(t, e.Input())
}

func TestSpaceCommitsWhileTyping(t *testing.T) {
	e := New("t", nil)
	typeText(e, "side project")
	assert.Equal(t, []string{"side"}, e.Tags())
	assert.Equal(t, "project", e.Input())
}

func TestSetInputDisarms(t *testing.T) {
	e := editorWithTags("a")
	e.KeyDown(KeyBackspace)
	e.SetInput("pasted")

	assert.Equal(t, StateIdle, e.State())
	requireInvariant(t, e)
}

func TestBlurDisarmsAndCommits(t *testing.T) {
	e := editorWithTags("a")
	e.Focus()
	e.KeyDown(KeyBackspace)
	e.Blur()
	assert.Equal(t, StateIdle, e.State())
	assert.False(t, e.Focused())

	e.Focus()
	e.SetInput(" Travel ")
	e.Blur()
	assert.Equal(t, []string{"a", "travel"}, e.Tags())
	assert.Empty(t, e.Input())
	assert.False(t, e.Focused())
	assert.False(t, e.PopupVisible())
}

func TestOutsidePointerDown(t *testing.T) {
	e := New("t", staticCatalog(models.Tag{Name: "work"}))
	waitReset(t, e.Reset(context.Background()))
	e.AddTag("home")
	e.KeyDown(KeyBackspace)
	e.SetInput("")
	require.Equal(t, StateDeleteArmed, e.State())

	e.PointerDownOutside()
	assert.Equal(t, StateIdle, e.State())

	e.SetInput("wo")
	require.True(t, e.PopupVisible())
	e.PointerDownOutside()
	assert.False(t, e.PopupVisible())
	assert.Equal(t, "wo", e.Input())
}

func TestResetClearsState(t *testing.T) {
	e := New("t", staticCatalog(models.Tag{Name: "work", Color: "#fff"}))
	e.AddTag("a")
	e.KeyDown(KeyBackspace)
	e.SetInput("")

	waitReset(t, e.Reset(context.Background()))

	assert.Empty(t, e.Tags())
	assert.Empty(t, e.Input())
	assert.Equal(t, StateIdle, e.State())
	assert.Equal(t, []models.Tag{{Name: "work", Color: "#fff"}}, e.Catalog())
}

func TestResetSwallowsCatalogErrors(t *testing.T) {
	e := New("t", CatalogFunc(func(context.Context) ([]models.Tag, error) {
		return nil, errors.New("connection refused")
	}))
	waitReset(t, e.Reset(context.Background()))

	assert.Empty(t, e.Catalog())
	e.SetInput("wo")
	assert.False(t, e.PopupVisible())
	assert.Empty(t, e.Suggestions())
}

type fetchLabel struct{}

func TestResetLastResetWins(t *testing.T) {
	release := make(chan struct{})
	e := New("t", CatalogFunc(func(ctx context.Context) ([]models.Tag, error) {
		if ctx.Value(fetchLabel{}) == "stale" {
			<-release
			return []models.Tag{{Name: "stale"}}, nil
		}
		return []models.Tag{{Name: "fresh"}}, nil
	}))

	first := e.Reset(context.WithValue(context.Background(), fetchLabel{}, "stale"))
	second := e.Reset(context.WithValue(context.Background(), fetchLabel{}, "fresh"))
	waitReset(t, second)
	assert.Equal(t, []models.Tag{{Name: "fresh"}}, e.Catalog())

	close(release)
	waitReset(t, first)
	assert.Equal(t, []models.Tag{{Name: "fresh"}}, e.Catalog())
}

func TestInvariantUnderRandomEvents(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	e := New("t", staticCatalog(models.Tag{Name: "work"}, models.Tag{Name: "home"}))
	waitReset(t, e.Reset(context.Background()))

	keys := []Key{KeyOther, KeyEnter, KeyTab, KeySpace, KeyBackspace}
	for i := 0; i < 2000; i++ {
		switch rng.Intn(8) {
		case 0, 1:
			typeText(e, string(rune('a'+rng.Intn(4))))
		case 2, 3:
			pressBackspace(e)
		case 4:
			e.KeyDown(keys[rng.Intn(len(keys))])
		case 5:
			e.Blur()
			e.Focus()
		case 6:
			selectSuggestion(e, rng.Intn(2))
		case 7:
			if n := len(e.Tags()); n > 0 {
				e.RemoveTag(rng.Intn(n))
			}
		}
		requireInvariant(t, e)
	}
}
