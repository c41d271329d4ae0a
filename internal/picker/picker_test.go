package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skmtko/marq/internal/engine"
	"github.com/skmtko/marq/internal/model"
)

func twoResults() []engine.MatchResult {
	return []engine.MatchResult{
		{Bookmark: &model.Bookmark{ID: "1", Handle: "@golang", Content: "Go 1.25 is out"}},
		{Bookmark: &model.Bookmark{ID: "2", Handle: "@mikatnk", Content: "Terminal UI thread"}},
	}
}

func TestPicker_InitialState(t *testing.T) {
	p := New(twoResults(), "go")

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}
	if len(p.results) != 2 {
		t.Errorf("expected 2 results, got %d", len(p.results))
	}
}

func TestPicker_NavigateDown(t *testing.T) {
	p := New(twoResults(), "go")
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}

	newModel, _ := p.Update(msg)
	p = newModel.(Picker)

	if p.cursor != 1 {
		t.Errorf("expected cursor at 1, got %d", p.cursor)
	}
}

func TestPicker_NavigateUp(t *testing.T) {
	p := New(twoResults(), "go")
	p.cursor = 1

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	newModel, _ := p.Update(msg)
	p = newModel.(Picker)

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}
}

func TestPicker_BoundsCheck(t *testing.T) {
	p := New(twoResults()[:1], "go")

	// Up from 0 stays at 0
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	newModel, _ := p.Update(msg)
	p = newModel.(Picker)

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}

	// Down from the last item stays put
	msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	newModel, _ = p.Update(msg)
	p = newModel.(Picker)

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0 (only 1 item), got %d", p.cursor)
	}
}

func TestPicker_SelectItem(t *testing.T) {
	p := New(twoResults(), "go")
	p.cursor = 1

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	newModel, cmd := p.Update(msg)
	p = newModel.(Picker)

	if !p.selected {
		t.Error("expected selected to be true after Enter")
	}
	if cmd == nil {
		t.Error("expected quit command after selection")
	}
	if got := p.SelectedBookmark(); got == nil || got.ID != "2" {
		t.Errorf("SelectedBookmark() = %v, want bookmark 2", got)
	}
}

func TestPicker_Cancel(t *testing.T) {
	p := New(twoResults(), "go")

	msg := tea.KeyMsg{Type: tea.KeyEsc}
	newModel, cmd := p.Update(msg)
	p = newModel.(Picker)

	if !p.cancelled {
		t.Error("expected cancelled to be true after Esc")
	}
	if cmd == nil {
		t.Error("expected quit command after cancel")
	}
	if p.SelectedBookmark() != nil {
		t.Error("expected nil selection when cancelled")
	}
}

func TestPicker_ArrowKeys(t *testing.T) {
	p := New(twoResults(), "go")

	msg := tea.KeyMsg{Type: tea.KeyDown}
	newModel, _ := p.Update(msg)
	p = newModel.(Picker)
	if p.cursor != 1 {
		t.Errorf("expected cursor at 1 after down arrow, got %d", p.cursor)
	}

	msg = tea.KeyMsg{Type: tea.KeyUp}
	newModel, _ = p.Update(msg)
	p = newModel.(Picker)
	if p.cursor != 0 {
		t.Errorf("expected cursor at 0 after up arrow, got %d", p.cursor)
	}
}

func TestPicker_ViewShowsFirstLineOnly(t *testing.T) {
	results := []engine.MatchResult{
		{Bookmark: &model.Bookmark{ID: "1", Handle: "@golang", Content: "first line\nsecond line"}},
	}
	p := New(results, "line")

	view := p.View()
	if !strings.Contains(view, "first line") {
		t.Error("view should contain the first content line")
	}
	if strings.Contains(view, "second line") {
		t.Error("view should not contain later content lines")
	}
}
