package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/skmtko/marq/internal/tui/layout"
)

// Mode is the current input mode of the app.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeAddFolder
	ModeAddCategory
	ModeAssign
	ModeHelp
)

// Pane identifies which pane has focus in normal mode.
type Pane int

const (
	PaneScopes Pane = iota
	PaneList
)

// SearchState holds the live search input. The query is pushed into
// the store's selection on every keystroke so the list narrows as the
// user types.
type SearchState struct {
	Input textinput.Model
}

// NewSearchState creates a new SearchState with initialized input.
func NewSearchState(cfg layout.LayoutConfig) SearchState {
	input := textinput.New()
	input.Placeholder = "Search posts..."
	input.CharLimit = cfg.Input.SearchCharLimit
	input.Width = cfg.Input.StandardWidth
	return SearchState{Input: input}
}

// Reset clears the search input.
func (s *SearchState) Reset() {
	s.Input.Reset()
}

// FormState holds the single-field name form shared by the add-folder
// and add-category modals.
type FormState struct {
	NameInput textinput.Model
}

// NewFormState creates a new FormState with initialized input.
func NewFormState(cfg layout.LayoutConfig) FormState {
	input := textinput.New()
	input.Placeholder = "Name"
	input.CharLimit = cfg.Input.NameCharLimit
	input.Width = cfg.Input.StandardWidth
	return FormState{NameInput: input}
}

// Reset clears the form for a new session.
func (f *FormState) Reset() {
	f.NameInput.Reset()
}

// AssignState holds state for the folder-assignment overlay, where the
// user toggles the selected post's folder memberships.
type AssignState struct {
	BookmarkID string // post being assigned
	Cursor     int    // index into store.Folders
}

// Reset clears the assignment state.
func (a *AssignState) Reset() {
	a.BookmarkID = ""
	a.Cursor = 0
}
