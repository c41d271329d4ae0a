package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "move", "toggle")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for the bottom bar:
// "j/k:move enter:toggle /:search".
func (a App) renderHints(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// renderHintsInline renders hints in inline format for modals:
// "Enter save  Esc cancel".
func (a App) renderHintsInline(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// getContextualHints returns the hints for the current mode and pane.
func (a App) getContextualHints() []Hint {
	switch a.mode {
	case ModeSearch:
		return []Hint{
			{Key: "type", Desc: "narrow"},
			{Key: "Enter", Desc: "keep"},
			{Key: "Esc", Desc: "clear"},
		}
	case ModeNormal:
		if a.pane == PaneScopes {
			return []Hint{
				{Key: "j/k", Desc: "move"},
				{Key: "enter", Desc: "toggle"},
				{Key: "A", Desc: "folder"},
				{Key: "c", Desc: "category"},
				{Key: "d", Desc: "del"},
				{Key: "r", Desc: "sync"},
				{Key: "?", Desc: "help"},
				{Key: "q", Desc: "quit"},
			}
		}
		return []Hint{
			{Key: "j/k", Desc: "move"},
			{Key: "/", Desc: "search"},
			{Key: "m", Desc: "folders"},
			{Key: "y", Desc: "yank"},
			{Key: "d", Desc: "del"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		}
	default:
		return nil
	}
}
