package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/skmtko/marq/internal/tui/layout"
)

// renderView creates the two-pane view: scope sidebar and post list.
func (a App) renderView() string {
	switch a.mode {
	case ModeAddFolder, ModeAddCategory:
		return a.renderFormModal()
	case ModeAssign:
		return a.renderAssignModal()
	case ModeHelp:
		return a.renderHelpOverlay()
	}

	paneHeight := layout.CalculatePaneHeight(a.height, a.layoutConfig.Pane)
	listWidth := layout.CalculateListWidth(a.width, a.layoutConfig.Pane)

	scopePane := a.renderScopePane(a.layoutConfig.Pane.ScopeWidth, paneHeight)
	listPane := a.renderListPane(listWidth, paneHeight)

	columns := lipgloss.JoinHorizontal(lipgloss.Top, scopePane, listPane)

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			a.renderTopLine(),
			columns,
			a.renderStatusLine(),
			a.renderHelpBar(),
		),
	)

	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderTopLine shows the app name and the active search query, or the
// live search input while typing.
func (a App) renderTopLine() string {
	title := a.styles.Title.Render("marq")
	if a.mode == ModeSearch {
		return title + "  " + a.search.Input.View()
	}
	if q := a.store.Selection.Search; q != "" {
		return title + "  " + a.styles.Meta.Render(fmt.Sprintf("search: %q", q))
	}
	return title
}

// renderScopePane renders folders and filters with the active scope
// highlighted.
func (a App) renderScopePane(width, height int) string {
	var content strings.Builder
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)

	content.WriteString(a.styles.Title.Render("Scopes") + "\n")

	if len(a.scopeItems) == 0 {
		content.WriteString(a.styles.Empty.Render("(no folders or filters)"))
	}

	lastKind := ScopeFolder
	for i, item := range a.scopeItems {
		if i == 0 || item.Kind != lastKind {
			if item.IsFolder() {
				content.WriteString(a.styles.Meta.Render("── Folders ──") + "\n")
			} else {
				content.WriteString(a.styles.Meta.Render("── Filters ──") + "\n")
			}
		}
		lastKind = item.Kind

		label, _ := layout.TruncateText(item.Title(), itemWidth, a.layoutConfig.Text)
		if a.isActiveScope(item) {
			label = "* " + label
		}

		style := a.styles.Item
		if i == a.scopeCursor && a.pane == PaneScopes {
			style = a.styles.ItemSelected
		} else if a.isActiveScope(item) {
			style = a.styles.ScopeActive
		}
		content.WriteString(style.Render(label) + "\n")
	}

	paneStyle := a.styles.Pane
	if a.pane == PaneScopes {
		paneStyle = a.styles.PaneActive
	}
	return paneStyle.Width(width).Height(height).Render(content.String())
}

// isActiveScope reports whether the item is the current selection.
func (a App) isActiveScope(item ScopeItem) bool {
	sel := a.store.Selection
	if item.IsFolder() {
		return sel.Folder != nil && *sel.Folder == item.ID()
	}
	return sel.Filter != nil && *sel.Filter == item.ID()
}

// renderListPane renders either the remote result set or the local
// engine output, whichever the display precedence picks.
func (a App) renderListPane(width, height int) string {
	var content strings.Builder
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)

	if a.remoteActive() {
		content.WriteString(a.styles.Remote.Render(fmt.Sprintf("Remote (%d)", len(a.remoteBookmarks))) + "\n")
		for i, b := range a.remoteBookmarks {
			a.writeListRow(&content, i, itemWidth,
				"@"+b.Tweet.ScreenName,
				b.Tweet.Text(),
				b.Category,
			)
		}
	} else {
		content.WriteString(a.styles.Title.Render(fmt.Sprintf("Posts (%d)", len(a.visible))) + "\n")
		if len(a.visible) == 0 {
			content.WriteString(a.styles.Empty.Render("(nothing matches)"))
		}
		for i, b := range a.visible {
			meta := fmt.Sprintf("%d likes", b.Likes)
			if b.IsVerified {
				meta += " · verified"
			}
			a.writeListRow(&content, i, itemWidth, b.Handle, b.Content, meta)
		}
	}

	paneStyle := a.styles.Pane
	if a.pane == PaneList {
		paneStyle = a.styles.PaneActive
	}
	return paneStyle.Width(width).Height(height).Render(content.String())
}

// writeListRow renders one two-line post row.
func (a App) writeListRow(content *strings.Builder, i, itemWidth int, handle, text, meta string) {
	line, _ := layout.TruncateText(layout.FirstLine(text), itemWidth, a.layoutConfig.Text)

	style := a.styles.Item
	if i == a.listCursor && a.pane == PaneList {
		style = a.styles.ItemSelected
	}
	content.WriteString(style.Render(line) + "\n")
	content.WriteString("  " + a.styles.Handle.Render(handle) + " " + a.styles.Meta.Render(meta) + "\n")
}

// renderStatusLine shows the last status or error message.
func (a App) renderStatusLine() string {
	if a.status == "" {
		return ""
	}
	if a.statusErr {
		return a.styles.Error.Render(a.status)
	}
	return a.styles.Status.Render(a.status)
}

// renderHelpBar renders contextual hints at the bottom.
func (a App) renderHelpBar() string {
	return a.styles.Help.Render(a.renderHints(a.getContextualHints()))
}

// renderFormModal renders the add-folder / add-category name prompt.
func (a App) renderFormModal() string {
	title := "New folder"
	if a.mode == ModeAddCategory {
		title = "New category"
	}

	var content strings.Builder
	content.WriteString(a.styles.Title.Render(title) + "\n\n")
	content.WriteString(a.form.NameInput.View() + "\n\n")
	content.WriteString(a.renderHintsInline([]Hint{
		{Key: "Enter", Desc: "save"},
		{Key: "Esc", Desc: "cancel"},
	}))

	modal := a.styles.PaneActive.Render(content.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
}

// renderAssignModal renders the folder-membership toggles for the
// selected post.
func (a App) renderAssignModal() string {
	bookmark := a.store.GetBookmarkByID(a.assign.BookmarkID)

	var content strings.Builder
	content.WriteString(a.styles.Title.Render("Folders") + "\n\n")

	for i, folder := range a.store.Folders {
		mark := "[ ]"
		if bookmark != nil && bookmark.InFolder(folder.ID) {
			mark = "[x]"
		}
		style := a.styles.Item
		if i == a.assign.Cursor {
			style = a.styles.ItemSelected
		}
		content.WriteString(style.Render(mark+" "+folder.Name) + "\n")
	}

	content.WriteString("\n")
	content.WriteString(a.renderHintsInline([]Hint{
		{Key: "j/k", Desc: "move"},
		{Key: "Enter", Desc: "toggle"},
		{Key: "Esc", Desc: "close"},
	}))

	modal := a.styles.PaneActive.Render(content.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
}

// renderHelpOverlay renders the full keybinding reference.
func (a App) renderHelpOverlay() string {
	rows := []Hint{
		{Key: "j/k", Desc: "move up/down"},
		{Key: "h/l", Desc: "switch pane"},
		{Key: "gg/G", Desc: "jump to top/bottom"},
		{Key: "enter", Desc: "toggle folder/filter scope"},
		{Key: "/", Desc: "search posts"},
		{Key: "m", Desc: "edit folder memberships"},
		{Key: "A", Desc: "add folder"},
		{Key: "c", Desc: "add category"},
		{Key: "d", Desc: "delete post/folder"},
		{Key: "y", Desc: "copy post text"},
		{Key: "r", Desc: "sync categories"},
		{Key: "q", Desc: "quit"},
	}

	var content strings.Builder
	content.WriteString(a.styles.Title.Render("marq keys") + "\n\n")
	for _, h := range rows {
		content.WriteString(fmt.Sprintf("  %-8s %s\n",
			a.styles.HintKey.Render(h.Key), a.styles.HintDesc.Render(h.Desc)))
	}
	content.WriteString("\n" + a.styles.Meta.Render("press any key to close"))

	modal := a.styles.PaneActive.Render(content.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
}
