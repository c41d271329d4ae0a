package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skmtko/marq/internal/model"
	"github.com/skmtko/marq/internal/tui"
)

func pressRune(t *testing.T, app tui.App, r rune) tui.App {
	t.Helper()
	updated, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return updated.(tui.App)
}

func pressKey(t *testing.T, app tui.App, kt tea.KeyType) tui.App {
	t.Helper()
	updated, _ := app.Update(tea.KeyMsg{Type: kt})
	return updated.(tui.App)
}

func testStore() *model.Store {
	store := model.NewStore()
	store.Folders = []model.Folder{
		{ID: "f1", Name: "Favorites"},
		{ID: "f2", Name: "Read Later"},
	}
	store.Filters = []model.Filter{
		{ID: "1", Name: "Media"},
		{ID: "2", Name: "Verified"},
	}
	store.Bookmarks = []model.Bookmark{
		{ID: "b1", Username: "golang", Handle: "@golang", Content: "Go 1.25 https://go.dev", Folders: []string{"f1"}, IsVerified: true},
		{ID: "b2", Username: "mikatnk", Handle: "@mikatnk", Content: "terminal thread", Images: []string{"img.png"}, Folders: []string{}},
	}
	return store
}

func TestApp_Navigation_JK(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Store: testStore()})

	if app.ScopeCursor() != 0 {
		t.Errorf("expected initial scope cursor 0, got %d", app.ScopeCursor())
	}

	app = pressRune(t, app, 'j')
	if app.ScopeCursor() != 1 {
		t.Errorf("after j, expected scope cursor 1, got %d", app.ScopeCursor())
	}

	app = pressRune(t, app, 'k')
	if app.ScopeCursor() != 0 {
		t.Errorf("after k, expected scope cursor 0, got %d", app.ScopeCursor())
	}

	// k at top should stay at 0 (no wrap)
	app = pressRune(t, app, 'k')
	if app.ScopeCursor() != 0 {
		t.Errorf("k at top should stay at 0, got %d", app.ScopeCursor())
	}
}

func TestApp_Navigation_GG_G(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Store: testStore()})

	app = pressRune(t, app, 'G')
	if app.ScopeCursor() != 3 {
		t.Errorf("G should go to last scope item (3), got %d", app.ScopeCursor())
	}

	app = pressRune(t, app, 'g')
	app = pressRune(t, app, 'g')
	if app.ScopeCursor() != 0 {
		t.Errorf("gg should go to first item (0), got %d", app.ScopeCursor())
	}
}

func TestApp_Navigation_G_SingleG(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Store: testStore()})

	app = pressRune(t, app, 'j')
	// Single g followed by a different key cancels the gg sequence
	app = pressRune(t, app, 'g')
	app = pressRune(t, app, 'j')

	if app.ScopeCursor() != 2 {
		t.Errorf("single g followed by j should cancel gg, cursor at %d", app.ScopeCursor())
	}
}

func TestApp_Navigation_HL_SwitchesPanes(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Store: testStore()})

	if app.FocusedPane() != tui.PaneScopes {
		t.Error("expected to start in the scope pane")
	}

	app = pressRune(t, app, 'l')
	if app.FocusedPane() != tui.PaneList {
		t.Error("l should focus the list pane")
	}

	app = pressRune(t, app, 'h')
	if app.FocusedPane() != tui.PaneScopes {
		t.Error("h should focus the scope pane")
	}
}

func TestApp_ScopeItems_FoldersFirst(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Store: testStore()})

	items := app.ScopeItems()
	if len(items) != 4 {
		t.Fatalf("expected 4 scope items, got %d", len(items))
	}
	if !items[0].IsFolder() || !items[1].IsFolder() {
		t.Error("folders should come first")
	}
	if items[2].IsFolder() || items[3].IsFolder() {
		t.Error("filters should come after folders")
	}
}

func TestApp_ToggleScope_FolderThenFilter(t *testing.T) {
	store := testStore()
	app := tui.NewApp(tui.AppParams{Store: store})

	// Select the first folder
	app = pressKey(t, app, tea.KeyEnter)
	if store.Selection.Folder == nil || *store.Selection.Folder != "f1" {
		t.Fatal("expected folder f1 selected")
	}

	// Move to a filter and select it; the folder must be cleared
	app = pressRune(t, app, 'G')
	app = pressKey(t, app, tea.KeyEnter)
	if store.Selection.Filter == nil || *store.Selection.Filter != "2" {
		t.Fatal("expected filter 2 selected")
	}
	if store.Selection.Folder != nil {
		t.Error("selecting a filter must clear the folder")
	}

	// Toggling the active filter clears it
	app = pressKey(t, app, tea.KeyEnter)
	if store.Selection.Filter != nil {
		t.Error("toggling the active filter should clear it")
	}
	_ = app
}

func TestApp_ToggleScope_FolderNarrowsList(t *testing.T) {
	store := testStore()
	app := tui.NewApp(tui.AppParams{Store: store})

	if len(app.VisibleBookmarks()) != 2 {
		t.Fatalf("expected all posts visible initially, got %d", len(app.VisibleBookmarks()))
	}

	app = pressKey(t, app, tea.KeyEnter) // select folder f1

	visible := app.VisibleBookmarks()
	if len(visible) != 1 || visible[0].ID != "b1" {
		t.Errorf("folder scope should narrow to b1, got %v", visible)
	}
}

func TestApp_Search_NarrowsWithinScope(t *testing.T) {
	store := testStore()
	app := tui.NewApp(tui.AppParams{Store: store})

	// Scope to the Verified filter (only b1 passes)
	app = pressRune(t, app, 'G')
	app = pressKey(t, app, tea.KeyEnter)

	// Search for text that only matches b2
	app = pressRune(t, app, '/')
	if app.Mode() != tui.ModeSearch {
		t.Fatal("expected search mode after /")
	}
	for _, r := range "terminal" {
		app = pressRune(t, app, r)
	}

	if store.Selection.Search != "terminal" {
		t.Fatalf("search query = %q", store.Selection.Search)
	}
	// Conjunctive: nothing is both Verified and matching "terminal"
	if len(app.VisibleBookmarks()) != 0 {
		t.Errorf("expected empty result within scope, got %d", len(app.VisibleBookmarks()))
	}

	// Esc clears the query and restores the scoped list
	app = pressKey(t, app, tea.KeyEsc)
	if store.Selection.Search != "" {
		t.Error("esc should clear the search query")
	}
	if len(app.VisibleBookmarks()) != 1 {
		t.Errorf("expected scoped list restored, got %d", len(app.VisibleBookmarks()))
	}
}

func TestApp_AddFolder_Submit(t *testing.T) {
	store := model.NewStore()
	app := tui.NewApp(tui.AppParams{Store: store})

	app = pressRune(t, app, 'A')
	if app.Mode() != tui.ModeAddFolder {
		t.Fatal("expected add folder mode after A")
	}

	for _, r := range "My Folder" {
		app = pressRune(t, app, r)
	}
	app = pressKey(t, app, tea.KeyEnter)

	if app.Mode() != tui.ModeNormal {
		t.Errorf("expected normal mode after submit, got %d", app.Mode())
	}
	if len(store.Folders) != 1 || store.Folders[0].Name != "My Folder" {
		t.Errorf("expected folder added, got %v", store.Folders)
	}
}

func TestApp_AddFolder_Cancel(t *testing.T) {
	store := model.NewStore()
	app := tui.NewApp(tui.AppParams{Store: store})

	app = pressRune(t, app, 'A')
	app = pressKey(t, app, tea.KeyEsc)

	if app.Mode() != tui.ModeNormal {
		t.Error("expected normal mode after Esc")
	}
	if len(store.Folders) != 0 {
		t.Error("no folder should be added after cancel")
	}
}

func TestApp_AddFolder_EmptyName(t *testing.T) {
	store := model.NewStore()
	app := tui.NewApp(tui.AppParams{Store: store})

	app = pressRune(t, app, 'A')
	app = pressKey(t, app, tea.KeyEnter)

	if len(store.Folders) != 0 {
		t.Error("no folder should be added with an empty name")
	}
}

func TestApp_DeleteFolder_ResetsSelection(t *testing.T) {
	store := testStore()
	app := tui.NewApp(tui.AppParams{Store: store})

	app = pressKey(t, app, tea.KeyEnter) // select f1
	app = pressRune(t, app, 'd')         // delete f1

	if len(store.Folders) != 1 || store.Folders[0].ID != "f2" {
		t.Fatalf("expected f1 removed, folders = %v", store.Folders)
	}
	if store.Selection.Folder != nil {
		t.Error("deleting the active folder should reset the selection")
	}
	if store.Bookmarks[0].InFolder("f1") {
		t.Error("folder id should be stripped from bookmarks")
	}
	_ = app
}

func TestApp_DeleteLocalPost(t *testing.T) {
	store := testStore()
	app := tui.NewApp(tui.AppParams{Store: store})

	app = pressRune(t, app, 'l') // focus list
	app = pressRune(t, app, 'd')

	if len(store.Bookmarks) != 1 || store.Bookmarks[0].ID != "b2" {
		t.Errorf("expected b1 removed, got %v", store.Bookmarks)
	}
	_ = app
}

func TestApp_AssignToggle(t *testing.T) {
	store := testStore()
	app := tui.NewApp(tui.AppParams{Store: store})

	app = pressRune(t, app, 'l') // focus list, cursor on b1
	app = pressRune(t, app, 'j') // cursor on b2
	app = pressRune(t, app, 'm')
	if app.Mode() != tui.ModeAssign {
		t.Fatal("expected assign mode after m")
	}

	// Toggle b2 into f1
	app = pressKey(t, app, tea.KeyEnter)
	if !store.GetBookmarkByID("b2").InFolder("f1") {
		t.Error("expected b2 added to f1")
	}

	// Toggle again removes it
	app = pressKey(t, app, tea.KeyEnter)
	if store.GetBookmarkByID("b2").InFolder("f1") {
		t.Error("expected b2 removed from f1")
	}

	app = pressKey(t, app, tea.KeyEsc)
	if app.Mode() != tui.ModeNormal {
		t.Error("expected normal mode after Esc")
	}
}

func TestApp_EmptyStore(t *testing.T) {
	app := tui.NewApp(tui.AppParams{Store: model.NewStore()})

	app = pressRune(t, app, 'j')
	app = pressRune(t, app, 'G')
	app = pressKey(t, app, tea.KeyEnter)

	if app.ScopeCursor() != 0 {
		t.Errorf("cursor should stay at 0 for empty store, got %d", app.ScopeCursor())
	}
}
