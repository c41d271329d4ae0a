// Package tui is the interactive terminal frontend. It owns the store
// for the lifetime of the program, persists a snapshot after every
// mutation, and overlays the category-scoped remote dataset on top of
// the local collection.
package tui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/skmtko/marq/internal/api"
	"github.com/skmtko/marq/internal/engine"
	"github.com/skmtko/marq/internal/model"
	"github.com/skmtko/marq/internal/storage"
	"github.com/skmtko/marq/internal/tui/layout"
)

// Remote is the subset of the sync coordinator the app uses. Nil
// disables all network features. The methods only talk to the server;
// applying their results to the store happens in Update, on the event
// thread, so command goroutines never touch shared state.
type Remote interface {
	FetchCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, name string) (model.Category, error)
	BookmarksByFilter(ctx context.Context, filterID *string) ([]api.Bookmark, error)
}

// remoteBookmarksMsg carries the result of a category-scoped fetch.
// The generation token closes the stale-response race: a response
// whose gen no longer matches the app's counter is discarded.
type remoteBookmarksMsg struct {
	gen       int
	bookmarks []api.Bookmark
	err       error
}

// categoriesSyncedMsg carries the fetched category list; Update applies
// it to the store.
type categoriesSyncedMsg struct {
	categories []model.Category
	err        error
}

// categoryAddedMsg carries a server-created category; Update appends it.
type categoryAddedMsg struct {
	category model.Category
	err      error
}

// snapshotSavedMsg reports a fire-and-forget snapshot write.
type snapshotSavedMsg struct {
	err error
}

// App is the main bubbletea model.
type App struct {
	store  *model.Store
	saver  storage.Storage // nil disables persistence
	remote Remote          // nil disables network features

	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig

	mode Mode
	pane Pane

	// Scope sidebar
	scopeItems  []ScopeItem
	scopeCursor int

	// Local list, recomputed from the store after every mutation
	visible    []model.Bookmark
	listCursor int

	// Remote dataset; non-empty wins over the local list
	remoteBookmarks []api.Bookmark
	fetchGen        int

	search SearchState
	form   FormState
	assign AssignState

	status    string
	statusErr bool

	lastKeyWasG bool

	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Store  *model.Store
	Saver  storage.Storage
	Remote Remote
	Keys   *KeyMap // optional, uses default if nil
	Styles *Styles // optional, uses default if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	cfg := layout.DefaultLayoutConfig()

	app := App{
		store:        params.Store,
		saver:        params.Saver,
		remote:       params.Remote,
		keys:         keys,
		styles:       styles,
		layoutConfig: cfg,
		search:       NewSearchState(cfg),
		form:         NewFormState(cfg),
		width:        80,
		height:       24,
	}

	app.search.Input.SetValue(params.Store.Selection.Search)
	app.refresh()
	return app
}

// refresh rebuilds the scope sidebar and the visible local subset from
// the store.
func (a *App) refresh() {
	a.scopeItems = make([]ScopeItem, 0, len(a.store.Folders)+len(a.store.Filters))
	for i := range a.store.Folders {
		a.scopeItems = append(a.scopeItems, ScopeItem{Kind: ScopeFolder, Folder: &a.store.Folders[i]})
	}
	for i := range a.store.Filters {
		a.scopeItems = append(a.scopeItems, ScopeItem{Kind: ScopeFilter, Filter: &a.store.Filters[i]})
	}
	if a.scopeCursor >= len(a.scopeItems) {
		a.scopeCursor = max(0, len(a.scopeItems)-1)
	}

	a.visible = engine.Visible(a.store.Bookmarks, a.store.Selection, a.store.Filters)
	if a.listCursor >= a.listLen() {
		a.listCursor = max(0, a.listLen()-1)
	}
}

// remoteActive reports whether the remote dataset is being displayed.
// A non-empty remote result set takes precedence over the local list.
func (a App) remoteActive() bool {
	return len(a.remoteBookmarks) > 0
}

// listLen is the number of rows in the list pane under the active
// display precedence.
func (a App) listLen() int {
	if a.remoteActive() {
		return len(a.remoteBookmarks)
	}
	return len(a.visible)
}

// Store returns the underlying store, for the final save on exit.
func (a App) Store() *model.Store {
	return a.store
}

// VisibleBookmarks returns the current local engine output.
func (a App) VisibleBookmarks() []model.Bookmark {
	return a.visible
}

// RemoteBookmarks returns the remote result set currently held.
func (a App) RemoteBookmarks() []api.Bookmark {
	return a.remoteBookmarks
}

// RemoteActive reports whether the list pane shows remote results.
func (a App) RemoteActive() bool {
	return a.remoteActive()
}

// Cursor returns the list cursor position.
func (a App) Cursor() int {
	return a.listCursor
}

// ScopeCursor returns the sidebar cursor position.
func (a App) ScopeCursor() int {
	return a.scopeCursor
}

// ScopeItems returns the sidebar rows, folders first.
func (a App) ScopeItems() []ScopeItem {
	return a.scopeItems
}

// Mode returns the current input mode.
func (a App) Mode() Mode {
	return a.mode
}

// FocusedPane returns the pane that currently has focus.
func (a App) FocusedPane() Pane {
	return a.pane
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.remote == nil {
		return nil
	}
	// Pull the category taxonomy once at startup.
	return a.syncCategoriesCmd()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case remoteBookmarksMsg:
		if msg.gen != a.fetchGen {
			// Superseded by a later request; drop it.
			return a, nil
		}
		if msg.err != nil {
			// Reads retain prior state; just surface the failure.
			a.setError(fmt.Sprintf("fetch failed: %v", msg.err))
			return a, nil
		}
		a.remoteBookmarks = msg.bookmarks
		a.listCursor = 0
		if len(msg.bookmarks) == 0 {
			a.setStatus("no remote posts, showing local")
		} else {
			a.setStatus(fmt.Sprintf("%d remote posts", len(msg.bookmarks)))
		}
		return a, nil

	case categoriesSyncedMsg:
		if msg.err != nil {
			a.setError(fmt.Sprintf("sync failed: %v", msg.err))
			return a, nil
		}
		a.store.ReplaceCategories(msg.categories)
		a.refresh()
		a.setStatus(fmt.Sprintf("synced %d categories", len(a.store.Categories)))
		return a, a.persistCmd()

	case categoryAddedMsg:
		if msg.err != nil {
			a.setError(fmt.Sprintf("add category failed: %v", msg.err))
			return a, nil
		}
		filter := a.store.AppendCategory(msg.category)
		a.refresh()
		a.setStatus(fmt.Sprintf("added category %q", filter.Name))
		return a, a.persistCmd()

	case snapshotSavedMsg:
		if msg.err != nil {
			a.setError(fmt.Sprintf("save failed: %v", msg.err))
		}
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case ModeSearch:
			return a.updateSearch(msg)
		case ModeAddFolder, ModeAddCategory:
			return a.updateForm(msg)
		case ModeAssign:
			return a.updateAssign(msg)
		case ModeHelp:
			a.mode = ModeNormal
			return a, nil
		}
		return a.updateNormal(msg)
	}

	return a, nil
}

// updateNormal handles keys in browse mode.
func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.setCursor(0)
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		a.moveCursor(1)

	case key.Matches(msg, a.keys.Up):
		a.moveCursor(-1)

	case key.Matches(msg, a.keys.Bottom):
		if a.pane == PaneScopes {
			a.scopeCursor = max(0, len(a.scopeItems)-1)
		} else {
			a.listCursor = max(0, a.listLen()-1)
		}

	case key.Matches(msg, a.keys.Left):
		a.pane = PaneScopes

	case key.Matches(msg, a.keys.Right):
		a.pane = PaneList

	case key.Matches(msg, a.keys.Select):
		if a.pane == PaneScopes {
			return a.toggleScope()
		}

	case key.Matches(msg, a.keys.Search):
		a.mode = ModeSearch
		a.search.Input.Focus()
		return a, nil

	case key.Matches(msg, a.keys.AddFolder):
		a.mode = ModeAddFolder
		a.form.Reset()
		a.form.NameInput.Focus()
		return a, nil

	case key.Matches(msg, a.keys.AddCategory):
		if a.remote == nil {
			a.setError("no server configured")
			return a, nil
		}
		a.mode = ModeAddCategory
		a.form.Reset()
		a.form.NameInput.Focus()
		return a, nil

	case key.Matches(msg, a.keys.Delete):
		return a.deleteUnderCursor()

	case key.Matches(msg, a.keys.Assign):
		return a.openAssign()

	case key.Matches(msg, a.keys.Yank):
		a.yankUnderCursor()

	case key.Matches(msg, a.keys.Sync):
		if a.remote == nil {
			a.setError("no server configured")
			return a, nil
		}
		a.setStatus("syncing categories...")
		return a, a.syncCategoriesCmd()

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp
	}

	return a, nil
}

// toggleScope selects the scope item under the cursor, or clears it if
// it is already active. Folder and filter selection are mutually
// exclusive; the store enforces that.
func (a App) toggleScope() (tea.Model, tea.Cmd) {
	if len(a.scopeItems) == 0 {
		return a, nil
	}
	item := a.scopeItems[a.scopeCursor]
	sel := a.store.Selection

	var cmd tea.Cmd
	if item.IsFolder() {
		if sel.Folder != nil && *sel.Folder == item.ID() {
			a.store.SelectFolder(nil)
		} else {
			id := item.ID()
			a.store.SelectFolder(&id)
		}
		// Folder scope is purely local.
		cmd = a.dropRemote()
	} else {
		if sel.Filter != nil && *sel.Filter == item.ID() {
			a.store.SelectFilter(nil)
			cmd = a.dropRemote()
		} else {
			id := item.ID()
			a.store.SelectFilter(&id)
			cmd = a.fetchRemoteCmd(&id)
		}
	}

	a.listCursor = 0
	a.refresh()
	return a, tea.Batch(cmd, a.persistCmd())
}

// dropRemote discards the remote result set and invalidates any fetch
// still in flight.
func (a *App) dropRemote() tea.Cmd {
	a.fetchGen++
	a.remoteBookmarks = nil
	return nil
}

// fetchRemoteCmd issues a category-scoped fetch tagged with a fresh
// generation token.
func (a *App) fetchRemoteCmd(filterID *string) tea.Cmd {
	if a.remote == nil {
		return nil
	}
	a.fetchGen++
	gen := a.fetchGen
	remote := a.remote
	var id *string
	if filterID != nil {
		v := *filterID
		id = &v
	}
	return func() tea.Msg {
		bookmarks, err := remote.BookmarksByFilter(context.Background(), id)
		return remoteBookmarksMsg{gen: gen, bookmarks: bookmarks, err: err}
	}
}

// syncCategoriesCmd fetches the category list; the taxonomy swap
// happens when the message reaches Update.
func (a App) syncCategoriesCmd() tea.Cmd {
	remote := a.remote
	return func() tea.Msg {
		categories, err := remote.FetchCategories(context.Background())
		return categoriesSyncedMsg{categories: categories, err: err}
	}
}

// persistCmd writes the snapshot in the background. The store is cloned
// here, on the event thread, so the write never races later mutations.
// The mutation is considered complete whether or not the write lands.
func (a App) persistCmd() tea.Cmd {
	if a.saver == nil {
		return nil
	}
	saver := a.saver
	snapshot := a.store.Clone()
	return func() tea.Msg {
		return snapshotSavedMsg{err: saver.Save(snapshot)}
	}
}

// deleteUnderCursor removes the selected folder (scope pane) or local
// post (list pane). Filters and remote posts cannot be deleted here.
func (a App) deleteUnderCursor() (tea.Model, tea.Cmd) {
	if a.pane == PaneScopes {
		if len(a.scopeItems) == 0 {
			return a, nil
		}
		item := a.scopeItems[a.scopeCursor]
		if !item.IsFolder() {
			a.setError("filters are managed by the server")
			return a, nil
		}
		name := item.Title()
		a.store.RemoveFolder(item.ID())
		a.refresh()
		a.setStatus(fmt.Sprintf("removed folder %q", name))
		return a, a.persistCmd()
	}

	if a.remoteActive() {
		a.setError("remote posts are read-only")
		return a, nil
	}
	if a.listCursor >= len(a.visible) {
		return a, nil
	}
	id := a.visible[a.listCursor].ID
	a.store.RemoveBookmark(id)
	a.refresh()
	a.setStatus("removed post")
	return a, a.persistCmd()
}

// openAssign enters folder-assignment mode for the selected local post.
func (a App) openAssign() (tea.Model, tea.Cmd) {
	if a.pane != PaneList || a.remoteActive() || a.listCursor >= len(a.visible) {
		return a, nil
	}
	if len(a.store.Folders) == 0 {
		a.setError("no folders yet")
		return a, nil
	}
	a.assign.Reset()
	a.assign.BookmarkID = a.visible[a.listCursor].ID
	a.mode = ModeAssign
	return a, nil
}

// yankUnderCursor copies the displayed post's text to the clipboard.
func (a *App) yankUnderCursor() {
	var text string
	if a.remoteActive() {
		if a.listCursor < len(a.remoteBookmarks) {
			text = a.remoteBookmarks[a.listCursor].Tweet.Text()
		}
	} else if a.listCursor < len(a.visible) {
		text = a.visible[a.listCursor].Content
	}
	if text == "" {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		a.setError(fmt.Sprintf("clipboard: %v", err))
		return
	}
	a.setStatus("copied post text")
}

// updateSearch handles keys while the search input is focused. Every
// keystroke updates the selection's search query, so the local list
// narrows live within the active scope.
func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.mode = ModeNormal
		a.search.Reset()
		a.store.SetSearchQuery("")
		a.search.Input.Blur()
		a.refresh()
		return a, a.persistCmd()

	case tea.KeyEnter:
		a.mode = ModeNormal
		a.search.Input.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.search.Input, cmd = a.search.Input.Update(msg)
	a.store.SetSearchQuery(a.search.Input.Value())
	a.listCursor = 0
	a.refresh()
	return a, tea.Batch(cmd, a.persistCmd())
}

// updateForm handles the add-folder and add-category modals.
func (a App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.mode = ModeNormal
		a.form.Reset()
		return a, nil

	case tea.KeyEnter:
		name := a.form.NameInput.Value()
		mode := a.mode
		a.mode = ModeNormal
		a.form.Reset()

		if name == "" {
			a.setError("name must not be empty")
			return a, nil
		}

		if mode == ModeAddFolder {
			folder := a.store.AddFolder(name)
			a.refresh()
			a.setStatus(fmt.Sprintf("added folder %q", folder.Name))
			return a, a.persistCmd()
		}

		remote := a.remote
		a.setStatus(fmt.Sprintf("creating category %q...", name))
		return a, func() tea.Msg {
			category, err := remote.CreateCategory(context.Background(), name)
			return categoryAddedMsg{category: category, err: err}
		}
	}

	var cmd tea.Cmd
	a.form.NameInput, cmd = a.form.NameInput.Update(msg)
	return a, cmd
}

// updateAssign handles the folder-assignment overlay.
func (a App) updateAssign(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.mode = ModeNormal
		a.assign.Reset()
		return a, nil

	case tea.KeyEnter, tea.KeySpace:
		return a.toggleAssignment()

	case tea.KeyDown:
		if a.assign.Cursor < len(a.store.Folders)-1 {
			a.assign.Cursor++
		}
		return a, nil

	case tea.KeyUp:
		if a.assign.Cursor > 0 {
			a.assign.Cursor--
		}
		return a, nil
	}

	if msg.Type == tea.KeyRunes {
		switch string(msg.Runes) {
		case "j":
			if a.assign.Cursor < len(a.store.Folders)-1 {
				a.assign.Cursor++
			}
		case "k":
			if a.assign.Cursor > 0 {
				a.assign.Cursor--
			}
		case "q":
			a.mode = ModeNormal
			a.assign.Reset()
		}
	}
	return a, nil
}

// toggleAssignment flips the assigned post's membership in the folder
// under the cursor.
func (a App) toggleAssignment() (tea.Model, tea.Cmd) {
	if a.assign.Cursor >= len(a.store.Folders) {
		return a, nil
	}
	folder := a.store.Folders[a.assign.Cursor]
	bookmark := a.store.GetBookmarkByID(a.assign.BookmarkID)
	if bookmark == nil {
		a.mode = ModeNormal
		a.assign.Reset()
		return a, nil
	}

	if bookmark.InFolder(folder.ID) {
		a.store.RemoveBookmarkFromFolder(a.assign.BookmarkID, folder.ID)
		a.setStatus(fmt.Sprintf("removed from %q", folder.Name))
	} else {
		a.store.AddBookmarkToFolder(a.assign.BookmarkID, folder.ID)
		a.setStatus(fmt.Sprintf("added to %q", folder.Name))
	}
	a.refresh()
	return a, a.persistCmd()
}

// moveCursor moves the cursor of the focused pane by delta, clamped.
func (a *App) moveCursor(delta int) {
	if a.pane == PaneScopes {
		a.scopeCursor = clamp(a.scopeCursor+delta, 0, max(0, len(a.scopeItems)-1))
	} else {
		a.listCursor = clamp(a.listCursor+delta, 0, max(0, a.listLen()-1))
	}
}

func (a *App) setCursor(pos int) {
	if a.pane == PaneScopes {
		a.scopeCursor = pos
	} else {
		a.listCursor = pos
	}
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(s string) {
	a.status = s
	a.statusErr = true
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
