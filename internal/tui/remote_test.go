package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skmtko/marq/internal/api"
	"github.com/skmtko/marq/internal/model"
)

// fakeRemote records calls and returns canned data.
type fakeRemote struct {
	bookmarks    []api.Bookmark
	categories   []model.Category
	err          error
	lastFilterID *string
	fetchCalls   int
}

func (f *fakeRemote) FetchCategories(_ context.Context) ([]model.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.categories, nil
}

func (f *fakeRemote) CreateCategory(_ context.Context, name string) (model.Category, error) {
	if f.err != nil {
		return model.Category{}, f.err
	}
	return model.Category{ID: 99, Name: name}, nil
}

func (f *fakeRemote) BookmarksByFilter(_ context.Context, filterID *string) ([]api.Bookmark, error) {
	f.fetchCalls++
	f.lastFilterID = filterID
	return f.bookmarks, f.err
}

func remoteTestStore() *model.Store {
	store := model.NewStore()
	store.Filters = []model.Filter{
		{ID: "3", Name: "golang"},
		{ID: "4", Name: "design"},
	}
	store.Bookmarks = []model.Bookmark{
		{ID: "b1", Username: "golang", Handle: "@golang", Content: "local post", Folders: []string{}},
	}
	return store
}

func remotePost(text string) api.Bookmark {
	return api.Bookmark{
		ID:       "r1",
		Category: "golang",
		Tweet:    api.Tweet{ScreenName: "golang", Name: "Go", FullText: text},
	}
}

func TestApp_RemotePrecedence_NonEmptyWins(t *testing.T) {
	app := NewApp(AppParams{Store: remoteTestStore(), Remote: &fakeRemote{}})

	updated, _ := app.Update(remoteBookmarksMsg{
		gen:       app.fetchGen,
		bookmarks: []api.Bookmark{remotePost("from the server")},
	})
	app = updated.(App)

	if !app.RemoteActive() {
		t.Fatal("non-empty remote result must take precedence")
	}
	if app.listLen() != 1 {
		t.Errorf("list should show 1 remote post, got %d", app.listLen())
	}
}

func TestApp_RemotePrecedence_EmptyFallsBackToLocal(t *testing.T) {
	app := NewApp(AppParams{Store: remoteTestStore(), Remote: &fakeRemote{}})

	updated, _ := app.Update(remoteBookmarksMsg{gen: app.fetchGen, bookmarks: nil})
	app = updated.(App)

	if app.RemoteActive() {
		t.Fatal("empty remote result must fall back to the local list")
	}
	if app.listLen() != 1 || app.VisibleBookmarks()[0].ID != "b1" {
		t.Error("local engine output should be displayed")
	}
}

func TestApp_StaleRemoteResponseDiscarded(t *testing.T) {
	store := remoteTestStore()
	remote := &fakeRemote{}
	app := NewApp(AppParams{Store: store, Remote: remote})

	// Two selections in a row: the first fetch is superseded.
	updated, _ := app.toggleScope()
	app = updated.(App)
	staleGen := app.fetchGen

	app.scopeCursor = 1
	updated, _ = app.toggleScope()
	app = updated.(App)

	// The stale response arrives late and must be dropped.
	updated, _ = app.Update(remoteBookmarksMsg{
		gen:       staleGen,
		bookmarks: []api.Bookmark{remotePost("stale")},
	})
	app = updated.(App)

	if app.RemoteActive() {
		t.Fatal("superseded response must be discarded")
	}

	// The current-generation response lands normally.
	updated, _ = app.Update(remoteBookmarksMsg{
		gen:       app.fetchGen,
		bookmarks: []api.Bookmark{remotePost("fresh")},
	})
	app = updated.(App)

	if !app.RemoteActive() {
		t.Fatal("current-generation response must be applied")
	}
	if app.remoteBookmarks[0].Tweet.Text() != "fresh" {
		t.Errorf("got %q, want the fresh response", app.remoteBookmarks[0].Tweet.Text())
	}
}

func TestApp_SelectFolderDropsRemote(t *testing.T) {
	store := remoteTestStore()
	store.Folders = []model.Folder{{ID: "f1", Name: "Favorites"}}
	app := NewApp(AppParams{Store: store, Remote: &fakeRemote{}})

	// Filter selected, remote results shown
	app.scopeCursor = 1 // first filter (after folder)
	updated, _ := app.toggleScope()
	app = updated.(App)
	gen := app.fetchGen
	updated, _ = app.Update(remoteBookmarksMsg{gen: gen, bookmarks: []api.Bookmark{remotePost("x")}})
	app = updated.(App)
	if !app.RemoteActive() {
		t.Fatal("remote should be active")
	}

	// Selecting a folder is a purely local scope
	app.scopeCursor = 0
	updated, _ = app.toggleScope()
	app = updated.(App)

	if app.RemoteActive() {
		t.Error("folder selection must drop remote results")
	}
	if app.fetchGen == gen {
		t.Error("in-flight fetches must be invalidated on folder selection")
	}
}

func TestApp_FetchErrorRetainsPriorState(t *testing.T) {
	app := NewApp(AppParams{Store: remoteTestStore(), Remote: &fakeRemote{}})

	updated, _ := app.Update(remoteBookmarksMsg{gen: app.fetchGen, bookmarks: []api.Bookmark{remotePost("kept")}})
	app = updated.(App)

	updated, _ = app.Update(remoteBookmarksMsg{gen: app.fetchGen, err: errors.New("connection refused")})
	app = updated.(App)

	if !app.RemoteActive() || app.remoteBookmarks[0].Tweet.Text() != "kept" {
		t.Error("a failed read must retain the prior result set")
	}
	if !app.statusErr {
		t.Error("the failure should be surfaced")
	}
}

func TestApp_SelectFilterIssuesScopedFetch(t *testing.T) {
	remote := &fakeRemote{}
	app := NewApp(AppParams{Store: remoteTestStore(), Remote: remote})

	updated, cmd := app.toggleScope() // filter id "3"
	app = updated.(App)
	if cmd == nil {
		t.Fatal("selecting a filter should issue a fetch command")
	}
	runCmd(cmd)

	if remote.fetchCalls == 0 {
		t.Fatal("fetch was not issued")
	}
	if remote.lastFilterID == nil || *remote.lastFilterID != "3" {
		t.Errorf("fetch should be scoped to filter 3, got %v", remote.lastFilterID)
	}
	_ = app
}

func TestApp_SyncCategoriesRebuildsScopes(t *testing.T) {
	store := remoteTestStore()
	remote := &fakeRemote{categories: []model.Category{{ID: 7, Name: "news"}}}
	app := NewApp(AppParams{Store: store, Remote: remote})

	cmd := app.syncCategoriesCmd()
	msg := cmd()
	if len(store.Filters) != 2 {
		t.Fatal("the fetch command must not touch the store")
	}

	updated, _ := app.Update(msg)
	app = updated.(App)

	if len(store.Filters) != 1 || store.Filters[0].ID != "7" {
		t.Fatalf("filters should be rebuilt wholesale, got %v", store.Filters)
	}
	if len(app.scopeItems) != 1 {
		t.Errorf("sidebar should reflect the new taxonomy, got %d items", len(app.scopeItems))
	}
}

func TestApp_SyncFailureLeavesFiltersUntouched(t *testing.T) {
	store := remoteTestStore()
	remote := &fakeRemote{err: errors.New("boom")}
	app := NewApp(AppParams{Store: store, Remote: remote})

	cmd := app.syncCategoriesCmd()
	updated, _ := app.Update(cmd())
	app = updated.(App)

	if len(store.Filters) != 2 {
		t.Errorf("failed sync must leave the filter list untouched, got %v", store.Filters)
	}
	if !app.statusErr {
		t.Error("the failure should be surfaced")
	}
}

func TestApp_CategoryCreatedAppliedOnUpdate(t *testing.T) {
	store := remoteTestStore()
	app := NewApp(AppParams{Store: store, Remote: &fakeRemote{}})

	updated, _ := app.Update(categoryAddedMsg{category: model.Category{ID: 12, Name: "reading"}})
	app = updated.(App)

	if store.GetFilterByID("12") == nil {
		t.Fatal("the created category should project into the filter list")
	}
	if len(app.scopeItems) != 3 {
		t.Errorf("sidebar should include the new filter, got %d items", len(app.scopeItems))
	}
}

// recordingSaver captures the store pointer each Save receives.
type recordingSaver struct {
	saved []*model.Store
}

func (r *recordingSaver) Load() (*model.Store, error) { return model.NewStore(), nil }

func (r *recordingSaver) Save(store *model.Store) error {
	r.saved = append(r.saved, store)
	return nil
}

func TestApp_PersistWritesSnapshotNotLiveStore(t *testing.T) {
	store := remoteTestStore()
	saver := &recordingSaver{}
	app := NewApp(AppParams{Store: store, Saver: saver})

	cmd := app.persistCmd()

	// Mutations landing after the command is built must not leak into
	// the pending write.
	store.SetSearchQuery("later")
	store.AddFolder("Later")

	runCmd(cmd)

	if len(saver.saved) != 1 {
		t.Fatalf("expected one save, got %d", len(saver.saved))
	}
	got := saver.saved[0]
	if got == store {
		t.Fatal("the live store must not be handed to the writer")
	}
	if got.Selection.Search != "" {
		t.Errorf("snapshot picked up a later search mutation: %q", got.Selection.Search)
	}
	if len(got.Folders) != 0 {
		t.Errorf("snapshot picked up a later folder, got %d", len(got.Folders))
	}
}

// runCmd executes a tea.Cmd, unwrapping batches.
func runCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			runCmd(c)
		}
	}
}
