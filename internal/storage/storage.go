package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/skmtko/marq/internal/model"
)

// Storage persists the whole state snapshot under a single logical key.
// There is no migration scheme for the JSON snapshot: a format change
// breaks previously persisted data.
type Storage interface {
	Load() (*model.Store, error)
	Save(store *model.Store) error
}

// JSONStorage implements Storage using a single JSON file.
type JSONStorage struct {
	path string
}

// NewJSONStorage creates a JSONStorage with the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the storage file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// Load reads the snapshot from the JSON file. A missing file yields the
// seed dataset so first launch starts with content.
func (s *JSONStorage) Load() (*model.Store, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.SeedStore(), nil
		}
		return nil, err
	}

	var store model.Store
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, err
	}

	// Ensure slices are not nil
	if store.Bookmarks == nil {
		store.Bookmarks = []model.Bookmark{}
	}
	if store.Folders == nil {
		store.Folders = []model.Folder{}
	}
	if store.Filters == nil {
		store.Filters = []model.Filter{}
	}
	if store.Categories == nil {
		store.Categories = []model.Category{}
	}

	return &store, nil
}

// Save writes the snapshot to the JSON file, creating the directory if
// needed.
func (s *JSONStorage) Save(store *model.Store) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// DefaultSnapshotPath returns the default snapshot path:
// ~/.config/marq/bookmarks.json
func DefaultSnapshotPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "marq", "bookmarks.json"), nil
}

// OpenStorage opens the appropriate storage backend.
// Prefers SQLite if the database file exists, otherwise falls back to JSON.
func OpenStorage() (Storage, error) {
	sqlitePath, err := DefaultSQLitePath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(sqlitePath); err == nil {
		return NewSQLiteStorage(sqlitePath)
	}

	jsonPath, err := DefaultSnapshotPath()
	if err != nil {
		return nil, err
	}
	return NewJSONStorage(jsonPath), nil
}
