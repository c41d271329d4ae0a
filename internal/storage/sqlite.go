package storage

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/skmtko/marq/internal/model"
)

const currentSchemaVersion = 1

// SQLiteStorage implements Storage using a SQLite database. Save writes
// the whole snapshot in one transaction, all or nothing.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage creates a SQLiteStorage with the given database path.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &SQLiteStorage{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStorage) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// migrate runs database migrations.
func (s *SQLiteStorage) migrate() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the initial schema.
func (s *SQLiteStorage) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS folders (
			id TEXT PRIMARY KEY NOT NULL,
			name TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS filters (
			id TEXT PRIMARY KEY NOT NULL,
			name TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY NOT NULL,
			name TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS bookmarks (
			id TEXT PRIMARY KEY NOT NULL,
			username TEXT NOT NULL,
			handle TEXT NOT NULL,
			avatar TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL,
			date TEXT NOT NULL DEFAULT '',
			likes INTEGER NOT NULL DEFAULT 0,
			retweets INTEGER NOT NULL DEFAULT 0,
			replies INTEGER NOT NULL DEFAULT 0,
			views INTEGER NOT NULL DEFAULT 0,
			images TEXT NOT NULL DEFAULT '[]',
			folders TEXT NOT NULL DEFAULT '[]',
			is_verified INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS selection (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			selected_folder TEXT,
			selected_filter TEXT,
			search_query TEXT NOT NULL DEFAULT ''
		);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Load reads the snapshot from the SQLite database.
func (s *SQLiteStorage) Load() (*model.Store, error) {
	store := model.NewStore()

	rows, err := s.db.Query("SELECT id, name FROM folders ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var f model.Folder
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			return nil, err
		}
		store.Folders = append(store.Folders, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.Query("SELECT id, name FROM filters ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var f model.Filter
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			return nil, err
		}
		store.Filters = append(store.Filters, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.Query("SELECT id, name FROM categories ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		store.Categories = append(store.Categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.Query(`
		SELECT id, username, handle, avatar, content, date,
		       likes, retweets, replies, views, images, folders, is_verified
		FROM bookmarks
		ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var b model.Bookmark
		var imagesJSON, foldersJSON string
		var verified int

		if err := rows.Scan(
			&b.ID, &b.Username, &b.Handle, &b.Avatar, &b.Content, &b.Date,
			&b.Likes, &b.Retweets, &b.Replies, &b.Views,
			&imagesJSON, &foldersJSON, &verified,
		); err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(imagesJSON), &b.Images); err != nil {
			b.Images = nil
		}
		if err := json.Unmarshal([]byte(foldersJSON), &b.Folders); err != nil {
			b.Folders = []string{}
		}
		b.IsVerified = verified == 1

		store.Bookmarks = append(store.Bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var folderID, filterID sql.NullString
	var search string
	err = s.db.QueryRow(
		"SELECT selected_folder, selected_filter, search_query FROM selection WHERE id = 1",
	).Scan(&folderID, &filterID, &search)
	if err == nil {
		if folderID.Valid {
			store.Selection.Folder = &folderID.String
		}
		if filterID.Valid {
			store.Selection.Filter = &filterID.String
		}
		store.Selection.Search = search
	} else if err != sql.ErrNoRows {
		return nil, err
	}

	return store, nil
}

// Save writes the snapshot to the SQLite database in one transaction.
func (s *SQLiteStorage) Save(store *model.Store) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"bookmarks", "folders", "filters", "categories", "selection"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	folderStmt, err := tx.Prepare("INSERT INTO folders (id, name) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer folderStmt.Close()

	for _, f := range store.Folders {
		if _, err := folderStmt.Exec(f.ID, f.Name); err != nil {
			return err
		}
	}

	filterStmt, err := tx.Prepare("INSERT INTO filters (id, name) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer filterStmt.Close()

	for _, f := range store.Filters {
		if _, err := filterStmt.Exec(f.ID, f.Name); err != nil {
			return err
		}
	}

	categoryStmt, err := tx.Prepare("INSERT INTO categories (id, name) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer categoryStmt.Close()

	for _, c := range store.Categories {
		if _, err := categoryStmt.Exec(c.ID, c.Name); err != nil {
			return err
		}
	}

	bookmarkStmt, err := tx.Prepare(`
		INSERT INTO bookmarks (id, username, handle, avatar, content, date,
		                       likes, retweets, replies, views, images, folders, is_verified)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer bookmarkStmt.Close()

	for _, b := range store.Bookmarks {
		imagesJSON, _ := json.Marshal(b.Images)
		if b.Images == nil {
			imagesJSON = []byte("[]")
		}
		foldersJSON, _ := json.Marshal(b.Folders)
		if b.Folders == nil {
			foldersJSON = []byte("[]")
		}

		verified := 0
		if b.IsVerified {
			verified = 1
		}

		if _, err := bookmarkStmt.Exec(
			b.ID, b.Username, b.Handle, b.Avatar, b.Content, b.Date,
			b.Likes, b.Retweets, b.Replies, b.Views,
			string(imagesJSON), string(foldersJSON), verified,
		); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(
		"INSERT INTO selection (id, selected_folder, selected_filter, search_query) VALUES (1, ?, ?, ?)",
		store.Selection.Folder, store.Selection.Filter, store.Selection.Search,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// DefaultSQLitePath returns the default SQLite database path:
// ~/.config/marq/bookmarks.db
func DefaultSQLitePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "marq", "bookmarks.db"), nil
}
