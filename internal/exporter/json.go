// Package exporter writes the local bookmark collection to a JSON
// document. The output is a plain array of posts, which is the shape
// the categorize upload endpoint accepts.
package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/skmtko/marq/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/marq-export-YYYY-MM-DD.json
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("marq-export-%s.json", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// exportedPost is the wire shape for a single exported post.
type exportedPost struct {
	ID         string   `json:"id"`
	Username   string   `json:"username"`
	Handle     string   `json:"handle"`
	Content    string   `json:"content"`
	Date       string   `json:"date,omitempty"`
	Likes      int      `json:"likes"`
	Retweets   int      `json:"retweets"`
	Replies    int      `json:"replies"`
	Views      int      `json:"views"`
	Images     []string `json:"images,omitempty"`
	Folders    []string `json:"folders,omitempty"` // folder names, not IDs
	IsVerified bool     `json:"isVerified,omitempty"`
}

// ExportJSON renders the store's bookmarks as an indented JSON array.
// Folder memberships are exported by name so the document stands on
// its own without the folder table.
func ExportJSON(store *model.Store) ([]byte, error) {
	posts := make([]exportedPost, 0, len(store.Bookmarks))
	for _, b := range store.Bookmarks {
		posts = append(posts, exportedPost{
			ID:         b.ID,
			Username:   b.Username,
			Handle:     b.Handle,
			Content:    b.Content,
			Date:       b.Date,
			Likes:      b.Likes,
			Retweets:   b.Retweets,
			Replies:    b.Replies,
			Views:      b.Views,
			Images:     b.Images,
			Folders:    folderNames(store, b.Folders),
			IsVerified: b.IsVerified,
		})
	}
	return json.MarshalIndent(posts, "", "  ")
}

// WriteFile exports the store to the given path, creating parent
// directories as needed.
func WriteFile(store *model.Store, path string) error {
	data, err := ExportJSON(store)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func folderNames(store *model.Store, ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if f := store.GetFolderByID(id); f != nil {
			names = append(names, f.Name)
		}
	}
	return names
}
