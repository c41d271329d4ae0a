package model

// Folder is a user-defined named grouping. Bookmarks reference folders
// by ID; membership is many-to-many.
type Folder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewFolder creates a Folder with a generated UUID.
func NewFolder(name string) Folder {
	return Folder{
		ID:   generateUUID(),
		Name: name,
	}
}
