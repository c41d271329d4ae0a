package model

// Store holds the entire client state: the local bookmark collection,
// folder and filter taxonomies, the last synced category list, and the
// active selection. Every mutation replaces the affected slice rather
// than editing it in place, so observers can detect change by
// reference equality.
type Store struct {
	Bookmarks  []Bookmark `json:"bookmarks"`
	Folders    []Folder   `json:"folders"`
	Filters    []Filter   `json:"filters"`
	Categories []Category `json:"categories"`
	Selection  Selection  `json:"selection"`
}

// NewStore creates an empty Store with initialized slices.
func NewStore() *Store {
	return &Store{
		Bookmarks:  []Bookmark{},
		Folders:    []Folder{},
		Filters:    []Filter{},
		Categories: []Category{},
	}
}

// Clone returns a deep copy sharing no memory with the receiver.
// Background persistence works on a clone so mutations on the event
// loop never race the snapshot write.
func (s *Store) Clone() *Store {
	clone := &Store{
		Bookmarks:  make([]Bookmark, len(s.Bookmarks)),
		Folders:    make([]Folder, len(s.Folders)),
		Filters:    make([]Filter, len(s.Filters)),
		Categories: make([]Category, len(s.Categories)),
		Selection:  s.Selection,
	}
	copy(clone.Folders, s.Folders)
	copy(clone.Filters, s.Filters)
	copy(clone.Categories, s.Categories)
	for i, b := range s.Bookmarks {
		if b.Images != nil {
			images := make([]string, len(b.Images))
			copy(images, b.Images)
			b.Images = images
		}
		if b.Folders != nil {
			folders := make([]string, len(b.Folders))
			copy(folders, b.Folders)
			b.Folders = folders
		}
		clone.Bookmarks[i] = b
	}
	if s.Selection.Folder != nil {
		id := *s.Selection.Folder
		clone.Selection.Folder = &id
	}
	if s.Selection.Filter != nil {
		id := *s.Selection.Filter
		clone.Selection.Filter = &id
	}
	return clone
}

// AddBookmark appends a bookmark to the collection.
func (s *Store) AddBookmark(b Bookmark) {
	bookmarks := make([]Bookmark, 0, len(s.Bookmarks)+1)
	bookmarks = append(bookmarks, s.Bookmarks...)
	s.Bookmarks = append(bookmarks, b)
}

// RemoveBookmark removes the bookmark with the given ID. Removing an
// unknown ID is a silent no-op.
func (s *Store) RemoveBookmark(id string) {
	bookmarks := make([]Bookmark, 0, len(s.Bookmarks))
	for _, b := range s.Bookmarks {
		if b.ID != id {
			bookmarks = append(bookmarks, b)
		}
	}
	s.Bookmarks = bookmarks
}

// AddFolder appends a new folder with a fresh ID and returns it.
// Name validation is the caller's responsibility.
func (s *Store) AddFolder(name string) Folder {
	folder := NewFolder(name)
	folders := make([]Folder, 0, len(s.Folders)+1)
	folders = append(folders, s.Folders...)
	s.Folders = append(folders, folder)
	return folder
}

// RemoveFolder removes the folder, strips its ID from every bookmark's
// folder set, and resets the selection if the folder was active.
func (s *Store) RemoveFolder(id string) {
	folders := make([]Folder, 0, len(s.Folders))
	for _, f := range s.Folders {
		if f.ID != id {
			folders = append(folders, f)
		}
	}
	s.Folders = folders

	bookmarks := make([]Bookmark, len(s.Bookmarks))
	for i, b := range s.Bookmarks {
		if b.InFolder(id) {
			kept := make([]string, 0, len(b.Folders))
			for _, fid := range b.Folders {
				if fid != id {
					kept = append(kept, fid)
				}
			}
			b.Folders = kept
		}
		bookmarks[i] = b
	}
	s.Bookmarks = bookmarks

	if s.Selection.Folder != nil && *s.Selection.Folder == id {
		s.Selection.SelectFolder(nil)
	}
}

// AddBookmarkToFolder adds the folder ID to the bookmark's folder set.
// Membership is a set: adding an ID the bookmark already carries is a
// no-op, as is an unknown bookmark ID.
func (s *Store) AddBookmarkToFolder(bookmarkID, folderID string) {
	bookmarks := make([]Bookmark, len(s.Bookmarks))
	for i, b := range s.Bookmarks {
		if b.ID == bookmarkID && !b.InFolder(folderID) {
			folders := make([]string, 0, len(b.Folders)+1)
			folders = append(folders, b.Folders...)
			b.Folders = append(folders, folderID)
		}
		bookmarks[i] = b
	}
	s.Bookmarks = bookmarks
}

// RemoveBookmarkFromFolder removes the folder ID from the bookmark's
// folder set. Unknown IDs are silent no-ops.
func (s *Store) RemoveBookmarkFromFolder(bookmarkID, folderID string) {
	bookmarks := make([]Bookmark, len(s.Bookmarks))
	for i, b := range s.Bookmarks {
		if b.ID == bookmarkID {
			kept := make([]string, 0, len(b.Folders))
			for _, fid := range b.Folders {
				if fid != folderID {
					kept = append(kept, fid)
				}
			}
			b.Folders = kept
		}
		bookmarks[i] = b
	}
	s.Bookmarks = bookmarks
}

// ReplaceCategories replaces the category list and rebuilds the filter
// list wholesale as its projection. Used after a successful category
// fetch; never diffed incrementally.
func (s *Store) ReplaceCategories(categories []Category) {
	s.Categories = categories
	s.Filters = FiltersFromCategories(categories)
}

// AppendCategory appends a single category and its filter projection.
func (s *Store) AppendCategory(c Category) Filter {
	categories := make([]Category, 0, len(s.Categories)+1)
	categories = append(categories, s.Categories...)
	s.Categories = append(categories, c)

	filter := c.Filter()
	filters := make([]Filter, 0, len(s.Filters)+1)
	filters = append(filters, s.Filters...)
	s.Filters = append(filters, filter)
	return filter
}

// SelectFolder activates a folder scope (nil = none), clearing any filter.
func (s *Store) SelectFolder(folderID *string) {
	s.Selection.SelectFolder(folderID)
}

// SelectFilter activates a filter scope (nil = none), clearing any folder.
func (s *Store) SelectFilter(filterID *string) {
	s.Selection.SelectFilter(filterID)
}

// SetSearchQuery replaces the search query.
func (s *Store) SetSearchQuery(query string) {
	s.Selection.SetSearch(query)
}

// GetBookmarkByID finds a bookmark by ID, returns nil if not found.
func (s *Store) GetBookmarkByID(id string) *Bookmark {
	for i := range s.Bookmarks {
		if s.Bookmarks[i].ID == id {
			return &s.Bookmarks[i]
		}
	}
	return nil
}

// GetFolderByID finds a folder by ID, returns nil if not found.
func (s *Store) GetFolderByID(id string) *Folder {
	for i := range s.Folders {
		if s.Folders[i].ID == id {
			return &s.Folders[i]
		}
	}
	return nil
}

// GetFilterByID finds a filter by ID, returns nil if not found.
func (s *Store) GetFilterByID(id string) *Filter {
	for i := range s.Filters {
		if s.Filters[i].ID == id {
			return &s.Filters[i]
		}
	}
	return nil
}
