package model

// Selection is the active scoping choice: at most one of Folder/Filter
// is set, plus an orthogonal free-text search query.
type Selection struct {
	Folder *string `json:"selectedFolder"`
	Filter *string `json:"selectedFilter"`
	Search string  `json:"searchQuery"`
}

// SelectFolder activates the given folder scope and clears any active
// filter. Pass nil to clear the folder scope.
func (s *Selection) SelectFolder(folderID *string) {
	s.Folder = folderID
	s.Filter = nil
}

// SelectFilter activates the given filter scope and clears any active
// folder. Pass nil to clear the filter scope.
func (s *Selection) SelectFilter(filterID *string) {
	s.Filter = filterID
	s.Folder = nil
}

// SetSearch replaces the search query.
func (s *Selection) SetSearch(query string) {
	s.Search = query
}

// None returns true when neither a folder nor a filter is active.
func (s Selection) None() bool {
	return s.Folder == nil && s.Filter == nil
}
