package tui

import "github.com/skmtko/marq/internal/model"

// ScopeKind distinguishes folders from filters in the scope sidebar.
type ScopeKind int

const (
	ScopeFolder ScopeKind = iota
	ScopeFilter
)

// ScopeItem represents one row of the scope sidebar: a folder or a
// filter. Exactly one of Folder/Filter is set.
type ScopeItem struct {
	Kind   ScopeKind
	Folder *model.Folder
	Filter *model.Filter
}

// ID returns the item's ID regardless of kind.
func (i ScopeItem) ID() string {
	if i.Kind == ScopeFolder {
		return i.Folder.ID
	}
	return i.Filter.ID
}

// Title returns a display title for the item.
func (i ScopeItem) Title() string {
	if i.Kind == ScopeFolder {
		return i.Folder.Name
	}
	return i.Filter.Name
}

// IsFolder returns true if this item is a folder.
func (i ScopeItem) IsFolder() bool {
	return i.Kind == ScopeFolder
}
