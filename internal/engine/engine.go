// Package engine computes the visible subset of the local bookmark
// collection from the active selection. All functions are pure.
package engine

import (
	"strings"

	"github.com/skmtko/marq/internal/model"
)

// Built-in filter names with attached predicates. Filters synced from
// server categories carry no predicate and pass every bookmark.
const (
	FilterMedia    = "Media"
	FilterLinks    = "Links"
	FilterMentions = "Mentions"
	FilterVerified = "Verified"
)

// Visible returns the bookmarks matching the selection, preserving
// input order. Predicates apply in folder, filter, search order and a
// bookmark must pass all that are active: a search query narrows the
// scoped subset rather than overriding it.
func Visible(bookmarks []model.Bookmark, sel model.Selection, filters []model.Filter) []model.Bookmark {
	query := strings.ToLower(sel.Search)

	result := []model.Bookmark{}
	for _, b := range bookmarks {
		if sel.Folder != nil && !b.InFolder(*sel.Folder) {
			continue
		}
		if sel.Filter != nil && !matchFilter(b, *sel.Filter, filters) {
			continue
		}
		if query != "" && !matchSearch(b, query) {
			continue
		}
		result = append(result, b)
	}
	return result
}

// matchFilter resolves the filter's display name and applies the
// name-keyed rule. Unknown filter IDs and category-synced names pass.
func matchFilter(b model.Bookmark, filterID string, filters []model.Filter) bool {
	var name string
	for _, f := range filters {
		if f.ID == filterID {
			name = f.Name
			break
		}
	}

	switch name {
	case FilterMedia:
		return len(b.Images) > 0
	case FilterLinks:
		return strings.Contains(b.Content, "http")
	case FilterMentions:
		return strings.Contains(b.Content, "@")
	case FilterVerified:
		return b.IsVerified
	default:
		return true
	}
}

// matchSearch reports whether the lowercased query appears in the
// bookmark's content, username, or handle.
func matchSearch(b model.Bookmark, query string) bool {
	return strings.Contains(strings.ToLower(b.Content), query) ||
		strings.Contains(strings.ToLower(b.Username), query) ||
		strings.Contains(strings.ToLower(b.Handle), query)
}
