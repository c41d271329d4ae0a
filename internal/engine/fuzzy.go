package engine

import (
	"github.com/sahilm/fuzzy"

	"github.com/skmtko/marq/internal/model"
)

// MatchResult is a fuzzy search match for the quick picker.
type MatchResult struct {
	Bookmark       *model.Bookmark
	MatchedIndexes []int
	Score          int
}

// bookmarkContents implements fuzzy.Source over content plus handle, so
// a query can hit either the post text or its author.
type bookmarkContents []*model.Bookmark

func (bc bookmarkContents) String(i int) string {
	return bc[i].Content + " " + bc[i].Handle
}

func (bc bookmarkContents) Len() int {
	return len(bc)
}

// FuzzySearch ranks all local bookmarks against the query, best match
// first. An empty query returns nil.
func FuzzySearch(store *model.Store, query string) []MatchResult {
	if query == "" {
		return nil
	}

	bookmarks := make(bookmarkContents, len(store.Bookmarks))
	for i := range store.Bookmarks {
		bookmarks[i] = &store.Bookmarks[i]
	}

	matches := fuzzy.FindFrom(query, bookmarks)

	results := make([]MatchResult, len(matches))
	for i, m := range matches {
		results[i] = MatchResult{
			Bookmark:       bookmarks[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
