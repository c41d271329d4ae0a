package api

// Tweet is the server-shaped post record embedded in a remote bookmark.
type Tweet struct {
	ProfileImageURL string       `json:"profile_image_url_https"`
	ScreenName      string       `json:"screen_name"`
	Name            string       `json:"name"`
	FullText        string       `json:"full_text,omitempty"`
	NoteTweetText   string       `json:"note_tweet_text,omitempty"`
	TweetedAt       string       `json:"tweeted_at"`
	ExtendedMedia   []TweetMedia `json:"extended_media,omitempty"`
	TweetURL        string       `json:"tweet_url"`
}

// TweetMedia is a single media attachment on a tweet.
type TweetMedia struct {
	MediaURL string `json:"media_url_https"`
}

// Text returns the tweet's display text: full_text, falling back to
// note_tweet_text when the former is absent. Exactly one is rendered.
func (t Tweet) Text() string {
	if t.FullText != "" {
		return t.FullText
	}
	return t.NoteTweetText
}

// Bookmark is a server-fetched, category-scoped post record. It is
// transient: fetched per query and never merged into the local
// collection.
type Bookmark struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	CreatedAt string `json:"created_at"`
	Tweet     Tweet  `json:"tweet"`
}

// bookmarksResponse is the envelope of GET /bookmarks/.
type bookmarksResponse struct {
	Bookmarks []Bookmark `json:"bookmarks"`
}

// categoriesResponse is the envelope of GET /bookmarks/categories.
type categoriesResponse struct {
	Categories []categoryPayload `json:"categories"`
}

// categoryResponse is the envelope of POST /bookmarks/categories.
type categoryResponse struct {
	Category categoryPayload `json:"category"`
}

// categoryPayload is the server representation of a category.
type categoryPayload struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// createCategoryRequest is the body of POST /bookmarks/categories.
type createCategoryRequest struct {
	Name string `json:"name"`
}
