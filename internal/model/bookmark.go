package model

// Bookmark is a locally saved social post with engagement metadata.
type Bookmark struct {
	ID         string   `json:"id"`
	Username   string   `json:"username"`
	Handle     string   `json:"handle"`
	Avatar     string   `json:"avatar"`
	Content    string   `json:"content"`
	Date       string   `json:"date"`
	Likes      int      `json:"likes"`
	Retweets   int      `json:"retweets"`
	Replies    int      `json:"replies"`
	Views      int      `json:"views"`
	Images     []string `json:"images,omitempty"`
	Folders    []string `json:"folders,omitempty"` // folder IDs, set semantics
	IsVerified bool     `json:"isVerified,omitempty"`
}

// NewBookmarkParams holds parameters for creating a new Bookmark.
type NewBookmarkParams struct {
	Username string
	Handle   string
	Avatar   string
	Content  string
	Date     string
	Images   []string
	Folders  []string
}

// NewBookmark creates a Bookmark with a generated UUID.
func NewBookmark(params NewBookmarkParams) Bookmark {
	folders := params.Folders
	if folders == nil {
		folders = []string{}
	}

	return Bookmark{
		ID:       generateUUID(),
		Username: params.Username,
		Handle:   params.Handle,
		Avatar:   params.Avatar,
		Content:  params.Content,
		Date:     params.Date,
		Images:   params.Images,
		Folders:  folders,
	}
}

// InFolder returns true if the bookmark carries the given folder ID.
func (b Bookmark) InFolder(folderID string) bool {
	for _, id := range b.Folders {
		if id == folderID {
			return true
		}
	}
	return false
}
