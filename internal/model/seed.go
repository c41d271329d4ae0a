package model

// SeedStore returns the fixed starter dataset used when no persisted
// snapshot exists yet: a handful of sample posts, the default folder
// set, and the four built-in filters.
func SeedStore() *Store {
	return &Store{
		Folders: []Folder{
			{ID: "1", Name: "Favorites"},
			{ID: "2", Name: "Read Later"},
			{ID: "3", Name: "Tech News"},
			{ID: "4", Name: "Inspiration"},
			{ID: "5", Name: "Tutorials"},
		},
		Filters: []Filter{
			{ID: "1", Name: "Media"},
			{ID: "2", Name: "Links"},
			{ID: "3", Name: "Mentions"},
			{ID: "4", Name: "Verified"},
		},
		Categories: []Category{},
		Bookmarks: []Bookmark{
			{
				ID:         "1",
				Username:   "Go Team",
				Handle:     "@golang",
				Avatar:     "https://example.com/avatars/golang.png",
				Content:    "Go 1.25 is released! Read the notes at https://go.dev/doc/go1.25",
				Date:       "2h",
				Likes:      8200,
				Retweets:   2100,
				Replies:    340,
				Views:      410000,
				Folders:    []string{"3"},
				IsVerified: true,
			},
			{
				ID:       "2",
				Username: "Mika Tanaka",
				Handle:   "@mikatnk",
				Avatar:   "https://example.com/avatars/mikatnk.png",
				Content:  "Wrote up my terminal setup for note taking. Thanks @charmcli for the tooling!",
				Date:     "1d",
				Likes:    940,
				Retweets: 120,
				Replies:  45,
				Views:    32000,
				Images:   []string{"https://example.com/media/setup.png"},
				Folders:  []string{"4", "5"},
			},
			{
				ID:         "3",
				Username:   "Systems Weekly",
				Handle:     "@sysweekly",
				Avatar:     "https://example.com/avatars/sysweekly.png",
				Content:    "This week: write-ahead logs explained, from SQLite to Postgres.",
				Date:       "3d",
				Likes:      2700,
				Retweets:   860,
				Replies:    95,
				Views:      150000,
				Folders:    []string{"2", "3"},
				IsVerified: true,
			},
			{
				ID:       "4",
				Username: "Nora Fields",
				Handle:   "@norafields",
				Avatar:   "https://example.com/avatars/norafields.png",
				Content:  "Simplicity is the hardest feature to ship.",
				Date:     "1w",
				Likes:    5100,
				Retweets: 1900,
				Replies:  210,
				Views:    240000,
				Images:   []string{"https://example.com/media/sketch.png"},
				Folders:  []string{"1", "4"},
			},
		},
	}
}
