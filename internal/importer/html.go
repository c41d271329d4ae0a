// Package importer parses an HTML export of saved posts into local
// bookmarks. Any anchor pointing at a post status URL becomes a
// bookmark; the anchor text becomes the post content.
package importer

import (
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/skmtko/marq/internal/model"
)

// ParseHTMLPosts parses an HTML document and returns the saved posts
// found in it. Anchors without a status URL are skipped.
func ParseHTMLPosts(r io.Reader) ([]model.Bookmark, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var bookmarks []model.Bookmark

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode && strings.EqualFold(n.Data, "a") {
			href := getAttr(n, "href")
			handle := handleFromStatusURL(href)
			if handle == "" {
				return // not a post link
			}

			content := getTextContent(n)
			if content == "" {
				content = href // fallback when the anchor has no text
			}

			bookmarks = append(bookmarks, model.NewBookmark(model.NewBookmarkParams{
				Username: strings.TrimPrefix(handle, "@"),
				Handle:   handle,
				Content:  content,
			}))
			return // Don't recurse into A
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return bookmarks, nil
}

// handleFromStatusURL extracts the author handle from a post status
// URL like https://x.com/someuser/status/123. Returns "" for anything
// that isn't one.
func handleFromStatusURL(href string) string {
	if href == "" {
		return ""
	}

	u, err := url.Parse(href)
	if err != nil {
		return ""
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 3 || parts[1] != "status" {
		return ""
	}
	return "@" + parts[0]
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
