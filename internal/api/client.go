// Package api is the HTTP client for the bookmark categorization server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/skmtko/marq/internal/model"
)

// DefaultTimeout bounds every request to the server.
const DefaultTimeout = 5 * time.Second

var (
	ErrRequest         = errors.New("bookmark API request failed")
	ErrInvalidResponse = errors.New("invalid bookmark API response")
)

// Client talks to the categorization server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given base address.
func NewClient(baseURL string) *Client {
	return NewClientWithTimeout(baseURL, DefaultTimeout)
}

// NewClientWithTimeout creates a Client with an explicit per-request
// timeout.
func NewClientWithTimeout(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the configured base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Bookmarks fetches the remote bookmark collection. A non-nil
// categoryID scopes the request to that category; nil fetches all.
func (c *Client) Bookmarks(ctx context.Context, categoryID *int) ([]Bookmark, error) {
	endpoint := c.baseURL + "/bookmarks/"
	if categoryID != nil {
		q := url.Values{}
		q.Set("category_id", strconv.Itoa(*categoryID))
		endpoint += "?" + q.Encode()
	}

	var resp bookmarksResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return resp.Bookmarks, nil
}

// Categories fetches the full category list.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var resp categoriesResponse
	if err := c.getJSON(ctx, c.baseURL+"/bookmarks/categories", &resp); err != nil {
		return nil, err
	}

	categories := make([]model.Category, len(resp.Categories))
	for i, p := range resp.Categories {
		categories[i] = model.Category{ID: p.ID, Name: p.Name}
	}
	return categories, nil
}

// CreateCategory asks the server to create a category and returns the
// created record.
func (c *Client) CreateCategory(ctx context.Context, name string) (model.Category, error) {
	body, err := json.Marshal(createCategoryRequest{Name: name})
	if err != nil {
		return model.Category{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/bookmarks/categories", bytes.NewReader(body))
	if err != nil {
		return model.Category{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	respBody, err := c.do(req)
	if err != nil {
		return model.Category{}, err
	}

	var resp categoryResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return model.Category{}, fmt.Errorf("unmarshal response: %w", err)
	}
	return model.Category{ID: resp.Category.ID, Name: resp.Category.Name}, nil
}

// getJSON performs a GET and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

// do executes the request and returns the body of a 2xx response.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequest, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrRequest, resp.StatusCode, string(body))
	}

	return body, nil
}
