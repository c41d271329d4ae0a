// Package remote reconciles the server-side category taxonomy and the
// category-scoped remote bookmark set with the local store.
package remote

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/skmtko/marq/internal/api"
	"github.com/skmtko/marq/internal/model"
)

var (
	// ErrEmptyName rejects category creation before any network effect.
	ErrEmptyName = errors.New("category name must not be empty")
	// ErrBadFilterID marks a filter ID that is not a numeric category ID.
	ErrBadFilterID = errors.New("filter id does not map to a category")
)

// Coordinator issues category-scoped fetches and keeps the local filter
// taxonomy synchronized with the server's categories.
type Coordinator struct {
	client *api.Client
}

// NewCoordinator creates a Coordinator backed by the given client.
func NewCoordinator(client *api.Client) *Coordinator {
	return &Coordinator{client: client}
}

// FetchCategories fetches the full category list without touching any
// store. Callers that own a store apply the result themselves, so the
// fetch can run off the event thread.
func (c *Coordinator) FetchCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := c.client.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("sync categories: %w", err)
	}
	return categories, nil
}

// CreateCategory validates the name and asks the server to create the
// category. Validation fails before any network effect.
func (c *Coordinator) CreateCategory(ctx context.Context, name string) (model.Category, error) {
	if err := validation.Validate(name, validation.Required); err != nil {
		return model.Category{}, ErrEmptyName
	}

	category, err := c.client.CreateCategory(ctx, name)
	if err != nil {
		return model.Category{}, fmt.Errorf("add category: %w", err)
	}
	return category, nil
}

// SyncCategories fetches the category list and replaces the store's
// filter list wholesale with its projection. On failure the previous
// filter list is left untouched; no partial merge happens.
func (c *Coordinator) SyncCategories(ctx context.Context, store *model.Store) error {
	categories, err := c.FetchCategories(ctx)
	if err != nil {
		return err
	}
	store.ReplaceCategories(categories)
	return nil
}

// AddCategory creates the category on the server and appends the
// matching filter on success. On failure the error propagates and the
// store is not touched.
func (c *Coordinator) AddCategory(ctx context.Context, store *model.Store, name string) (model.Filter, error) {
	category, err := c.CreateCategory(ctx, name)
	if err != nil {
		return model.Filter{}, err
	}
	return store.AppendCategory(category), nil
}

// BookmarksByFilter fetches the remote bookmark set scoped to the
// category behind the given filter ID, or the full set when filterID is
// nil. A single response is assumed complete.
func (c *Coordinator) BookmarksByFilter(ctx context.Context, filterID *string) ([]api.Bookmark, error) {
	var categoryID *int
	if filterID != nil {
		id, err := strconv.Atoi(*filterID)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadFilterID, *filterID)
		}
		categoryID = &id
	}

	bookmarks, err := c.client.Bookmarks(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("fetch bookmarks: %w", err)
	}
	return bookmarks, nil
}
