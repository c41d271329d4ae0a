package model

import "strconv"

// Filter is a named predicate bucket. The fixed seed filters (Media,
// Links, Mentions, Verified) carry built-in rules; filters synced from
// server categories match by name only.
type Filter struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category is a server-owned taxonomy entry. The Filter list is a
// derived projection of the Category list.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Filter returns the category projected into the client Filter shape,
// with the numeric ID stringified.
func (c Category) Filter() Filter {
	return Filter{
		ID:   strconv.Itoa(c.ID),
		Name: c.Name,
	}
}

// FiltersFromCategories maps a category list to its filter projection.
func FiltersFromCategories(categories []Category) []Filter {
	filters := make([]Filter, len(categories))
	for i, c := range categories {
		filters[i] = c.Filter()
	}
	return filters
}
