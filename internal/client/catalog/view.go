// Package catalog derives the filtered, sorted, paginated slice of the
// product catalog that the client displays.
package catalog

import (
	"sort"
	"strings"

	"github.com/avdeenkov/shopview/internal/models"
)

// SortDirection selects the price ordering of the derived view.
type SortDirection string

const (
	// Ascending orders products from cheapest to most expensive.
	Ascending SortDirection = "asc"
	// Descending orders products from most expensive to cheapest.
	Descending SortDirection = "desc"
)

// DefaultPageSize is the number of products shown per page.
const DefaultPageSize = 5

// View holds the full product set together with the query, sort and page
// state, and computes the visible page on demand. The derived page is never
// stored; every call to ComputeView recomputes it from the full set.
type View struct {
	items    []models.Product
	query    string
	sortDir  SortDirection
	page     int
	pageSize int
}

// New returns an empty View sorted ascending on page 1. A pageSize < 1
// falls back to DefaultPageSize; the page size is fixed for the lifetime
// of the View.
func New(pageSize int) *View {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &View{
		sortDir:  Ascending,
		page:     1,
		pageSize: pageSize,
	}
}

// SetCatalog replaces the full product set. Query, sort and page state are
// left untouched.
func (v *View) SetCatalog(items []models.Product) {
	v.items = items
}

// SetQuery updates the free-text filter. It does not reset the page number;
// callers that want the search-button behavior call SetPage(1) alongside.
func (v *View) SetQuery(text string) {
	v.query = text
}

// Query returns the current free-text filter.
func (v *View) Query() string {
	return v.query
}

// SetSortDirection sets the price ordering. Unknown values are ignored.
func (v *View) SetSortDirection(dir SortDirection) {
	if dir == Ascending || dir == Descending {
		v.sortDir = dir
	}
}

// SortDirection returns the current price ordering.
func (v *View) SortDirection() SortDirection {
	return v.sortDir
}

// ToggleSortDirection flips between ascending and descending.
func (v *View) ToggleSortDirection() {
	if v.sortDir == Ascending {
		v.sortDir = Descending
	} else {
		v.sortDir = Ascending
	}
}

// SetPage sets the current page number. Values below 1 are ignored. No upper
// bound is enforced; a page past the filtered set yields an empty view.
func (v *View) SetPage(n int) {
	if n >= 1 {
		v.page = n
	}
}

// Page returns the current page number.
func (v *View) Page() int {
	return v.page
}

// PageSize returns the fixed number of products per page.
func (v *View) PageSize() int {
	return v.pageSize
}

// filtered returns the products matching the current query. An empty query
// matches everything; otherwise the query must appear case-insensitively in
// the title or the description.
func (v *View) filtered() []models.Product {
	if v.query == "" {
		return v.items
	}
	q := strings.ToLower(v.query)
	var out []models.Product
	for _, p := range v.items {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

// ComputeView returns the page window of the filtered set, stable-sorted by
// price in the configured direction. It returns an empty slice when the
// window starts past the filtered set. The result is recomputed from the
// full set on every call.
func (v *View) ComputeView() []models.Product {
	src := v.filtered()

	sorted := make([]models.Product, len(src))
	copy(sorted, src)
	sort.SliceStable(sorted, func(i, j int) bool {
		if v.sortDir == Descending {
			return sorted[i].Price > sorted[j].Price
		}
		return sorted[i].Price < sorted[j].Price
	})

	start := (v.page - 1) * v.pageSize
	if start >= len(sorted) {
		return []models.Product{}
	}
	end := start + v.pageSize
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[start:end]
}

// PageCount returns the number of pages the filtered set occupies, zero for
// an empty filtered set.
func (v *View) PageCount() int {
	n := len(v.filtered())
	return (n + v.pageSize - 1) / v.pageSize
}
