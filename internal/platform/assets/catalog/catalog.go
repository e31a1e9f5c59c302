package catalog

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/louisbranch/avatars/internal/platform/pagination"
	"golang.org/x/text/cases"
)

var (
	// ErrCatalogEmpty reports a query against a catalog with no descriptors.
	ErrCatalogEmpty = errors.New("avatar catalog is empty")
)

var pageSizeConfig = pagination.PageSizeConfig{Default: 48, Max: 200}

// Catalog is an ordered, read-only collection of avatar descriptors.
//
// The zero value is an empty catalog. A Catalog is never mutated after New
// returns, so it is safe for concurrent use.
type Catalog struct {
	descriptors []Descriptor
	byID        map[string]int
}

// Page is one slice of a catalog query.
type Page struct {
	Descriptors   []Descriptor
	NextPageToken string
	TotalSize     int
}

// New indexes descriptors in the given order.
func New(descriptors []Descriptor) *Catalog {
	c := &Catalog{
		descriptors: append([]Descriptor(nil), descriptors...),
		byID:        make(map[string]int, len(descriptors)),
	}
	for i, d := range c.descriptors {
		if _, ok := c.byID[d.ID]; ok {
			continue
		}
		c.byID[d.ID] = i
	}
	return c
}

// Len reports how many descriptors the catalog holds.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.descriptors)
}

// List returns every descriptor in catalog order.
func (c *Catalog) List() []Descriptor {
	if c == nil {
		return []Descriptor{}
	}
	return append([]Descriptor(nil), c.descriptors...)
}

// Lookup returns the descriptor with the given id.
func (c *Catalog) Lookup(id string) (Descriptor, bool) {
	if c == nil {
		return Descriptor{}, false
	}
	idx, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return Descriptor{}, false
	}
	return c.descriptors[idx], true
}

// FilterByLabel returns descriptors whose label contains substr, ignoring
// case. An empty substr matches everything.
func (c *Catalog) FilterByLabel(substr string) []Descriptor {
	if c == nil {
		return []Descriptor{}
	}
	needle := strings.TrimSpace(substr)
	if needle == "" {
		return c.List()
	}
	fold := cases.Fold()
	needle = fold.String(needle)
	out := []Descriptor{}
	for _, d := range c.descriptors {
		if strings.Contains(fold.String(d.Label), needle) {
			out = append(out, d)
		}
	}
	return out
}

// PickRandom returns one descriptor chosen with r, or with the shared source
// when r is nil.
func (c *Catalog) PickRandom(r *rand.Rand) (Descriptor, error) {
	if c.Len() == 0 {
		return Descriptor{}, ErrCatalogEmpty
	}
	var idx int
	if r == nil {
		idx = rand.Intn(len(c.descriptors))
	} else {
		idx = r.Intn(len(c.descriptors))
	}
	return c.descriptors[idx], nil
}

// Page returns one page of FilterByLabel(query) results.
func (c *Catalog) Page(query string, pageSize int, pageToken string) (Page, error) {
	token, err := pagination.ParsePageToken(pageToken, strings.TrimSpace(query))
	if err != nil {
		return Page{}, err
	}
	matches := c.FilterByLabel(query)
	size := pagination.ClampPageSize(pageSize, pageSizeConfig)
	start := min(token.Offset, len(matches))
	end := min(start+size, len(matches))
	return Page{
		Descriptors:   matches[start:end],
		NextPageToken: token.Next(size, len(matches)),
		TotalSize:     len(matches),
	}, nil
}
