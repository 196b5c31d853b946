// Package browse holds the filter and pagination state behind the card grid.
package browse

import (
	"github.com/ziadkadry99/domain-showcase/internal/catalog"
)

// DefaultPageSize is used when New is given a non-positive page size.
const DefaultPageSize = 9

// Card is an item paired with its current visibility.
type Card struct {
	catalog.Item
	Visible bool
}

// Controller owns the active category and how many of its matches are
// revealed. It is not safe for concurrent use; give each request or
// session its own Controller.
type Controller struct {
	index    *catalog.Index
	pageSize int

	category string
	matches  []catalog.Item
	revealed int
	visible  map[string]bool
}

// New returns a Controller showing the first page of "all".
func New(index *catalog.Index, pageSize int) *Controller {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	c := &Controller{index: index, pageSize: pageSize}
	c.SetFilter(catalog.All)
	return c
}

// SetFilter makes category active and reveals its first page. Every item
// outside that page is hidden, including items shown by a previous
// category. An unknown category hides everything.
func (c *Controller) SetFilter(category string) {
	c.category = category
	c.matches = c.index.Matches(category)
	c.revealed = min(c.pageSize, len(c.matches))
	c.visible = make(map[string]bool, c.revealed)
	for _, it := range c.matches[:c.revealed] {
		c.visible[it.ID()] = true
	}
}

// LoadMore reveals the next page of the active category. Items already
// visible stay visible. It does nothing once every match is shown.
func (c *Controller) LoadMore() {
	if c.revealed >= len(c.matches) {
		return
	}
	next := min(c.revealed+c.pageSize, len(c.matches))
	for _, it := range c.matches[c.revealed:next] {
		c.visible[it.ID()] = true
	}
	c.revealed = next
}

// HasMore reports whether LoadMore would reveal anything.
func (c *Controller) HasMore() bool {
	return c.revealed < len(c.matches)
}

// Restore rebuilds the state reached by SetFilter(category) followed by
// pages-1 calls to LoadMore. Pages below 1 count as 1.
func (c *Controller) Restore(category string, pages int) {
	c.SetFilter(category)
	for i := 1; i < pages && c.HasMore(); i++ {
		c.LoadMore()
	}
}

// ActiveCategory is the category last passed to SetFilter.
func (c *Controller) ActiveCategory() string { return c.category }

// Revealed is the number of matches currently visible.
func (c *Controller) Revealed() int { return c.revealed }

// MatchCount is the number of items in the active category.
func (c *Controller) MatchCount() int { return len(c.matches) }

// PageSize is the number of items each LoadMore reveals.
func (c *Controller) PageSize() int { return c.pageSize }

// Page is the number of pages revealed so far, at least 1.
func (c *Controller) Page() int {
	if c.revealed == 0 {
		return 1
	}
	return (c.revealed + c.pageSize - 1) / c.pageSize
}

// Visible reports whether the item with the given identifier is shown.
func (c *Controller) Visible(identifier string) bool {
	it, ok := c.index.Lookup(identifier)
	return ok && c.visible[it.ID()]
}

// VisibleItems returns the shown items in display order.
func (c *Controller) VisibleItems() []catalog.Item {
	return append([]catalog.Item(nil), c.matches[:c.revealed]...)
}

// Cards returns every indexed item with its visibility, in display order.
func (c *Controller) Cards() []Card {
	items := c.index.Items()
	out := make([]Card, len(items))
	for i, it := range items {
		out[i] = Card{Item: it, Visible: c.visible[it.ID()]}
	}
	return out
}
