package catalog

import "sort"

// All is the sentinel category that matches every item.
const All = "all"

// List is one named category and the identifiers that belong to it.
// Membership only; order always comes from Item.Order.
type List struct {
	Category string
	Members  []string
}

// Index answers, for a category name, which items belong to it in
// display order. An Index is immutable after Build and safe to share.
type Index struct {
	items      []Item
	byID       map[string]int
	sets       map[string]map[string]struct{}
	categories []string
}

// Build indexes items against the given category lists. Items are ordered
// by Order; a repeated identifier keeps its first occurrence. Lists that
// share a category name are merged. Members not present among items are
// kept but can never match.
func Build(items []Item, lists []List) *Index {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].order < sorted[j].order })

	idx := &Index{
		items: make([]Item, 0, len(sorted)),
		byID:  make(map[string]int, len(sorted)),
		sets:  make(map[string]map[string]struct{}, len(lists)),
	}
	for _, it := range sorted {
		if _, dup := idx.byID[it.id]; dup {
			continue
		}
		idx.byID[it.id] = len(idx.items)
		idx.items = append(idx.items, it)
	}

	for _, l := range lists {
		set, ok := idx.sets[l.Category]
		if !ok {
			set = make(map[string]struct{}, len(l.Members))
			idx.sets[l.Category] = set
			idx.categories = append(idx.categories, l.Category)
		}
		for _, m := range l.Members {
			set[NewItem(m, 0).id] = struct{}{}
		}
	}
	return idx
}

// Matches returns the items in category, in display order. "all" matches
// every item; a category the index does not know matches nothing.
func (x *Index) Matches(category string) []Item {
	if category == All {
		out := make([]Item, len(x.items))
		copy(out, x.items)
		return out
	}
	set, ok := x.sets[category]
	if !ok {
		return nil
	}
	var out []Item
	for _, it := range x.items {
		if _, in := set[it.id]; in {
			out = append(out, it)
		}
	}
	return out
}

// Count returns len(Matches(category)) without allocating the result.
func (x *Index) Count(category string) int {
	if category == All {
		return len(x.items)
	}
	set, ok := x.sets[category]
	if !ok {
		return 0
	}
	n := 0
	for _, it := range x.items {
		if _, in := set[it.id]; in {
			n++
		}
	}
	return n
}

// Has reports whether category is "all" or one of the indexed lists.
func (x *Index) Has(category string) bool {
	if category == All {
		return true
	}
	_, ok := x.sets[category]
	return ok
}

// Categories returns the indexed category names in the order they were
// first given to Build. "all" is not included.
func (x *Index) Categories() []string {
	return append([]string(nil), x.categories...)
}

// Items returns every item in display order.
func (x *Index) Items() []Item {
	return x.Matches(All)
}

// Lookup finds an item by identifier, case-insensitively.
func (x *Index) Lookup(identifier string) (Item, bool) {
	i, ok := x.byID[NewItem(identifier, 0).id]
	if !ok {
		return Item{}, false
	}
	return x.items[i], true
}

// Len is the number of indexed items.
func (x *Index) Len() int { return len(x.items) }
