package config

import "github.com/ziadkadry99/domain-showcase/internal/catalog"

// Index builds the catalog index for the configured domains. Category
// patterns are expanded here so the index only ever sees literal names.
func (c CatalogConfig) Index() *catalog.Index {
	items := make([]catalog.Item, len(c.Domains))
	for i, d := range c.Domains {
		it := catalog.NewItem(d.Name, i)
		it.Price = d.Price
		it.Description = d.Description
		items[i] = it
	}

	lists := make([]catalog.List, len(c.Categories))
	for i, cat := range c.Categories {
		lists[i] = catalog.List{
			Category: cat.Key,
			Members:  catalog.ExpandPatterns(items, cat.Domains),
		}
	}
	return catalog.Build(items, lists)
}

// Labels maps category keys to their button labels, falling back to the key.
func (c CatalogConfig) Labels() map[string]string {
	out := make(map[string]string, len(c.Categories)+1)
	out[catalog.All] = "All"
	for _, cat := range c.Categories {
		label := cat.Label
		if label == "" {
			label = cat.Key
		}
		out[cat.Key] = label
	}
	return out
}
