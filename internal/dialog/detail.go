package dialog

import "github.com/ziadkadry99/domain-showcase/internal/catalog"

// NoDescription is shown when a domain has no description.
const NoDescription = "No detailed description available."

// Detail is the content of the domain dialog.
type Detail struct {
	Name        string `json:"name"`
	Display     string `json:"display_name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	NextURL     string `json:"next_url"`
}

// NewDetail fills a Detail for it. link builds the purchase URL.
func NewDetail(it catalog.Item, defaultPrice string, link func(string) string) Detail {
	d := Detail{
		Name:        it.ID(),
		Display:     it.DisplayName(),
		Price:       it.Price,
		Description: it.Description,
	}
	if d.Price == "" {
		d.Price = defaultPrice
	}
	if d.Description == "" {
		d.Description = NoDescription
	}
	if link != nil {
		d.NextURL = link(it.ID())
	}
	return d
}
