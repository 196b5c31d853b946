// Package report prints the controller's current view of the catalog for
// the list command.
package report

import (
	"github.com/ziadkadry99/domain-showcase/internal/browse"
	"github.com/ziadkadry99/domain-showcase/internal/catalog"
)

// Domain is one visible domain.
type Domain struct {
	Name       string
	Display    string
	TLD        string
	NameLength int
	HasDigit   bool
	Price      string
}

// CategoryCount is the number of domains in one category.
type CategoryCount struct {
	Key   string
	Label string
	Count int
}

// Report is a snapshot of one controller state.
type Report struct {
	Category   string
	Label      string
	Page       int
	Revealed   int
	MatchCount int
	HasMore    bool
	Domains    []Domain
	Categories []CategoryCount
}

// New snapshots ctrl. labels maps category keys to display names; price
// fills in domains without a configured price.
func New(index *catalog.Index, ctrl *browse.Controller, labels map[string]string, defaultPrice string) *Report {
	label := func(key string) string {
		if l, ok := labels[key]; ok {
			return l
		}
		return key
	}

	r := &Report{
		Category:   ctrl.ActiveCategory(),
		Label:      label(ctrl.ActiveCategory()),
		Page:       ctrl.Page(),
		Revealed:   ctrl.Revealed(),
		MatchCount: ctrl.MatchCount(),
		HasMore:    ctrl.HasMore(),
	}
	for _, it := range ctrl.VisibleItems() {
		price := it.Price
		if price == "" {
			price = defaultPrice
		}
		r.Domains = append(r.Domains, Domain{
			Name:       it.ID(),
			Display:    it.DisplayName(),
			TLD:        it.TLD(),
			NameLength: it.NameLength(),
			HasDigit:   it.HasDigit(),
			Price:      price,
		})
	}
	for _, key := range index.Categories() {
		r.Categories = append(r.Categories, CategoryCount{Key: key, Label: label(key), Count: index.Count(key)})
	}
	return r
}
