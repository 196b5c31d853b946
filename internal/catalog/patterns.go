package catalog

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ExpandPatterns resolves category entries against the item identifiers.
// Literal entries pass through lowercased; entries containing glob syntax
// (for example "*.info" or "{ai,bot}*.*") are replaced by every matching
// identifier, in the order of items. The result has no duplicates.
func ExpandPatterns(items []Item, entries []string) []string {
	seen := make(map[string]bool, len(entries))
	var out []string
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	for _, entry := range entries {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		if !isPattern(entry) {
			add(entry)
			continue
		}
		for _, it := range items {
			if ok, err := doublestar.Match(entry, it.id); err == nil && ok {
				add(it.id)
			}
		}
	}
	return out
}

func isPattern(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}
