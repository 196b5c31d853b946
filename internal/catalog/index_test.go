package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID()
	}
	return out
}

func sampleIndex() *Index {
	items := []Item{
		NewItem("e", 5),
		NewItem("a", 1),
		NewItem("c", 3),
		NewItem("b", 2),
		NewItem("d", 4),
	}
	return Build(items, []List{
		{Category: "Tech", Members: []string{"e", "d", "b", "a"}},
		{Category: "AI", Members: []string{"c", "ghost.io"}},
	})
}

func TestMatchesOrdersByDisplayOrder(t *testing.T) {
	idx := sampleIndex()

	assert.Equal(t, []string{"a", "b", "d", "e"}, ids(idx.Matches("Tech")))
	assert.Equal(t, []string{"c"}, ids(idx.Matches("AI")))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(idx.Matches(All)))
}

func TestMatchesUnknownCategory(t *testing.T) {
	idx := sampleIndex()

	assert.Empty(t, idx.Matches("unknown-category"))
	assert.Equal(t, 0, idx.Count("unknown-category"))
	assert.False(t, idx.Has("unknown-category"))
	assert.True(t, idx.Has(All))
}

func TestMatchesIsIdempotent(t *testing.T) {
	idx := sampleIndex()
	first := ids(idx.Matches("Tech"))
	second := ids(idx.Matches("Tech"))
	assert.Equal(t, first, second)

	// Mutating a result must not leak into the index.
	got := idx.Matches(All)
	got[0] = NewItem("zzz", 0)
	assert.Equal(t, "a", idx.Matches(All)[0].ID())
}

func TestMatchesSortedAndUnique(t *testing.T) {
	items := []Item{NewItem("x.com", 2), NewItem("y.com", 1), NewItem("X.com", 3)}
	idx := Build(items, []List{
		{Category: "Dup", Members: []string{"x.com", "X.COM", "y.com"}},
		{Category: "Dup", Members: []string{"y.com"}},
	})

	for _, c := range append(idx.Categories(), All) {
		got := idx.Matches(c)
		seen := map[string]bool{}
		for i, it := range got {
			require.False(t, seen[it.ID()], "duplicate %s in %s", it.ID(), c)
			seen[it.ID()] = true
			if i > 0 {
				assert.Less(t, got[i-1].Order(), it.Order())
			}
		}
	}
	assert.Equal(t, []string{"y.com", "x.com"}, ids(idx.Matches("Dup")))
	assert.Equal(t, []string{"Dup"}, idx.Categories())
	assert.Equal(t, 2, idx.Len())
}

func TestCountAgreesWithMatches(t *testing.T) {
	idx := sampleIndex()
	for _, c := range []string{All, "Tech", "AI", "nope"} {
		assert.Equal(t, len(idx.Matches(c)), idx.Count(c), c)
	}
}

func TestLookup(t *testing.T) {
	idx := Build([]Item{NewItem("fuzz.chat", 0)}, nil)

	it, ok := idx.Lookup("FUZZ.chat")
	require.True(t, ok)
	assert.Equal(t, "fuzz.chat", it.ID())

	_, ok = idx.Lookup("missing.chat")
	assert.False(t, ok)
}

func TestCategoriesKeepsBuildOrder(t *testing.T) {
	idx := Build(nil, []List{{Category: "curated"}, {Category: "Tech"}, {Category: "AI"}})
	assert.Equal(t, []string{"curated", "Tech", "AI"}, idx.Categories())
}
