package content

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContent(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	require.NotEmpty(t, c.FAQ)
	assert.Equal(t, "How do I buy a domain?", c.FAQ[0].Question)
	assert.Contains(t, string(c.FAQ[0].Answer), "<strong>Next</strong>")

	require.Len(t, c.Posts, 2)
	// Newest first.
	assert.Equal(t, "2025-06-one-word-names", c.Posts[0].Slug)
	assert.Equal(t, "Why One-Word Domains Hold Their Value", c.Posts[0].Title)
	assert.True(t, strings.HasPrefix(c.Posts[0].Summary, "Dictionary words are finite."))
	assert.NotContains(t, string(c.Posts[0].Body), "<h1")
}

func TestLoadFAQSplitsOnH2(t *testing.T) {
	fsys := fstest.MapFS{
		"faq.md": {Data: []byte("# FAQ\nintro text\n\n## First?\n\nOne.\n\n## Second?\n\nTwo `code`.\n")},
	}
	c, err := Load(fsys)
	require.NoError(t, err)

	require.Len(t, c.FAQ, 2)
	assert.Equal(t, "First?", c.FAQ[0].Question)
	assert.Contains(t, string(c.FAQ[0].Answer), "One.")
	assert.NotContains(t, string(c.FAQ[0].Answer), "intro")
	assert.Contains(t, string(c.FAQ[1].Answer), "<code>code</code>")
	assert.Empty(t, c.Posts)
}

func TestLoadMissingFilesIsEmpty(t *testing.T) {
	c, err := Load(fstest.MapFS{})
	require.NoError(t, err)
	assert.Empty(t, c.FAQ)
	assert.Empty(t, c.Posts)
}

func TestPostTitleFallsBackToSlug(t *testing.T) {
	fsys := fstest.MapFS{
		"blog/untitled.md": {Data: []byte("Just a paragraph.\n")},
	}
	c, err := Load(fsys)
	require.NoError(t, err)

	p, ok := c.Post("untitled")
	require.True(t, ok)
	assert.Equal(t, "untitled", p.Title)
	assert.Equal(t, "Just a paragraph.", p.Summary)

	_, ok = c.Post("missing")
	assert.False(t, ok)
}
