package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/domain-showcase/internal/catalog"
	"github.com/ziadkadry99/domain-showcase/internal/config"
	"github.com/ziadkadry99/domain-showcase/internal/content"
	"github.com/ziadkadry99/domain-showcase/internal/web"
)

func newExporter(t *testing.T, dir string) *Exporter {
	t.Helper()

	var items []catalog.Item
	for i, id := range []string{"a.com", "b.com", "c.com", "d.io", "e.io"} {
		items = append(items, catalog.NewItem(id, i))
	}
	idx := catalog.Build(items, []catalog.List{
		{Category: "Tech", Members: []string{"a.com", "b.com", "c.com"}},
		{Category: "Empty", Members: []string{"missing.net"}},
	})

	c, err := content.Load(fstest.MapFS{
		"blog/2025-02-hello.md": {Data: []byte("# Hello\n\nWelcome.\n")},
	})
	require.NoError(t, err)

	r, err := web.NewRenderer(config.DefaultConfig().Site, idx, nil, c)
	require.NoError(t, err)

	return New(idx, r, Options{OutputDir: dir, PageSize: 2, Workers: 2})
}

func TestExportWritesEveryPage(t *testing.T) {
	dir := t.TempDir()
	res, err := newExporter(t, dir).Export(context.Background())
	require.NoError(t, err)

	// all: 3 pages, Tech: 2, Empty: 1, root index: 1.
	assert.Equal(t, 7, res.Pages)
	assert.Equal(t, 1, res.Posts)

	for _, f := range []string{
		"index.html",
		"all/index.html",
		"all/page-2.html",
		"all/page-3.html",
		"Tech/index.html",
		"Tech/page-2.html",
		"Empty/index.html",
		"blog/2025-02-hello.html",
		"static/app.js",
		"static/style.css",
		IndexFile,
	} {
		assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(f)))
	}
	assert.NoFileExists(t, filepath.Join(dir, "Tech", "page-3.html"))
}

func TestExportPagesLinkToNextPage(t *testing.T) {
	dir := t.TempDir()
	_, err := newExporter(t, dir).Export(context.Background())
	require.NoError(t, err)

	first, err := os.ReadFile(filepath.Join(dir, "Tech", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(first), `href="/Tech/page-2.html#portfolio-grid"`)
	assert.Contains(t, string(first), "Showing 2 of 3 in Tech")

	last, err := os.ReadFile(filepath.Join(dir, "Tech", "page-2.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(last), `id="load-more-btn"`)
	assert.Contains(t, string(last), "Showing 3 of 3 in Tech")

	post, err := os.ReadFile(filepath.Join(dir, "blog", "2025-02-hello.html"))
	require.NoError(t, err)
	assert.Contains(t, string(post), `<dialog id="blog" class="modal" open>`)
	assert.Contains(t, string(post), "Welcome.")
}

func TestExportDomainIndex(t *testing.T) {
	dir := t.TempDir()
	_, err := newExporter(t, dir).Export(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, IndexFile))
	require.NoError(t, err)

	var entries []IndexEntry
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 5)
	assert.Equal(t, "a.com", entries[0].Name)
	assert.Equal(t, []string{"Tech"}, entries[0].Categories)
	assert.Equal(t, []string{}, entries[4].Categories)
	assert.True(t, strings.Contains(entries[0].NextURL, "query=a.com"))
}

func TestExportCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newExporter(t, t.TempDir()).Export(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExportRejectsUnsafeCategories(t *testing.T) {
	for _, key := range []string{"../escaped", "a/b", ".", "static", "blog"} {
		t.Run(key, func(t *testing.T) {
			root := t.TempDir()
			out := filepath.Join(root, "site")

			idx := catalog.Build([]catalog.Item{catalog.NewItem("a.com", 0)}, []catalog.List{
				{Category: key, Members: []string{"a.com"}},
			})
			r, err := web.NewRenderer(config.DefaultConfig().Site, idx, nil, &content.Content{})
			require.NoError(t, err)

			_, err = New(idx, r, Options{OutputDir: out, PageSize: 2}).Export(context.Background())
			assert.ErrorIs(t, err, ErrUnsafeCategory)
			assert.NoFileExists(t, filepath.Join(root, "escaped", "index.html"))
			assert.NoDirExists(t, out)
		})
	}
}

func TestWriteRefusesPathsOutsideOutput(t *testing.T) {
	root := t.TempDir()
	e := &Exporter{opts: Options{OutputDir: filepath.Join(root, "site")}}

	assert.Error(t, e.write("../outside.html", []byte("x")))
	assert.NoFileExists(t, filepath.Join(root, "outside.html"))
	assert.NoError(t, e.write("inside/page.html", []byte("x")))
	assert.FileExists(t, filepath.Join(root, "site", "inside", "page.html"))
}
