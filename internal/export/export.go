// Package export writes the landing page as a static site: one file per
// category page and blog post, the embedded assets, and a domain index.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/domain-showcase/internal/browse"
	"github.com/ziadkadry99/domain-showcase/internal/catalog"
	"github.com/ziadkadry99/domain-showcase/internal/content"
	"github.com/ziadkadry99/domain-showcase/internal/dialog"
	"github.com/ziadkadry99/domain-showcase/internal/progress"
	"github.com/ziadkadry99/domain-showcase/internal/web"
)

// IndexFile is the JSON list of domains written next to the pages.
const IndexFile = "domains.json"

// ErrUnsafeCategory is returned for a category whose pages would land
// outside the output directory or in the static or blog directories.
var ErrUnsafeCategory = errors.New("category cannot be exported")

// Options configures an export.
type Options struct {
	OutputDir string
	PageSize  int
	// Base is the URL prefix the site is served under. Defaults to "/".
	Base string
	// ContactURL receives the contact form. Defaults to /api/contact.
	ContactURL string
	Workers    int
	Reporter   progress.Reporter
}

// Exporter renders every page of the catalog to disk.
type Exporter struct {
	opts     Options
	index    *catalog.Index
	renderer *web.Renderer
	linker   web.StaticLinker
}

// Result counts what an export wrote.
type Result struct {
	Pages int
	Posts int
}

// job is one HTML file to render.
type job struct {
	file     string
	category string
	pages    int
	post     *content.Post
}

// New creates an Exporter.
func New(index *catalog.Index, renderer *web.Renderer, opts Options) *Exporter {
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.Reporter == nil {
		opts.Reporter = progress.Nop{}
	}
	return &Exporter{
		opts:     opts,
		index:    index,
		renderer: renderer,
		linker:   web.StaticLinker{Base: opts.Base, Contact: opts.ContactURL},
	}
}

// Export writes the site into OutputDir.
func (e *Exporter) Export(ctx context.Context) (Result, error) {
	for _, cat := range e.index.Categories() {
		if err := checkCategory(cat); err != nil {
			return Result{}, err
		}
	}
	jobs, res := e.plan()

	if err := os.MkdirAll(e.opts.OutputDir, 0o755); err != nil {
		return Result{}, err
	}
	if err := e.writeAssets(); err != nil {
		return Result{}, fmt.Errorf("writing assets: %w", err)
	}
	if err := e.writeIndex(); err != nil {
		return Result{}, fmt.Errorf("writing domain index: %w", err)
	}

	e.opts.Reporter.Start(len(jobs))
	defer e.opts.Reporter.Finish()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)
	for _, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := e.render(j); err != nil {
				return fmt.Errorf("rendering %s: %w", j.file, err)
			}
			e.opts.Reporter.Step(j.file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return res, nil
}

// plan lists every file to render. The "all" category is written at the
// root as well as under all/.
func (e *Exporter) plan() ([]job, Result) {
	var (
		jobs []job
		res  Result
	)
	categories := append([]string{catalog.All}, e.index.Categories()...)
	for _, cat := range categories {
		ctrl := browse.New(e.index, e.opts.PageSize)
		ctrl.SetFilter(cat)
		for page := 1; ; page++ {
			jobs = append(jobs, job{file: web.PagePath(cat, page), category: cat, pages: page})
			res.Pages++
			if !ctrl.HasMore() {
				break
			}
			ctrl.LoadMore()
		}
	}
	jobs = append(jobs, job{file: "index.html", category: catalog.All, pages: 1})
	res.Pages++

	for _, p := range e.renderer.Content().Posts {
		jobs = append(jobs, job{file: web.PostPath(p.Slug), category: catalog.All, pages: 1, post: &p})
		res.Posts++
	}
	return jobs, res
}

func (e *Exporter) render(j job) error {
	ctrl := browse.New(e.index, e.opts.PageSize)
	ctrl.Restore(j.category, j.pages)

	req := web.PageRequest{
		Controller: ctrl,
		Dialogs:    dialog.NewSet(e.renderer.Swipe()),
		Linker:     e.linker,
	}
	if j.post != nil {
		req.Post = j.post
		req.Dialogs.Open(dialog.Blog)
	}

	var buf bytes.Buffer
	if err := e.renderer.Render(&buf, e.renderer.View(req)); err != nil {
		return err
	}
	return e.write(j.file, buf.Bytes())
}

// checkCategory rejects keys that do not name a single directory of
// their own below the output root.
func checkCategory(cat string) error {
	switch {
	case cat == "static" || cat == "blog":
		return fmt.Errorf("%w: %q collides with the %s directory", ErrUnsafeCategory, cat, cat)
	case cat == "." || !filepath.IsLocal(cat) || strings.ContainsAny(cat, `/\`):
		return fmt.Errorf("%w: %q is not a plain directory name", ErrUnsafeCategory, cat)
	}
	return nil
}

func (e *Exporter) write(rel string, data []byte) error {
	if !filepath.IsLocal(filepath.FromSlash(rel)) {
		return fmt.Errorf("refusing to write %q outside %s", rel, e.opts.OutputDir)
	}
	out := filepath.Join(e.opts.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	return os.WriteFile(out, data, 0o644)
}

func (e *Exporter) writeAssets() error {
	assets := web.Assets()
	return fs.WalkDir(assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(assets, p)
		if err != nil {
			return err
		}
		return e.write(path.Join("static", p), data)
	})
}

// IndexEntry is one domain in domains.json.
type IndexEntry struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	NextURL     string   `json:"next_url"`
	Categories  []string `json:"categories"`
}

func (e *Exporter) writeIndex() error {
	byDomain := make(map[string][]string)
	for _, cat := range e.index.Categories() {
		for _, it := range e.index.Matches(cat) {
			byDomain[it.ID()] = append(byDomain[it.ID()], cat)
		}
	}

	entries := make([]IndexEntry, 0, e.index.Len())
	for _, it := range e.index.Items() {
		d := e.renderer.Detail(it)
		cats := byDomain[it.ID()]
		if cats == nil {
			cats = []string{}
		}
		entries = append(entries, IndexEntry{
			Name:        d.Name,
			DisplayName: d.Display,
			Price:       d.Price,
			Description: d.Description,
			NextURL:     d.NextURL,
			Categories:  cats,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return e.write(IndexFile, data)
}
