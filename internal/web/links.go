package web

import (
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/ziadkadry99/domain-showcase/internal/catalog"
	"github.com/ziadkadry99/domain-showcase/internal/dialog"
)

// Linker builds the hrefs a page needs. The server links back to itself
// with query parameters; a static export links to pre-rendered files and
// leaves dialogs to the page script.
type Linker interface {
	Filter(category string) string
	More(category string, page int) string
	Dialog(id dialog.ID, key, value string) string
	Close() string
	Asset(name string) string
	ContactAction() string
}

// QueryLinker links to the live server. Category and Pages describe the
// page being rendered so dialog links keep the grid where it was.
type QueryLinker struct {
	Category string
	Pages    int
}

func (l QueryLinker) state() url.Values {
	v := url.Values{}
	if l.Category != "" && l.Category != catalog.All {
		v.Set("category", l.Category)
	}
	if l.Pages > 1 {
		v.Set("pages", strconv.Itoa(l.Pages))
	}
	return v
}

func encode(v url.Values) string {
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

func (l QueryLinker) Filter(category string) string {
	return encode(QueryLinker{Category: category}.state())
}

func (l QueryLinker) More(category string, page int) string {
	return encode(QueryLinker{Category: category, Pages: page}.state()) + "#portfolio-grid"
}

func (l QueryLinker) Dialog(id dialog.ID, key, value string) string {
	v := l.state()
	v.Set("dialog", string(id))
	if key != "" {
		v.Set(key, value)
	}
	return encode(v)
}

func (l QueryLinker) Close() string { return encode(l.state()) }

func (l QueryLinker) Asset(name string) string { return "/static/" + name }

func (l QueryLinker) ContactAction() string { return "/api/contact" }

// StaticLinker links between the files written by the export command.
// Base is the URL prefix the site is published under, e.g. "/".
type StaticLinker struct {
	Base    string
	Contact string
}

func (l StaticLinker) join(elem ...string) string {
	base := l.Base
	if base == "" {
		base = "/"
	}
	return path.Join(append([]string{base}, elem...)...)
}

func (l StaticLinker) dir(elem ...string) string {
	return strings.TrimSuffix(l.join(elem...), "/") + "/"
}

// PagePath is the file, relative to the export root, for a category page.
func PagePath(category string, page int) string {
	if page <= 1 {
		return path.Join(category, "index.html")
	}
	return path.Join(category, "page-"+strconv.Itoa(page)+".html")
}

// PostPath is the file, relative to the export root, for a blog post.
func PostPath(slug string) string {
	return path.Join("blog", slug+".html")
}

func (l StaticLinker) Filter(category string) string {
	if category == catalog.All {
		return l.dir()
	}
	return l.dir(url.PathEscape(category))
}

func (l StaticLinker) More(category string, page int) string {
	return l.join(PagePath(url.PathEscape(category), page)) + "#portfolio-grid"
}

func (l StaticLinker) Dialog(id dialog.ID, key, value string) string {
	if id == dialog.Blog && key == "post" {
		return l.join(PostPath(value))
	}
	if key == "faq" {
		return "#faq-" + value
	}
	return "#" + string(id)
}

func (l StaticLinker) Close() string { return "#" }

func (l StaticLinker) Asset(name string) string { return l.join("static", name) }

func (l StaticLinker) ContactAction() string {
	if l.Contact != "" {
		return l.Contact
	}
	return "/api/contact"
}
