// Package content loads the FAQ and blog posts shown in the page dialogs.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

//go:embed defaults
var defaults embed.FS

const (
	faqFile = "faq.md"
	blogDir = "blog"
)

// FAQEntry is one question with its rendered answer.
type FAQEntry struct {
	Question string
	Answer   template.HTML
}

// Post is one rendered blog post.
type Post struct {
	Slug    string
	Title   string
	Summary string
	Body    template.HTML
}

// Content is the rendered FAQ and blog.
type Content struct {
	FAQ   []FAQEntry
	Posts []Post
}

// Default loads the embedded FAQ and posts.
func Default() (*Content, error) {
	sub, err := fs.Sub(defaults, "defaults")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// Load reads faq.md and blog/*.md from fsys. Both are optional. Posts are
// ordered newest first by file name.
func Load(fsys fs.FS) (*Content, error) {
	md := newMarkdown()
	c := &Content{}

	data, err := fs.ReadFile(fsys, faqFile)
	switch {
	case err == nil:
		c.FAQ, err = parseFAQ(md, data)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", faqFile, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("reading %s: %w", faqFile, err)
	}

	names, err := fs.Glob(fsys, blogDir+"/*.md")
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		p, err := parsePost(md, name, data)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", name, err)
		}
		c.Posts = append(c.Posts, p)
	}

	return c, nil
}

// Post finds a post by slug.
func (c *Content) Post(slug string) (Post, bool) {
	for _, p := range c.Posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return Post{}, false
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

func render(md goldmark.Markdown, src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// parseFAQ treats every "## " heading as a question and the text up to
// the next one as its answer. Anything before the first question is dropped.
func parseFAQ(md goldmark.Markdown, data []byte) ([]FAQEntry, error) {
	var (
		entries  []FAQEntry
		question string
		body     []string
	)
	flush := func() error {
		if question == "" {
			return nil
		}
		answer, err := render(md, strings.Join(body, "\n"))
		if err != nil {
			return err
		}
		entries = append(entries, FAQEntry{Question: question, Answer: answer})
		return nil
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "## ") {
			if err := flush(); err != nil {
				return nil, err
			}
			question = strings.TrimSpace(strings.TrimPrefix(line, "## "))
			body = body[:0]
			continue
		}
		if question != "" {
			body = append(body, line)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return entries, nil
}

func parsePost(md goldmark.Markdown, name string, data []byte) (Post, error) {
	src := string(data)
	slug := strings.TrimSuffix(path.Base(name), ".md")
	p := Post{Slug: slug, Title: extractTitle(src, slug), Summary: extractSummary(src)}

	body, err := render(md, stripTitle(src))
	if err != nil {
		return Post{}, err
	}
	p.Body = body
	return p, nil
}

// extractTitle pulls the first # heading from markdown content, or falls back to the slug.
func extractTitle(content, slug string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return slug
}

// extractSummary returns the first paragraph as plain text.
func extractSummary(content string) string {
	var para []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "#"):
			if len(para) > 0 {
				return strings.Join(para, " ")
			}
		case line == "":
			if len(para) > 0 {
				return strings.Join(para, " ")
			}
		default:
			para = append(para, line)
		}
	}
	return strings.Join(para, " ")
}

// stripTitle removes the first # heading; the dialog renders it separately.
func stripTitle(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "# ") {
			return strings.Join(append(lines[:i:i], lines[i+1:]...), "\n")
		}
	}
	return content
}
