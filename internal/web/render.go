package web

import (
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/ziadkadry99/domain-showcase/internal/browse"
	"github.com/ziadkadry99/domain-showcase/internal/catalog"
	"github.com/ziadkadry99/domain-showcase/internal/config"
	"github.com/ziadkadry99/domain-showcase/internal/content"
	"github.com/ziadkadry99/domain-showcase/internal/dialog"
)

// Renderer turns controller state into the landing page. It is safe for
// concurrent use; the per-page state lives in PageRequest.
type Renderer struct {
	tmpl    *template.Template
	site    config.SiteConfig
	index   *catalog.Index
	labels  map[string]string
	content *content.Content
	swipe   dialog.Swipe
}

// NewRenderer parses the page template.
func NewRenderer(site config.SiteConfig, index *catalog.Index, labels map[string]string, c *content.Content) (*Renderer, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	if c == nil {
		c = &content.Content{}
	}
	return &Renderer{
		tmpl:    tmpl,
		site:    site,
		index:   index,
		labels:  labels,
		content: c,
		swipe:   dialog.DefaultSwipe(),
	}, nil
}

// Content returns the FAQ and posts the renderer shows.
func (r *Renderer) Content() *content.Content { return r.content }

// Swipe returns the gesture parameters written into the page.
func (r *Renderer) Swipe() dialog.Swipe { return r.swipe }

// Detail builds the domain dialog for it.
func (r *Renderer) Detail(it catalog.Item) dialog.Detail {
	return dialog.NewDetail(it, r.site.DefaultPrice, r.site.RegistrarLink)
}

// PageRequest is everything that varies between two renders of the page.
type PageRequest struct {
	Controller   *browse.Controller
	Dialogs      *dialog.Set
	Detail       *dialog.Detail
	FAQ          *dialog.Accordion
	Post         *content.Post
	ContactSent  bool
	ContactError string
	Linker       Linker
}

// PageView is the template data for one page.
type PageView struct {
	Site        config.SiteConfig
	Filters     []FilterButton
	Cards       []CardView
	Category    string
	Label       string
	Page        int
	Revealed    int
	MatchCount  int
	HasMore     bool
	MoreHref    string
	Dialog      string
	CloseHref   string
	Detail      *dialog.Detail
	FAQ         []FAQView
	FAQHref     string
	Posts       []PostView
	Post        *content.Post
	BlogHref    string
	ContactHref string
	Contact     ContactView
	Swipe       SwipeView
	StyleHref   string
	ScriptHref  string
}

// FilterButton is one category button.
type FilterButton struct {
	Key    string
	Label  string
	Href   string
	Count  int
	Active bool
}

// CardView is one domain card.
type CardView struct {
	ID          string
	Display     string
	TLD         string
	Price       string
	Description string
	Href        string
	Visible     bool
}

// FAQView is one accordion entry.
type FAQView struct {
	Index    int
	Question string
	Answer   template.HTML
	Open     bool
	Href     string
}

// PostView is one blog post in the blog dialog list.
type PostView struct {
	Slug    string
	Title   string
	Summary string
	Href    string
}

// ContactView is the contact form state.
type ContactView struct {
	Action string
	Sent   bool
	Error  string
}

// SwipeView carries the gesture parameters into data attributes.
type SwipeView struct {
	Threshold  string
	TopSlack   string
	Breakpoint int
	CloseDelay int64
}

// View assembles the template data for req.
func (r *Renderer) View(req PageRequest) PageView {
	ctrl := req.Controller
	links := req.Linker
	active := ctrl.ActiveCategory()

	v := PageView{
		Site:       r.site,
		Category:   active,
		Label:      r.label(active),
		Page:       ctrl.Page(),
		Revealed:   ctrl.Revealed(),
		MatchCount: ctrl.MatchCount(),
		HasMore:    ctrl.HasMore(),
		CloseHref:  links.Close(),
		FAQHref:    links.Dialog(dialog.FAQ, "", ""),
		BlogHref:   links.Dialog(dialog.Blog, "", ""),
		Detail:     req.Detail,
		Post:       req.Post,
		Contact: ContactView{
			Action: links.ContactAction(),
			Sent:   req.ContactSent,
			Error:  req.ContactError,
		},
		ContactHref: links.Dialog(dialog.Contact, "", ""),
		Swipe: SwipeView{
			Threshold:  strconv.FormatFloat(r.swipe.Threshold, 'f', -1, 64),
			TopSlack:   strconv.FormatFloat(r.swipe.TopSlack, 'f', -1, 64),
			Breakpoint: r.swipe.Breakpoint,
			CloseDelay: r.swipe.CloseDelay.Milliseconds(),
		},
		StyleHref:  links.Asset("style.css"),
		ScriptHref: links.Asset("app.js"),
	}
	if v.HasMore {
		v.MoreHref = links.More(active, ctrl.Page()+1)
	}

	for _, key := range append([]string{catalog.All}, r.index.Categories()...) {
		v.Filters = append(v.Filters, FilterButton{
			Key:    key,
			Label:  r.label(key),
			Href:   links.Filter(key),
			Count:  r.index.Count(key),
			Active: key == active,
		})
	}

	for _, card := range ctrl.Cards() {
		price := card.Price
		if price == "" {
			price = r.site.DefaultPrice
		}
		v.Cards = append(v.Cards, CardView{
			ID:          card.ID(),
			Display:     card.DisplayName(),
			TLD:         card.TLD(),
			Price:       price,
			Description: card.Description,
			Href:        links.Dialog(dialog.Domain, "domain", card.ID()),
			Visible:     card.Visible,
		})
	}

	for i, e := range r.content.FAQ {
		fv := FAQView{Index: i, Question: e.Question, Answer: e.Answer}
		if req.FAQ != nil && req.FAQ.IsOpen(i) {
			fv.Open = true
			fv.Href = links.Dialog(dialog.FAQ, "", "")
		} else {
			fv.Href = links.Dialog(dialog.FAQ, "faq", strconv.Itoa(i))
		}
		v.FAQ = append(v.FAQ, fv)
	}

	for _, p := range r.content.Posts {
		v.Posts = append(v.Posts, PostView{
			Slug:    p.Slug,
			Title:   p.Title,
			Summary: p.Summary,
			Href:    links.Dialog(dialog.Blog, "post", p.Slug),
		})
	}

	if req.Dialogs != nil {
		if id, ok := req.Dialogs.Active(); ok {
			v.Dialog = string(id)
		}
	}
	return v
}

// Render executes the page template.
func (r *Renderer) Render(w io.Writer, v PageView) error {
	return r.tmpl.Execute(w, v)
}

func (r *Renderer) label(key string) string {
	if l, ok := r.labels[key]; ok {
		return l
	}
	return key
}
