package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/domain-showcase/internal/browse"
	"github.com/ziadkadry99/domain-showcase/internal/catalog"
	"github.com/ziadkadry99/domain-showcase/internal/contact"
	"github.com/ziadkadry99/domain-showcase/internal/dialog"
)

// maxPages bounds ?pages= so a crafted URL cannot loop for long.
const maxPages = 1000

// parseGrid reads category and pages from q, defaulting to the first
// page of "all" and clamping pages to 1..maxPages.
func parseGrid(q url.Values) (string, int) {
	category := q.Get("category")
	if category == "" {
		category = catalog.All
	}
	pages, err := strconv.Atoi(q.Get("pages"))
	if err != nil || pages < 1 {
		pages = 1
	}
	return category, min(pages, maxPages)
}

// gridState reads ?category= and ?pages= and restores a controller to it.
// The page returned, and the one recorded in metrics, is the page actually
// reached, which is less than the requested one past the last match.
func (s *Server) gridState(q url.Values) (*browse.Controller, int) {
	category, pages := parseGrid(q)

	ctrl := browse.New(s.deps.Index, s.cfg.PageSize)
	ctrl.Restore(category, pages)
	if s.deps.Metrics != nil {
		s.deps.Metrics.ObserveView(category, s.deps.Index.Has(category), ctrl.Page())
	}
	return ctrl, ctrl.Page()
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()
	ctrl, page := s.gridState(q)

	req := PageRequest{
		Controller:   ctrl,
		Dialogs:      dialog.NewSet(s.deps.Renderer.Swipe()),
		Linker:       QueryLinker{Category: ctrl.ActiveCategory(), Pages: page},
		ContactSent:  q.Get("sent") == "1",
		ContactError: q.Get("error"),
	}

	if id, ok := dialog.Parse(q.Get("dialog")); ok {
		switch id {
		case dialog.Domain:
			if it, found := s.deps.Index.Lookup(q.Get("domain")); found {
				d := s.deps.Renderer.Detail(it)
				req.Detail = &d
				req.Dialogs.Open(id)
			}
		case dialog.FAQ:
			acc := dialog.NewAccordion(len(s.deps.Renderer.Content().FAQ))
			if i, err := strconv.Atoi(q.Get("faq")); err == nil {
				acc.Toggle(i)
			}
			req.FAQ = acc
			req.Dialogs.Open(id)
		case dialog.Blog:
			if p, found := s.deps.Renderer.Content().Post(q.Get("post")); found {
				req.Post = &p
			}
			req.Dialogs.Open(id)
		default:
			req.Dialogs.Open(id)
		}
	}

	var buf bytes.Buffer
	if err := s.deps.Renderer.Render(&buf, s.deps.Renderer.View(req)); err != nil {
		s.logger.Error("rendering page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if s.deps.Metrics != nil {
		s.deps.Metrics.ObserveRender(start)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleRedirect(w http.ResponseWriter, r *http.Request) {
	it, ok := s.deps.Index.Lookup(chi.URLParam(r, "name"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, s.deps.Renderer.Detail(it).NextURL, http.StatusFound)
}

// contactRequest is the body of POST /api/contact.
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Domain  string `json:"domain"`
	Message string `json:"message"`
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	isJSON := mediaType == "application/json"

	var req contactRequest
	if isJSON {
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
	} else {
		r.Body = http.MaxBytesReader(w, r.Body, 64<<10)
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		req = contactRequest{
			Name:    r.PostForm.Get("name"),
			Email:   r.PostForm.Get("email"),
			Domain:  r.PostForm.Get("domain"),
			Message: r.PostForm.Get("message"),
		}
	}

	id, err := s.deps.Inbox.Submit(r.Context(), contact.Message{
		Name:   req.Name,
		Email:  req.Email,
		Domain: req.Domain,
		Body:   req.Message,
	})

	status, result := http.StatusCreated, "accepted"
	switch {
	case err == nil:
	case errors.Is(err, contact.ErrInvalid):
		status, result = http.StatusBadRequest, "invalid"
	case errors.Is(err, contact.ErrRateLimited):
		status, result = http.StatusTooManyRequests, "rate_limited"
	default:
		s.logger.Error("submitting contact message", "error", err)
		status, result = http.StatusInternalServerError, "error"
	}
	if s.deps.Metrics != nil {
		s.deps.Metrics.ObserveContact(result)
	}

	if isJSON {
		if err != nil {
			writeJSON(w, status, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, status, map[string]string{"id": id})
		return
	}

	// Plain form posts come from the contact dialog without the page
	// script; send the browser back to the dialog over the same grid.
	category, pages := parseGrid(r.PostForm)
	v := QueryLinker{Category: category, Pages: pages}.state()
	v.Set("dialog", string(dialog.Contact))
	if err != nil {
		v.Set("error", strings.TrimPrefix(err.Error(), contact.ErrInvalid.Error()+": "))
	} else {
		v.Set("sent", "1")
	}
	http.Redirect(w, r, "/?"+v.Encode(), http.StatusSeeOther)
}
