package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/domain-showcase/internal/catalog"
)

// domainItem is one domain in API responses.
type domainItem struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	TLD         string `json:"tld"`
	NameLength  int    `json:"name_length"`
	HasDigit    bool   `json:"has_digit"`
	Price       string `json:"price"`
}

// domainsResponse is the JSON response for GET /api/domains.
type domainsResponse struct {
	Category   string       `json:"category"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	Revealed   int          `json:"revealed"`
	MatchCount int          `json:"match_count"`
	HasMore    bool         `json:"has_more"`
	Domains    []domainItem `json:"domains"`
}

// categoryItem is one entry of GET /api/categories.
type categoryItem struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

func (s *Server) toDomainItem(it catalog.Item) domainItem {
	return domainItem{
		Name:        it.ID(),
		DisplayName: it.DisplayName(),
		TLD:         it.TLD(),
		NameLength:  it.NameLength(),
		HasDigit:    it.HasDigit(),
		Price:       s.deps.Renderer.Detail(it).Price,
	}
}

func (s *Server) handleDomains(w http.ResponseWriter, r *http.Request) {
	ctrl, page := s.gridState(r.URL.Query())

	resp := domainsResponse{
		Category:   ctrl.ActiveCategory(),
		Page:       page,
		PageSize:   ctrl.PageSize(),
		Revealed:   ctrl.Revealed(),
		MatchCount: ctrl.MatchCount(),
		HasMore:    ctrl.HasMore(),
		Domains:    []domainItem{},
	}
	for _, it := range ctrl.VisibleItems() {
		resp.Domains = append(resp.Domains, s.toDomainItem(it))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDomain(w http.ResponseWriter, r *http.Request) {
	it, ok := s.deps.Index.Lookup(chi.URLParam(r, "name"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "domain not found"})
		return
	}
	writeJSON(w, http.StatusOK, s.deps.Renderer.Detail(it))
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	keys := append([]string{catalog.All}, s.deps.Index.Categories()...)
	out := make([]categoryItem, 0, len(keys))
	for _, k := range keys {
		out = append(out, categoryItem{
			Key:   k,
			Label: s.deps.Renderer.label(k),
			Count: s.deps.Index.Count(k),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
