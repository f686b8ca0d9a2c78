package server

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hailey21/notion-blog/internal/header"
	"github.com/hailey21/notion-blog/internal/notion"
	"github.com/hailey21/notion-blog/internal/render"
	"github.com/hailey21/notion-blog/internal/sitedata"
	"github.com/hailey21/notion-blog/internal/theme"
)

var pageShell = template.Must(template.New("page").Parse(pageTemplate))

type pageData struct {
	Title  string
	Dark   bool
	Header template.HTML
	Body   template.HTML
}

// pageContext loads the site map and builds the render inputs for block.
func (s *Server) pageContext(r *http.Request, block *notion.Block, rm *notion.RecordMap, sm *notion.SiteMap) (header.Props, *theme.State) {
	state := theme.FromRequest(r)
	// The toggle stays unmounted: header.js reveals it in the browser.
	toggle := theme.NewToggle(state)
	ctx := render.NewContext(rm, render.NewURLMapper(sm, s.cfg.RootPageID), s.cfg.SearchEnabled)
	return header.Props{Block: block, Notion: ctx, Theme: toggle}, state
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sm, err := s.provider.GetSiteMap(r.Context())
	if err != nil {
		s.log.WithError(err).Error("loading site map")
		http.Error(w, "site data unavailable", http.StatusInternalServerError)
		return
	}

	path := strings.Trim(chi.URLParam(r, "*"), "/")
	block, rm, err := sitedata.LookupPage(sm, path, s.cfg.RootPageID)
	if err != nil && path != "" {
		// Pages outside the canonical map are addressed by id.
		block, rm, err = sitedata.LookupPageID(sm, path)
	}
	if errors.Is(err, sitedata.ErrPageNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.log.WithError(err).WithField("path", path).Error("resolving page")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	props, state := s.pageContext(r, block, rm, sm)
	head, err := s.header.HTML(props)
	if errors.Is(err, header.ErrNotPage) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.log.WithError(err).WithField("page_id", block.ID).Error("rendering header")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	body, err := props.Notion.Body(block)
	if err != nil {
		s.log.WithError(err).WithField("page_id", block.ID).Error("rendering body")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := pageShell.Execute(&buf, pageData{
		Title:  block.Title(),
		Dark:   state.IsDarkMode(),
		Header: head,
		Body:   body,
	}); err != nil {
		s.log.WithError(err).Error("rendering page")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleHeaderFragment(w http.ResponseWriter, r *http.Request) {
	sm, err := s.provider.GetSiteMap(r.Context())
	if err != nil {
		s.log.WithError(err).Error("loading site map")
		writeJSONError(w, http.StatusInternalServerError, "site data unavailable")
		return
	}

	block, rm, err := sitedata.LookupPageID(sm, chi.URLParam(r, "pageID"))
	if errors.Is(err, sitedata.ErrPageNotFound) {
		writeJSONError(w, http.StatusNotFound, "page not found")
		return
	}
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	props, _ := s.pageContext(r, block, rm, sm)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.header.Render(w, props); err != nil {
		if errors.Is(err, header.ErrNotPage) {
			writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.log.WithError(err).Error("rendering header")
		writeJSONError(w, http.StatusInternalServerError, "header rendering failed")
	}
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en"{{if .Dark}} class="dark-mode"{{end}}>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="/assets/header.css">
</head>
<body>
  {{.Header}}
  <main class="notion-page">
    <h1 class="notion-title">{{.Title}}</h1>
    {{.Body}}
  </main>
  <script src="/assets/header.js"></script>
</body>
</html>
`
