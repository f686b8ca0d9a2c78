// Package header renders the page header: breadcrumbs, navigation links, the
// theme toggle, the search trigger and the scroll progress bar.
package header

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/hailey21/notion-blog/internal/config"
	"github.com/hailey21/notion-blog/internal/notion"
	"github.com/hailey21/notion-blog/internal/render"
	"github.com/hailey21/notion-blog/internal/scroll"
	"github.com/hailey21/notion-blog/internal/theme"
)

// ErrNotPage is returned when the block passed to Render is not a page.
var ErrNotPage = errors.New("block is not a page")

// Props are the per-page inputs of Render.
type Props struct {
	Block  *notion.Block
	Notion *render.Context
	Theme  *theme.Toggle
}

// Renderer renders headers for one site configuration.
type Renderer struct {
	style           config.NavigationStyle
	links           []config.NavigationLink
	searchEnabled   bool
	commentSelector string
	tmpl            *template.Template
}

// NewRenderer creates a Renderer from cfg. The configuration is copied.
func NewRenderer(cfg *config.Config) *Renderer {
	return &Renderer{
		style:           cfg.NavigationStyle,
		links:           append([]config.NavigationLink(nil), cfg.NavigationLinks...),
		searchEnabled:   cfg.SearchEnabled,
		commentSelector: cfg.CommentSelector,
		tmpl:            template.Must(template.New("header").Parse(headerTemplates)),
	}
}

// Render writes the header for p.Block to w.
func (r *Renderer) Render(w io.Writer, p Props) error {
	html, err := r.HTML(p)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, string(html))
	return err
}

// HTML returns the header for p.Block.
func (r *Renderer) HTML(p Props) (template.HTML, error) {
	if p.Block == nil || !p.Block.IsPage() {
		return "", ErrNotPage
	}
	if p.Notion == nil {
		return "", errors.New("missing render context")
	}

	progress := scroll.Bar(0, r.commentSelector)
	if r.style == config.NavigationDefault {
		return p.Notion.Header(p.Block) + progress, nil
	}

	data := customData{
		Breadcrumbs: p.Notion.Breadcrumbs(p.Block, true),
		Links:       r.navLinks(p.Notion),
		Toggle:      toggleData(p.Theme),
		Progress:    progress,
	}
	if r.searchEnabled {
		data.Search = p.Notion.Search(p.Block)
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "custom", data); err != nil {
		return "", fmt.Errorf("rendering header: %w", err)
	}
	return template.HTML(buf.String()), nil
}

const navLinkClass = "nav-link breadcrumb button"

func (r *Renderer) navLinks(ctx *render.Context) []template.HTML {
	var out []template.HTML
	for _, link := range r.links {
		switch {
		case link.PageID != "":
			out = append(out, ctx.PageLink(ctx.MapPageURL(link.PageID), navLinkClass, link.Title))
		case link.URL != "":
			out = append(out, ctx.Link(link.URL, navLinkClass, link.Title))
		}
	}
	return out
}

type customData struct {
	Breadcrumbs template.HTML
	Links       []template.HTML
	Toggle      toggleView
	Search      template.HTML
	Progress    template.HTML
}

type toggleView struct {
	Hidden bool
	Icon   template.HTML
	Alt    template.HTML
}

func toggleData(t *theme.Toggle) toggleView {
	if t == nil {
		t = theme.NewToggle(theme.NewState(false))
	}
	v := t.View()
	alt := theme.IconMoon
	if v.Icon == theme.IconMoon {
		alt = theme.IconSun
	}
	return toggleView{Hidden: v.Hidden, Icon: theme.SVG(v.Icon), Alt: theme.SVG(alt)}
}
