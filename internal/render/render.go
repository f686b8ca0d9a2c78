// Package render is the page-rendering toolkit the header builds on: page URL
// mapping, breadcrumbs, the default header, the search trigger, links and the
// page body.
package render

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/hailey21/notion-blog/internal/notion"
)

// URLMapper maps page ids to public URLs using the canonical page map.
type URLMapper struct {
	siteMap    *notion.SiteMap
	rootPageID string
}

// NewURLMapper creates a mapper. rootPageID maps to "/".
func NewURLMapper(sm *notion.SiteMap, rootPageID string) *URLMapper {
	return &URLMapper{siteMap: sm, rootPageID: rootPageID}
}

// MapPageURL returns "/" for the root page, "/"+path for canonical pages and
// "/"+compact id for everything else.
func (m *URLMapper) MapPageURL(pageID string) string {
	if m.rootPageID != "" && notion.NormalizeID(pageID) == notion.NormalizeID(m.rootPageID) {
		return "/"
	}
	if p, ok := m.siteMap.PathFor(pageID); ok {
		return "/" + strings.TrimPrefix(p, "/")
	}
	return "/" + notion.CompactID(pageID)
}

// Context carries what the renderers need for one page.
type Context struct {
	RecordMap     *notion.RecordMap
	MapPageURL    func(pageID string) string
	SearchEnabled bool
}

// NewContext builds a page context. A nil mapper falls back to compact ids.
func NewContext(rm *notion.RecordMap, mapper *URLMapper, searchEnabled bool) *Context {
	ctx := &Context{RecordMap: rm, SearchEnabled: searchEnabled}
	if mapper != nil {
		ctx.MapPageURL = mapper.MapPageURL
	} else {
		ctx.MapPageURL = func(id string) string { return "/" + notion.CompactID(id) }
	}
	return ctx
}

// Crumb is one breadcrumb entry.
type Crumb struct {
	ID     string
	Title  string
	Href   string
	Active bool
}

// Crumbs returns the page ancestry of block, root first. Walking stops at the
// first parent that is not a page present in the record map.
func (c *Context) Crumbs(block *notion.Block, rootOnly bool) []Crumb {
	var chain []*notion.Block
	seen := map[string]bool{}
	for cur := block; cur != nil && !seen[cur.ID]; {
		seen[cur.ID] = true
		if cur.IsPage() {
			chain = append(chain, cur)
		}
		if cur.ParentTable != notion.ParentBlock || cur.ParentID == "" {
			break
		}
		parent, ok := c.RecordMap.Get(cur.ParentID)
		if !ok {
			break
		}
		cur = parent
	}

	crumbs := make([]Crumb, 0, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		b := chain[i]
		crumbs = append(crumbs, Crumb{
			ID:     b.ID,
			Title:  b.Title(),
			Href:   c.MapPageURL(b.ID),
			Active: i == 0,
		})
	}
	if rootOnly && len(crumbs) > 1 {
		crumbs = crumbs[:1]
	}
	return crumbs
}

// Breadcrumbs renders the page ancestry of block.
func (c *Context) Breadcrumbs(block *notion.Block, rootOnly bool) template.HTML {
	return execute("breadcrumbs", c.Crumbs(block, rootOnly))
}

// Search renders the search trigger scoped to the root of block's ancestry.
func (c *Context) Search(block *notion.Block) template.HTML {
	rootID := block.ID
	if crumbs := c.Crumbs(block, true); len(crumbs) > 0 {
		rootID = crumbs[0].ID
	}
	return execute("search", searchData{RootID: notion.CompactID(rootID), Icon: searchIcon})
}

// Header renders the default page header: full breadcrumbs plus, when search
// is enabled, the search trigger.
func (c *Context) Header(block *notion.Block) template.HTML {
	data := headerData{Breadcrumbs: c.Breadcrumbs(block, false)}
	if c.SearchEnabled {
		data.Search = c.Search(block)
	}
	return execute("header", data)
}

// PageLink renders a link to another page of the site.
func (c *Context) PageLink(href, class, title string) template.HTML {
	return execute("pageLink", linkData{Href: href, Class: class, Title: title})
}

// Link renders a link to an external URL.
func (c *Context) Link(href, class, title string) template.HTML {
	return execute("link", linkData{Href: href, Class: class, Title: title})
}

type headerData struct {
	Breadcrumbs template.HTML
	Search      template.HTML
}

type searchData struct {
	RootID string
	Icon   template.HTML
}

type linkData struct {
	Href  string
	Class string
	Title string
}

var templates = template.Must(template.New("render").Parse(componentTemplates))

func execute(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		// Templates are static; a failure here is a programming error.
		panic("render: executing " + name + ": " + err.Error())
	}
	return template.HTML(buf.String())
}
