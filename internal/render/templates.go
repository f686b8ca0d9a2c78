package render

import "html/template"

const componentTemplates = `
{{define "breadcrumbs"}}<div class="breadcrumbs">{{range $i, $c := .}}{{if $i}}<span class="spacer">/</span>{{end}}{{if $c.Active}}<span class="breadcrumb active">{{$c.Title}}</span>{{else}}<a class="breadcrumb" href="{{$c.Href}}">{{$c.Title}}</a>{{end}}{{end}}</div>{{end}}

{{define "search"}}<div role="button" class="breadcrumb button notion-search-button" data-search-root="{{.RootID}}" aria-label="Search">{{.Icon}}</div>{{end}}

{{define "header"}}<header class="notion-header"><div class="notion-nav-header">{{.Breadcrumbs}}{{if .Search}}<div class="notion-nav-header-rhs breadcrumbs">{{.Search}}</div>{{end}}</div></header>{{end}}

{{define "pageLink"}}<a class="{{.Class}}" href="{{.Href}}">{{.Title}}</a>{{end}}

{{define "link"}}<a class="{{.Class}}" href="{{.Href}}" target="_blank" rel="noopener noreferrer">{{.Title}}</a>{{end}}

{{define "body"}}<article class="notion-page-content">{{range .}}<div class="notion-block notion-{{.Type}}" data-block-id="{{.ID}}">{{.HTML}}</div>{{end}}</article>{{end}}
`

const searchIcon template.HTML = `<svg class="search-icon" width="16" height="16" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><circle cx="11" cy="11" r="8"/><line x1="21" y1="21" x2="16.65" y2="16.65"/></svg>`
