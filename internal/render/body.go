package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/hailey21/notion-blog/internal/notion"
)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	// Block text is authored content; highlighting emits inline styles.
	sanitizer = func() *bluemonday.Policy {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("style").OnElements("span", "pre", "code")
		p.AllowAttrs("class").Globally()
		return p
	}()
)

type bodyBlock struct {
	ID   string
	Type string
	HTML template.HTML
}

// Body renders the children of block, in content order, as sanitized HTML.
// Children missing from the record map are skipped; nested pages render as
// links.
func (c *Context) Body(block *notion.Block) (template.HTML, error) {
	blocks := make([]bodyBlock, 0, len(block.Content))
	for _, id := range block.Content {
		child, ok := c.RecordMap.Get(id)
		if !ok {
			continue
		}
		if child.IsPage() {
			blocks = append(blocks, bodyBlock{
				ID:   child.ID,
				Type: child.Type,
				HTML: c.PageLink(c.MapPageURL(child.ID), "notion-page-link", child.Title()),
			})
			continue
		}
		html, err := Markdown(child.Text)
		if err != nil {
			return "", fmt.Errorf("rendering block %s: %w", child.ID, err)
		}
		blocks = append(blocks, bodyBlock{ID: child.ID, Type: child.Type, HTML: html})
	}
	return execute("body", blocks), nil
}

// Markdown converts src to sanitized HTML.
func Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes())), nil
}
