package sitemap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"github.com/hailey21/notion-blog/internal/notion"
)

// Namespace is the sitemap protocol namespace.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []urlTag `xml:"url"`
}

type urlTag struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

// Generator renders sitemap documents for a fixed host.
type Generator struct {
	Host    string
	Exclude []string
	Now     func() time.Time
}

// NewGenerator returns a Generator using the wall clock.
func NewGenerator(host string, exclude []string) *Generator {
	return &Generator{Host: host, Exclude: exclude, Now: time.Now}
}

// Generate returns the sitemap document for sm.
func (g *Generator) Generate(sm *notion.SiteMap) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.Write(&buf, sm); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes the sitemap document for sm to w. The site root comes first,
// stamped with the generation time, followed by every page entry.
func (g *Generator) Write(w io.Writer, sm *notion.SiteMap) error {
	clock := g.Now
	if clock == nil {
		clock = time.Now
	}
	now := FormatTime(clock())
	entries := Entries(sm, now, g.Exclude)

	set := urlSet{
		Xmlns: Namespace,
		URLs:  make([]urlTag, 0, len(entries)+1),
	}
	set.URLs = append(set.URLs, urlTag{Loc: g.Host, LastMod: now})
	for _, e := range entries {
		set.URLs = append(set.URLs, urlTag{Loc: g.Host + "/" + e.Path, LastMod: e.LastMod})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encoding sitemap: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
