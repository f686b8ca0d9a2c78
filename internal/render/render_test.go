package render

import (
	"strings"
	"testing"

	"github.com/hailey21/notion-blog/internal/notion"
)

const (
	rootID  = "067dd719-a912-471e-a9a3-ac10710e7fdf"
	blogID  = "2fea3ad8-2d29-4a8b-8d8a-53f5f42ffc60"
	postID  = "a1b2c3d4-0000-4000-8000-000000000001"
	otherID = "a1b2c3d4-0000-4000-8000-0000000000ff"
)

func fixture() (*notion.SiteMap, *notion.RecordMap, *notion.Block) {
	root := &notion.Block{ID: rootID, Type: notion.TypePage, ParentTable: notion.ParentSpace,
		Properties: notion.Properties{Title: "Home"}}
	blog := &notion.Block{ID: blogID, Type: notion.TypeCollectionViewPage, ParentID: rootID, ParentTable: notion.ParentBlock,
		Properties: notion.Properties{Title: "Blog"}}
	post := &notion.Block{ID: postID, Type: notion.TypePage, ParentID: blogID, ParentTable: notion.ParentBlock,
		Properties: notion.Properties{Title: "Hello <World>"}, Content: []string{"t1", "missing", "t2", otherID}}
	t1 := &notion.Block{ID: "t1", Type: notion.TypeText, ParentID: postID, ParentTable: notion.ParentBlock,
		Text: "Some **bold** text <script>alert(1)</script>"}
	t2 := &notion.Block{ID: "t2", Type: notion.TypeHeader, ParentID: postID, ParentTable: notion.ParentBlock,
		Text: "## Section"}
	other := &notion.Block{ID: otherID, Type: notion.TypePage, ParentID: postID, ParentTable: notion.ParentBlock,
		Properties: notion.Properties{Title: "Child page"}}

	rm := notion.NewRecordMap(root, blog, post, t1, t2, other)
	sm := notion.NewSiteMap()
	sm.AddPage("blog", blogID, rm)
	sm.AddPage("blog/hello", postID, rm)
	return sm, rm, post
}

func TestMapPageURL(t *testing.T) {
	sm, _, _ := fixture()
	m := NewURLMapper(sm, rootID)

	tests := []struct {
		id   string
		want string
	}{
		{rootID, "/"},
		{strings.ReplaceAll(rootID, "-", ""), "/"},
		{postID, "/blog/hello"},
		{otherID, "/" + strings.ReplaceAll(otherID, "-", "")},
	}
	for _, tt := range tests {
		if got := m.MapPageURL(tt.id); got != tt.want {
			t.Errorf("MapPageURL(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestCrumbs(t *testing.T) {
	sm, rm, post := fixture()
	ctx := NewContext(rm, NewURLMapper(sm, rootID), true)

	crumbs := ctx.Crumbs(post, false)
	if len(crumbs) != 3 {
		t.Fatalf("crumbs = %d, want 3", len(crumbs))
	}
	if crumbs[0].Title != "Home" || crumbs[0].Href != "/" {
		t.Errorf("root crumb = %+v", crumbs[0])
	}
	if crumbs[1].Title != "Blog" || crumbs[1].Href != "/blog" {
		t.Errorf("middle crumb = %+v", crumbs[1])
	}
	if !crumbs[2].Active || crumbs[0].Active {
		t.Error("only the current page should be active")
	}

	rootOnly := ctx.Crumbs(post, true)
	if len(rootOnly) != 1 || rootOnly[0].ID != rootID {
		t.Errorf("rootOnly crumbs = %+v, want only root", rootOnly)
	}
}

func TestBreadcrumbsEscapesTitles(t *testing.T) {
	sm, rm, post := fixture()
	ctx := NewContext(rm, NewURLMapper(sm, rootID), true)

	html := string(ctx.Breadcrumbs(post, false))
	if !strings.Contains(html, "Hello &lt;World&gt;") {
		t.Errorf("title not escaped: %s", html)
	}
	if !strings.Contains(html, `href="/blog"`) {
		t.Errorf("missing blog link: %s", html)
	}
}

func TestHeaderSearchToggle(t *testing.T) {
	sm, rm, post := fixture()

	with := string(NewContext(rm, NewURLMapper(sm, rootID), true).Header(post))
	if !strings.Contains(with, "notion-search-button") {
		t.Errorf("expected search trigger: %s", with)
	}
	if !strings.Contains(with, `data-search-root="067dd719a912471ea9a3ac10710e7fdf"`) {
		t.Errorf("search should be scoped to the root page: %s", with)
	}

	without := string(NewContext(rm, NewURLMapper(sm, rootID), false).Header(post))
	if strings.Contains(without, "notion-search-button") {
		t.Errorf("search trigger rendered while disabled: %s", without)
	}
	if !strings.Contains(without, `class="notion-header"`) {
		t.Errorf("missing header wrapper: %s", without)
	}
}

func TestLinks(t *testing.T) {
	ctx := NewContext(notion.NewRecordMap(), nil, false)

	ext := string(ctx.Link("https://example.com", "breadcrumb button", "Ext"))
	if !strings.Contains(ext, `target="_blank"`) || !strings.Contains(ext, `rel="noopener noreferrer"`) {
		t.Errorf("external link attrs missing: %s", ext)
	}
	internal := string(ctx.PageLink("/about", "breadcrumb button", "About"))
	if strings.Contains(internal, "_blank") || !strings.Contains(internal, `href="/about"`) {
		t.Errorf("page link = %s", internal)
	}
	if unsafe := string(ctx.Link("javascript:alert(1)", "", "x")); strings.Contains(unsafe, "javascript:") {
		t.Errorf("unsafe URL not filtered: %s", unsafe)
	}
}

func TestBody(t *testing.T) {
	sm, rm, post := fixture()
	ctx := NewContext(rm, NewURLMapper(sm, rootID), false)

	body, err := ctx.Body(post)
	if err != nil {
		t.Fatalf("Body: %v", err)
	}
	html := string(body)
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("markdown not rendered: %s", html)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("script not sanitized: %s", html)
	}
	if strings.Index(html, `data-block-id="t1"`) > strings.Index(html, `data-block-id="t2"`) {
		t.Errorf("blocks out of content order: %s", html)
	}
	if !strings.Contains(html, "Child page") || !strings.Contains(html, "notion-page-link") {
		t.Errorf("nested page should render as a link: %s", html)
	}
}
