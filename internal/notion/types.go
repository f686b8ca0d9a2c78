// Package notion models the page data assembled by the site map provider:
// blocks, per-page record maps and the site map tying URL paths to pages.
package notion

import (
	"strings"

	"github.com/google/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Block types the header and body renderers care about.
const (
	TypePage               = "page"
	TypeCollectionViewPage = "collection_view_page"
	TypeText               = "text"
	TypeHeader             = "header"
)

// Parent tables a block can hang from.
const (
	ParentBlock      = "block"
	ParentSpace      = "space"
	ParentCollection = "collection"
)

// Block is a single content block. Timestamps are milliseconds since epoch.
type Block struct {
	ID             string     `json:"id"`
	Type           string     `json:"type"`
	ParentID       string     `json:"parent_id,omitempty"`
	ParentTable    string     `json:"parent_table,omitempty"`
	Properties     Properties `json:"properties,omitempty"`
	Text           string     `json:"text,omitempty"`
	Content        []string   `json:"content,omitempty"`
	CreatedTime    int64      `json:"created_time"`
	LastEditedTime int64      `json:"last_edited_time,omitempty"`
}

// Properties holds the block properties used for display.
type Properties struct {
	Title string `json:"title,omitempty"`
}

// IsPage reports whether the block is one of the two page variants.
func (b *Block) IsPage() bool {
	return b != nil && (b.Type == TypePage || b.Type == TypeCollectionViewPage)
}

// Title returns the block title, or "Untitled" for pages without one.
func (b *Block) Title() string {
	if b == nil {
		return ""
	}
	if t := strings.TrimSpace(b.Properties.Title); t != "" {
		return t
	}
	if b.IsPage() {
		return "Untitled"
	}
	return ""
}

// BlockRecord wraps a block value the way exported record maps do.
type BlockRecord struct {
	Role  string `json:"role,omitempty"`
	Value *Block `json:"value"`
}

// RecordMap holds every block of one page, keyed by block id.
type RecordMap struct {
	Block map[string]*BlockRecord `json:"block"`
}

// NewRecordMap builds a record map from blocks.
func NewRecordMap(blocks ...*Block) *RecordMap {
	rm := &RecordMap{Block: make(map[string]*BlockRecord, len(blocks))}
	for _, b := range blocks {
		rm.Add(b)
	}
	return rm
}

// Add stores b under its id, replacing any previous value.
func (rm *RecordMap) Add(b *Block) {
	if rm.Block == nil {
		rm.Block = make(map[string]*BlockRecord)
	}
	rm.Block[b.ID] = &BlockRecord{Role: "reader", Value: b}
}

// Get returns the block with the given id. Ids are compared in normalized form.
func (rm *RecordMap) Get(id string) (*Block, bool) {
	if rm == nil {
		return nil, false
	}
	if rec, ok := rm.Block[id]; ok && rec != nil && rec.Value != nil {
		return rec.Value, true
	}
	norm := NormalizeID(id)
	for key, rec := range rm.Block {
		if rec != nil && rec.Value != nil && NormalizeID(key) == norm {
			return rec.Value, true
		}
	}
	return nil, false
}

// Blocks returns all non-nil block values in unspecified order.
func (rm *RecordMap) Blocks() []*Block {
	if rm == nil {
		return nil
	}
	out := make([]*Block, 0, len(rm.Block))
	for _, rec := range rm.Block {
		if rec != nil && rec.Value != nil {
			out = append(out, rec.Value)
		}
	}
	return out
}

// LatestCreatedTime returns the maximum created_time across all blocks, or 0
// when the record has no block carrying a positive timestamp.
func (rm *RecordMap) LatestCreatedTime() int64 {
	var maxTime int64
	for _, b := range rm.Blocks() {
		if b.CreatedTime > maxTime {
			maxTime = b.CreatedTime
		}
	}
	return maxTime
}

// Site describes the site the map belongs to.
type Site struct {
	Name             string `json:"name,omitempty"`
	Domain           string `json:"domain,omitempty"`
	RootNotionPageID string `json:"rootNotionPageId,omitempty"`
}

// CanonicalPageMap maps public URL paths to page ids, preserving insertion order.
type CanonicalPageMap = orderedmap.OrderedMap[string, string]

// SiteMap ties publicly addressable paths to page ids and page ids to their records.
type SiteMap struct {
	Site             Site                  `json:"site"`
	CanonicalPageMap *CanonicalPageMap     `json:"canonicalPageMap"`
	PageMap          map[string]*RecordMap `json:"pageMap"`
}

// NewSiteMap returns an empty site map ready for use.
func NewSiteMap() *SiteMap {
	return &SiteMap{
		CanonicalPageMap: orderedmap.New[string, string](),
		PageMap:          map[string]*RecordMap{},
	}
}

// AddPage registers path -> pageID and, when rm is non-nil, the page record.
func (sm *SiteMap) AddPage(path, pageID string, rm *RecordMap) {
	if sm.CanonicalPageMap == nil {
		sm.CanonicalPageMap = orderedmap.New[string, string]()
	}
	if sm.PageMap == nil {
		sm.PageMap = map[string]*RecordMap{}
	}
	sm.CanonicalPageMap.Set(path, pageID)
	if rm != nil {
		sm.PageMap[pageID] = rm
	}
}

// Path is one entry of the canonical page map.
type Path struct {
	Path   string
	PageID string
}

// Paths returns the canonical page map entries in order.
func (sm *SiteMap) Paths() []Path {
	if sm == nil || sm.CanonicalPageMap == nil {
		return nil
	}
	out := make([]Path, 0, sm.CanonicalPageMap.Len())
	for pair := sm.CanonicalPageMap.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Path{Path: pair.Key, PageID: pair.Value})
	}
	return out
}

// Record returns the record map for pageID. A missing record is not an error.
func (sm *SiteMap) Record(pageID string) (*RecordMap, bool) {
	if sm == nil || sm.PageMap == nil {
		return nil, false
	}
	rm, ok := sm.PageMap[pageID]
	if ok && rm != nil {
		return rm, true
	}
	return nil, false
}

// PathFor returns the canonical path of pageID, comparing ids in normalized form.
func (sm *SiteMap) PathFor(pageID string) (string, bool) {
	norm := NormalizeID(pageID)
	for _, p := range sm.Paths() {
		if NormalizeID(p.PageID) == norm {
			return p.Path, true
		}
	}
	return "", false
}

// PageIDFor returns the page id published under path.
func (sm *SiteMap) PageIDFor(path string) (string, bool) {
	if sm == nil || sm.CanonicalPageMap == nil {
		return "", false
	}
	return sm.CanonicalPageMap.Get(path)
}

// NormalizeID returns the dashed lowercase form of a uuid-shaped id. Ids that
// are not uuids are returned trimmed and lowercased.
func NormalizeID(id string) string {
	id = strings.TrimSpace(id)
	if u, err := uuid.Parse(id); err == nil {
		return u.String()
	}
	return strings.ToLower(id)
}

// CompactID returns the dashless form used in page URLs.
func CompactID(id string) string {
	return strings.ReplaceAll(NormalizeID(id), "-", "")
}
