// Package sitemap builds the XML sitemap of the site from its site map and
// serves it over HTTP.
package sitemap

import (
	"path"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/hailey21/notion-blog/internal/notion"
)

// TimeLayout is ISO-8601 with millisecond precision in UTC, e.g.
// 2024-03-01T10:00:00.000Z. Strings in this layout sort chronologically.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Entry is one page listed in the sitemap.
type Entry struct {
	Path    string
	LastMod string
}

// FormatTime renders t in TimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// Entries derives one entry per canonical path whose record exists, sorted by
// lastmod descending. Paths without a record, or matching an exclude glob, are
// left out.
func Entries(sm *notion.SiteMap, now string, exclude []string) []Entry {
	var entries []Entry
	for _, p := range sm.Paths() {
		rm, ok := sm.Record(p.PageID)
		if !ok {
			continue
		}
		if isExcluded(p.Path, exclude) {
			continue
		}
		entries = append(entries, Entry{
			Path:    p.Path,
			LastMod: lastModified(rm, now),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].LastMod > entries[j].LastMod
	})
	return entries
}

// lastModified returns the newest block creation time of rm, falling back to
// now when no block carries a timestamp.
func lastModified(rm *notion.RecordMap, now string) string {
	maxTime := rm.LatestCreatedTime()
	if maxTime <= 0 {
		return now
	}
	return FormatTime(time.UnixMilli(maxTime))
}

func isExcluded(p string, patterns []string) bool {
	p = path.Clean("/" + p)[1:]
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, p); ok {
			return true
		}
	}
	return false
}
