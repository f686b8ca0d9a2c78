// Package sitedata supplies the site map that the header and sitemap
// handlers render from.
package sitedata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/hailey21/notion-blog/internal/config"
	"github.com/hailey21/notion-blog/internal/db"
	"github.com/hailey21/notion-blog/internal/notion"
)

// ErrPageNotFound is returned when a path or page id has no record.
var ErrPageNotFound = errors.New("sitedata: page not found")

// Provider returns the assembled site map.
type Provider interface {
	GetSiteMap(ctx context.Context) (*notion.SiteMap, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context) (*notion.SiteMap, error)

func (f ProviderFunc) GetSiteMap(ctx context.Context) (*notion.SiteMap, error) { return f(ctx) }

// Static returns a provider that always serves sm.
func Static(sm *notion.SiteMap) Provider {
	return ProviderFunc(func(context.Context) (*notion.SiteMap, error) { return sm, nil })
}

// FileProvider reads a JSON site map snapshot on every call.
type FileProvider struct {
	Path string
}

// NewFileProvider creates a provider for the snapshot at path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{Path: path}
}

// GetSiteMap decodes the snapshot file.
func (p *FileProvider) GetSiteMap(ctx context.Context) (*notion.SiteMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ReadSnapshot(p.Path)
}

// ReadSnapshot decodes a JSON site map snapshot from path.
func ReadSnapshot(path string) (*notion.SiteMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading site map %s: %w", path, err)
	}
	sm := notion.NewSiteMap()
	if err := json.Unmarshal(data, sm); err != nil {
		return nil, fmt.Errorf("decoding site map %s: %w", path, err)
	}
	if sm.PageMap == nil {
		sm.PageMap = map[string]*notion.RecordMap{}
	}
	return sm, nil
}

// FromConfig opens the provider selected by cfg.Data. The returned close
// function releases any resources held by the provider.
func FromConfig(cfg *config.Config) (Provider, func() error, error) {
	switch cfg.Data.Source {
	case config.SourceSQLite:
		database, err := db.Open(cfg.Data.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening site map database: %w", err)
		}
		return NewStore(database), database.Close, nil
	case config.SourceFile, "":
		return NewFileProvider(cfg.Data.Path), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown data source %q", cfg.Data.Source)
	}
}

// LookupPage resolves a public path to its page block and record. The empty
// path resolves to rootPageID.
func LookupPage(sm *notion.SiteMap, path, rootPageID string) (*notion.Block, *notion.RecordMap, error) {
	pageID := rootPageID
	if path != "" {
		id, ok := sm.PageIDFor(path)
		if !ok {
			return nil, nil, ErrPageNotFound
		}
		pageID = id
	}
	if pageID == "" {
		return nil, nil, ErrPageNotFound
	}
	return LookupPageID(sm, pageID)
}

// LookupPageID resolves a page id, dashed or compact, to its page block and record.
func LookupPageID(sm *notion.SiteMap, pageID string) (*notion.Block, *notion.RecordMap, error) {
	rm, ok := sm.Record(pageID)
	if !ok {
		norm := notion.NormalizeID(pageID)
		for id, candidate := range sm.PageMap {
			if candidate != nil && notion.NormalizeID(id) == norm {
				rm, ok = candidate, true
				break
			}
		}
	}
	if !ok {
		return nil, nil, ErrPageNotFound
	}
	block, ok := rm.Get(pageID)
	if !ok {
		return nil, nil, ErrPageNotFound
	}
	return block, rm, nil
}
