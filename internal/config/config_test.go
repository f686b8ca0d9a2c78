package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.NavigationStyle != NavigationDefault {
		t.Errorf("expected default navigation_style %q, got %q", NavigationDefault, cfg.NavigationStyle)
	}
	if !cfg.SearchEnabled {
		t.Error("expected search to be enabled by default")
	}
	if cfg.Data.Source != SourceFile {
		t.Errorf("expected default data.source %q, got %q", SourceFile, cfg.Data.Source)
	}
	if cfg.CommentSelector != ".giscus" {
		t.Errorf("expected default comment_selector .giscus, got %q", cfg.CommentSelector)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Server.Port)
	}
	if len(cfg.Sitemap.Exclude) != 0 {
		t.Errorf("expected no default sitemap excludes, got %v", cfg.Sitemap.Exclude)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.notionblog.yml")

	original := DefaultConfig()
	original.Host = "https://blog.example.com"
	original.NavigationStyle = NavigationCustom
	original.SearchEnabled = false
	original.NavigationLinks = []NavigationLink{
		{Title: "About", PageID: "f1199d37579b41cbabfc0b5174f4256a"},
		{Title: "GitHub", URL: "https://github.com/example"},
	}
	original.Sitemap.Exclude = []string{"drafts/**"}

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Host != original.Host {
		t.Errorf("host: got %q, want %q", loaded.Host, original.Host)
	}
	if loaded.NavigationStyle != NavigationCustom {
		t.Errorf("navigation_style: got %q, want %q", loaded.NavigationStyle, NavigationCustom)
	}
	if loaded.SearchEnabled {
		t.Error("search_enabled: got true, want false")
	}
	if len(loaded.NavigationLinks) != 2 {
		t.Fatalf("navigation_links length: got %d, want 2", len(loaded.NavigationLinks))
	}
	if loaded.NavigationLinks[0].PageID != original.NavigationLinks[0].PageID {
		t.Errorf("navigation_links[0].page_id: got %q", loaded.NavigationLinks[0].PageID)
	}
	if loaded.NavigationLinks[1].URL != "https://github.com/example" {
		t.Errorf("navigation_links[1].url: got %q", loaded.NavigationLinks[1].URL)
	}
	if len(loaded.Sitemap.Exclude) != 1 || loaded.Sitemap.Exclude[0] != "drafts/**" {
		t.Errorf("sitemap.exclude: got %v", loaded.Sitemap.Exclude)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.NavigationStyle != NavigationDefault {
		t.Errorf("expected default navigation style, got %q", cfg.NavigationStyle)
	}
}

func TestLoadTrimsHostSlash(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")
	if err := os.WriteFile(path, []byte("host: https://example.com/\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Host != "https://example.com" {
		t.Errorf("host = %q, want trailing slash removed", cfg.Host)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("NOTIONBLOG_NAVIGATION_STYLE", "custom")
	t.Setenv("NOTIONBLOG_SERVER__PORT", "8081")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.NavigationStyle != NavigationCustom {
		t.Errorf("env override failed: got %q, want %q", loaded.NavigationStyle, NavigationCustom)
	}
	if loaded.Server.Port != 8081 {
		t.Errorf("nested env override failed: got %d, want 8081", loaded.Server.Port)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty host", func(c *Config) { c.Host = "" }},
		{"relative host", func(c *Config) { c.Host = "example.com" }},
		{"unknown style", func(c *Config) { c.NavigationStyle = "fancy" }},
		{"unknown source", func(c *Config) { c.Data.Source = "notion" }},
		{"file source without path", func(c *Config) { c.Data.Path = "" }},
		{"sqlite source without db", func(c *Config) { c.Data.Source = SourceSQLite; c.Data.DBPath = "" }},
		{"bad glob", func(c *Config) { c.Sitemap.Exclude = []string{"[a-"} }},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim(" drafts/** , ,private/*")
	if len(got) != 2 || got[0] != "drafts/**" || got[1] != "private/*" {
		t.Errorf("splitAndTrim = %v", got)
	}
}
