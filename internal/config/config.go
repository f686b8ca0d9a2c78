package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override. Nested keys use a double
// underscore: NOTIONBLOG_SERVER__PORT -> server.port.
const EnvPrefix = "NOTIONBLOG_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (NOTIONBLOG_*). The returned config is
// normalized and should be treated as immutable.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// normalize trims values that are compared or concatenated later.
func (c *Config) normalize() {
	c.Host = strings.TrimRight(strings.TrimSpace(c.Host), "/")
	c.RootPageID = strings.TrimSpace(c.RootPageID)
	c.NavigationStyle = NavigationStyle(strings.ToLower(strings.TrimSpace(string(c.NavigationStyle))))
	if c.CommentSelector == "" {
		c.CommentSelector = DefaultCommentSelector
	}
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validNavigationStyles = map[NavigationStyle]bool{
	NavigationDefault: true,
	NavigationCustom:  true,
}

var validSources = map[DataSource]bool{
	SourceFile:   true,
	SourceSQLite: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}
	u, err := url.Parse(c.Host)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid host %q: must be an absolute URL", c.Host)
	}

	if !validNavigationStyles[c.NavigationStyle] {
		return fmt.Errorf("invalid navigation_style %q: must be one of default, custom", c.NavigationStyle)
	}

	if !validSources[c.Data.Source] {
		return fmt.Errorf("invalid data.source %q: must be one of file, sqlite", c.Data.Source)
	}
	if c.Data.Source == SourceFile && c.Data.Path == "" {
		return fmt.Errorf("data.path is required for the file source")
	}
	if c.Data.Source == SourceSQLite && c.Data.DBPath == "" {
		return fmt.Errorf("data.db_path is required for the sqlite source")
	}

	for _, p := range c.Sitemap.Exclude {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid sitemap.exclude pattern %q", p)
		}
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535")
	}

	return nil
}
