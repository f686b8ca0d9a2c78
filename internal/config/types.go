package config

// NavigationStyle selects between the library's default header and the
// custom breadcrumb header.
type NavigationStyle string

const (
	NavigationDefault NavigationStyle = "default"
	NavigationCustom  NavigationStyle = "custom"
)

// DataSource identifies where the site map snapshot is read from.
type DataSource string

const (
	SourceFile   DataSource = "file"
	SourceSQLite DataSource = "sqlite"
)

// Config is the top-level notionblog configuration, corresponding to .notionblog.yml.
type Config struct {
	Host            string           `yaml:"host" koanf:"host"`
	RootPageID      string           `yaml:"root_page_id" koanf:"root_page_id"`
	NavigationStyle NavigationStyle  `yaml:"navigation_style" koanf:"navigation_style"`
	NavigationLinks []NavigationLink `yaml:"navigation_links" koanf:"navigation_links"`
	SearchEnabled   bool             `yaml:"search_enabled" koanf:"search_enabled"`
	CommentSelector string           `yaml:"comment_selector" koanf:"comment_selector"`
	Data            DataConfig       `yaml:"data" koanf:"data"`
	Sitemap         SitemapConfig    `yaml:"sitemap" koanf:"sitemap"`
	Server          ServerConfig     `yaml:"server" koanf:"server"`
	Log             LogConfig        `yaml:"log" koanf:"log"`
}

// NavigationLink is a header link pointing either at a page or an external URL.
type NavigationLink struct {
	Title  string `yaml:"title" koanf:"title"`
	PageID string `yaml:"page_id,omitempty" koanf:"page_id"`
	URL    string `yaml:"url,omitempty" koanf:"url"`
}

// DataConfig holds site map snapshot settings.
type DataConfig struct {
	Source DataSource `yaml:"source" koanf:"source"`
	Path   string     `yaml:"path" koanf:"path"`       // JSON snapshot for the file source
	DBPath string     `yaml:"db_path" koanf:"db_path"` // SQLite database for the sqlite source
}

// SitemapConfig holds sitemap generation settings.
type SitemapConfig struct {
	Exclude []string `yaml:"exclude" koanf:"exclude"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// LogConfig controls logger level and output format.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"` // "text" or "json"
}
