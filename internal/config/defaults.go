package config

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".notionblog.yml"

// DefaultCommentSelector matches the giscus comment widget.
const DefaultCommentSelector = ".giscus"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Host:            "http://localhost:3000",
		NavigationStyle: NavigationDefault,
		SearchEnabled:   true,
		CommentSelector: DefaultCommentSelector,
		Data: DataConfig{
			Source: SourceFile,
			Path:   "data/sitemap.json",
			DBPath: "data/notionblog.db",
		},
		Server: ServerConfig{
			Port: 3000,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
