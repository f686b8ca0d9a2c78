package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/hailey21/notion-blog/internal/config"
	"github.com/hailey21/notion-blog/internal/logging"
	"github.com/hailey21/notion-blog/internal/sitedata"
)

// loadConfig loads and validates the config, then applies its log settings.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `notionblog init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	logging.Configure(cfg.Log)
	return cfg, nil
}

// openProvider opens the configured site data provider. The caller must call
// the returned close function.
func openProvider(cfg *config.Config) (sitedata.Provider, func() error, error) {
	provider, closeFn, err := sitedata.FromConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("opening site data: %w", err)
	}
	return provider, closeFn, nil
}

// outputWriter returns stdout for "" and "-", otherwise a created file.
func outputWriter(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
