package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hailey21/notion-blog/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "notionblog",
	Short: "Page headers and sitemaps for a Notion-backed blog",
	Long: `notionblog serves the header, page shell and XML sitemap of a static
blog whose pages come from a Notion site map snapshot. Snapshots are read
from a JSON file or imported into a local SQLite database.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
