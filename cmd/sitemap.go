package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hailey21/notion-blog/internal/logging"
	"github.com/hailey21/notion-blog/internal/sitemap"
)

var sitemapOutput string

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Write the XML sitemap to a file or stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		provider, closeProvider, err := openProvider(cfg)
		if err != nil {
			return err
		}
		defer closeProvider()

		sm, err := provider.GetSiteMap(context.Background())
		if err != nil {
			return fmt.Errorf("loading site map: %w", err)
		}

		out, err := outputWriter(sitemapOutput)
		if err != nil {
			return err
		}
		defer out.Close()

		if err := sitemap.NewGenerator(cfg.Host, cfg.Sitemap.Exclude).Write(out, sm); err != nil {
			return fmt.Errorf("writing sitemap: %w", err)
		}
		logging.NewLogger("sitemap").WithField("output", sitemapOutput).Debug("sitemap written")
		return nil
	},
}

func init() {
	sitemapCmd.Flags().StringVarP(&sitemapOutput, "output", "o", "-", "output file (- for stdout)")
	rootCmd.AddCommand(sitemapCmd)
}
