package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hailey21/notion-blog/internal/header"
	"github.com/hailey21/notion-blog/internal/notion"
	"github.com/hailey21/notion-blog/internal/render"
	"github.com/hailey21/notion-blog/internal/sitedata"
	"github.com/hailey21/notion-blog/internal/theme"
)

var (
	headerPath   string
	headerPageID string
	headerDark   bool
	headerMount  bool
)

var headerCmd = &cobra.Command{
	Use:   "header",
	Short: "Render a page header to stdout",
	Long: `Renders the header of one page, selected by canonical path (--path) or
page id (--page). With neither flag the root page is used.`,
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

		var (
			block *notion.Block
			rm    *notion.RecordMap
		)
		if headerPageID != "" {
			block, rm, err = sitedata.LookupPageID(sm, headerPageID)
		} else {
			block, rm, err = sitedata.LookupPage(sm, headerPath, cfg.RootPageID)
		}
		if err != nil {
			return fmt.Errorf("finding page: %w", err)
		}

		toggle := theme.NewToggle(theme.NewState(headerDark))
		if headerMount {
			toggle.Mount()
		}
		props := header.Props{
			Block:  block,
			Notion: render.NewContext(rm, render.NewURLMapper(sm, cfg.RootPageID), cfg.SearchEnabled),
			Theme:  toggle,
		}
		if err := header.NewRenderer(cfg).Render(cmd.OutOrStdout(), props); err != nil {
			return fmt.Errorf("rendering header: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	headerCmd.Flags().StringVar(&headerPath, "path", "", "canonical page path")
	headerCmd.Flags().StringVar(&headerPageID, "page", "", "page id")
	headerCmd.Flags().BoolVar(&headerDark, "dark", false, "render in dark mode")
	headerCmd.Flags().BoolVar(&headerMount, "mounted", false, "render the theme toggle as mounted")
	rootCmd.AddCommand(headerCmd)
}
