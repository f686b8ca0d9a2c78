package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hailey21/notion-blog/internal/db"
	"github.com/hailey21/notion-blog/internal/logging"
	"github.com/hailey21/notion-blog/internal/progress"
	"github.com/hailey21/notion-blog/internal/sitedata"
)

var importCmd = &cobra.Command{
	Use:   "import <snapshot.json>",
	Short: "Import a site map snapshot into the SQLite store",
	Long: `Reads a JSON site map snapshot and replaces the contents of the SQLite
database at data.db_path with it. Set data.source to sqlite to serve from it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		sm, err := sitedata.ReadSnapshot(args[0])
		if err != nil {
			return err
		}

		database, err := db.Open(cfg.Data.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		reporter := progress.NewReporter(os.Stderr, "Importing pages")
		started := false
		err = sitedata.NewStore(database).Import(context.Background(), sm, func(done, total int, pageID string) {
			if !started {
				reporter.Start(total)
				started = true
			}
			reporter.Update(done, pageID)
		})
		if started {
			reporter.Finish()
		}
		if err != nil {
			return fmt.Errorf("importing %s: %w", args[0], err)
		}

		logging.NewLogger("import").WithFields(logrus.Fields{
			"pages": len(sm.PageMap),
			"paths": len(sm.Paths()),
			"db":    database.Path(),
		}).Info("snapshot imported")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
