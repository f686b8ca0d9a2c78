package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hailey21/notion-blog/internal/logging"
	"github.com/hailey21/notion-blog/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the sitemap, header assets and page shell over HTTP",
	Long: `Starts an HTTP server exposing /sitemap.xml, the header fragment API
under /api/header/{pageID}, the header assets and a minimal page shell.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		provider, closeProvider, err := openProvider(cfg)
		if err != nil {
			return err
		}
		defer closeProvider()

		srv := server.New(cfg, provider)
		log := logging.NewLogger("serve")

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			log.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Error("shutdown")
			}
		}()

		log.WithFields(logrus.Fields{
			"version": Version,
			"host":    cfg.Host,
			"source":  cfg.Data.Source,
		}).Info("starting notionblog")

		if err := srv.Start(); err != nil {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}
