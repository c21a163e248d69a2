package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/cv-paginator/internal/db"
	"github.com/jonathan/cv-paginator/internal/server"
	"github.com/jonathan/cv-paginator/internal/server/ratelimit"
	"github.com/spf13/cobra"
)

var (
	servePort        int
	databaseURL      string
	serveMigrate     bool
	serveConcurrency int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the pagination engines over REST.

When DATABASE_URL (or --db-url) is set, stored profiles and templates can be
paginated by ID; otherwise those endpoints answer 503.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to PORT or 8080)")
	serveCmd.Flags().StringVar(&databaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", true, "Create missing tables on startup")
	serveCmd.Flags().IntVar(&serveConcurrency, "batch-concurrency", 4, "Runs of one batch request executed at once")
	serveCmd.Flags().StringVar(&layoutOrientation, "orientation", "", "Default page orientation")
	serveCmd.Flags().IntVar(&layoutMaxPages, "max-pages", 0, "Default maximum pages per run")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg, cmd.ErrOrStderr())

	var store server.ProfileStore
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		if serveMigrate {
			if err := database.Migrate(ctx); err != nil {
				return err
			}
		}
		store = database
	} else {
		log.Warn("DATABASE_URL not set; profile endpoints are disabled")
	}

	srv := server.New(server.Config{
		Port:             cfg.Port,
		Layout:           cfg,
		RateLimit:        ratelimit.LoadConfig(),
		BatchConcurrency: serveConcurrency,
	}, store, log)

	return srv.Start()
}
