package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jonathan/cv-paginator/internal/db"
	"github.com/jonathan/cv-paginator/internal/types"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Store profiles and templates in the database",
}

var importProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Store a profile document",
	RunE:  runImportProfile,
}

var importTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Store a section config as a named template",
	RunE:  runImportTemplate,
}

var (
	importName    string
	importFile    string
	importMigrate bool
)

func init() {
	for _, c := range []*cobra.Command{importProfileCmd, importTemplateCmd} {
		c.Flags().StringVarP(&importName, "name", "n", "", "Name to store it under (defaults to the file name)")
		c.Flags().StringVarP(&importFile, "in", "i", "", "Path to JSON file (required)")
		c.Flags().StringVar(&databaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
		c.Flags().BoolVar(&importMigrate, "migrate", true, "Create missing tables first")
		if err := c.MarkFlagRequired("in"); err != nil {
			panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
		}
		importCmd.AddCommand(c)
	}
	importTemplateCmd.Flags().StringVar(&layoutOrientation, "orientation", "", "Template page orientation")

	rootCmd.AddCommand(importCmd)
}

func connectStore(ctx context.Context, cmd *cobra.Command) (*db.DB, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if importMigrate {
		if err := database.Migrate(ctx); err != nil {
			database.Close()
			return nil, err
		}
	}
	return database, nil
}

func storedName(path string) string {
	if importName != "" {
		return importName
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func runImportProfile(cmd *cobra.Command, _ []string) error {
	profile, err := loadProfile(importFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	database, err := connectStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	id, err := database.CreateProfile(ctx, storedName(importFile), profile)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Stored profile %s\n", id)
	return nil
}

func runImportTemplate(cmd *cobra.Command, _ []string) error {
	configs, err := loadSectionConfigs(importFile)
	if err != nil {
		return err
	}
	orientation := types.Orientation(layoutOrientation)
	if orientation != "" && !orientation.Valid() {
		return fmt.Errorf("invalid orientation: %s", orientation)
	}

	ctx := cmd.Context()
	database, err := connectStore(ctx, cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	id, err := database.CreateTemplate(ctx, storedName(importFile), orientation, configs)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Stored template %s with %d section(s)\n", id, len(configs))
	return nil
}
