package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/cv-paginator/internal/config"
	"github.com/jonathan/cv-paginator/internal/logger"
	"github.com/spf13/cobra"
)

// Layout flags shared by paginate, flow, export-pdf and validate
var (
	layoutProfile           string
	layoutSections          string
	layoutOrientation       string
	layoutMaxPages          int
	layoutAchievementHeight float64
	layoutOutput            string
)

func addLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&layoutProfile, "profile", "p", "", "Path to profile JSON file (required)")
	cmd.Flags().StringVarP(&layoutSections, "sections", "s", "", "Path to section config JSON file (defaults to every built-in section)")
	cmd.Flags().StringVar(&layoutOrientation, "orientation", "", "Page orientation: portrait or landscape")
	cmd.Flags().IntVar(&layoutMaxPages, "max-pages", 0, "Maximum pages to emit (default 20)")
	cmd.Flags().Float64Var(&layoutAchievementHeight, "achievement-height", 0, "Override the estimated height of one achievement item")
	cmd.Flags().StringVarP(&layoutOutput, "out", "o", "", "Path to output file (defaults to stdout)")

	if err := cmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
}

// resolveConfig merges, in priority order, explicit flags, the --config
// file and the environment, then validates the result.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	// Only override if the flag was explicitly set
	flags := cmd.Flags()
	if flags.Changed("orientation") {
		cfg.Orientation = layoutOrientation
	}
	if flags.Changed("max-pages") {
		cfg.MaxPages = layoutMaxPages
	}
	if flags.Changed("achievement-height") {
		cfg.AchievementItemHeight = layoutAchievementHeight
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-json") {
		cfg.LogJSON = logJSON
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("port") {
		cfg.Port = servePort
	}
	if flags.Changed("db-url") {
		cfg.DatabaseURL = databaseURL
	}

	cfg = cfg.MergeWithDefaults(config.FromEnv())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config, out io.Writer) logger.Logger {
	lc := logger.DefaultConfig()
	lc.Level = logger.ParseLevel(cfg.LogLevel)
	lc.JSON = cfg.LogJSON
	lc.Output = out
	return logger.New(lc)
}

// writeJSON writes v as indented JSON to path, or to stdout when path is empty.
func writeJSON(stdout io.Writer, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return nil
}
