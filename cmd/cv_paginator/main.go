// Package main provides the cv_paginator CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_paginator",
	Short: "CV pagination engine",
	Long: `cv_paginator lays out CV content on fixed-size pages.

It splits experience and project sections across pages, keeps other sections
whole, honours explicit page breaks, and renders the result as a PDF.`,
	SilenceUsage: true,
}

var (
	configPath string
	logLevel   string
	logJSON    bool
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (defaults to LOG_LEVEL or info)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit JSON log lines")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print page summaries")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
