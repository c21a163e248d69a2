package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/cv-paginator/internal/observability"
	"github.com/jonathan/cv-paginator/internal/pagination"
	"github.com/jonathan/cv-paginator/internal/schemas"
	"github.com/jonathan/cv-paginator/internal/validation"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a profile and its section config",
	Long: `Checks the profile and section config documents against their schemas, then
paginates them and checks the pages for truncation, empty pages and broken
continuation titles. Violations are written as JSON; error-level violations
make the command fail.`,
	RunE: runValidate,
}

func init() {
	addLayoutFlags(validateCmd)
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sections, err := loadSections(layoutProfile, layoutSections)
	if err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("schema validation failed: %w", err)
		}
		return err
	}

	res := pagination.Allocate(sections, cfg.PaginationOptions())
	violations := validation.CheckPages(res)

	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintViolations(violations)
	}
	if err := writeJSON(cmd.OutOrStdout(), layoutOutput, violations); err != nil {
		return err
	}

	if violations.HasErrors() {
		// Return error to indicate violations were found (exit code 1)
		return fmt.Errorf("validation found %d violation(s)", violations.Count())
	}
	if layoutOutput != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %d page(s)\n", res.PageCount())
	}
	return nil
}
