package main

import (
	"fmt"

	"github.com/jonathan/cv-paginator/internal/observability"
	"github.com/jonathan/cv-paginator/internal/pagination"
	"github.com/jonathan/cv-paginator/internal/validation"
	"github.com/spf13/cobra"
)

var paginateCmd = &cobra.Command{
	Use:   "paginate",
	Short: "Distribute CV sections across pages",
	Long: `Runs the page allocator over a profile and writes the pages as JSON.

Experience and project sections are split item by item; every other section
is placed whole. A page_break entry in the section config starts a new page.`,
	RunE: runPaginate,
}

func init() {
	addLayoutFlags(paginateCmd)
	rootCmd.AddCommand(paginateCmd)
}

func runPaginate(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg, cmd.ErrOrStderr())

	sections, err := loadSections(layoutProfile, layoutSections)
	if err != nil {
		return err
	}

	opts := cfg.PaginationOptions()
	opts.OnPageCount = func(n int) {
		log.Info("Pagination complete", "pages", n)
	}
	res := pagination.Allocate(sections, opts)
	if res.Truncated {
		log.Warn("Content truncated at the page limit", "max_pages", opts.MaxPages)
	}

	if cfg.Verbose {
		p := observability.NewPrinter(cmd.ErrOrStderr())
		p.PrintPages(res)
		p.PrintViolations(validation.CheckPages(res))
	}

	if err := writeJSON(cmd.OutOrStdout(), layoutOutput, res); err != nil {
		return err
	}
	if layoutOutput != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d page(s) to %s\n", res.PageCount(), layoutOutput)
	}
	return nil
}
