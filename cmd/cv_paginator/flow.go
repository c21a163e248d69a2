package main

import (
	"fmt"

	"github.com/jonathan/cv-paginator/internal/observability"
	"github.com/jonathan/cv-paginator/internal/pagination"
	"github.com/jonathan/cv-paginator/internal/validation"
	"github.com/spf13/cobra"
)

var flowCmd = &cobra.Command{
	Use:   "flow",
	Short: "Lay out CV content blocks with absolute offsets",
	Long:  "Runs the block flow engine used for printing and writes the placed blocks of every page as JSON.",
	RunE:  runFlow,
}

func init() {
	addLayoutFlags(flowCmd)
	rootCmd.AddCommand(flowCmd)
}

func runFlow(cmd *cobra.Command, _ []string) error {
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
		log.Info("Flow complete", "pages", n)
	}
	res := pagination.FlowSections(sections, opts)
	if res.Truncated {
		log.Warn("Content truncated at the page limit", "max_pages", opts.MaxPages)
	}

	if cfg.Verbose {
		p := observability.NewPrinter(cmd.ErrOrStderr())
		p.PrintFlow(res)
		p.PrintViolations(validation.CheckFlow(res, opts.PageContentHeight()))
	}

	if err := writeJSON(cmd.OutOrStdout(), layoutOutput, res); err != nil {
		return err
	}
	if layoutOutput != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d page(s) to %s\n", res.PageCount(), layoutOutput)
	}
	return nil
}
