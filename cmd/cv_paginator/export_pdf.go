package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jonathan/cv-paginator/internal/observability"
	"github.com/jonathan/cv-paginator/internal/pagination"
	"github.com/jonathan/cv-paginator/internal/rendering"
	"github.com/jonathan/cv-paginator/internal/validation"
	"github.com/spf13/cobra"
)

var exportPDFCmd = &cobra.Command{
	Use:   "export-pdf",
	Short: "Render a profile as a paginated PDF",
	Long: `Lays out the profile with the block flow engine and draws one PDF page per
flow page. With --check the rendered page count is read back and compared
with the flow.`,
	RunE: runExportPDF,
}

var (
	exportTitle       string
	exportPageNumbers bool
	exportDrawBoxes   bool
	exportCheck       bool
)

func init() {
	addLayoutFlags(exportPDFCmd)
	exportPDFCmd.Flags().StringVar(&exportTitle, "title", "", "Document title metadata")
	exportPDFCmd.Flags().BoolVar(&exportPageNumbers, "page-numbers", false, "Print page numbers in the footer")
	exportPDFCmd.Flags().BoolVar(&exportDrawBoxes, "draw-boxes", false, "Outline every placed block with its estimated height")
	exportPDFCmd.Flags().BoolVar(&exportCheck, "check", false, "Verify the PDF page count matches the layout")

	if err := exportPDFCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(exportPDFCmd)
}

func runExportPDF(cmd *cobra.Command, _ []string) error {
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
	res := pagination.FlowSections(sections, opts)
	if res.Truncated {
		log.Warn("Content truncated at the page limit", "max_pages", opts.MaxPages)
	}
	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintFlow(res)
	}

	renderer := rendering.NewRenderer()
	renderer.DrawBoxes = exportDrawBoxes

	var buf bytes.Buffer
	err = renderer.Render(&buf, res, rendering.RenderOptions{
		Title:       exportTitle,
		Creator:     "cv_paginator",
		Geometry:    opts.Geometry,
		PageNumbers: exportPageNumbers,
	})
	if err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}

	if exportCheck {
		violations, err := validation.CheckPDF(buf.Bytes(), res)
		if err != nil {
			return fmt.Errorf("failed to check PDF: %w", err)
		}
		if violations.HasErrors() {
			observability.NewPrinter(cmd.ErrOrStderr()).PrintViolations(violations)
			return fmt.Errorf("PDF check found %d violation(s)", violations.Count())
		}
		log.Debug("PDF page count matches layout", "pages", res.PageCount())
	}

	if err := ensureDir(layoutOutput); err != nil {
		return err
	}
	if err := os.WriteFile(layoutOutput, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	log.Info("PDF written", "path", layoutOutput, "pages", res.PageCount())
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d page(s) to %s\n", res.PageCount(), layoutOutput)
	return nil
}
