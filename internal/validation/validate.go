package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/cv-paginator/internal/pagination"
	"github.com/jonathan/cv-paginator/internal/types"
)

// Violation types reported by the checks in this package
const (
	ViolationPageLimit         = "page_limit"
	ViolationOversizedBlock    = "oversized_block"
	ViolationEmptyPage         = "empty_page"
	ViolationContinuationTitle = "continuation_title"
	ViolationItemGap           = "item_gap"
	ViolationMissingLayout     = "missing_layout_entry"
	ViolationPageCountMismatch = "page_count_mismatch"
)

const continuedSuffix = " (continued)"

func pageRef(n int) *int {
	return &n
}

// CheckPages inspects a logical pagination result. It reports truncation,
// empty pages, partial sections whose title or start index break the
// continuation rules, and layout entries with nothing placed behind them.
func CheckPages(res pagination.Result) *types.Violations {
	vs := &types.Violations{Violations: []types.Violation{}}

	if res.Truncated {
		vs.Add(types.Violation{
			Type:     ViolationPageLimit,
			Severity: types.SeverityError,
			Details:  fmt.Sprintf("content truncated at the %d page limit", len(res.Pages)),
		})
	}

	// next expected StartIndex per split section
	next := map[string]int{}

	for _, page := range res.Pages {
		if page.IsEmpty() && len(res.Pages) > 1 {
			vs.Add(types.Violation{
				Type:     ViolationEmptyPage,
				Severity: types.SeverityWarning,
				Details:  "page has no content",
				Page:     pageRef(page.Number),
			})
		}

		placed := map[string]bool{}
		for _, s := range page.Sections {
			placed[pagination.SectionKey(s)] = true
		}

		for key, part := range page.PartialSections {
			placed[key] = true

			continued := strings.HasSuffix(part.Title, continuedSuffix)
			if (part.StartIndex > 0) != continued {
				vs.Add(types.Violation{
					Type:             ViolationContinuationTitle,
					Severity:         types.SeverityError,
					Details:          fmt.Sprintf("part starting at item %d has title %q", part.StartIndex, part.Title),
					AffectedSections: []string{key},
					Page:             pageRef(page.Number),
				})
			}

			if part.StartIndex != next[key] {
				vs.Add(types.Violation{
					Type:             ViolationItemGap,
					Severity:         types.SeverityError,
					Details:          fmt.Sprintf("expected part to start at item %d, got %d", next[key], part.StartIndex),
					AffectedSections: []string{key},
					Page:             pageRef(page.Number),
				})
			}
			next[key] = part.StartIndex + len(part.Items)
		}

		for _, key := range page.Layout {
			if !placed[key] {
				vs.Add(types.Violation{
					Type:             ViolationMissingLayout,
					Severity:         types.SeverityError,
					Details:          fmt.Sprintf("layout lists %q but the page does not hold it", key),
					AffectedSections: []string{key},
					Page:             pageRef(page.Number),
				})
			}
		}
	}

	return vs
}

// CheckFlow inspects a block flow result laid out against contentHeight.
// Placements running past the bottom of the content box are reported as
// warnings: they are oversized blocks placed alone on a page.
func CheckFlow(res pagination.FlowResult, contentHeight float64) *types.Violations {
	vs := &types.Violations{Violations: []types.Violation{}}

	if res.Truncated {
		vs.Add(types.Violation{
			Type:     ViolationPageLimit,
			Severity: types.SeverityError,
			Details:  fmt.Sprintf("content truncated at the %d page limit", len(res.Pages)),
		})
	}

	for _, page := range res.Pages {
		number := page.Index + 1
		if len(page.Placements) == 0 && len(res.Pages) > 1 {
			vs.Add(types.Violation{
				Type:     ViolationEmptyPage,
				Severity: types.SeverityWarning,
				Details:  "page has no content",
				Page:     pageRef(number),
			})
		}

		for _, pl := range page.Placements {
			var affected []string
			if pl.Block.Section != nil {
				affected = []string{pl.Block.Section.ID}
			}

			if pl.Y+pl.Height > contentHeight {
				vs.Add(types.Violation{
					Type:             ViolationOversizedBlock,
					Severity:         types.SeverityWarning,
					Details:          fmt.Sprintf("%s block ends at %.0f, past the %.0f content height", pl.Block.Kind, pl.Y+pl.Height, contentHeight),
					AffectedSections: affected,
					Page:             pageRef(number),
				})
			}

			if pl.Block.Kind == pagination.BlockSection && pl.Block.CanSplit {
				continued := strings.HasSuffix(pl.Block.Title, continuedSuffix)
				if pl.Block.IsContinuation() != continued {
					vs.Add(types.Violation{
						Type:             ViolationContinuationTitle,
						Severity:         types.SeverityError,
						Details:          fmt.Sprintf("part starting at item %d has title %q", pl.Block.StartIndex, pl.Block.Title),
						AffectedSections: affected,
						Page:             pageRef(number),
					})
				}
			}
		}
	}

	return vs
}

// CheckPDF counts the pages of a rendered document and reports a mismatch
// with the flow it was rendered from.
func CheckPDF(pdfData []byte, res pagination.FlowResult) (*types.Violations, error) {
	count, err := CountPDFPagesBytes(pdfData)
	if err != nil {
		return nil, err
	}

	vs := &types.Violations{Violations: []types.Violation{}}
	if count != res.PageCount() {
		vs.Add(types.Violation{
			Type:     ViolationPageCountMismatch,
			Severity: types.SeverityError,
			Details:  fmt.Sprintf("PDF has %d pages, flow produced %d", count, res.PageCount()),
		})
	}
	return vs, nil
}
