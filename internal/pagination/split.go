package pagination

import "github.com/jonathan/cv-paginator/internal/types"

const continuedSuffix = " (continued)"

// ContinuationTitle returns the label used for the second and later parts of a split section.
func ContinuationTitle(title string) string {
	return title + continuedSuffix
}

// SizedItem is an item placed on the current page together with its estimated height
type SizedItem struct {
	Content         types.Item `json:"content"`
	EstimatedHeight float64    `json:"estimated_height"`
}

// SplitResult partitions a section's remaining items against a height budget
type SplitResult struct {
	Title          string
	PageItems      []SizedItem
	RemainingItems []types.Item
	// Used is the height consumed by PageItems, margins included, title excluded.
	Used float64
}

// Fits reports whether at least one item fitted the budget.
func (r SplitResult) Fits() bool {
	return len(r.PageItems) > 0
}

// Items returns the fitted items without their heights.
func (r SplitResult) Items() []types.Item {
	items := make([]types.Item, len(r.PageItems))
	for i, si := range r.PageItems {
		items[i] = si.Content
	}
	return items
}

// Splitter partitions splittable sections against a height budget
type Splitter struct {
	heights Heights
}

// NewSplitter creates a Splitter using the given height table.
func NewSplitter(heights Heights) *Splitter {
	return &Splitter{heights: heights}
}

// Split walks items in order and keeps every item whose height plus margin
// still fits in available; the first item that does not fit and everything
// after it become RemainingItems. An empty PageItems means nothing fits here.
func (s *Splitter) Split(t types.SectionType, items []types.Item, available float64, title string) SplitResult {
	result := SplitResult{Title: title}

	used := 0.0
	cut := len(items)
	for i, item := range items {
		h := s.heights.EstimateItem(t, item)
		if used+h+s.heights.ItemMargin > available {
			cut = i
			break
		}
		used += h + s.heights.ItemMargin
		result.PageItems = append(result.PageItems, SizedItem{Content: item, EstimatedHeight: h})
	}

	result.Used = used
	if cut < len(items) {
		result.RemainingItems = items[cut:]
	}
	return result
}

// Force places the first item regardless of the budget. It is the progress
// guarantee for an item taller than a whole empty page.
func (s *Splitter) Force(t types.SectionType, items []types.Item, title string) SplitResult {
	if len(items) == 0 {
		return SplitResult{Title: title}
	}
	h := s.heights.EstimateItem(t, items[0])
	result := SplitResult{
		Title:     title,
		PageItems: []SizedItem{{Content: items[0], EstimatedHeight: h}},
		Used:      h + s.heights.ItemMargin,
	}
	if len(items) > 1 {
		result.RemainingItems = items[1:]
	}
	return result
}
