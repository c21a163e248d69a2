package pagination

import "github.com/jonathan/cv-paginator/internal/types"

// BlockKind tags the variant of a ContentBlock
type BlockKind string

const (
	BlockSection   BlockKind = "section"
	BlockPageBreak BlockKind = "page_break"
	BlockImage     BlockKind = "image"
	BlockItem      BlockKind = "item"
)

// ImageRef points at an image the renderer draws at a fixed size
type ImageRef struct {
	Source string  `json:"source"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ContentBlock is the unit scheduled by Flow.
// Section blocks carry the section with only the items belonging to this
// block; StartIndex and TotalItems locate those items in the original list.
type ContentBlock struct {
	Kind            BlockKind `json:"kind"`
	EstimatedHeight float64   `json:"estimated_height"`
	// MinHeight is the smallest height worth placing before preferring a new page.
	MinHeight float64 `json:"min_height,omitempty"`
	CanSplit  bool    `json:"can_split"`

	Title      string         `json:"title,omitempty"`
	Section    *types.Section `json:"section,omitempty"`
	StartIndex int            `json:"start_index,omitempty"`
	TotalItems int            `json:"total_items,omitempty"`

	Image *ImageRef   `json:"image,omitempty"`
	Item  *types.Item `json:"item,omitempty"`
}

// IsContinuation reports whether the block holds a later part of a split section.
func (b ContentBlock) IsContinuation() bool {
	return b.Kind == BlockSection && b.StartIndex > 0
}

// PageBreakBlock returns the zero-height control block that forces a new page.
func PageBreakBlock() ContentBlock {
	return ContentBlock{Kind: BlockPageBreak}
}

// ImageBlock returns a block for an image. Images never split.
func ImageBlock(ref ImageRef) ContentBlock {
	return ContentBlock{
		Kind:            BlockImage,
		EstimatedHeight: ref.Height,
		Image:           &ref,
	}
}

// ItemBlock returns a block for a single item outside any section. Bare items never split.
func ItemBlock(item types.Item, heights Heights) ContentBlock {
	return ContentBlock{
		Kind:            BlockItem,
		EstimatedHeight: heights.EstimateItem(item.Type, item) + heights.ItemMargin,
		Item:            &item,
	}
}

// SectionBlock lowers a section into one block. Splittable sections get a
// MinHeight of their title plus first item.
func SectionBlock(s types.Section, heights Heights) ContentBlock {
	if s.Type == types.SectionPageBreak {
		return PageBreakBlock()
	}
	if !s.Splittable() {
		section := s
		return ContentBlock{
			Kind:            BlockSection,
			EstimatedHeight: heights.EstimateSection(s),
			Title:           s.Title,
			Section:         &section,
			TotalItems:      len(s.Items),
		}
	}
	return sectionPart(s, s.Items, 0, len(s.Items), s.Title, heights)
}

// sectionPart builds a splittable block holding the items of s that start at
// index start of the original list of total items.
func sectionPart(s types.Section, items []types.Item, start, total int, title string, heights Heights) ContentBlock {
	part := s
	part.Items = items

	block := ContentBlock{
		Kind:            BlockSection,
		EstimatedHeight: heights.Title + heights.EstimateItems(s.Type, items),
		CanSplit:        true,
		Title:           title,
		Section:         &part,
		StartIndex:      start,
		TotalItems:      total,
	}
	if len(items) > 0 {
		block.MinHeight = heights.Title + heights.EstimateItem(s.Type, items[0]) + heights.ItemMargin
	}
	return block
}

// LowerSections converts sections to content blocks in display order,
// dropping sections without content.
func LowerSections(sections []types.Section, heights Heights) []ContentBlock {
	blocks := make([]ContentBlock, 0, len(sections))
	for _, s := range sortSections(sections) {
		if s.IsEmpty() {
			continue
		}
		blocks = append(blocks, SectionBlock(s, heights))
	}
	return blocks
}
