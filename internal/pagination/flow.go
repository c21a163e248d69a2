package pagination

import "github.com/jonathan/cv-paginator/internal/types"

// Cursor is the position of the flow on the page sequence. It is a value:
// every operation returns the updated cursor and leaves the receiver alone.
type Cursor struct {
	PageIndex     int     `json:"page_index"`
	Offset        float64 `json:"offset"`
	ContentHeight float64 `json:"content_height"`
}

// NewCursor returns a cursor at the top of the first page.
func NewCursor(contentHeight float64) Cursor {
	return Cursor{ContentHeight: contentHeight}
}

// Remaining returns the vertical space left on the current page.
func (c Cursor) Remaining() float64 {
	return c.ContentHeight - c.Offset
}

// AtTop reports whether nothing has been placed on the current page.
func (c Cursor) AtTop() bool {
	return c.Offset == 0
}

// CanFit reports whether height fits in the remaining space. A positive
// minHeight is compared instead, answering whether the block is worth
// starting on this page at all.
func (c Cursor) CanFit(height, minHeight float64) bool {
	need := height
	if minHeight > 0 {
		need = minHeight
	}
	return need <= c.Remaining()
}

// Advance moves the cursor down by height.
func (c Cursor) Advance(height float64) Cursor {
	c.Offset += height
	return c
}

// NewPage moves the cursor to the top of the next page.
func (c Cursor) NewPage() Cursor {
	c.PageIndex++
	c.Offset = 0
	return c
}

// Reserve advances by height only if it fits.
func (c Cursor) Reserve(height float64) (Cursor, bool) {
	if !c.CanFit(height, 0) {
		return c, false
	}
	return c.Advance(height), true
}

// Placement is a block positioned on a page; Y is relative to the content box top
type Placement struct {
	Block  ContentBlock `json:"block"`
	Y      float64      `json:"y"`
	Height float64      `json:"height"`
}

// FlowPage holds the placements of one printed page
type FlowPage struct {
	Index      int         `json:"index"`
	Placements []Placement `json:"placements"`
}

// FlowResult is the outcome of a block flow run
type FlowResult struct {
	Pages     []FlowPage `json:"pages"`
	Truncated bool       `json:"truncated"`
}

// PageCount returns the number of flow pages.
func (r FlowResult) PageCount() int {
	return len(r.Pages)
}

// SplitBlock divides a block at the available height into the part that
// fits and the parts that follow. Only splittable section blocks divide;
// first is nil when nothing fits.
func SplitBlock(block ContentBlock, available float64, heights Heights) (*ContentBlock, []ContentBlock) {
	if block.Kind != BlockSection || !block.CanSplit || block.Section == nil {
		return nil, []ContentBlock{block}
	}
	res := NewSplitter(heights).Split(block.Section.Type, block.Section.Items, available-heights.Title, block.Title)
	if !res.Fits() {
		return nil, []ContentBlock{block}
	}
	return splitSection(block, res, heights)
}

// forceSplit places the first item of an oversized section block.
func forceSplit(block ContentBlock, heights Heights) (*ContentBlock, []ContentBlock) {
	res := NewSplitter(heights).Force(block.Section.Type, block.Section.Items, block.Title)
	return splitSection(block, res, heights)
}

func splitSection(block ContentBlock, res SplitResult, heights Heights) (*ContentBlock, []ContentBlock) {
	s := *block.Section
	first := sectionPart(s, res.Items(), block.StartIndex, block.TotalItems, block.Title, heights)
	first.EstimatedHeight = heights.Title + res.Used
	if len(res.RemainingItems) == 0 {
		return &first, nil
	}

	base := s.Title
	next := sectionPart(s, res.RemainingItems, block.StartIndex+len(res.PageItems), block.TotalItems, ContinuationTitle(base), heights)
	return &first, []ContentBlock{next}
}

// Flow places blocks on pages in a single pass. A block that fits is placed;
// a splittable block worth starting here is split and its remainder carried
// to the next page; anything else moves whole to a new page. The top of an
// empty page always takes the block, so an oversized block never stalls the
// flow. Page breaks close the current page without taking space.
func Flow(blocks []ContentBlock, opts Options) FlowResult {
	opts = opts.withDefaults()
	f := &flower{
		heights:  opts.Heights,
		maxPages: opts.MaxPages,
		cursor:   NewCursor(opts.contentHeight()),
		pages:    []FlowPage{{Index: 0, Placements: []Placement{}}},
	}

	work := append([]ContentBlock(nil), blocks...)
	for len(work) > 0 && !f.done {
		block := work[0]
		work = work[1:]

		if block.Kind == BlockPageBreak {
			f.breakPending = true
			continue
		}
		if !f.flushBreak() {
			break
		}

		if f.cursor.CanFit(block.EstimatedHeight, 0) {
			f.place(block)
			continue
		}

		if block.CanSplit && f.cursor.CanFit(block.EstimatedHeight, block.MinHeight) {
			if first, rest := SplitBlock(block, f.cursor.Remaining(), f.heights); first != nil {
				f.place(*first)
				work = append(rest, work...)
				if len(rest) > 0 {
					f.newPage()
				}
				continue
			}
		}

		if f.cursor.AtTop() {
			if block.CanSplit && block.Section != nil && len(block.Section.Items) > 1 {
				first, rest := forceSplit(block, f.heights)
				f.place(*first)
				work = append(rest, work...)
				f.newPage()
				continue
			}
			f.place(block)
			continue
		}

		// defer the whole block to the next page
		work = append([]ContentBlock{block}, work...)
		f.newPage()
	}

	if n := len(f.pages); n > 1 && len(f.pages[n-1].Placements) == 0 {
		f.pages = f.pages[:n-1]
	}

	if opts.OnPageCount != nil {
		opts.OnPageCount(len(f.pages))
	}
	return FlowResult{Pages: f.pages, Truncated: f.truncated}
}

// flower holds the running state of one Flow call
type flower struct {
	heights  Heights
	maxPages int

	cursor       Cursor
	pages        []FlowPage
	breakPending bool
	done         bool
	truncated    bool
}

func (f *flower) place(block ContentBlock) {
	page := &f.pages[len(f.pages)-1]
	page.Placements = append(page.Placements, Placement{
		Block:  block,
		Y:      f.cursor.Offset,
		Height: block.EstimatedHeight,
	})
	f.cursor = f.cursor.Advance(block.EstimatedHeight)
}

// newPage opens the next page, or stops the flow at the page cap.
func (f *flower) newPage() bool {
	if len(f.pages) >= f.maxPages {
		f.done = true
		f.truncated = true
		return false
	}
	f.cursor = f.cursor.NewPage()
	f.pages = append(f.pages, FlowPage{Index: f.cursor.PageIndex, Placements: []Placement{}})
	return true
}

func (f *flower) flushBreak() bool {
	if !f.breakPending {
		return true
	}
	f.breakPending = false
	if f.cursor.AtTop() {
		return true
	}
	return f.newPage()
}

// FlowSections lowers sections to blocks and flows them.
func FlowSections(sections []types.Section, opts Options) FlowResult {
	opts = opts.withDefaults()
	return Flow(LowerSections(sections, opts.Heights), opts)
}
