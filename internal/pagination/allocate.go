package pagination

import (
	"fmt"

	"github.com/jonathan/cv-paginator/internal/types"
)

// DefaultMaxPages is the hard ceiling on pages emitted by one run.
const DefaultMaxPages = 20

// Options configures one pagination run
type Options struct {
	Geometry types.PageGeometry
	// ContentHeight overrides Geometry.ContentHeight() when positive.
	ContentHeight float64
	Heights       Heights
	MaxPages      int
	// OnPageCount, when set, receives the number of emitted pages once the run completes.
	OnPageCount func(int)
}

// DefaultOptions returns options for a portrait A4 page with the standard height table.
func DefaultOptions() Options {
	return Options{
		Geometry: types.GeometryFor(types.OrientationPortrait),
		Heights:  DefaultHeights(),
		MaxPages: DefaultMaxPages,
	}
}

func (o Options) withDefaults() Options {
	if o.Heights == (Heights{}) {
		o.Heights = DefaultHeights()
	}
	if o.MaxPages <= 0 {
		o.MaxPages = DefaultMaxPages
	}
	if o.Geometry == (types.PageGeometry{}) {
		o.Geometry = types.GeometryFor(types.OrientationPortrait)
	}
	return o
}

func (o Options) contentHeight() float64 {
	if o.ContentHeight > 0 {
		return o.ContentHeight
	}
	return o.Geometry.ContentHeight()
}

// PageContentHeight returns the content height a run with these options lays out against.
func (o Options) PageContentHeight() float64 {
	return o.withDefaults().contentHeight()
}

// Result is the outcome of a logical pagination run
type Result struct {
	Pages []types.Page `json:"pages"`
	// Truncated is set when content was dropped at the page cap.
	Truncated bool `json:"truncated"`
}

// PageCount returns the number of emitted pages.
func (r Result) PageCount() int {
	return len(r.Pages)
}

// Paginate distributes sections across pages and returns only the pages.
func Paginate(sections []types.Section, opts Options) []types.Page {
	return Allocate(sections, opts).Pages
}

// Allocate distributes sections across pages in display order.
//
// Splittable sections are divided item by item, the first part keeping the
// section title and later parts using the continuation title. Other sections
// are placed whole or moved to the next page. A page_break closes the current
// page. Each call owns its accumulators, so runs are independent.
func Allocate(sections []types.Section, opts Options) Result {
	opts = opts.withDefaults()
	a := &allocator{
		heights:  opts.Heights,
		splitter: NewSplitter(opts.Heights),
		content:  opts.contentHeight(),
		maxPages: opts.MaxPages,
		current:  types.NewPage(1),
	}

	for _, s := range sortSections(sections) {
		if a.done {
			break
		}
		if s.Type == types.SectionPageBreak {
			a.breakPending = true
			continue
		}
		if s.IsEmpty() {
			continue
		}
		if !a.flushBreak() {
			break
		}
		if s.Splittable() {
			a.placeSplittable(s)
		} else {
			a.placeWhole(s)
		}
	}

	if !a.done && !a.current.IsEmpty() {
		a.pages = append(a.pages, a.current)
	}
	if len(a.pages) == 0 {
		a.pages = []types.Page{types.NewPage(1)}
	}

	if opts.OnPageCount != nil {
		opts.OnPageCount(len(a.pages))
	}
	return Result{Pages: a.pages, Truncated: a.truncated}
}

// allocator holds the running state of one Allocate call
type allocator struct {
	heights  Heights
	splitter *Splitter
	content  float64
	maxPages int

	pages        []types.Page
	current      types.Page
	used         float64
	breakPending bool
	done         bool
	truncated    bool
}

// newPage closes the current page and opens the next one. It is only called
// when more content is waiting, so hitting the cap here means truncation.
func (a *allocator) newPage() bool {
	a.pages = append(a.pages, a.current)
	if len(a.pages) >= a.maxPages {
		a.done = true
		a.truncated = true
		return false
	}
	a.current = types.NewPage(len(a.pages) + 1)
	a.used = 0
	return true
}

// flushBreak honours a pending page_break before new content is placed.
func (a *allocator) flushBreak() bool {
	if !a.breakPending {
		return true
	}
	a.breakPending = false
	if a.current.IsEmpty() {
		return true
	}
	return a.newPage()
}

func (a *allocator) placeWhole(s types.Section) {
	h := a.heights.EstimateSection(s)
	if a.used+h > a.content && !a.current.IsEmpty() {
		if !a.newPage() {
			return
		}
	}
	a.current.Sections = append(a.current.Sections, s)
	a.current.Layout = append(a.current.Layout, SectionKey(s))
	a.used += h
}

func (a *allocator) placeSplittable(s types.Section) {
	key := SectionKey(s)
	remaining := s.Items
	start := 0

	for len(remaining) > 0 {
		first := start == 0
		title := s.Title
		if !first {
			title = ContinuationTitle(s.Title)
		}

		available := a.content - a.used - a.heights.Title
		res := a.splitter.Split(s.Type, remaining, available, title)
		if !res.Fits() {
			if !a.current.IsEmpty() {
				if !a.newPage() {
					return
				}
				continue
			}
			res = a.splitter.Force(s.Type, remaining, title)
		}

		if first && len(res.RemainingItems) == 0 {
			a.current.Sections = append(a.current.Sections, s)
		} else {
			a.current.PartialSections[key] = types.PartialSection{
				Type:       s.Type,
				Items:      res.Items(),
				StartIndex: start,
				TotalItems: len(s.Items),
				IsPartial:  len(res.PageItems) < len(s.Items),
				Title:      title,
			}
		}
		a.current.Layout = append(a.current.Layout, key)
		a.used += a.heights.Title + res.Used

		start += len(res.PageItems)
		remaining = res.RemainingItems
		if len(remaining) > 0 && !a.newPage() {
			return
		}
	}
}

// SectionKey identifies a section in page layouts and the partial-section map.
func SectionKey(s types.Section) string {
	if s.ID != "" {
		return s.ID
	}
	return fmt.Sprintf("%s-%d", s.Type, s.DisplayOrder)
}
