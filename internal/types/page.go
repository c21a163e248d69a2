package types

// Page is one output page of a logical pagination run
type Page struct {
	Number          int                       `json:"page_number"`
	Sections        []Section                 `json:"sections"`
	PartialSections map[string]PartialSection `json:"partial_sections"`
	Layout          []string                  `json:"layout"` // section IDs in placement order
}

// NewPage returns an empty page with the given 1-based number.
func NewPage(number int) Page {
	return Page{
		Number:          number,
		Sections:        []Section{},
		PartialSections: map[string]PartialSection{},
		Layout:          []string{},
	}
}

// IsEmpty reports whether nothing has been placed on the page.
func (p Page) IsEmpty() bool {
	return len(p.Sections) == 0 && len(p.PartialSections) == 0
}

// PartialSection is the part of a split section placed on one page
type PartialSection struct {
	Type       SectionType `json:"type"`
	Items      []Item      `json:"items"`
	StartIndex int         `json:"start_index"`
	TotalItems int         `json:"total_items"`
	IsPartial  bool        `json:"is_partial"`
	Title      string      `json:"title"`
}

// Orientation is the page orientation
type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// Valid reports whether o is a supported orientation.
func (o Orientation) Valid() bool {
	return o == OrientationPortrait || o == OrientationLandscape
}

// PageGeometry describes a page in layout units (CSS pixels at 96 DPI)
type PageGeometry struct {
	Orientation  Orientation `json:"orientation"`
	PageWidth    float64     `json:"page_width"`
	PageHeight   float64     `json:"page_height"`
	MarginTop    float64     `json:"margin_top"`
	MarginBottom float64     `json:"margin_bottom"`
	MarginLeft   float64     `json:"margin_left"`
	MarginRight  float64     `json:"margin_right"`
}

// A4 at 96 DPI with 48px (0.5in) margins
const (
	a4Width       = 794
	a4Height      = 1123
	defaultMargin = 48
)

// GeometryFor resolves an orientation to its fixed page geometry.
// Unknown orientations resolve to portrait.
func GeometryFor(o Orientation) PageGeometry {
	g := PageGeometry{
		Orientation:  OrientationPortrait,
		PageWidth:    a4Width,
		PageHeight:   a4Height,
		MarginTop:    defaultMargin,
		MarginBottom: defaultMargin,
		MarginLeft:   defaultMargin,
		MarginRight:  defaultMargin,
	}
	if o == OrientationLandscape {
		g.Orientation = OrientationLandscape
		g.PageWidth, g.PageHeight = a4Height, a4Width
	}
	return g
}

// ContentHeight returns the vertical space available for content on one page.
func (g PageGeometry) ContentHeight() float64 {
	return g.PageHeight - g.MarginTop - g.MarginBottom
}

// ContentWidth returns the horizontal space available for content on one page.
func (g PageGeometry) ContentWidth() float64 {
	return g.PageWidth - g.MarginLeft - g.MarginRight
}
