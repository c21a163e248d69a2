package rendering

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"github.com/jonathan/cv-paginator/internal/pagination"
	"github.com/jonathan/cv-paginator/internal/types"
)

// layout units are CSS pixels at 96 DPI; the PDF is laid out in points
const pxToPt = 72.0 / 96.0

// Font sizes in points
const (
	titleFontSize   = 13
	headingFontSize = 10.5
	bodyFontSize    = 9
	footerFontSize  = 8
)

// RenderOptions contains options for rendering
type RenderOptions struct {
	Title    string
	Author   string
	Subject  string
	Creator  string
	Geometry types.PageGeometry
	// PageNumbers prints "Page i of n" in the bottom margin.
	PageNumbers bool
}

// Renderer draws flow pages with fpdf core fonts
type Renderer struct {
	FontFamily string
	// DrawBoxes outlines every placement with its estimated height.
	DrawBoxes bool
}

// NewRenderer creates a new PDF renderer
func NewRenderer() *Renderer {
	return &Renderer{FontFamily: "Helvetica"}
}

// Render writes one PDF page per flow page to w. The document always has
// exactly len(res.Pages) pages: text that overruns a placement's estimated
// height is clipped instead of spilling onto a new page.
func (r *Renderer) Render(w io.Writer, res pagination.FlowResult, opts RenderOptions) error {
	if len(res.Pages) == 0 {
		return &RenderError{Message: "nothing to render: flow has no pages"}
	}

	geom := opts.Geometry
	if geom == (types.PageGeometry{}) {
		geom = types.GeometryFor(types.OrientationPortrait)
	}

	orient := "P"
	if geom.Orientation == types.OrientationLandscape {
		orient = "L"
	}

	pdf := fpdf.New(orient, "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(geom.MarginLeft*pxToPt, geom.MarginTop*pxToPt, geom.MarginRight*pxToPt)
	pdf.SetTitle(opts.Title, true)
	pdf.SetAuthor(opts.Author, true)
	pdf.SetSubject(opts.Subject, true)
	pdf.SetCreator(opts.Creator, true)

	d := &drawer{
		pdf:     pdf,
		tr:      pdf.UnicodeTranslatorFromDescriptor(""),
		family:  r.FontFamily,
		geom:    geom,
		boxes:   r.DrawBoxes,
		content: geom.ContentWidth() * pxToPt,
	}
	if d.family == "" {
		d.family = "Helvetica"
	}

	total := len(res.Pages)
	for i, page := range res.Pages {
		pdf.AddPage()
		for _, pl := range page.Placements {
			d.placement(pl)
		}
		if opts.PageNumbers {
			d.footer(i+1, total)
		}
		if pdf.Err() {
			return &RenderError{Page: i + 1, Message: "failed to draw page", Cause: pdf.Error()}
		}
	}

	if err := pdf.Output(w); err != nil {
		return &RenderError{Message: "failed to write PDF", Cause: err}
	}
	return nil
}

// RenderBytes renders res and returns the PDF document.
func (r *Renderer) RenderBytes(res pagination.FlowResult, opts RenderOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, res, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawer carries the document state for one Render call
type drawer struct {
	pdf     *fpdf.Fpdf
	tr      func(string) string
	family  string
	geom    types.PageGeometry
	boxes   bool
	content float64 // content width in points
}

func (d *drawer) x() float64 {
	return d.geom.MarginLeft * pxToPt
}

// y converts a content-relative layout offset to a page coordinate in points.
func (d *drawer) y(offset float64) float64 {
	return (d.geom.MarginTop + offset) * pxToPt
}

func (d *drawer) placement(pl pagination.Placement) {
	top := d.y(pl.Y)
	bottom := d.y(pl.Y + pl.Height)

	if d.boxes {
		d.pdf.SetDrawColor(200, 200, 200)
		d.pdf.Rect(d.x(), top, d.content, bottom-top, "D")
	}

	b := pl.Block
	switch b.Kind {
	case pagination.BlockSection:
		d.section(b, top, bottom)
	case pagination.BlockItem:
		if b.Item != nil {
			d.item(*b.Item, top, bottom)
		}
	case pagination.BlockImage:
		if b.Image != nil {
			d.image(*b.Image, top)
		}
	}
}

func (d *drawer) section(b pagination.ContentBlock, top, bottom float64) {
	if b.Section == nil {
		return
	}
	s := b.Section
	y := top

	if s.Type == types.SectionGeneral {
		for _, item := range s.Items {
			y = d.header(item, y, bottom)
		}
		return
	}

	if b.Title != "" {
		d.pdf.SetFont(d.family, "B", titleFontSize)
		d.pdf.SetTextColor(20, 20, 20)
		y += titleFontSize
		d.pdf.Text(d.x(), y, d.tr(CleanText(b.Title)))
		d.pdf.SetDrawColor(120, 120, 120)
		d.pdf.Line(d.x(), y+3, d.x()+d.content, y+3)
		y += 8
	}

	if s.Type.IsSkills() {
		d.skills(s.Items, y, bottom)
		return
	}
	for _, item := range s.Items {
		y = d.item(item, y, bottom)
	}
}

// header draws the general information block.
func (d *drawer) header(item types.Item, y, bottom float64) float64 {
	d.pdf.SetTextColor(0, 0, 0)
	y = d.line(item.Heading, "B", 18, y, bottom)
	d.pdf.SetTextColor(70, 70, 70)
	y = d.line(item.Subheading, "", headingFontSize, y, bottom)
	y = d.line(item.Period, "", bodyFontSize, y, bottom)
	return d.paragraph(item.Description, y, bottom)
}

// item draws one entry and returns the offset below it.
func (d *drawer) item(item types.Item, y, bottom float64) float64 {
	y += 4
	d.pdf.SetTextColor(0, 0, 0)
	heading := item.Heading
	if item.Subheading != "" {
		heading += ", " + item.Subheading
	}
	headingY := d.line(heading, "B", headingFontSize, y, bottom)

	if item.Period != "" && headingY > y {
		d.pdf.SetFont(d.family, "", bodyFontSize)
		period := d.tr(CleanText(item.Period))
		d.pdf.Text(d.x()+d.content-d.pdf.GetStringWidth(period), y+headingFontSize, period)
	}

	d.pdf.SetTextColor(60, 60, 60)
	return d.paragraph(item.Description, headingY, bottom) + 2
}

func (d *drawer) skills(items []types.Item, y, bottom float64) {
	names := make([]string, 0, len(items))
	for _, item := range items {
		name := item.Heading
		if item.Subheading != "" {
			name = fmt.Sprintf("%s (%s)", name, item.Subheading)
		}
		names = append(names, name)
	}
	d.pdf.SetTextColor(40, 40, 40)
	d.paragraph(strings.Join(names, "  |  "), y+2, bottom)
}

// line draws a single line of text if it fits above bottom.
func (d *drawer) line(text, style string, size, y, bottom float64) float64 {
	text = CleanText(text)
	if text == "" || y+size > bottom {
		return y
	}
	d.pdf.SetFont(d.family, style, size)
	y += size
	d.pdf.Text(d.x(), y, d.tr(text))
	return y + 2
}

// paragraph wraps text to the content width, clipping at bottom.
func (d *drawer) paragraph(text string, y, bottom float64) float64 {
	text = CleanText(text)
	if text == "" {
		return y
	}
	d.pdf.SetFont(d.family, "", bodyFontSize)
	leading := bodyFontSize * 1.3
	for _, l := range d.wrap(text, d.content) {
		if y+leading > bottom {
			break
		}
		y += leading
		d.pdf.Text(d.x(), y, l)
	}
	return y
}

// wrap breaks text at spaces into lines no wider than width, measuring in
// the current font. Words wider than a line get a line of their own.
func (d *drawer) wrap(text string, width float64) []string {
	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		word = d.tr(word)
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if current != "" && d.pdf.GetStringWidth(candidate) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func (d *drawer) image(ref pagination.ImageRef, top float64) {
	w := ref.Width * pxToPt
	h := ref.Height * pxToPt
	if w <= 0 {
		w = d.content
	}
	if _, err := os.Stat(ref.Source); err == nil {
		d.pdf.ImageOptions(ref.Source, d.x(), top, w, h, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
		return
	}
	// missing images keep their slot as an outlined placeholder
	d.pdf.SetDrawColor(160, 160, 160)
	d.pdf.Rect(d.x(), top, w, h, "D")
	d.pdf.SetFont(d.family, "I", bodyFontSize)
	d.pdf.SetTextColor(150, 150, 150)
	d.pdf.Text(d.x()+4, top+bodyFontSize+4, d.tr(CleanText(ref.Source)))
}

func (d *drawer) footer(page, total int) {
	d.pdf.SetFont(d.family, "", footerFontSize)
	d.pdf.SetTextColor(130, 130, 130)
	label := fmt.Sprintf("Page %d of %d", page, total)
	_, pageHeight := d.pdf.GetPageSize()
	x := d.x() + d.content - d.pdf.GetStringWidth(label)
	d.pdf.Text(x, pageHeight-d.geom.MarginBottom*pxToPt/2, label)
}
