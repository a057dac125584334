// Package pdf lays out the visitor reports.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	rowHeight    = 7.0
	lineFactor   = 1.5
)

// Toggled by tests to inspect the content stream.
var compress = true

// Report is a rendered PDF ready for download.
type Report struct {
	FileName string
	Content  []byte
}

// document wraps fpdf and tracks the bottom of the last drawn table,
// which is where the next block starts.
type document struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	finalY float64
}

func newDocument() *document {
	p := fpdf.New("P", "mm", "A4", "")
	p.SetMargins(marginLeft, marginTop, marginRight)
	p.SetAutoPageBreak(false, marginBottom)
	p.SetCompression(compress)
	p.SetCreator("PLZ Erfassung", true)
	p.AddPage()
	p.SetFont("Helvetica", "", 12)

	return &document{
		pdf: p,
		tr:  p.UnicodeTranslatorFromDescriptor(""),
	}
}

func (d *document) pageBottom() float64 {
	_, h := d.pdf.GetPageSize()
	return h - marginBottom
}

func (d *document) contentWidth() float64 {
	w, _ := d.pdf.GetPageSize()
	return w - marginLeft - marginRight
}

// ensureSpace starts a new page when h does not fit below y and returns
// the y to draw at.
func (d *document) ensureSpace(y, h float64) float64 {
	if y+h <= d.pageBottom() {
		return y
	}
	d.pdf.AddPage()
	return marginTop
}

func (d *document) title(text string, y float64) {
	d.pdf.SetFontSize(18)
	d.pdf.Text(marginLeft, y, d.tr(text))
	d.pdf.SetFontSize(12)
}

// text draws lines starting at baseline y and returns the baseline after the last one.
func (d *document) text(lines []string, y float64) float64 {
	_, unit := d.pdf.GetFontSize()
	step := unit * lineFactor
	for _, l := range lines {
		y = d.ensureSpace(y, step)
		d.pdf.Text(marginLeft, y, d.tr(l))
		y += step
	}
	return y
}

func (d *document) rule(y float64) {
	d.pdf.SetDrawColor(160, 160, 160)
	d.pdf.Line(marginLeft, y, marginLeft+d.contentWidth(), y)
}

// table draws head and body starting at top. Rows that do not fit move to a
// new page together with a repeated header. An optional caption is written
// above the table.
func (d *document) table(top float64, caption string, head []string, widths []float64, body [][]string) {
	y := top
	if caption != "" {
		y = d.ensureSpace(y, 3+2*rowHeight)
		d.pdf.Text(marginLeft, y, d.tr(caption))
		y += 3
	}

	y = d.ensureSpace(y, 2*rowHeight)
	y = d.headerRow(y, head, widths)

	d.pdf.SetFont("Helvetica", "", 10)
	for i, row := range body {
		if y+rowHeight > d.pageBottom() {
			d.pdf.AddPage()
			y = d.headerRow(marginTop, head, widths)
			d.pdf.SetFont("Helvetica", "", 10)
		}
		fill := i%2 == 1
		d.pdf.SetFillColor(245, 245, 245)
		d.pdf.SetTextColor(80, 80, 80)
		x := marginLeft
		for c, cell := range row {
			d.pdf.SetXY(x, y)
			d.pdf.CellFormat(widths[c], rowHeight, d.fit(cell, widths[c]-2), "", 0, "L", fill, 0, "")
			x += widths[c]
		}
		y += rowHeight
	}

	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.SetFont("Helvetica", "", 12)
	d.finalY = y
}

func (d *document) headerRow(y float64, head []string, widths []float64) float64 {
	d.pdf.SetFont("Helvetica", "B", 10)
	d.pdf.SetFillColor(41, 128, 185)
	d.pdf.SetTextColor(255, 255, 255)
	x := marginLeft
	for c, h := range head {
		d.pdf.SetXY(x, y)
		d.pdf.CellFormat(widths[c], rowHeight, d.tr(h), "", 0, "L", true, 0, "")
		x += widths[c]
	}
	return y + rowHeight
}

// fit translates s and shortens it with an ellipsis until it fits w.
func (d *document) fit(s string, w float64) string {
	t := d.tr(s)
	if d.pdf.GetStringWidth(t) <= w {
		return t
	}
	ellipsis := d.tr("…")
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		t = d.tr(string(runes)) + ellipsis
		if d.pdf.GetStringWidth(t) <= w {
			return t
		}
	}
	return ellipsis
}

func (d *document) render(name string) (*Report, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return &Report{FileName: name, Content: buf.Bytes()}, nil
}
