// Package pdf renders management review documents (presentation, minutes,
// attendance sheet) onto fixed-size A4 pages with manual cursor tracking.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

type Orientation string

const (
	Portrait  Orientation = "P"
	Landscape Orientation = "L"
)

const (
	fontFamily      = "Helvetica"
	defaultFontSize = 11.0

	marginX   = 15.0
	marginTop = 20.0

	// Vertical cursor threshold past which content must not be drawn.
	// A4 portrait is 297mm tall; landscape 210mm.
	portraitBreakAt  = 250.0
	landscapeBreakAt = 180.0
)

// Canvas wraps an fpdf document with a running vertical cursor. All text
// placement goes through WriteLine/WriteWrapped so the page-break guarantee
// holds: a new page is appended before the cursor would pass the bottom
// threshold, never after.
type Canvas struct {
	doc     *fpdf.Fpdf
	pageW   float64
	pageH   float64
	breakAt float64
	y       float64
}

// NewCanvas creates a single-page A4 canvas with the cursor at the top margin.
// Automatic page breaking is disabled; pagination is owned by the cursor.
func NewCanvas(o Orientation) *Canvas {
	doc := fpdf.New(string(o), "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetFont(fontFamily, "", defaultFontSize)
	doc.AddPage()

	w, h := doc.GetPageSize()
	breakAt := portraitBreakAt
	if o == Landscape {
		breakAt = landscapeBreakAt
	}
	return &Canvas{doc: doc, pageW: w, pageH: h, breakAt: breakAt, y: marginTop}
}

// lineHeight maps a font size in points to a line advance in page units.
func lineHeight(size float64) float64 {
	return size * 0.5
}

func (c *Canvas) Y() float64 { return c.y }

func (c *Canvas) PageWidth() float64 { return c.pageW }

// ContentWidth is the horizontal space between the side margins.
func (c *Canvas) ContentWidth() float64 { return c.pageW - 2*marginX }

func (c *Canvas) BreakThreshold() float64 { return c.breakAt }

func (c *Canvas) PageCount() int { return c.doc.PageCount() }

// Advance moves the cursor down without drawing (vertical spacing).
func (c *Canvas) Advance(dy float64) {
	c.y += dy
}

// NewPage appends a page and resets the cursor to the top margin.
func (c *Canvas) NewPage() {
	c.doc.AddPage()
	c.y = marginTop
}

// EnsureSpace breaks to a new page if drawing h more units would pass the
// bottom threshold.
func (c *Canvas) EnsureSpace(h float64) {
	if c.y+h > c.breakAt {
		c.NewPage()
	}
}

// WriteLine draws one line at the given x and advances the cursor by the
// line height for the font size. Style is an fpdf style string ("", "B", "I").
func (c *Canvas) WriteLine(text string, x, size float64, style string) {
	h := lineHeight(size)
	c.EnsureSpace(h)
	c.doc.SetFont(fontFamily, style, size)
	c.doc.Text(x, c.y, text)
	c.y += h
}

// WriteCentered draws one horizontally centered line.
func (c *Canvas) WriteCentered(text string, size float64, style string) {
	c.doc.SetFont(fontFamily, style, size)
	x := (c.pageW - c.doc.GetStringWidth(text)) / 2
	if x < marginX {
		x = marginX
	}
	c.WriteLine(text, x, size, style)
}

// WriteWrapped greedily word-wraps text to maxWidth and draws each line,
// advancing the cursor per line. Returns the number of lines drawn.
func (c *Canvas) WriteWrapped(text string, x, maxWidth, size float64) int {
	c.doc.SetFont(fontFamily, "", size)
	lines := c.doc.SplitText(text, maxWidth)
	h := lineHeight(size)
	for _, line := range lines {
		c.EnsureSpace(h)
		c.doc.Text(x, c.y, line)
		c.y += h
	}
	return len(lines)
}

// Rule draws a horizontal line across [x1,x2] at the cursor and advances by dy.
func (c *Canvas) Rule(x1, x2, dy float64) {
	c.doc.SetLineWidth(0.3)
	c.doc.Line(x1, c.y, x2, c.y)
	c.y += dy
}

// Output serializes the whole document. Nothing is written anywhere until
// every composer has run, so a failed build produces no partial file.
func (c *Canvas) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize PDF: %w", err)
	}
	return buf.Bytes(), nil
}
