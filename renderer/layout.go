package renderer

import "math"

// Style tells the document writer how to draw a Cell.
type Style int

const (
	Regular Style = iota // body text
	Bold                 // column header
	Title                // report title, centered on Cell.X
)

// Cell is a piece of text placed at absolute coordinates on a page.
//
// Coordinates are in points, with the origin at the bottom left corner of the
// page and Y growing upward. Y is the text baseline.
type Cell struct {
	X, Y  float64
	Text  string
	Style Style
}

// Page is the content of one physical page of a report.
type Page struct {
	Number int    // 1 for the first page
	Cells  []Cell // in drawing order
	Rows   int    // number of data rows, the header is not counted
}

// Layout describes where a table is placed on fixed-size pages.
type Layout struct {
	Width, Height float64 // page size in points

	X      float64 // abscissa of the first column
	Stride float64 // distance between two columns

	Top             float64 // ordinate of the header on the first page
	ContinuationTop float64 // ordinate of the first line on the following pages
	Bottom          float64 // a page is full once the cursor goes below Bottom
	LineHeight      float64

	Title  string  // optional, printed on the first page only
	TitleY float64 // ordinate of the title

	// RepeatHeader prints the column header on every page instead of the first
	// one only.
	RepeatHeader bool
}

// A4 portrait size in points.
const (
	A4Width  = 595.28
	A4Height = 841.89
)

// DefaultLayout is the A4 portrait layout of the rebalancing report.
func DefaultLayout() Layout {
	return Layout{
		Width:           A4Width,
		Height:          A4Height,
		X:               40,
		Stride:          100,
		Top:             A4Height - 80,
		ContinuationTop: A4Height - 50,
		Bottom:          50,
		LineHeight:      20,
		TitleY:          A4Height - 50,
	}
}

// Capacity returns the number of data rows that fit on the first page, and on
// each of the following pages.
func (l Layout) Capacity() (first, continuation int) {
	// the header always takes the first line of the first page.
	first = l.rowsFrom(l.Top - l.LineHeight)
	if l.RepeatHeader {
		return first, l.rowsFrom(l.ContinuationTop - l.LineHeight)
	}
	return first, l.rowsFrom(l.ContinuationTop)
}

// rowsFrom counts the rows printed from the ordinate y down to the bottom.
// A page takes rows as long as the cursor is not below the bottom, and the row
// printed at the last position moves the cursor below it.
func (l Layout) rowsFrom(y float64) int {
	if y < l.Bottom || l.LineHeight <= 0 {
		return 0
	}
	return int(math.Floor((y-l.Bottom)/l.LineHeight)) + 1
}
