package renderer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLayout fits 20 data rows per page.
func testLayout() Layout {
	return Layout{
		Width:           600,
		Height:          500,
		X:               40,
		Stride:          100,
		Top:             420,
		ContinuationTop: 400,
		Bottom:          20,
		LineHeight:      20,
		Title:           "Rebalancing Report (Balanced Portfolio)",
		TitleY:          450,
	}
}

var testHeader = []string{"Asset Type", "Current (%)", "Balanced Model (%)", "Gap (%)", "Suggested Action"}

func makeRows(n int) [][]string {
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("Class%02d", i), "1.0", "0.0", "1.0", "10 sell"}
	}
	return rows
}

// cellsWith returns the cells of the page having the given style.
func cellsWith(p Page, style Style) []Cell {
	var cells []Cell
	for _, c := range p.Cells {
		if c.Style == style {
			cells = append(cells, c)
		}
	}
	return cells
}

func TestLayout_Capacity(t *testing.T) {
	first, continuation := testLayout().Capacity()
	assert.Equal(t, 20, first)
	assert.Equal(t, 20, continuation)

	l := testLayout()
	l.RepeatHeader = true
	first, continuation = l.Capacity()
	assert.Equal(t, 20, first)
	assert.Equal(t, 19, continuation)

	first, continuation = DefaultLayout().Capacity()
	assert.Equal(t, 35, first)
	assert.Equal(t, 38, continuation)
}

func TestPaginate_PageCount(t *testing.T) {
	l := testLayout()
	first, continuation := l.Capacity()
	for _, n := range []int{1, 19, 20, 21, 40, 41, 45, 100} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			pages := Paginate(makeRows(n), testHeader, l)

			want := 1
			if n > first {
				want += (n - first + continuation - 1) / continuation
			}
			require.Len(t, pages, want)

			// no row dropped or duplicated, in order.
			var got []string
			for _, p := range pages {
				for _, c := range cellsWith(p, Regular) {
					if c.X == l.X {
						got = append(got, c.Text)
					}
				}
			}
			require.Len(t, got, n)
			for i, text := range got {
				assert.Equal(t, fmt.Sprintf("Class%02d", i), text)
			}
		})
	}
}

func TestPaginate_FortyFiveRows(t *testing.T) {
	l := testLayout()
	pages := Paginate(makeRows(45), testHeader, l)

	require.Len(t, pages, 3)
	for i, want := range []int{20, 20, 5} {
		assert.Equal(t, i+1, pages[i].Number)
		assert.Equal(t, want, pages[i].Rows, "rows on page %d", i+1)
		assert.Len(t, cellsWith(pages[i], Regular), want*len(testHeader))
	}

	// the cursor is reset once per page boundary.
	assert.Equal(t, l.Top-l.LineHeight, cellsWith(pages[0], Regular)[0].Y)
	for _, p := range pages[1:] {
		assert.Equal(t, l.ContinuationTop, cellsWith(p, Regular)[0].Y)
	}
	// the last row of a full page is at the bottom.
	last := cellsWith(pages[0], Regular)
	assert.Equal(t, l.Bottom, last[len(last)-1].Y)
}

func TestPaginate_HeaderAndTitle(t *testing.T) {
	l := testLayout()
	pages := Paginate(makeRows(45), testHeader, l)
	require.Len(t, pages, 3)

	header := cellsWith(pages[0], Bold)
	require.Len(t, header, len(testHeader))
	for i, c := range header {
		assert.Equal(t, testHeader[i], c.Text)
		assert.Equal(t, l.X+float64(i)*l.Stride, c.X)
		assert.Equal(t, l.Top, c.Y)
	}
	title := cellsWith(pages[0], Title)
	require.Len(t, title, 1)
	assert.Equal(t, Cell{X: l.Width / 2, Y: l.TitleY, Text: l.Title, Style: Title}, title[0])

	for _, p := range pages[1:] {
		assert.Empty(t, cellsWith(p, Bold), "header on page %d", p.Number)
		assert.Empty(t, cellsWith(p, Title), "title on page %d", p.Number)
	}
}

func TestPaginate_RepeatHeader(t *testing.T) {
	l := testLayout()
	l.RepeatHeader = true
	pages := Paginate(makeRows(45), testHeader, l)

	// 20 + 19 + 6
	require.Len(t, pages, 3)
	assert.Equal(t, 6, pages[2].Rows)
	for _, p := range pages {
		header := cellsWith(p, Bold)
		require.Len(t, header, len(testHeader), "header on page %d", p.Number)
		assert.Equal(t, "Asset Type", header[0].Text)
	}
	assert.Equal(t, l.ContinuationTop, cellsWith(pages[1], Bold)[0].Y)
	assert.Equal(t, l.ContinuationTop-l.LineHeight, cellsWith(pages[1], Regular)[0].Y)
}

func TestPaginate_NoTrailingPage(t *testing.T) {
	// exactly two full pages.
	pages := Paginate(makeRows(40), testHeader, testLayout())
	require.Len(t, pages, 2)
	assert.Equal(t, 20, pages[1].Rows)
}

func TestPaginate_Empty(t *testing.T) {
	assert.Empty(t, Paginate(nil, testHeader, testLayout()))
}

func TestPaginate_WideRows(t *testing.T) {
	// cells past the page width are printed anyway.
	row := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	pages := Paginate([][]string{row}, nil, testLayout())
	require.Len(t, pages, 1)
	cells := cellsWith(pages[0], Regular)
	require.Len(t, cells, len(row))
	assert.Equal(t, 740.0, cells[7].X)
}
