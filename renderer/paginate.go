package renderer

// Paginate lays out the header and the rows of a table on pages.
//
// The cursor starts at l.Top on the first page. Each line is printed at the
// cursor that then moves down by l.LineHeight. Once the cursor is below
// l.Bottom, the page is full: the next row is printed on a new page starting
// at l.ContinuationTop. The header is printed on the first page only, unless
// l.RepeatHeader is set.
//
// Rows wider than the page are not wrapped, their cells are printed at their
// column offset whatever the page width.
//
// Paginate returns no page if there are no rows.
func Paginate(rows [][]string, header []string, l Layout) []Page {
	if len(rows) == 0 {
		return nil
	}
	p := paginator{layout: l}
	p.newPage(l.Top)
	if l.Title != "" {
		p.page.Cells = append(p.page.Cells, Cell{X: l.Width / 2, Y: l.TitleY, Text: l.Title, Style: Title})
	}
	p.line(header, Bold)

	for _, row := range rows {
		if p.full() {
			p.flush()
			p.newPage(l.ContinuationTop)
			if l.RepeatHeader {
				p.line(header, Bold)
			}
		}
		p.line(row, Regular)
		p.page.Rows++
	}
	p.flush()
	return p.pages
}

// paginator holds the state of a pagination.
type paginator struct {
	layout Layout
	pages  []Page
	page   *Page
	cursor float64
}

func (p *paginator) newPage(top float64) {
	p.page = &Page{Number: len(p.pages) + 1}
	p.cursor = top
}

// full reports whether the current page cannot take another line.
func (p *paginator) full() bool { return p.cursor < p.layout.Bottom }

// line prints the cells at the cursor, and moves it down.
func (p *paginator) line(cells []string, style Style) {
	for i, text := range cells {
		p.page.Cells = append(p.page.Cells, Cell{
			X:     p.layout.X + float64(i)*p.layout.Stride,
			Y:     p.cursor,
			Text:  text,
			Style: style,
		})
	}
	p.cursor -= p.layout.LineHeight
}

func (p *paginator) flush() {
	if p.page == nil {
		return
	}
	p.pages = append(p.pages, *p.page)
	p.page = nil
}
