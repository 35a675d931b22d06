package renderer

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// fonts used for each cell style: family, style, size.
var fonts = map[Style]struct {
	family, style string
	size          float64
}{
	Regular: {"Helvetica", "", 10},
	Bold:    {"Helvetica", "B", 10},
	Title:   {"Helvetica", "B", 14},
}

// WritePDF writes the pages as a PDF document, one physical page per Page.
//
// The page size is taken from the layout, cells are drawn at their absolute
// coordinates. id identifies the report in the document metadata.
// Without pages the document has a single blank page.
func WritePDF(w io.Writer, id string, pages []Page, l Layout) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: l.Width, Ht: l.Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("assetflow", false)
	pdf.SetTitle(l.Title, true)
	pdf.SetSubject(fmt.Sprintf("report %s", id), false)

	// core fonts are encoded in cp1252.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range pages {
		pdf.AddPage()
		for _, c := range page.Cells {
			f := fonts[c.Style]
			pdf.SetFont(f.family, f.style, f.size)
			text := tr(c.Text)
			x := c.X
			if c.Style == Title {
				x -= pdf.GetStringWidth(text) / 2
			}
			// fpdf measures ordinates from the top of the page.
			pdf.Text(x, l.Height-c.Y, text)
		}
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf report: %w", err)
	}
	return nil
}
