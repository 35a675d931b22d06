package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/assetflow"
	md "github.com/nao1215/markdown"
)

// CatalogMarkdown renders the model portfolios of a catalog, one table per
// model.
func CatalogMarkdown(c *assetflow.Catalog) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Model Portfolios")
	doc.PlainText(fmt.Sprintf("%d models available.", len(c.Models())))
	for _, m := range c.Models() {
		modelSection(doc, m)
	}
	return doc.String()
}

// ModelMarkdown renders a single model portfolio.
func ModelMarkdown(m *assetflow.ModelPortfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	modelSection(doc, m)
	return doc.String()
}

func modelSection(doc *md.Markdown, m *assetflow.ModelPortfolio) {
	doc.H2(m.Name())
	rows := make([][]string, 0, len(m.Targets()))
	for _, t := range m.Targets() {
		rows = append(rows, []string{t.Class.String(), t.Percent.String()})
	}
	doc.CustomTable(md.TableSet{
		Header: []string{"Asset Type", "Target (%)"},
		Rows:   rows,
	}, md.TableOptions{AutoFormatHeaders: false})
}
