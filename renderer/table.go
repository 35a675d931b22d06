package renderer

import (
	"fmt"

	"github.com/etnz/assetflow"
)

// ComparisonHeader returns the column titles of the comparison table.
func ComparisonHeader(model string) []string {
	return []string{"Asset Type", "Current (%)", fmt.Sprintf("%s Model (%%)", model), "Gap (%)", "Suggested Action"}
}

// ComparisonTable returns the header and the printable cells of the
// comparison rows, in the same order.
func ComparisonTable(model string, rows []assetflow.ComparisonRow) (header []string, cells [][]string) {
	cells = make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			r.Class.String(),
			r.Current.String(),
			r.Target.Decimal().String(),
			r.Gap.String(),
			r.Action.String(),
		})
	}
	return ComparisonHeader(model), cells
}

// ReportTitle is the title of the rebalancing report for the model.
func ReportTitle(model string) string {
	return fmt.Sprintf("Rebalancing Report (%s Portfolio)", model)
}

// ReportPages lays out the comparison table of a simulation on pages.
// The layout title is set to the report title when empty.
func ReportPages(sim *assetflow.Simulation, l Layout) []Page {
	name := sim.Model.Name()
	if l.Title == "" {
		l.Title = ReportTitle(name)
	}
	header, cells := ComparisonTable(name, sim.Rows)
	return Paginate(cells, header, l)
}
