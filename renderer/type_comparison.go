package renderer

import "github.com/etnz/assetflow"

// Comparison is the json friendly content of the rebalancing report.
type Comparison struct {
	Model    string           `json:"model"`
	Unit     string           `json:"unit,omitempty"`
	Currency string           `json:"currency,omitempty"`
	Total    assetflow.Amount `json:"total"`
	Rows     []ComparisonRow  `json:"rows"`
	Drift    assetflow.Drift  `json:"drift"`
}

// ComparisonRow is one line of the comparison table.
type ComparisonRow struct {
	Class   assetflow.AssetClass `json:"class"`
	Current assetflow.Percent    `json:"current"`
	Target  assetflow.Percent    `json:"target"`
	Gap     assetflow.Percent    `json:"gap"`
	Action  string               `json:"action"`
}

// NewComparison creates the rebalancing report content from a simulation.
func NewComparison(sim *assetflow.Simulation, currency, unit string) *Comparison {
	r := &Comparison{
		Model:    sim.Model.Name(),
		Unit:     unit,
		Currency: currency,
		Total:    sim.Composition.Total(),
		Rows:     make([]ComparisonRow, 0, len(sim.Rows)),
		Drift:    sim.Drift,
	}
	for _, row := range sim.Rows {
		r.Rows = append(r.Rows, ComparisonRow{
			Class:   row.Class,
			Current: row.Current,
			Target:  row.Target,
			Gap:     row.Gap,
			Action:  row.Action.String(),
		})
	}
	return r
}
