package assetflow

// Simulation is the result of a full rebalancing pass for one allocation and
// one model portfolio.
type Simulation struct {
	Model       *ModelPortfolio
	Composition *Composition
	Rows        []ComparisonRow
	Drift       Drift
}

// Simulate runs the whole rebalancing pipeline: normalize the entries,
// compare them to the model and summarize the drift.
//
// It holds no state and can be called again on every change of its inputs.
// If the allocation total is zero, it returns ErrNoAllocation and nothing
// else is computed.
func Simulate(entries []AssetAmount, model *ModelPortfolio, opts CompareOptions) (*Simulation, error) {
	c, err := Normalize(entries)
	if err != nil {
		return nil, err
	}
	rows := Compare(c, model, opts)
	return &Simulation{
		Model:       model,
		Composition: c,
		Rows:        rows,
		Drift:       ComputeDrift(rows),
	}, nil
}
