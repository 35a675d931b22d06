package assetflow

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Drift summarizes how far an allocation is from its model.
type Drift struct {
	// Turnover is the share of the portfolio that must change hands to reach
	// the model: half the sum of absolute gaps.
	Turnover Percent `json:"turnover"`
	// MaxGap is the largest absolute gap.
	MaxGap Percent `json:"max_gap"`
	// RMS is the root mean square of the gaps.
	RMS Percent `json:"rms"`
}

// ComputeDrift computes the drift statistics of comparison rows. Values are
// rounded to one decimal.
func ComputeDrift(rows []ComparisonRow) Drift {
	if len(rows) == 0 {
		return Drift{}
	}
	gaps := make([]float64, len(rows))
	for i, r := range rows {
		gaps[i] = r.Gap.Float()
	}
	n := float64(len(gaps))
	return Drift{
		Turnover: Pct(floats.Norm(gaps, 1) / 2).Round(),
		MaxGap:   Pct(floats.Norm(gaps, math.Inf(1))).Round(),
		RMS:      Pct(floats.Norm(gaps, 2) / math.Sqrt(n)).Round(),
	}
}
