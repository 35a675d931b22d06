package renderer

import (
	"strings"

	"github.com/etnz/assetflow"
)

// Composition is the json friendly content of the composition report.
type Composition struct {
	// Unit of the amounts, like "KRW10K".
	Unit string `json:"unit,omitempty"`
	// Currency is the ISO code used to format amounts, if any.
	Currency string `json:"currency,omitempty"`
	// Total of all amounts.
	Total assetflow.Amount `json:"total"`
	// PercentSum is the sum of the rounded percentages, it may differ
	// slightly from 100.
	PercentSum assetflow.Percent  `json:"percent_sum"`
	Shares     []CompositionShare `json:"shares"`
}

// CompositionShare is one line of the composition table.
type CompositionShare struct {
	Class   assetflow.AssetClass `json:"class"`
	Amount  assetflow.Amount     `json:"amount"`
	Percent assetflow.Percent    `json:"percent"`
}

// barStep is the percentage represented by one block of the bar chart.
var barStep = assetflow.Pct(5)

// Bar returns a text bar proportional to the share percentage, one block per
// 5%. Any non zero share gets at least one block.
func (s CompositionShare) Bar() string {
	if !s.Percent.IsPositive() {
		return ""
	}
	n := s.Percent.Decimal().Div(barStep.Decimal()).Round(0).IntPart()
	return strings.Repeat("█", int(max(n, 1)))
}

// NewComposition creates the composition report content.
func NewComposition(c *assetflow.Composition, currency, unit string) *Composition {
	r := &Composition{
		Unit:       unit,
		Currency:   currency,
		Total:      c.Total(),
		PercentSum: c.PercentSum(),
		Shares:     make([]CompositionShare, 0, c.Len()),
	}
	for _, s := range c.Shares() {
		r.Shares = append(r.Shares, CompositionShare{Class: s.Class, Amount: s.Amount, Percent: s.Percent})
	}
	return r
}
