package assetflow

import (
	"fmt"
)

// Side tells whether an asset class should be bought or sold.
type Side int

const (
	Hold Side = iota
	Buy
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "-"
	}
}

// Action is the suggested trade for one asset class, in the allocation unit.
type Action struct {
	Side   Side
	Amount Amount // whole units, always positive, zero for Hold
}

// String returns "-", "<amount> buy" or "<amount> sell".
func (a Action) String() string {
	if a.Side == Hold {
		return Hold.String()
	}
	return fmt.Sprintf("%s %s", a.Amount, a.Side)
}

// suggest derives the action that closes gap on a portfolio of total.
func suggest(gap Percent, total Amount) Action {
	switch {
	case gap.IsPositive():
		return Action{Side: Sell, Amount: gap.Of(total).RoundUnit()}
	case gap.IsNegative():
		return Action{Side: Buy, Amount: gap.Neg().Of(total).RoundUnit()}
	default:
		return Action{Side: Hold}
	}
}

// ComparisonRow compares one asset class with its target.
type ComparisonRow struct {
	Class   AssetClass
	Current Percent
	Target  Percent
	Gap     Percent // Current - Target, rounded to one decimal
	Action  Action
}

// MarshalJSON writes the row with a stable field order.
func (r ComparisonRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("class", r.Class)
	w.Append("current", r.Current)
	w.Append("target", r.Target)
	w.Append("gap", r.Gap)
	w.Append("action", r.Action.Side.String())
	if r.Action.Side != Hold {
		w.Append("amount", r.Action.Amount.value.IntPart())
	}
	return w.MarshalJSON()
}

// CompareOptions tunes Compare.
type CompareOptions struct {
	// IncludeModelOnly adds a row at 0% current for every asset class the
	// model targets but the allocation does not hold. Such classes are
	// skipped by default.
	IncludeModelOnly bool
}

// Compare returns one row per asset class of the composition, in the
// composition order, comparing it to the model portfolio.
//
// Classes the model does not mention have a target of 0. Suggested amounts
// are rounded independently and need not sum to zero.
func Compare(c *Composition, model *ModelPortfolio, opts CompareOptions) []ComparisonRow {
	rows := make([]ComparisonRow, 0, c.Len())
	for _, s := range c.shares {
		rows = append(rows, compareOne(s.Class, s.Percent, model.Target(s.Class, Percent{}), c.total))
	}
	if opts.IncludeModelOnly {
		for _, t := range model.targets {
			if c.Has(t.Class) {
				continue
			}
			rows = append(rows, compareOne(t.Class, Percent{}, t.Percent, c.total))
		}
	}
	return rows
}

func compareOne(class AssetClass, current, target Percent, total Amount) ComparisonRow {
	gap := current.Sub(target).Round()
	return ComparisonRow{
		Class:   class,
		Current: current,
		Target:  target,
		Gap:     gap,
		Action:  suggest(gap, total),
	}
}
