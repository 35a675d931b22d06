package assetflow

import (
	"github.com/shopspring/decimal"
)

// percentPlaces is the precision of every displayed or compared percentage.
const percentPlaces = 1

// Percent is a share of a total, 100 being the whole.
type Percent struct {
	value decimal.Decimal
}

// Pct creates a Percent from a native value.
func Pct[T number](value T) Percent { return Percent{value: newDecimal(value)} }

// Round returns p rounded to one decimal, half away from zero.
func (p Percent) Round() Percent { return Percent{value: p.value.Round(percentPlaces)} }

func (p Percent) Add(q Percent) Percent      { return Percent{value: p.value.Add(q.value)} }
func (p Percent) Sub(q Percent) Percent      { return Percent{value: p.value.Sub(q.value)} }
func (p Percent) Neg() Percent               { return Percent{value: p.value.Neg()} }
func (p Percent) Abs() Percent               { return Percent{value: p.value.Abs()} }
func (p Percent) Equal(q Percent) bool       { return p.value.Equal(q.value) }
func (p Percent) LessThan(q Percent) bool    { return p.value.LessThan(q.value) }
func (p Percent) GreaterThan(q Percent) bool { return p.value.GreaterThan(q.value) }
func (p Percent) IsZero() bool               { return p.value.IsZero() }
func (p Percent) IsPositive() bool           { return p.value.IsPositive() }
func (p Percent) IsNegative() bool           { return p.value.IsNegative() }
func (p Percent) Decimal() decimal.Decimal   { return p.value }
func (p Percent) Float() float64             { return p.value.InexactFloat64() }

// Of returns the part of total that p represents.
func (p Percent) Of(total Amount) Amount {
	return Amount{value: total.value.Mul(p.value).Div(hundred)}
}

// String returns the percentage with one decimal, without the % sign.
func (p Percent) String() string { return p.value.StringFixed(percentPlaces) }

// SignedString returns the percentage with an explicit sign, zero is "-".
func (p Percent) SignedString() string {
	if p.value.Round(percentPlaces).IsZero() {
		return "-"
	}
	if p.value.IsPositive() {
		return "+" + p.String()
	}
	return p.String()
}

// MarshalJSON writes the percentage as a bare JSON number.
func (p Percent) MarshalJSON() ([]byte, error) {
	return []byte(p.value.String()), nil
}

func (p *Percent) UnmarshalJSON(b []byte) error {
	return p.value.UnmarshalJSON(b)
}
