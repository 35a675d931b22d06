package assetflow

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is a monetary value expressed in the allocation unit.
//
// An allocation has a single unit (no multi currency), amounts are plain
// decimals and only the display can use a currency format.
type Amount struct {
	value decimal.Decimal
}

// A creates an Amount from a native value.
func A[T number](value T) Amount { return Amount{value: newDecimal(value)} }

func (a Amount) Add(b Amount) Amount       { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount       { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Neg() Amount               { return Amount{value: a.value.Neg()} }
func (a Amount) Equal(b Amount) bool       { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool              { return a.value.IsZero() }
func (a Amount) IsPositive() bool          { return a.value.IsPositive() }
func (a Amount) IsNegative() bool          { return a.value.IsNegative() }
func (a Amount) LessThan(b Amount) bool    { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool { return a.value.GreaterThan(b.value) }
func (a Amount) Decimal() decimal.Decimal  { return a.value }
func (a Amount) Float() float64            { return a.value.InexactFloat64() }
func (a Amount) String() string            { return a.value.String() }
func (a Amount) RoundUnit() Amount         { return Amount{value: a.value.Round(0)} }

// Format returns the amount formatted for the given ISO currency code, like
// "₩17,500". An empty code returns the plain decimal.
func (a Amount) Format(currency string) string {
	if currency == "" {
		return a.String()
	}
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	dec := a.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// MarshalJSON writes the amount as a bare JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	return a.value.UnmarshalJSON(b)
}

// Percent returns the share of total that a represents. total must not be zero.
func (a Amount) Percent(total Amount) Percent {
	return Percent{value: a.value.Mul(hundred).Div(total.value)}
}
