package assetflow

import (
	"encoding/json"
	"errors"
)

// ErrNoAllocation is returned when the allocation total is zero, hence no
// percentage can be computed.
var ErrNoAllocation = errors.New("no allocation: total amount is zero")

// Share is one asset class of a Composition.
type Share struct {
	Class   AssetClass `json:"class"`
	Amount  Amount     `json:"amount"`
	Percent Percent    `json:"percent"` // rounded to one decimal
}

// Composition is an allocation converted into percentages of its total.
//
// Percentages are rounded independently, so their sum may differ slightly
// from 100.
type Composition struct {
	shares []Share
	index  map[AssetClass]int
	total  Amount
}

// Normalize computes the share of each asset class in the total.
//
// Entries keep their order. A class appearing twice keeps its first position
// and the amount of its last occurrence. A zero total returns ErrNoAllocation.
func Normalize(entries []AssetAmount) (*Composition, error) {
	c := &Composition{index: make(map[AssetClass]int, len(entries))}
	for _, e := range entries {
		if i, exists := c.index[e.Class]; exists {
			c.shares[i].Amount = e.Amount
			continue
		}
		c.index[e.Class] = len(c.shares)
		c.shares = append(c.shares, Share{Class: e.Class, Amount: e.Amount})
	}

	for _, s := range c.shares {
		c.total = c.total.Add(s.Amount)
	}
	if c.total.IsZero() {
		return nil, ErrNoAllocation
	}

	for i := range c.shares {
		c.shares[i].Percent = c.shares[i].Amount.Percent(c.total).Round()
	}
	return c, nil
}

// Total returns the sum of all amounts, before normalization.
func (c *Composition) Total() Amount { return c.total }

// Shares returns the shares in input order.
func (c *Composition) Shares() []Share {
	res := make([]Share, len(c.shares))
	copy(res, c.shares)
	return res
}

// Len returns the number of asset classes.
func (c *Composition) Len() int { return len(c.shares) }

// Has returns true if the class is part of the composition.
func (c *Composition) Has(class AssetClass) bool {
	_, exists := c.index[class]
	return exists
}

// Percent returns the share of class, and false if the class is unknown.
func (c *Composition) Percent(class AssetClass) (Percent, bool) {
	i, exists := c.index[class]
	if !exists {
		return Percent{}, false
	}
	return c.shares[i].Percent, true
}

// PercentSum returns the sum of the rounded percentages.
func (c *Composition) PercentSum() Percent {
	var sum Percent
	for _, s := range c.shares {
		sum = sum.Add(s.Percent)
	}
	return sum
}

// MarshalJSON writes the composition with its total and the sum of its
// rounded percentages.
func (c *Composition) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Total      Amount  `json:"total"`
		PercentSum Percent `json:"percent_sum"`
		Shares     []Share `json:"shares"`
	}{c.total, c.PercentSum(), c.shares})
}
