package assetflow

import (
	"errors"
	"fmt"
	"strings"
)

// AssetClass names a kind of asset, like "Cash" or "ETF".
//
// Classes are free text so that users can add their own, but they are always
// validated through ParseAssetClass before entering a computation.
type AssetClass string

// Well-known asset classes, used by the default catalog and sample data.
const (
	Cash    AssetClass = "Cash"
	Savings AssetClass = "Savings"
	KRStock AssetClass = "KR_Stock"
	ETF     AssetClass = "ETF"
	Crypto  AssetClass = "Crypto"
	Other   AssetClass = "Other"
)

// totalLabel is reserved for the total row of the composition table.
const totalLabel = "Total"

// ErrInvalidAssetClass is returned when an asset class name cannot be used.
var ErrInvalidAssetClass = errors.New("invalid asset class")

// ParseAssetClass validates and normalizes an asset class name.
func ParseAssetClass(name string) (AssetClass, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return "", fmt.Errorf("%w: empty name", ErrInvalidAssetClass)
	case strings.EqualFold(name, totalLabel):
		return "", fmt.Errorf("%w: %q is reserved", ErrInvalidAssetClass, name)
	}
	return AssetClass(name), nil
}

func (c AssetClass) String() string { return string(c) }

// AssetAmount is the amount held in one asset class.
type AssetAmount struct {
	Class  AssetClass
	Amount Amount
}

// Entry is a convenient factory for AssetAmount.
func Entry[T number](class AssetClass, amount T) AssetAmount {
	return AssetAmount{Class: class, Amount: A(amount)}
}

// SampleAllocation returns the allocation the tools start with when the user
// has not provided one, in units of 10,000 KRW.
func SampleAllocation() []AssetAmount {
	return []AssetAmount{
		Entry(Cash, 1000),
		Entry(Savings, 3000),
		Entry(KRStock, 7000),
		Entry(ETF, 4000),
		Entry(Crypto, 2000),
		Entry(Other, 500),
	}
}
