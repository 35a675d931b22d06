package assetflow

import (
	"testing"
)

// mustNormalize is a helper for test to normalize entries that are known to
// have a non zero total.
func mustNormalize(t *testing.T, entries ...AssetAmount) *Composition {
	t.Helper()
	c, err := Normalize(entries)
	if err != nil {
		t.Fatalf("Normalize() returned unexpected error: %v", err)
	}
	return c
}

// mustLookup is a helper for test to get a model of the default catalog.
func mustLookup(t *testing.T, name string) *ModelPortfolio {
	t.Helper()
	m, err := DefaultCatalog().Lookup(name)
	if err != nil {
		t.Fatalf("Lookup(%q) returned unexpected error: %v", name, err)
	}
	return m
}

// findRow returns the comparison row of class.
func findRow(t *testing.T, rows []ComparisonRow, class AssetClass) ComparisonRow {
	t.Helper()
	for _, r := range rows {
		if r.Class == class {
			return r
		}
	}
	t.Fatalf("no comparison row for %q", class)
	return ComparisonRow{}
}
