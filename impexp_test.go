package assetflow

import (
	"strings"
	"testing"
)

func TestImportAllocation_DefaultQuery(t *testing.T) {
	in := `{"unit": "KRW10K", "assets": [{"class": "Cash", "amount": 1000}, {"class": "ETF", "amount": 4000}]}`
	entries, err := ImportAllocation(strings.NewReader(in), DefaultQuery)
	if err != nil {
		t.Fatalf("ImportAllocation() returned unexpected error: %v", err)
	}
	want := []AssetAmount{Entry(Cash, 1000), Entry(ETF, 4000)}
	assertEntries(t, entries, want)
}

func TestImportAllocation_BrokerExport(t *testing.T) {
	// a broker summary with nested balances and amounts as strings.
	in := `{
		"owner": "someone",
		"accounts": [
			{"type": "Savings", "balance": {"value": "3000.50", "ccy": "KRW"}},
			{"type": "Crypto", "balance": {"value": 2000, "ccy": "KRW"}},
			{"type": "Pension Fund", "balance": {"value": 12, "ccy": "KRW"}}
		]
	}`
	q := Query{Items: "$.accounts[*]", Class: "$.type", Amount: "$.balance.value"}
	entries, err := ImportAllocation(strings.NewReader(in), q)
	if err != nil {
		t.Fatalf("ImportAllocation() returned unexpected error: %v", err)
	}
	want := []AssetAmount{Entry(Savings, 3000.5), Entry(Crypto, 2000), Entry(AssetClass("Pension Fund"), 12)}
	assertEntries(t, entries, want)
}

func TestImportAllocation_Errors(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		q    Query
	}{
		{"invalid json", `{"assets": [`, DefaultQuery},
		{"missing items", `{"other": []}`, DefaultQuery},
		{"empty items", `{"assets": []}`, DefaultQuery},
		{"filter selects nothing", `{"accounts": [{"type": "Cash", "balance": 1}]}`, Query{Items: "$.accounts[?(@.type == 'ETF')]", Class: "$.type", Amount: "$.balance"}},
		{"class is a number", `{"assets": [{"class": 3, "amount": 1}]}`, DefaultQuery},
		{"reserved class", `{"assets": [{"class": "Total", "amount": 1}]}`, DefaultQuery},
		{"amount is not numeric", `{"assets": [{"class": "Cash", "amount": "many"}]}`, DefaultQuery},
		{"amount is a bool", `{"assets": [{"class": "Cash", "amount": true}]}`, DefaultQuery},
		{"missing amount", `{"assets": [{"class": "Cash"}]}`, DefaultQuery},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImportAllocation(strings.NewReader(tc.in), tc.q); err == nil {
				t.Error("ImportAllocation() expected an error, got nil")
			}
		})
	}
}

func assertEntries(t *testing.T, got, want []AssetAmount) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].Class != want[i].Class || !got[i].Amount.Equal(want[i].Amount) {
			t.Errorf("entry #%d = %v, want %v", i, got[i], want[i])
		}
	}
}
