package assetflow

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// this file contains functions to import an allocation from a JSON export
// of another tool (bank statement, broker summary, spreadsheet export).

// Query tells ImportAllocation where to find entries in a JSON document.
// All fields are JSONPath expressions.
type Query struct {
	Items  string // selects the list of items, e.g. "$.accounts[*]"
	Class  string // evaluated on each item, e.g. "$.type"
	Amount string // evaluated on each item, e.g. "$.balance"
}

// DefaultQuery reads the canonical allocation format.
var DefaultQuery = Query{
	Items:  "$.assets[*]",
	Class:  "$.class",
	Amount: "$.amount",
}

// ImportAllocation extracts an allocation from any JSON document.
//
// Items whose class is not a valid asset class are an error, so are amounts
// that are neither numbers nor numeric strings.
func ImportAllocation(r io.Reader, q Query) ([]AssetAmount, error) {
	var doc any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("importing allocation: %w", err)
	}

	jval, err := jsonpath.Get(q.Items, doc)
	if err != nil {
		return nil, fmt.Errorf("importing allocation: items %q: %w", q.Items, err)
	}
	items, ok := jval.([]any)
	if !ok {
		// a path to a single object is a list of one.
		items = []any{jval}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("importing allocation: items %q: no asset found", q.Items)
	}

	entries := make([]AssetAmount, 0, len(items))
	for i, item := range items {
		e, err := importItem(item, q)
		if err != nil {
			return nil, fmt.Errorf("importing allocation: item #%d: %w", i+1, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func importItem(item any, q Query) (AssetAmount, error) {
	jclass, err := first(jsonpath.Get(q.Class, item))
	if err != nil {
		return AssetAmount{}, fmt.Errorf("class %q: %w", q.Class, err)
	}
	name, ok := jclass.(string)
	if !ok {
		return AssetAmount{}, fmt.Errorf("class %q: not a string: %v", q.Class, jclass)
	}
	class, err := ParseAssetClass(name)
	if err != nil {
		return AssetAmount{}, err
	}

	jamount, err := first(jsonpath.Get(q.Amount, item))
	if err != nil {
		return AssetAmount{}, fmt.Errorf("amount %q: %w", q.Amount, err)
	}
	amount, err := toDecimal(jamount)
	if err != nil {
		return AssetAmount{}, fmt.Errorf("amount %q: %w", q.Amount, err)
	}
	return AssetAmount{Class: class, Amount: A(amount)}, nil
}

// first keeps the first answer, because jsonpath is never clear about whether
// it returns a list of 1 answer, or a single answer.
func first(jval any, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return nil, errors.New("no value")
		}
		return jlist[0], nil
	}
	return jval, nil
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case json.Number:
		return decimal.NewFromString(t.String())
	case float64:
		return decimal.NewFromFloat(t), nil
	case string:
		return decimal.NewFromString(t)
	default:
		return decimal.Decimal{}, fmt.Errorf("not a number: %v", v)
	}
}
