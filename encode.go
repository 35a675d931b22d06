package assetflow

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

// Allocation is the content of an allocation file: the amounts held per asset
// class, and the unit they are expressed in.
type Allocation struct {
	Unit    string
	Entries []AssetAmount
}

// This file handles the allocation file formats.
//
// The JSON format is the canonical one:
//
//	{"unit": "KRW10K", "assets": [{"class": "Cash", "amount": 1000}, ...]}
//
// The CSV format mirrors a spreadsheet with a header line; the unit can be
// given in parenthesis in the amount column title:
//
//	Asset Type,Amount (KRW10K)
//	Cash,1000

// jsonAllocation is the object read from a JSON allocation file.
type jsonAllocation struct {
	Unit   string      `json:"unit,omitempty"`
	Assets []jsonAsset `json:"assets"`
}

type jsonAsset struct {
	Class  string `json:"class"`
	Amount Amount `json:"amount"`
}

// DecodeAllocation reads an allocation in JSON format.
func DecodeAllocation(r io.Reader) (*Allocation, error) {
	var ja jsonAllocation
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ja); err != nil {
		return nil, fmt.Errorf("decoding allocation: %w", err)
	}
	a := &Allocation{Unit: ja.Unit, Entries: make([]AssetAmount, 0, len(ja.Assets))}
	for i, js := range ja.Assets {
		class, err := ParseAssetClass(js.Class)
		if err != nil {
			return nil, fmt.Errorf("decoding allocation: asset #%d: %w", i+1, err)
		}
		a.Entries = append(a.Entries, AssetAmount{Class: class, Amount: js.Amount})
	}
	return a, nil
}

// EncodeAllocation writes an allocation in the canonical JSON format.
func EncodeAllocation(w io.Writer, a *Allocation) error {
	ja := jsonAllocation{Unit: a.Unit, Assets: make([]jsonAsset, 0, len(a.Entries))}
	for _, e := range a.Entries {
		ja.Assets = append(ja.Assets, jsonAsset{Class: string(e.Class), Amount: e.Amount})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ja)
}

// DecodeAllocationCSV reads an allocation from a two-column CSV with a header.
func DecodeAllocationCSV(r io.Reader) (*Allocation, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("decoding allocation: empty CSV")
	}
	if err != nil {
		return nil, fmt.Errorf("decoding allocation: %w", err)
	}
	a := &Allocation{Unit: unitFromHeader(header[1])}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding allocation: %w", err)
		}
		line, _ := cr.FieldPos(0)
		class, err := ParseAssetClass(record[0])
		if err != nil {
			return nil, fmt.Errorf("decoding allocation: line %d: %w", line, err)
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("decoding allocation: line %d: invalid amount %q: %w", line, record[1], err)
		}
		a.Entries = append(a.Entries, AssetAmount{Class: class, Amount: A(amount)})
	}
	return a, nil
}

// unitFromHeader extracts "KRW10K" from "Amount (KRW10K)".
func unitFromHeader(title string) string {
	open := strings.LastIndex(title, "(")
	end := strings.LastIndex(title, ")")
	if open < 0 || end < open {
		return ""
	}
	return strings.TrimSpace(title[open+1 : end])
}

// ReadAllocationFile decodes an allocation file, in CSV if its extension is
// ".csv", in JSON otherwise.
func ReadAllocationFile(name string) (*Allocation, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(name), ".csv") {
		return DecodeAllocationCSV(f)
	}
	return DecodeAllocation(f)
}
