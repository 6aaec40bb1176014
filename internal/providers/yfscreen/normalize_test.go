package yfscreen

import (
	"fmt"
	"math"
	"testing"
)

func TestNormalizeRowsBasic(t *testing.T) {
	rows := []Row{
		{
			"symbol":                         "AAPL",
			"shortName":                      "Apple Inc.",
			"sector":                         "Technology",
			"marketCap.raw":                  2.8e12,
			"regularMarketPrice.raw":         190.5,
			"regularMarketChangePercent.raw": 1.25,
			"trailingPE.raw":                 29.4,
			"currency":                       "USD",
			"exchange":                       "NMS",
		},
	}

	recs := normalizeRows(rows, 50, 0)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}

	r := recs[0]
	if r.Ticker == nil || *r.Ticker != "AAPL" {
		t.Errorf("ticker: got %v", r.Ticker)
	}
	if r.Name == nil || *r.Name != "Apple Inc." {
		t.Errorf("name: got %v", r.Name)
	}
	if r.MarketCap == nil || *r.MarketCap != 2.8e12 {
		t.Errorf("market cap: got %v", r.MarketCap)
	}
	if r.Price == nil || *r.Price != 190.5 {
		t.Errorf("price: got %v", r.Price)
	}
	if r.PERatio == nil || *r.PERatio != 29.4 {
		t.Errorf("pe: got %v", r.PERatio)
	}
	if r.Exchange == nil || *r.Exchange != "NMS" {
		t.Errorf("exchange: got %v", r.Exchange)
	}
	// Absent attributes stay nil.
	if r.DividendYield != nil {
		t.Errorf("dividend yield should be nil, got %v", *r.DividendYield)
	}
}

func TestNormalizeRowsNameFallback(t *testing.T) {
	// shortName missing, longName NaN-free, displayName last.
	rows := []Row{
		{"symbol": "X", "longName": "Example Corp"},
		{"symbol": "Y", "displayName": "Why Inc"},
	}
	recs := normalizeRows(rows, 10, 0)
	if *recs[0].Name != "Example Corp" {
		t.Errorf("row 0 name: got %q", *recs[0].Name)
	}
	if *recs[1].Name != "Why Inc" {
		t.Errorf("row 1 name: got %q", *recs[1].Name)
	}
}

func TestNormalizeRowsExchangeFallback(t *testing.T) {
	rows := []Row{{"symbol": "X", "fullExchangeName": "NasdaqGS"}}
	recs := normalizeRows(rows, 10, 0)
	if recs[0].Exchange == nil || *recs[0].Exchange != "NasdaqGS" {
		t.Errorf("exchange: got %v", recs[0].Exchange)
	}
}

func TestNormalizeRowsNaNSkipsCandidate(t *testing.T) {
	rows := []Row{{
		"symbol":         "X",
		"shortName":      math.NaN(), // unusable, falls to longName
		"longName":       "Fallback Name",
		"trailingPE.raw": math.NaN(), // unusable, no other candidate
	}}
	recs := normalizeRows(rows, 10, 0)
	if recs[0].Name == nil || *recs[0].Name != "Fallback Name" {
		t.Errorf("name: got %v", recs[0].Name)
	}
	if recs[0].PERatio != nil {
		t.Errorf("NaN pe should normalize to nil, got %v", *recs[0].PERatio)
	}
}

func TestNormalizeRowsNilValueSkipsCandidate(t *testing.T) {
	rows := []Row{{"symbol": "X", "shortName": nil, "longName": "Real Name"}}
	recs := normalizeRows(rows, 10, 0)
	if recs[0].Name == nil || *recs[0].Name != "Real Name" {
		t.Errorf("name: got %v", recs[0].Name)
	}
}

func TestNormalizeRowsCurrencyFallback(t *testing.T) {
	rows := []Row{
		{"symbol": "X"},
		{"symbol": "Y", "currency": "EUR"},
	}
	recs := normalizeRows(rows, 10, 0)
	if *recs[0].Currency != "USD" {
		t.Errorf("missing currency should default to USD, got %q", *recs[0].Currency)
	}
	if *recs[1].Currency != "EUR" {
		t.Errorf("explicit currency should survive, got %q", *recs[1].Currency)
	}
}

func TestNormalizeRowsPagination(t *testing.T) {
	rows := make([]Row, 20)
	for i := range rows {
		rows[i] = Row{"symbol": fmt.Sprintf("T%02d", i)}
	}

	recs := normalizeRows(rows, 5, 10)
	if len(recs) != 5 {
		t.Fatalf("expected 5 records, got %d", len(recs))
	}
	if *recs[0].Ticker != "T10" {
		t.Errorf("first record: got %q, want T10", *recs[0].Ticker)
	}
	if *recs[4].Ticker != "T14" {
		t.Errorf("last record: got %q, want T14", *recs[4].Ticker)
	}
}

func TestNormalizeRowsOffsetBeyondEnd(t *testing.T) {
	rows := []Row{{"symbol": "A"}, {"symbol": "B"}}
	recs := normalizeRows(rows, 10, 5)
	if len(recs) != 0 {
		t.Errorf("expected empty page past the end, got %d", len(recs))
	}
}

func TestNormalizeRowsShortLastPage(t *testing.T) {
	rows := []Row{{"symbol": "A"}, {"symbol": "B"}, {"symbol": "C"}}
	recs := normalizeRows(rows, 10, 2)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record on the last page, got %d", len(recs))
	}
	if *recs[0].Ticker != "C" {
		t.Errorf("got %q", *recs[0].Ticker)
	}
}

func TestNormalizeRowsNegativeBounds(t *testing.T) {
	rows := []Row{{"symbol": "A"}}

	if got := normalizeRows(rows, -1, 0); len(got) != 0 {
		t.Errorf("negative limit should yield empty page, got %d", len(got))
	}
	if got := normalizeRows(rows, 1, -3); len(got) != 1 {
		t.Errorf("negative offset should be treated as zero, got %d", len(got))
	}
}

func TestNormalizeRowsEmptyInput(t *testing.T) {
	if got := normalizeRows(nil, 50, 0); got == nil || len(got) != 0 {
		t.Errorf("nil rows should yield empty non-nil slice, got %v", got)
	}
	if got := normalizeRows([]Row{}, 50, 0); len(got) != 0 {
		t.Errorf("empty rows should yield empty slice, got %d", len(got))
	}
}

func TestAsFloatCoercions(t *testing.T) {
	if f := asFloat(int(7)); f == nil || *f != 7 {
		t.Errorf("int: got %v", f)
	}
	if f := asFloat(int64(9)); f == nil || *f != 9 {
		t.Errorf("int64: got %v", f)
	}
	if f := asFloat("12"); f != nil {
		t.Errorf("string should not coerce, got %v", *f)
	}
	if f := asFloat(math.NaN()); f != nil {
		t.Errorf("NaN should be nil, got %v", *f)
	}
}

func TestFlattenRow(t *testing.T) {
	quote := map[string]any{
		"symbol": "AAPL",
		"marketCap": map[string]any{
			"raw": 2.8e12,
			"fmt": "2.8T",
		},
	}

	row := flattenRow(quote)
	if row["symbol"] != "AAPL" {
		t.Errorf("scalar field: got %v", row["symbol"])
	}
	if row["marketCap.raw"] != 2.8e12 {
		t.Errorf("nested raw: got %v", row["marketCap.raw"])
	}
	if row["marketCap.fmt"] != "2.8T" {
		t.Errorf("nested fmt: got %v", row["marketCap.fmt"])
	}
	if _, ok := row["marketCap"]; ok {
		t.Error("nested parent key should not survive flattening")
	}
}
