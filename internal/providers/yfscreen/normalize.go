package yfscreen

import (
	"math"

	"github.com/seenimoa/openscreener/pkg/models"
)

// recordFields is the declarative column mapping: each output attribute lists
// its candidate source columns in priority order and a setter that coerces the
// first usable value. Attributes with no usable candidate stay nil.
var recordFields = []struct {
	candidates []string
	assign     func(rec *models.SecurityRecord, v any)
}{
	{[]string{"symbol"}, func(r *models.SecurityRecord, v any) { r.Ticker = asString(v) }},
	{[]string{"shortName", "longName", "displayName"}, func(r *models.SecurityRecord, v any) { r.Name = asString(v) }},
	{[]string{"sector"}, func(r *models.SecurityRecord, v any) { r.Sector = asString(v) }},
	{[]string{"industry"}, func(r *models.SecurityRecord, v any) { r.Industry = asString(v) }},
	{[]string{"marketCap.raw"}, func(r *models.SecurityRecord, v any) { r.MarketCap = asFloat(v) }},
	{[]string{"regularMarketPrice.raw"}, func(r *models.SecurityRecord, v any) { r.Price = asFloat(v) }},
	{[]string{"regularMarketChangePercent.raw"}, func(r *models.SecurityRecord, v any) { r.ChangePercent = asFloat(v) }},
	{[]string{"regularMarketVolume.raw"}, func(r *models.SecurityRecord, v any) { r.Volume = asFloat(v) }},
	{[]string{"averageDailyVolume3Month.raw"}, func(r *models.SecurityRecord, v any) { r.AvgVolume3M = asFloat(v) }},
	{[]string{"trailingPE.raw"}, func(r *models.SecurityRecord, v any) { r.PERatio = asFloat(v) }},
	{[]string{"forwardPE.raw"}, func(r *models.SecurityRecord, v any) { r.ForwardPE = asFloat(v) }},
	{[]string{"pegRatio"}, func(r *models.SecurityRecord, v any) { r.PEGRatio = asFloat(v) }},
	{[]string{"priceToBook.raw"}, func(r *models.SecurityRecord, v any) { r.PriceToBook = asFloat(v) }},
	{[]string{"dividendYield.raw"}, func(r *models.SecurityRecord, v any) { r.DividendYield = asFloat(v) }},
	{[]string{"beta"}, func(r *models.SecurityRecord, v any) { r.Beta = asFloat(v) }},
	{[]string{"fiftyTwoWeekChangePercent.raw"}, func(r *models.SecurityRecord, v any) { r.FiftyTwoWeekChange = asFloat(v) }},
	{[]string{"fiftyTwoWeekHigh.raw"}, func(r *models.SecurityRecord, v any) { r.FiftyTwoWeekHigh = asFloat(v) }},
	{[]string{"fiftyTwoWeekLow.raw"}, func(r *models.SecurityRecord, v any) { r.FiftyTwoWeekLow = asFloat(v) }},
	{[]string{"epsTrailingTwelveMonths.raw"}, func(r *models.SecurityRecord, v any) { r.EPSTrailing = asFloat(v) }},
	{[]string{"epsForward.raw"}, func(r *models.SecurityRecord, v any) { r.EPSForward = asFloat(v) }},
	{[]string{"bookValue.raw"}, func(r *models.SecurityRecord, v any) { r.BookValue = asFloat(v) }},
	{[]string{"exchange", "fullExchangeName"}, func(r *models.SecurityRecord, v any) { r.Exchange = asString(v) }},
	{[]string{"averageAnalystRating"}, func(r *models.SecurityRecord, v any) { r.AnalystRating = asString(v) }},
	{[]string{"currency"}, func(r *models.SecurityRecord, v any) { r.Currency = asString(v) }},
}

// normalizeRows paginates and reshapes raw rows. The window [offset,
// offset+limit) is sliced before formatting, so rows outside it are never
// touched. Empty or nil input yields an empty slice, not an error.
func normalizeRows(rows []Row, limit, offset int) []models.SecurityRecord {
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	start := offset
	if start > len(rows) {
		start = len(rows)
	}
	end := start + limit
	if end > len(rows) {
		end = len(rows)
	}

	page := rows[start:end]
	out := make([]models.SecurityRecord, 0, len(page))
	for _, row := range page {
		out = append(out, formatRecord(row))
	}
	return out
}

// formatRecord normalizes a single raw row into the fixed output schema.
// currency is the one attribute with a non-null final fallback.
func formatRecord(row Row) models.SecurityRecord {
	var rec models.SecurityRecord
	for _, f := range recordFields {
		if v := resolve(row, f.candidates...); v != nil {
			f.assign(&rec, v)
		}
	}
	if rec.Currency == nil {
		usd := "USD"
		rec.Currency = &usd
	}
	return rec
}

// resolve returns the first candidate column holding a usable value.
// A missing key, an explicit null, or the backend's missing-numeric marker
// (NaN) all cause the next candidate to be tried.
func resolve(row Row, candidates ...string) any {
	for _, key := range candidates {
		v, ok := row[key]
		if !ok || isMissing(v) {
			continue
		}
		return v
	}
	return nil
}

// isMissing reports whether v is the backend's representation of an absent
// value: nil or NaN. NaN is distinct from zero.
func isMissing(v any) bool {
	if v == nil {
		return true
	}
	f, ok := v.(float64)
	return ok && math.IsNaN(f)
}

// asFloat coerces a raw value to a float pointer, nil for non-numerics.
func asFloat(v any) *float64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) {
			return nil
		}
		return &n
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	}
	return nil
}

// asString coerces a raw value to a string pointer, nil for non-strings.
func asString(v any) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}
