// Package models defines the normalized data models returned by the
// screening provider layer. Raw backend rows are reshaped into these
// structures before they leave internal/providers.
package models

import "time"

// SecurityType is the category of tradable instrument being screened.
type SecurityType string

const (
	SecurityEquity     SecurityType = "equity"
	SecurityETF        SecurityType = "etf"
	SecurityMutualFund SecurityType = "mutualfund"
	SecurityIndex      SecurityType = "index"
	SecurityFuture     SecurityType = "future"
)

// SecurityTypes returns all supported security types in a stable order.
func SecurityTypes() []SecurityType {
	return []SecurityType{
		SecurityEquity,
		SecurityETF,
		SecurityMutualFund,
		SecurityIndex,
		SecurityFuture,
	}
}

// Valid reports whether s is one of the supported security types.
func (s SecurityType) Valid() bool {
	switch s {
	case SecurityEquity, SecurityETF, SecurityMutualFund, SecurityIndex, SecurityFuture:
		return true
	}
	return false
}

// IsFund reports whether s is a fund-like type (ETF or mutual fund).
// Fund-like types use net-asset filters instead of market-cap filters.
func (s SecurityType) IsFund() bool {
	return s == SecurityETF || s == SecurityMutualFund
}

// FilterOp is a screening predicate operator.
type FilterOp string

const (
	OpEq   FilterOp = "eq"   // exact match, one operand value
	OpGt   FilterOp = "gt"   // greater than, one operand value
	OpLt   FilterOp = "lt"   // less than, one operand value
	OpBtwn FilterOp = "btwn" // between, exactly two bound values
)

// FilterOps returns the supported operators in a stable order.
func FilterOps() []FilterOp {
	return []FilterOp{OpEq, OpGt, OpLt, OpBtwn}
}

// FilterClause is a single screening predicate: an operator applied to a
// backend field with one value (eq/gt/lt) or two bound values (btwn).
// Field names are not validated against the backend schema; unknown fields
// surface as a backend-reported failure.
type FilterClause struct {
	Op     FilterOp `json:"op"`
	Field  string   `json:"field"`
	Values []any    `json:"values"`
}

// Eq builds an equality clause.
func Eq(field string, value any) FilterClause {
	return FilterClause{Op: OpEq, Field: field, Values: []any{value}}
}

// Gt builds a greater-than clause.
func Gt(field string, value float64) FilterClause {
	return FilterClause{Op: OpGt, Field: field, Values: []any{value}}
}

// Lt builds a less-than clause.
func Lt(field string, value float64) FilterClause {
	return FilterClause{Op: OpLt, Field: field, Values: []any{value}}
}

// Btwn builds a between clause with inclusive bounds.
func Btwn(field string, lo, hi float64) FilterClause {
	return FilterClause{Op: OpBtwn, Field: field, Values: []any{lo, hi}}
}

// SecurityRecord is one normalized screening result row. Every attribute is
// independently nullable: a nil pointer means the backend had no usable value
// for any of the candidate source columns.
type SecurityRecord struct {
	Ticker             *string  `json:"ticker"`
	Name               *string  `json:"name"`
	Sector             *string  `json:"sector"`
	Industry           *string  `json:"industry"`
	MarketCap          *float64 `json:"market_cap"`
	Price              *float64 `json:"price"`
	ChangePercent      *float64 `json:"change_percent"`
	Volume             *float64 `json:"volume"`
	AvgVolume3M        *float64 `json:"avg_volume_3m"`
	PERatio            *float64 `json:"pe_ratio"`
	ForwardPE          *float64 `json:"forward_pe"`
	PEGRatio           *float64 `json:"peg_ratio"`
	PriceToBook        *float64 `json:"price_to_book"`
	DividendYield      *float64 `json:"dividend_yield"`
	Beta               *float64 `json:"beta"`
	FiftyTwoWeekChange *float64 `json:"52w_change"`
	FiftyTwoWeekHigh   *float64 `json:"52w_high"`
	FiftyTwoWeekLow    *float64 `json:"52w_low"`
	EPSTrailing        *float64 `json:"eps_ttm"`
	EPSForward         *float64 `json:"eps_forward"`
	BookValue          *float64 `json:"book_value"`
	Exchange           *string  `json:"exchange"`
	AnalystRating      *string  `json:"analyst_rating"`
	Currency           *string  `json:"currency"`
}

// ScreeningResult is the full response of a screening call. It is always
// populated, even on failure: a failed call carries ErrorMessage and an
// empty Results slice rather than an error.
type ScreeningResult struct {
	SecurityType      SecurityType     `json:"security_type"`
	PresetUsed        *string          `json:"preset_used"`
	FilterDescription string           `json:"filter_description"`
	FiltersApplied    []FilterClause   `json:"filters_applied"`
	TotalResults      int              `json:"total_results"`
	ReturnedCount     int              `json:"returned_count"`
	Offset            int              `json:"offset"`
	Limit             int              `json:"limit"`
	Results           []SecurityRecord `json:"results"`
	QueryTimestamp    time.Time        `json:"query_timestamp"`
	ErrorMessage      *string          `json:"error_message"`
}

// PresetSummary describes one preset screen for listing purposes.
type PresetSummary struct {
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	SecurityType SecurityType `json:"security_type"`
}

// FilterGroup is a named category of backend filter fields.
type FilterGroup struct {
	Category string   `json:"category"`
	Fields   []string `json:"fields"`
}

// FilterCatalog is the response of the available-filters operation.
type FilterCatalog struct {
	AvailableFilters    []FilterGroup `json:"available_filters"`
	TotalBackendFilters int           `json:"total_backend_filter_count"`
	Operators           []FilterOp    `json:"operators"`
	ErrorMessage        *string       `json:"error_message"`
}

// FilterDocs is the static filter reference document: field categories per
// instrument family, operator semantics, worked examples, and usage notes.
type FilterDocs struct {
	EquityFilters []FilterGroup             `json:"equity_filters"`
	FundFilters   []FilterGroup             `json:"etf_mutualfund_filters"`
	Operators     map[FilterOp]string       `json:"operators"`
	Examples      map[string][]FilterClause `json:"examples"`
	Sectors       []string                  `json:"sectors"`
	SecurityTypes []SecurityType            `json:"security_types"`
	Notes         map[string]string         `json:"notes"`
}
