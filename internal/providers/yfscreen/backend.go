package yfscreen

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/seenimoa/openscreener/internal/infra"
	"github.com/seenimoa/openscreener/pkg/models"
)

// Row is one raw tabular result row: column name → value. Nested backend
// objects are flattened into dotted column names (marketCap → marketCap.raw),
// so candidate-key lookups see a flat namespace.
type Row map[string]any

// Query is the backend's compiled query representation.
type Query = yfQuery

// Backend compiles and executes screening queries against the upstream
// screener. Implementations own transport, authentication, and rate limiting
// toward the upstream data provider; callers treat failures as opaque.
type Backend interface {
	// CompileQuery translates filter clauses into the backend's native
	// query representation.
	CompileQuery(filters []models.FilterClause) (Query, error)

	// Execute runs a compiled query for the given security type and returns
	// the raw tabular rows. The call blocks until the backend responds.
	Execute(ctx context.Context, securityType models.SecurityType, q Query) ([]Row, error)

	// DataFilters returns the backend's registry of known filter field names.
	DataFilters(ctx context.Context) ([]string, error)
}

const (
	defaultBaseURL = "https://query1.finance.yahoo.com"
	screenerPath   = "/v1/finance/screener?formatted=true&lang=en-US&region=US"

	// backendPageSize is the largest page the screener endpoint serves.
	backendPageSize = 250
)

// quoteTypes maps a security type to the backend's quoteType parameter.
var quoteTypes = map[models.SecurityType]string{
	models.SecurityEquity:     "EQUITY",
	models.SecurityETF:        "ETF",
	models.SecurityMutualFund: "MUTUALFUND",
	models.SecurityIndex:      "INDEX",
	models.SecurityFuture:     "FUTURE",
}

// screenerBackend is the HTTP implementation of Backend against the
// Yahoo Finance v1 screener endpoint.
type screenerBackend struct {
	baseURL string
}

// NewBackend creates the default screener backend.
func NewBackend() Backend {
	return &screenerBackend{baseURL: defaultBaseURL}
}

// NewBackendWithBaseURL creates a screener backend against a custom base URL.
// Used by tests to point at an httptest server.
func NewBackendWithBaseURL(baseURL string) Backend {
	return &screenerBackend{baseURL: baseURL}
}

// CompileQuery builds the and-of-clauses query tree the screener expects.
// Operand arity is checked here; field names are passed through unvalidated.
func (b *screenerBackend) CompileQuery(filters []models.FilterClause) (Query, error) {
	operands := make([]any, 0, len(filters))
	for _, fc := range filters {
		if fc.Field == "" {
			return Query{}, fmt.Errorf("filter clause missing field name")
		}
		switch fc.Op {
		case models.OpEq, models.OpGt, models.OpLt:
			if len(fc.Values) != 1 {
				return Query{}, fmt.Errorf("operator %q on %q needs exactly one value, got %d", fc.Op, fc.Field, len(fc.Values))
			}
		case models.OpBtwn:
			if len(fc.Values) != 2 {
				return Query{}, fmt.Errorf("operator btwn on %q needs exactly two bound values, got %d", fc.Field, len(fc.Values))
			}
		default:
			return Query{}, fmt.Errorf("unsupported filter operator %q", fc.Op)
		}

		leaf := make([]any, 0, len(fc.Values)+1)
		leaf = append(leaf, fc.Field)
		leaf = append(leaf, fc.Values...)
		operands = append(operands, yfQuery{Operator: string(fc.Op), Operands: leaf})
	}

	return Query{Operator: "and", Operands: operands}, nil
}

// Execute POSTs the compiled query and returns the flattened raw rows.
func (b *screenerBackend) Execute(ctx context.Context, securityType models.SecurityType, q Query) ([]Row, error) {
	quoteType, ok := quoteTypes[securityType]
	if !ok {
		return nil, fmt.Errorf("no backend quote type for security type %q", securityType)
	}

	sortField := "intradaymarketcap"
	if securityType.IsFund() {
		sortField = "fundnetassets"
	}

	body, err := json.Marshal(yfPayload{
		Size:       backendPageSize,
		Offset:     0,
		SortField:  sortField,
		SortType:   "desc",
		QuoteType:  quoteType,
		Query:      q,
		UserID:     "",
		UserIDType: "guid",
	})
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	resp, _, err := infra.DoPost(ctx, b.baseURL+screenerPath, body, map[string]string{"Accept": "application/json"})
	if err != nil {
		return nil, fmt.Errorf("screener request: %w", err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var parsed yfScreenerResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	if parsed.Finance.Error != nil {
		return nil, fmt.Errorf("screener API error: %s", parsed.Finance.Error.Description)
	}
	if len(parsed.Finance.Result) == 0 {
		return nil, nil
	}

	quotes := parsed.Finance.Result[0].Quotes
	rows := make([]Row, 0, len(quotes))
	for _, q := range quotes {
		rows = append(rows, flattenRow(q))
	}
	return rows, nil
}

// DataFilters returns the packaged filter-field registry.
func (b *screenerBackend) DataFilters(ctx context.Context) ([]string, error) {
	return dataFilters, nil
}

// flattenRow lifts one level of nesting into dotted column names, so a quote
// field like {"marketCap": {"raw": 1.2e9, "fmt": "1.2B"}} becomes the columns
// "marketCap.raw" and "marketCap.fmt". Scalar fields keep their name.
func flattenRow(quote map[string]any) Row {
	row := make(Row, len(quote))
	for k, v := range quote {
		if nested, ok := v.(map[string]any); ok {
			for sk, sv := range nested {
				row[k+"."+sk] = sv
			}
			continue
		}
		row[k] = v
	}
	return row
}
