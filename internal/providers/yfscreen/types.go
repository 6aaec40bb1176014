package yfscreen

// --- Yahoo Finance screener API types ---

// yfError is the error object embedded in screener responses.
type yfError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// yfScreenerResponse wraps the v1 screener API response.
type yfScreenerResponse struct {
	Finance struct {
		Result []yfScreenerResult `json:"result"`
		Error  *yfError           `json:"error"`
	} `json:"finance"`
}

// yfScreenerResult is one page of screener output. Quote objects are
// heterogeneous per security type, so they are decoded as generic maps and
// flattened into dotted column names before normalization.
type yfScreenerResult struct {
	Start  int              `json:"start"`
	Count  int              `json:"count"`
	Total  int              `json:"total"`
	Quotes []map[string]any `json:"quotes"`
}

// yfQuery is the backend's native query representation: an operator applied
// to operands, where operands are either [field, value...] leaves or nested
// yfQuery nodes.
type yfQuery struct {
	Operator string `json:"operator"`
	Operands []any  `json:"operands"`
}

// yfPayload is the POST body of the v1 screener endpoint.
type yfPayload struct {
	Size       int     `json:"size"`
	Offset     int     `json:"offset"`
	SortField  string  `json:"sortField"`
	SortType   string  `json:"sortType"`
	QuoteType  string  `json:"quoteType"`
	Query      yfQuery `json:"query"`
	UserID     string  `json:"userId"`
	UserIDType string  `json:"userIdType"`
}
