package yfscreen

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/seenimoa/openscreener/pkg/models"
)

// --- CompileQuery ---

func TestCompileQueryShape(t *testing.T) {
	b := &screenerBackend{}
	q, err := b.CompileQuery([]models.FilterClause{
		models.Eq("region", "us"),
		models.Gt("intradaymarketcap", 1e9),
		models.Btwn("peratio.lasttwelvemonths", 0, 15),
	})
	if err != nil {
		t.Fatalf("CompileQuery failed: %v", err)
	}

	if q.Operator != "and" {
		t.Errorf("root operator: got %q", q.Operator)
	}
	if len(q.Operands) != 3 {
		t.Fatalf("operands: got %d", len(q.Operands))
	}

	leaf, ok := q.Operands[0].(yfQuery)
	if !ok {
		t.Fatalf("operand type: got %T", q.Operands[0])
	}
	if leaf.Operator != "eq" {
		t.Errorf("leaf operator: got %q", leaf.Operator)
	}
	if leaf.Operands[0] != "region" || leaf.Operands[1] != "us" {
		t.Errorf("leaf operands: got %v", leaf.Operands)
	}

	btwn := q.Operands[2].(yfQuery)
	if len(btwn.Operands) != 3 {
		t.Errorf("btwn leaf should carry field plus two bounds, got %v", btwn.Operands)
	}
}

func TestCompileQueryEmptyFilters(t *testing.T) {
	b := &screenerBackend{}
	q, err := b.CompileQuery(nil)
	if err != nil {
		t.Fatalf("CompileQuery failed: %v", err)
	}
	if q.Operator != "and" || len(q.Operands) != 0 {
		t.Errorf("empty filter list should compile to an empty and-tree, got %+v", q)
	}
}

func TestCompileQueryArityErrors(t *testing.T) {
	b := &screenerBackend{}
	bad := []models.FilterClause{
		{Op: models.OpEq, Field: "region", Values: []any{}},
		{Op: models.OpGt, Field: "dayvolume", Values: []any{1, 2}},
		{Op: models.OpBtwn, Field: "intradaymarketcap", Values: []any{1}},
		{Op: models.FilterOp("like"), Field: "sector", Values: []any{"Tech"}},
		{Op: models.OpEq, Field: "", Values: []any{"us"}},
	}
	for _, fc := range bad {
		if _, err := b.CompileQuery([]models.FilterClause{fc}); err == nil {
			t.Errorf("expected error for clause %+v", fc)
		}
	}
}

// --- Execute ---

func screenerResponse(quotes []map[string]any) string {
	resp := map[string]any{
		"finance": map[string]any{
			"result": []map[string]any{
				{"start": 0, "count": len(quotes), "total": len(quotes), "quotes": quotes},
			},
		},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestExecute(t *testing.T) {
	var gotPayload yfPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method: got %s", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &gotPayload); err != nil {
			t.Errorf("payload not JSON: %v", err)
		}
		io.WriteString(w, screenerResponse([]map[string]any{
			{"symbol": "AAPL", "marketCap": map[string]any{"raw": 2.8e12, "fmt": "2.8T"}},
		}))
	}))
	defer srv.Close()

	b := NewBackendWithBaseURL(srv.URL)
	q, _ := b.CompileQuery([]models.FilterClause{models.Eq("region", "us")})

	rows, err := b.Execute(context.Background(), models.SecurityEquity, q)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows: got %d", len(rows))
	}
	if rows[0]["symbol"] != "AAPL" {
		t.Errorf("symbol: got %v", rows[0]["symbol"])
	}
	if rows[0]["marketCap.raw"] != 2.8e12 {
		t.Errorf("flattened marketCap.raw: got %v", rows[0]["marketCap.raw"])
	}

	if gotPayload.Size != backendPageSize {
		t.Errorf("payload size: got %d, want %d", gotPayload.Size, backendPageSize)
	}
	if gotPayload.QuoteType != "EQUITY" {
		t.Errorf("quoteType: got %q", gotPayload.QuoteType)
	}
	if gotPayload.SortField != "intradaymarketcap" {
		t.Errorf("sortField: got %q", gotPayload.SortField)
	}
}

func TestExecuteFundSortField(t *testing.T) {
	var gotPayload yfPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotPayload)
		io.WriteString(w, screenerResponse(nil))
	}))
	defer srv.Close()

	b := NewBackendWithBaseURL(srv.URL)
	q, _ := b.CompileQuery(nil)

	if _, err := b.Execute(context.Background(), models.SecurityETF, q); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if gotPayload.QuoteType != "ETF" {
		t.Errorf("quoteType: got %q", gotPayload.QuoteType)
	}
	if gotPayload.SortField != "fundnetassets" {
		t.Errorf("fund sortField: got %q", gotPayload.SortField)
	}
}

func TestExecuteUnknownSecurityType(t *testing.T) {
	b := NewBackendWithBaseURL("http://127.0.0.1:0")
	q, _ := b.CompileQuery(nil)

	if _, err := b.Execute(context.Background(), "bond", q); err == nil {
		t.Error("expected error for unmapped security type")
	}
}

func TestExecuteAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"finance":{"result":null,"error":{"code":"Bad Request","description":"invalid field"}}}`)
	}))
	defer srv.Close()

	b := NewBackendWithBaseURL(srv.URL)
	q, _ := b.CompileQuery(nil)

	_, err := b.Execute(context.Background(), models.SecurityEquity, q)
	if err == nil {
		t.Fatal("expected error from API error envelope")
	}
}

func TestExecuteHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	b := NewBackendWithBaseURL(srv.URL)
	q, _ := b.CompileQuery(nil)

	if _, err := b.Execute(context.Background(), models.SecurityEquity, q); err == nil {
		t.Fatal("expected error for HTTP 429")
	}
}

func TestExecuteEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"finance":{"result":[]}}`)
	}))
	defer srv.Close()

	b := NewBackendWithBaseURL(srv.URL)
	q, _ := b.CompileQuery(nil)

	rows, err := b.Execute(context.Background(), models.SecurityEquity, q)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows: got %d, want 0", len(rows))
	}
}

func TestDataFilters(t *testing.T) {
	b := NewBackend()
	names, err := b.DataFilters(context.Background())
	if err != nil {
		t.Fatalf("DataFilters failed: %v", err)
	}
	if len(names) != len(dataFilters) {
		t.Errorf("expected the packaged registry, got %d names", len(names))
	}
}
