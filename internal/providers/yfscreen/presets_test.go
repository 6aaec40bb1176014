package yfscreen

import (
	"testing"

	"github.com/seenimoa/openscreener/pkg/models"
)

func TestPresetCatalogIntegrity(t *testing.T) {
	if len(presetOrder) != len(presets) {
		t.Fatalf("order list has %d names, catalog has %d presets", len(presetOrder), len(presets))
	}

	for _, name := range presetOrder {
		p, ok := presets[name]
		if !ok {
			t.Errorf("ordered name %q missing from catalog", name)
			continue
		}
		if p.Name != name {
			t.Errorf("preset %q declares name %q", name, p.Name)
		}
		if p.Description == "" {
			t.Errorf("preset %q has no description", name)
		}
		if !p.SecurityType.Valid() {
			t.Errorf("preset %q has invalid security type %q", name, p.SecurityType)
		}
		if len(p.Filters) == 0 {
			t.Errorf("preset %q has no filters", name)
		}
	}
}

func TestPresetFiltersCompile(t *testing.T) {
	// Every preset must compile into a backend query.
	b := &screenerBackend{}
	for name, p := range presets {
		if _, err := b.CompileQuery(p.Filters); err != nil {
			t.Errorf("preset %q does not compile: %v", name, err)
		}
	}
}

func TestPresetByName(t *testing.T) {
	p, ok := PresetByName("value_stocks")
	if !ok {
		t.Fatal("value_stocks should exist")
	}
	if p.SecurityType != models.SecurityEquity {
		t.Errorf("security type: got %s", p.SecurityType)
	}

	if _, ok := PresetByName("nonexistent"); ok {
		t.Error("expected miss for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	list := ListPresets()
	if len(list) != len(presetOrder) {
		t.Fatalf("expected %d presets, got %d", len(presetOrder), len(list))
	}
	// Catalog order is stable.
	if list[0].Name != presetOrder[0] {
		t.Errorf("first preset: got %q, want %q", list[0].Name, presetOrder[0])
	}

	var etfs, funds int
	for _, p := range list {
		switch p.SecurityType {
		case models.SecurityETF:
			etfs++
		case models.SecurityMutualFund:
			funds++
		}
	}
	if etfs == 0 {
		t.Error("expected ETF presets in the catalog")
	}
	if funds == 0 {
		t.Error("expected mutual fund presets in the catalog")
	}
}

func TestFilterDocumentation(t *testing.T) {
	docs := FilterDocumentation()

	if len(docs.EquityFilters) == 0 {
		t.Error("expected equity filter groups")
	}
	if len(docs.FundFilters) == 0 {
		t.Error("expected fund filter groups")
	}
	if len(docs.Operators) != 4 {
		t.Errorf("expected 4 operator docs, got %d", len(docs.Operators))
	}
	for _, op := range models.FilterOps() {
		if docs.Operators[op] == "" {
			t.Errorf("operator %q undocumented", op)
		}
	}
	if len(docs.Examples) == 0 {
		t.Error("expected worked examples")
	}
	for name, clauses := range docs.Examples {
		if len(clauses) == 0 {
			t.Errorf("example %q has no clauses", name)
		}
	}
	if len(docs.Sectors) == 0 {
		t.Error("expected sector list")
	}
	if len(docs.SecurityTypes) != 5 {
		t.Errorf("expected 5 security types, got %d", len(docs.SecurityTypes))
	}
}

func TestDataFiltersRegistry(t *testing.T) {
	if len(dataFilters) < 100 {
		t.Errorf("expected a substantial filter registry, got %d entries", len(dataFilters))
	}

	seen := make(map[string]bool)
	for _, f := range dataFilters {
		if f == "" {
			t.Error("empty filter name in registry")
		}
		if seen[f] {
			t.Errorf("duplicate filter name %q", f)
		}
		seen[f] = true
	}

	// Fields the presets rely on must be registered.
	for _, want := range []string{"intradaymarketcap", "dayvolume", "fundnetassets", "region", "sector"} {
		if !seen[want] {
			t.Errorf("registry missing %q", want)
		}
	}
}
