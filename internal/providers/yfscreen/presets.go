package yfscreen

import "github.com/seenimoa/openscreener/pkg/models"

// Preset is a named, pre-defined filter configuration plus the security type
// it targets. Presets are defined at process start and never mutated.
type Preset struct {
	Name         string
	Description  string
	SecurityType models.SecurityType
	Filters      []models.FilterClause
}

// presetOrder fixes the listing order of the catalog.
var presetOrder = []string{
	"value_stocks",
	"growth_stocks",
	"dividend_stocks",
	"large_cap",
	"mid_cap",
	"small_cap",
	"high_volume",
	"momentum",
	"undervalued",
	"low_pe",
	"high_dividend_yield",
	"blue_chip",
	"tech_sector",
	"healthcare_sector",
	"financial_sector",
	"energy_sector",
	"top_gainers",
	"top_losers",
	"large_etfs",
	"top_performing_etfs",
	"low_expense_etfs",
	"large_mutual_funds",
	"top_performing_funds",
}

// presets is the static preset catalog.
var presets = map[string]Preset{
	"value_stocks": {
		Name:         "value_stocks",
		Description:  "Low P/E (<15), low P/B (<3), US region",
		SecurityType: models.SecurityEquity,
		Filters: []models.FilterClause{
			models.Eq("region", "us"),
			models.Btwn("lastclosepriceearnings.lasttwelvemonths", 0, 15),
			models.Lt("lastclosepricebookvalue.lasttwelvemonths", 3),
			models.Gt("intradaymarketcap", 1_000_000_000),
			models.Gt("dayvolume", 500_000),
		},
	},
	"growth_stocks": {
		Name:         "growth_stocks",
		Description:  "High EPS growth (>20%), strong revenue growth",
		SecurityType: models.SecurityEquity,
		Filters: []models.FilterClause{
			models.Eq("region", "us"),
			models.Gt("epsgrowth.lasttwelvemonths", 20),
			models.Gt("totalrevenues1yrgrowth.lasttwelvemonths", 15),
			models.Gt("intradaymarketcap", 500_000_000),
			models.Gt("dayvolume", 500_000),
		},
	},
	"dividend_stocks": {
		Name:         "dividend_stocks",
		Description:  "High dividend yield (>3%), stable payers",
		SecurityType: models.SecurityEquity,
		Filters: []models.FilterClause{
			models.Eq("region", "us"),
			models.Gt("dividendyield", 3),
			models.Gt("intradaymarketcap", 2_000_000_000),
			models.Lt("lastclosepriceearnings.lasttwelvemonths", 25),
			models.Gt("dayvolume", 500_000),
		},
	},
	"large_cap": {
		Name:         "large_cap",
		Description:  "Market cap > $10B",
		SecurityType: models.SecurityEquity,
		Filters: []models.FilterClause{
			models.Eq("region", "us"),
			models.Gt("intradaymarketcap", 10_000_000_000),
			models.Gt("dayvolume", 1_000_000),
		},
	},
	"mid_cap": {
		Name:         "mid_cap",
		Description:  "Market cap $2B-$10B",
		SecurityType: models.SecurityEquity,
		Filters: []models.FilterClause{
			models.Eq("region", "us"),
			models.Btwn("intradaymarketcap", 2_000_000_000, 10_000_000_000),
			models.Gt("dayvolume", 500_000),
		},
	},
	"small_cap": {
		Name:         "small_cap",
		Description:  "Market cap $300M-$2B",
		SecurityType: models.SecurityEquity,
		Filters: []models.FilterClause{
			models.Eq("region", "us"),
			models.Btwn("intradaymarketcap", 300_000_000, 2_000_000_000),
			models.Gt("dayvolume", 100_000),
		},
	},
	"high_volume": {
		Name:         "high_volume",
		Description:  "High trading volume (>5M daily average)",
		SecurityType: models.SecurityEquity,
		Filters: []models.FilterClause{
			models.Eq("region", "us"),
			models.Gt("dayvolume", 5_000_000),
			models.Gt("intradaymarketcap", 1_000_000_000),
		},
	},
	"momentum": {
		Name:         "momentum",
		Description:  "Strong 52-week performance, near 52w highs",
		SecurityType: models.SecurityEquity,
		Filters: []models.FilterClause{
			models.Eq("region", "us"),
			models.Gt("fiftytwowkpercentchange", 20),
			models.Gt("intradaymarketcap", 1_000_000_000),
			models.Gt("dayvolume", 500_000),
		},
	},
	"undervalued": {
		Name:         "undervalued",
		Description:  "PEG < 1, low P/B, analyst upside",
		SecurityType: models.SecurityEquity,
		Filters: []models.FilterClause{
			models.Eq("region", "us"),
			models.Lt("pegratio_5y", 1),
			models.Lt("lastclosepricebookvalue.lasttwelvemonths", 2),
			models.Gt("intradaymarketcap", 500_000_000),
			models.Gt("dayvolume", 500_000),
		},
	},
	"low_pe": {
		Name:         "low_pe",
		Description:  "P/E ratio < 10",
		SecurityType: models.SecurityEquity,
		Filters: []models.FilterClause{
			models.Eq("region", "us"),
			models.Btwn("lastclosepriceearnings.lasttwelvemonths", 0, 10),
			models.Gt("intradaymarketcap", 500_000_000),
			models.Gt("dayvolume", 500_000),
		},
	},
	"high_dividend_yield": {
		Name:         "high_dividend_yield",
		Description:  "Dividend yield > 5%",
		SecurityType: models.SecurityEquity,
		Filters: []models.FilterClause{
			models.Eq("region", "us"),
			models.Gt("dividendyield", 5),
			models.Gt("intradaymarketcap", 1_000_000_000),
			models.Gt("dayvolume", 500_000),
		},
	},
	"blue_chip": {
		Name:         "blue_chip",
		Description:  "Large cap, low volatility, dividend paying",
		SecurityType: models.SecurityEquity,
		Filters: []models.FilterClause{
			models.Eq("region", "us"),
			models.Gt("intradaymarketcap", 50_000_000_000),
			models.Gt("dividendyield", 1),
			models.Lt("beta", 1.2),
			models.Gt("dayvolume", 1_000_000),
		},
	},
	"tech_sector": {
		Name:         "tech_sector",
		Description:  "Technology sector stocks",
		SecurityType: models.SecurityEquity,
		Filters:      sectorFilters("Technology"),
	},
	"healthcare_sector": {
		Name:         "healthcare_sector",
		Description:  "Healthcare sector stocks",
		SecurityType: models.SecurityEquity,
		Filters:      sectorFilters("Healthcare"),
	},
	"financial_sector": {
		Name:         "financial_sector",
		Description:  "Financial sector stocks",
		SecurityType: models.SecurityEquity,
		Filters:      sectorFilters("Financial Services"),
	},
	"energy_sector": {
		Name:         "energy_sector",
		Description:  "Energy sector stocks",
		SecurityType: models.SecurityEquity,
		Filters:      sectorFilters("Energy"),
	},
	"top_gainers": {
		Name:         "top_gainers",
		Description:  "Top daily gainers (>5% change)",
		SecurityType: models.SecurityEquity,
		Filters: []models.FilterClause{
			models.Eq("region", "us"),
			models.Gt("percentchange", 5),
			models.Gt("intradaymarketcap", 500_000_000),
			models.Gt("dayvolume", 500_000),
		},
	},
	"top_losers": {
		Name:         "top_losers",
		Description:  "Top daily losers (>5% decline)",
		SecurityType: models.SecurityEquity,
		Filters: []models.FilterClause{
			models.Eq("region", "us"),
			models.Lt("percentchange", -5),
			models.Gt("intradaymarketcap", 500_000_000),
			models.Gt("dayvolume", 500_000),
		},
	},

	// --- ETF presets ---
	"large_etfs": {
		Name:         "large_etfs",
		Description:  "Large ETFs with >$10B AUM",
		SecurityType: models.SecurityETF,
		Filters: []models.FilterClause{
			models.Eq("region", "us"),
			models.Gt("fundnetassets", 10_000_000_000),
		},
	},
	"top_performing_etfs": {
		Name:         "top_performing_etfs",
		Description:  "Top performing ETFs by 52-week return",
		SecurityType: models.SecurityETF,
		Filters: []models.FilterClause{
			models.Eq("region", "us"),
			models.Gt("fiftytwowkpercentchange", 20),
			models.Gt("fundnetassets", 1_000_000_000),
		},
	},
	"low_expense_etfs": {
		Name:         "low_expense_etfs",
		Description:  "ETFs with low expense ratios (<0.2%)",
		SecurityType: models.SecurityETF,
		Filters: []models.FilterClause{
			models.Eq("region", "us"),
			models.Lt("annualreportnetexpenseratio", 0.2),
			models.Gt("fundnetassets", 1_000_000_000),
		},
	},

	// --- Mutual fund presets ---
	"large_mutual_funds": {
		Name:         "large_mutual_funds",
		Description:  "Large mutual funds with >$10B AUM",
		SecurityType: models.SecurityMutualFund,
		Filters: []models.FilterClause{
			models.Eq("region", "us"),
			models.Gt("fundnetassets", 10_000_000_000),
		},
	},
	"top_performing_funds": {
		Name:         "top_performing_funds",
		Description:  "Top performing mutual funds by 52-week return",
		SecurityType: models.SecurityMutualFund,
		Filters: []models.FilterClause{
			models.Eq("region", "us"),
			models.Gt("fiftytwowkpercentchange", 15),
			models.Gt("fundnetassets", 500_000_000),
		},
	},
}

// sectorFilters builds the standard US large-liquid filter set for a sector.
func sectorFilters(sector string) []models.FilterClause {
	return []models.FilterClause{
		models.Eq("region", "us"),
		models.Eq("sector", sector),
		models.Gt("intradaymarketcap", 1_000_000_000),
		models.Gt("dayvolume", 500_000),
	}
}

// PresetByName looks up a preset in the catalog.
func PresetByName(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// ListPresets returns summaries for every preset in catalog order.
func ListPresets() []models.PresetSummary {
	out := make([]models.PresetSummary, 0, len(presetOrder))
	for _, name := range presetOrder {
		p := presets[name]
		out = append(out, models.PresetSummary{
			Name:         p.Name,
			Description:  p.Description,
			SecurityType: p.SecurityType,
		})
	}
	return out
}
