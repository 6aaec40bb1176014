package yfscreen

import "github.com/seenimoa/openscreener/pkg/models"

// Filter schema registry: backend filter fields grouped by category,
// separately for equities and for funds (ETF/mutual fund). These tables are
// documentation for callers, not enforcement. Unknown fields pass through
// and surface as backend-reported failures.

var equityFilterGroups = []models.FilterGroup{
	{Category: "valuation", Fields: []string{
		"lastclosepriceearnings.lasttwelvemonths",
		"pegratio_5y",
		"lastclosepricebookvalue.lasttwelvemonths",
		"lastclosemarketcaptotalrevenue.lasttwelvemonths",
		"lastclosetevebitda.lasttwelvemonths",
	}},
	{Category: "market", Fields: []string{
		"intradaymarketcap",
		"intradayprice",
		"eodprice",
		"dayvolume",
		"avgdailyvol3m",
		"percentchange",
	}},
	{Category: "performance", Fields: []string{
		"fiftytwowkpercentchange",
		"onemonthpercentchange",
		"threemonthpercentchange",
		"sixmonthpercentchange",
		"oneyearpercentchange",
	}},
	{Category: "fundamentals", Fields: []string{
		"epsgrowth.lasttwelvemonths",
		"totalrevenues1yrgrowth.lasttwelvemonths",
		"returnonequity.lasttwelvemonths",
		"returnonassets.lasttwelvemonths",
		"netincomemargin.lasttwelvemonths",
		"grossprofitmargin.lasttwelvemonths",
	}},
	{Category: "dividend", Fields: []string{
		"dividendyield",
		"forward_dividend_yield",
		"consecutive_years_of_dividend_growth_count",
	}},
	{Category: "risk", Fields: []string{
		"beta",
		"short_percentage_of_float.value",
	}},
	{Category: "classification", Fields: []string{
		"region",
		"sector",
		"industry",
		"exchange",
	}},
}

var fundFilterGroups = []models.FilterGroup{
	{Category: "fund_basics", Fields: []string{
		"fundnetassets",
		"intradayprice",
		"eodprice",
		"dayvolume",
		"avgdailyvol3m",
		"percentchange",
	}},
	{Category: "performance", Fields: []string{
		"fiftytwowkpercentchange",
		"annualreturnnavy1",
		"annualreturnnavy3",
		"annualreturnnavy5",
		"trailing_3m_return",
		"trailing_ytd_return",
	}},
	{Category: "costs", Fields: []string{
		"annualreportnetexpenseratio",
		"annualreportgrossexpenseratio",
		"turnoverratio",
	}},
	{Category: "ratings", Fields: []string{
		"performanceratingoverall",
		"riskratingoverall",
	}},
	{Category: "classification", Fields: []string{
		"region",
		"categoryname",
		"fundfamilyname",
		"primary_sector",
		"exchange",
	}},
}

// sectors is the closed set of sector names accepted by the "sector" filter.
var sectors = []string{
	"Technology", "Healthcare", "Financial Services", "Consumer Cyclical",
	"Consumer Defensive", "Energy", "Basic Materials", "Industrials",
	"Communication Services", "Utilities", "Real Estate",
}

// EquityFilterGroups returns the documented equity filter fields by category.
func EquityFilterGroups() []models.FilterGroup {
	return equityFilterGroups
}

// FundFilterGroups returns the documented ETF/mutual-fund filter fields by category.
func FundFilterGroups() []models.FilterGroup {
	return fundFilterGroups
}

// FilterDocumentation returns the static filter reference document:
// field categories, operator semantics, worked examples, the sector enum,
// and per-type usage notes. No I/O, no failure modes.
func FilterDocumentation() *models.FilterDocs {
	return &models.FilterDocs{
		EquityFilters: equityFilterGroups,
		FundFilters:   fundFilterGroups,
		Operators: map[models.FilterOp]string{
			models.OpEq:   `Equals - exact match (e.g., eq(region, "us"))`,
			models.OpGt:   `Greater than (e.g., gt(intradaymarketcap, 1000000000))`,
			models.OpLt:   `Less than (e.g., lt(lastclosepriceearnings.lasttwelvemonths, 15))`,
			models.OpBtwn: `Between range (e.g., btwn(intradaymarketcap, 2000000000, 10000000000))`,
		},
		Examples: map[string][]models.FilterClause{
			"equity_value_screen": {
				models.Eq("region", "us"),
				models.Btwn("lastclosepriceearnings.lasttwelvemonths", 0, 15),
				models.Lt("lastclosepricebookvalue.lasttwelvemonths", 2),
			},
			"equity_large_cap_tech": {
				models.Eq("region", "us"),
				models.Eq("sector", "Technology"),
				models.Gt("intradaymarketcap", 10_000_000_000),
			},
			"equity_high_dividend": {
				models.Eq("region", "us"),
				models.Gt("dividendyield", 4),
				models.Gt("intradaymarketcap", 1_000_000_000),
			},
			"etf_large_funds": {
				models.Eq("region", "us"),
				models.Gt("fundnetassets", 10_000_000_000),
			},
			"etf_low_cost": {
				models.Eq("region", "us"),
				models.Lt("annualreportnetexpenseratio", 0.1),
				models.Gt("fundnetassets", 1_000_000_000),
			},
		},
		Sectors:       sectors,
		SecurityTypes: models.SecurityTypes(),
		Notes: map[string]string{
			"equity":         "Use intradaymarketcap for market cap, sector for classification",
			"etf_mutualfund": "Use fundnetassets for AUM, primary_sector or categoryname for classification",
		},
	}
}
