package yfscreen

// dataFilters is the static registry of filter field names the backend
// screener accepts. It mirrors the field table shipped with the backend
// client library and is queried for a count only; field names in queries
// are passed through without validation against it.
var dataFilters = []string{
	// Market / price
	"intradaymarketcap",
	"intradayprice",
	"intradaypricechange",
	"eodprice",
	"lastclose52weekhigh.lasttwelvemonths",
	"lastclose52weeklow.lasttwelvemonths",
	"percentchange",
	"dayvolume",
	"avgdailyvol3m",
	"eodvolume",
	"beta",
	"region",
	"sector",
	"industry",
	"exchange",
	"peer_group",

	// Valuation
	"lastclosepriceearnings.lasttwelvemonths",
	"lastclosepricebookvalue.lasttwelvemonths",
	"lastclosemarketcaptotalrevenue.lasttwelvemonths",
	"lastclosetevtotalrevenue.lasttwelvemonths",
	"lastclosetevebitda.lasttwelvemonths",
	"lastclosepricetangiblebookvalue.lasttwelvemonths",
	"pegratio_5y",
	"pricebookratio.quarterly",
	"peratio.lasttwelvemonths",

	// Income statement
	"totalrevenues.lasttwelvemonths",
	"totalrevenues1yrgrowth.lasttwelvemonths",
	"quarterlyrevenuegrowth.quarterly",
	"netincomeis.lasttwelvemonths",
	"netincome1yrgrowth.lasttwelvemonths",
	"netincomemargin.lasttwelvemonths",
	"grossprofit.lasttwelvemonths",
	"grossprofitmargin.lasttwelvemonths",
	"ebitda.lasttwelvemonths",
	"ebitda1yrgrowth.lasttwelvemonths",
	"ebitdamargin.lasttwelvemonths",
	"operatingincome.lasttwelvemonths",
	"basicepscontinuingoperations.lasttwelvemonths",
	"dilutedeps1yrgrowth.lasttwelvemonths",
	"dilutedepscontinuingoperations.lasttwelvemonths",
	"epsgrowth.lasttwelvemonths",

	// Balance sheet / returns
	"totalassets.lasttwelvemonths",
	"totaldebt.lasttwelvemonths",
	"totalequity.lasttwelvemonths",
	"totalcashandshortterminvestments.lasttwelvemonths",
	"totaldebtequity.lasttwelvemonths",
	"currentratio.lasttwelvemonths",
	"quickratio.lasttwelvemonths",
	"altmanzscoreusingtheaveragestockinformation",
	"returnonequity.lasttwelvemonths",
	"returnonassets.lasttwelvemonths",
	"returnontotalcapital.lasttwelvemonths",
	"netdebtebitda.lasttwelvemonths",

	// Cash flow
	"leveredfreecashflow.lasttwelvemonths",
	"unleveredfreecashflow.lasttwelvemonths",
	"leveredfreecashflow1yrgrowth.lasttwelvemonths",
	"capitalexpenditure.lasttwelvemonths",
	"cashfromoperations.lasttwelvemonths",
	"cashfromoperations1yrgrowth.lasttwelvemonths",

	// Dividends
	"dividendyield",
	"forward_dividend_yield",
	"dividendrate",
	"dividendpershare.lasttwelvemonths",
	"payoutratio.lasttwelvemonths",
	"consecutive_years_of_dividend_growth_count",
	"years_of_consecutive_positive_eps",

	// Performance
	"fiftytwowkpercentchange",
	"onemonthpercentchange",
	"threemonthpercentchange",
	"sixmonthpercentchange",
	"oneyearpercentchange",
	"twoyearpercentchange",
	"threeyearpercentchange",
	"fiveyearpercentchange",

	// Ownership / short interest
	"pctheldinsider",
	"pctheldinst",
	"short_percentage_of_float.value",
	"short_percentage_of_shares_outstanding.value",
	"short_interest.value",
	"short_interest_percentage_change.value",
	"days_to_cover_short.value",

	// ESG
	"environmental_score",
	"governance_score",
	"social_score",
	"esg_score",
	"highest_controversy",

	// Fund (ETF / mutual fund)
	"fundnetassets",
	"fundfamilyname",
	"categoryname",
	"primary_sector",
	"annualreportnetexpenseratio",
	"annualreportgrossexpenseratio",
	"turnoverratio",
	"annualreturnnavy1",
	"annualreturnnavy3",
	"annualreturnnavy5",
	"annualreturnnavy1categoryrank",
	"trailing_3m_return",
	"trailing_ytd_return",
	"performanceratingoverall",
	"riskratingoverall",
	"initialinvestment",
	"netexpenseratio",

	// Index / futures
	"quotetype",
	"currency",
	"exchange_timezone",
	"open_interest",
}
