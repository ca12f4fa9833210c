package market

import (
	"sort"
	"strings"

	"market-watch/src/models"
)

// -----------------------------------------------------------------------------
// MarketCatalog
// -----------------------------------------------------------------------------

// MarketCatalog is the read-only table of supported markets. It is built once
// at process start; adding a market is a data change, not a logic change.
type MarketCatalog struct {
	profiles map[string]models.MMarketProfile
	codes    []string
}

// -----------------------------------------------------------------------------

// NewMarketCatalog builds the catalog from the built-in market table.
func NewMarketCatalog() *MarketCatalog {
	c := &MarketCatalog{profiles: make(map[string]models.MMarketProfile)}

	for _, p := range defaultProfiles() {
		c.profiles[p.CountryCode] = p
		c.codes = append(c.codes, p.CountryCode)
	}
	sort.Strings(c.codes)
	return c
}

// -----------------------------------------------------------------------------

// Lookup returns the profile for an ISO-2 country code.
func (c *MarketCatalog) Lookup(countryCode string) (models.MMarketProfile, bool) {
	p, ok := c.profiles[strings.ToUpper(countryCode)]
	return p, ok
}

// -----------------------------------------------------------------------------

// SupportedCodes returns the supported country codes in sorted order.
func (c *MarketCatalog) SupportedCodes() []string {
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}

// -----------------------------------------------------------------------------

// FallbackProfile synthesizes a profile for a detected country that has no
// catalog entry: the default market's symbols shown under the original code,
// flagged so the dashboard can explain itself.
func (c *MarketCatalog) FallbackProfile(countryCode, defaultCode string) models.MMarketProfile {
	base, ok := c.Lookup(defaultCode)
	if !ok {
		base = c.profiles["US"]
	}

	code := strings.ToUpper(countryCode)
	return models.MMarketProfile{
		CountryCode:  code,
		CountryName:  CountryName(code),
		CurrencyCode: base.CurrencyCode,
		ExchangeName: base.ExchangeName,
		ExchangeMIC:  base.ExchangeMIC,
		Indexes:      []string{"Global Markets"},
		TopSymbols:   base.TopSymbols,
		Fallback:     true,
	}
}

// -----------------------------------------------------------------------------
// Static market table
// -----------------------------------------------------------------------------

func defaultProfiles() []models.MMarketProfile {
	return []models.MMarketProfile{
		{
			CountryCode:  "US",
			CountryName:  "United States",
			CurrencyCode: "USD",
			ExchangeName: "NASDAQ/NYSE",
			ExchangeMIC:  "xnys",
			Indexes:      []string{"S&P 500", "NASDAQ", "DOW"},
			TopSymbols: []string{
				"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA",
				"TSLA", "META", "AVGO", "AMD", "CRM",
			},
		},
		{
			CountryCode:  "CA",
			CountryName:  "Canada",
			CurrencyCode: "CAD",
			ExchangeName: "Toronto Stock Exchange",
			ExchangeMIC:  "xtse",
			Indexes:      []string{"TSX", "TSX Venture"},
			TopSymbols: []string{
				"SHOP.TO", "CNR.TO", "RY.TO", "TD.TO", "BNS.TO",
				"BMO.TO", "ENB.TO", "TRI.TO", "WCN.TO", "CP.TO",
			},
		},
		{
			CountryCode:  "GB",
			CountryName:  "United Kingdom",
			CurrencyCode: "GBP",
			ExchangeName: "London Stock Exchange",
			ExchangeMIC:  "xlon",
			Indexes:      []string{"FTSE 100", "FTSE 250"},
			TopSymbols: []string{
				"SHEL.L", "AZN.L", "LSEG.L", "UU.L", "ULVR.L",
				"VOD.L", "BP.L", "HSBA.L", "GSK.L",
			},
		},
		{
			CountryCode:  "DE",
			CountryName:  "Germany",
			CurrencyCode: "EUR",
			ExchangeName: "Frankfurt Stock Exchange",
			ExchangeMIC:  "xfra",
			Indexes:      []string{"DAX", "MDAX"},
			TopSymbols: []string{
				"SAP.DE", "SIE.DE", "ALV.DE", "DTE.DE", "BMW.DE",
				"BAS.DE", "MBG.DE", "ADS.DE",
			},
		},
		{
			CountryCode:  "JP",
			CountryName:  "Japan",
			CurrencyCode: "JPY",
			ExchangeName: "Tokyo Stock Exchange",
			ExchangeMIC:  "xtks",
			Indexes:      []string{"Nikkei 225", "TOPIX"},
			TopSymbols: []string{
				"7203.T", "6758.T", "9984.T", "6861.T", "8306.T",
				"9432.T", "4063.T", "6098.T", "7974.T", "8035.T",
			},
		},
		{
			CountryCode:  "IN",
			CountryName:  "India",
			CurrencyCode: "INR",
			ExchangeName: "National Stock Exchange",
			ExchangeMIC:  "xnse",
			Indexes:      []string{"SENSEX", "NIFTY 50"},
			TopSymbols: []string{
				"RELIANCE.NS", "TCS.NS", "HDFCBANK.NS", "INFY.NS", "HINDUNILVR.NS",
				"ICICIBANK.NS", "SBIN.NS", "BHARTIARTL.NS", "ITC.NS", "KOTAKBANK.NS",
			},
		},
	}
}

// -----------------------------------------------------------------------------

var countryNames = map[string]string{
	"US": "United States",
	"CA": "Canada",
	"GB": "United Kingdom",
	"DE": "Germany",
	"JP": "Japan",
	"IN": "India",
	"FR": "France",
	"IT": "Italy",
	"ES": "Spain",
	"NL": "Netherlands",
	"AU": "Australia",
	"BR": "Brazil",
	"MX": "Mexico",
	"KR": "South Korea",
	"CN": "China",
	"RU": "Russia",
	"SG": "Singapore",
	"HK": "Hong Kong",
	"CH": "Switzerland",
	"SE": "Sweden",
	"NO": "Norway",
	"DK": "Denmark",
}

// CountryName returns a display name for any ISO-2 code, with a generic label
// for codes outside the known set.
func CountryName(countryCode string) string {
	if name, ok := countryNames[strings.ToUpper(countryCode)]; ok {
		return name
	}
	return strings.ToUpper(countryCode) + " (Global Market)"
}
