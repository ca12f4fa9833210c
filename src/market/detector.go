package market

import (
	"strings"

	"market-watch/src/helpers"
	"market-watch/src/interfaces"
	"market-watch/src/logger"
	"market-watch/src/models"
)

// -----------------------------------------------------------------------------
// CountryDetector
// -----------------------------------------------------------------------------

// CountryDetector resolves the effective market profile. Resolution order is
// fixed: explicit override > region sources in registration order > default.
// Only an explicit override can fail; detection falls through silently.
type CountryDetector struct {
	Catalog        *MarketCatalog
	Sources        []interfaces.IRegionSource
	DefaultCountry string
	Logger         *logger.Logger
}

// -----------------------------------------------------------------------------

func NewCountryDetector(catalog *MarketCatalog, sources []interfaces.IRegionSource, defaultCountry string, log *logger.Logger) *CountryDetector {
	if defaultCountry == "" {
		defaultCountry = "US"
	}
	return &CountryDetector{
		Catalog:        catalog,
		Sources:        sources,
		DefaultCountry: strings.ToUpper(defaultCountry),
		Logger:         log,
	}
}

// -----------------------------------------------------------------------------

// Resolve returns the market profile for the given override, or detects one.
// An empty override enables detection.
func (d *CountryDetector) Resolve(override string) (models.MMarketProfile, error) {
	if code := strings.ToUpper(strings.TrimSpace(override)); code != "" {
		profile, ok := d.Catalog.Lookup(code)
		if !ok {
			return models.MMarketProfile{}, &helpers.UnsupportedMarketError{
				Code:      code,
				Supported: d.Catalog.SupportedCodes(),
			}
		}
		return profile, nil
	}

	// Detection tier: first supported signal wins. A non-empty signal for an
	// unlisted country is remembered so the fallback keeps the user's country
	// label while showing the default market's stocks.
	unlisted := ""
	for _, src := range d.Sources {
		code := strings.ToUpper(strings.TrimSpace(src.Region()))
		if code == "" {
			continue
		}

		if profile, ok := d.Catalog.Lookup(code); ok {
			d.Logger.Debug("Detected market %s via %s", code, src.Name())
			return profile, nil
		}
		if unlisted == "" {
			unlisted = code
		}
	}

	if unlisted != "" {
		d.Logger.Info("Detected country %s has no local market data, using %s market",
			unlisted, d.DefaultCountry)
		return d.Catalog.FallbackProfile(unlisted, d.DefaultCountry), nil
	}

	profile, ok := d.Catalog.Lookup(d.DefaultCountry)
	if !ok {
		// Misconfigured default; US is always present in the table.
		profile, _ = d.Catalog.Lookup("US")
	}
	return profile, nil
}
