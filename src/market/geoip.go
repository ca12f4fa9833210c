package market

import (
	"encoding/json"

	"market-watch/src/interfaces"
	"market-watch/src/logger"
)

// -----------------------------------------------------------------------------
// GeoRegionSource
// -----------------------------------------------------------------------------

const geoAPIEndpoint = "http://ip-api.com/json/"

// GeoRegionSource resolves the country from IP geolocation. Any failure yields
// an empty signal; the detector falls through to its next tier.
type GeoRegionSource struct {
	Network interfaces.INetworkManager
	Logger  *logger.Logger
}

// -----------------------------------------------------------------------------

func NewGeoRegionSource(netMgr interfaces.INetworkManager, log *logger.Logger) *GeoRegionSource {
	return &GeoRegionSource{Network: netMgr, Logger: log}
}

// -----------------------------------------------------------------------------

func (s *GeoRegionSource) Name() string {
	return "geoip"
}

// -----------------------------------------------------------------------------

func (s *GeoRegionSource) Region() string {
	body, err := s.Network.Get(geoAPIEndpoint, nil)
	if err != nil {
		s.Logger.Debug("GeoIP lookup failed: %v", err)
		return ""
	}

	var resp struct {
		Status      string `json:"status"`
		CountryCode string `json:"countryCode"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		s.Logger.Debug("GeoIP response unreadable: %v", err)
		return ""
	}
	if resp.Status != "" && resp.Status != "success" {
		return ""
	}
	return resp.CountryCode
}
