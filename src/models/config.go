package models

// MConfig Structure
type MConfig struct {
	Name      string           `yaml:"name"`
	LogLevel  string           `yaml:"log_level" envconfig:"LOG_LEVEL"`
	Market    MMarketConfig    `yaml:"market"`
	Advisor   MAdvisorConfig   `yaml:"advisor"`
	Network   MNetworkConfig   `yaml:"network"`
	Cache     MCacheConfig     `yaml:"cache"`
	Dashboard MDashboardConfig `yaml:"dashboard"`
	Server    MServerConfig    `yaml:"server"`
}

type MMarketConfig struct {
	DefaultCountry string   `yaml:"default_country" envconfig:"DEFAULT_COUNTRY"`
	Country        string   `yaml:"country" envconfig:"COUNTRY"` // optional fixed override
	ExtraSymbols   []string `yaml:"extra_symbols"`
	Detection      []string `yaml:"detection"` // ordered region sources: "env", "geoip"
}

type MAdvisorConfig struct {
	BuyThresholdPct  float64 `yaml:"buy_threshold_pct" envconfig:"BUY_THRESHOLD_PCT"`
	SellThresholdPct float64 `yaml:"sell_threshold_pct" envconfig:"SELL_THRESHOLD_PCT"`
}

type MNetworkConfig struct {
	RequestTimeout     int      `yaml:"timeout"`
	MaxRetries         int      `yaml:"retries"`
	ConcurrentRequests int      `yaml:"concurrent_requests"`
	UserAgents         []string `yaml:"user_agents"`
}

type MCacheConfig struct {
	Backend            string `yaml:"backend"` // "sqlite" (default) or "postgres"
	DBPath             string `yaml:"db_path"`
	DBConnectionString string `yaml:"db_connection_string" envconfig:"CACHE_DSN"`
	QuoteTTLSeconds    int    `yaml:"quote_ttl_seconds"`
}

type MDashboardConfig struct {
	RefreshIntervalSeconds int  `yaml:"refresh_interval_seconds"`
	Color                  bool `yaml:"color"`
}

type MServerConfig struct {
	Enabled bool   `yaml:"enabled" envconfig:"SERVER_ENABLED"`
	Host    string `yaml:"host" envconfig:"SERVER_HOST"`
	Port    int    `yaml:"port" envconfig:"SERVER_PORT"`
}
