package config

import (
	"os"
	"path/filepath"
	"testing"
)

// -----------------------------------------------------------------------------

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// -----------------------------------------------------------------------------

func TestNewConfigAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "name: test-watch\n")

	cfg, err := NewConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Name != "test-watch" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.LogLevel != "INFO" {
		t.Errorf("LogLevel = %q, want INFO default", cfg.LogLevel)
	}
	if cfg.Market.DefaultCountry != "US" {
		t.Errorf("DefaultCountry = %q", cfg.Market.DefaultCountry)
	}
	if len(cfg.Market.Detection) != 2 {
		t.Errorf("Detection = %v, want [env geoip]", cfg.Market.Detection)
	}
	if cfg.Cache.Backend != "sqlite" || cfg.Cache.DBPath == "" {
		t.Errorf("cache defaults wrong: %+v", cfg.Cache)
	}
	if cfg.Dashboard.RefreshIntervalSeconds != 3 {
		t.Errorf("RefreshIntervalSeconds = %d", cfg.Dashboard.RefreshIntervalSeconds)
	}
}

// -----------------------------------------------------------------------------

func TestNewConfigParsesValues(t *testing.T) {
	path := writeConfig(t, `
name: custom
log_level: DEBUG
market:
  default_country: GB
  country: JP
  extra_symbols: [IBM, ORCL]
advisor:
  buy_threshold_pct: 3.5
  sell_threshold_pct: 1.5
server:
  enabled: true
  port: 9000
`)

	cfg, err := NewConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Market.DefaultCountry != "GB" || cfg.Market.Country != "JP" {
		t.Errorf("market = %+v", cfg.Market)
	}
	if len(cfg.Market.ExtraSymbols) != 2 {
		t.Errorf("ExtraSymbols = %v", cfg.Market.ExtraSymbols)
	}
	if cfg.Advisor.BuyThresholdPct != 3.5 || cfg.Advisor.SellThresholdPct != 1.5 {
		t.Errorf("advisor = %+v", cfg.Advisor)
	}
	if !cfg.Server.Enabled || cfg.Server.Port != 9000 {
		t.Errorf("server = %+v", cfg.Server)
	}
}

// -----------------------------------------------------------------------------

func TestNewConfigMissingFile(t *testing.T) {
	if _, err := NewConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// -----------------------------------------------------------------------------

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"negative buy threshold", "advisor:\n  buy_threshold_pct: -1\n"},
		{"negative sell threshold", "advisor:\n  sell_threshold_pct: -0.5\n"},
		{"unknown cache backend", "cache:\n  backend: redis\n"},
		{"postgres without dsn", "cache:\n  backend: postgres\n"},
		{"privileged server port", "server:\n  enabled: true\n  port: 80\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.yaml)
			if _, err := NewConfig(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

// -----------------------------------------------------------------------------

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() must validate: %v", err)
	}
}

// -----------------------------------------------------------------------------

func TestSaveRoundTrip(t *testing.T) {
	path := writeConfig(t, "name: roundtrip\nadvisor:\n  buy_threshold_pct: 4\n")
	cfg, err := NewConfig(path)
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "saved.yaml")
	if err := cfg.Save(out); err != nil {
		t.Fatal(err)
	}

	loaded, err := NewConfig(out)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Name != "roundtrip" || loaded.Advisor.BuyThresholdPct != 4 {
		t.Errorf("round trip lost values: %+v", loaded.MConfig)
	}
}
