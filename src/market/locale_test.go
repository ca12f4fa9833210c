package market

import "testing"

// -----------------------------------------------------------------------------

func TestParseLocaleRegion(t *testing.T) {
	cases := []struct {
		locale string
		want   string
	}{
		{"en_US.UTF-8", "US"},
		{"en_GB", "GB"},
		{"de_DE@euro", "DE"},
		{"fr_FR.ISO8859-1@euro", "FR"},
		{"ja-JP", "JP"},
		{"en_us", "US"},
		{"C", ""},
		{"POSIX", ""},
		{"", ""},
		{"en", ""},
		{"zh_Hans", ""}, // script subtag, not a region
		{"  en_CA.UTF-8  ", "CA"},
	}

	for _, tc := range cases {
		if got := ParseLocaleRegion(tc.locale); got != tc.want {
			t.Errorf("ParseLocaleRegion(%q) = %q, want %q", tc.locale, got, tc.want)
		}
	}
}

// -----------------------------------------------------------------------------

func TestEnvRegionSourcePrecedence(t *testing.T) {
	env := map[string]string{
		"LC_ALL":      "fr_FR.UTF-8",
		"LC_MESSAGES": "de_DE.UTF-8",
		"LANG":        "en_US.UTF-8",
	}
	source := NewEnvRegionSource(func(key string) string { return env[key] })

	if got := source.Region(); got != "FR" {
		t.Errorf("LC_ALL should win, got %q", got)
	}

	delete(env, "LC_ALL")
	if got := source.Region(); got != "DE" {
		t.Errorf("LC_MESSAGES should win next, got %q", got)
	}

	delete(env, "LC_MESSAGES")
	if got := source.Region(); got != "US" {
		t.Errorf("LANG should win last, got %q", got)
	}

	delete(env, "LANG")
	if got := source.Region(); got != "" {
		t.Errorf("empty environment should give no signal, got %q", got)
	}
}

// -----------------------------------------------------------------------------

func TestEnvRegionSourceSkipsUnusableValues(t *testing.T) {
	env := map[string]string{
		"LC_ALL": "C",
		"LANG":   "en_GB.UTF-8",
	}
	source := NewEnvRegionSource(func(key string) string { return env[key] })

	if got := source.Region(); got != "GB" {
		t.Errorf("C locale should fall through to LANG, got %q", got)
	}
}
