package market

import (
	"os"
	"strings"
)

// -----------------------------------------------------------------------------
// EnvRegionSource
// -----------------------------------------------------------------------------

// EnvRegionSource derives a country code from POSIX locale variables. The
// lookup function is injected so tests never touch the real environment.
type EnvRegionSource struct {
	Getenv func(string) string
}

// -----------------------------------------------------------------------------

func NewEnvRegionSource(getenv func(string) string) *EnvRegionSource {
	if getenv == nil {
		getenv = os.Getenv
	}
	return &EnvRegionSource{Getenv: getenv}
}

// -----------------------------------------------------------------------------

func (s *EnvRegionSource) Name() string {
	return "env-locale"
}

// -----------------------------------------------------------------------------

// Region parses the trailing region subtag out of the first set locale
// variable, e.g. "en_GB.UTF-8" -> "GB". Returns "" when no usable signal.
func (s *EnvRegionSource) Region() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if code := ParseLocaleRegion(s.Getenv(key)); code != "" {
			return code
		}
	}
	return ""
}

// -----------------------------------------------------------------------------

// ParseLocaleRegion extracts the ISO-2 region subtag from a raw locale string.
// "C" and "POSIX" carry no region.
func ParseLocaleRegion(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" || locale == "C" || locale == "POSIX" {
		return ""
	}

	// Strip encoding and modifier suffixes: "en_GB.UTF-8@euro" -> "en_GB"
	if i := strings.IndexByte(locale, '.'); i >= 0 {
		locale = locale[:i]
	}
	if i := strings.IndexByte(locale, '@'); i >= 0 {
		locale = locale[:i]
	}

	parts := strings.FieldsFunc(locale, func(r rune) bool {
		return r == '_' || r == '-'
	})
	if len(parts) < 2 {
		return ""
	}

	region := parts[len(parts)-1]
	if len(region) != 2 || !isAlpha(region) {
		return ""
	}
	return strings.ToUpper(region)
}

// -----------------------------------------------------------------------------

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
