package services

// Locale is one of the two supported content languages
type Locale string

const (
	LocaleCS Locale = "cs"
	LocaleEN Locale = "en"

	// DefaultLocale is used when no request hint matches a supported code
	DefaultLocale = LocaleCS
)

// SupportedLocales lists the locales with parallel content columns
var SupportedLocales = []Locale{LocaleCS, LocaleEN}

// ResolveLocale returns the first candidate that exactly matches a supported
// locale code, or the default. Matching is case-sensitive; empty and unknown
// hints are skipped. Never fails.
func ResolveLocale(candidates ...string) Locale {
	for _, candidate := range candidates {
		for _, loc := range SupportedLocales {
			if candidate == string(loc) {
				return loc
			}
		}
	}
	return DefaultLocale
}

// IsSupportedLocale reports whether code exactly matches a supported locale
func IsSupportedLocale(code string) bool {
	for _, loc := range SupportedLocales {
		if code == string(loc) {
			return true
		}
	}
	return false
}

// Other returns the opposite supported locale, used for per-field fallback
func (l Locale) Other() Locale {
	if l == LocaleCS {
		return LocaleEN
	}
	return LocaleCS
}
