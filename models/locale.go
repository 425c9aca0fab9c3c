package models

// Locale is the active language preference.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleArabic  Locale = "ar"
)

// Valid reports whether the value is one of the two supported locales.
func (l Locale) Valid() bool {
	return l == LocaleEnglish || l == LocaleArabic
}

// IsRTL reports whether the locale requires right-to-left layout.
func (l Locale) IsRTL() bool {
	return l == LocaleArabic
}
