package locale

import (
	"strings"

	"golang.org/x/text/language"

	"tidy-planner/internal/model"
)

var regions = map[string]model.UserLocale{
	"JP":    {Country: "JP", City: "Tokyo"},
	"CA-TO": {Country: "CA", City: "Toronto"},
	"CA":    {Country: "CA", City: "Toronto"},
}

var defaultLocale = model.UserLocale{Country: "US", City: "San Francisco"}

// Resolve maps a settings region code to a country/city pair.
func Resolve(region string) model.UserLocale {
	if loc, ok := regions[strings.ToUpper(strings.TrimSpace(region))]; ok {
		return loc
	}
	return defaultLocale
}

// DetectLanguage picks Japanese for Japanese locales or when the preferred
// UI language (a BCP 47 tag such as "ja-JP") is Japanese.
func DetectLanguage(loc model.UserLocale, preferred string) Language {
	if strings.EqualFold(loc.Country, "JP") {
		return Japanese
	}
	if preferred == "" {
		return English
	}
	tag, err := language.Parse(preferred)
	if err != nil {
		return English
	}
	if base, _ := tag.Base(); base == jaBase {
		return Japanese
	}
	return English
}

var jaBase, _ = language.Japanese.Base()

// NewGuide resolves region and language in one step.
func NewGuide(region, preferredLanguage string) Guide {
	loc := Resolve(region)
	return Guide{Locale: loc, Language: DetectLanguage(loc, preferredLanguage)}
}

// IsJapanese reports whether the guide writes Japanese text.
func (g Guide) IsJapanese() bool {
	return g.Language == Japanese
}

// chain lists lookup keys from most to least specific.
func (g Guide) chain() []regionKey {
	country := strings.ToUpper(g.Locale.Country)
	city := strings.ToLower(g.Locale.City)
	return []regionKey{{country, city}, {country, ""}, {"", ""}}
}

func lookup[T any](table tagTable[T], keys []regionKey, tag model.ExitTag) (T, bool) {
	for _, key := range keys {
		if row, ok := table[key]; ok {
			if v, ok := row[tag]; ok {
				return v, true
			}
		}
	}
	var zero T
	return zero, false
}
