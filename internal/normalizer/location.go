package normalizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/chandhuDev/JobLens/internal/models"
)

const (
	UnknownCity   = "Unknown"
	RemoteCity    = "Remote"
	GlobalCountry = "Global"
)

// ParseLocation splits a freeform location such as "Bangalore, Karnataka,
// India" into a canonical city and country.
func ParseLocation(v models.Value) (city, country string, ok bool) {
	if v.IsAbsent() || v.Kind == models.KindList {
		return UnknownCity, GlobalCountry, false
	}
	loc := v.Text()

	parts := strings.Split(loc, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	city = TitleCase(parts[0])
	if alias, found := cityAliases[city]; found {
		city = alias
	}
	if city == "" {
		city = UnknownCity
	}

	country = GlobalCountry
	if len(parts) > 1 {
		country = TitleCase(parts[len(parts)-1])
	}

	// Substring overrides; "indiana" must not count as India.
	lowered := lower(loc)
	switch {
	case strings.Contains(lowered, "india") && !strings.Contains(lowered, "indiana"):
		country = "India"
	case containsAny(lowered, indiaCityTokens):
		country = "India"
	case strings.Contains(lowered, "united states") || strings.Contains(lowered, " usa"):
		country = "USA"
	}
	if country == "" {
		country = GlobalCountry
	}

	if city == country {
		city = RemoteCity
	}
	return city, country, true
}

// TitleCase upper-cases the first letter of every word and lower-cases the
// rest. A Caser is stateful, so each call gets its own.
func TitleCase(s string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
