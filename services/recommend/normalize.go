package recommend

import (
	"strings"

	"github.com/jiamdoescs/AnnenBites/models"
)

// ParseListField converts a comma/semicolon-separated string into a list of
// lower-cased, trimmed tokens. Empty tokens are dropped.
//
//	"Italian, Indian " -> ["italian", "indian"]
//	""                 -> nil
func ParseListField(field string) []string {
	if field == "" {
		return nil
	}
	var tokens []string
	for _, part := range strings.Split(strings.ReplaceAll(strings.ToLower(field), ";", ","), ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

// DietaryFlags parses a preferences row's dietary_restrictions text into a
// normalized flag set. A nil prefs row yields an empty set, which admits
// every item.
func DietaryFlags(prefs *models.UserPreferences) map[string]bool {
	flags := map[string]bool{}
	if prefs == nil {
		return flags
	}
	for _, tok := range ParseListField(prefs.DietaryRestrictions) {
		flags[tok] = true
	}
	return flags
}

func contains(tokens []string, want string) bool {
	for _, t := range tokens {
		if t == want {
			return true
		}
	}
	return false
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
