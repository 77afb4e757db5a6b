package recommend

import (
	"strings"

	"github.com/jiamdoescs/AnnenBites/models"
)

// Keyword tables for dietary filtering. Matching is substring-based over the
// item's name and tags.
var meatWords = []string{
	"chicken", "beef", "pork", "bacon", "ham", "turkey",
	"sausage", "pepperoni", "meatball", "meatballs", "steak",
}

var seafoodWords = []string{
	"fish", "salmon", "tuna", "shrimp", "crab", "lobster", "cod", "tilapia",
}

var dairyEggWords = []string{
	"cheese", "egg", "eggs", "milk", "yogurt", "butter", "cream",
}

// IsAdmissible reports whether a menu item may be shown to a user with the
// given dietary flags. Only the vegetarian and vegan flags hard-exclude
// items; every other flag (gluten-free etc.) is handled by scoring alone.
// An empty flag set admits everything.
func IsAdmissible(item models.MenuItem, dietaryFlags map[string]bool) bool {
	text := strings.ToLower(item.Name) + " " + strings.ToLower(item.Tags)

	if dietaryFlags["vegetarian"] {
		if containsAny(text, meatWords) || containsAny(text, seafoodWords) {
			return false
		}
	}

	// Vegan: vegetarian rules plus no obvious dairy/egg words.
	if dietaryFlags["vegan"] {
		if containsAny(text, meatWords) || containsAny(text, seafoodWords) {
			return false
		}
		if containsAny(text, dairyEggWords) {
			return false
		}
	}

	return true
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
