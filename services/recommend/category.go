package recommend

import "strings"

// CategoryOther is returned when no keyword matches an item name.
const CategoryOther = "other"

type categoryKeywords struct {
	category string
	keywords []string
}

// Ordered: the first category whose keyword appears in the name wins, so the
// table must stay a slice, not a map. Used to avoid recommending three
// waffles at once.
var categoryTable = []categoryKeywords{
	{"waffle", []string{"waffle"}},
	{"pancake", []string{"pancake"}},
	{"bagel", []string{"bagel"}},
	{"bread", []string{"toast", "bread"}},
	{"eggs", []string{"egg", "omelet", "omelette"}},
	{"yogurt", []string{"yogurt"}},
	{"oatmeal", []string{"oatmeal", "oats"}},
	{"salad", []string{"salad"}},
	{"soup", []string{"soup"}},
	{"sandwich", []string{"sandwich", "wrap"}},
	{"pizza", []string{"pizza"}},
	{"burger", []string{"burger"}},
}

// InferCategory returns a coarse food category based on keywords in the item
// name. Total and deterministic: an empty or unmatched name yields "other".
func InferCategory(name string) string {
	lower := strings.ToLower(name)
	for _, entry := range categoryTable {
		for _, k := range entry.keywords {
			if strings.Contains(lower, k) {
				return entry.category
			}
		}
	}
	return CategoryOther
}
