package recommend

import (
	"strings"

	"github.com/jiamdoescs/AnnenBites/models"
)

// Score computes a desirability score for a menu item given a user's saved
// preferences. Higher is better. A nil prefs row means the user has not set
// preferences yet; in that case a simple macro heuristic is used instead.
//
// Note this is deliberately independent of IsAdmissible: filtering scans the
// name/tags for trigger keywords, while the dietary penalties here look at
// declared tags only. Both run on the same item.
func Score(item models.MenuItem, prefs *models.UserPreferences) float64 {
	calories := orZero(item.Calories)
	protein := orZero(item.Protein)

	// Cold start: no preferences saved yet.
	if prefs == nil {
		return protein*0.3 - calories*0.05
	}

	score := 0.0

	dietary := ParseListField(prefs.DietaryRestrictions)
	favCuisines := ParseListField(prefs.FavCuisines)
	dislikes := ParseListField(prefs.DislikedItems)
	goal := strings.ToLower(prefs.WellnessGoal)

	tags := ParseListField(item.Tags)
	name := strings.ToLower(item.Name)

	// 1) Hard dietary rules: big penalty when an item is not tagged for a
	// restriction the user declared.
	if contains(dietary, "vegetarian") && !contains(tags, "vegetarian") {
		score -= 100
	}
	if contains(dietary, "vegan") && !contains(tags, "vegan") {
		score -= 100
	}
	if contains(dietary, "gluten-free") && !contains(tags, "gluten-free") {
		score -= 50
	}

	// 2) Wellness goal: reweight protein and calories. An unrecognized goal
	// contributes nothing.
	switch goal {
	case "gain muscle":
		score += protein * 0.6
		score -= calories * 0.05
	case "lose weight":
		score -= calories * 0.1
		score += protein * 0.2
	case "maintain":
		score += protein * 0.3
	}

	// 3) Favorite cuisines / keywords in the name.
	for _, fav := range favCuisines {
		if strings.Contains(name, fav) {
			score += 5
		}
	}

	// 4) Disliked ingredients in the name.
	for _, bad := range dislikes {
		if strings.Contains(name, bad) {
			score -= 20
		}
	}

	return score
}
