package recommend

import (
	"testing"

	"github.com/jiamdoescs/AnnenBites/models"

	"github.com/stretchr/testify/assert"
)

func TestScoreColdStart(t *testing.T) {
	// No preferences saved: protein*0.3 - calories*0.05.
	it := item("Oatmeal", "", f64(400), f64(20))
	assert.InDelta(t, -14.0, Score(it, nil), 1e-9)

	// Absent macros count as zero.
	assert.InDelta(t, 0.0, Score(item("Water", "", nil, nil), nil), 1e-9)
}

func TestScoreWellnessGoals(t *testing.T) {
	it := item("Grilled Chicken", "", f64(300), f64(30))

	gain := &models.UserPreferences{WellnessGoal: "gain muscle"}
	assert.InDelta(t, 30*0.6-300*0.05, Score(it, gain), 1e-9) // = 3

	lose := &models.UserPreferences{WellnessGoal: "Lose Weight"} // case-insensitive
	assert.InDelta(t, -300*0.1+30*0.2, Score(it, lose), 1e-9)

	maintain := &models.UserPreferences{WellnessGoal: "maintain"}
	assert.InDelta(t, 30*0.3, Score(it, maintain), 1e-9)

	unknown := &models.UserPreferences{WellnessGoal: "get swole"}
	assert.InDelta(t, 0.0, Score(it, unknown), 1e-9)
}

func TestScoreDietaryTagPenalties(t *testing.T) {
	prefs := &models.UserPreferences{DietaryRestrictions: "vegetarian, gluten-free"}

	// Untagged item: both penalties apply.
	assert.InDelta(t, -150.0, Score(item("Mystery Dish", "", nil, nil), prefs), 1e-9)

	// Tagged vegetarian only: gluten-free penalty remains.
	assert.InDelta(t, -50.0, Score(item("Mystery Dish", "vegetarian", nil, nil), prefs), 1e-9)

	// Fully tagged: no penalty.
	assert.InDelta(t, 0.0, Score(item("Mystery Dish", "vegetarian, gluten-free", nil, nil), prefs), 1e-9)

	vegan := &models.UserPreferences{DietaryRestrictions: "vegan"}
	assert.InDelta(t, -100.0, Score(item("Mystery Dish", "vegetarian", nil, nil), vegan), 1e-9)
}

func TestScoreCuisineAndDislikes(t *testing.T) {
	prefs := &models.UserPreferences{
		FavCuisines:   "italian, taco",
		DislikedItems: "mushroom",
	}

	assert.InDelta(t, 5.0, Score(item("Italian Wedding Soup", "", nil, nil), prefs), 1e-9)
	assert.InDelta(t, -20.0, Score(item("Mushroom Risotto", "", nil, nil), prefs), 1e-9)
	// Bonuses and penalties stack per matching token.
	assert.InDelta(t, -15.0, Score(item("Italian Mushroom Pasta", "", nil, nil), prefs), 1e-9)
}

func TestScoreMalformedPreferenceText(t *testing.T) {
	prefs := &models.UserPreferences{
		DietaryRestrictions: " ,;, ",
		FavCuisines:         ";;;",
		DislikedItems:       " , ",
	}
	// Everything normalizes to empty token lists, contributing zero.
	assert.InDelta(t, 0.0, Score(item("Anything", "", nil, nil), prefs), 1e-9)
}
