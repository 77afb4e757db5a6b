package recommend

import (
	"testing"

	"github.com/jiamdoescs/AnnenBites/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendSkipsDuplicateCategories(t *testing.T) {
	// Cold-start scoring ranks by protein*0.3 - calories*0.05, so protein
	// alone orders these: Waffles > Belgian Waffles > Salad.
	items := []models.MenuItem{
		item("Waffles", "", nil, f64(40)),
		item("Belgian Waffles", "", nil, f64(30)),
		item("Garden Salad", "", nil, f64(10)),
	}

	got := Recommend(items, nil, nil, 3)

	require.Len(t, got, 2)
	assert.Equal(t, "Waffles", got[0].Name)
	assert.Equal(t, "Garden Salad", got[1].Name)
}

func TestRecommendEmptyInput(t *testing.T) {
	assert.Empty(t, Recommend(nil, nil, nil, 3))
	assert.Empty(t, Recommend([]models.MenuItem{}, nil, nil, 3))
}

func TestRecommendSingleCategoryYieldsOne(t *testing.T) {
	items := []models.MenuItem{
		item("Waffles", "", nil, f64(10)),
		item("Belgian Waffles", "", nil, f64(20)),
		item("Chocolate Waffles", "", nil, f64(30)),
	}
	got := Recommend(items, nil, nil, 3)
	require.Len(t, got, 1)
	assert.Equal(t, "Chocolate Waffles", got[0].Name)
}

func TestRecommendIdempotent(t *testing.T) {
	items := []models.MenuItem{
		item("Tomato Soup", "", f64(150), f64(5)),
		item("Caesar Salad", "", f64(250), f64(8)),
		item("Veggie Wrap", "", f64(350), f64(12)),
		item("Greek Yogurt", "", f64(120), f64(15)),
	}
	prefs := &models.UserPreferences{WellnessGoal: "lose weight", FavCuisines: "greek"}

	first := Recommend(items, prefs, nil, 3)
	second := Recommend(items, prefs, nil, 3)
	assert.Equal(t, first, second)
}

func TestRecommendStableOnTies(t *testing.T) {
	// Identical macros give identical scores; input order must be preserved.
	items := []models.MenuItem{
		item("Tomato Soup", "", f64(100), f64(5)),
		item("Caesar Salad", "", f64(100), f64(5)),
		item("Veggie Wrap", "", f64(100), f64(5)),
	}
	got := Recommend(items, nil, nil, 3)
	require.Len(t, got, 3)
	assert.Equal(t, "Tomato Soup", got[0].Name)
	assert.Equal(t, "Caesar Salad", got[1].Name)
	assert.Equal(t, "Veggie Wrap", got[2].Name)
}

func TestRecommendRespectsMaxResults(t *testing.T) {
	items := []models.MenuItem{
		item("Tomato Soup", "", nil, f64(5)),
		item("Caesar Salad", "", nil, f64(8)),
		item("Veggie Wrap", "", nil, f64(12)),
		item("Greek Yogurt", "", nil, f64(15)),
	}

	assert.Len(t, Recommend(items, nil, nil, 2), 2)
	// maxResults <= 0 falls back to the default of 3.
	assert.Len(t, Recommend(items, nil, nil, 0), 3)
}

func TestRecommendFiltersBeforeScoring(t *testing.T) {
	flags := map[string]bool{"vegetarian": true}
	items := []models.MenuItem{
		item("Steak Frites", "", nil, f64(50)), // best score, but inadmissible
		item("Garden Salad", "", nil, f64(10)),
	}

	got := Recommend(items, nil, flags, 3)
	require.Len(t, got, 1)
	assert.Equal(t, "Garden Salad", got[0].Name)
}

func TestRecommendCategoryDiversity(t *testing.T) {
	items := []models.MenuItem{
		item("Waffles", "", nil, f64(40)),
		item("Pancakes", "", nil, f64(35)),
		item("Belgian Waffles", "", nil, f64(30)),
		item("French Toast", "", nil, f64(25)),
		item("Blueberry Pancakes", "", nil, f64(20)),
	}

	got := Recommend(items, nil, nil, 3)
	seen := map[string]bool{}
	for _, it := range got {
		cat := InferCategory(it.Name)
		assert.False(t, seen[cat], "duplicate category %q", cat)
		seen[cat] = true
	}
}
