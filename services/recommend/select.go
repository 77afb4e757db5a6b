package recommend

import (
	"sort"

	"github.com/jiamdoescs/AnnenBites/models"
)

// DefaultMaxResults is how many recommendations the dashboard shows.
const DefaultMaxResults = 3

// Filter returns the items admissible for the given dietary flags, in input
// order. This is the list shown to the user; inadmissible items are dropped
// from display and from the recommendation pool alike.
func Filter(items []models.MenuItem, dietaryFlags map[string]bool) []models.MenuItem {
	admissible := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if IsAdmissible(item, dietaryFlags) {
			admissible = append(admissible, item)
		}
	}
	return admissible
}

// Recommend produces up to maxResults admissible items, ordered by score
// descending, with at most one item per inferred category. maxResults <= 0
// falls back to DefaultMaxResults.
//
// The sort is stable so that equal scores keep the caller's item order and
// repeated runs over identical input return identical output.
func Recommend(items []models.MenuItem, prefs *models.UserPreferences, dietaryFlags map[string]bool, maxResults int) []models.MenuItem {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	candidates := Filter(items, dietaryFlags)

	scores := make([]float64, len(candidates))
	for i, item := range candidates {
		scores[i] = Score(item, prefs)
	}

	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	// Walk best-first, keeping one representative per category.
	var picks []models.MenuItem
	usedCategories := map[string]bool{}
	for _, idx := range order {
		item := candidates[idx]
		cat := InferCategory(item.Name)
		if usedCategories[cat] {
			continue
		}
		picks = append(picks, item)
		usedCategories[cat] = true
		if len(picks) == maxResults {
			break
		}
	}
	return picks
}
