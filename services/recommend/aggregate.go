package recommend

import "github.com/jiamdoescs/AnnenBites/models"

// Totals holds a day's summed macros. Absent macros on an item count as zero,
// so totals are never negative and default to zero for an empty day.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Aggregate sums calories/protein/carbs/fat across the supplied items.
func Aggregate(items []models.MenuItem) Totals {
	var t Totals
	for _, item := range items {
		t.Calories += orZero(item.Calories)
		t.Protein += orZero(item.Protein)
		t.Carbs += orZero(item.Carbs)
		t.Fat += orZero(item.Fat)
	}
	return t
}
