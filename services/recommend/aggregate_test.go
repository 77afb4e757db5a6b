package recommend

import (
	"testing"

	"github.com/jiamdoescs/AnnenBites/models"

	"github.com/stretchr/testify/assert"
)

func full(name string, calories, protein, carbs, fat float64) models.MenuItem {
	return models.MenuItem{
		Name:     name,
		Calories: f64(calories),
		Protein:  f64(protein),
		Carbs:    f64(carbs),
		Fat:      f64(fat),
	}
}

func TestAggregateEmpty(t *testing.T) {
	assert.Equal(t, Totals{}, Aggregate(nil))
	assert.Equal(t, Totals{}, Aggregate([]models.MenuItem{}))
}

func TestAggregateSums(t *testing.T) {
	got := Aggregate([]models.MenuItem{
		full("Oatmeal", 150, 5, 27, 3),
		full("Greek Yogurt", 120, 15, 9, 4),
	})
	assert.InDelta(t, 270, got.Calories, 1e-9)
	assert.InDelta(t, 20, got.Protein, 1e-9)
	assert.InDelta(t, 36, got.Carbs, 1e-9)
	assert.InDelta(t, 7, got.Fat, 1e-9)
}

func TestAggregateAbsentFieldsAreZero(t *testing.T) {
	got := Aggregate([]models.MenuItem{
		{Name: "Mystery Dish"}, // no macros published
		full("Toast", 100, 3, 18, 1),
	})
	assert.InDelta(t, 100, got.Calories, 1e-9)
	assert.InDelta(t, 3, got.Protein, 1e-9)
}

func TestAggregateAdditivity(t *testing.T) {
	a := []models.MenuItem{full("Soup", 150, 5, 20, 4), full("Salad", 200, 8, 10, 12)}
	b := []models.MenuItem{full("Wrap", 350, 12, 40, 14)}

	ta, tb := Aggregate(a), Aggregate(b)
	combined := Aggregate(append(append([]models.MenuItem{}, a...), b...))

	assert.InDelta(t, ta.Calories+tb.Calories, combined.Calories, 1e-9)
	assert.InDelta(t, ta.Protein+tb.Protein, combined.Protein, 1e-9)
	assert.InDelta(t, ta.Carbs+tb.Carbs, combined.Carbs, 1e-9)
	assert.InDelta(t, ta.Fat+tb.Fat, combined.Fat, 1e-9)
}
