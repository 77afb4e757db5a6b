package recommend

import "github.com/jiamdoescs/AnnenBites/models"

func f64(v float64) *float64 { return &v }

func item(name, tags string, calories, protein *float64) models.MenuItem {
	return models.MenuItem{
		Date:     "2025-11-20",
		Meal:     "breakfast",
		Location: "Annenberg",
		Name:     name,
		Tags:     tags,
		Calories: calories,
		Protein:  protein,
	}
}
