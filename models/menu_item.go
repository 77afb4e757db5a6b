package models

import "gorm.io/gorm"

// One dish served at a dining hall for a specific date/meal/location.
// Macro fields are pointers so that "not published by HUDS" stays distinct
// from an actual zero.
type MenuItem struct {
    gorm.Model
    Date     string `gorm:"index;not null"` // YYYY-MM-DD
    Meal     string `gorm:"not null"`       // stored lower-case: breakfast|lunch|dinner
    Location string `gorm:"not null"`
    Name     string `gorm:"not null"`
    Category string // optional, free-form from the ingestion source

    Calories *float64
    Protein  *float64
    Carbs    *float64
    Fat      *float64

    Tags      string // comma-separated labels, e.g. "vegetarian, gluten-free"
    ImagePath string
}
