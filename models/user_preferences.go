package models

import "gorm.io/gorm"

// At most one row per user (upsert semantics in PreferenceService).
// All preference text fields are free text; the recommendation engine
// normalizes them at read time.
type UserPreferences struct {
    gorm.Model
    UserID uint `gorm:"uniqueIndex;not null"`

    DietaryRestrictions string // e.g. "Vegetarian, Gluten-Free"
    WellnessGoal        string // "gain muscle" | "lose weight" | "maintain"
    FavCuisines         string
    DislikedItems       string

    HeightCM *float64
    WeightKG *float64
}
