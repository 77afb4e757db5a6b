package services

import (
	"errors"

	"github.com/jiamdoescs/AnnenBites/models"

	"gorm.io/gorm"
)

type PreferenceService struct{ db *gorm.DB }

func NewPreferenceService(db *gorm.DB) *PreferenceService { return &PreferenceService{db: db} }

type PreferencesInput struct {
	DietaryRestrictions string   `json:"dietary_restrictions"`
	WellnessGoal        string   `json:"wellness_goal"`
	FavCuisines         string   `json:"fav_cuisines"`
	DislikedItems       string   `json:"disliked_items"`
	HeightCM            *float64 `json:"height_cm"`
	WeightKG            *float64 `json:"weight_kg"`
}

// Get returns the user's preferences row, or nil when the user has never
// saved preferences. Callers rely on that nil to pick the cold-start scoring
// path, so "never set" must stay distinct from "saved with empty fields".
func (s *PreferenceService) Get(userID uint) (*models.UserPreferences, error) {
	var prefs models.UserPreferences
	err := s.db.Where("user_id = ?", userID).First(&prefs).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prefs, nil
}

// Save upserts the single preferences row for a user.
func (s *PreferenceService) Save(userID uint, input PreferencesInput) (*models.UserPreferences, error) {
	var prefs models.UserPreferences
	err := s.db.Where("user_id = ?", userID).First(&prefs).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	prefs.UserID = userID
	prefs.DietaryRestrictions = input.DietaryRestrictions
	prefs.WellnessGoal = input.WellnessGoal
	prefs.FavCuisines = input.FavCuisines
	prefs.DislikedItems = input.DislikedItems
	prefs.HeightCM = input.HeightCM
	prefs.WeightKG = input.WeightKG

	if err := s.db.Save(&prefs).Error; err != nil {
		return nil, err
	}
	return &prefs, nil
}
