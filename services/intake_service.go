package services

import (
	"errors"
	"strings"

	"github.com/jiamdoescs/AnnenBites/models"
	"github.com/jiamdoescs/AnnenBites/services/recommend"

	"gorm.io/gorm"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

type IntakeService struct{ db *gorm.DB }

func NewIntakeService(db *gorm.DB) *IntakeService { return &IntakeService{db: db} }

// Log records that the user ate a menu item on a date for a meal.
func (s *IntakeService) Log(userID uint, date, meal string, menuItemID uint) (*models.LoggedMeal, error) {
	var item models.MenuItem
	if err := s.db.First(&item, menuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	logged := models.LoggedMeal{
		UserID:     userID,
		Date:       date,
		Meal:       strings.ToLower(meal),
		MenuItemID: menuItemID,
	}
	if err := s.db.Create(&logged).Error; err != nil {
		return nil, err
	}
	return &logged, nil
}

// Remove deletes a single logged meal, scoped to the owning user.
func (s *IntakeService) Remove(userID, loggedMealID uint) error {
	return s.db.
		Where("id = ? AND user_id = ?", loggedMealID, userID).
		Delete(&models.LoggedMeal{}).Error
}

// ResetDay clears everything the user logged for one date, across all meals.
func (s *IntakeService) ResetDay(userID uint, date string) error {
	return s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Delete(&models.LoggedMeal{}).Error
}

// LoggedItems returns the menu items the user logged for a date, all meals.
func (s *IntakeService) LoggedItems(userID uint, date string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.db.Model(&models.MenuItem{}).
		Joins("JOIN logged_meals lm ON lm.menu_item_id = menu_items.id").
		Where("lm.user_id = ? AND lm.date = ? AND lm.deleted_at IS NULL", userID, date).
		Find(&items).Error
	return items, err
}

// SelectedIDs maps menu_item_id -> logged_meal_id for one date+meal, used by
// the dashboard to mark already-logged items and wire up their remove action.
func (s *IntakeService) SelectedIDs(userID uint, date, meal string) (map[uint]uint, error) {
	var rows []models.LoggedMeal
	err := s.db.
		Where("user_id = ? AND date = ? AND LOWER(meal) = ?", userID, date, strings.ToLower(meal)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	selected := make(map[uint]uint, len(rows))
	for _, r := range rows {
		selected[r.MenuItemID] = r.ID
	}
	return selected, nil
}

// DailyTotals sums macros across everything logged for the date.
func (s *IntakeService) DailyTotals(userID uint, date string) (recommend.Totals, error) {
	items, err := s.LoggedItems(userID, date)
	if err != nil {
		return recommend.Totals{}, err
	}
	return recommend.Aggregate(items), nil
}
