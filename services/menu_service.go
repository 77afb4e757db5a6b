package services

import (
	"strings"

	"github.com/jiamdoescs/AnnenBites/models"

	"gorm.io/gorm"
)

type MenuService struct{ db *gorm.DB }

func NewMenuService(db *gorm.DB) *MenuService { return &MenuService{db: db} }

// ItemsForMeal lists the menu for one date+meal, ordered by name. Meal
// matching is case-insensitive.
func (s *MenuService) ItemsForMeal(date, meal string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.db.
		Where("date = ? AND LOWER(meal) = ?", date, strings.ToLower(meal)).
		Order("name").
		Find(&items).Error
	return items, err
}

// LatestMenuDate returns the most recent date with menu items, or "" when
// nothing has been ingested yet.
func (s *MenuService) LatestMenuDate() (string, error) {
	var latest string
	err := s.db.Model(&models.MenuItem{}).
		Select("COALESCE(MAX(date), '')").
		Scan(&latest).Error
	return latest, err
}

// ReplaceDay swaps out all menu items for one date. Logged meals and ratings
// that reference the old items are removed first so the day is rebuilt from a
// clean slate, mirroring a fresh ingestion run.
func (s *MenuService) ReplaceDay(date string, items []models.MenuItem) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM logged_meals WHERE menu_item_id IN (SELECT id FROM menu_items WHERE date = ?)",
			date,
		).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			"DELETE FROM item_ratings WHERE menu_item_id IN (SELECT id FROM menu_items WHERE date = ?)",
			date,
		).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("date = ?", date).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].Date = date
			items[i].Meal = strings.ToLower(items[i].Meal)
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
