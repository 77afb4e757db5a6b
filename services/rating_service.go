package services

import (
	"errors"

	"github.com/jiamdoescs/AnnenBites/models"

	"gorm.io/gorm"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type RatingService struct{ db *gorm.DB }

func NewRatingService(db *gorm.DB) *RatingService { return &RatingService{db: db} }

// Rate upserts the user's 1-5 rating for a menu item.
func (s *RatingService) Rate(userID, menuItemID uint, rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	var item models.MenuItem
	if err := s.db.First(&item, menuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuItemNotFound
		}
		return err
	}

	var existing models.ItemRating
	err := s.db.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return s.db.Create(&models.ItemRating{
			UserID:     userID,
			MenuItemID: menuItemID,
			Rating:     rating,
		}).Error
	}

	existing.Rating = rating
	return s.db.Save(&existing).Error
}

// RatingsByUser maps menu_item_id -> rating across everything the user rated.
func (s *RatingService) RatingsByUser(userID uint) (map[uint]int, error) {
	var rows []models.ItemRating
	if err := s.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}

	ratings := make(map[uint]int, len(rows))
	for _, r := range rows {
		ratings[r.MenuItemID] = r.Rating
	}
	return ratings, nil
}

type TopRatedItem struct {
	Name       string  `json:"name"`
	AvgRating  float64 `json:"avg_rating"`
	NumRatings int64   `json:"num_ratings"`
}

// TopRated returns the best-rated menu items across all users.
func (s *RatingService) TopRated(limit int) ([]TopRatedItem, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []TopRatedItem
	err := s.db.
		Table("item_ratings").
		Select("menu_items.name, ROUND(AVG(item_ratings.rating)::numeric, 1) AS avg_rating, COUNT(*) AS num_ratings").
		Joins("JOIN menu_items ON menu_items.id = item_ratings.menu_item_id").
		Where("item_ratings.deleted_at IS NULL").
		Group("item_ratings.menu_item_id, menu_items.name").
		Order("avg_rating DESC, num_ratings DESC, menu_items.name").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
