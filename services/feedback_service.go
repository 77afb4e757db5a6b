package services

import (
	"errors"
	"strings"

	"github.com/jiamdoescs/AnnenBites/models"

	"gorm.io/gorm"
)

const maxFeedbackLength = 800

var (
	ErrFeedbackText     = errors.New("feedback text must be 1-800 characters")
	ErrFeedbackNotFound = errors.New("feedback post not found")
)

type FeedbackService struct{ db *gorm.DB }

func NewFeedbackService(db *gorm.DB) *FeedbackService { return &FeedbackService{db: db} }

func (s *FeedbackService) Post(userID uint, text string) (*models.FeedbackPost, error) {
	text = strings.TrimSpace(text)
	if text == "" || len(text) > maxFeedbackLength {
		return nil, ErrFeedbackText
	}

	post := models.FeedbackPost{UserID: userID, Text: text}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns all feedback posts newest-first plus the set of post IDs the
// viewing user has liked.
func (s *FeedbackService) List(viewerID uint) ([]models.FeedbackPost, map[uint]bool, error) {
	var posts []models.FeedbackPost
	if err := s.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, nil, err
	}

	var likes []models.FeedbackLike
	if err := s.db.Where("user_id = ?", viewerID).Find(&likes).Error; err != nil {
		return nil, nil, err
	}
	liked := make(map[uint]bool, len(likes))
	for _, l := range likes {
		liked[l.FeedbackPostID] = true
	}

	return posts, liked, nil
}

// ForUser returns the user's own posts, most-liked first.
func (s *FeedbackService) ForUser(userID uint) ([]models.FeedbackPost, error) {
	var posts []models.FeedbackPost
	err := s.db.
		Where("user_id = ?", userID).
		Order("likes DESC, created_at DESC").
		Find(&posts).Error
	return posts, err
}

// ToggleLike flips the viewer's like on a post and keeps the denormalized
// counter in step. Returns whether the post is liked after the toggle.
func (s *FeedbackService) ToggleLike(userID, feedbackID uint) (bool, error) {
	var post models.FeedbackPost
	if err := s.db.First(&post, feedbackID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrFeedbackNotFound
		}
		return false, err
	}

	liked := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.FeedbackLike
		err := tx.Where("user_id = ? AND feedback_post_id = ?", userID, feedbackID).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Unscoped().Delete(&existing).Error; err != nil {
				return err
			}
			return tx.Model(&models.FeedbackPost{}).
				Where("id = ?", feedbackID).
				UpdateColumn("likes", gorm.Expr("likes - 1")).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			liked = true
			if err := tx.Create(&models.FeedbackLike{UserID: userID, FeedbackPostID: feedbackID}).Error; err != nil {
				return err
			}
			return tx.Model(&models.FeedbackPost{}).
				Where("id = ?", feedbackID).
				UpdateColumn("likes", gorm.Expr("likes + 1")).Error
		default:
			return err
		}
	})
	return liked, err
}
