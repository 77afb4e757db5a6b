package services

import (
	"errors"
	"strings"

	"github.com/jiamdoescs/AnnenBites/models"

	"gorm.io/gorm"
)

var ErrClubPostFields = errors.New("club name and food name are required")

type CommunityService struct{ db *gorm.DB }

func NewCommunityService(db *gorm.DB) *CommunityService { return &CommunityService{db: db} }

type ClubPostInput struct {
	ClubName    string `json:"clubName"`
	FoodName    string `json:"foodName"`
	Description string `json:"description"`
	EventDate   string `json:"event_date"`
	Location    string `json:"location"`
}

func (s *CommunityService) CreatePost(input ClubPostInput) (*models.ClubPost, error) {
	if strings.TrimSpace(input.ClubName) == "" || strings.TrimSpace(input.FoodName) == "" {
		return nil, ErrClubPostFields
	}

	post := models.ClubPost{
		ClubName:    input.ClubName,
		FoodName:    input.FoodName,
		Description: input.Description,
		EventDate:   input.EventDate,
		Location:    input.Location,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPosts orders by upcoming event first (posts without a date sink to the
// bottom), then by recency.
func (s *CommunityService) ListPosts() ([]models.ClubPost, error) {
	var posts []models.ClubPost
	err := s.db.
		Order("event_date = ''").
		Order("event_date").
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}
