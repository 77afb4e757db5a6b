package models

import "gorm.io/gorm"

// Free-form feedback wall entry. Likes is a denormalized counter kept in
// step with FeedbackLike rows by FeedbackService.ToggleLike.
type FeedbackPost struct {
    gorm.Model
    UserID uint   `gorm:"index;not null"`
    Text   string `gorm:"not null"`
    Likes  int    `gorm:"default:0"`
}

// Which user liked which feedback post.
type FeedbackLike struct {
    gorm.Model
    UserID         uint `gorm:"index;not null"`
    FeedbackPostID uint `gorm:"index;not null"`
}
