package models

import "gorm.io/gorm"

// Community post from a student club advertising food at an event.
type ClubPost struct {
    gorm.Model
    ClubName    string `gorm:"not null"`
    FoodName    string `gorm:"not null"`
    Description string
    EventDate   string // YYYY-MM-DD, optional
    Location    string
}
