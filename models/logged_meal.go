package models

import "gorm.io/gorm"

// A user's claim "I ate this menu item on this date for this meal".
type LoggedMeal struct {
    gorm.Model
    UserID     uint   `gorm:"index;not null"`
    Date       string `gorm:"index;not null"` // YYYY-MM-DD
    Meal       string `gorm:"not null"`       // lower-case
    MenuItemID uint   `gorm:"not null"`
    MenuItem   MenuItem
}
