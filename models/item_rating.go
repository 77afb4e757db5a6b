package models

import "gorm.io/gorm"

// 1-5 rating a user gave to a menu item. One rating per (user, item).
type ItemRating struct {
    gorm.Model
    UserID     uint `gorm:"uniqueIndex:idx_user_item;not null"`
    MenuItemID uint `gorm:"uniqueIndex:idx_user_item;not null"`
    Rating     int  `gorm:"not null"`
}
