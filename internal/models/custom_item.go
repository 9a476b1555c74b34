package models

import (
	"gorm.io/gorm"
)

// CustomItem is a user-added checklist entry that is not one of the built-in defaults.
type CustomItem struct {
	gorm.Model
	Category string `json:"category" gorm:"uniqueIndex:idx_category_text"`
	Text     string `json:"text" gorm:"uniqueIndex:idx_category_text"`
	Position int    `json:"position"`
}
