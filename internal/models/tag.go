package models

import "gorm.io/gorm"

// Tag categorizes dares and switch games (e.g., "public", "solo", "couples").
type Tag struct {
	gorm.Model
	Name string `gorm:"size:100;unique;not null"`
}
