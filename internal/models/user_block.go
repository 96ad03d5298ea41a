package models

import "time"

// UserBlock records that one user has blocked another. The block is enforced
// symmetrically: a pair is blocked if a row exists in either direction.
// The primary key is a composite of (BlockerID, BlockedID) to ensure uniqueness.
type UserBlock struct {
	BlockerID uint `gorm:"primaryKey"`
	BlockedID uint `gorm:"primaryKey"`
	CreatedAt time.Time

	Blocker User `gorm:"foreignKey:BlockerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Blocked User `gorm:"foreignKey:BlockedID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
