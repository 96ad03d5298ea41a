package guard

import (
	"deviantdare/backend/internal/models"

	"gorm.io/gorm"
)

// Checker answers whether a pair of users is blocked. The check is symmetric:
// a block recorded in either direction blocks the pair both ways.
type Checker interface {
	Blocked(userA, userB uint) (bool, error)
}

// DBChecker reads the block registry from Postgres.
type DBChecker struct {
	DB *gorm.DB
}

func NewDBChecker(db *gorm.DB) *DBChecker {
	return &DBChecker{DB: db}
}

func (c *DBChecker) Blocked(userA, userB uint) (bool, error) {
	var count int64
	err := c.DB.Model(&models.UserBlock{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)",
			userA, userB, userB, userA).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
