package models

import "gorm.io/gorm"

// Proof is evidence submitted by a losing party demonstrating dare
// completion. A switch game carries one proof in the normal case and two
// when a rock/rock draw makes both parties losers; a dare carries at most
// one. Exactly one of GameID and DareID is set. The unique indexes turn a
// concurrent double submit into a constraint violation rather than a
// duplicate row.
type Proof struct {
	gorm.Model
	GameID     *uint  `gorm:"index;uniqueIndex:idx_proof_game_user"`
	DareID     *uint  `gorm:"index;uniqueIndex:idx_proof_dare_user"`
	UserID     uint   `gorm:"not null;index;uniqueIndex:idx_proof_game_user;uniqueIndex:idx_proof_dare_user"`
	Content    string `gorm:"not null"`
	Reviewed   bool   `gorm:"not null;default:false"`
	Approved   bool   `gorm:"not null;default:false"`
	ReviewedBy *uint

	User User `gorm:"foreignKey:UserID"`
}
