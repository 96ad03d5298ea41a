package models

import (
	"time"

	"gorm.io/gorm"
)

// DareStatus is the lifecycle state of a standalone dare.
type DareStatus string

const (
	DareWaitingForPerformer DareStatus = "waiting_for_performer"
	DareInProgress          DareStatus = "in_progress"
	DareCompleted           DareStatus = "completed"
	DareCancelled           DareStatus = "cancelled"
	DareForfeited           DareStatus = "forfeited"
)

// Terminal reports whether no further transition is possible from s.
func (s DareStatus) Terminal() bool {
	switch s {
	case DareCompleted, DareCancelled, DareForfeited:
		return true
	case DareWaitingForPerformer, DareInProgress:
		return false
	}
	return false
}

// Dare is a single challenge one user creates and another claims and
// performs. Like a switch game it is claimed through a single-use token,
// but there is no gesture contest: the performer is always the one who
// owes proof.
type Dare struct {
	gorm.Model
	CreatorID      uint   `gorm:"not null;index"`
	PerformerID    *uint  `gorm:"index"`
	Description    string `gorm:"not null"`
	Difficulty     Difficulty `gorm:"type:varchar(20);not null;index"`
	Status         DareStatus `gorm:"type:varchar(30);not null;default:'waiting_for_performer';index"`
	ClaimToken     *string    `gorm:"size:64;uniqueIndex"`
	ClaimExpiresAt *time.Time
	Tags           []*Tag  `gorm:"many2many:dare_tags;"`
	Proofs         []Proof `gorm:"foreignKey:DareID"`

	Creator   User  `gorm:"foreignKey:CreatorID"`
	Performer *User `gorm:"foreignKey:PerformerID"`
}
