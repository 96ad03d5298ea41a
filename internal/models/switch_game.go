package models

import (
	"time"

	"gorm.io/gorm"
)

// GameStatus is the lifecycle state of a switch game. It only moves forward;
// cancelled and forfeited are the side-branch terminals.
type GameStatus string

const (
	StatusWaitingForParticipant GameStatus = "waiting_for_participant"
	StatusInProgress            GameStatus = "in_progress"
	StatusCompleted             GameStatus = "completed"
	StatusCancelled             GameStatus = "cancelled"
	StatusForfeited             GameStatus = "forfeited"
)

// Terminal reports whether no further transition is possible from s.
func (s GameStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusForfeited:
		return true
	case StatusWaitingForParticipant, StatusInProgress:
		return false
	}
	return false
}

// Gesture is a rock-paper-scissors move.
type Gesture string

const (
	GestureRock     Gesture = "rock"
	GesturePaper    Gesture = "paper"
	GestureScissors Gesture = "scissors"
)

// Valid reports whether g is one of the three allowed gestures.
func (g Gesture) Valid() bool {
	switch g {
	case GestureRock, GesturePaper, GestureScissors:
		return true
	}
	return false
}

// GameOutcome is the result of resolving both gestures.
type GameOutcome string

const (
	OutcomeCreatorWins     GameOutcome = "creator_wins"
	OutcomeParticipantWins GameOutcome = "participant_wins"
	OutcomeBothWin         GameOutcome = "both_win"
	OutcomeBothLose        GameOutcome = "both_lose"
)

// SwitchGame is a two-party rock-paper-scissors contest whose loser must
// perform the winner's dare. The claim token is present only while the game
// waits for a participant and is consumed by exactly one successful join.
type SwitchGame struct {
	gorm.Model
	CreatorID          uint       `gorm:"not null;index"`
	ParticipantID      *uint      `gorm:"index"`
	CreatorDare        string     `gorm:"not null"`
	ParticipantDare    string
	Difficulty         Difficulty  `gorm:"type:varchar(20);not null;index"`
	CreatorGesture     *Gesture    `gorm:"type:varchar(10)"`
	ParticipantGesture *Gesture    `gorm:"type:varchar(10)"`
	Status             GameStatus  `gorm:"type:varchar(30);not null;default:'waiting_for_participant';index"`
	Outcome            *GameOutcome `gorm:"type:varchar(20)"`
	WinnerID           *uint
	LoserID            *uint
	ClaimToken         *string    `gorm:"size:64;uniqueIndex"`
	ClaimExpiresAt     *time.Time
	Tags               []*Tag  `gorm:"many2many:switch_game_tags;"`
	Proofs             []Proof `gorm:"foreignKey:GameID"`

	Creator     User  `gorm:"foreignKey:CreatorID"`
	Participant *User `gorm:"foreignKey:ParticipantID"`
}

// PartyOf reports whether userID is the creator or participant of the game.
func (g *SwitchGame) PartyOf(userID uint) bool {
	if g.CreatorID == userID {
		return true
	}
	return g.ParticipantID != nil && *g.ParticipantID == userID
}

// Counterpart returns the other party's user ID, or 0 if userID is not a
// party or no participant has joined yet.
func (g *SwitchGame) Counterpart(userID uint) uint {
	if g.CreatorID == userID && g.ParticipantID != nil {
		return *g.ParticipantID
	}
	if g.ParticipantID != nil && *g.ParticipantID == userID {
		return g.CreatorID
	}
	return 0
}
