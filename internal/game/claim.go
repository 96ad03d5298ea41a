package game

import (
	"errors"
	"time"

	"deviantdare/backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewClaimToken mints an opaque single-use claim token.
func NewClaimToken() string {
	return uuid.NewString()
}

// Claimable is whatever a claim token currently points at: a pending switch
// game or a pending dare. Exactly one field is set.
type Claimable struct {
	Game *models.SwitchGame
	Dare *models.Dare
}

// ResolveClaim maps a token to its pending record. Tokens on records that
// have left the waiting state resolve to NotFound (the token is nulled on
// the first successful claim, so a consumed token simply no longer exists).
func (m *Machine) ResolveClaim(token string, now time.Time) (*Claimable, error) {
	var g models.SwitchGame
	err := retryRead(func() error {
		return m.db.Preload("Creator").Preload("Tags").
			Where("claim_token = ?", token).First(&g).Error
	})
	if err == nil {
		if g.Status != models.StatusWaitingForParticipant {
			return nil, ErrNotFound
		}
		if g.ClaimExpiresAt != nil && now.After(*g.ClaimExpiresAt) {
			return nil, ErrExpired
		}
		return &Claimable{Game: &g}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var d models.Dare
	err = retryRead(func() error {
		return m.db.Preload("Creator").Preload("Tags").
			Where("claim_token = ?", token).First(&d).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if d.Status != models.DareWaitingForPerformer {
		return nil, ErrNotFound
	}
	if d.ClaimExpiresAt != nil && now.After(*d.ClaimExpiresAt) {
		return nil, ErrExpired
	}
	return &Claimable{Dare: &d}, nil
}

// ClaimGame joins a switch game through its claim token. The conditional
// update is additionally keyed on the token, so of any set of concurrent
// claimers exactly one consumes it.
func (m *Machine) ClaimGame(token string, userID uint, gesture models.Gesture, dare string) (*models.SwitchGame, error) {
	c, err := m.ResolveClaim(token, time.Now())
	if err != nil {
		return nil, err
	}
	if c.Game == nil {
		return nil, ErrNotFound
	}
	return m.join(c.Game, userID, gesture, dare, token)
}

// ClaimDare makes userID the performer of a pending dare through its token.
func (m *Machine) ClaimDare(token string, userID uint) (*models.Dare, error) {
	c, err := m.ResolveClaim(token, time.Now())
	if err != nil {
		return nil, err
	}
	if c.Dare == nil {
		return nil, ErrNotFound
	}
	return m.claimDare(c.Dare, userID, token)
}
