package game

import (
	"time"

	"deviantdare/backend/internal/models"
)

// The check* helpers validate a transition against a loaded snapshot and
// return the typed rejection the caller would hit. They are pure; the race
// against concurrent writers is settled afterwards by a conditional update,
// so a snapshot that passes here can still lose the race.

func checkJoin(g *models.SwitchGame, userID uint, gesture models.Gesture, now time.Time) error {
	if !gesture.Valid() {
		return ErrInvalidGesture
	}
	switch g.Status {
	case models.StatusWaitingForParticipant:
		// claimable
	case models.StatusInProgress:
		return ErrAlreadyClaimed
	case models.StatusCompleted, models.StatusCancelled, models.StatusForfeited:
		return ErrInvalidState
	default:
		return ErrInvalidState
	}
	if g.CreatorID == userID {
		return ErrInvalidState
	}
	if g.ClaimExpiresAt != nil && now.After(*g.ClaimExpiresAt) {
		return ErrExpired
	}
	return nil
}

func checkCancel(g *models.SwitchGame, userID uint) error {
	if g.Status != models.StatusWaitingForParticipant {
		return ErrInvalidState
	}
	if g.CreatorID != userID {
		return ErrNotYourTurn
	}
	return nil
}

func checkGesture(g *models.SwitchGame, userID uint, gesture models.Gesture) error {
	if !gesture.Valid() {
		return ErrInvalidGesture
	}
	if g.Status != models.StatusInProgress {
		return ErrInvalidState
	}
	if !g.PartyOf(userID) {
		return ErrNotYourTurn
	}
	if g.Outcome != nil {
		return ErrAlreadyResolved
	}
	own := g.CreatorGesture
	if g.ParticipantID != nil && *g.ParticipantID == userID {
		own = g.ParticipantGesture
	}
	if own != nil {
		return ErrAlreadyResolved
	}
	return nil
}

// losers returns the users who owe proof: the resolved loser, or both
// parties after a rock/rock draw.
func losers(g *models.SwitchGame) []uint {
	if g.Outcome == nil {
		return nil
	}
	switch *g.Outcome {
	case models.OutcomeBothLose:
		if g.ParticipantID == nil {
			return nil
		}
		return []uint{g.CreatorID, *g.ParticipantID}
	case models.OutcomeBothWin:
		return nil
	default:
		if g.LoserID == nil {
			return nil
		}
		return []uint{*g.LoserID}
	}
}

func isLoser(g *models.SwitchGame, userID uint) bool {
	for _, id := range losers(g) {
		if id == userID {
			return true
		}
	}
	return false
}

func checkProof(g *models.SwitchGame, userID uint) error {
	if g.Status != models.StatusInProgress {
		return ErrInvalidState
	}
	if g.Outcome == nil {
		return ErrInvalidState
	}
	if !g.PartyOf(userID) {
		return ErrNotYourTurn
	}
	if !isLoser(g, userID) {
		return ErrNotYourTurn
	}
	for _, p := range g.Proofs {
		if p.UserID == userID {
			return ErrAlreadyResolved
		}
	}
	return nil
}

// checkReview validates that reviewerID may grade a proof on g and returns
// the pending proof's ID.
func checkReview(g *models.SwitchGame, reviewerID uint) (uint, error) {
	if g.Status != models.StatusInProgress {
		return 0, ErrInvalidState
	}
	if g.Outcome == nil {
		return 0, ErrInvalidState
	}

	var ownerID uint
	switch *g.Outcome {
	case models.OutcomeBothLose:
		// Each party grades the counterpart's proof.
		if !g.PartyOf(reviewerID) {
			return 0, ErrNotYourTurn
		}
		ownerID = g.Counterpart(reviewerID)
	case models.OutcomeBothWin:
		return 0, ErrInvalidState
	default:
		if g.WinnerID == nil || *g.WinnerID != reviewerID {
			return 0, ErrNotYourTurn
		}
		ownerID = *g.LoserID
	}

	for _, p := range g.Proofs {
		if p.UserID == ownerID && !p.Reviewed {
			return p.ID, nil
		}
	}
	return 0, ErrNotFound
}

func checkChickenOut(g *models.SwitchGame, userID uint) error {
	if g.Status != models.StatusInProgress {
		return ErrInvalidState
	}
	if !g.PartyOf(userID) {
		return ErrNotYourTurn
	}
	if g.Outcome == nil {
		// Not yet resolved: either party may forfeit and becomes the loser.
		return nil
	}
	switch *g.Outcome {
	case models.OutcomeBothWin:
		return ErrInvalidState
	case models.OutcomeBothLose:
		return nil
	default:
		if g.LoserID == nil || *g.LoserID != userID {
			return ErrNotYourTurn
		}
	}
	return nil
}

// requiredProofs is how many reviewed proofs complete the game.
func requiredProofs(g *models.SwitchGame) int {
	if g.Outcome != nil && *g.Outcome == models.OutcomeBothLose {
		return 2
	}
	return 1
}
