package game

import (
	"errors"
	"time"

	"deviantdare/backend/internal/guard"
	"deviantdare/backend/internal/models"

	"gorm.io/gorm"
)

// Machine drives every switch-game and dare transition. The game record in
// Postgres is the only shared mutable resource; each transition is a single
// conditional UPDATE keyed on the state the caller observed, so the loser of
// any race gets a typed rejection instead of corrupting the record.
type Machine struct {
	db       *gorm.DB
	guard    guard.Checker
	rng      Rand
	claimTTL time.Duration
}

func NewMachine(db *gorm.DB, checker guard.Checker, rng Rand, claimTTL time.Duration) *Machine {
	return &Machine{db: db, guard: checker, rng: rng, claimTTL: claimTTL}
}

// guardPair re-evaluates the block registry for a user pair. Blocks can be
// established mid-game, so this runs before every guarded transition, not
// only at join time.
func (m *Machine) guardPair(userA, userB uint) error {
	if userB == 0 {
		return nil
	}
	blocked, err := m.guard.Blocked(userA, userB)
	if err != nil {
		return err
	}
	if blocked {
		return ErrBlockedPair
	}
	return nil
}

// LoadGame fetches a game with its associations.
func (m *Machine) LoadGame(gameID uint) (*models.SwitchGame, error) {
	var g models.SwitchGame
	err := retryRead(func() error {
		return m.db.
			Preload("Creator").
			Preload("Participant").
			Preload("Tags").
			Preload("Proofs").
			First(&g, gameID).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

// CreateGame creates a game in waiting_for_participant with a freshly minted
// single-use claim token. The creator may lock in their gesture immediately
// or submit it later.
func (m *Machine) CreateGame(creatorID uint, dare string, difficulty models.Difficulty, gesture *models.Gesture, tags []*models.Tag) (*models.SwitchGame, error) {
	if gesture != nil && !gesture.Valid() {
		return nil, ErrInvalidGesture
	}

	token := NewClaimToken()
	expires := time.Now().Add(m.claimTTL)

	g := models.SwitchGame{
		CreatorID:      creatorID,
		CreatorDare:    dare,
		Difficulty:     difficulty,
		CreatorGesture: gesture,
		Status:         models.StatusWaitingForParticipant,
		ClaimToken:     &token,
		ClaimExpiresAt: &expires,
		Tags:           tags,
	}
	if err := m.db.Create(&g).Error; err != nil {
		return nil, err
	}
	return m.LoadGame(g.ID)
}

// Join makes userID the participant of a waiting game. Exactly one of any
// set of concurrent joins succeeds; the claim token is invalidated in the
// same update that flips the status.
func (m *Machine) Join(gameID, userID uint, gesture models.Gesture, dare string) (*models.SwitchGame, error) {
	g, err := m.LoadGame(gameID)
	if err != nil {
		return nil, err
	}
	return m.join(g, userID, gesture, dare, "")
}

func (m *Machine) join(g *models.SwitchGame, userID uint, gesture models.Gesture, dare, token string) (*models.SwitchGame, error) {
	if err := checkJoin(g, userID, gesture, time.Now()); err != nil {
		return nil, err
	}
	if err := m.guardPair(userID, g.CreatorID); err != nil {
		return nil, err
	}

	tx := m.db.Model(&models.SwitchGame{}).
		Where("id = ? AND status = ?", g.ID, models.StatusWaitingForParticipant)
	if token != "" {
		tx = tx.Where("claim_token = ?", token)
	}
	res := tx.Updates(map[string]interface{}{
		"status":              models.StatusInProgress,
		"participant_id":      userID,
		"participant_gesture": gesture,
		"participant_dare":    dare,
		"claim_token":         nil,
		"claim_expires_at":    nil,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadyClaimed
	}

	if err := m.resolveIfReady(g.ID); err != nil {
		return nil, err
	}
	return m.LoadGame(g.ID)
}

// Cancel withdraws a waiting game. Creator only; the claim token dies with it.
func (m *Machine) Cancel(gameID, userID uint) (*models.SwitchGame, error) {
	g, err := m.LoadGame(gameID)
	if err != nil {
		return nil, err
	}
	if err := checkCancel(g, userID); err != nil {
		return nil, err
	}

	res := m.db.Model(&models.SwitchGame{}).
		Where("id = ? AND status = ?", gameID, models.StatusWaitingForParticipant).
		Updates(map[string]interface{}{
			"status":           models.StatusCancelled,
			"claim_token":      nil,
			"claim_expires_at": nil,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrInvalidState
	}
	return m.LoadGame(gameID)
}

// SubmitGesture records a party's write-once gesture. When the pair is
// complete the outcome is fixed in a follow-up conditional update.
func (m *Machine) SubmitGesture(gameID, userID uint, gesture models.Gesture) (*models.SwitchGame, error) {
	g, err := m.LoadGame(gameID)
	if err != nil {
		return nil, err
	}
	if err := checkGesture(g, userID, gesture); err != nil {
		return nil, err
	}
	if err := m.guardPair(userID, g.Counterpart(userID)); err != nil {
		return nil, err
	}

	column := "creator_gesture"
	if g.ParticipantID != nil && *g.ParticipantID == userID {
		column = "participant_gesture"
	}
	res := m.db.Model(&models.SwitchGame{}).
		Where("id = ? AND status = ? AND "+column+" IS NULL", gameID, models.StatusInProgress).
		Update(column, gesture)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadyResolved
	}

	if err := m.resolveIfReady(gameID); err != nil {
		return nil, err
	}
	return m.LoadGame(gameID)
}

// resolveIfReady fixes winner/loser once both gestures exist. The update is
// keyed on outcome still being NULL, so only one of two racing submitters
// writes the result; the other's loss is harmless.
func (m *Machine) resolveIfReady(gameID uint) error {
	g, err := m.LoadGame(gameID)
	if err != nil {
		return err
	}
	if g.Status != models.StatusInProgress || g.Outcome != nil {
		return nil
	}
	if g.CreatorGesture == nil || g.ParticipantGesture == nil {
		return nil
	}

	outcome, err := resolveOutcome(*g.CreatorGesture, *g.ParticipantGesture, m.rng)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{"outcome": outcome}
	switch outcome {
	case models.OutcomeCreatorWins:
		updates["winner_id"] = g.CreatorID
		updates["loser_id"] = *g.ParticipantID
	case models.OutcomeParticipantWins:
		updates["winner_id"] = *g.ParticipantID
		updates["loser_id"] = g.CreatorID
	case models.OutcomeBothWin:
		// paper/paper: no obligation on either side, the game is done.
		updates["status"] = models.StatusCompleted
	case models.OutcomeBothLose:
		// rock/rock: both owe the counterpart's dare, both submit proof.
	}

	res := m.db.Model(&models.SwitchGame{}).
		Where("id = ? AND status = ? AND outcome IS NULL", gameID, models.StatusInProgress).
		Updates(updates)
	return res.Error
}

// SubmitProof records the loser's evidence. The unique (game, user) index
// rejects a concurrent double submit.
func (m *Machine) SubmitProof(gameID, userID uint, content string) (*models.SwitchGame, error) {
	g, err := m.LoadGame(gameID)
	if err != nil {
		return nil, err
	}
	if err := checkProof(g, userID); err != nil {
		return nil, err
	}
	if err := m.guardPair(userID, g.Counterpart(userID)); err != nil {
		return nil, err
	}

	proof := models.Proof{GameID: &g.ID, UserID: userID, Content: content}
	if err := m.db.Create(&proof).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyResolved
		}
		return nil, err
	}
	return m.LoadGame(gameID)
}

// ReviewProof grades the counterpart's pending proof and completes the game
// once every owed proof has been reviewed.
func (m *Machine) ReviewProof(gameID, reviewerID uint, approve bool) (*models.SwitchGame, error) {
	g, err := m.LoadGame(gameID)
	if err != nil {
		return nil, err
	}
	proofID, err := checkReview(g, reviewerID)
	if err != nil {
		return nil, err
	}
	if err := m.guardPair(reviewerID, g.Counterpart(reviewerID)); err != nil {
		return nil, err
	}

	res := m.db.Model(&models.Proof{}).
		Where("id = ? AND reviewed = ?", proofID, false).
		Updates(map[string]interface{}{
			"reviewed":    true,
			"approved":    approve,
			"reviewed_by": reviewerID,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadyResolved
	}

	var reviewed int64
	if err := m.db.Model(&models.Proof{}).
		Where("game_id = ? AND reviewed = ?", gameID, true).
		Count(&reviewed).Error; err != nil {
		return nil, err
	}
	if int(reviewed) >= requiredProofs(g) {
		res := m.db.Model(&models.SwitchGame{}).
			Where("id = ? AND status = ?", gameID, models.StatusInProgress).
			Update("status", models.StatusCompleted)
		if res.Error != nil {
			return nil, res.Error
		}
	}
	return m.LoadGame(gameID)
}

// ChickenOut is a unilateral forfeit. Before resolution either party may
// bail and thereby becomes the loser; after resolution only the resolved
// loser may. Terminal, no proof required, no undo.
func (m *Machine) ChickenOut(gameID, userID uint) (*models.SwitchGame, error) {
	g, err := m.LoadGame(gameID)
	if err != nil {
		return nil, err
	}
	if err := checkChickenOut(g, userID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"status": models.StatusForfeited}
	if g.LoserID == nil && (g.Outcome == nil || *g.Outcome != models.OutcomeBothLose) {
		updates["loser_id"] = userID
		if counterpart := g.Counterpart(userID); counterpart != 0 {
			updates["winner_id"] = counterpart
		}
	}

	// Two simultaneous forfeits race on the status flip; the second caller
	// finds a terminal game and gets InvalidState.
	res := m.db.Model(&models.SwitchGame{}).
		Where("id = ? AND status = ?", gameID, models.StatusInProgress).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrInvalidState
	}
	return m.LoadGame(gameID)
}
