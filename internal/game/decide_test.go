package game

import (
	"testing"
	"time"

	"deviantdare/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"
)

func gesturePtr(g models.Gesture) *models.Gesture     { return &g }
func uintPtr(v uint) *uint                            { return &v }
func outcomePtr(o models.GameOutcome) *models.GameOutcome { return &o }

const (
	creatorID     uint = 1
	participantID uint = 2
	strangerID    uint = 3
)

// waitingGame is a freshly created game with a live claim token.
func waitingGame() *models.SwitchGame {
	token := "tok"
	expires := time.Now().Add(time.Hour)
	return &models.SwitchGame{
		Model:          gorm.Model{ID: 10},
		CreatorID:      creatorID,
		CreatorDare:    "sing in public",
		Difficulty:     models.DifficultyArousing,
		Status:         models.StatusWaitingForParticipant,
		ClaimToken:     &token,
		ClaimExpiresAt: &expires,
	}
}

// activeGame has a participant but no outcome yet.
func activeGame() *models.SwitchGame {
	g := waitingGame()
	g.Status = models.StatusInProgress
	g.ParticipantID = uintPtr(participantID)
	g.ParticipantDare = "dance on the table"
	g.ClaimToken = nil
	g.ClaimExpiresAt = nil
	return g
}

// resolvedGame has an outcome where the creator won.
func resolvedGame() *models.SwitchGame {
	g := activeGame()
	g.CreatorGesture = gesturePtr(models.GestureRock)
	g.ParticipantGesture = gesturePtr(models.GestureScissors)
	g.Outcome = outcomePtr(models.OutcomeCreatorWins)
	g.WinnerID = uintPtr(creatorID)
	g.LoserID = uintPtr(participantID)
	return g
}

func bothLoseGame() *models.SwitchGame {
	g := activeGame()
	g.CreatorGesture = gesturePtr(models.GestureRock)
	g.ParticipantGesture = gesturePtr(models.GestureRock)
	g.Outcome = outcomePtr(models.OutcomeBothLose)
	return g
}

func bothWinGame() *models.SwitchGame {
	g := activeGame()
	g.CreatorGesture = gesturePtr(models.GesturePaper)
	g.ParticipantGesture = gesturePtr(models.GesturePaper)
	g.Outcome = outcomePtr(models.OutcomeBothWin)
	g.Status = models.StatusCompleted
	return g
}

func TestCheckJoin(t *testing.T) {
	now := time.Now()

	t.Run("waiting game is joinable", func(t *testing.T) {
		assert.NoError(t, checkJoin(waitingGame(), participantID, models.GestureRock, now))
	})

	t.Run("invalid gesture", func(t *testing.T) {
		err := checkJoin(waitingGame(), participantID, "lizard", now)
		assert.ErrorIs(t, err, ErrInvalidGesture)
	})

	t.Run("already claimed", func(t *testing.T) {
		err := checkJoin(activeGame(), strangerID, models.GestureRock, now)
		assert.ErrorIs(t, err, ErrAlreadyClaimed)
	})

	t.Run("creator cannot join own game", func(t *testing.T) {
		err := checkJoin(waitingGame(), creatorID, models.GestureRock, now)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("expired claim", func(t *testing.T) {
		g := waitingGame()
		past := now.Add(-time.Minute)
		g.ClaimExpiresAt = &past
		err := checkJoin(g, participantID, models.GestureRock, now)
		assert.ErrorIs(t, err, ErrExpired)
	})

	t.Run("terminal states reject joins", func(t *testing.T) {
		for _, status := range []models.GameStatus{models.StatusCompleted, models.StatusCancelled, models.StatusForfeited} {
			g := waitingGame()
			g.Status = status
			err := checkJoin(g, participantID, models.GestureRock, now)
			assert.ErrorIs(t, err, ErrInvalidState, "status %s", status)
		}
	})
}

func TestCheckCancel(t *testing.T) {
	t.Run("creator cancels waiting game", func(t *testing.T) {
		assert.NoError(t, checkCancel(waitingGame(), creatorID))
	})

	t.Run("only creator may cancel", func(t *testing.T) {
		err := checkCancel(waitingGame(), strangerID)
		assert.ErrorIs(t, err, ErrNotYourTurn)
	})

	t.Run("non-waiting games cannot be cancelled", func(t *testing.T) {
		for _, g := range []*models.SwitchGame{activeGame(), resolvedGame(), bothWinGame()} {
			err := checkCancel(g, creatorID)
			assert.ErrorIs(t, err, ErrInvalidState, "status %s", g.Status)
		}
	})
}

func TestCheckGesture(t *testing.T) {
	t.Run("party may submit once", func(t *testing.T) {
		assert.NoError(t, checkGesture(activeGame(), creatorID, models.GestureRock))
		assert.NoError(t, checkGesture(activeGame(), participantID, models.GestureScissors))
	})

	t.Run("invalid gesture", func(t *testing.T) {
		err := checkGesture(activeGame(), creatorID, "")
		assert.ErrorIs(t, err, ErrInvalidGesture)
	})

	t.Run("outsider rejected", func(t *testing.T) {
		err := checkGesture(activeGame(), strangerID, models.GestureRock)
		assert.ErrorIs(t, err, ErrNotYourTurn)
	})

	t.Run("gesture is write-once", func(t *testing.T) {
		g := activeGame()
		g.CreatorGesture = gesturePtr(models.GestureRock)
		err := checkGesture(g, creatorID, models.GesturePaper)
		assert.ErrorIs(t, err, ErrAlreadyResolved)

		// The other side is still free to play.
		assert.NoError(t, checkGesture(g, participantID, models.GesturePaper))
	})

	t.Run("resolved game rejects further gestures", func(t *testing.T) {
		err := checkGesture(resolvedGame(), creatorID, models.GestureRock)
		assert.ErrorIs(t, err, ErrAlreadyResolved)
	})

	t.Run("waiting game rejects gestures", func(t *testing.T) {
		err := checkGesture(waitingGame(), creatorID, models.GestureRock)
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestLosers(t *testing.T) {
	assert.Nil(t, losers(activeGame()), "unresolved game has no losers yet")
	assert.Equal(t, []uint{participantID}, losers(resolvedGame()))
	assert.ElementsMatch(t, []uint{creatorID, participantID}, losers(bothLoseGame()))
	assert.Nil(t, losers(bothWinGame()))
}

func TestRequiredProofs(t *testing.T) {
	assert.Equal(t, 1, requiredProofs(resolvedGame()))
	assert.Equal(t, 2, requiredProofs(bothLoseGame()))
}

func TestCheckProof(t *testing.T) {
	t.Run("loser may submit", func(t *testing.T) {
		assert.NoError(t, checkProof(resolvedGame(), participantID))
	})

	t.Run("winner owes nothing", func(t *testing.T) {
		err := checkProof(resolvedGame(), creatorID)
		assert.ErrorIs(t, err, ErrNotYourTurn)
	})

	t.Run("both losers owe after rock draw", func(t *testing.T) {
		g := bothLoseGame()
		assert.NoError(t, checkProof(g, creatorID))
		assert.NoError(t, checkProof(g, participantID))
	})

	t.Run("duplicate submit rejected", func(t *testing.T) {
		g := resolvedGame()
		g.Proofs = []models.Proof{{Model: gorm.Model{ID: 1}, GameID: &g.ID, UserID: participantID, Content: "done"}}
		err := checkProof(g, participantID)
		assert.ErrorIs(t, err, ErrAlreadyResolved)
	})

	t.Run("unresolved game rejects proof", func(t *testing.T) {
		err := checkProof(activeGame(), participantID)
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestCheckReview(t *testing.T) {
	t.Run("winner reviews loser proof", func(t *testing.T) {
		g := resolvedGame()
		g.Proofs = []models.Proof{{Model: gorm.Model{ID: 7}, GameID: &g.ID, UserID: participantID, Content: "done"}}
		id, err := checkReview(g, creatorID)
		require.NoError(t, err)
		assert.Equal(t, uint(7), id)
	})

	t.Run("loser cannot review", func(t *testing.T) {
		g := resolvedGame()
		g.Proofs = []models.Proof{{Model: gorm.Model{ID: 7}, GameID: &g.ID, UserID: participantID, Content: "done"}}
		_, err := checkReview(g, participantID)
		assert.ErrorIs(t, err, ErrNotYourTurn)
	})

	t.Run("no pending proof", func(t *testing.T) {
		_, err := checkReview(resolvedGame(), creatorID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rock draw parties grade each other", func(t *testing.T) {
		g := bothLoseGame()
		g.Proofs = []models.Proof{
			{Model: gorm.Model{ID: 1}, GameID: &g.ID, UserID: creatorID, Content: "mine"},
			{Model: gorm.Model{ID: 2}, GameID: &g.ID, UserID: participantID, Content: "yours"},
		}

		id, err := checkReview(g, creatorID)
		require.NoError(t, err)
		assert.Equal(t, uint(2), id, "creator grades the participant's proof")

		id, err = checkReview(g, participantID)
		require.NoError(t, err)
		assert.Equal(t, uint(1), id, "participant grades the creator's proof")
	})

	t.Run("paper draw has nothing to review", func(t *testing.T) {
		g := bothWinGame()
		g.Status = models.StatusInProgress
		_, err := checkReview(g, creatorID)
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestCheckChickenOut(t *testing.T) {
	t.Run("either party may forfeit before resolution", func(t *testing.T) {
		assert.NoError(t, checkChickenOut(activeGame(), creatorID))
		assert.NoError(t, checkChickenOut(activeGame(), participantID))
	})

	t.Run("only the loser may forfeit after resolution", func(t *testing.T) {
		assert.NoError(t, checkChickenOut(resolvedGame(), participantID))
		err := checkChickenOut(resolvedGame(), creatorID)
		assert.ErrorIs(t, err, ErrNotYourTurn)
	})

	t.Run("either loser may forfeit after rock draw", func(t *testing.T) {
		assert.NoError(t, checkChickenOut(bothLoseGame(), creatorID))
		assert.NoError(t, checkChickenOut(bothLoseGame(), participantID))
	})

	t.Run("paper draw leaves nothing to forfeit", func(t *testing.T) {
		g := bothWinGame()
		g.Status = models.StatusInProgress
		err := checkChickenOut(g, creatorID)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("outsider rejected", func(t *testing.T) {
		err := checkChickenOut(activeGame(), strangerID)
		assert.ErrorIs(t, err, ErrNotYourTurn)
	})

	t.Run("terminal game rejected", func(t *testing.T) {
		g := resolvedGame()
		g.Status = models.StatusForfeited
		err := checkChickenOut(g, participantID)
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}
