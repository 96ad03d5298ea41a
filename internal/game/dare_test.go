package game

import (
	"testing"
	"time"

	"deviantdare/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"
)

func waitingDare() *models.Dare {
	token := "tok"
	expires := time.Now().Add(time.Hour)
	return &models.Dare{
		Model:          gorm.Model{ID: 20},
		CreatorID:      creatorID,
		Description:    "eat a lemon whole",
		Difficulty:     models.DifficultyTitillating,
		Status:         models.DareWaitingForPerformer,
		ClaimToken:     &token,
		ClaimExpiresAt: &expires,
	}
}

func claimedDare() *models.Dare {
	d := waitingDare()
	d.Status = models.DareInProgress
	d.PerformerID = uintPtr(participantID)
	d.ClaimToken = nil
	d.ClaimExpiresAt = nil
	return d
}

func TestCheckDareClaim(t *testing.T) {
	now := time.Now()

	t.Run("waiting dare is claimable", func(t *testing.T) {
		assert.NoError(t, checkDareClaim(waitingDare(), participantID, now))
	})

	t.Run("claimed dare is gone", func(t *testing.T) {
		err := checkDareClaim(claimedDare(), strangerID, now)
		assert.ErrorIs(t, err, ErrAlreadyClaimed)
	})

	t.Run("creator cannot claim own dare", func(t *testing.T) {
		err := checkDareClaim(waitingDare(), creatorID, now)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("expired claim", func(t *testing.T) {
		d := waitingDare()
		past := now.Add(-time.Minute)
		d.ClaimExpiresAt = &past
		err := checkDareClaim(d, participantID, now)
		assert.ErrorIs(t, err, ErrExpired)
	})

	t.Run("terminal states reject claims", func(t *testing.T) {
		for _, status := range []models.DareStatus{models.DareCompleted, models.DareCancelled, models.DareForfeited} {
			d := waitingDare()
			d.Status = status
			err := checkDareClaim(d, participantID, now)
			assert.ErrorIs(t, err, ErrInvalidState, "status %s", status)
		}
	})
}

func TestCheckDareCancel(t *testing.T) {
	assert.NoError(t, checkDareCancel(waitingDare(), creatorID))

	err := checkDareCancel(waitingDare(), strangerID)
	assert.ErrorIs(t, err, ErrNotYourTurn)

	err = checkDareCancel(claimedDare(), creatorID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCheckDareProof(t *testing.T) {
	t.Run("performer may submit once", func(t *testing.T) {
		assert.NoError(t, checkDareProof(claimedDare(), participantID))
	})

	t.Run("creator owes nothing", func(t *testing.T) {
		err := checkDareProof(claimedDare(), creatorID)
		assert.ErrorIs(t, err, ErrNotYourTurn)
	})

	t.Run("duplicate submit rejected", func(t *testing.T) {
		d := claimedDare()
		d.Proofs = []models.Proof{{Model: gorm.Model{ID: 1}, DareID: &d.ID, UserID: participantID, Content: "done"}}
		err := checkDareProof(d, participantID)
		assert.ErrorIs(t, err, ErrAlreadyResolved)
	})

	t.Run("unclaimed dare rejects proof", func(t *testing.T) {
		err := checkDareProof(waitingDare(), participantID)
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestCheckDareGrade(t *testing.T) {
	t.Run("creator grades pending proof", func(t *testing.T) {
		d := claimedDare()
		d.Proofs = []models.Proof{{Model: gorm.Model{ID: 9}, DareID: &d.ID, UserID: participantID, Content: "done"}}
		id, err := checkDareGrade(d, creatorID)
		require.NoError(t, err)
		assert.Equal(t, uint(9), id)
	})

	t.Run("performer cannot grade", func(t *testing.T) {
		d := claimedDare()
		d.Proofs = []models.Proof{{Model: gorm.Model{ID: 9}, DareID: &d.ID, UserID: participantID, Content: "done"}}
		_, err := checkDareGrade(d, participantID)
		assert.ErrorIs(t, err, ErrNotYourTurn)
	})

	t.Run("nothing to grade", func(t *testing.T) {
		_, err := checkDareGrade(claimedDare(), creatorID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("already graded", func(t *testing.T) {
		d := claimedDare()
		d.Proofs = []models.Proof{{Model: gorm.Model{ID: 9}, DareID: &d.ID, UserID: participantID, Content: "done", Reviewed: true}}
		_, err := checkDareGrade(d, creatorID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCheckDareChickenOut(t *testing.T) {
	assert.NoError(t, checkDareChickenOut(claimedDare(), participantID))

	err := checkDareChickenOut(claimedDare(), creatorID)
	assert.ErrorIs(t, err, ErrNotYourTurn)

	err = checkDareChickenOut(waitingDare(), participantID)
	assert.ErrorIs(t, err, ErrInvalidState)
}
