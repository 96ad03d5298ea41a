package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameStatusTerminal(t *testing.T) {
	assert.False(t, StatusWaitingForParticipant.Terminal())
	assert.False(t, StatusInProgress.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.True(t, StatusForfeited.Terminal())
}

func TestDareStatusTerminal(t *testing.T) {
	assert.False(t, DareWaitingForPerformer.Terminal())
	assert.False(t, DareInProgress.Terminal())
	assert.True(t, DareCompleted.Terminal())
	assert.True(t, DareCancelled.Terminal())
	assert.True(t, DareForfeited.Terminal())
}

func TestGestureValid(t *testing.T) {
	assert.True(t, GestureRock.Valid())
	assert.True(t, GesturePaper.Valid())
	assert.True(t, GestureScissors.Valid())
	assert.False(t, Gesture("lizard").Valid())
	assert.False(t, Gesture("").Valid())
}

func TestDifficultyOrdinal(t *testing.T) {
	ranks := map[Difficulty]int{
		DifficultyTitillating: 1,
		DifficultyArousing:    2,
		DifficultyExplicit:    3,
		DifficultyEdgy:        4,
		DifficultyHardcore:    5,
	}
	for d, want := range ranks {
		assert.Equal(t, want, d.Ordinal())
		assert.True(t, d.Valid())
	}
	assert.Equal(t, 0, Difficulty("mild").Ordinal())
	assert.False(t, Difficulty("mild").Valid())
}

func TestSwitchGameParties(t *testing.T) {
	pid := uint(2)
	g := &SwitchGame{CreatorID: 1, ParticipantID: &pid}

	assert.True(t, g.PartyOf(1))
	assert.True(t, g.PartyOf(2))
	assert.False(t, g.PartyOf(3))

	assert.Equal(t, uint(2), g.Counterpart(1))
	assert.Equal(t, uint(1), g.Counterpart(2))
	assert.Equal(t, uint(0), g.Counterpart(3))

	open := &SwitchGame{CreatorID: 1}
	assert.True(t, open.PartyOf(1))
	assert.False(t, open.PartyOf(2))
	assert.Equal(t, uint(0), open.Counterpart(1))
}
