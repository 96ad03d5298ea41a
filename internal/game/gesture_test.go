package game

import (
	"testing"

	"deviantdare/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always returns the same value, pinning the coin flip.
type fixedRand struct{ v int }

func (f fixedRand) Intn(n int) int { return f.v % n }

func TestResolveAllPairs(t *testing.T) {
	tests := []struct {
		name string
		a    models.Gesture
		b    models.Gesture
		want Outcome
	}{
		{"rock beats scissors", models.GestureRock, models.GestureScissors, Outcome{AWins: true}},
		{"scissors loses to rock", models.GestureScissors, models.GestureRock, Outcome{BWins: true}},
		{"scissors beats paper", models.GestureScissors, models.GesturePaper, Outcome{AWins: true}},
		{"paper loses to scissors", models.GesturePaper, models.GestureScissors, Outcome{BWins: true}},
		{"paper beats rock", models.GesturePaper, models.GestureRock, Outcome{AWins: true}},
		{"rock loses to paper", models.GestureRock, models.GesturePaper, Outcome{BWins: true}},
		{"rock draw both lose", models.GestureRock, models.GestureRock, Outcome{Draw: true, Rule: DrawBothLose}},
		{"paper draw both win", models.GesturePaper, models.GesturePaper, Outcome{Draw: true, Rule: DrawBothWin}},
		{"scissors draw coin flip", models.GestureScissors, models.GestureScissors, Outcome{Draw: true, Rule: DrawCoinFlip}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveInvalidGesture(t *testing.T) {
	_, err := Resolve("lizard", models.GestureRock)
	assert.ErrorIs(t, err, ErrInvalidGesture)

	_, err = Resolve(models.GestureRock, "")
	assert.ErrorIs(t, err, ErrInvalidGesture)
}

func TestResolveOutcome(t *testing.T) {
	tests := []struct {
		name        string
		creator     models.Gesture
		participant models.Gesture
		rng         Rand
		want        models.GameOutcome
	}{
		{"creator wins", models.GestureRock, models.GestureScissors, nil, models.OutcomeCreatorWins},
		{"participant wins", models.GestureRock, models.GesturePaper, nil, models.OutcomeParticipantWins},
		{"rock draw", models.GestureRock, models.GestureRock, nil, models.OutcomeBothLose},
		{"paper draw", models.GesturePaper, models.GesturePaper, nil, models.OutcomeBothWin},
		{"scissors draw heads", models.GestureScissors, models.GestureScissors, fixedRand{0}, models.OutcomeCreatorWins},
		{"scissors draw tails", models.GestureScissors, models.GestureScissors, fixedRand{1}, models.OutcomeParticipantWins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveOutcome(tt.creator, tt.participant, tt.rng)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoinFlipDistribution(t *testing.T) {
	const trials = 10000

	rng := NewRand()
	creatorWins := 0
	for i := 0; i < trials; i++ {
		out, err := resolveOutcome(models.GestureScissors, models.GestureScissors, rng)
		require.NoError(t, err)
		switch out {
		case models.OutcomeCreatorWins:
			creatorWins++
		case models.OutcomeParticipantWins:
		default:
			t.Fatalf("unexpected outcome %q from scissors draw", out)
		}
	}

	// A fair flip over 10k trials should sit well inside 48-52%.
	ratio := float64(creatorWins) / float64(trials)
	assert.InDelta(t, 0.5, ratio, 0.02, "coin flip is biased: creator won %d of %d", creatorWins, trials)
}
