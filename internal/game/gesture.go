package game

import (
	"math/rand"
	"time"

	"deviantdare/backend/internal/models"
)

// Rand is the coin-flip source for the scissors/scissors tiebreak. It is
// injectable so tests can pin the flip.
type Rand interface {
	Intn(n int) int
}

// NewRand returns the default time-seeded source. The tiebreak only needs a
// fair 50/50, not a cryptographic one.
func NewRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// DrawRule is the special-cased behavior when both parties pick the same
// gesture. These rules are user-visible and must not change.
type DrawRule string

const (
	// DrawBothLose: rock/rock, both parties must perform the other's dare.
	DrawBothLose DrawRule = "both_lose"
	// DrawBothWin: paper/paper, no obligation on either side.
	DrawBothWin DrawRule = "both_win"
	// DrawCoinFlip: scissors/scissors, a fair coin flip selects the loser.
	DrawCoinFlip DrawRule = "coin_flip"
)

// Outcome is the result of comparing two gestures. Exactly one of AWins,
// BWins, or Draw is set; Rule is meaningful only when Draw is.
type Outcome struct {
	AWins bool
	BWins bool
	Draw  bool
	Rule  DrawRule
}

// Resolve compares two gestures using standard precedence: rock beats
// scissors, scissors beats paper, paper beats rock. Equal gestures produce a
// draw with the matching rule. Deterministic and side-effect free.
func Resolve(a, b models.Gesture) (Outcome, error) {
	if !a.Valid() || !b.Valid() {
		return Outcome{}, ErrInvalidGesture
	}

	if a == b {
		out := Outcome{Draw: true}
		switch a {
		case models.GestureRock:
			out.Rule = DrawBothLose
		case models.GesturePaper:
			out.Rule = DrawBothWin
		case models.GestureScissors:
			out.Rule = DrawCoinFlip
		}
		return out, nil
	}

	if beats(a, b) {
		return Outcome{AWins: true}, nil
	}
	return Outcome{BWins: true}, nil
}

func beats(a, b models.Gesture) bool {
	switch a {
	case models.GestureRock:
		return b == models.GestureScissors
	case models.GesturePaper:
		return b == models.GestureRock
	case models.GestureScissors:
		return b == models.GesturePaper
	}
	return false
}

// resolveOutcome turns a creator/participant gesture pair into the persisted
// game outcome, applying the coin flip for the scissors/scissors draw.
func resolveOutcome(creator, participant models.Gesture, rng Rand) (models.GameOutcome, error) {
	out, err := Resolve(creator, participant)
	if err != nil {
		return "", err
	}

	switch {
	case out.AWins:
		return models.OutcomeCreatorWins, nil
	case out.BWins:
		return models.OutcomeParticipantWins, nil
	}

	switch out.Rule {
	case DrawBothLose:
		return models.OutcomeBothLose, nil
	case DrawBothWin:
		return models.OutcomeBothWin, nil
	}

	// Coin flip: the trained monkey decides who loses.
	if rng.Intn(2) == 0 {
		return models.OutcomeCreatorWins, nil
	}
	return models.OutcomeParticipantWins, nil
}
