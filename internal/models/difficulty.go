package models

// Difficulty rates how extreme a dare is. The set is ordered; Ordinal exposes
// the position for range filtering.
type Difficulty string

const (
	DifficultyTitillating Difficulty = "titillating"
	DifficultyArousing    Difficulty = "arousing"
	DifficultyExplicit    Difficulty = "explicit"
	DifficultyEdgy        Difficulty = "edgy"
	DifficultyHardcore    Difficulty = "hardcore"
)

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	return d.Ordinal() != 0
}

// Ordinal returns the 1-based rank of the difficulty, or 0 if unknown.
func (d Difficulty) Ordinal() int {
	switch d {
	case DifficultyTitillating:
		return 1
	case DifficultyArousing:
		return 2
	case DifficultyExplicit:
		return 3
	case DifficultyEdgy:
		return 4
	case DifficultyHardcore:
		return 5
	}
	return 0
}
