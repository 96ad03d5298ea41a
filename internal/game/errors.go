package game

import "errors"

// Typed rejections surfaced by the state machine and resolvers. Handlers map
// these 1:1 onto {"error": string} responses; nothing else escapes the
// machine boundary. The blocked-pair message is deliberately generic so it
// never confirms who blocked whom.
var (
	ErrInvalidGesture  = errors.New("invalid gesture")
	ErrBlockedPair     = errors.New("action not permitted due to user blocking")
	ErrAlreadyClaimed  = errors.New("no longer available")
	ErrAlreadyResolved = errors.New("already resolved")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrInvalidState    = errors.New("action not allowed in the current game state")
	ErrNotFound        = errors.New("not found")
	ErrExpired         = errors.New("claim link has expired")
)
