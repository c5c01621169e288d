package domain

import "errors"

// Caller-input errors. A rejected operation returns one of these and leaves
// match state exactly as it was.
var (
	ErrCardNotInHand   = errors.New("card not in hand")
	ErrNotPlayersTurn  = errors.New("not player's turn")
	ErrNotYourTurn     = errors.New("call not allowed off turn")
	ErrCallPending     = errors.New("stake call awaiting response")
	ErrAlreadyAtMaxTier   = errors.New("stake already at max tier")
	ErrNotYourTurnToRaise = errors.New("team may not raise now")
	ErrNoPendingCall      = errors.New("no stake call pending")
	ErrMatchAlreadyFinished = errors.New("match already finished")
	ErrHandNotComplete      = errors.New("hand still in progress")
)

// Internal precondition violations. These should be unreachable through the
// public API; seeing one means a state-machine bug upstream.
var (
	ErrIncompleteTrick   = errors.New("trick has fewer than two plays")
	ErrInsufficientCards = errors.New("deck too small to deal")
)
