package bot

import "truco/internal/domain"

// Action is the kind of move a bot decided on.
type Action int

const (
	ActionPlay Action = iota
	ActionRaise
	ActionAccept
	ActionDecline
)

// Move represents the decision made by the AI.
type Move struct {
	Action Action
	Card   domain.Card // set when Action is ActionPlay
}

// Brain is the interface that all bot strategies must implement.
type Brain interface {
	CalculateMove(m *domain.Match, seat int) (Move, error)
}
