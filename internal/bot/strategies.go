package bot

import (
	"errors"

	"truco/internal/domain"
)

// Hand strength thresholds, summed over domain.Strength of the cards still
// held. A manilha alone clears raiseThreshold.
const (
	raiseThreshold  = 100
	acceptThreshold = 14
)

var errNoCards = errors.New("bot has no cards to play")

// StandardBot plays the cheapest card that currently takes the trick and
// answers stake calls from raw hand strength.
type StandardBot struct{}

func (b *StandardBot) CalculateMove(m *domain.Match, seat int) (Move, error) {
	h := m.Hand
	if h == nil {
		return Move{}, errors.New("no hand in progress")
	}
	team := domain.TeamOfSeat(seat)

	// Answer an open call first.
	if h.Stake.Pending() && h.Stake.AwaitingTeam == team {
		strength := handStrength(h, seat)
		switch {
		case strength >= raiseThreshold && h.Stake.Tier < domain.StakeTwelve:
			return Move{Action: ActionRaise}, nil
		case strength >= acceptThreshold:
			return Move{Action: ActionAccept}, nil
		default:
			return Move{Action: ActionDecline}, nil
		}
	}

	card, err := b.chooseCard(h, seat)
	if err != nil {
		return Move{}, err
	}
	return Move{Action: ActionPlay, Card: card}, nil
}

// chooseCard picks the weakest card that beats the table, the strongest
// non-trump on an empty table, and the weakest card when the trick is lost.
func (b *StandardBot) chooseCard(h *domain.Hand, seat int) (domain.Card, error) {
	cards := h.Cards[seat]
	if len(cards) == 0 {
		return domain.Card{}, errNoCards
	}

	if len(h.Table) == 0 {
		if c, ok := strongestBelowTrump(cards, h.Manilha); ok {
			return c, nil
		}
		return weakest(cards, h.Manilha), nil
	}

	best := h.Table[0].Card
	for _, p := range h.Table[1:] {
		if domain.Compare(p.Card, best, h.Manilha) > 0 {
			best = p.Card
		}
	}

	var winner domain.Card
	found := false
	for _, c := range cards {
		if domain.Compare(c, best, h.Manilha) <= 0 {
			continue
		}
		if !found || domain.Strength(c, h.Manilha) < domain.Strength(winner, h.Manilha) {
			winner = c
			found = true
		}
	}
	if found {
		return winner, nil
	}
	return weakest(cards, h.Manilha), nil
}

func handStrength(h *domain.Hand, seat int) int {
	total := 0
	for _, c := range h.Cards[seat] {
		total += domain.Strength(c, h.Manilha)
	}
	return total
}

func weakest(cards []domain.Card, manilha domain.Rank) domain.Card {
	out := cards[0]
	for _, c := range cards[1:] {
		if domain.Strength(c, manilha) < domain.Strength(out, manilha) {
			out = c
		}
	}
	return out
}

func strongestBelowTrump(cards []domain.Card, manilha domain.Rank) (domain.Card, bool) {
	var out domain.Card
	found := false
	for _, c := range cards {
		s := domain.Strength(c, manilha)
		if s >= 100 {
			continue
		}
		if !found || s > domain.Strength(out, manilha) {
			out = c
			found = true
		}
	}
	return out, found
}
