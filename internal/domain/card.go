package domain

import (
	"fmt"
	"math/rand"
)

// Suit is one of the four Spanish-deck suits. Order of declaration matches
// the manilha tier (clubs strongest, diamonds weakest).
type Suit int

const (
	Diamonds Suit = iota
	Spades
	Hearts
	Clubs
)

// String returns the suit symbol used in display forms.
func (s Suit) String() string {
	switch s {
	case Diamonds:
		return "♦"
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Rank is a card's face value. The deck uses 1 (ace) through 7 plus the
// court cards queen (10), jack (11) and king (12); 8 and 9 do not exist.
type Rank int

const (
	RankAce   Rank = 1
	RankQueen Rank = 10
	RankJack  Rank = 11
	RankKing  Rank = 12
)

// deckRanks is the canonical rank order used when building a fresh deck.
var deckRanks = []Rank{1, 2, 3, 4, 5, 6, 7, 10, 11, 12}

// Card is an immutable suit/rank pair. Display text is always derived from
// these two fields, never stored.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// String returns the display form, e.g. "A♦" or "7♣".
func (c Card) String() string {
	var r string
	switch c.Rank {
	case RankAce:
		r = "A"
	case RankQueen:
		r = "Q"
	case RankJack:
		r = "J"
	case RankKing:
		r = "K"
	default:
		r = fmt.Sprintf("%d", c.Rank)
	}
	return r + c.Suit.String()
}

// DeckSize is the number of cards in a full truco deck.
const DeckSize = 40

// NewDeck returns the 40-card deck in canonical order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for s := Diamonds; s <= Clubs; s++ {
		for _, r := range deckRanks {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck using the provided rng.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// HandSize is the number of cards dealt to each player per hand.
const HandSize = 3

// Deal splits a shuffled deck into per-seat hands plus the vira. Cards go to
// seats round-robin in seat order, the next card becomes the vira, the rest
// is returned unused.
func Deal(deck []Card, numPlayers int) (hands [][]Card, vira Card, rest []Card, err error) {
	need := HandSize*numPlayers + 1
	if len(deck) < need {
		return nil, Card{}, nil, ErrInsufficientCards
	}

	hands = make([][]Card, numPlayers)
	for i := range hands {
		hands[i] = make([]Card, 0, HandSize)
	}
	idx := 0
	for round := 0; round < HandSize; round++ {
		for seat := 0; seat < numPlayers; seat++ {
			hands[seat] = append(hands[seat], deck[idx])
			idx++
		}
	}
	vira = deck[idx]
	rest = deck[idx+1:]
	return hands, vira, rest, nil
}

// removeCard returns hand without the given card, moving exactly one copy out.
// The second return reports whether the card was present.
func removeCard(hand []Card, c Card) ([]Card, bool) {
	for i, h := range hand {
		if h == c {
			out := make([]Card, 0, len(hand)-1)
			out = append(out, hand[:i]...)
			out = append(out, hand[i+1:]...)
			return out, true
		}
	}
	return hand, false
}
