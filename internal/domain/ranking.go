package domain

// ManilhaRank returns the trump rank fixed by the vira: the numeric successor
// of the vira's rank, with king wrapping back to ace. The face values skip
// 8 and 9, so 7's successor is the queen (10).
func ManilhaRank(vira Card) Rank {
	switch vira.Rank {
	case 7:
		return RankQueen
	case RankKing:
		return RankAce
	default:
		return vira.Rank + 1
	}
}

// Manilhas returns the four trump cards for the given vira, one per suit.
func Manilhas(vira Card) []Card {
	rank := ManilhaRank(vira)
	return []Card{
		{Suit: Diamonds, Rank: rank},
		{Suit: Spades, Rank: rank},
		{Suit: Hearts, Rank: rank},
		{Suit: Clubs, Rank: rank},
	}
}

// manilhaSuitOrder ranks suits within the trump tier: clubs is the single
// strongest card in the game, then hearts, spades, diamonds.
func manilhaSuitOrder(s Suit) int {
	switch s {
	case Clubs:
		return 4
	case Hearts:
		return 3
	case Spades:
		return 2
	default:
		return 1
	}
}

// rankOrder maps a non-trump rank to its strength: 3 strongest, 4 weakest.
var rankOrder = map[Rank]int{
	3: 10, 2: 9, RankAce: 8, RankKing: 7, RankJack: 6, RankQueen: 5,
	7: 4, 6: 3, 5: 2, 4: 1,
}

// Strength returns a card's total-order position for the hand fixed by
// manilha. Trump cards score above 100 and are ordered by suit; all other
// cards score below 100 and suits never break their ties.
func Strength(c Card, manilha Rank) int {
	if c.Rank == manilha {
		return 100 + manilhaSuitOrder(c.Suit)
	}
	return rankOrder[c.Rank]
}

// Compare orders two cards under the hand's manilha. It returns a positive
// value when a beats b, negative when b beats a, and zero on a genuine tie
// (equal non-trump ranks in different suits).
func Compare(a, b Card, manilha Rank) int {
	sa, sb := Strength(a, manilha), Strength(b, manilha)
	switch {
	case sa > sb:
		return 1
	case sa < sb:
		return -1
	default:
		return 0
	}
}
