package domain

// Play is one card laid on the table by the player at Seat.
type Play struct {
	Seat int  `json:"seat"`
	Card Card `json:"card"`
}

// TrickResult records a resolved trick. WinnerSeat is -1 when the trick tied.
type TrickResult struct {
	Plays      []Play `json:"plays"`
	WinnerSeat int    `json:"winner_seat"`
	WinnerTeam int    `json:"winner_team"` // 0 on a tie
}

// Tied reports whether no single player won the trick.
func (t TrickResult) Tied() bool { return t.WinnerSeat < 0 }

// ResolveTrick determines the winning play of a complete trick. It folds left
// over the plays keeping the current best: a strictly stronger card takes over
// and clears any standing tie, an equal-strength card against the current best
// marks the trick tied. A tie yields WinnerSeat -1.
func ResolveTrick(plays []Play, manilha Rank) (TrickResult, error) {
	if len(plays) < 2 {
		return TrickResult{}, ErrIncompleteTrick
	}

	best := plays[0]
	tied := false
	for _, p := range plays[1:] {
		switch Compare(p.Card, best.Card, manilha) {
		case 1:
			best = p
			tied = false
		case 0:
			tied = true
		}
	}

	result := TrickResult{Plays: plays, WinnerSeat: -1}
	if !tied {
		result.WinnerSeat = best.Seat
		result.WinnerTeam = TeamOfSeat(best.Seat)
	}
	return result, nil
}
