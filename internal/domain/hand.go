package domain

// TeamOfSeat maps a seat position to its team. Seats alternate teams, so
// partners sit across from each other in the four-player game.
func TeamOfSeat(seat int) int { return seat%2 + 1 }

// HandPhase is the lifecycle stage of one hand.
type HandPhase string

const (
	HandPlaying  HandPhase = "playing"
	HandComplete HandPhase = "complete"
)

// Hand is the state machine for a single hand: up to three tricks played at
// the stake fixed by the call ladder.
type Hand struct {
	Vira     Card   `json:"vira"`
	Manilha  Rank   `json:"manilha"`
	LeadSeat int    `json:"lead_seat"`
	TurnSeat int    `json:"turn_seat"`
	Cards    [][]Card `json:"cards"` // unplayed cards by seat
	Table    []Play        `json:"table"`  // current trick in play order
	Tricks   []TrickResult `json:"tricks"` // completed tricks
	Stake    Stake         `json:"stake"`
	Phase    HandPhase     `json:"phase"`
	WinnerTeam int `json:"winner_team"` // 0 until complete
	Points     int `json:"points"`      // value awarded once complete

	trickLead int // seat that led the trick currently on the table
}

func newHand(cards [][]Card, vira Card, leadSeat int) *Hand {
	return &Hand{
		Vira:      vira,
		Manilha:   ManilhaRank(vira),
		LeadSeat:  leadSeat,
		TurnSeat:  leadSeat,
		Cards:     cards,
		Phase:     HandPlaying,
		trickLead: leadSeat,
	}
}

func (h *Hand) numPlayers() int { return len(h.Cards) }

// nextSeat advances clockwise to the next seat still holding cards. Every
// seat holds cards mid-trick under correct progression, so the fallback of
// returning the input seat is unreachable.
func (h *Hand) nextSeat(seat int) int {
	n := h.numPlayers()
	for i := 1; i <= n; i++ {
		s := (seat + i) % n
		if len(h.Cards[s]) > 0 {
			return s
		}
	}
	return seat
}

// PlayCard moves a card from the seat's hand onto the table. When the trick
// is full it is resolved immediately and the returned TrickResult is non-nil.
// Rejected plays leave the hand untouched.
func (h *Hand) PlayCard(seat int, c Card) (*TrickResult, error) {
	if h.Phase != HandPlaying {
		return nil, ErrHandNotComplete
	}
	if h.Stake.Pending() {
		return nil, ErrCallPending
	}
	if seat != h.TurnSeat {
		return nil, ErrNotPlayersTurn
	}
	remaining, ok := removeCard(h.Cards[seat], c)
	if !ok {
		return nil, ErrCardNotInHand
	}

	// Single transition: the card leaves the hand and lands on the table.
	h.Cards[seat] = remaining
	h.Table = append(h.Table, Play{Seat: seat, Card: c})

	if len(h.Table) < h.numPlayers() {
		h.TurnSeat = h.nextSeat(seat)
		return nil, nil
	}

	result, err := ResolveTrick(h.Table, h.Manilha)
	if err != nil {
		return nil, err
	}
	h.Tricks = append(h.Tricks, result)
	h.Table = nil

	// The trick winner leads the next trick; a tied trick leaves the lead
	// with whoever led it.
	if !result.Tied() {
		h.trickLead = result.WinnerSeat
	}
	h.TurnSeat = h.trickLead

	h.concludeIfDecided()
	return &result, nil
}

// concludeIfDecided applies the hand-winner rules after a resolved trick:
// two trick wins take the hand; a tied first trick hands it to the winner of
// the second; a tied second trick hands it to the winner of the first; a hand
// tied all the way through goes to the lead player's team.
func (h *Hand) concludeIfDecided() {
	wins := map[int]int{}
	for _, t := range h.Tricks {
		if !t.Tied() {
			wins[t.WinnerTeam]++
		}
	}
	for team, n := range wins {
		if n >= 2 {
			h.conclude(team)
			return
		}
	}

	n := len(h.Tricks)
	if n >= 2 {
		first, second := h.Tricks[0], h.Tricks[1]
		switch {
		case first.Tied() && !second.Tied():
			h.conclude(second.WinnerTeam)
			return
		case first.Tied() && second.Tied():
			h.conclude(TeamOfSeat(h.LeadSeat))
			return
		case !first.Tied() && second.Tied():
			h.conclude(first.WinnerTeam)
			return
		}
	}
	if n >= 3 {
		third := h.Tricks[2]
		if !third.Tied() {
			h.conclude(third.WinnerTeam)
		} else {
			h.conclude(h.Tricks[0].WinnerTeam)
		}
		return
	}

	// Guard: if every hand is empty with no decision, the chain above missed
	// a case; close the hand rather than ask an empty seat to play.
	if n >= HandSize || h.allHandsEmpty() {
		h.conclude(TeamOfSeat(h.LeadSeat))
	}
}

func (h *Hand) allHandsEmpty() bool {
	for _, cards := range h.Cards {
		if len(cards) > 0 {
			return false
		}
	}
	return true
}

func (h *Hand) conclude(winnerTeam int) {
	h.Phase = HandComplete
	h.WinnerTeam = winnerTeam
	h.Points = h.Stake.SettledPoints()
}

// concede ends the hand in favor of winnerTeam at the given value, used for
// declined calls and forced folds.
func (h *Hand) concede(winnerTeam, points int) {
	h.Phase = HandComplete
	h.WinnerTeam = winnerTeam
	h.Points = points
}
