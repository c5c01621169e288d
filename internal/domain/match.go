package domain

import (
	"fmt"
	"math/rand"
)

// DefaultTargetScore is the score a team must reach to win the match.
const DefaultTargetScore = 12

// Player is a fixed participant: seat position and team never change for the
// duration of the match.
type Player struct {
	ID   string `json:"id"`
	Seat int    `json:"seat"`
	Team int    `json:"team"`
}

// Match runs successive hands and accumulates team scores until one team
// reaches the target. All mutating methods must be applied sequentially; the
// match holds no lock of its own.
type Match struct {
	Players     []Player `json:"players"` // indexed by seat
	TargetScore int      `json:"target_score"`
	Scores      [3]int   `json:"scores"` // indexed by team (1 and 2)
	LeadSeat    int      `json:"lead_seat"`
	Hand        *Hand    `json:"hand"` // nil before the first deal
	HandsPlayed int      `json:"hands_played"`
	WinnerTeam  int      `json:"winner_team"` // 0 while the match runs
}

// NewMatch fixes seats and teams for a two- or four-player match. Seats must
// be 0..n-1 in order with teams alternating by seat parity.
func NewMatch(players []Player, targetScore int) (*Match, error) {
	n := len(players)
	if n != 2 && n != 4 {
		return nil, fmt.Errorf("match needs 2 or 4 players, got %d", n)
	}
	for i, p := range players {
		if p.Seat != i {
			return nil, fmt.Errorf("player %q at index %d has seat %d", p.ID, i, p.Seat)
		}
		if p.Team != TeamOfSeat(i) {
			return nil, fmt.Errorf("player %q at seat %d must be on team %d", p.ID, i, TeamOfSeat(i))
		}
	}
	if targetScore <= 0 {
		targetScore = DefaultTargetScore
	}
	return &Match{Players: players, TargetScore: targetScore}, nil
}

// Finished reports whether a team has reached the target score.
func (m *Match) Finished() bool { return m.WinnerTeam != 0 }

// Winner returns the winning team once the match is over.
func (m *Match) Winner() (int, bool) {
	if m.WinnerTeam == 0 {
		return 0, false
	}
	return m.WinnerTeam, true
}

// DealHand builds, shuffles and deals a fresh deck for the next hand. The
// lead rotates one seat per hand.
func (m *Match) DealHand(rng *rand.Rand) error {
	if m.Finished() {
		return ErrMatchAlreadyFinished
	}
	if m.Hand != nil && m.Hand.Phase != HandComplete {
		return ErrHandNotComplete
	}

	deck := ShuffleDeck(NewDeck(), rng)
	hands, vira, _, err := Deal(deck, len(m.Players))
	if err != nil {
		return err
	}

	lead := m.LeadSeat
	if m.HandsPlayed > 0 {
		lead = (m.LeadSeat + 1) % len(m.Players)
	}
	m.LeadSeat = lead
	m.Hand = newHand(hands, vira, lead)
	return nil
}

// PlayResult describes everything one accepted play caused.
type PlayResult struct {
	NextTurnSeat    int
	Trick           *TrickResult // set when the play completed a trick
	HandWinnerTeam  int          // 0 unless the hand concluded
	PointsAwarded   int
	MatchWinnerTeam int // 0 unless the match concluded
}

// PlayCard applies one card play for the given seat.
func (m *Match) PlayCard(seat int, c Card) (PlayResult, error) {
	if m.Finished() {
		return PlayResult{}, ErrMatchAlreadyFinished
	}
	if m.Hand == nil {
		return PlayResult{}, ErrHandNotComplete
	}
	trick, err := m.Hand.PlayCard(seat, c)
	if err != nil {
		return PlayResult{}, err
	}

	res := PlayResult{NextTurnSeat: m.Hand.TurnSeat, Trick: trick}
	if m.Hand.Phase == HandComplete {
		res.HandWinnerTeam = m.Hand.WinnerTeam
		res.PointsAwarded = m.Hand.Points
		m.settleHand()
		res.MatchWinnerTeam = m.WinnerTeam
	}
	return res, nil
}

// CallRaise raises the stake on behalf of the player at seat. A fresh call is
// only accepted on the caller's turn; a counter-raise answers an open call and
// is team-bound instead.
func (m *Match) CallRaise(seat int) (StakeTier, error) {
	if m.Finished() {
		return StakeNone, ErrMatchAlreadyFinished
	}
	if m.Hand == nil || m.Hand.Phase != HandPlaying {
		return StakeNone, ErrHandNotComplete
	}
	if !m.Hand.Stake.Pending() && seat != m.Hand.TurnSeat {
		return StakeNone, ErrNotYourTurn
	}
	if err := m.Hand.Stake.Call(TeamOfSeat(seat)); err != nil {
		return StakeNone, err
	}
	return m.Hand.Stake.Tier, nil
}

// Accept settles the open call at the raised tier.
func (m *Match) Accept(seat int) (StakeTier, error) {
	if m.Finished() {
		return StakeNone, ErrMatchAlreadyFinished
	}
	if m.Hand == nil || m.Hand.Phase != HandPlaying {
		return StakeNone, ErrHandNotComplete
	}
	if err := m.Hand.Stake.Accept(TeamOfSeat(seat)); err != nil {
		return StakeNone, err
	}
	return m.Hand.Stake.Tier, nil
}

// Decline folds the hand to the calling team at the pre-raise value.
func (m *Match) Decline(seat int) (PlayResult, error) {
	if m.Finished() {
		return PlayResult{}, ErrMatchAlreadyFinished
	}
	if m.Hand == nil || m.Hand.Phase != HandPlaying {
		return PlayResult{}, ErrHandNotComplete
	}
	winnerTeam, points, err := m.Hand.Stake.Decline(TeamOfSeat(seat))
	if err != nil {
		return PlayResult{}, err
	}
	m.Hand.concede(winnerTeam, points)
	m.settleHand()
	return PlayResult{
		HandWinnerTeam:  winnerTeam,
		PointsAwarded:   points,
		MatchWinnerTeam: m.WinnerTeam,
	}, nil
}

// ForceFold concedes the current hand on behalf of team, the entry point for
// outer-layer disconnect or timeout policy. The opposing team is awarded the
// hand's settled value.
func (m *Match) ForceFold(team int) (PlayResult, error) {
	if m.Finished() {
		return PlayResult{}, ErrMatchAlreadyFinished
	}
	if m.Hand == nil || m.Hand.Phase != HandPlaying {
		return PlayResult{}, ErrHandNotComplete
	}
	winnerTeam := opposingTeam(team)
	points := m.Hand.Stake.SettledPoints()
	m.Hand.concede(winnerTeam, points)
	m.settleHand()
	return PlayResult{
		HandWinnerTeam:  winnerTeam,
		PointsAwarded:   points,
		MatchWinnerTeam: m.WinnerTeam,
	}, nil
}

// settleHand moves a completed hand's value onto the scoreboard and checks
// the terminal condition.
func (m *Match) settleHand() {
	h := m.Hand
	m.Scores[h.WinnerTeam] += h.Points
	m.HandsPlayed++
	if m.Scores[h.WinnerTeam] >= m.TargetScore {
		m.WinnerTeam = h.WinnerTeam
	}
}
