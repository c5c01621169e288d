package app

import "truco/internal/domain"

// PlayerView is the public face of one seat.
type PlayerView struct {
	ID             string `json:"id"`
	Seat           int    `json:"seat"`
	Team           int    `json:"team"`
	CardsRemaining int    `json:"cards_remaining"`
}

// PublicView is a read-only projection of a match for one observer. It never
// contains another player's unplayed cards.
type PublicView struct {
	Players     []PlayerView         `json:"players"`
	Scores      [3]int               `json:"scores"`
	TargetScore int                  `json:"target_score"`
	HandsPlayed int                  `json:"hands_played"`
	WinnerTeam  int                  `json:"winner_team"`
	HandActive  bool                 `json:"hand_active"`
	Vira        *domain.Card         `json:"vira,omitempty"`
	Manilhas    []domain.Card        `json:"manilhas,omitempty"`
	LeadSeat    int                  `json:"lead_seat"`
	TurnSeat    int                  `json:"turn_seat"`
	Table       []domain.Play        `json:"table"`
	Tricks      []domain.TrickResult `json:"tricks"`
	Stake       domain.Stake         `json:"stake"`
	StakePoints int                  `json:"stake_points"`
	Hand        []domain.Card        `json:"hand,omitempty"` // forSeat's own cards
}

// View projects match state for the player at forSeat. Pass a negative seat
// for a spectator view with no private cards.
func View(m *domain.Match, forSeat int) PublicView {
	v := PublicView{
		Players:     make([]PlayerView, len(m.Players)),
		Scores:      m.Scores,
		TargetScore: m.TargetScore,
		HandsPlayed: m.HandsPlayed,
		WinnerTeam:  m.WinnerTeam,
	}
	for i, p := range m.Players {
		v.Players[i] = PlayerView{ID: p.ID, Seat: p.Seat, Team: p.Team}
	}

	h := m.Hand
	if h == nil {
		return v
	}

	for i := range v.Players {
		v.Players[i].CardsRemaining = len(h.Cards[i])
	}
	vira := h.Vira
	v.HandActive = h.Phase == domain.HandPlaying
	v.Vira = &vira
	v.Manilhas = domain.Manilhas(vira)
	v.LeadSeat = h.LeadSeat
	v.TurnSeat = h.TurnSeat
	v.Table = append([]domain.Play{}, h.Table...)
	v.Tricks = append([]domain.TrickResult{}, h.Tricks...)
	v.Stake = h.Stake
	v.StakePoints = h.Stake.SettledPoints()
	if forSeat >= 0 && forSeat < len(h.Cards) {
		v.Hand = append([]domain.Card{}, h.Cards[forSeat]...)
	}
	return v
}
