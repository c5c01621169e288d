package nakama

import (
	"truco/internal/app"
	"truco/internal/domain"
)

// CardMsg is the wire form of a card. Display is derived server-side so
// clients never have to know the ranking rules.
type CardMsg struct {
	Suit    int    `json:"suit"`
	Rank    int    `json:"rank"`
	Display string `json:"display"`
}

func toCardMsg(c domain.Card) CardMsg {
	return CardMsg{Suit: int(c.Suit), Rank: int(c.Rank), Display: c.String()}
}

func fromCardMsg(m CardMsg) domain.Card {
	return domain.Card{Suit: domain.Suit(m.Suit), Rank: domain.Rank(m.Rank)}
}

func toCardMsgs(cards []domain.Card) []CardMsg {
	out := make([]CardMsg, len(cards))
	for i, c := range cards {
		out[i] = toCardMsg(c)
	}
	return out
}

// PlayCardRequest is the OpPlayCard payload.
type PlayCardRequest struct {
	Card CardMsg `json:"card"`
}

// PlayerStateMsg is one seat in the broadcast match snapshot.
type PlayerStateMsg struct {
	UserID         string `json:"user_id"`
	Seat           int    `json:"seat"`
	Team           int    `json:"team"`
	IsOwner        bool   `json:"is_owner"`
	DisplayName    string `json:"display_name"`
	CardsRemaining int    `json:"cards_remaining"`
}

// MatchStateMsg is the public snapshot broadcast on joins and leaves.
type MatchStateMsg struct {
	Seats       []string         `json:"seats"`
	OwnerSeat   int              `json:"owner_seat"`
	Mode        string           `json:"mode"`
	Variant     string           `json:"variant"`
	Playing     bool             `json:"playing"`
	Players     []PlayerStateMsg `json:"players"`
	Scores      [3]int           `json:"scores"`
	TargetScore int              `json:"target_score"`
	TurnSeat    int              `json:"turn_seat"`
	Vira        *CardMsg         `json:"vira,omitempty"`
	StakePoints int              `json:"stake_points"`
}

// HandDealtMsg is sent privately to each player after a deal.
type HandDealtMsg struct {
	Seat  int       `json:"seat"`
	Cards []CardMsg `json:"cards"`
}

// HandStartedMsg announces the public face of a fresh hand.
type HandStartedMsg struct {
	Vira      CardMsg   `json:"vira"`
	Manilhas  []CardMsg `json:"manilhas"`
	LeadSeat  int       `json:"lead_seat"`
	HandSizes []int     `json:"hand_sizes"`
}

type CardPlayedMsg struct {
	Seat         int     `json:"seat"`
	Card         CardMsg `json:"card"`
	NextTurnSeat int     `json:"next_turn_seat"`
}

type PlayMsg struct {
	Seat int     `json:"seat"`
	Card CardMsg `json:"card"`
}

type TrickResolvedMsg struct {
	Plays        []PlayMsg `json:"plays"`
	WinnerSeat   int       `json:"winner_seat"`
	WinnerTeam   int       `json:"winner_team"`
	Tied         bool      `json:"tied"`
	NextTurnSeat int       `json:"next_turn_seat"`
}

type StakeRaisedMsg struct {
	Seat         int    `json:"seat"`
	Team         int    `json:"team"`
	Tier         string `json:"tier"`
	Points       int    `json:"points"`
	AwaitingTeam int    `json:"awaiting_team"`
}

type StakeAcceptedMsg struct {
	Team   int `json:"team"`
	Points int `json:"points"`
}

type StakeDeclinedMsg struct {
	Team int `json:"team"`
}

type HandEndedMsg struct {
	WinnerTeam int    `json:"winner_team"`
	Points     int    `json:"points"`
	Scores     [3]int `json:"scores"`
}

type MatchEndedMsg struct {
	WinnerTeam int    `json:"winner_team"`
	Scores     [3]int `json:"scores"`
}

// GameErrorMsg is sent to the offending player when a move is rejected.
type GameErrorMsg struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func trickResolvedMsg(p app.TrickResolvedPayload) TrickResolvedMsg {
	plays := make([]PlayMsg, len(p.Trick.Plays))
	for i, play := range p.Trick.Plays {
		plays[i] = PlayMsg{Seat: play.Seat, Card: toCardMsg(play.Card)}
	}
	return TrickResolvedMsg{
		Plays:        plays,
		WinnerSeat:   p.Trick.WinnerSeat,
		WinnerTeam:   p.Trick.WinnerTeam,
		Tied:         p.Trick.Tied(),
		NextTurnSeat: p.NextTurnSeat,
	}
}
