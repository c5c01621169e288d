package app

import "truco/internal/domain"

// EventKind identifies emitted engine events for dispatch by the outer layer.
type EventKind string

const (
	EventHandDealt     EventKind = "hand_dealt" // targeted, carries private cards
	EventHandStarted   EventKind = "hand_started"
	EventCardPlayed    EventKind = "card_played"
	EventTrickResolved EventKind = "trick_resolved"
	EventStakeRaised   EventKind = "stake_raised"
	EventStakeAccepted EventKind = "stake_accepted"
	EventStakeDeclined EventKind = "stake_declined"
	EventHandEnded     EventKind = "hand_ended"
	EventMatchEnded    EventKind = "match_ended"
)

// Event is an engine event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // player IDs; empty means broadcast
}

// HandDealtPayload is sent privately to one player after a deal.
type HandDealtPayload struct {
	PlayerID string        `json:"player_id"`
	Seat     int           `json:"seat"`
	Cards    []domain.Card `json:"cards"`
}

// HandStartedPayload announces the public face of a fresh hand.
type HandStartedPayload struct {
	Vira      domain.Card   `json:"vira"`
	Manilhas  []domain.Card `json:"manilhas"`
	LeadSeat  int           `json:"lead_seat"`
	HandSizes []int         `json:"hand_sizes"`
}

type CardPlayedPayload struct {
	Seat         int         `json:"seat"`
	Card         domain.Card `json:"card"`
	NextTurnSeat int         `json:"next_turn_seat"`
}

type TrickResolvedPayload struct {
	Trick        domain.TrickResult `json:"trick"`
	NextTurnSeat int                `json:"next_turn_seat"`
}

type StakeRaisedPayload struct {
	Seat         int              `json:"seat"`
	Team         int              `json:"team"`
	Tier         domain.StakeTier `json:"tier"`
	TierName     string           `json:"tier_name"`
	Points       int              `json:"points"`
	AwaitingTeam int              `json:"awaiting_team"`
}

type StakeAcceptedPayload struct {
	Team   int              `json:"team"`
	Tier   domain.StakeTier `json:"tier"`
	Points int              `json:"points"`
}

// StakeDeclinedPayload reports the fold; the hand settlement itself arrives
// in the accompanying hand_ended event.
type StakeDeclinedPayload struct {
	Team int `json:"team"`
}

type HandEndedPayload struct {
	WinnerTeam int    `json:"winner_team"`
	Points     int    `json:"points"`
	Scores     [3]int `json:"scores"`
}

type MatchEndedPayload struct {
	WinnerTeam int    `json:"winner_team"`
	Scores     [3]int `json:"scores"`
}
