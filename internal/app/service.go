package app

import (
	"math/rand"
	"time"

	"truco/internal/domain"
)

// Service contains truco use-cases operating on match state. It owns the rng
// used for shuffling so tests can deal deterministic hands.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with the provided rng or a time-seeded default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

// NewMatch fixes players, seats and teams for a new match.
func (s *Service) NewMatch(players []domain.Player, targetScore int) (*domain.Match, error) {
	return domain.NewMatch(players, targetScore)
}

// DealHand deals the next hand and emits a private hand_dealt event per
// player plus a public hand_started event.
func (s *Service) DealHand(m *domain.Match) ([]Event, error) {
	if err := m.DealHand(s.rng); err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(m.Players)+1)
	sizes := make([]int, len(m.Players))
	for _, p := range m.Players {
		cards := append([]domain.Card{}, m.Hand.Cards[p.Seat]...)
		sizes[p.Seat] = len(cards)
		events = append(events, Event{
			Kind: EventHandDealt,
			Payload: HandDealtPayload{
				PlayerID: p.ID,
				Seat:     p.Seat,
				Cards:    cards,
			},
			Recipients: []string{p.ID},
		})
	}
	events = append(events, Event{
		Kind: EventHandStarted,
		Payload: HandStartedPayload{
			Vira:      m.Hand.Vira,
			Manilhas:  domain.Manilhas(m.Hand.Vira),
			LeadSeat:  m.Hand.LeadSeat,
			HandSizes: sizes,
		},
	})
	return events, nil
}

// PlayCard applies one play and emits the resulting events.
func (s *Service) PlayCard(m *domain.Match, seat int, card domain.Card) ([]Event, error) {
	res, err := m.PlayCard(seat, card)
	if err != nil {
		return nil, err
	}

	events := []Event{{
		Kind: EventCardPlayed,
		Payload: CardPlayedPayload{
			Seat:         seat,
			Card:         card,
			NextTurnSeat: res.NextTurnSeat,
		},
	}}
	if res.Trick != nil {
		events = append(events, Event{
			Kind: EventTrickResolved,
			Payload: TrickResolvedPayload{
				Trick:        *res.Trick,
				NextTurnSeat: res.NextTurnSeat,
			},
		})
	}
	return append(events, s.settlementEvents(m, res)...), nil
}

// CallRaise raises the stake for the player at seat.
func (s *Service) CallRaise(m *domain.Match, seat int) ([]Event, error) {
	tier, err := m.CallRaise(seat)
	if err != nil {
		return nil, err
	}
	team := domain.TeamOfSeat(seat)
	return []Event{{
		Kind: EventStakeRaised,
		Payload: StakeRaisedPayload{
			Seat:         seat,
			Team:         team,
			Tier:         tier,
			TierName:     tier.String(),
			Points:       tier.Points(),
			AwaitingTeam: m.Hand.Stake.AwaitingTeam,
		},
	}}, nil
}

// Accept settles the open call at the raised tier.
func (s *Service) Accept(m *domain.Match, seat int) ([]Event, error) {
	tier, err := m.Accept(seat)
	if err != nil {
		return nil, err
	}
	return []Event{{
		Kind: EventStakeAccepted,
		Payload: StakeAcceptedPayload{
			Team:   domain.TeamOfSeat(seat),
			Tier:   tier,
			Points: tier.Points(),
		},
	}}, nil
}

// Decline folds the hand to the calling team.
func (s *Service) Decline(m *domain.Match, seat int) ([]Event, error) {
	res, err := m.Decline(seat)
	if err != nil {
		return nil, err
	}
	events := []Event{{
		Kind:    EventStakeDeclined,
		Payload: StakeDeclinedPayload{Team: domain.TeamOfSeat(seat)},
	}}
	return append(events, s.settlementEvents(m, res)...), nil
}

// Winner reports the winning team once the match is decided.
func (s *Service) Winner(m *domain.Match) (int, bool) {
	return m.Winner()
}

// ForceFold concedes the hand on behalf of a team, for outer-layer
// disconnect or timeout policy.
func (s *Service) ForceFold(m *domain.Match, team int) ([]Event, error) {
	res, err := m.ForceFold(team)
	if err != nil {
		return nil, err
	}
	return s.settlementEvents(m, res), nil
}

// settlementEvents emits hand_ended and match_ended when a play result
// concluded the hand or the match.
func (s *Service) settlementEvents(m *domain.Match, res domain.PlayResult) []Event {
	if res.HandWinnerTeam == 0 {
		return nil
	}
	events := []Event{{
		Kind: EventHandEnded,
		Payload: HandEndedPayload{
			WinnerTeam: res.HandWinnerTeam,
			Points:     res.PointsAwarded,
			Scores:     m.Scores,
		},
	}}
	if res.MatchWinnerTeam != 0 {
		events = append(events, Event{
			Kind: EventMatchEnded,
			Payload: MatchEndedPayload{
				WinnerTeam: res.MatchWinnerTeam,
				Scores:     m.Scores,
			},
		})
	}
	return events
}
