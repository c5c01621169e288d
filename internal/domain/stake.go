package domain

// StakeTier is one step of the escalating stakes ladder.
type StakeTier int

const (
	StakeNone StakeTier = iota
	StakeTruco
	StakeSix
	StakeNine
	StakeTwelve
)

// Points returns the hand value won at this tier.
func (t StakeTier) Points() int {
	switch t {
	case StakeTruco:
		return 3
	case StakeSix:
		return 6
	case StakeNine:
		return 9
	case StakeTwelve:
		return 12
	default:
		return 1
	}
}

// String names the tier for labels and logs.
func (t StakeTier) String() string {
	switch t {
	case StakeTruco:
		return "truco"
	case StakeSix:
		return "six"
	case StakeNine:
		return "nine"
	case StakeTwelve:
		return "twelve"
	default:
		return "none"
	}
}

// Stake tracks the hand's current tier and any open call. A raise moves the
// tier up one step immediately; until the opposing team answers, the raised
// tier is provisional and a decline pays out the pre-raise value.
type Stake struct {
	Tier           StakeTier `json:"tier"`
	LastRaiserTeam int       `json:"last_raiser_team"` // 0 before the first call
	AwaitingTeam   int       `json:"awaiting_team"`    // team that must respond, 0 when settled
}

// Pending reports whether a call is awaiting a response.
func (s *Stake) Pending() bool { return s.AwaitingTeam != 0 }

// Call raises the stake one tier on behalf of team. A team cannot raise its
// own open call, and while a response is pending only the awaited team may
// counter-raise.
func (s *Stake) Call(team int) error {
	if s.Tier == StakeTwelve {
		return ErrAlreadyAtMaxTier
	}
	if s.LastRaiserTeam == team {
		return ErrNotYourTurnToRaise
	}
	if s.Pending() && s.AwaitingTeam != team {
		return ErrNotYourTurnToRaise
	}
	s.Tier++
	s.LastRaiserTeam = team
	s.AwaitingTeam = opposingTeam(team)
	return nil
}

// Accept settles the open call: the hand continues at the raised tier.
func (s *Stake) Accept(team int) error {
	if !s.Pending() {
		return ErrNoPendingCall
	}
	if s.AwaitingTeam != team {
		return ErrNotYourTurnToRaise
	}
	s.AwaitingTeam = 0
	return nil
}

// Decline folds the hand to the calling team. It returns the winning team and
// the points awarded, which is the pre-raise tier's value.
func (s *Stake) Decline(team int) (winnerTeam, points int, err error) {
	if !s.Pending() {
		return 0, 0, ErrNoPendingCall
	}
	if s.AwaitingTeam != team {
		return 0, 0, ErrNotYourTurnToRaise
	}
	winnerTeam = opposingTeam(team)
	points = (s.Tier - 1).Points()
	s.AwaitingTeam = 0
	return winnerTeam, points, nil
}

// SettledPoints is the value the hand is currently worth if it runs to
// completion: the current tier, or the pre-raise tier while a call is open.
func (s *Stake) SettledPoints() int {
	if s.Pending() {
		return (s.Tier - 1).Points()
	}
	return s.Tier.Points()
}

func opposingTeam(team int) int {
	if team == 1 {
		return 2
	}
	return 1
}
