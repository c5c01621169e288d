package bot

import "truco/internal/domain"

// Agent represents an autonomous bot player seated at a table.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// NewAgent builds an agent for the given bot user id with its configured
// identity and the standard strategy.
func NewAgent(botID string) (*Agent, error) {
	return &Agent{
		ID:       botID,
		Name:     GetBotUsername(botID),
		Strategy: &StandardBot{},
	}, nil
}

// Play asks the agent to calculate its move for the given seat.
func (a *Agent) Play(m *domain.Match, seat int) (Move, error) {
	return a.Strategy.CalculateMove(m, seat)
}
