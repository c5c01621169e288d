package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"

	"truco/internal/app"
	"truco/internal/bot"
	"truco/internal/config"
	"truco/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// MatchLabel is the JSON label advertised for matchmaking queries.
type MatchLabel struct {
	Open    int    `json:"open"`
	Game    string `json:"game"`
	Phase   string `json:"phase"`
	Mode    string `json:"mode"`
	Variant string `json:"variant"`
}

// MatchState holds the authoritative runtime state for one truco table.
type MatchState struct {
	Seats     []string `json:"seats"` // user IDs, "" means empty
	OwnerSeat int      `json:"owner_seat"`
	Mode      string   `json:"mode"` // "1v1" or "2v2"
	Tick      int64    `json:"tick"`

	Presences map[string]runtime.Presence `json:"-"`
	App       *app.Service                `json:"-"`
	Match     *domain.Match               `json:"-"` // nil while in lobby

	BotsEnabled          bool                  `json:"bots_enabled"`
	BotMinDelay          int                   `json:"bot_min_delay"`
	BotMaxDelay          int                   `json:"bot_max_delay"`
	BotAutoFillDelay     int                   `json:"bot_auto_fill_delay"`
	BotWaitUntil         int64                 `json:"bot_wait_until"`
	LastSinglePlayerTick int64                 `json:"last_single_player_tick"`
	Bots                 map[string]*bot.Agent `json:"-"`
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetOccupiedSeatCount() int {
	return len(ms.Seats) - ms.GetOpenSeatsCount()
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !bot.IsBot(seat) {
			count++
		}
	}
	return count
}

func (ms *MatchState) seatOf(userID string) int {
	for i, id := range ms.Seats {
		if id == userID {
			return i
		}
	}
	return -1
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userID := seats[seatIndex]
	return userID != "" && !bot.IsBot(userID)
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1.
func findFirstHumanSeat(seats []string) int {
	for i, userID := range seats {
		if userID != "" && !bot.IsBot(userID) {
			return i
		}
	}
	return -1
}

func newMatchHandler() runtime.Match {
	return &matchHandler{}
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}

	mode := config.GetDefaultMode()
	if v, ok := params["mode"].(string); ok && (v == "1v1" || v == "2v2") {
		mode = v
	}
	seatCount := 4
	if mode == "1v1" {
		seatCount = 2
	}

	state := &MatchState{
		Seats:     make([]string, seatCount),
		OwnerSeat: -1,
		Mode:      mode,
		Presences: make(map[string]runtime.Presence),
		App:       app.NewService(nil),
		Bots:      make(map[string]*bot.Agent),
	}

	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok {
		if val, ok := env["truco_bots_enabled"]; ok {
			state.BotsEnabled = val == "true"
		}
		if val, ok := env["truco_bot_min_delay_sec"]; ok {
			if i, err := strconv.Atoi(val); err == nil {
				state.BotMinDelay = i
			}
		}
		if val, ok := env["truco_bot_max_delay_sec"]; ok {
			if i, err := strconv.Atoi(val); err == nil {
				state.BotMaxDelay = i
			}
		}
		if val, ok := env["truco_bot_auto_fill_delay_sec"]; ok {
			if i, err := strconv.Atoi(val); err == nil {
				state.BotAutoFillDelay = i
			}
		}
	}
	if state.BotMinDelay == 0 {
		state.BotMinDelay = 1
	}
	if state.BotMaxDelay == 0 {
		state.BotMaxDelay = 3
	}
	if state.BotAutoFillDelay == 0 {
		state.BotAutoFillDelay = config.GetBotAutoFillDelay()
	}

	tickRate := 1
	return state, tickRate, mh.labelString(state, logger)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	if matchState.GetOpenSeatsCount() <= 0 {
		// A bot seat can still be reclaimed before the first deal.
		hasBot := false
		if matchState.Match == nil {
			for _, seat := range matchState.Seats {
				if bot.IsBot(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "match full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		assigned := false
		for i, seatUserID := range matchState.Seats {
			if seatUserID == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}
		if !assigned && matchState.Match == nil {
			for i, seatUserID := range matchState.Seats {
				if bot.IsBot(seatUserID) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserID, p.GetUserId(), i)
					delete(matchState.Bots, seatUserID)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}
		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat was available.", p.GetUserId())
		}
	}

	if !isHumanSeat(matchState.Seats, matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats)
	}

	// Reconnecting players get a redacted view so they can recover the
	// in-progress hand.
	if matchState.Match != nil {
		for _, p := range presences {
			mh.sendView(matchState, dispatcher, logger, p)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)

	return matchState
}

// sendView sends a private match projection for the presence's seat. A
// presence without a seat receives the spectator view.
func (mh *matchHandler) sendView(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, presence runtime.Presence) {
	view := app.View(state.Match, state.seatOf(presence.GetUserId()))
	data, err := json.Marshal(view)
	if err != nil {
		logger.Error("sendView: Failed to marshal view: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpMatchView, data, []runtime.Presence{presence}, nil, true)
}

// MatchLeave frees seats and concedes the leaver's hand when a game is live.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		seat := matchState.seatOf(p.GetUserId())
		if seat < 0 {
			continue
		}

		// Disconnect policy: a live hand is conceded by the leaver's team.
		if matchState.Match != nil && !matchState.Match.Finished() {
			events, err := matchState.App.ForceFold(matchState.Match, domain.TeamOfSeat(seat))
			if err == nil {
				for _, ev := range events {
					mh.broadcastEvent(matchState, dispatcher, logger, ev)
				}
				mh.advanceHand(matchState, dispatcher, logger)
			}
		}

		matchState.Seats[seat] = ""
		logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), seat)
	}

	if !isHumanSeat(matchState.Seats, matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats)
	}

	if findFirstHumanSeat(matchState.Seats) == -1 {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartMatch:
			mh.handleStartMatch(matchState, dispatcher, logger, msg)
		case OpPlayCard:
			mh.handlePlayCard(matchState, dispatcher, logger, msg)
		case OpCallRaise:
			mh.handleMove(matchState, dispatcher, logger, msg, matchState.App.CallRaise)
		case OpAccept:
			mh.handleMove(matchState, dispatcher, logger, msg, matchState.App.Accept)
		case OpDecline:
			mh.handleMove(matchState, dispatcher, logger, msg, matchState.App.Decline)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(matchState, dispatcher, logger)
	}

	return matchState
}

func (mh *matchHandler) handleStartMatch(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderSeat := state.seatOf(msg.GetUserId())

	if senderSeat != state.OwnerSeat {
		logger.Warn("StartMatch: User %s tried to start but is not owner (owner_seat=%d)", msg.GetUserId(), state.OwnerSeat)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 403, "only the owner can start the match")
		return
	}
	if state.Match != nil && !state.Match.Finished() {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "match already running")
		return
	}
	if state.GetOpenSeatsCount() > 0 {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "table is not full")
		return
	}

	players := make([]domain.Player, len(state.Seats))
	for i, userID := range state.Seats {
		players[i] = domain.Player{ID: userID, Seat: i, Team: domain.TeamOfSeat(i)}
	}

	match, err := state.App.NewMatch(players, config.GetTargetScore())
	if err != nil {
		logger.Error("StartMatch: Failed to create match: %v", err)
		return
	}
	state.Match = match

	events, err := state.App.DealHand(match)
	if err != nil {
		logger.Error("StartMatch: Failed to deal: %v", err)
		state.Match = nil
		return
	}

	mh.updateLabel(state, dispatcher, logger)
	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
	logger.Info("StartMatch: Match started with %d players (mode=%s).", len(players), state.Mode)
}

func (mh *matchHandler) handlePlayCard(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderSeat := state.seatOf(msg.GetUserId())
	if state.Match == nil || senderSeat < 0 {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "no match in progress")
		return
	}

	var request PlayCardRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handlePlayCard: Invalid payload from %s: %v", msg.GetUserId(), err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "invalid payload")
		return
	}

	events, err := state.App.PlayCard(state.Match, senderSeat, fromCardMsg(request.Card))
	if err != nil {
		logger.Warn("handlePlayCard: User %s (seat %d) rejected: %v", msg.GetUserId(), senderSeat, err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}

	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
	mh.advanceHand(state, dispatcher, logger)
}

// handleMove runs a seat-only engine operation (raise, accept, decline).
func (mh *matchHandler) handleMove(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData, op func(*domain.Match, int) ([]app.Event, error)) {
	senderSeat := state.seatOf(msg.GetUserId())
	if state.Match == nil || senderSeat < 0 {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "no match in progress")
		return
	}

	events, err := op(state.Match, senderSeat)
	if err != nil {
		logger.Warn("handleMove: User %s (seat %d) rejected: %v", msg.GetUserId(), senderSeat, err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}

	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
	mh.advanceHand(state, dispatcher, logger)
}

// advanceHand deals the next hand once the current one has settled. Terminal
// matches go back to the lobby so the table can be restarted.
func (mh *matchHandler) advanceHand(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	m := state.Match
	if m == nil {
		return
	}
	if m.Finished() {
		state.Match = nil
		mh.updateLabel(state, dispatcher, logger)
		return
	}
	if m.Hand == nil || m.Hand.Phase != domain.HandComplete {
		return
	}

	events, err := state.App.DealHand(m)
	if err != nil {
		logger.Error("advanceHand: Failed to deal: %v", err)
		return
	}
	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) processBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// Auto-fill a solo-human lobby after the configured delay.
	if state.Match == nil {
		if state.GetHumanPlayerCount() == 1 {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
			}
			if state.Tick-state.LastSinglePlayerTick >= int64(state.BotAutoFillDelay) {
				added := false
				for i, seat := range state.Seats {
					if seat != "" {
						continue
					}
					identity := bot.GetBotIdentity(i)
					agent, err := bot.NewAgent(identity.UserID)
					if err != nil {
						logger.Error("processBots: Failed to create bot agent for %s: %v", identity.UserID, err)
						continue
					}
					state.Seats[i] = identity.UserID
					state.Bots[identity.UserID] = agent
					logger.Info("processBots: Added bot %s (%s) to seat %d", identity.Username, identity.UserID, i)
					added = true
				}
				if added {
					mh.updateLabel(state, dispatcher, logger)
					mh.broadcastMatchState(state, dispatcher, logger)
				}
				state.LastSinglePlayerTick = 0
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
		return
	}

	seat := mh.botSeatToAct(state)
	if seat < 0 {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := rand.Intn(state.BotMaxDelay-state.BotMinDelay+1) + state.BotMinDelay
		state.BotWaitUntil = state.Tick + int64(delay)
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	botID := state.Seats[seat]
	agent, exists := state.Bots[botID]
	if !exists {
		var err error
		agent, err = bot.NewAgent(botID)
		if err != nil {
			logger.Error("processBots: Failed to create fallback agent: %v", err)
			return
		}
		state.Bots[botID] = agent
	}

	move, err := agent.Play(state.Match, seat)
	if err != nil {
		logger.Error("processBots: Bot %s failed to calculate move: %v", botID, err)
		return
	}

	var events []app.Event
	switch move.Action {
	case bot.ActionPlay:
		events, err = state.App.PlayCard(state.Match, seat, move.Card)
	case bot.ActionRaise:
		events, err = state.App.CallRaise(state.Match, seat)
	case bot.ActionAccept:
		events, err = state.App.Accept(state.Match, seat)
	case bot.ActionDecline:
		events, err = state.App.Decline(state.Match, seat)
	}
	if err != nil {
		logger.Warn("processBots: Bot %s move rejected: %v", botID, err)
		return
	}
	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
	mh.advanceHand(state, dispatcher, logger)
}

// botSeatToAct returns the bot seat that owes the next action, or -1. While a
// stake call is pending the awaited team answers; otherwise the turn holder
// plays.
func (mh *matchHandler) botSeatToAct(state *MatchState) int {
	m := state.Match
	if m == nil || m.Finished() || m.Hand == nil || m.Hand.Phase != domain.HandPlaying {
		return -1
	}
	if m.Hand.Stake.Pending() {
		for seat, userID := range state.Seats {
			if bot.IsBot(userID) && domain.TeamOfSeat(seat) == m.Hand.Stake.AwaitingTeam {
				return seat
			}
		}
		return -1
	}
	if bot.IsBot(state.Seats[m.Hand.TurnSeat]) {
		return m.Hand.TurnSeat
	}
	return -1
}

// broadcastEvent converts an app event into its opcode and JSON payload and
// dispatches it, honoring targeted recipients.
func (mh *matchHandler) broadcastEvent(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	var opCode int64
	var payload any

	switch ev.Kind {
	case app.EventHandDealt:
		p := ev.Payload.(app.HandDealtPayload)
		opCode = OpHandDealt
		payload = HandDealtMsg{Seat: p.Seat, Cards: toCardMsgs(p.Cards)}
	case app.EventHandStarted:
		p := ev.Payload.(app.HandStartedPayload)
		opCode = OpHandStarted
		payload = HandStartedMsg{
			Vira:      toCardMsg(p.Vira),
			Manilhas:  toCardMsgs(p.Manilhas),
			LeadSeat:  p.LeadSeat,
			HandSizes: p.HandSizes,
		}
	case app.EventCardPlayed:
		p := ev.Payload.(app.CardPlayedPayload)
		opCode = OpCardPlayed
		payload = CardPlayedMsg{Seat: p.Seat, Card: toCardMsg(p.Card), NextTurnSeat: p.NextTurnSeat}
	case app.EventTrickResolved:
		p := ev.Payload.(app.TrickResolvedPayload)
		opCode = OpTrickResolved
		payload = trickResolvedMsg(p)
	case app.EventStakeRaised:
		p := ev.Payload.(app.StakeRaisedPayload)
		opCode = OpStakeRaised
		payload = StakeRaisedMsg{Seat: p.Seat, Team: p.Team, Tier: p.TierName, Points: p.Points, AwaitingTeam: p.AwaitingTeam}
	case app.EventStakeAccepted:
		p := ev.Payload.(app.StakeAcceptedPayload)
		opCode = OpStakeAccepted
		payload = StakeAcceptedMsg{Team: p.Team, Points: p.Points}
	case app.EventStakeDeclined:
		p := ev.Payload.(app.StakeDeclinedPayload)
		opCode = OpStakeDeclined
		payload = StakeDeclinedMsg{Team: p.Team}
	case app.EventHandEnded:
		p := ev.Payload.(app.HandEndedPayload)
		opCode = OpHandEnded
		payload = HandEndedMsg{WinnerTeam: p.WinnerTeam, Points: p.Points, Scores: p.Scores}
	case app.EventMatchEnded:
		p := ev.Payload.(app.MatchEndedPayload)
		opCode = OpMatchEnded
		payload = MatchEndedMsg{WinnerTeam: p.WinnerTeam, Scores: p.Scores}
	default:
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, uid := range ev.Recipients {
			if p, ok := state.Presences[uid]; ok {
				recipients = append(recipients, p)
			}
		}
		// Targeted events with no connected recipients (bot hands) must not
		// fall back to a broadcast.
		if len(recipients) == 0 {
			return
		}
	}

	dispatcher.BroadcastMessage(opCode, data, recipients, nil, true)
}

// sendError sends a GameErrorMsg to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	presence, ok := state.Presences[userID]
	if !ok {
		return
	}
	data, err := json.Marshal(GameErrorMsg{Code: code, Message: message})
	if err != nil {
		logger.Error("Failed to marshal GameErrorMsg: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpGameError, data, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) broadcastMatchState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	snapshot := MatchStateMsg{
		Seats:     state.Seats,
		OwnerSeat: state.OwnerSeat,
		Mode:      state.Mode,
		Variant:   config.GetVariant(),
		Playing:   state.Match != nil,
		TurnSeat:  -1,
	}

	for i, userID := range state.Seats {
		if userID == "" {
			continue
		}
		displayName := userID
		if p, exists := state.Presences[userID]; exists {
			displayName = p.GetUsername()
		} else if name := bot.GetBotUsername(userID); name != "" {
			displayName = name
		}
		ps := PlayerStateMsg{
			UserID:      userID,
			Seat:        i,
			Team:        domain.TeamOfSeat(i),
			IsOwner:     i == state.OwnerSeat,
			DisplayName: displayName,
		}
		if state.Match != nil && state.Match.Hand != nil {
			ps.CardsRemaining = len(state.Match.Hand.Cards[i])
		}
		snapshot.Players = append(snapshot.Players, ps)
	}

	if m := state.Match; m != nil {
		snapshot.Scores = m.Scores
		snapshot.TargetScore = m.TargetScore
		if m.Hand != nil {
			vira := toCardMsg(m.Hand.Vira)
			snapshot.Vira = &vira
			snapshot.TurnSeat = m.Hand.TurnSeat
			snapshot.StakePoints = m.Hand.Stake.SettledPoints()
		}
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("Failed to marshal match state: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpMatchState, data, nil, nil, true)
}

func (mh *matchHandler) labelString(state *MatchState, logger runtime.Logger) string {
	phase := "lobby"
	if state.Match != nil {
		phase = "playing"
	}
	label := MatchLabel{
		Open:    state.GetOpenSeatsCount(),
		Game:    "truco",
		Phase:   phase,
		Mode:    state.Mode,
		Variant: config.GetVariant(),
	}
	data, err := json.Marshal(label)
	if err != nil {
		logger.Error("Failed to marshal label: %v", err)
		return ""
	}
	return string(data)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if err := dispatcher.MatchLabelUpdate(mh.labelString(state, logger)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
