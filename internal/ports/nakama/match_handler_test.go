package nakama

import (
	"context"
	"encoding/json"
	"math/rand"
	"testing"

	"truco/internal/app"
	"truco/internal/bot"
	"truco/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	broadcastCount int
	labelUpdates   int
	opCodes        []int64
	lastOpCode     int64
	lastData       []byte
	dataByOp       map[int64][]byte
	lastRecipients []runtime.Presence
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.broadcastCount++
	md.opCodes = append(md.opCodes, opCode)
	md.lastOpCode = opCode
	md.lastData = append([]byte(nil), data...)
	if md.dataByOp == nil {
		md.dataByOp = make(map[int64][]byte)
	}
	md.dataByOp[opCode] = md.lastData
	md.lastRecipients = presences
	return nil
}

func (md *mockDispatcher) BroadcastMessageDeferred(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	return nil
}

func (md *mockDispatcher) MatchKick(presences []runtime.Presence) error {
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labelUpdates++
	return nil
}

type stubPresence struct{ id string }

func (p stubPresence) GetHidden() bool                   { return false }
func (p stubPresence) GetPersistence() bool              { return true }
func (p stubPresence) GetUsername() string               { return p.id }
func (p stubPresence) GetStatus() string                 { return "" }
func (p stubPresence) GetReason() runtime.PresenceReason { return runtime.PresenceReasonJoin }
func (p stubPresence) GetUserId() string                 { return p.id }
func (p stubPresence) GetSessionId() string              { return p.id + "-sid" }
func (p stubPresence) GetNodeId() string                 { return "node1" }

type stubMatchData struct {
	op     int64
	userID string
	data   []byte
}

func (m stubMatchData) GetUserId() string                 { return m.userID }
func (m stubMatchData) GetSessionId() string              { return m.userID + "-sid" }
func (m stubMatchData) GetNodeId() string                 { return "node1" }
func (m stubMatchData) GetHidden() bool                   { return false }
func (m stubMatchData) GetPersistence() bool              { return true }
func (m stubMatchData) GetUsername() string               { return m.userID }
func (m stubMatchData) GetStatus() string                 { return "" }
func (m stubMatchData) GetReason() runtime.PresenceReason { return runtime.PresenceReasonJoin }
func (m stubMatchData) GetOpCode() int64                  { return m.op }
func (m stubMatchData) GetData() []byte                   { return m.data }
func (m stubMatchData) GetReliable() bool                 { return true }
func (m stubMatchData) GetReceiveTime() int64             { return 0 }

// newTestState builds a lobby MatchState with the given seat occupants.
func newTestState(seats []string) *MatchState {
	state := &MatchState{
		Seats:            append([]string{}, seats...),
		OwnerSeat:        findFirstHumanSeat(seats),
		Mode:             "2v2",
		Presences:        make(map[string]runtime.Presence),
		App:              app.NewService(rand.New(rand.NewSource(7))),
		Bots:             make(map[string]*bot.Agent),
		BotMinDelay:      1,
		BotMaxDelay:      1,
		BotAutoFillDelay: 2,
	}
	for _, id := range seats {
		if id != "" && !bot.IsBot(id) {
			state.Presences[id] = stubPresence{id: id}
		}
		if bot.IsBot(id) {
			agent, _ := bot.NewAgent(id)
			state.Bots[id] = agent
		}
	}
	return state
}

func TestFindFirstHumanSeat(t *testing.T) {
	bot1 := bot.GetBotIdentity(0).UserID
	bot2 := bot.GetBotIdentity(1).UserID

	tests := []struct {
		name  string
		seats []string
		want  int
	}{
		{name: "FirstHumanAfterBot", seats: []string{bot1, "user-1", "", ""}, want: 1},
		{name: "AllBots", seats: []string{bot1, bot2, "", ""}, want: -1},
		{name: "AllEmpty", seats: []string{"", "", "", ""}, want: -1},
		{name: "FirstHumanIsSeatZero", seats: []string{"user-1", bot1, "user-2", ""}, want: 0},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := findFirstHumanSeat(test.seats); got != test.want {
				t.Fatalf("findFirstHumanSeat() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestLabelString(t *testing.T) {
	handler := &matchHandler{}
	state := newTestState([]string{"user-1", "", "", ""})

	var label MatchLabel
	if err := json.Unmarshal([]byte(handler.labelString(state, noopLogger{})), &label); err != nil {
		t.Fatalf("labelString produced invalid JSON: %v", err)
	}
	if label.Open != 3 {
		t.Fatalf("label.Open = %d, want 3", label.Open)
	}
	if label.Phase != "lobby" {
		t.Fatalf("label.Phase = %q, want %q", label.Phase, "lobby")
	}
	if label.Game != "truco" {
		t.Fatalf("label.Game = %q, want %q", label.Game, "truco")
	}
}

func TestMatchJoin_AssignsSeatsAndOwner(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState([]string{"", "", "", ""})
	state.OwnerSeat = -1

	result := handler.MatchJoin(context.Background(), noopLogger{}, nil, nil, dispatcher, 1, state,
		[]runtime.Presence{stubPresence{id: "user-1"}, stubPresence{id: "user-2"}})

	got := result.(*MatchState)
	if got.Seats[0] != "user-1" || got.Seats[1] != "user-2" {
		t.Fatalf("Seats = %v, want user-1 and user-2 in seats 0 and 1", got.Seats)
	}
	if got.OwnerSeat != 0 {
		t.Fatalf("OwnerSeat = %d, want 0", got.OwnerSeat)
	}
	if dispatcher.labelUpdates == 0 || dispatcher.lastOpCode != OpMatchState {
		t.Fatalf("Expected label update and match state broadcast after join")
	}
}

func TestMatchJoin_HumanReplacesBotInLobby(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	botID := bot.GetBotIdentity(0).UserID
	state := newTestState([]string{"user-1", botID, "user-2", "user-3"})

	result := handler.MatchJoin(context.Background(), noopLogger{}, nil, nil, dispatcher, 1, state,
		[]runtime.Presence{stubPresence{id: "user-4"}})

	got := result.(*MatchState)
	if got.Seats[1] != "user-4" {
		t.Fatalf("Seats[1] = %q, want user-4 to replace the bot", got.Seats[1])
	}
	if _, exists := got.Bots[botID]; exists {
		t.Fatalf("Expected bot agent %s to be removed", botID)
	}
}

func TestStartMatch_OnlyOwnerAndFullTable(t *testing.T) {
	handler := &matchHandler{}

	t.Run("NonOwnerRejected", func(t *testing.T) {
		dispatcher := &mockDispatcher{}
		state := newTestState([]string{"user-1", "user-2", "user-3", "user-4"})

		handler.handleStartMatch(state, dispatcher, noopLogger{}, stubMatchData{op: OpStartMatch, userID: "user-2"})

		if state.Match != nil {
			t.Fatalf("Expected no match after non-owner start")
		}
		if dispatcher.lastOpCode != OpGameError {
			t.Fatalf("lastOpCode = %d, want OpGameError", dispatcher.lastOpCode)
		}
	})

	t.Run("OpenSeatsRejected", func(t *testing.T) {
		dispatcher := &mockDispatcher{}
		state := newTestState([]string{"user-1", "user-2", "", ""})

		handler.handleStartMatch(state, dispatcher, noopLogger{}, stubMatchData{op: OpStartMatch, userID: "user-1"})

		if state.Match != nil {
			t.Fatalf("Expected no match with open seats")
		}
		if dispatcher.lastOpCode != OpGameError {
			t.Fatalf("lastOpCode = %d, want OpGameError", dispatcher.lastOpCode)
		}
	})

	t.Run("OwnerStartsFullTable", func(t *testing.T) {
		dispatcher := &mockDispatcher{}
		state := newTestState([]string{"user-1", "user-2", "user-3", "user-4"})

		handler.handleStartMatch(state, dispatcher, noopLogger{}, stubMatchData{op: OpStartMatch, userID: "user-1"})

		if state.Match == nil {
			t.Fatalf("Expected match to start")
		}
		if state.Match.Hand == nil {
			t.Fatalf("Expected first hand to be dealt")
		}
		// Four private deals plus one public hand_started.
		if dispatcher.lastOpCode != OpHandStarted {
			t.Fatalf("lastOpCode = %d, want OpHandStarted", dispatcher.lastOpCode)
		}
		dealt := 0
		for _, op := range dispatcher.opCodes {
			if op == OpHandDealt {
				dealt++
			}
		}
		if dealt != 4 {
			t.Fatalf("Expected 4 private hand_dealt messages, got %d", dealt)
		}
	})
}

func TestBroadcastEvent_TargetedSkipsDisconnected(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	botID := bot.GetBotIdentity(0).UserID
	state := newTestState([]string{"user-1", botID, "user-2", "user-3"})

	ev := app.Event{
		Kind: app.EventHandDealt,
		Payload: app.HandDealtPayload{
			PlayerID: botID,
			Seat:     1,
			Cards:    []domain.Card{{Suit: domain.Clubs, Rank: 7}},
		},
		Recipients: []string{botID},
	}
	handler.broadcastEvent(state, dispatcher, noopLogger{}, ev)

	if dispatcher.broadcastCount != 0 {
		t.Fatalf("Expected no broadcast for a targeted event with no connected recipients, got %d", dispatcher.broadcastCount)
	}

	ev.Payload = app.HandDealtPayload{PlayerID: "user-1", Seat: 0}
	ev.Recipients = []string{"user-1"}
	handler.broadcastEvent(state, dispatcher, noopLogger{}, ev)

	if dispatcher.broadcastCount != 1 {
		t.Fatalf("Expected targeted broadcast to connected player, got %d", dispatcher.broadcastCount)
	}
	if len(dispatcher.lastRecipients) != 1 || dispatcher.lastRecipients[0].GetUserId() != "user-1" {
		t.Fatalf("Expected recipients [user-1], got %v", dispatcher.lastRecipients)
	}
}

func TestHandlePlayCard_InvalidPayload(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState([]string{"user-1", "user-2", "user-3", "user-4"})
	handler.handleStartMatch(state, dispatcher, noopLogger{}, stubMatchData{op: OpStartMatch, userID: "user-1"})

	before := dispatcher.broadcastCount
	handler.handlePlayCard(state, dispatcher, noopLogger{}, stubMatchData{op: OpPlayCard, userID: "user-1", data: []byte("{not json")})

	if dispatcher.broadcastCount != before+1 || dispatcher.lastOpCode != OpGameError {
		t.Fatalf("Expected a single OpGameError, got opcode %d", dispatcher.lastOpCode)
	}
}

func TestHandlePlayCard_TurnHolderPlays(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState([]string{"user-1", "user-2", "user-3", "user-4"})
	handler.handleStartMatch(state, dispatcher, noopLogger{}, stubMatchData{op: OpStartMatch, userID: "user-1"})

	turnSeat := state.Match.Hand.TurnSeat
	card := state.Match.Hand.Cards[turnSeat][0]
	payload, _ := json.Marshal(PlayCardRequest{Card: toCardMsg(card)})

	handler.handlePlayCard(state, dispatcher, noopLogger{}, stubMatchData{
		op:     OpPlayCard,
		userID: state.Seats[turnSeat],
		data:   payload,
	})

	if dispatcher.lastOpCode != OpCardPlayed {
		t.Fatalf("lastOpCode = %d, want OpCardPlayed", dispatcher.lastOpCode)
	}
	if got := len(state.Match.Hand.Cards[turnSeat]); got != 2 {
		t.Fatalf("Cards remaining = %d, want 2", got)
	}
}

func TestProcessBots_AutoFillSoloHuman(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState([]string{"user-1", "", "", ""})
	state.BotsEnabled = true
	state.LastSinglePlayerTick = 8
	state.Tick = 10

	handler.processBots(state, dispatcher, noopLogger{})

	botCount := 0
	for _, seat := range state.Seats {
		if bot.IsBot(seat) {
			botCount++
		}
	}
	if botCount != 3 {
		t.Fatalf("Expected 3 bots after auto-fill, got %d", botCount)
	}
	if state.GetOpenSeatsCount() != 0 {
		t.Fatalf("Expected full table after auto-fill, got %d open", state.GetOpenSeatsCount())
	}
	if state.LastSinglePlayerTick != 0 {
		t.Fatalf("Expected auto-fill timer reset, got %d", state.LastSinglePlayerTick)
	}
	if dispatcher.broadcastCount == 0 || dispatcher.labelUpdates == 0 {
		t.Fatalf("Expected match state broadcast and label update after auto-fill")
	}
}

func TestProcessBots_BotPlaysOnItsTurn(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	botID := bot.GetBotIdentity(1).UserID
	state := newTestState([]string{"user-1", botID, "user-2", "user-3"})
	state.BotsEnabled = true
	handler.handleStartMatch(state, dispatcher, noopLogger{}, stubMatchData{op: OpStartMatch, userID: "user-1"})

	// Play human seats until the bot holds the turn.
	for state.Match.Hand.TurnSeat != 1 {
		seat := state.Match.Hand.TurnSeat
		card := state.Match.Hand.Cards[seat][0]
		payload, _ := json.Marshal(PlayCardRequest{Card: toCardMsg(card)})
		handler.handlePlayCard(state, dispatcher, noopLogger{}, stubMatchData{op: OpPlayCard, userID: state.Seats[seat], data: payload})
	}

	before := len(state.Match.Hand.Cards[1])

	// First pass arms the delay, second pass fires after it elapses.
	state.Tick = 10
	handler.processBots(state, dispatcher, noopLogger{})
	if state.BotWaitUntil == 0 {
		t.Fatalf("Expected bot delay to be armed")
	}
	state.Tick = state.BotWaitUntil
	handler.processBots(state, dispatcher, noopLogger{})

	if got := len(state.Match.Hand.Cards[1]); got != before-1 {
		t.Fatalf("Bot cards remaining = %d, want %d", got, before-1)
	}
}

func TestMatchLeave_ConcedesLiveHand(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState([]string{"user-1", "user-2", "user-3", "user-4"})
	handler.handleStartMatch(state, dispatcher, noopLogger{}, stubMatchData{op: OpStartMatch, userID: "user-1"})

	result := handler.MatchLeave(context.Background(), noopLogger{}, nil, nil, dispatcher, 5, state,
		[]runtime.Presence{stubPresence{id: "user-2"}})

	got := result.(*MatchState)
	if got.Seats[1] != "" {
		t.Fatalf("Expected seat 1 freed, got %q", got.Seats[1])
	}
	// Seat 1 is team 2, so team 1 collects the conceded hand.
	if got.Match == nil {
		t.Fatalf("Expected match to continue after one leaver")
	}
	if got.Match.Scores[1] != 1 {
		t.Fatalf("Scores[1] = %d, want 1 after concession", got.Match.Scores[1])
	}
}

func TestMatchJoin_MidMatchSendsPrivateView(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState([]string{"user-1", "user-2", "user-3", "user-4"})
	handler.handleStartMatch(state, dispatcher, noopLogger{}, stubMatchData{op: OpStartMatch, userID: "user-1"})

	// A fifth presence watches the live match without a seat.
	result := handler.MatchJoin(context.Background(), noopLogger{}, nil, nil, dispatcher, 3, state,
		[]runtime.Presence{stubPresence{id: "user-5"}})

	got := result.(*MatchState)
	if got.seatOf("user-5") != -1 {
		t.Fatalf("Expected user-5 to have no seat in a full match")
	}

	data, sawView := dispatcher.dataByOp[OpMatchView]
	if !sawView {
		t.Fatalf("Expected a private OpMatchView for the joining presence")
	}

	var view map[string]any
	if err := json.Unmarshal(data, &view); err != nil {
		t.Fatalf("Failed to unmarshal view payload: %v", err)
	}
	if _, leaked := view["hand"]; leaked {
		t.Fatalf("Spectator view must not contain private cards")
	}
}

func TestMatchLeave_TerminatesWithNoHumans(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	botID := bot.GetBotIdentity(0).UserID
	state := newTestState([]string{"user-1", botID, "", ""})

	result := handler.MatchLeave(context.Background(), noopLogger{}, nil, nil, dispatcher, 5, state,
		[]runtime.Presence{stubPresence{id: "user-1"}})

	if result != nil {
		t.Fatalf("Expected nil state to terminate the match, got %v", result)
	}
}
