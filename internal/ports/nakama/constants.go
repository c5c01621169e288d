package nakama

const (
	// RpcFindMatch is the Nakama RPC id clients call to find or create an
	// open table.
	RpcFindMatch = "find_match"
	// RpcCreateMatch always creates a fresh table.
	RpcCreateMatch = "create_match"
	// RpcCreateTestUser provisions a throwaway account for integration tests.
	RpcCreateTestUser = "create_test_user"

	// MatchNameTruco is the authoritative match handler name registered with
	// Nakama.
	MatchNameTruco = "truco_match"

	// MatchLabelKey_OpenSeats is the label key advertising open seats.
	MatchLabelKey_OpenSeats = "open"
)

// Op codes for client messages and server events. Payloads are JSON.
const (
	// Client -> Server
	OpStartMatch int64 = 1
	OpPlayCard   int64 = 2
	OpCallRaise  int64 = 3
	OpAccept     int64 = 4
	OpDecline    int64 = 5

	// Server -> Client events
	OpMatchState    int64 = 100
	OpHandDealt     int64 = 101 // sent privately
	OpHandStarted   int64 = 102
	OpCardPlayed    int64 = 103
	OpTrickResolved int64 = 104
	OpStakeRaised   int64 = 105
	OpStakeAccepted int64 = 106
	OpStakeDeclined int64 = 107
	OpHandEnded     int64 = 108
	OpMatchEnded    int64 = 109
	OpGameError     int64 = 110
	OpMatchView     int64 = 111 // sent privately on reconnect
)
