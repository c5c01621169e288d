package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
)

// FindMatchResponse is the payload returned to clients looking for a table.
type FindMatchResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcFindMatch, rpcFindMatch); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcCreateMatch, rpcCreateMatch); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcCreateTestUser, rpcCreateTestUser)
}

// rpcFindMatch returns an open lobby table, creating one when none exist.
// Payload: optional JSON {"mode": "1v1"|"2v2"}.
func rpcFindMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	params := parseMatchParams(payload)
	query := fmt.Sprintf("+label.%s:>=1 label.game:truco label.phase:lobby", MatchLabelKey_OpenSeats)
	if mode, ok := params["mode"].(string); ok {
		query += fmt.Sprintf(" label.mode:%s", mode)
	}

	limit := 10
	authoritative := true
	minSize := 0
	maxSize := 4

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, query)
	if err != nil {
		logger.Error("rpcFindMatch [User:%s]: Failed to list matches: %v", userID, err)
		return "", err
	}

	if len(matches) > 0 {
		resp := FindMatchResponse{MatchID: matches[0].MatchId, IsNew: false}
		b, _ := json.Marshal(resp)
		return string(b), nil
	}

	matchID, err := nk.MatchCreate(ctx, MatchNameTruco, params)
	if err != nil {
		logger.Error("rpcFindMatch [User:%s]: Failed to create match: %v", userID, err)
		return "", err
	}

	resp := FindMatchResponse{MatchID: matchID, IsNew: true}
	b, _ := json.Marshal(resp)
	return string(b), nil
}

// rpcCreateMatch always creates a fresh table, ignoring open lobbies.
func rpcCreateMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	matchID, err := nk.MatchCreate(ctx, MatchNameTruco, parseMatchParams(payload))
	if err != nil {
		logger.Error("rpcCreateMatch [User:%s]: Failed to create match: %v", userID, err)
		return "", err
	}

	resp := FindMatchResponse{MatchID: matchID, IsNew: true}
	b, _ := json.Marshal(resp)
	return string(b), nil
}

// rpcCreateTestUser provisions a throwaway custom-auth account so integration
// clients can join tables without a real login.
func rpcCreateTestUser(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	uid := uuid.NewString()
	username := fmt.Sprintf("tester_%s", uid[:8])
	display := fmt.Sprintf("Tester %s", uid[:6])

	userID, sessionToken, _, err := nk.AuthenticateCustom(ctx, uid, username, true)
	if err != nil {
		logger.Error("rpcCreateTestUser: Failed to authenticate custom user: %v", err)
		return "", err
	}

	if err := nk.AccountUpdateId(ctx, userID, username, nil, display, "", "", "", ""); err != nil {
		logger.Error("rpcCreateTestUser: Failed to update display name for %s: %v", userID, err)
		return "", err
	}

	resp := map[string]string{
		"user_id":       userID,
		"session_token": sessionToken,
		"custom_id":     uid,
		"username":      username,
		"display_name":  display,
	}
	data, err := json.Marshal(resp)
	if err != nil {
		logger.Error("rpcCreateTestUser: Failed to marshal response: %v", err)
		return "", err
	}
	return string(data), nil
}

// parseMatchParams decodes an optional JSON payload into match create params.
func parseMatchParams(payload string) map[string]interface{} {
	params := map[string]interface{}{}
	if payload == "" {
		return params
	}
	_ = json.Unmarshal([]byte(payload), &params)
	return params
}
