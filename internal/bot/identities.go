package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

const botIDPrefix = "bot_"

// BotIdentity is one configured bot profile.
type BotIdentity struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarIndex int    `json:"avatar_index"`
}

var (
	botIdentities  []BotIdentity
	botUsernameMap map[string]string
	loadOnce       sync.Once
	loadErr        error
)

// defaultIdentities keeps tables playable when the identities file is absent.
var defaultIdentities = []BotIdentity{
	{UserID: "bot_zeca", Username: "Zeca", DisplayName: "Zeca"},
	{UserID: "bot_nina", Username: "Nina", DisplayName: "Nina"},
	{UserID: "bot_tonho", Username: "Tonho", DisplayName: "Tonho"},
	{UserID: "bot_dora", Username: "Dora", DisplayName: "Dora"},
}

// LoadIdentities loads the bot profiles from the given path.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}
		var ids []BotIdentity
		if err := json.Unmarshal(data, &ids); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal bot identities: %w", err)
			return
		}
		botIdentities = ids
		botUsernameMap = make(map[string]string, len(ids))
		for _, id := range ids {
			botUsernameMap[id.UserID] = id.Username
		}
	})
	return loadErr
}

// GetBotIdentity returns the identity for a seat index, cycling through the
// configured profiles.
func GetBotIdentity(seat int) BotIdentity {
	ids := botIdentities
	if len(ids) == 0 {
		ids = defaultIdentities
	}
	return ids[((seat%len(ids))+len(ids))%len(ids)]
}

// IsBot reports whether the given user id belongs to a bot seat.
func IsBot(userID string) bool {
	return strings.HasPrefix(userID, botIDPrefix)
}

// GetBotUsername returns the configured username for a bot id, or "" for
// unknown ids.
func GetBotUsername(userID string) string {
	if name, ok := botUsernameMap[userID]; ok {
		return name
	}
	for _, id := range defaultIdentities {
		if id.UserID == userID {
			return id.Username
		}
	}
	return ""
}
