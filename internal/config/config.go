package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// GameConfig holds the tunable rules and pacing knobs for a table.
type GameConfig struct {
	// DefaultMode selects the table size: "1v1" or "2v2".
	DefaultMode string `json:"default_mode"`
	// Variant names the rule set advertised in the match label.
	Variant             string `json:"variant"`
	TargetScore         int    `json:"target_score"`
	TurnDurationSeconds int    `json:"turn_duration_seconds"`
	BotMinDelaySeconds  int    `json:"bot_min_delay_seconds"`
	BotMaxDelaySeconds  int    `json:"bot_max_delay_seconds"`
	// BotAutoFillDelaySeconds configures how long a solo human lobby waits
	// before bots take the empty seats.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, or nil if never loaded.
func GetGameConfig() *GameConfig {
	return cfg
}

// GetTargetScore returns the configured match target, defaulting to 12.
func GetTargetScore() int {
	if cfg == nil || cfg.TargetScore <= 0 {
		return 12
	}
	return cfg.TargetScore
}

// GetDefaultMode returns the configured table mode, defaulting to "2v2".
func GetDefaultMode() string {
	if cfg == nil || cfg.DefaultMode == "" {
		return "2v2"
	}
	return cfg.DefaultMode
}

// GetBotAutoFillDelay returns the lobby auto-fill delay in seconds,
// defaulting to 10.
func GetBotAutoFillDelay() int {
	if cfg == nil || cfg.BotAutoFillDelaySeconds <= 0 {
		return 10
	}
	return cfg.BotAutoFillDelaySeconds
}

// GetVariant returns the configured rule variant, defaulting to "paulista".
func GetVariant() string {
	if cfg == nil || cfg.Variant == "" {
		return "paulista"
	}
	return cfg.Variant
}
