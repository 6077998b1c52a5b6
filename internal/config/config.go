// Package config holds the explicit engine configuration. Values are plain
// data constructed by the caller and passed into whichever component needs
// them; there is no process-wide state.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Engine configures the decision engine and table pacing.
type Engine struct {
	// MaxEpisodes caps the simulated deals per decision query.
	MaxEpisodes int `json:"max_episodes"`
	// MinWonRateForBidding is the win-rate threshold above which bidding or
	// holding a bid is considered safe.
	MinWonRateForBidding float64 `json:"min_won_rate_for_bidding"`
	// MinWonRateForHandGame is the threshold above which the skat pickup is
	// skipped in favour of a hand game.
	MinWonRateForHandGame float64 `json:"min_won_rate_for_hand_game"`
	// Epsilon widens the near-optimal band of card scores the bot picks
	// from uniformly at random.
	Epsilon float64 `json:"epsilon"`
	// RamschOnPassIn plays a ramsch when all three players pass.
	RamschOnPassIn bool `json:"ramsch_on_pass_in"`

	// Bot pacing for hosted tables.
	BotMinDelaySec      int `json:"bot_min_delay_sec"`
	BotMaxDelaySec      int `json:"bot_max_delay_sec"`
	BotAutoFillDelaySec int `json:"bot_auto_fill_delay_sec"`
}

// Default returns the engine defaults.
func Default() Engine {
	return Engine{
		MaxEpisodes:           10,
		MinWonRateForBidding:  0.6,
		MinWonRateForHandGame: 0.95,
		Epsilon:               0.1,
		RamschOnPassIn:        true,
		BotMinDelaySec:        1,
		BotMaxDelaySec:        3,
		BotAutoFillDelaySec:   5,
	}
}

// Load reads a JSON config file over the defaults.
func Load(path string) (Engine, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read engine config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal engine config: %w", err)
	}
	return cfg, nil
}
