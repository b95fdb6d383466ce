package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for a standard six-deck table.
const (
	defaultNumDecks         = 6
	defaultMinBet           = 10
	defaultMaxBet           = 500
	defaultStartingBankroll = 1000
	defaultDealDelayMs      = 350
)

// Config is the full application configuration.
type Config struct {
	Game  GameConfig  `yaml:"game"`
	UI    UIConfig    `yaml:"ui"`
	Sound SoundConfig `yaml:"sound"`
}

// GameConfig holds the table rules and money limits.
type GameConfig struct {
	NumDecks         int     `yaml:"num_decks"`
	MinBet           float64 `yaml:"min_bet"`
	MaxBet           float64 `yaml:"max_bet"`
	StartingBankroll float64 `yaml:"starting_bankroll"`
	DealerHitsSoft17 bool    `yaml:"dealer_hits_soft_17"`
	DoubleAfterSplit bool    `yaml:"double_after_split"`
	SurrenderAllowed bool    `yaml:"surrender_allowed"`
	BlackjackPays32  bool    `yaml:"blackjack_pays_3_to_2"`
}

// UIConfig holds presentation toggles.
type UIConfig struct {
	ShowAdvice  bool `yaml:"show_advice"`
	ShowCount   bool `yaml:"show_count"`
	DealDelayMs int  `yaml:"deal_delay_ms"`
}

// DealDelay returns the card reveal delay.
func (c *UIConfig) DealDelay() time.Duration {
	return time.Duration(c.DealDelayMs) * time.Millisecond
}

// SoundConfig holds audio settings.
type SoundConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads the config file, fills in defaults for missing keys,
// applies environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Unmarshal over the defaults so absent keys keep them.
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromEnv applies environment variable overrides.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("BLACKJACK_DECKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Game.NumDecks = n
		}
	}
	if v := os.Getenv("BLACKJACK_MIN_BET"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Game.MinBet = f
		}
	}
	if v := os.Getenv("BLACKJACK_MAX_BET"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Game.MaxBet = f
		}
	}
	if v := os.Getenv("BLACKJACK_BANKROLL"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Game.StartingBankroll = f
		}
	}
}

// Validate rejects configurations the table cannot run with.
func (c *Config) Validate() error {
	if c.Game.NumDecks < 1 || c.Game.NumDecks > 8 {
		return fmt.Errorf("num_decks must be between 1 and 8, got %d", c.Game.NumDecks)
	}
	if c.Game.MinBet <= 0 {
		return fmt.Errorf("min_bet must be positive, got %.2f", c.Game.MinBet)
	}
	if c.Game.MaxBet < c.Game.MinBet {
		return fmt.Errorf("max_bet %.2f is below min_bet %.2f", c.Game.MaxBet, c.Game.MinBet)
	}
	if c.Game.StartingBankroll < c.Game.MinBet {
		return fmt.Errorf("starting_bankroll %.2f cannot cover the minimum bet", c.Game.StartingBankroll)
	}
	if c.UI.DealDelayMs < 0 {
		return fmt.Errorf("deal_delay_ms must not be negative, got %d", c.UI.DealDelayMs)
	}
	return nil
}

// Default returns the standard table configuration.
func Default() *Config {
	return &Config{
		Game: GameConfig{
			NumDecks:         defaultNumDecks,
			MinBet:           defaultMinBet,
			MaxBet:           defaultMaxBet,
			StartingBankroll: defaultStartingBankroll,
			DealerHitsSoft17: false,
			DoubleAfterSplit: true,
			SurrenderAllowed: true,
			BlackjackPays32:  true,
		},
		UI: UIConfig{
			ShowAdvice:  true,
			ShowCount:   true,
			DealDelayMs: defaultDealDelayMs,
		},
		Sound: SoundConfig{
			Enabled: false,
		},
	}
}
