package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	Game     GameConfig
	Console  ConsoleConfig
	Simulate SimulateConfig
}

// GameConfig holds defaults for new games
type GameConfig struct {
	DefaultPlayer string `env:"TENPIN_PLAYER" envDefault:"Player"`
}

// ConsoleConfig holds interactive console settings
type ConsoleConfig struct {
	QuitWord string `env:"TENPIN_QUIT_WORD" envDefault:"quit"`
	Verbose  bool   `env:"TENPIN_VERBOSE"   envDefault:"false"`
}

// SimulateConfig holds settings for the random bowler
type SimulateConfig struct {
	Seed  int64   `env:"TENPIN_SEED"  envDefault:"0"` // 0 picks a seed from the clock
	Skill float64 `env:"TENPIN_SKILL" envDefault:"0.3"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}

	// Validate fields
	if strings.TrimSpace(cfg.Console.QuitWord) == "" {
		return nil, fmt.Errorf("TENPIN_QUIT_WORD cannot be blank")
	}
	if cfg.Simulate.Skill < 0 || cfg.Simulate.Skill > 1 {
		return nil, fmt.Errorf("TENPIN_SKILL must be between 0 and 1, got %v", cfg.Simulate.Skill)
	}

	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
