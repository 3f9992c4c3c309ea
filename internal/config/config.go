// internal/config/config.go
//
// Process configuration for the Minesweeper terminal UI.
//
// Load order:
//  1. A `.env` file in the working directory, if present (godotenv).
//  2. Process environment, parsed into Config (caarlos0/env).
//
// Environment variables:
//
//	MINESWEEPER_DIFFICULTY=beginner|intermediate|expert|custom
//	MINESWEEPER_WIDTH / MINESWEEPER_HEIGHT / MINESWEEPER_MINES  (custom only)
//	MINESWEEPER_SEED=<int64>         fixed layout seed, 0 = random
//	MINESWEEPER_DAILY=true           seed from today's UTC date
//	MINESWEEPER_DAILY_SALT=<string>  key for the daily seed
//	LOG_LEVEL=debug|info|warn|error
//	LOG_FORMAT=console|json
//	LOG_FILE=<path>                  log destination while the UI owns the terminal
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything main needs to start a session.
type Config struct {
	Difficulty string `env:"MINESWEEPER_DIFFICULTY" envDefault:"beginner"`
	Width      int    `env:"MINESWEEPER_WIDTH"`
	Height     int    `env:"MINESWEEPER_HEIGHT"`
	Mines      int    `env:"MINESWEEPER_MINES"`

	Seed      int64  `env:"MINESWEEPER_SEED"`
	Daily     bool   `env:"MINESWEEPER_DAILY"`
	DailySalt string `env:"MINESWEEPER_DAILY_SALT" envDefault:"minesweeper"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
	LogFile   string `env:"LOG_FILE" envDefault:"minesweeper.log"`
}

// Load reads an optional .env file and then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Preset resolves the configured difficulty. "custom" takes the explicit
// width/height/mines; the board itself validates them.
func (c Config) Preset() (Preset, error) {
	if strings.EqualFold(strings.TrimSpace(c.Difficulty), CustomName) {
		return Preset{Name: CustomName, Width: c.Width, Height: c.Height, Mines: c.Mines}, nil
	}
	return Lookup(c.Difficulty)
}
