package main

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/minesweeper/internal/config"
	"github.com/robalobadob/minesweeper/internal/console"
	"github.com/robalobadob/minesweeper/internal/daily"
	"github.com/robalobadob/minesweeper/internal/game"
	"github.com/robalobadob/minesweeper/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logFile, err := setupLogging(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.LogFile).Msg("failed to open log file")
	}
	defer logFile.Close()

	preset, err := cfg.Preset()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid difficulty")
	}

	var opts []game.Option
	switch {
	case cfg.Daily:
		now := time.Now()
		seed, err := daily.Seed(now, cfg.DailySalt)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to derive daily seed")
		}
		log.Info().Str("date", daily.DateKey(now)).Msg("daily board")
		opts = append(opts, game.WithSeed(seed))
	case cfg.Seed != 0:
		opts = append(opts, game.WithSeed(cfg.Seed))
	}

	sess, err := session.New(preset, opts...)
	if err != nil {
		log.Fatal().Err(err).Str("difficulty", preset.String()).Msg("failed to start game")
	}
	if _, err := tea.NewProgram(console.New(sess), tea.WithAltScreen()).Run(); err != nil {
		log.Error().Err(err).Msg("terminal UI exited")
	}
}

// setupLogging routes zerolog to cfg.LogFile, since the UI owns the
// terminal while it runs.
func setupLogging(cfg config.Config) (*os.File, error) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	if cfg.LogFormat == "json" {
		log.Logger = log.Output(f)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: f, TimeFormat: time.Kitchen, NoColor: true})
	}
	return f, nil
}
