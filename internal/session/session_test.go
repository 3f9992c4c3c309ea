package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/minesweeper/internal/config"
	"github.com/robalobadob/minesweeper/internal/game"
)

// captureLogs routes the global logger into a buffer for the test's lifetime.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}

func messages(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("bad log line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestNew(t *testing.T) {
	buf := captureLogs(t)

	s, err := New(config.Beginner, game.WithSeed(1))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if w, h := s.Board().Dimensions(); w != 9 || h != 9 || s.Board().Mines != 10 {
		t.Errorf("board = %dx%d/%d, want 9x9/10", w, h, s.Board().Mines)
	}
	if s.Preset() != config.Beginner {
		t.Errorf("Preset() = %v, want beginner", s.Preset())
	}

	msgs := messages(t, buf)
	if len(msgs) != 1 || msgs[0]["message"] != "new game" || msgs[0]["difficulty"] != "beginner" {
		t.Errorf("logs = %v, want one new game entry", msgs)
	}
}

func TestNew_InvalidPreset(t *testing.T) {
	_, err := New(config.Preset{Name: config.CustomName, Width: 2, Height: 2, Mines: 4})
	if !errors.Is(err, game.ErrInvalidConfig) {
		t.Fatalf("New() error = %v, want ErrInvalidConfig", err)
	}
}

func TestSetDifficulty(t *testing.T) {
	captureLogs(t)
	s, err := New(config.Beginner, game.WithSeed(2))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := s.Reveal(4, 4); err != nil {
		t.Fatalf("Reveal() error = %v", err)
	}
	b := s.Board()

	if err := s.SetDifficulty(config.Expert); err != nil {
		t.Fatalf("SetDifficulty() error = %v", err)
	}
	if s.Board() != b {
		t.Error("SetDifficulty() swapped the board pointer; callers holding Board() would go stale")
	}
	if w, h := b.Dimensions(); w != 30 || h != 16 || b.Populated() {
		t.Errorf("board = %dx%d populated=%v, want fresh 30x16", w, h, b.Populated())
	}
	if s.Preset() != config.Expert {
		t.Errorf("Preset() = %v, want expert", s.Preset())
	}

	bad := config.Preset{Name: config.CustomName, Width: 0, Height: 5, Mines: 1}
	if err := s.SetDifficulty(bad); !errors.Is(err, game.ErrInvalidConfig) {
		t.Fatalf("SetDifficulty(bad) error = %v, want ErrInvalidConfig", err)
	}
	if s.Preset() != config.Expert {
		t.Errorf("Preset() = %v after rejected change, want expert", s.Preset())
	}
}

func TestRestart(t *testing.T) {
	captureLogs(t)
	s, err := New(config.Intermediate, game.WithSeed(3))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := s.Reveal(0, 0); err != nil {
		t.Fatalf("Reveal() error = %v", err)
	}
	id := s.Board().ID

	if err := s.Restart(); err != nil {
		t.Fatalf("Restart() error = %v", err)
	}
	b := s.Board()
	if b.ID == id || b.Populated() || b.Status() != game.StatusPlaying {
		t.Errorf("after Restart: id=%s populated=%v status=%s", b.ID, b.Populated(), b.Status())
	}
	if w, h := b.Dimensions(); w != 16 || h != 16 {
		t.Errorf("Dimensions() = %dx%d, want 16x16", w, h)
	}
}

func TestReveal_LogsTransitions(t *testing.T) {
	buf := captureLogs(t)
	s, err := New(config.Preset{Name: "tiny", Width: 3, Height: 1, Mines: 0}, game.WithSeed(4))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	buf.Reset()

	st, err := s.Reveal(1, 0)
	if err != nil || st != game.StatusWon {
		t.Fatalf("Reveal() = %s, %v; want won", st, err)
	}

	var placed, over bool
	for _, m := range messages(t, buf) {
		switch m["message"] {
		case "mines placed":
			placed = true
		case "game over":
			over = m["status"] == "won" && m["board"] == s.Board().ID
		}
	}
	if !placed || !over {
		t.Errorf("placed=%v over=%v in logs %q", placed, over, buf.String())
	}

	// a finished board logs nothing more
	buf.Reset()
	if _, err := s.Reveal(0, 0); err != nil {
		t.Fatalf("Reveal() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("no-op reveal logged %q", buf.String())
	}
}

func TestOutOfBoundsForwarded(t *testing.T) {
	captureLogs(t)
	s, err := New(config.Beginner, game.WithSeed(5))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := s.Reveal(9, 0); !errors.Is(err, game.ErrOutOfBounds) {
		t.Errorf("Reveal() error = %v, want ErrOutOfBounds", err)
	}
	if err := s.ToggleFlag(0, -1); !errors.Is(err, game.ErrOutOfBounds) {
		t.Errorf("ToggleFlag() error = %v, want ErrOutOfBounds", err)
	}
	if err := s.ToggleFlag(0, 0); err != nil {
		t.Errorf("ToggleFlag() error = %v", err)
	}
	if s.Board().FlagCount() != 1 {
		t.Errorf("FlagCount() = %d, want 1", s.Board().FlagCount())
	}
}
