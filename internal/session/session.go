// internal/session/session.go
//
// Session owns the board the player is currently on.
//
// Characteristics:
//   - Exactly one *game.Board per session; restart and difficulty changes
//     reset it in place so no state from the previous game survives.
//   - The board PRNG carries across games, so a seeded session replays the
//     same sequence of layouts.
//   - Not safe for concurrent use; the caller's input loop drives it.
//   - Game transitions (new game, first reveal, win, loss) are logged.

package session

import (
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/minesweeper/internal/config"
	"github.com/robalobadob/minesweeper/internal/game"
)

// Session tracks the active board and the difficulty it was built from.
type Session struct {
	board  *game.Board
	preset config.Preset
}

// New starts a session on a fresh board for the given preset.
func New(p config.Preset, opts ...game.Option) (*Session, error) {
	b, err := game.New(p.Width, p.Height, p.Mines, opts...)
	if err != nil {
		return nil, err
	}
	s := &Session{board: b, preset: p}
	s.logNewGame()
	return s, nil
}

// Board exposes the active board for read access.
func (s *Session) Board() *game.Board { return s.board }

// Preset reports the difficulty of the active board.
func (s *Session) Preset() config.Preset { return s.preset }

// Restart throws away the current game and starts another at the same difficulty.
func (s *Session) Restart() error {
	return s.SetDifficulty(s.preset)
}

// SetDifficulty replaces the board with a fresh one for p.
// An invalid preset leaves the current game running.
func (s *Session) SetDifficulty(p config.Preset) error {
	if err := s.board.Reset(p.Width, p.Height, p.Mines); err != nil {
		log.Debug().Err(err).Str("difficulty", p.Name).Msg("difficulty rejected")
		return err
	}
	s.preset = p
	s.logNewGame()
	return nil
}

// Reveal forwards to the board and logs any transition it causes.
func (s *Session) Reveal(x, y int) (game.Status, error) {
	b := s.board
	before, seeded := b.Status(), b.Populated()

	st, err := b.Reveal(x, y)
	if err != nil {
		log.Debug().Err(err).Str("board", b.ID).Msg("reveal rejected")
		return st, err
	}
	if !seeded && b.Populated() {
		log.Debug().
			Str("board", b.ID).
			Int64("seed", b.Seed()).
			Int("x", x).
			Int("y", y).
			Msg("mines placed")
	}
	if before == game.StatusPlaying && st != game.StatusPlaying {
		log.Info().
			Str("board", b.ID).
			Str("difficulty", s.preset.Name).
			Str("status", string(st)).
			Msg("game over")
	}
	return st, nil
}

// ToggleFlag forwards to the board.
func (s *Session) ToggleFlag(x, y int) error {
	if err := s.board.ToggleFlag(x, y); err != nil {
		log.Debug().Err(err).Str("board", s.board.ID).Msg("flag rejected")
		return err
	}
	return nil
}

func (s *Session) logNewGame() {
	log.Info().
		Str("board", s.board.ID).
		Str("difficulty", s.preset.Name).
		Int("width", s.preset.Width).
		Int("height", s.preset.Height).
		Int("mines", s.preset.Mines).
		Msg("new game")
}
