// internal/game/types.go
//
// Core type definitions for the Minesweeper board engine.
// Defines:
//   - Status: overall game state (playing/won/lost).
//   - Visibility: what the player currently sees on a cell.
//   - Value: the true content of a cell (neighbor count or mine).
//   - Board: state for a single board instance.

package game

import (
	"math/rand"
	"strconv"
)

// Status represents the state of a game.
// Possible values:
//   - "playing": the board still accepts reveals and flags.
//   - "won":     every non-mine cell has been uncovered.
//   - "lost":    a mine has been uncovered.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Visibility is the player-facing state of a single cell.
type Visibility uint8

const (
	Covered Visibility = iota
	Flagged
	Uncovered
)

// String returns the lowercase name of the visibility state.
func (v Visibility) String() string {
	switch v {
	case Covered:
		return "covered"
	case Flagged:
		return "flagged"
	case Uncovered:
		return "uncovered"
	default:
		return "unknown"
	}
}

// Value is the true content of a cell: 0..8 neighboring mines, or Mine.
type Value uint8

// Mine sorts above every neighbor count, so v <= 8 means "not a mine".
const Mine Value = 9

// IsMine reports whether the value marks a mine.
func (v Value) IsMine() bool { return v == Mine }

// String returns the count as a digit, or "mine".
func (v Value) String() string {
	if v == Mine {
		return "mine"
	}
	return strconv.Itoa(int(v))
}

// Board holds the state of a single Minesweeper board.
//
// Cells are stored row-major: index = y*Width + x.
// truth stays nil until the first reveal seeds the mine layout.
type Board struct {
	ID     string // Unique board identifier (random hex string), renewed on Reset.
	Width  int    // Number of columns.
	Height int    // Number of rows.
	Mines  int    // Number of mines placed on first reveal.

	status Status
	truth  []Value
	vis    []Visibility
	flags  int

	seed int64
	rng  *rand.Rand
}

// Option configures a Board at construction time.
type Option func(*Board)

// WithSeed makes mine placement deterministic for the given seed.
func WithSeed(seed int64) Option {
	return func(b *Board) {
		b.seed = seed
		b.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs a caller-owned PRNG. Seed() reports 0 in that case.
func WithRand(rng *rand.Rand) Option {
	return func(b *Board) {
		b.seed = 0
		b.rng = rng
	}
}
