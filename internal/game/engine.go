// internal/game/engine.go
//
// Core engine for a single Minesweeper board.
// Responsibilities:
//   - Create and reset boards with validated dimensions and mine counts.
//   - Seed mines lazily on the first reveal, never under the revealed cell.
//   - Reveal cells, flood-filling blank areas level by level.
//   - Toggle flags and track state transitions: playing → won/lost.
//
// Notes:
//   - Coordinates outside the grid are caller errors (ErrOutOfBounds).
//   - Acting on a flagged/uncovered cell or a finished board is a silent no-op.
//   - The engine is single-threaded; callers serialize access.
package game

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
)

// New constructs a board of the given size, ready for its first reveal.
// Without WithSeed or WithRand, the PRNG is seeded from crypto/rand.
func New(width, height, mines int, opts ...Option) (*Board, error) {
	b := &Board{}
	for _, opt := range opts {
		opt(b)
	}
	if err := b.Reset(width, height, mines); err != nil {
		return nil, err
	}
	return b, nil
}

// Reset replaces all board state with a fresh, unseeded board.
// On invalid input the board is left untouched. The PRNG carries over, so
// a seeded board yields a reproducible sequence of layouts across resets.
func (b *Board) Reset(width, height, mines int) error {
	if err := validate(width, height, mines); err != nil {
		return err
	}
	if b.rng == nil {
		seed, err := newSeed()
		if err != nil {
			return err
		}
		WithSeed(seed)(b)
	}

	vis := make([]Visibility, width*height) // zero value is Covered
	b.ID = randomID()
	b.Width, b.Height, b.Mines = width, height, mines
	b.status = StatusPlaying
	b.truth = nil
	b.vis = vis
	b.flags = 0
	return nil
}

func validate(width, height, mines int) error {
	switch {
	case width <= 0 || height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, width, height)
	case width > math.MaxInt/height:
		return fmt.Errorf("%w: size %dx%d overflows", ErrInvalidConfig, width, height)
	case mines < 0:
		return fmt.Errorf("%w: negative mine count %d", ErrInvalidConfig, mines)
	case mines >= width*height:
		return fmt.Errorf("%w: %d mines leave no safe cell on %dx%d", ErrInvalidConfig, mines, width, height)
	}
	return nil
}

// Reveal uncovers the cell at (x, y) and returns the resulting status.
//
// The first reveal on a board places the mines, excluding (x, y).
// Revealing a mine loses the game and uncovers the whole board.
// Revealing a zero cell flood-reveals the surrounding blank area.
func (b *Board) Reveal(x, y int) (Status, error) {
	if err := b.check(x, y); err != nil {
		return b.status, err
	}
	if b.status != StatusPlaying {
		return b.status, nil
	}
	i := b.index(x, y)
	if b.vis[i] != Covered {
		return b.status, nil
	}

	if b.truth == nil {
		b.placeMines(i)
	}

	b.vis[i] = Uncovered
	switch {
	case b.truth[i].IsMine():
		b.lose()
		return b.status, nil
	case b.truth[i] == 0:
		b.flood(i)
	}

	if b.checkWin() {
		b.status = StatusWon
	}
	return b.status, nil
}

// ToggleFlag flips a covered cell to flagged and back.
// Uncovered cells and finished boards are left alone.
func (b *Board) ToggleFlag(x, y int) error {
	if err := b.check(x, y); err != nil {
		return err
	}
	if b.status != StatusPlaying {
		return nil
	}
	i := b.index(x, y)
	switch b.vis[i] {
	case Covered:
		b.vis[i] = Flagged
		b.flags++
	case Flagged:
		b.vis[i] = Covered
		b.flags--
	}
	return nil
}

// Status reports the current game status.
func (b *Board) Status() Status { return b.status }

// VisibilityAt reports what the player sees at (x, y).
func (b *Board) VisibilityAt(x, y int) (Visibility, error) {
	if err := b.check(x, y); err != nil {
		return Covered, err
	}
	return b.vis[b.index(x, y)], nil
}

// RenderValueAt returns the true content of an uncovered cell.
// Covered and flagged cells return ErrCellHidden.
func (b *Board) RenderValueAt(x, y int) (Value, error) {
	if err := b.check(x, y); err != nil {
		return 0, err
	}
	i := b.index(x, y)
	if b.vis[i] != Uncovered {
		return 0, fmt.Errorf("%w: (%d,%d) is %s", ErrCellHidden, x, y, b.vis[i])
	}
	return b.truth[i], nil
}

// Populated reports whether the mine layout exists yet.
func (b *Board) Populated() bool { return b.truth != nil }

// FlagCount is the number of currently flagged cells.
func (b *Board) FlagCount() int { return b.flags }

// MinesRemaining is the mine count minus placed flags; it goes negative
// when the player over-flags.
func (b *Board) MinesRemaining() int { return b.Mines - b.flags }

// Seed returns the PRNG seed the board was built with, or 0 when the
// generator came from WithRand.
func (b *Board) Seed() int64 { return b.seed }

// Dimensions returns width and height.
func (b *Board) Dimensions() (int, int) { return b.Width, b.Height }

// ----------------------------- internals -----------------------------------

func (b *Board) check(x, y int) error {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, x, y, b.Width, b.Height)
	}
	return nil
}

func (b *Board) index(x, y int) int { return y*b.Width + x }

// neighbors calls fn with the index of every in-grid 8-neighbor of i.
// Edges clip; there is no wraparound.
func (b *Board) neighbors(i int, fn func(n int)) {
	x, y := i%b.Width, i/b.Width
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx >= 0 && nx < b.Width && ny >= 0 && ny < b.Height {
				fn(b.index(nx, ny))
			}
		}
	}
}

// placeMines chooses b.Mines distinct cells uniformly at random from every
// cell except safe, then computes neighbor counts for the rest.
func (b *Board) placeMines(safe int) {
	n := b.Width * b.Height
	candidates := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != safe {
			candidates = append(candidates, i)
		}
	}
	b.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	truth := make([]Value, n)
	for _, c := range candidates[:b.Mines] {
		truth[c] = Mine
	}
	for i := range truth {
		if truth[i].IsMine() {
			continue
		}
		var count Value
		b.neighbors(i, func(j int) {
			if truth[j].IsMine() {
				count++
			}
		})
		truth[i] = count
	}
	b.truth = truth
}

// flood uncovers the blank area around seed, one frontier at a time.
// A neighbor is uncovered only while Covered, so every cell joins a
// frontier at most once and the loop ends within W*H steps.
func (b *Board) flood(seed int) {
	frontier := []int{seed}
	for len(frontier) > 0 {
		var next []int
		for _, c := range frontier {
			b.neighbors(c, func(j int) {
				if b.vis[j] != Covered || b.truth[j].IsMine() {
					return
				}
				b.vis[j] = Uncovered
				if b.truth[j] == 0 {
					next = append(next, j)
				}
			})
		}
		frontier = next
	}
}

// lose ends the game and uncovers every cell, flags included.
func (b *Board) lose() {
	b.status = StatusLost
	for i := range b.vis {
		b.vis[i] = Uncovered
	}
	b.flags = 0
}

// checkWin is true when every non-mine cell is uncovered.
func (b *Board) checkWin() bool {
	for i, v := range b.vis {
		if v != Uncovered && !b.truth[i].IsMine() {
			return false
		}
	}
	return true
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var buf [8]byte
	_, _ = rand.Read(buf[:])
	return hex.EncodeToString(buf[:])
}

// newSeed draws a layout seed for boards built without WithSeed/WithRand.
func newSeed() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("board seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}
