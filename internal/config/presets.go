package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDifficulty is returned by Lookup for names it does not know.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// CustomName selects explicit dimensions instead of a preset.
const CustomName = "custom"

// Preset is a named (width, height, mines) triple handed to the board.
type Preset struct {
	Name   string
	Width  int
	Height int
	Mines  int
}

func (p Preset) String() string {
	return fmt.Sprintf("%s %dx%d/%d", p.Name, p.Width, p.Height, p.Mines)
}

var (
	Beginner     = Preset{Name: "beginner", Width: 9, Height: 9, Mines: 10}
	Intermediate = Preset{Name: "intermediate", Width: 16, Height: 16, Mines: 40}
	Expert       = Preset{Name: "expert", Width: 30, Height: 16, Mines: 99}
)

// Presets lists the built-in difficulties in menu order.
func Presets() []Preset {
	return []Preset{Beginner, Intermediate, Expert}
}

// Lookup finds a preset by name (case-insensitive) or by its 1-based menu
// number, so "2" and "Intermediate" are equivalent.
func Lookup(name string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, p := range Presets() {
		if key == p.Name || key == fmt.Sprint(i+1) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
}
