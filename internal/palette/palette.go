package palette

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrPaletteTooSmall is returned when a palette cannot supply the requested
// number of pairs.
var ErrPaletteTooSmall = errors.New("palette too small")

// ErrInvalidPalette is returned when symbols that would be dealt are blank
// or repeated.
var ErrInvalidPalette = errors.New("invalid palette")

// GridSizes lists the supported grid side lengths, smallest first.
var GridSizes = []int{2, 4, 6}

// Palette represents an ordered list of card symbols
type Palette struct {
	Name        string
	Description string
	Path        string
	Symbols     []string
}

// defaultSymbols holds the built-in symbols. The first twelve are the
// classic set; the rest exist so a 6x6 grid has enough pairs.
var defaultSymbols = []string{
	"🌍", "🎨", "🎮", "🎵", "⭐️", "🍕", "🚀", "🎭", "🎪", "🎯", "🎲", "🎸",
	"🌈", "🍩", "🐙", "🔔", "🌵", "🎈",
}

// Default returns the built-in palette
func Default() *Palette {
	symbols := make([]string, len(defaultSymbols))
	copy(symbols, defaultSymbols)

	return &Palette{
		Name:        "Classic",
		Description: "Built-in emoji palette",
		Symbols:     symbols,
	}
}

// LoadPalette loads a palette from a TOML file
func LoadPalette(path string) (*Palette, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("palette file not found: %s", path)
	}

	var config PaletteConfig
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("error parsing palette file: %v", err)
	}

	if len(config.Palette.Symbols) == 0 {
		return nil, fmt.Errorf("palette %s defines no symbols", path)
	}

	return &Palette{
		Name:        config.Palette.Name,
		Description: config.Palette.Description,
		Path:        path,
		Symbols:     config.Palette.Symbols,
	}, nil
}

// Load returns the palette at path, or the built-in palette when path is empty
func Load(path string) (*Palette, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadPalette(path)
}

// Pairs returns the first n symbols of the palette
func (p *Palette) Pairs(n int) ([]string, error) {
	if n < 0 || n > len(p.Symbols) {
		return nil, fmt.Errorf("%w: need %d symbols, %q has %d", ErrPaletteTooSmall, n, p.Name, len(p.Symbols))
	}

	pairs := make([]string, n)
	copy(pairs, p.Symbols[:n])
	return pairs, nil
}

// CheckSymbols reports an ErrInvalidPalette if any symbol is blank or appears
// more than once. Positions in the error are 1-based.
func CheckSymbols(symbols []string) error {
	seen := make(map[string]int, len(symbols))
	for i, s := range symbols {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: symbol %d is empty", ErrInvalidPalette, i+1)
		}
		if first, ok := seen[s]; ok {
			return fmt.Errorf("%w: symbol %d (%s) duplicates symbol %d", ErrInvalidPalette, i+1, s, first)
		}
		seen[s] = i + 1
	}
	return nil
}

// PairsFor returns the number of pairs a grid of the given size holds
func PairsFor(gridSize int) int {
	return gridSize * gridSize / 2
}

// MaxGridSize returns the largest supported grid size the palette can fill,
// or 0 if it cannot fill any.
func (p *Palette) MaxGridSize() int {
	largest := 0
	for _, size := range GridSizes {
		if PairsFor(size) <= len(p.Symbols) {
			largest = size
		}
	}
	return largest
}

// PaletteConfig is the on-disk layout of a palette file
type PaletteConfig struct {
	Palette PaletteSection `toml:"palette"`
}

type PaletteSection struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Symbols     []string `toml:"symbols"`
}
