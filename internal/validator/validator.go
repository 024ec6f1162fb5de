package validator

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/memorymatch/internal/palette"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	PalettePath string
	Results     ValidationResults
}

func NewValidator(palettePath string) *Validator {
	return &Validator{
		PalettePath: palettePath,
		Results:     ValidationResults{},
	}
}

// Validate checks a palette file. The returned error is reserved for files
// that cannot be read or parsed; everything else lands in the results.
func (v *Validator) Validate() (ValidationResults, error) {
	config, err := v.decode()
	if err != nil {
		return v.Results, err
	}

	v.validateMetadata(config.Palette)
	v.validateSymbols(config.Palette.Symbols)
	v.validateCapacity(config.Palette.Symbols)

	return v.Results, nil
}

func (v *Validator) decode() (*palette.PaletteConfig, error) {
	if _, err := os.Stat(v.PalettePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("palette file not found: %s", v.PalettePath)
	}

	var config palette.PaletteConfig
	meta, err := toml.DecodeFile(v.PalettePath, &config)
	if err != nil {
		return nil, fmt.Errorf("error parsing palette file: %v", err)
	}

	for _, key := range meta.Undecoded() {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("unknown key in palette file: %s", key))
	}

	return &config, nil
}

func (v *Validator) validateMetadata(section palette.PaletteSection) {
	if strings.TrimSpace(section.Name) == "" {
		v.Results.Errors = append(v.Results.Errors, "palette.name is required")
	}

	if section.Description == "" {
		v.Results.Warnings = append(v.Results.Warnings, "palette.description is empty")
	}
}

// validateSymbols checks each symbol on its own and against the others
func (v *Validator) validateSymbols(symbols []string) {
	if len(symbols) == 0 {
		v.Results.Errors = append(v.Results.Errors, "palette.symbols must contain at least one symbol")
		return
	}

	seen := make(map[string]int)
	for i, symbol := range symbols {
		if strings.TrimSpace(symbol) == "" {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("symbol %d is empty", i+1))
			continue
		}

		if first, ok := seen[symbol]; ok {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("symbol %d (%s) duplicates symbol %d", i+1, symbol, first+1))
			continue
		}
		seen[symbol] = i

		if strings.ContainsFunc(symbol, unicode.IsControl) {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("symbol %d contains control characters", i+1))
		} else if len([]rune(symbol)) > 4 {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("symbol %d (%s) is long and may not fit on a card", i+1, symbol))
		}
	}
}

// validateCapacity checks the palette against the supported grid sizes
func (v *Validator) validateCapacity(symbols []string) {
	largest := palette.GridSizes[len(palette.GridSizes)-1]
	need := palette.PairsFor(largest)

	if len(symbols) < need {
		p := &palette.Palette{Symbols: symbols}
		if playable := p.MaxGridSize(); playable > 0 {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("palette has %d symbols, a %dx%d grid needs %d (largest playable grid: %dx%d)",
					len(symbols), largest, largest, need, playable, playable))
		} else {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("palette has %d symbols, a %dx%d grid needs %d (no grid size is playable)",
					len(symbols), largest, largest, need))
		}
		return
	}

	if extra := len(symbols) - need; extra > 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%d symbols beyond the first %d are never dealt", extra, need))
	}
}
