package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/memorymatch/internal/palette"
	"github.com/arcanaland/memorymatch/internal/validator"
)

// paletteCmd represents the palette command group
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Inspect and check card symbol palettes",
	Long: `A palette is a TOML file listing the symbols dealt onto cards:

  [palette]
  name = "Animals"
  description = "Furry friends"
  symbols = ["🐶", "🐱", "🐭", ...]

A 6x6 grid needs 18 symbols. Only the first gridSize²/2 symbols are dealt.`,
}

// paletteListCmd represents the palette ls command
var paletteListCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "List the symbols of a palette (the built-in one if no path is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		p, err := palette.Load(path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%d symbols)\n", p.Name, len(p.Symbols))
		if p.Description != "" {
			fmt.Fprintln(out, p.Description)
		}
		fmt.Fprintln(out)

		for _, size := range palette.GridSizes {
			pairs, err := p.Pairs(palette.PairsFor(size))
			if err != nil {
				fmt.Fprintf(out, "  %dx%d  not playable\n", size, size)
				continue
			}
			fmt.Fprintf(out, "  %dx%d  %s\n", size, size, strings.Join(pairs, " "))
		}
		return nil
	},
}

// paletteValidateCmd represents the palette validate command
var paletteValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a palette file",
	Long: `Validate checks that a palette file parses, names itself, has no empty or
duplicate symbols and has enough symbols for every grid size.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		palettePath := args[0]

		if _, err := os.Stat(palettePath); os.IsNotExist(err) {
			return fmt.Errorf("palette file not found: %s", palettePath)
		}

		v := validator.NewValidator(palettePath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Palette '%s' is valid.\n", palettePath)
		} else {
			fmt.Fprintf(out, "❌ Palette '%s' has %d validation errors:\n", palettePath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(paletteCmd)
	paletteCmd.AddCommand(paletteListCmd)
	paletteCmd.AddCommand(paletteValidateCmd)
}
