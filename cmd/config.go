package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arcanaland/memorymatch/internal/config"
	"github.com/arcanaland/memorymatch/internal/logger"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage memorymatch settings",
	Long:  `Commands for creating, inspecting and changing the memorymatch config file.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		palettePath := cfg.Palette
		if palettePath == "" {
			palettePath = "(built-in)"
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config file:    %s\n", config.GetConfigFilePath())
		fmt.Fprintf(out, "Grid size:      %dx%d\n", cfg.GridSize, cfg.GridSize)
		fmt.Fprintf(out, "Palette:        %s\n", palettePath)
		fmt.Fprintf(out, "Match delay:    %s\n", cfg.MatchDelay.Std())
		fmt.Fprintf(out, "Mismatch delay: %s\n", cfg.MismatchDelay.Std())
		fmt.Fprintf(out, "Log level:      %s\n", cfg.LogLevel)
		return nil
	},
}

// configSetSizeCmd represents the config set-size command
var configSetSizeCmd = &cobra.Command{
	Use:   "set-size [2|4|6]",
	Short: "Set the default grid size",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("grid size must be a number: %s", args[0])
		}

		if err := config.SetGridSize(size); err != nil {
			return fmt.Errorf("error setting grid size: %w", err)
		}

		logger.FromContext(cmd.Context()).Info("default grid size changed", "grid_size", size)
		fmt.Fprintf(cmd.OutOrStdout(), "Default grid size set to: %dx%d\n", size, size)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetSizeCmd)
}
