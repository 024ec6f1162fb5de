package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/memorymatch/internal/logger"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "memorymatch",
	Short: "A memory-matching card game for the terminal",
	Long: `Memorymatch is a single-player concentration game. Cards are dealt face
down on a 2x2, 4x4 or 6x6 grid; flip two at a time and find every pair.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		l := logger.Setup(level, os.Stderr)
		cmd.SetContext(logger.WithLogger(cmd.Context(), l))
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
