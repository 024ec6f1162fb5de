package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/memorymatch/internal/config"
	"github.com/arcanaland/memorymatch/internal/game"
	"github.com/arcanaland/memorymatch/internal/logger"
	"github.com/arcanaland/memorymatch/internal/palette"
	"github.com/arcanaland/memorymatch/internal/render"
	"github.com/arcanaland/memorymatch/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in the terminal",
	Long: `Play deals a shuffled deck face down and lets you flip two cards at a time.
A matching pair stays up; anything else flips back after a moment.

Grid size and palette default to the values in your config file
(XDG_CONFIG_HOME/memorymatch/config.toml) and can be overridden with flags.

Examples:
  memorymatch play
  memorymatch play --size 6
  memorymatch play --palette ./animals.toml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		if cmd.Flags().Changed("size") {
			cfg.GridSize, _ = cmd.Flags().GetInt("size")
		}
		if cmd.Flags().Changed("palette") {
			cfg.Palette, _ = cmd.Flags().GetString("palette")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logFile, _ := cmd.Flags().GetString("log-file")
		level, _ := cmd.Flags().GetString("log-level")
		if !cmd.Flags().Changed("log-level") {
			level = cfg.LogLevel
		}
		log, closeLog, err := openPlayLog(logFile, level)
		if err != nil {
			return err
		}
		defer closeLog()

		p, err := palette.Load(cfg.Palette)
		if err != nil {
			return fmt.Errorf("error loading palette: %w", err)
		}

		engine, err := game.New(
			game.WithGridSize(cfg.GridSize),
			game.WithPalette(p),
			game.WithDelays(cfg.MatchDelay.Std(), cfg.MismatchDelay.Std()),
			game.WithLogger(log),
		)
		if err != nil {
			return err
		}

		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return fmt.Errorf("play needs an interactive terminal")
		}

		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("error switching terminal to raw mode: %v", err)
		}
		defer term.Restore(fd, state)

		fmt.Print("\x1b[?25l")
		defer fmt.Print("\x1b[?25h\r\n")

		ctx, stop := signal.NotifyContext(logger.WithLogger(cmd.Context(), log), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.Info("session started", "grid_size", cfg.GridSize, "palette", p.Name)
		session := tui.NewSession(engine, render.StdoutWidth(), log)
		if err := session.Run(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
			return err
		}
		log.Info("session ended", "won", engine.IsWon())
		return nil
	},
}

// openPlayLog opens the play log. The board owns stdout, so logs go to a file.
func openPlayLog(path, level string) (*slog.Logger, func(), error) {
	if path == "" {
		path = config.DefaultLogFilePath()
	}
	if path == "-" {
		return logger.Discard(), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("error creating log directory: %v", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening log file: %v", err)
	}

	return logger.Setup(level, file), func() { file.Close() }, nil
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().IntP("size", "s", 0, "Grid size: 2, 4 or 6 (default from config)")
	playCmd.Flags().StringP("palette", "p", "", "Path to a palette file (default from config)")
	playCmd.Flags().String("log-file", "", `Log file ("-" to disable; default XDG_STATE_HOME/memorymatch/play.log)`)
}
