package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/games/breakout"
	"github.com/vovakirdan/pixel-arcade/internal/games/shooter"
	"github.com/vovakirdan/pixel-arcade/internal/games/tetris"
	termui "github.com/vovakirdan/pixel-arcade/internal/platform/term"
	"github.com/vovakirdan/pixel-arcade/internal/platform/tui"
	"github.com/vovakirdan/pixel-arcade/internal/platform/window"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
	"github.com/vovakirdan/pixel-arcade/internal/storage"
)

// Front ends accepted by --backend.
const (
	backendTUI    = "tui"
	backendTcell  = "tcell"
	backendWindow = "window"
)

var (
	flagConfig  string
	flagBackend string
	flagRecord  bool
	flagScale   float64
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Mouse          - Steer paddle / ship
  Left/Right/A/D - Move piece
  Down/S         - Soft drop
  Up/W           - Rotate
  Space          - Hard drop
  P/Esc          - Pause
  R              - Restart (after game over)
  Q/Ctrl+C       - Quit
  Ctrl+S         - Screenshot (tui backend)

Backends:
  tui     - Bubble Tea (default)
  tcell   - Raw terminal through tcell
  window  - Desktop window through Ebiten

Examples:
  arcade play tetris
  arcade play breakout --backend window
  arcade play shooter --record --seed 42
  arcade play tetris --config ./my-tetris.toml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagBackend, "backend", backendTUI, "Front end: tui, tcell, window")
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the session for replay")
	playCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale (window backend)")
}

// applyConfigPath validates a custom config file and hands it to the game.
func applyConfigPath(gameID, path string) error {
	if path == "" {
		return nil
	}

	var err error
	switch gameID {
	case "breakout":
		_, err = config.LoadBreakout(path)
		breakout.SetConfigPath(path)
	case "shooter":
		_, err = config.LoadShooter(path)
		shooter.SetConfigPath(path)
	case "tetris":
		_, err = config.LoadTetris(path)
		tetris.SetConfigPath(path)
	}
	return err
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see what is installed", gameID)
	}
	switch flagBackend {
	case backendTUI, backendTcell, backendWindow:
	default:
		return fmt.Errorf("unknown backend %q (want tui, tcell or window)", flagBackend)
	}
	if err := applyConfigPath(gameID, flagConfig); err != nil {
		return err
	}

	// Terminal front ends own the screen; keep logs off it.
	logger, closeLog, err := newLogger("arcade", flagBackend != backendWindow)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	width, height := terminalSize()
	cfg := core.RuntimeConfig{ScreenW: width, ScreenH: height, TickRate: flagFPS, Seed: flagSeed}

	// Recording is best-effort: without a database the game still runs.
	var store *storage.Store
	if flagRecord {
		if store, err = storage.Open(flagDBPath); err != nil {
			logger.Warn("could not open replay database", "path", flagDBPath, "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}
	record := store != nil

	logger.Info("starting game", "game", gameID, "backend", flagBackend, "seed", cfg.Seed, "fps", cfg.TickRate)

	var replayID string
	switch flagBackend {
	case backendTcell:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		replayID, err = termui.Run(ctx, game, cfg, termui.Options{Store: store, Logger: logger, Record: record})
	case backendWindow:
		replayID, err = window.Run(game, cfg, window.Options{Store: store, Logger: logger, Record: record, Scale: flagScale})
	default:
		replayID, err = tui.Run(game, cfg, tui.Options{Store: store, Logger: logger, Record: record})
	}
	if err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	if replayID != "" {
		fmt.Printf("Replay saved: %s\n", replayID)
	}
	return nil
}
