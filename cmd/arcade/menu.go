package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/platform/tui"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
	"github.com/vovakirdan/pixel-arcade/internal/storage"
)

var flagMenuRecord bool

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After you quit a game, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Browse replays
  Esc/B        - Leave a game (back to the menu)
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --record --db ./replays.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagMenuRecord, "record", true, "Record every game for replay")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("arcade", true)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open replay database", "path", flagDBPath, "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{ScreenW: width, ScreenH: height, TickRate: flagFPS, Seed: flagSeed}

	for {
		choice, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = choice.Config // picks up resizes

		switch {
		case choice.Quit, choice.GameID == "" && !choice.WantsReplays:
			return nil

		case choice.WantsReplays:
			back, err := tui.RunReplays(store, "", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		default:
			if err := playFromMenu(choice.GameID, cfg, store, logger); err != nil {
				logger.Error("game failed", "game", choice.GameID, "error", err)
			}
		}
	}
}

// playFromMenu runs one game and returns to the menu loop. A fixed --seed
// applies to every game; otherwise each gets its own.
func playFromMenu(gameID string, cfg core.RuntimeConfig, store *storage.Store, logger *log.Logger) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if flagSeed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	_, err = tui.Run(game, cfg, tui.Options{
		Store:     store,
		Logger:    logger,
		Record:    flagMenuRecord && store != nil,
		AllowBack: true,
	})
	return err
}
