package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-arcade/internal/platform/tui"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
	"github.com/vovakirdan/pixel-arcade/internal/replay"
	"github.com/vovakirdan/pixel-arcade/internal/storage"
)

var (
	flagReplaysPlain bool
	flagReplayConfig string
)

var replaysCmd = &cobra.Command{
	Use:   "replays [game]",
	Short: "Browse recorded sessions",
	Long: `Browse recorded sessions in an interactive table.

Enter re-simulates the selected replay and checks its final state,
x deletes it. With --plain the newest recordings are printed instead.

Examples:
  arcade replays
  arcade replays tetris
  arcade replays --plain`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded session and verify it",
	Long: `Rebuild the recorded game with its seed, feed it every recorded input
frame and compare the final state with the one stored at record time.

Exits non-zero when the replay does not reproduce. A session played with
--config must be replayed with the same file.

Examples:
  arcade replay 3f2c9a1e-5b1d-4a57-9a4f-1c0e2d7b8a90
  arcade replay 3f2c9a1e-5b1d-4a57-9a4f-1c0e2d7b8a90 --config ./fast.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replaysCmd.Flags().BoolVar(&flagReplaysPlain, "plain", false, "Print a table instead of the interactive browser")
	replayCmd.Flags().StringVar(&flagReplayConfig, "config", "", "Game config the session was played with (YAML or TOML)")
}

// errMismatch makes the process exit with status 2.
var errMismatch = errors.New("replay does not reproduce")

func runReplays(_ *cobra.Command, args []string) error {
	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown game %q, run 'arcade list' to see what is installed", gameID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if !flagReplaysPlain {
		width, height := terminalSize()
		_, err := tui.RunReplays(store, gameID, width, height)
		return err
	}

	replays, err := store.ListReplays(gameID, 20)
	if err != nil {
		return err
	}
	if len(replays) == 0 {
		fmt.Println("No replays recorded yet. Play with 'arcade play <game> --record' to keep one.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tGAME\tSCORE\tRESULT\tTICKS\tRECORDED")
	for _, r := range replays {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\t%s\n",
			r.ID, r.GameID, r.Score, r.Outcome, r.Ticks, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func runReplay(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	res, err := verifyWithConfig(store, args[0], flagReplayConfig)
	if err != nil {
		return err
	}

	r := res.Replay
	fmt.Printf("Replay %s\n", r.ID)
	fmt.Printf("  game:    %s\n", r.GameID)
	fmt.Printf("  seed:    %d\n", r.Seed)
	fmt.Printf("  ticks:   %d at %d Hz\n", r.Ticks, r.TickRate)
	fmt.Printf("  score:   %d recorded, %d replayed\n", r.Score, res.State.Score)
	fmt.Printf("  outcome: %s recorded, %s replayed\n", r.Outcome, replay.Outcome(res.State))

	if !res.Match() {
		fmt.Printf("MISMATCH: final hash %016x, recorded %016x\n", res.Hash, r.FinalHash)
		return errMismatch
	}
	fmt.Printf("OK: final hash %016x\n", res.Hash)
	return nil
}

// verifyWithConfig re-simulates replay id after pointing its game at
// configPath, the way play does for --config.
func verifyWithConfig(store *storage.Store, id, configPath string) (replay.Result, error) {
	rep, frames, err := store.LoadReplay(id)
	if err != nil {
		return replay.Result{}, err
	}
	if err := applyConfigPath(rep.GameID, configPath); err != nil {
		return replay.Result{}, fmt.Errorf("replay %s: %w", id, err)
	}
	g, err := registry.Create(rep.GameID)
	if err != nil {
		return replay.Result{}, fmt.Errorf("replay %s: %w", id, err)
	}
	return replay.Run(g, rep, frames), nil
}
