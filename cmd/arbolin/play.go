package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arbolin/internal/platform/tui"
	"github.com/vovakirdan/arbolin/internal/progress"
	"github.com/vovakirdan/arbolin/internal/rules"
)

var (
	flagMutant   bool
	flagEndless  bool
	flagFuegorin bool
	flagBanana   bool
)

var playCmd = &cobra.Command{
	Use:   "play [tier]",
	Short: "Start a session directly",
	Long: `Start a session on the given tier (default: the one saved in settings).
Leaving the session exits the program.

Controls:
  Arrows/WASD  - Move (vim layout: hjkl)
  IJKL         - Aim seeds when a weapon was bought (vim layout: WASD)
  Space        - Area ability when charged
  P/Esc        - Pause
  R            - Restart after the end
  Q/Ctrl+C     - Quit

Examples:
  arbolin play
  arbolin play hacker
  arbolin play normal --endless --leaderboard http://localhost:3000`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMutant, "mutant", false, "Rare mutant sprouts worth more")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "No win score; the run goes to the leaderboard")
	playCmd.Flags().BoolVar(&flagFuegorin, "fuegorin", false, "Play as Fuegorín (unlock the full story first)")
	playCmd.Flags().BoolVar(&flagBanana, "banana", false, "Banana mode (unlock with a code first)")
}

func runPlay(_ *cobra.Command, args []string) error {
	req := &tui.PlayRequest{
		Modes: rules.Modes{
			Mutant:   flagMutant,
			Endless:  flagEndless,
			Fuegorin: flagFuegorin,
			Banana:   flagBanana,
		},
	}
	if len(args) == 1 {
		d, err := rules.ParseDifficulty(args[0])
		if err != nil {
			return err
		}
		req.Difficulty = d
	}

	if req.Modes.Fuegorin || req.Modes.Banana {
		if err := checkModes(req.Modes); err != nil {
			return err
		}
	}
	return runShell(req)
}

// checkModes rejects locked modes before the terminal is taken over.
func checkModes(m rules.Modes) error {
	store, player, err := localPlayer()
	if err != nil {
		return err
	}
	defer store.Close()

	p, err := store.LoadProgress(player)
	if err != nil {
		return err
	}
	if m.Fuegorin && !p.FuegorinAvailable() {
		return fmt.Errorf("fuegorín mode is locked: find all %d story parts first", len(rules.Story))
	}
	if m.Banana && !p.BananaAvailable() {
		return fmt.Errorf("banana mode is locked: redeem a code first")
	}
	return nil
}

// progressOrDefault is used by commands that only read progress.
func progressOrDefault() (progress.Progress, error) {
	store, player, err := localPlayer()
	if err != nil {
		return progress.Default(), err
	}
	defer store.Close()
	return store.LoadProgress(player)
}
