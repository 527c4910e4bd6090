// arbolin is a terminal survival/collection game with an online leaderboard.
//
// Usage:
//
//	arbolin                  - Start the interactive shell
//	arbolin play [tier]      - Start a session directly
//	arbolin list             - List the game variants
//	arbolin serve            - Run the leaderboard service (and SSH play)
//	arbolin scores           - Show the leaderboard or local endless scores
//	arbolin redeem <code>    - Redeem a code
//	arbolin progress         - Show progress and achievements
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible sessions
//	--db <path>           - Set database path (default: ~/.arbolin/arbolin.db)
//	--config <path>       - Custom arbolin.yaml
//	--leaderboard <url>   - Leaderboard service base URL
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arbolin/internal/audio"
	"github.com/vovakirdan/arbolin/internal/config"
	"github.com/vovakirdan/arbolin/internal/core"
	"github.com/vovakirdan/arbolin/internal/leaderboard"
	"github.com/vovakirdan/arbolin/internal/platform/tui"
	"github.com/vovakirdan/arbolin/internal/storage"

	// Register the game variants
	_ "github.com/vovakirdan/arbolin/internal/game"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagConfig      string
	flagLeaderboard string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arbolin",
	Short: "Arbolín - collect sprouts, dodge the fire",
	Long: `Arbolín is a terminal survival game. Collect sprouts, dodge the
flames, hunt the hidden story and climb the online leaderboard.

Examples:
  arbolin
  arbolin play hard --mutant
  arbolin serve --ssh :2222
  arbolin scores --leaderboard http://localhost:3000`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runShell(nil)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arbolin/arbolin.db", "Path to the local database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom arbolin.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLeaderboard, "leaderboard", "", "Leaderboard base URL (empty = offline)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(redeemCmd)
	rootCmd.AddCommand(progressCmd)
}

// loadConfig reads the tuning file. A broken file is reported and the
// embedded defaults are used.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	return cfg
}

// openStore opens the local database, or returns nil and warns.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		return nil
	}
	return store
}

// leaderboardClient returns nil when no service is configured.
func leaderboardClient() (*leaderboard.Client, error) {
	if flagLeaderboard == "" {
		return nil, nil
	}
	return leaderboard.NewClient(flagLeaderboard)
}

func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// runShell starts the interactive shell, optionally straight into a session.
func runShell(play *tui.PlayRequest) error {
	cfg := loadConfig()
	client, err := leaderboardClient()
	if err != nil {
		return err
	}
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	sound := audio.NewPlayer(true)
	defer sound.Close()

	return tui.Run(tui.Options{
		Store:       store,
		Runtime:     runtimeConfig(),
		Tuning:      cfg.Game,
		Leaderboard: client,
		Audio:       sound,
		Play:        play,
	})
}

// localPlayer opens the store and returns the device's player key.
func localPlayer() (*storage.Store, string, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, "", err
	}
	id, err := store.DeviceID()
	if err != nil {
		store.Close()
		return nil, "", err
	}
	return store, id, nil
}
