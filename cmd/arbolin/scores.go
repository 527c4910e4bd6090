package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arbolin/internal/game"
	"github.com/vovakirdan/arbolin/internal/leaderboard"
)

var (
	flagLocal bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Show the online leaderboard when --leaderboard is set, otherwise the
endless runs recorded on this machine.

Examples:
  arbolin scores --leaderboard http://localhost:3000
  arbolin scores --local`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagLocal, "local", false, "Show local endless scores even when online")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
}

func runScores(_ *cobra.Command, _ []string) error {
	client, err := leaderboardClient()
	if err != nil {
		return err
	}
	if client != nil && !flagLocal {
		ctx, cancel := context.WithTimeout(context.Background(), leaderboard.DefaultSubmitTimeout)
		defer cancel()
		entries, err := client.Fetch(ctx)
		if err != nil {
			return err
		}
		fmt.Println("Leaderboard")
		fmt.Println()
		printEntries(entries)
		return nil
	}
	return runLocalScores()
}

func runLocalScores() error {
	store, _, err := localPlayer()
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(game.EndlessID, flagLimit)
	if err != nil {
		return err
	}
	entries := make([]leaderboard.Entry, len(scores))
	for i, s := range scores {
		entries[i] = leaderboard.Entry{Name: s.Name, Score: s.Score, Date: s.CreatedAt}
	}

	fmt.Println("Local endless scores")
	fmt.Println()
	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'arbolin play --endless' to set the first one!")
		return nil
	}
	printEntries(entries)

	stats, err := store.Stats(game.EndlessID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
	return nil
}

func printEntries(entries []leaderboard.Entry) {
	if len(entries) == 0 {
		fmt.Println("No entries yet.")
		return
	}
	fmt.Printf("  %-4s  %-12s  %-6s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %s\n", "----", "----", "-----", "----")
	for i, e := range entries {
		if flagLimit > 0 && i >= flagLimit {
			break
		}
		fmt.Printf("  %-4d  %-12s  %-6d  %s\n", i+1, e.Name, e.Score, e.Date.Local().Format(time.DateTime))
	}
}
