package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arbolin/internal/progress"
	"github.com/vovakirdan/arbolin/internal/rules"
)

var flagJSON bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show progress, unlocks and achievements",
	Args:  cobra.NoArgs,
	RunE:  runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the raw progress record")
}

func runProgress(_ *cobra.Command, _ []string) error {
	p, err := progressOrDefault()
	if err != nil {
		return err
	}
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}

	fmt.Printf("Sprouts: %d  Ashes: %d  Bananas: %d\n", p.TotalSprouts, p.TotalAshes, p.TotalBananas)
	fmt.Printf("Losses: %d  Best survival: %.0fs\n", p.TotalLosses, p.MaxTotalSurvivalTime)
	fmt.Println()

	fmt.Print("Cleared:")
	for _, d := range rules.Difficulties {
		mark := "-"
		if p.Completed(d) {
			mark = "✓"
		}
		fmt.Printf("  %s %s", d.Info().Label, mark)
	}
	fmt.Println()
	fmt.Printf("Skins: %d/%d  Story: %d/%d\n", len(p.UnlockedSkins), len(rules.Skins), len(p.UnlockedStoryParts), len(rules.Story))
	fmt.Println()

	fmt.Println("Achievements:")
	for _, a := range progress.Achievements(p) {
		mark := " "
		if a.Unlocked {
			mark = "✓"
		}
		fmt.Printf("  [%s] %-22s %3d%%  %s\n", mark, a.Title, a.Percent(), a.Description)
	}
	return nil
}
