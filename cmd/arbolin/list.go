package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arbolin/internal/registry"
	"github.com/vovakirdan/arbolin/internal/rules"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game variants and difficulty tiers",
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	maxIDLen := 2
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Println("Variants:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Tiers:")
	fmt.Println()
	for _, d := range rules.Difficulties {
		info := d.Info()
		fmt.Printf("  %-8s  %-8s  win at %d\n", d, info.Label, info.WinScore)
	}

	fmt.Println()
	fmt.Println("Run 'arbolin play <tier>' to start a session.")
}
