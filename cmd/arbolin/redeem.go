package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arbolin/internal/progress"
)

var redeemCmd = &cobra.Command{
	Use:   "redeem <code>",
	Short: "Redeem a code",
	Args:  cobra.ExactArgs(1),
	RunE:  runRedeem,
}

func runRedeem(_ *cobra.Command, args []string) error {
	store, player, err := localPlayer()
	if err != nil {
		return err
	}
	defer store.Close()

	p, err := store.LoadProgress(player)
	if err != nil {
		return err
	}
	next, ok := progress.Redeem(p, args[0])
	if !ok {
		return fmt.Errorf("invalid code %q", args[0])
	}
	if err := store.SaveProgress(player, next); err != nil {
		return err
	}

	fmt.Println("Code redeemed!")
	if next.BananaAvailable() && !p.BananaAvailable() {
		fmt.Println("Banana mode unlocked.")
	}
	if next.HasSacredPeel && !p.HasSacredPeel {
		fmt.Println("You found the Sacred Peel.")
	}
	return nil
}
