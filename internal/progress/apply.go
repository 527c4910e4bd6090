package progress

import (
	"github.com/vovakirdan/arbolin/internal/rules"
)

// Unlock thresholds.
const (
	GoldenSprouts       = 50
	GhostLosses         = 25
	PeruanoLosses       = 50
	VenezolanoHackerSec = 50
	BoliviaLosses       = 25
	AncientSurvivalSec  = 120
	VoidDifficulties    = 5
)

// Apply folds one finished session into prev and returns the new record.
// prev is not modified. Every threshold is checked against the updated
// totals, so one result may unlock several skins at once.
func Apply(prev Progress, r rules.GameResult, modes rules.Modes) Progress {
	p := prev.Normalize()

	p.addCurrency(modes.Currency(), max(r.Score, 0))

	// a secret ending is a lost run that also unlocks something
	if r.Outcome == rules.OutcomeLost || r.Outcome == rules.OutcomeSecretFound {
		p.TotalLosses++
		if modes.Fuegorin {
			p.FuegorinLosses++
		}
		if modes.Banana {
			p.BananaLosses++
		}
	}

	p.MaxHackerSurvival = max(p.MaxHackerSurvival, r.HackerSurvivalTime)
	p.MaxTotalSurvivalTime = max(p.MaxTotalSurvivalTime, r.TotalSurvivalTime)

	if r.Outcome == rules.OutcomeWon && !modes.Endless && !modes.Fuegorin && r.Difficulty.Valid() {
		p.CompletedDifficulties = union(p.CompletedDifficulties, r.Difficulty)
		if skin, ok := rules.ClearReward(r.Difficulty); ok {
			p.UnlockedSkins = union(p.UnlockedSkins, skin)
		}
	}

	switch r.UnlockedSecret {
	case 0:
	case rules.PeelSecretID:
		p.HasSacredPeel = true
	case rules.CaramelSecretID:
		p.HasCaramelBanana = true
	default:
		p.UnlockedStoryParts = union(p.UnlockedStoryParts, r.UnlockedSecret)
	}
	if r.FoundPeel {
		p.HasSacredPeel = true
	}
	if r.FoundCaramel {
		p.HasCaramelBanana = true
	}

	return p.unlockThresholds()
}

func (p Progress) unlockThresholds() Progress {
	grant := func(cond bool, skin string) {
		if cond {
			p.UnlockedSkins = union(p.UnlockedSkins, skin)
		}
	}
	grant(p.TotalSprouts >= GoldenSprouts, "golden")
	grant(p.TotalLosses >= GhostLosses, "ghost")
	grant(p.TotalLosses >= PeruanoLosses, "peruano")
	grant(p.MaxHackerSurvival >= VenezolanoHackerSec, "venezolano")
	grant(p.FuegorinLosses >= BoliviaLosses, "bolivia")
	grant(p.MaxTotalSurvivalTime >= AncientSurvivalSec, "ancient")
	grant(len(p.CompletedDifficulties) >= VoidDifficulties, "void")
	return p
}
