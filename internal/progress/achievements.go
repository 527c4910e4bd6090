package progress

// Achievement is a derived view over Progress. Nothing here is stored.
type Achievement struct {
	ID          string
	Title       string
	Description string
	SkinReward  string
	Unlocked    bool
	Current     int
	Target      int
}

// Percent is the completion in [0, 100].
func (a Achievement) Percent() int {
	if a.Target <= 0 || a.Unlocked {
		return 100
	}
	return min(a.Current*100/a.Target, 100)
}

// Achievements lists every achievement with its current progress.
func Achievements(p Progress) []Achievement {
	mk := func(id, title, desc, skin string, cur, target int) Achievement {
		return Achievement{
			ID: id, Title: title, Description: desc, SkinReward: skin,
			Unlocked: p.HasSkin(skin), Current: cur, Target: target,
		}
	}
	return []Achievement{
		mk("collect_50", "Recolector Novato", "Collect 50 sprouts in total.",
			"golden", p.TotalSprouts, GoldenSprouts),
		mk("all_difficulties", "Maestro del Bosque", "Clear every difficulty.",
			"void", len(p.CompletedDifficulties), VoidDifficulties),
		mk("lose_25", "Aprender del Dolor", "Lose 25 times.",
			"ghost", p.TotalLosses, GhostLosses),
		mk("lose_50", "Resiliencia Total", "Lose 50 times.",
			"peruano", p.TotalLosses, PeruanoLosses),
		mk("hacker_survival", "Economía de Guerra", "Last 50s on hacker without a sprout.",
			"venezolano", int(p.MaxHackerSurvival), VenezolanoHackerSec),
		mk("fuegorin_fail", "Capitán de Ceniza", "Lose 25 times as Fuegorín.",
			"bolivia", p.FuegorinLosses, BoliviaLosses),
		mk("total_survival", "Superviviente Legendario", "Survive 120 seconds in a single run.",
			"ancient", int(p.MaxTotalSurvivalTime), AncientSurvivalSec),
	}
}
