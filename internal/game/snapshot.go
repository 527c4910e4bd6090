package game

// Snapshot is a read-only copy of the session readout for the platform
// layer. It uses primitive types only and shares nothing with the live
// session.
type Snapshot struct {
	Phase    string
	Score    int
	WinScore int
	Elapsed  float64

	Charge       int
	ChargeTarget int
	AbilityReady bool
	Shield       bool

	Enemies     int
	Sprouts     int
	Projectiles int

	DwellZone   int
	Dwell       float64
	DwellTarget float64

	NoSproutStreak     float64
	BestNoSproutStreak float64
}

// Snapshot returns the current readout.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:              g.s.Phase.String(),
		Score:              g.s.Score,
		WinScore:           g.WinScore(),
		Elapsed:            g.s.Elapsed,
		Charge:             g.s.Charge,
		ChargeTarget:       g.tuning.Ability.Charge,
		AbilityReady:       g.s.AbilityReady,
		Shield:             g.s.Shield,
		Enemies:            len(g.s.Enemies),
		Sprouts:            len(g.s.Sprouts),
		Projectiles:        len(g.s.Projectiles),
		DwellZone:          g.s.DwellZone,
		Dwell:              g.s.Dwell,
		DwellTarget:        g.tuning.Secrets.Dwell,
		NoSproutStreak:     g.s.NoSproutStreak,
		BestNoSproutStreak: g.s.BestNoSproutStreak,
	}
}
