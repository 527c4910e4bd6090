package game

// updateSecrets advances the dwell timer and reports a completed discovery.
// The timer only accumulates while the player stays inside the same zone;
// leaving or switching zones restarts it from zero.
func (g *Game) updateSecrets(dt float64) (int, bool) {
	c := g.s.Player.Center()
	fx := c.X / g.tuning.Arena.Width
	fy := c.Y / g.tuning.Arena.Height

	zone := 0
	for _, z := range g.zones {
		if z.Contains(fx, fy) {
			zone = z.ID
			break
		}
	}

	if zone == 0 {
		g.s.DwellZone = 0
		g.s.Dwell = 0
		return 0, false
	}
	if zone != g.s.DwellZone {
		g.s.DwellZone = zone
		g.s.Dwell = 0
	}

	g.s.Dwell += dt
	if g.s.Dwell+timeEpsilon >= g.tuning.Secrets.Dwell {
		return zone, true
	}
	return 0, false
}
