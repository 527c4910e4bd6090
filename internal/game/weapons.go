package game

import (
	"math"
	"sort"

	"github.com/vovakirdan/arbolin/internal/core"
	"github.com/vovakirdan/arbolin/internal/entity"
	"github.com/vovakirdan/arbolin/internal/rules"
)

// fire shoots along aim when the cooldown allows it.
func (g *Game) fire(aim core.Vec, dt float64) {
	g.s.shotCooldown = max(g.s.shotCooldown-dt, 0)
	if aim.IsZero() || g.s.shotCooldown > timeEpsilon {
		return
	}

	w := g.tuning.Weapon
	g.s.shotCooldown = w.Cooldown
	if g.setup.HasPowerUp(rules.PowerRapidFire) {
		g.s.shotCooldown = w.RapidCooldown
	}

	angle := math.Atan2(aim.Y, aim.X)
	angles := []float64{angle}
	if g.setup.HasPowerUp(rules.PowerTripleShot) {
		angles = []float64{angle - w.Spread, angle, angle + w.Spread}
	}

	color := core.ColorLime
	if g.setup.Modes.Fuegorin {
		color = core.ColorOrange
	}
	origin := g.s.Player.Center().Sub(core.V(w.ProjectileSize/2, w.ProjectileSize/2))
	for _, a := range angles {
		g.s.Projectiles = append(g.s.Projectiles, entity.Entity{
			ID:    g.newID(),
			Kind:  entity.KindProjectile,
			Pos:   origin,
			Size:  core.V(w.ProjectileSize, w.ProjectileSize),
			Vel:   core.V(math.Cos(a), math.Sin(a)).Scale(w.ProjectileSpeed),
			Color: color,
		})
	}
}

// updateProjectiles moves seeds, removes each seed together with the first
// enemy it hits, and discards seeds that left the arena.
func (g *Game) updateProjectiles(dt float64) {
	w := g.tuning.Weapon
	bounds := g.arena().Inset(-w.DespawnMargin)

	kept := g.s.Projectiles[:0]
	for _, p := range g.s.Projectiles {
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		if g.hitEnemy(p.Center(), w.HitDistance) {
			continue
		}
		if bounds.Contains(p.Pos) {
			kept = append(kept, p)
		}
	}
	g.s.Projectiles = kept
}

// hitEnemy removes the first enemy whose centre is within d on both axes.
func (g *Game) hitEnemy(at core.Vec, d float64) bool {
	for i, e := range g.s.Enemies {
		ec := e.Center()
		if math.Abs(at.X-ec.X) < d && math.Abs(at.Y-ec.Y) < d {
			g.s.Enemies = append(g.s.Enemies[:i:i], g.s.Enemies[i+1:]...)
			return true
		}
	}
	return false
}

// triggerAbility removes the nearest enemies when the ability is armed.
func (g *Game) triggerAbility() {
	if !g.s.AbilityReady {
		return
	}
	g.s.AbilityReady = false

	c := g.s.Player.Center()
	sort.SliceStable(g.s.Enemies, func(i, j int) bool {
		return core.Dist(g.s.Enemies[i].Center(), c) < core.Dist(g.s.Enemies[j].Center(), c)
	})
	n := min(g.tuning.Ability.Clears, len(g.s.Enemies))
	g.s.Enemies = append([]entity.Entity(nil), g.s.Enemies[n:]...)
}
