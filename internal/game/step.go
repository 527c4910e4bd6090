package game

import (
	"github.com/vovakirdan/arbolin/internal/core"
	"github.com/vovakirdan/arbolin/internal/entity"
	"github.com/vovakirdan/arbolin/internal/rules"
)

// Step advances the session by in.DT of simulated time.
//
// Order per tick: movement, ability, projectiles, secret zones, spawning,
// enemy collision, sprout collision. A secret found this tick ends the
// session before any collision is evaluated.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.s.Phase.Terminal() || g.s.Phase == PhaseInitializing {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		if g.s.Phase == PhasePaused {
			g.s.Phase = PhaseRunning
		} else {
			g.s.Phase = PhasePaused
		}
	}
	if g.s.Phase == PhasePaused {
		return core.StepResult{State: g.State()}
	}

	dt := min(in.Seconds(g.runtime.TickRate), maxStep)
	g.s.Frame++
	g.s.Elapsed += dt
	if g.setup.Difficulty == rules.Hacker {
		g.s.NoSproutStreak += dt
		g.s.BestNoSproutStreak = max(g.s.BestNoSproutStreak, g.s.NoSproutStreak)
	}

	g.movePlayer(in.Move, dt)

	if in.Has(core.ActionAbility) {
		g.triggerAbility()
	}

	if g.setup.HasWeapon() {
		g.updateProjectiles(dt)
		g.fire(in.Aim, dt)
	}

	if id, found := g.updateSecrets(dt); found {
		g.finish(PhaseSecretFound, id)
		return core.StepResult{State: g.State()}
	}

	g.spawn(dt)

	if g.collideEnemies() {
		g.finish(PhaseLost, 0)
		return core.StepResult{State: g.State()}
	}

	if g.collectSprouts() {
		g.finish(PhaseWon, 0)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) movePlayer(move core.Vec, dt float64) {
	speed := g.tuning.Player.Speed
	if g.setup.HasPowerUp(rules.PowerSpeed) {
		speed *= g.tuning.Player.SpeedBoost
	}
	p := &g.s.Player
	p.Pos = p.Pos.Add(move.Normalize().Scale(speed * dt))
	p.Pos.X = core.ClampF(p.Pos.X, 0, g.tuning.Arena.Width-p.Size.X)
	p.Pos.Y = core.ClampF(p.Pos.Y, 0, g.tuning.Arena.Height-p.Size.Y)
}

// collideEnemies resolves player/enemy overlaps and reports a loss.
// A shield absorbs exactly one enemy, which is removed.
func (g *Game) collideEnemies() bool {
	inset := g.tuning.Enemy.HitInset
	player := g.s.Player.Bounds().Inset(inset)

	for i := 0; i < len(g.s.Enemies); i++ {
		e := g.s.Enemies[i]
		if !player.Intersects(e.Bounds().Inset(inset)) {
			continue
		}
		if g.s.Shield {
			g.s.Shield = false
			id := e.ID
			g.s.Enemies = entity.Filter(g.s.Enemies, func(x entity.Entity) bool { return x.ID != id })
			i--
			continue
		}
		return true
	}
	return false
}

// collectSprouts consumes sprouts within pickup range and reports a win.
// Once the win score is reached no further sprouts are consumed.
func (g *Game) collectSprouts() bool {
	center := g.s.Player.Center()
	radius := g.tuning.Sprouts.PickupRadius
	winScore := g.WinScore()
	won := false

	g.s.Sprouts = entity.Filter(g.s.Sprouts, func(s entity.Entity) bool {
		if won || core.Dist(center, s.Center()) > radius {
			return true
		}
		v := s.Value()
		g.s.Score += v
		g.s.Charge += v
		g.s.NoSproutStreak = 0
		if g.s.Charge >= g.tuning.Ability.Charge {
			g.s.Charge -= g.tuning.Ability.Charge
			g.s.AbilityReady = true
		}
		if winScore > 0 && g.s.Score >= winScore {
			won = true
		}
		return false
	})
	return won
}
