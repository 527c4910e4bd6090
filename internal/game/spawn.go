package game

import (
	"github.com/vovakirdan/arbolin/internal/core"
	"github.com/vovakirdan/arbolin/internal/entity"
)

// spawn runs the enemy and mutant clocks and tops up the sprout floor.
func (g *Game) spawn(dt float64) {
	every := g.setup.Difficulty.Info().SpawnEvery
	g.s.enemyClock += dt
	for g.s.enemyClock >= every {
		g.s.enemyClock -= every
		g.spawnEnemy()
	}

	if g.setup.Modes.Mutant {
		g.s.mutantClock += dt
		if g.s.mutantClock >= g.tuning.Sprouts.MutantEvery {
			g.s.mutantClock -= g.tuning.Sprouts.MutantEvery
			g.spawnSprout(entity.KindMutant)
		}
	}

	// one replacement per tick
	if g.s.collectibles() < g.tuning.Sprouts.MinLive {
		g.spawnSprout(entity.KindSprout)
	}
}

// spawnEnemy places one enemy uniformly in the arena. Spawns too close to
// the player are skipped rather than retried.
func (g *Game) spawnEnemy() {
	w, h := g.tuning.Enemy.Width, g.tuning.Enemy.Height
	pos := core.V(
		g.rng.Float64()*(g.tuning.Arena.Width-w),
		g.rng.Float64()*(g.tuning.Arena.Height-h),
	)
	e := entity.Entity{
		Kind:  entity.KindEnemy,
		Pos:   pos,
		Size:  core.V(w, h),
		Color: g.enemyColor(),
	}
	if core.Dist(e.Center(), g.s.Player.Center()) < g.tuning.Enemy.SpawnExclusion {
		return
	}
	e.ID = g.newID()
	g.s.Enemies = append(g.s.Enemies, e)
}

func (g *Game) spawnSprout(kind entity.Kind) {
	size := g.tuning.Sprouts.Size
	if kind == entity.KindMutant {
		size = g.tuning.Sprouts.MutantSize
	}
	m := g.tuning.Sprouts.Margin
	pos := core.V(
		m+g.rng.Float64()*(g.tuning.Arena.Width-2*m-size),
		m+g.rng.Float64()*(g.tuning.Arena.Height-2*m-size),
	)
	g.s.Sprouts = append(g.s.Sprouts, entity.Entity{
		ID:    g.newID(),
		Kind:  kind,
		Pos:   pos,
		Size:  core.V(size, size),
		Color: g.sproutColor(kind),
	})
}

func (g *Game) enemyColor() core.Color {
	if g.setup.Modes.Fuegorin && !g.setup.Modes.Banana {
		return core.ColorBlue
	}
	return core.ColorRed
}

func (g *Game) sproutColor(kind entity.Kind) core.Color {
	m := g.setup.Modes
	switch {
	case m.Banana && kind == entity.KindMutant:
		return core.ColorPink
	case m.Banana:
		return core.ColorYellow
	case kind == entity.KindMutant:
		return core.ColorPurple
	case m.Fuegorin:
		return core.ColorGray
	default:
		return core.ColorLime
	}
}
