package game

import (
	"math"

	"github.com/vovakirdan/arbolin/internal/core"
	"github.com/vovakirdan/arbolin/internal/entity"
)

// generateScenario builds the static decorations for the active mode:
// grass for the classic forest, cracks and ash for Fuegorín, nothing for
// Banana.
func (g *Game) generateScenario() []entity.Entity {
	m := g.setup.Modes
	n := g.tuning.Scenery
	var decs []entity.Entity

	switch {
	case m.Banana:
		return nil
	case m.Fuegorin:
		for range n.Cracks {
			decs = append(decs, g.decoration(entity.VariantCrack,
				core.V(30+g.rng.Float64()*50, 4), core.ColorDarkRed, g.rng.Float64()*math.Pi))
		}
		for range n.Ash {
			c := core.ColorGray
			if g.rng.Float64() > 0.5 {
				c = core.ColorOrange
			}
			decs = append(decs, g.decoration(entity.VariantAsh, core.V(6, 6), c, 0))
		}
	default:
		for range n.Grass {
			decs = append(decs, g.decoration(entity.VariantGrass,
				core.V(8, 12), core.ColorGreen, g.rng.Float64()*0.4-0.2))
		}
	}
	return decs
}

func (g *Game) decoration(v entity.Variant, size core.Vec, c core.Color, rot float64) entity.Entity {
	return entity.Entity{
		ID:       g.newID(),
		Kind:     entity.KindDecoration,
		Variant:  v,
		Pos:      core.V(g.rng.Float64()*g.tuning.Arena.Width, g.rng.Float64()*g.tuning.Arena.Height),
		Size:     size,
		Color:    c,
		Rotation: rot,
	}
}
