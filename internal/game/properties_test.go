package game

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/arbolin/internal/config"
	"github.com/vovakirdan/arbolin/internal/core"
	"github.com/vovakirdan/arbolin/internal/entity"
	"github.com/vovakirdan/arbolin/internal/rules"
)

func drawSetup(t *rapid.T) rules.Setup {
	return rules.Setup{
		Difficulty: rapid.SampledFrom(rules.Difficulties).Draw(t, "difficulty"),
		Modes: rules.Modes{
			Mutant:   rapid.Bool().Draw(t, "mutant"),
			Endless:  rapid.Bool().Draw(t, "endless"),
			Fuegorin: rapid.Bool().Draw(t, "fuegorin"),
			Banana:   rapid.Bool().Draw(t, "banana"),
		},
	}
}

func drawFrame(t *rapid.T) core.InputFrame {
	in := frame(rapid.Float64Range(0.001, 0.1).Draw(t, "dt"))
	angle := rapid.Float64Range(0, 2*math.Pi).Draw(t, "angle")
	if rapid.IntRange(0, 4).Draw(t, "still") > 0 {
		in.Move = core.V(math.Cos(angle), math.Sin(angle))
	}
	return in
}

// Score never decreases, never passes the win score before a win, and
// freezes once the session ends.
func TestScoreProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		setup := drawSetup(t)
		g := New(setup, config.DefaultGame())
		g.Reset(core.RuntimeConfig{TickRate: 60, Seed: rapid.Int64().Draw(t, "seed")})
		win := setup.Difficulty.Info().WinScore

		prev := 0
		n := rapid.IntRange(1, 400).Draw(t, "ticks")
		for range n {
			g.Step(drawFrame(t))
			score := g.State().Score

			if score < prev {
				t.Fatalf("score decreased %d -> %d", prev, score)
			}
			if !setup.Modes.Endless && g.Phase() != PhaseWon && score >= win {
				t.Fatalf("score %d reached win %d without winning (phase %s)", score, win, g.Phase())
			}
			if g.Phase() == PhaseWon && setup.Modes.Endless {
				t.Fatal("endless session won")
			}
			if g.Phase().Terminal() {
				r, ok := g.Result()
				if !ok || r.Score != score {
					t.Fatalf("terminal result %+v does not match score %d", r, score)
				}
				steps(g, 3, frame(0.05))
				if g.State().Score != score {
					t.Fatal("score changed after the session ended")
				}
				return
			}
			prev = score

			p := g.s.Player
			if p.Pos.X < 0 || p.Pos.Y < 0 || p.Pos.X+p.Size.X > 450 || p.Pos.Y+p.Size.Y > 800 {
				t.Fatalf("player outside arena: %+v", p.Pos)
			}
		}
	})
}

// A shielded collision always keeps the session alive, drops the shield and
// removes exactly one enemy.
func TestShieldProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		setup := drawSetup(t)
		setup.PowerUps = []rules.PowerUp{rules.PowerShield}
		g := New(setup, config.DefaultGame())
		g.Reset(core.RuntimeConfig{TickRate: 60, Seed: rapid.Int64().Draw(t, "seed")})
		noEnemies(g)
		g.s.Sprouts = nil

		// stay clear of every secret zone
		placeAt(g, rapid.Float64Range(100, 300).Draw(t, "x"), rapid.Float64Range(200, 250).Draw(t, "y"))
		enemyOnPlayer(g)
		others := rapid.IntRange(0, 5).Draw(t, "others")
		for range others {
			g.s.Enemies = append(g.s.Enemies, entity.Entity{
				ID: g.newID(), Kind: entity.KindEnemy, Pos: core.V(0, 700), Size: core.V(40, 50),
			})
		}

		g.Step(frame(1.0 / 60))

		if g.Phase() != PhaseRunning {
			t.Fatalf("shielded collision ended the session: %s", g.Phase())
		}
		if g.s.Shield {
			t.Fatal("shield still active")
		}
		if len(g.s.Enemies) != others {
			t.Fatalf("enemies = %d, expected %d", len(g.s.Enemies), others)
		}
	})
}

// Discovery depends on simulated time only: whatever the tick sizes, the
// secret fires on the first tick where accumulated dwell reaches 2s.
func TestDwellFrameRateIndependent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := New(rules.Setup{Difficulty: rules.Easy}, config.DefaultGame())
		g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})
		noEnemies(g)
		g.s.Sprouts = nil
		inTopLeft(g)

		total := 0.0
		for g.Phase() == PhaseRunning {
			dt := rapid.Float64Range(0.01, 0.2).Draw(t, "dt")
			in := frame(dt)
			total += in.Seconds(60)
			g.Step(in)
			if g.Phase() == PhaseRunning && total >= 2.0+1e-6 {
				t.Fatalf("not found after %.4fs of dwell", total)
			}
		}
		if total < 2.0-1e-6 {
			t.Fatalf("found early after %.4fs", total)
		}
		if r, _ := g.Result(); r.UnlockedSecret != 2 {
			t.Fatalf("unlocked %d", r.UnlockedSecret)
		}
	})
}
