package game

import (
	"testing"

	"github.com/vovakirdan/arbolin/internal/core"
	"github.com/vovakirdan/arbolin/internal/entity"
	"github.com/vovakirdan/arbolin/internal/rules"
)

// top-left corner, story fragment 2 on easy
func inTopLeft(g *Game) { placeAt(g, 10, 10) }

func TestDwellUnlocksStory(t *testing.T) {
	for _, rate := range []int{30, 60, 144} {
		g := newTestGame(rules.Setup{Difficulty: rules.Easy}, noSprouts)
		noEnemies(g)
		g.s.Sprouts = nil
		inTopLeft(g)

		dt := 1.0 / float64(rate)
		needed := 2 * rate
		steps(g, needed-1, frame(dt))
		if g.Phase() != PhaseRunning {
			t.Fatalf("%d Hz: found before 2s (phase %s)", rate, g.Phase())
		}
		g.Step(frame(dt))
		if g.Phase() != PhaseSecretFound {
			t.Fatalf("%d Hz: not found at 2s, dwell=%v", rate, g.s.Dwell)
		}

		r, ok := g.Result()
		if !ok || r.Outcome != rules.OutcomeSecretFound || r.UnlockedSecret != 2 || r.Won {
			t.Errorf("%d Hz: result = %+v", rate, r)
		}
	}
}

func TestLeavingZoneResetsDwell(t *testing.T) {
	g := newTestGame(rules.Setup{Difficulty: rules.Easy}, noSprouts)
	noEnemies(g)
	g.s.Sprouts = nil

	inTopLeft(g)
	steps(g, 19, frame(0.1)) // 1.9s
	if g.s.Dwell < 1.85 {
		t.Fatalf("dwell = %v after 1.9s", g.s.Dwell)
	}

	placeAt(g, 200, 400)
	g.Step(frame(0.1))
	if g.s.Dwell != 0 || g.s.DwellZone != 0 {
		t.Fatalf("leaving should reset dwell, got %v in zone %d", g.s.Dwell, g.s.DwellZone)
	}

	inTopLeft(g)
	steps(g, 19, frame(0.1))
	if g.Phase() != PhaseRunning {
		t.Fatal("partial dwell carried over after re-entering")
	}
	g.Step(frame(0.1))
	if g.Phase() != PhaseSecretFound {
		t.Errorf("full dwell after re-entry should find the secret, phase = %s", g.Phase())
	}
}

func TestSwitchingZonesResetsDwell(t *testing.T) {
	g := newTestGame(rules.Setup{Difficulty: rules.Easy}, noSprouts)
	noEnemies(g)
	g.s.Sprouts = nil

	inTopLeft(g)
	steps(g, 15, frame(0.1))

	placeAt(g, 10, 760) // bottom-left, fragment 3
	g.Step(frame(0.1))
	if g.s.DwellZone != 3 || g.s.Dwell > 0.1+1e-9 {
		t.Errorf("switch should restart the timer: zone=%d dwell=%v", g.s.DwellZone, g.s.Dwell)
	}
}

func TestPauseFreezesDwell(t *testing.T) {
	g := newTestGame(rules.Setup{Difficulty: rules.Easy}, noSprouts)
	noEnemies(g)
	g.s.Sprouts = nil
	inTopLeft(g)

	steps(g, 15, frame(0.1))
	dwell := g.s.Dwell

	g.Step(pressed(core.ActionPause))
	steps(g, 50, frame(0.1))
	if g.s.Dwell != dwell {
		t.Errorf("pause changed dwell from %v to %v", dwell, g.s.Dwell)
	}

	g.Step(pressed(core.ActionPause)) // resume consumes one nominal tick
	steps(g, 5, frame(0.1))
	if g.Phase() != PhaseSecretFound {
		t.Errorf("dwell should continue after pause, phase = %s dwell = %v", g.Phase(), g.s.Dwell)
	}
}

func TestUnlockedStoryIsNotOfferedAgain(t *testing.T) {
	g := newTestGame(rules.Setup{Difficulty: rules.Easy, UnlockedStory: []int{2}}, noSprouts)
	noEnemies(g)
	inTopLeft(g)
	steps(g, 30, frame(0.1))
	if g.Phase() != PhaseRunning {
		t.Errorf("known fragment found again: %s", g.Phase())
	}
}

func TestZonesIgnoreOtherDifficulties(t *testing.T) {
	g := newTestGame(rules.Setup{Difficulty: rules.Normal}, noSprouts)
	noEnemies(g)
	inTopLeft(g) // easy-only zone
	steps(g, 30, frame(0.1))
	if g.Phase() != PhaseRunning {
		t.Errorf("easy zone active on normal: %s", g.Phase())
	}
}

func TestSecretBeatsWin(t *testing.T) {
	g := newTestGame(rules.Setup{Difficulty: rules.Easy}, noSprouts)
	noEnemies(g)
	g.s.Sprouts = nil
	inTopLeft(g)
	steps(g, 19, frame(0.1))

	g.s.Score = 9
	sproutOnPlayer(g, entity.KindSprout)
	g.Step(frame(0.1))

	if g.Phase() != PhaseSecretFound {
		t.Fatalf("phase = %s, expected secret", g.Phase())
	}
	if g.s.Score != 9 {
		t.Errorf("sprout consumed in the secret tick, score = %d", g.s.Score)
	}
}

func TestItemZonesForFuegorin(t *testing.T) {
	tests := []struct {
		name    string
		y       float64
		setup   rules.Setup
		peel    bool
		caramel bool
	}{
		{"peel north", 20, rules.Setup{Difficulty: rules.Extreme, Modes: rules.Modes{Fuegorin: true}}, true, false},
		{"caramel south", 760, rules.Setup{Difficulty: rules.Extreme, Modes: rules.Modes{Fuegorin: true}}, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(tc.setup, noSprouts)
			noEnemies(g)
			g.s.Sprouts = nil
			placeAt(g, 210, tc.y)
			steps(g, 20, frame(0.1))

			r, ok := g.Result()
			if !ok || r.Outcome != rules.OutcomeSecretFound {
				t.Fatalf("result = %+v, %v", r, ok)
			}
			if r.FoundPeel != tc.peel || r.FoundCaramel != tc.caramel || r.UnlockedSecret != 0 {
				t.Errorf("result = %+v", r)
			}
		})
	}

	g := newTestGame(rules.Setup{Difficulty: rules.Extreme}, noSprouts)
	noEnemies(g)
	placeAt(g, 210, 20)
	steps(g, 30, frame(0.1))
	if g.Phase() != PhaseRunning {
		t.Error("item zones require Fuegorín mode")
	}
}

func TestHackerStreakReported(t *testing.T) {
	g := newTestGame(rules.Setup{Difficulty: rules.Hacker}, noSprouts)
	noEnemies(g)
	g.s.Sprouts = nil
	placeAt(g, 200, 300)

	steps(g, 30, frame(0.1)) // 3s without a sprout
	sproutOnPlayer(g, entity.KindSprout)
	g.Step(frame(0.1))
	if g.s.NoSproutStreak != 0 {
		t.Errorf("pickup should reset the streak, got %v", g.s.NoSproutStreak)
	}
	steps(g, 10, frame(0.1))

	enemyOnPlayer(g)
	g.Step(frame(0.1))
	r, ok := g.Result()
	if !ok {
		t.Fatal("expected a result")
	}
	if r.HackerSurvivalTime < 3.0 || r.HackerSurvivalTime > 3.2 {
		t.Errorf("HackerSurvivalTime = %v, expected the 3.1s best streak", r.HackerSurvivalTime)
	}
	if r.TotalSurvivalTime < 4.1 {
		t.Errorf("TotalSurvivalTime = %v", r.TotalSurvivalTime)
	}
}
