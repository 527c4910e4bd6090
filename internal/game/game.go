// Package game implements the Arbolín session: a survival/collection loop
// where the player gathers sprouts, dodges fire and hunts hidden zones.
// One config-driven loop serves every difficulty and mode.
package game

import (
	"math/rand"

	"github.com/vovakirdan/arbolin/internal/config"
	"github.com/vovakirdan/arbolin/internal/core"
	"github.com/vovakirdan/arbolin/internal/entity"
	"github.com/vovakirdan/arbolin/internal/registry"
	"github.com/vovakirdan/arbolin/internal/rules"
)

// Registry ids.
const (
	ID        = "arbolin"
	EndlessID = "arbolin_endless"
)

// maxStep caps a single tick so a stalled terminal does not teleport the
// simulation forward.
const maxStep = 0.25

// timeEpsilon absorbs drift from summing many nanosecond-rounded ticks.
const timeEpsilon = 1e-6

// Game implements registry.Game for Arbolín.
type Game struct {
	tuning  config.GameConfig
	setup   rules.Setup
	runtime core.RuntimeConfig
	rng     *rand.Rand

	zones  []rules.SecretZone
	s      Session
	nextID uint64

	result    rules.GameResult
	hasResult bool
}

// New creates a session for setup using tuning.
func New(setup rules.Setup, tuning config.GameConfig) *Game {
	if !setup.Difficulty.Valid() {
		setup.Difficulty = rules.Easy
	}
	return &Game{tuning: tuning, setup: setup}
}

// ID returns the registry id of this variant.
func (g *Game) ID() string {
	if g.setup.Modes.Endless {
		return EndlessID
	}
	return ID
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	if g.setup.Modes.Endless {
		return "Arbolín (Endless)"
	}
	return "Arbolín"
}

// Setup returns the setup the session was created with.
func (g *Game) Setup() rules.Setup {
	return g.setup
}

// Reset starts a fresh session. Everything from the previous session is
// discarded.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.nextID = 0
	g.hasResult = false
	g.result = rules.GameResult{}
	g.zones = rules.ActiveZones(g.setup)

	g.s = Session{Phase: PhaseInitializing}
	size := g.tuning.Player.Size
	g.s.Player = entity.Entity{
		ID:   g.newID(),
		Kind: entity.KindPlayer,
		Pos:  core.V(g.tuning.Arena.Width/2-size/2, g.tuning.Arena.Height/2-size/2),
		Size: core.V(size, size),
	}
	g.s.Shield = g.setup.HasPowerUp(rules.PowerShield)
	g.s.Decorations = g.generateScenario()
	g.spawnSprout(entity.KindSprout)

	g.s.Phase = PhaseRunning
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.s.Score,
		Elapsed:  g.s.Elapsed,
		GameOver: g.s.Phase.Terminal(),
		Paused:   g.s.Phase == PhasePaused,
	}
}

// Phase returns the lifecycle phase.
func (g *Game) Phase() Phase {
	return g.s.Phase
}

// Result returns the terminal result once the session has ended.
func (g *Game) Result() (rules.GameResult, bool) {
	return g.result, g.hasResult
}

// WinScore returns the score that ends the session, or 0 in endless mode.
func (g *Game) WinScore() int {
	if g.setup.Modes.Endless {
		return 0
	}
	return g.setup.Difficulty.Info().WinScore
}

func (g *Game) newID() uint64 {
	g.nextID++
	return g.nextID
}

func (g *Game) arena() core.Rect {
	return core.NewRect(0, 0, g.tuning.Arena.Width, g.tuning.Arena.Height)
}

// finish moves the session into a terminal phase and records its result.
func (g *Game) finish(phase Phase, secret int) {
	g.s.Phase = phase
	r := rules.GameResult{
		Won:               phase == PhaseWon,
		Score:             g.s.Score,
		Difficulty:        g.setup.Difficulty,
		TotalSurvivalTime: g.s.Elapsed,
	}
	switch phase {
	case PhaseWon:
		r.Outcome = rules.OutcomeWon
	case PhaseLost:
		r.Outcome = rules.OutcomeLost
	case PhaseSecretFound:
		r.Outcome = rules.OutcomeSecretFound
		switch secret {
		case rules.PeelSecretID:
			r.FoundPeel = true
		case rules.CaramelSecretID:
			r.FoundCaramel = true
		default:
			r.UnlockedSecret = secret
		}
	}
	if g.setup.Difficulty == rules.Hacker {
		r.HackerSurvivalTime = g.s.BestNoSproutStreak
	}
	g.result = r
	g.hasResult = true
}

// Register the variants with the registry
func init() {
	registry.Register(ID, func(opts registry.Options) registry.Game {
		setup := opts.Setup
		setup.Modes.Endless = false
		return New(setup, opts.Tuning)
	})
	registry.Register(EndlessID, func(opts registry.Options) registry.Game {
		setup := opts.Setup
		setup.Modes.Endless = true
		return New(setup, opts.Tuning)
	})
}
