package game

import (
	"github.com/vovakirdan/arbolin/internal/entity"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseInitializing Phase = iota
	PhaseRunning
	PhasePaused
	PhaseWon
	PhaseLost
	PhaseSecretFound
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	case PhaseSecretFound:
		return "secret"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further simulation happens in p.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost || p == PhaseSecretFound
}

// Session is the state of one play-through. It is owned by Game and only
// mutated from Step.
type Session struct {
	Phase Phase

	Score   int
	Elapsed float64
	Frame   int

	Charge       int
	AbilityReady bool
	Shield       bool

	Player      entity.Entity
	Enemies     []entity.Entity
	Sprouts     []entity.Entity
	Projectiles []entity.Entity
	Decorations []entity.Entity

	// DwellZone is the id of the secret zone the player is standing in,
	// 0 when outside every active zone.
	DwellZone int
	Dwell     float64

	// NoSproutStreak counts seconds since the last pickup on the hacker tier.
	NoSproutStreak     float64
	BestNoSproutStreak float64

	enemyClock   float64
	mutantClock  float64
	shotCooldown float64
}

// InSecretZone reports whether the player is currently dwelling in a zone.
func (s *Session) InSecretZone() bool {
	return s.DwellZone != 0
}

func (s *Session) collectibles() int {
	return len(s.Sprouts)
}
