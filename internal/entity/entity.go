// Package entity defines the plain records the simulation moves around.
// Entities carry no behaviour; the game loop filters and rebuilds its
// collections every tick.
package entity

import "github.com/vovakirdan/arbolin/internal/core"

// Kind is the category of an entity.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindSprout
	KindMutant
	KindProjectile
	KindDecoration
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindSprout:
		return "sprout"
	case KindMutant:
		return "mutant"
	case KindProjectile:
		return "projectile"
	case KindDecoration:
		return "decoration"
	default:
		return "unknown"
	}
}

// Variant selects the look of a decoration.
type Variant int

const (
	VariantNone Variant = iota
	VariantGrass
	VariantCrack
	VariantAsh
)

// Entity is a positioned box in arena units.
// Pos is the top-left corner; Vel is in units per second.
type Entity struct {
	ID       uint64
	Kind     Kind
	Pos      core.Vec
	Size     core.Vec
	Vel      core.Vec
	Color    core.Color
	Variant  Variant
	Rotation float64
}

// Bounds returns the bounding box.
func (e Entity) Bounds() core.Rect {
	return core.NewRect(e.Pos.X, e.Pos.Y, e.Size.X, e.Size.Y)
}

// Center returns the centre of the bounding box.
func (e Entity) Center() core.Vec {
	return e.Bounds().Center()
}

// Value is the score a collectible is worth. Non-collectibles are worth 0.
func (e Entity) Value() int {
	switch e.Kind {
	case KindSprout:
		return 1
	case KindMutant:
		return 4
	default:
		return 0
	}
}

// Filter returns the entities for which keep returns true.
// The input slice is not modified.
func Filter(in []Entity, keep func(Entity) bool) []Entity {
	out := make([]Entity, 0, len(in))
	for _, e := range in {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
