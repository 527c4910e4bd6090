// Package rules holds the static tables of Arbolín: difficulty tiers, mode
// flags, power-ups, skins, story fragments, secret zones and codes.
// Nothing in here changes at runtime.
package rules

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/arbolin/internal/core"
)

// Difficulty is a named difficulty tier.
type Difficulty string

const (
	Easy    Difficulty = "easy"
	Normal  Difficulty = "normal"
	Hard    Difficulty = "hard"
	Extreme Difficulty = "extreme"
	Hacker  Difficulty = "hacker"
)

// Difficulties lists every tier from easiest to hardest.
var Difficulties = []Difficulty{Easy, Normal, Hard, Extreme, Hacker}

// DifficultyInfo is the per-tier rule table row.
type DifficultyInfo struct {
	WinScore int
	// SpawnEvery is the enemy spawn interval in seconds.
	SpawnEvery float64
	Label      string
	Color      core.Color
}

var difficultyTable = map[Difficulty]DifficultyInfo{
	Easy:    {WinScore: 10, SpawnEvery: 60.0 / 60, Label: "Fácil", Color: core.ColorGreen},
	Normal:  {WinScore: 20, SpawnEvery: 40.0 / 60, Label: "Medio", Color: core.ColorYellow},
	Hard:    {WinScore: 30, SpawnEvery: 25.0 / 60, Label: "Difícil", Color: core.ColorOrange},
	Extreme: {WinScore: 50, SpawnEvery: 15.0 / 60, Label: "Extremo", Color: core.ColorRed},
	Hacker:  {WinScore: 100, SpawnEvery: 5.0 / 60, Label: "HACKER", Color: core.ColorPurple},
}

// Info returns the rule table row for d.
// Unknown tiers fall back to Easy.
func (d Difficulty) Info() DifficultyInfo {
	if info, ok := difficultyTable[d]; ok {
		return info
	}
	return difficultyTable[Easy]
}

// Valid reports whether d is a known tier.
func (d Difficulty) Valid() bool {
	_, ok := difficultyTable[d]
	return ok
}

// Index returns the position of d in Difficulties, or -1.
func (d Difficulty) Index() int {
	for i, x := range Difficulties {
		if x == d {
			return i
		}
	}
	return -1
}

// ParseDifficulty converts a CLI/config string into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("rules: unknown difficulty %q", s)
	}
	return d, nil
}
