// Package progress holds the durable player record and the pure functions
// that move it forward: the post-session reducer, code redemption, the shop
// and the derived achievements view.
package progress

import (
	"slices"

	"github.com/vovakirdan/arbolin/internal/rules"
)

// Progress is everything a player keeps between sessions.
// Unlock sets only ever grow; currencies only shrink through Buy.
type Progress struct {
	TotalSprouts int `json:"totalSprouts"`
	TotalAshes   int `json:"totalAshes"`
	TotalBananas int `json:"totalBananas"`

	TotalLosses    int `json:"totalLosses"`
	FuegorinLosses int `json:"fuegorinLosses"`
	BananaLosses   int `json:"bananaLosses"`

	MaxHackerSurvival    float64 `json:"maxHackerSurvival"`
	MaxTotalSurvivalTime float64 `json:"maxTotalSurvivalTime"`

	CompletedDifficulties []rules.Difficulty `json:"completedDifficulties"`
	UnlockedSkins         []string           `json:"unlockedSkins"`
	UnlockedStoryParts    []int              `json:"unlockedStoryParts"`
	RedeemedCodes         []string           `json:"redeemedCodes"`

	UnlockedBananaMode bool `json:"unlockedBananaMode"`
	HasSacredPeel      bool `json:"hasSacredPeel"`
	HasCaramelBanana   bool `json:"hasCaramelBanana"`
}

// Default is the record of a first launch.
func Default() Progress {
	return Progress{
		CompletedDifficulties: []rules.Difficulty{},
		UnlockedSkins:         []string{rules.DefaultSkinID},
		UnlockedStoryParts:    []int{},
		RedeemedCodes:         []string{},
	}
}

// Normalize repairs a record loaded from storage: nil sets become empty,
// duplicates and unknown difficulties are dropped, negative counters are
// zeroed and the default skin is always present.
func (p Progress) Normalize() Progress {
	p = p.Clone()
	p.TotalSprouts = max(p.TotalSprouts, 0)
	p.TotalAshes = max(p.TotalAshes, 0)
	p.TotalBananas = max(p.TotalBananas, 0)
	p.TotalLosses = max(p.TotalLosses, 0)
	p.FuegorinLosses = max(p.FuegorinLosses, 0)
	p.BananaLosses = max(p.BananaLosses, 0)
	p.MaxHackerSurvival = max(p.MaxHackerSurvival, 0)
	p.MaxTotalSurvivalTime = max(p.MaxTotalSurvivalTime, 0)

	diffs := make([]rules.Difficulty, 0, len(p.CompletedDifficulties))
	for _, d := range p.CompletedDifficulties {
		if d.Valid() {
			diffs = union(diffs, d)
		}
	}
	p.CompletedDifficulties = diffs

	skins := []string{rules.DefaultSkinID}
	for _, s := range p.UnlockedSkins {
		skins = union(skins, s)
	}
	p.UnlockedSkins = skins

	story := make([]int, 0, len(p.UnlockedStoryParts))
	for _, id := range p.UnlockedStoryParts {
		story = union(story, id)
	}
	p.UnlockedStoryParts = story

	codes := make([]string, 0, len(p.RedeemedCodes))
	for _, c := range p.RedeemedCodes {
		if c = rules.NormalizeCode(c); c != "" {
			codes = union(codes, c)
		}
	}
	p.RedeemedCodes = codes
	return p
}

// Clone returns a deep copy so callers never share slices.
func (p Progress) Clone() Progress {
	p.CompletedDifficulties = cloneOrEmpty(p.CompletedDifficulties)
	p.UnlockedSkins = cloneOrEmpty(p.UnlockedSkins)
	p.UnlockedStoryParts = cloneOrEmpty(p.UnlockedStoryParts)
	p.RedeemedCodes = cloneOrEmpty(p.RedeemedCodes)
	return p
}

func (p Progress) HasSkin(id string) bool { return slices.Contains(p.UnlockedSkins, id) }
func (p Progress) HasStory(id int) bool { return slices.Contains(p.UnlockedStoryParts, id) }
func (p Progress) Completed(d rules.Difficulty) bool { return slices.Contains(p.CompletedDifficulties, d) }

// Redeemed reports whether code was already accepted.
func (p Progress) Redeemed(code string) bool {
	return slices.Contains(p.RedeemedCodes, rules.NormalizeCode(code))
}

// FuegorinAvailable reports whether the flame mode can be selected: every
// story fragment has been found.
func (p Progress) FuegorinAvailable() bool {
	for _, id := range rules.StoryIDs() {
		if !p.HasStory(id) {
			return false
		}
	}
	return true
}

// BananaAvailable reports whether the banana mode can be selected.
func (p Progress) BananaAvailable() bool { return p.UnlockedBananaMode }

// Balance returns the amount held in currency c.
func (p Progress) Balance(c rules.Currency) int {
	switch c {
	case rules.CurrencyAshes:
		return p.TotalAshes
	case rules.CurrencyBananas:
		return p.TotalBananas
	default:
		return p.TotalSprouts
	}
}

// Setup builds the session parameters for the given choices, carrying over
// what the simulation needs to know about this player.
func (p Progress) Setup(d rules.Difficulty, modes rules.Modes, skin string, powerUps []rules.PowerUp) rules.Setup {
	return rules.Setup{
		Difficulty:    d,
		Modes:         modes,
		PowerUps:      slices.Clone(powerUps),
		Skin:          skin,
		UnlockedStory: slices.Clone(p.UnlockedStoryParts),
		HasPeel:       p.HasSacredPeel,
		HasCaramel:    p.HasCaramelBanana,
	}
}

func (p *Progress) addCurrency(c rules.Currency, n int) {
	switch c {
	case rules.CurrencyAshes:
		p.TotalAshes += n
	case rules.CurrencyBananas:
		p.TotalBananas += n
	default:
		p.TotalSprouts += n
	}
}

func union[T comparable](set []T, v T) []T {
	if slices.Contains(set, v) {
		return set
	}
	return append(set, v)
}

func cloneOrEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return slices.Clone(s)
}
