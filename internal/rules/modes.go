package rules

import "strings"

// Modes are the optional rule toggles chosen in the Extras screen.
type Modes struct {
	Mutant   bool `json:"mutant"`   // rare high-value sprouts
	Endless  bool `json:"endless"`  // no win score; leaderboard eligible
	Fuegorin bool `json:"fuegorin"` // play as the antagonist flame
	Banana   bool `json:"banana"`   // fruit skin and banana currency
}

// String renders the active flags, or "classic" when none are set.
func (m Modes) String() string {
	var parts []string
	if m.Mutant {
		parts = append(parts, "mutant")
	}
	if m.Endless {
		parts = append(parts, "endless")
	}
	if m.Fuegorin {
		parts = append(parts, "fuegorin")
	}
	if m.Banana {
		parts = append(parts, "banana")
	}
	if len(parts) == 0 {
		return "classic"
	}
	return strings.Join(parts, "+")
}

// Currency is the pool a session's score is credited to and the shop
// spends from.
type Currency int

const (
	CurrencySprouts Currency = iota
	CurrencyAshes
	CurrencyBananas
)

// Currency returns the currency for the active modes.
// Banana wins over Fuegorín when both are on.
func (m Modes) Currency() Currency {
	switch {
	case m.Banana:
		return CurrencyBananas
	case m.Fuegorin:
		return CurrencyAshes
	default:
		return CurrencySprouts
	}
}

func (c Currency) String() string {
	switch c {
	case CurrencyAshes:
		return "cenizas"
	case CurrencyBananas:
		return "bananas"
	default:
		return "brotes"
	}
}
