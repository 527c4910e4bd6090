package rules

import (
	"strings"

	"github.com/vovakirdan/arbolin/internal/core"
)

// GroundCode is a redeemable code drawn faintly on an arena floor.
type GroundCode struct {
	Code       string
	Difficulty Difficulty
	// Pos is where the code is drawn, in arena units.
	Pos core.Vec
}

// GroundCodes are the three codes that together unlock Banana mode.
var GroundCodes = []GroundCode{
	{Code: "BANANA-H4RD", Difficulty: Hard, Pos: core.V(50, 150)},
	{Code: "PLATANO-X7", Difficulty: Extreme, Pos: core.V(350, 700)},
	{Code: "0xBANANA", Difficulty: Hacker, Pos: core.V(200, 450)},
}

// MasterCode unlocks the whole catalogue at once.
const MasterCode = "ARBOLIN-MASTER"

// NormalizeCode trims and upper-cases user input for comparison.
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// GroundCodeFor returns the code drawn on tier d, if any.
func GroundCodeFor(d Difficulty) (GroundCode, bool) {
	for _, c := range GroundCodes {
		if c.Difficulty == d {
			return c, true
		}
	}
	return GroundCode{}, false
}

// IsGroundCode reports whether code (already normalized) is a ground code.
func IsGroundCode(code string) bool {
	for _, c := range GroundCodes {
		if NormalizeCode(c.Code) == code {
			return true
		}
	}
	return false
}
