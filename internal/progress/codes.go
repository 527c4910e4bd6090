package progress

import (
	"github.com/vovakirdan/arbolin/internal/rules"
)

// Redeem applies a typed code. It reports false, with prev unchanged, when
// the code is unknown. Redeeming a known code twice is accepted and changes
// nothing.
func Redeem(prev Progress, code string) (Progress, bool) {
	code = rules.NormalizeCode(code)
	p := prev.Normalize()

	switch {
	case code == rules.NormalizeCode(rules.MasterCode):
		p.RedeemedCodes = union(p.RedeemedCodes, code)
		for _, id := range rules.SkinIDs() {
			p.UnlockedSkins = union(p.UnlockedSkins, id)
		}
		for _, id := range rules.StoryIDs() {
			p.UnlockedStoryParts = union(p.UnlockedStoryParts, id)
		}
		for _, d := range rules.Difficulties {
			p.CompletedDifficulties = union(p.CompletedDifficulties, d)
		}
		p.UnlockedBananaMode = true
		p.HasSacredPeel = true
		p.HasCaramelBanana = true
		return p, true

	case rules.IsGroundCode(code):
		p.RedeemedCodes = union(p.RedeemedCodes, code)
		if groundCodesComplete(p) {
			p.UnlockedBananaMode = true
		}
		return p, true
	}

	return prev, false
}

func groundCodesComplete(p Progress) bool {
	for _, c := range rules.GroundCodes {
		if !p.Redeemed(c.Code) {
			return false
		}
	}
	return true
}
