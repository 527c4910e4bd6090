package rules

import "github.com/vovakirdan/arbolin/internal/core"

// Skin is a cosmetic variant of the player.
type Skin struct {
	ID          string
	Name        string
	Color       core.Color
	Secondary   core.Color
	Description string
	Hint        string
}

// DefaultSkinID is unlocked for every new player.
const DefaultSkinID = "default"

// Skins is the cosmetic catalogue in display order.
var Skins = []Skin{
	{ID: DefaultSkinID, Name: "Arbolín Original", Color: core.ColorGreen, Secondary: core.ColorBrightGreen,
		Description: "Where it all began.", Hint: "Unlocked by default"},
	{ID: "sakura", Name: "Cerezo Místico", Color: core.ColorPink, Secondary: core.ColorBrightWhite,
		Description: "Reward for the normal tier.", Hint: "Clear normal"},
	{ID: "autumn", Name: "Roble de Otoño", Color: core.ColorOrange, Secondary: core.ColorBrightYellow,
		Description: "Reward for the hard tier.", Hint: "Clear hard"},
	{ID: "magma", Name: "Espíritu de Magma", Color: core.ColorDarkRed, Secondary: core.ColorRed,
		Description: "Forged in extreme.", Hint: "Clear extreme"},
	{ID: "glitch", Name: "0x_ARBOL_ERROR", Color: core.ColorBlack, Secondary: core.ColorGreen,
		Description: "Hackers only.", Hint: "Clear hacker"},
	{ID: "peruano", Name: "El Peruano", Color: core.ColorBlack, Secondary: core.ColorRed,
		Description: "Burnt by sun and fire.", Hint: "Lose 50 times"},
	{ID: "venezolano", Name: "El Venezolano", Color: core.ColorDarkRed, Secondary: core.ColorYellow,
		Description: "Survives anything.", Hint: "Hacker: 50s without a sprout"},
	{ID: "bolivia", Name: "El Navegante", Color: core.ColorRed, Secondary: core.ColorBlue,
		Description: "A flame dreaming of the sea.", Hint: "Lose 25 times as Fuegorín"},
	{ID: "golden", Name: "Arbolín Dorado", Color: core.ColorBrightYellow, Secondary: core.ColorWhite,
		Description: "For collecting 50 sprouts.", Hint: "Collect 50 sprouts"},
	{ID: "void", Name: "El Vacío", Color: core.ColorIndigo, Secondary: core.ColorBrightBlue,
		Description: "Master of every tier.", Hint: "Clear every difficulty"},
	{ID: "ghost", Name: "Fantasma", Color: core.ColorGray, Secondary: core.ColorBrightWhite,
		Description: "The loser's persistence.", Hint: "Lose 25 times"},
	{ID: "ancient", Name: "Arbolín Ancestral", Color: core.ColorLime, Secondary: core.ColorMagenta,
		Description: "A lifetime in the forest.", Hint: "Survive 120 seconds in one run"},
}

// SkinByID returns the skin with the given id, or the default skin.
func SkinByID(id string) Skin {
	for _, s := range Skins {
		if s.ID == id {
			return s
		}
	}
	return Skins[0]
}

// SkinIDs returns every skin id in catalogue order.
func SkinIDs() []string {
	ids := make([]string, len(Skins))
	for i, s := range Skins {
		ids[i] = s.ID
	}
	return ids
}

// ClearReward maps a cleared tier to its skin. Easy has none.
func ClearReward(d Difficulty) (string, bool) {
	switch d {
	case Normal:
		return "sakura", true
	case Hard:
		return "autumn", true
	case Extreme:
		return "magma", true
	case Hacker:
		return "glitch", true
	}
	return "", false
}
