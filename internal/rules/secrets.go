package rules

// Item secret ids live outside the story id range.
const (
	PeelSecretID    = 998
	CaramelSecretID = 999
)

// ZoneKind distinguishes story zones from item zones.
type ZoneKind int

const (
	ZoneStory ZoneKind = iota
	ZoneItem
)

// SecretZone is a rectangle in fractional arena coordinates.
// Bounds are inclusive; open sides use 0 or 1.
type SecretZone struct {
	ID   int
	Kind ZoneKind
	Name string

	// Difficulty gates story zones. Item zones ignore it.
	Difficulty Difficulty

	XMin, XMax float64
	YMin, YMax float64
}

// Contains reports whether the fractional point (fx, fy) lies in z.
func (z SecretZone) Contains(fx, fy float64) bool {
	return fx >= z.XMin && fx <= z.XMax && fy >= z.YMin && fy <= z.YMax
}

// SecretZones lists every hidden zone. Story ids match Story.
var SecretZones = []SecretZone{
	{ID: 1, Kind: ZoneStory, Name: "Top right corner", Difficulty: Normal, XMin: 0.85, XMax: 1, YMin: 0, YMax: 0.1},
	{ID: 2, Kind: ZoneStory, Name: "Top left corner", Difficulty: Easy, XMin: 0, XMax: 0.15, YMin: 0, YMax: 0.1},
	{ID: 3, Kind: ZoneStory, Name: "Bottom left corner", Difficulty: Easy, XMin: 0, XMax: 0.15, YMin: 0.9, YMax: 1},
	{ID: 4, Kind: ZoneStory, Name: "Bottom right corner", Difficulty: Hard, XMin: 0.85, XMax: 1, YMin: 0.9, YMax: 1},
	{ID: 5, Kind: ZoneStory, Name: "Forest centre", Difficulty: Hard, XMin: 0.4, XMax: 0.6, YMin: 0.4, YMax: 0.6},
	{ID: PeelSecretID, Kind: ZoneItem, Name: "Cáscara Sagrada", XMin: 0.4, XMax: 0.6, YMin: 0, YMax: 0.15},
	{ID: CaramelSecretID, Kind: ZoneItem, Name: "Banana Caramelizada", XMin: 0.4, XMax: 0.6, YMin: 0.85, YMax: 1},
}

// ActiveZones returns the zones that can still be found under setup:
// story zones of the chosen tier not yet unlocked, plus item zones not
// yet found when playing as Fuegorín.
func ActiveZones(setup Setup) []SecretZone {
	var out []SecretZone
	for _, z := range SecretZones {
		switch z.Kind {
		case ZoneStory:
			if z.Difficulty == setup.Difficulty && !setup.StoryUnlocked(z.ID) {
				out = append(out, z)
			}
		case ZoneItem:
			if !setup.Modes.Fuegorin {
				continue
			}
			if z.ID == PeelSecretID && !setup.HasPeel {
				out = append(out, z)
			}
			if z.ID == CaramelSecretID && !setup.HasCaramel {
				out = append(out, z)
			}
		}
	}
	return out
}
