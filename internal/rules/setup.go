package rules

import "slices"

// Setup is everything a session needs to know about the player before it
// starts: the chosen tier and modes, bought power-ups, and which secrets
// are already unlocked so they are not offered again.
type Setup struct {
	Difficulty Difficulty
	Modes      Modes
	PowerUps   []PowerUp
	Skin       string

	UnlockedStory []int
	HasPeel       bool
	HasCaramel    bool
}

// HasPowerUp reports whether p was bought for this session.
func (s Setup) HasPowerUp(p PowerUp) bool {
	return slices.Contains(s.PowerUps, p)
}

// HasWeapon reports whether any bought power-up allows shooting.
func (s Setup) HasWeapon() bool {
	return slices.ContainsFunc(s.PowerUps, PowerUp.IsWeapon)
}

// StoryUnlocked reports whether story fragment id is already known.
func (s Setup) StoryUnlocked(id int) bool {
	return slices.Contains(s.UnlockedStory, id)
}
