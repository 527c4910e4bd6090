package progress

import (
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/arbolin/internal/rules"
)

// Control layouts.
const (
	ControlsKeys = "keys" // arrows/WASD to move, IJKL to aim
	ControlsVim  = "vim"  // hjkl to move, WASD to aim
)

// MaxNameLen bounds the display name sent to the leaderboard.
const MaxNameLen = 12

// DefaultPlayerName is used when the player never typed one.
const DefaultPlayerName = "Jugador"

// Settings are the player's preferences.
type Settings struct {
	SoundEnabled bool             `json:"soundEnabled"`
	Difficulty   rules.Difficulty `json:"difficulty"`
	PlayerName   string           `json:"playerName"`
	Controls     string           `json:"controls"`
}

// DefaultSettings returns first-launch settings.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled: true,
		Difficulty:   rules.Easy,
		PlayerName:   DefaultPlayerName,
		Controls:     ControlsKeys,
	}
}

// Normalize replaces invalid fields with their defaults.
func (s Settings) Normalize() Settings {
	def := DefaultSettings()
	if !s.Difficulty.Valid() {
		s.Difficulty = def.Difficulty
	}
	s.PlayerName = CleanName(s.PlayerName)
	if s.PlayerName == "" {
		s.PlayerName = def.PlayerName
	}
	if s.Controls != ControlsKeys && s.Controls != ControlsVim {
		s.Controls = def.Controls
	}
	return s
}

// CleanName trims whitespace and control characters and caps the length.
func CleanName(name string) string {
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	for utf8.RuneCountInString(name) > MaxNameLen {
		_, size := utf8.DecodeLastRuneInString(name)
		name = name[:len(name)-size]
	}
	return strings.TrimSpace(name)
}
