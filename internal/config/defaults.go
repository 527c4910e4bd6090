package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/arbolin.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default arbolin.yaml.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the built-in configuration. It matches
// defaults/arbolin.yaml and is used when that file cannot be parsed.
func Default() Config {
	return Config{
		Game:   DefaultGame(),
		Server: DefaultServer(),
	}
}

// DefaultGame returns the default simulation tuning.
func DefaultGame() GameConfig {
	return GameConfig{
		Arena: ArenaConfig{Width: 450, Height: 800},
		Player: PlayerConfig{
			Size:       30,
			Speed:      480, // 8 units per 1/60 s
			SpeedBoost: 1.5,
		},
		Enemy: EnemyConfig{
			Width:          40,
			Height:         50,
			SpawnExclusion: 150,
			HitInset:       6,
		},
		Sprouts: SproutConfig{
			MinLive:      4,
			Size:         25,
			MutantSize:   35,
			MutantEvery:  3,
			PickupRadius: 30,
			Margin:       20,
		},
		Ability: AbilityConfig{Charge: 15, Clears: 10},
		Weapon: WeaponConfig{
			ProjectileSpeed: 600,
			ProjectileSize:  10,
			Cooldown:        0.5,
			RapidCooldown:   0.2,
			Spread:          0.2,
			HitDistance:     25,
			DespawnMargin:   50,
		},
		Secrets: SecretConfig{Dwell: 2.0},
		Scenery: SceneryConfig{Grass: 40, Cracks: 20, Ash: 60},
	}
}

// DefaultServer returns the default leaderboard service tuning.
func DefaultServer() ServerConfig {
	return ServerConfig{
		Addr:         ":3000",
		SSHAddr:      ":2222",
		HostKeyPath:  ".ssh/arbolin_ed25519",
		Capacity:     50,
		Heartbeat:    30 * time.Second,
		SendBuffer:   8,
		WriteTimeout: 5 * time.Second,
		MaxNameLen:   12,
	}
}
