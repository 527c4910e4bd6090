// Package config provides YAML-based tuning for the Arbolín simulation and
// the leaderboard server.
package config

import "time"

// Config is the root of arbolin.yaml.
type Config struct {
	Game   GameConfig   `yaml:"game"`
	Server ServerConfig `yaml:"server"`
}

// GameConfig tunes the simulation. All distances are arena units and all
// durations are seconds of simulated time.
type GameConfig struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Sprouts SproutConfig  `yaml:"sprouts"`
	Ability AbilityConfig `yaml:"ability"`
	Weapon  WeaponConfig  `yaml:"weapon"`
	Secrets SecretConfig  `yaml:"secrets"`
	Scenery SceneryConfig `yaml:"scenery"`
}

// ArenaConfig is the size of the simulated world.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player's hitbox and movement.
type PlayerConfig struct {
	Size       float64 `yaml:"size"`
	Speed      float64 `yaml:"speed"`       // units per second
	SpeedBoost float64 `yaml:"speed_boost"` // multiplier with the speed power-up
}

// EnemyConfig defines enemy hitboxes and spawn placement.
type EnemyConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	SpawnExclusion float64 `yaml:"spawn_exclusion"` // no spawns this close to the player
	HitInset       float64 `yaml:"hit_inset"`       // forgiveness on each side of both boxes
}

// SproutConfig defines collectibles.
type SproutConfig struct {
	MinLive      int     `yaml:"min_live"`
	Size         float64 `yaml:"size"`
	MutantSize   float64 `yaml:"mutant_size"`
	MutantEvery  float64 `yaml:"mutant_every"`
	PickupRadius float64 `yaml:"pickup_radius"`
	Margin       float64 `yaml:"margin"`
}

// AbilityConfig defines the area-clear ability.
type AbilityConfig struct {
	Charge int `yaml:"charge"` // sprout value needed to arm it
	Clears int `yaml:"clears"` // nearest enemies removed
}

// WeaponConfig defines projectiles fired with a weapon power-up.
type WeaponConfig struct {
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	ProjectileSize  float64 `yaml:"projectile_size"`
	Cooldown        float64 `yaml:"cooldown"`
	RapidCooldown   float64 `yaml:"rapid_cooldown"`
	Spread          float64 `yaml:"spread"` // radians between triple-shot seeds
	HitDistance     float64 `yaml:"hit_distance"`
	DespawnMargin   float64 `yaml:"despawn_margin"`
}

// SecretConfig defines hidden zone discovery.
type SecretConfig struct {
	Dwell float64 `yaml:"dwell"`
}

// SceneryConfig sets decoration counts per mode.
type SceneryConfig struct {
	Grass  int `yaml:"grass"`
	Cracks int `yaml:"cracks"`
	Ash    int `yaml:"ash"`
}

// ServerConfig tunes the leaderboard service.
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	SSHAddr      string        `yaml:"ssh_addr"`
	HostKeyPath  string        `yaml:"host_key_path"`
	Capacity     int           `yaml:"capacity"`
	Heartbeat    time.Duration `yaml:"heartbeat"`
	SendBuffer   int           `yaml:"send_buffer"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	MaxNameLen   int           `yaml:"max_name_len"`
}
