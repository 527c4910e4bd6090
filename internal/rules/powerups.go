package rules

import (
	"errors"
	"fmt"
)

// ErrUnknownPowerUp is returned for power-up ids outside the catalogue.
var ErrUnknownPowerUp = errors.New("unknown power-up")

// PowerUp identifies a single-session shop item.
type PowerUp string

const (
	PowerShield     PowerUp = "shield"
	PowerSpeed      PowerUp = "speed"
	PowerRapidFire  PowerUp = "rapid_fire"
	PowerTripleShot PowerUp = "triple_shot"
)

// PowerUpInfo describes a shop entry.
type PowerUpInfo struct {
	ID          PowerUp
	Name        string
	Description string
	Cost        int
}

// PowerUps is the shop catalogue in display order.
var PowerUps = []PowerUpInfo{
	{ID: PowerShield, Name: "Escudo", Description: "Absorbs one hit", Cost: 20},
	{ID: PowerSpeed, Name: "Viento", Description: "Moves 50% faster", Cost: 15},
	{ID: PowerRapidFire, Name: "Ráfaga", Description: "Shoots seeds, short cooldown", Cost: 30},
	{ID: PowerTripleShot, Name: "Tridente", Description: "Shoots three seeds at once", Cost: 40},
}

// LookupPowerUp returns the catalogue entry for id.
func LookupPowerUp(id PowerUp) (PowerUpInfo, error) {
	for _, p := range PowerUps {
		if p.ID == id {
			return p, nil
		}
	}
	return PowerUpInfo{}, fmt.Errorf("rules: %q: %w", id, ErrUnknownPowerUp)
}

// IsWeapon reports whether p lets the player shoot.
func (p PowerUp) IsWeapon() bool {
	return p == PowerRapidFire || p == PowerTripleShot
}
