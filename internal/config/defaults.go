package config

import (
	_ "embed"
)

//go:embed defaults/runngun.yaml
var defaultRunGunYAML []byte

// DefaultRunGunConfig returns the default configuration.
func DefaultRunGunConfig() RunGunConfig {
	return RunGunConfig{
		Physics: RunGunPhysics{
			TileSize:         16,
			Gravity:          0.25,
			TerminalVelocity: 6,
		},
		Player: RunGunPlayer{
			Width:              16,
			Height:             24,
			MaxHP:              3,
			Speed:              2,
			JumpImpulse:        -5.5,
			InvincibilityTicks: 60, // 1 second
		},
		Weapon: RunGunWeapon{
			BaseFireRate:       15,
			MinCooldown:        5,
			FireRateStep:       2,
			BulletSpeed:        4,
			BulletSize:         4,
			BulletLifetime:     120,
			PlayerMuzzleY:      8,
			EnemyMuzzleY:       4,
			EnemySpeedMultiple: 0.5,
		},
		Walker: RunGunWalker{
			Width:      16,
			Height:     16,
			HP:         2,
			Score:      100,
			Speed:      0.5,
			LedgeProbe: 8,
		},
		Turret: RunGunTurret{
			Width:        16,
			Height:       16,
			HP:           3,
			Score:        200,
			Range:        200,
			FireInterval: 120,
		},
		Pickups: RunGunPickups{
			DropChance: 0.3,
			Size:       12,
			Lifetime:   600, // 10 seconds
			PopImpulse: -2,
		},
		Input: RunGunInput{
			HoldTicks: 30,
		},
		View: RunGunView{
			CellWidth:  4,
			CellHeight: 8,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "runngun":
		return defaultRunGunYAML
	default:
		return nil
	}
}
