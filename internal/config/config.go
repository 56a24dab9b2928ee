// Package config provides YAML-based game configuration loading and
// difficulty presets for runngun.
package config

import (
	"errors"
	"fmt"
)

// RunGunConfig contains all tunables for the side-scroller.
// The defaults reproduce the reference game exactly.
type RunGunConfig struct {
	Physics RunGunPhysics `yaml:"physics"`
	Player  RunGunPlayer  `yaml:"player"`
	Weapon  RunGunWeapon  `yaml:"weapon"`
	Walker  RunGunWalker  `yaml:"walker"`
	Turret  RunGunTurret  `yaml:"turret"`
	Pickups RunGunPickups `yaml:"pickups"`
	Input   RunGunInput   `yaml:"input"`
	View    RunGunView    `yaml:"view"`
}

// RunGunPhysics defines world physics.
type RunGunPhysics struct {
	TileSize         float64 `yaml:"tile_size"`
	Gravity          float64 `yaml:"gravity"`           // Added to velocity.y every tick
	TerminalVelocity float64 `yaml:"terminal_velocity"` // Player fall speed cap
}

// RunGunPlayer defines the player body and movement.
type RunGunPlayer struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	MaxHP              int     `yaml:"max_hp"`
	Speed              float64 `yaml:"speed"`
	JumpImpulse        float64 `yaml:"jump_impulse"` // Negative = up
	InvincibilityTicks int     `yaml:"invincibility_ticks"`
}

// RunGunWeapon defines bullets for both sides.
type RunGunWeapon struct {
	BaseFireRate       int     `yaml:"base_fire_rate"` // Ticks between shots at level 0
	MinCooldown        int     `yaml:"min_cooldown"`
	FireRateStep       int     `yaml:"fire_rate_step"` // Ticks removed per fire-rate level
	BulletSpeed        float64 `yaml:"bullet_speed"`
	BulletSize         float64 `yaml:"bullet_size"`
	BulletLifetime     int     `yaml:"bullet_lifetime"`
	PlayerMuzzleY      float64 `yaml:"player_muzzle_y"`
	EnemyMuzzleY       float64 `yaml:"enemy_muzzle_y"`
	EnemySpeedMultiple float64 `yaml:"enemy_speed_multiplier"`
}

// RunGunWalker defines the patrolling enemy.
type RunGunWalker struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	HP         int     `yaml:"hp"`
	Score      int     `yaml:"score"`
	Speed      float64 `yaml:"speed"`
	LedgeProbe float64 `yaml:"ledge_probe"` // Distance ahead of the leading edge checked for ground
}

// RunGunTurret defines the stationary enemy.
type RunGunTurret struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	HP           int     `yaml:"hp"`
	Score        int     `yaml:"score"`
	Range        float64 `yaml:"range"`         // Horizontal distance at which the turret charges
	FireInterval int     `yaml:"fire_interval"` // Fires once the timer exceeds this
}

// RunGunPickups defines power-up drops.
type RunGunPickups struct {
	DropChance float64 `yaml:"drop_chance"` // 0.0 - 1.0
	Size       float64 `yaml:"size"`
	Lifetime   int     `yaml:"lifetime"`
	PopImpulse float64 `yaml:"pop_impulse"`
}

// RunGunInput defines how terminal key events become held keys.
type RunGunInput struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a key stays down after its last event
}

// RunGunView defines the world-to-terminal projection.
type RunGunView struct {
	CellWidth  float64 `yaml:"cell_width"`  // World units per terminal column
	CellHeight float64 `yaml:"cell_height"` // World units per terminal row
}

// Validate checks every tunable that would break the simulation and
// returns all problems found, joined with errors.Join.
func (c RunGunConfig) Validate() error {
	var errs []error
	if c.Physics.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("physics.tile_size must be positive, got %v", c.Physics.TileSize))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player width and height must be positive"))
	}
	if c.Player.MaxHP <= 0 {
		errs = append(errs, fmt.Errorf("player.max_hp must be positive, got %d", c.Player.MaxHP))
	}
	if c.Weapon.BulletLifetime <= 0 {
		errs = append(errs, fmt.Errorf("weapon.bullet_lifetime must be positive, got %d", c.Weapon.BulletLifetime))
	}
	if c.Pickups.DropChance < 0 || c.Pickups.DropChance > 1 {
		errs = append(errs, fmt.Errorf("pickups.drop_chance must be within [0, 1], got %v", c.Pickups.DropChance))
	}
	if c.View.CellWidth <= 0 || c.View.CellHeight <= 0 {
		errs = append(errs, errors.New("view cell sizes must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runngun config: %w", errors.Join(errs...))
	}
	return nil
}
