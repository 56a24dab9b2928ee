package runngun

import (
	"github.com/vovakirdan/runngun/internal/config"
	"github.com/vovakirdan/runngun/internal/core"
)

// Player is the character driven by input.
type Player struct {
	Body

	HP         int
	MaxHP      int
	Invincible int // Ticks of damage immunity left
	Facing     Direction
	Grounded   bool
	Cooldown   int // Ticks until the weapon can fire again

	// Upgrade levels only ever go up.
	BulletSpeedLevel int
	FireRateLevel    int

	invincibilityTicks int
}

// NewPlayer creates a player at (x, y) using cfg for its stats.
func NewPlayer(x, y float64, cfg *config.RunGunConfig) *Player {
	return &Player{
		Body:               newBody(KindPlayer, x, y, cfg.Player.Width, cfg.Player.Height),
		HP:                 cfg.Player.MaxHP,
		MaxHP:              cfg.Player.MaxHP,
		Facing:             Right,
		BulletSpeedLevel:   1,
		FireRateLevel:      1,
		invincibilityTicks: cfg.Player.InvincibilityTicks,
	}
}

// Update reads input, fires, applies gravity and resolves against the grid.
func (p *Player) Update(tc *TickContext) {
	cfg := tc.Cfg
	if p.Invincible > 0 {
		p.Invincible--
	}

	if axis := tc.Input.AxisX(); axis != 0 {
		p.Vel.X = float64(axis) * cfg.Player.Speed
		p.Facing = Direction(axis)
	} else {
		p.Vel.X = 0
	}

	if tc.Input.Has(core.ActionJump) && p.Grounded {
		p.Vel.Y = cfg.Player.JumpImpulse
		p.Grounded = false
	}

	if p.Cooldown > 0 {
		p.Cooldown--
	}
	if tc.Input.IsDown(core.ActionFire) && p.Cooldown <= 0 {
		p.shoot(tc)
		p.Cooldown = p.fireCooldown(&cfg.Weapon)
	}

	applyGravity(&p.Vel, cfg.Physics.Gravity, cfg.Physics.TerminalVelocity)

	res := tc.Tiles.Resolve(p.Pos, p.W, p.H, p.Vel)
	p.Pos = res.Pos
	p.Vel = res.Vel
	p.Grounded = res.Grounded

	// Lethal, but still blocked by an open invincibility window.
	if p.Pos.Y > tc.Tiles.Height() {
		p.TakeDamage(p.HP)
	}
}

// fireCooldown returns the ticks between shots at the current fire-rate level.
func (p *Player) fireCooldown(w *config.RunGunWeapon) int {
	return max(w.MinCooldown, w.BaseFireRate-p.FireRateLevel*w.FireRateStep)
}

func (p *Player) shoot(tc *TickContext) {
	w := &tc.Cfg.Weapon
	bx := p.Pos.X - w.BulletSize
	if p.Facing == Right {
		bx = p.Pos.X + p.W
	}
	tc.Spawn(NewBullet(bx, p.Pos.Y+w.PlayerMuzzleY, p.Facing, true, float64(p.BulletSpeedLevel), w))
}

// TakeDamage removes hp unless the invincibility window is open, and
// reopens the window on a hit.
func (p *Player) TakeDamage(amount int) {
	if p.Invincible > 0 {
		return
	}
	p.HP -= amount
	p.Invincible = p.invincibilityTicks
}

// Draw renders the player, blinking while invincible.
func (p *Player) Draw(r Renderer) {
	if p.Invincible > 0 && (p.Invincible/4)%2 == 0 {
		return
	}
	r.DrawSprite(&playerSprite, p.Pos.X, p.Pos.Y, p.Facing == Left)
}
