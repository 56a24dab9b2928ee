package runngun

import (
	"math"

	"github.com/vovakirdan/runngun/internal/config"
)

// PickupKind selects which upgrade a pickup grants.
type PickupKind int

const (
	PickupBulletSpeed PickupKind = iota // Faster bullets
	PickupFireRate                      // Shorter weapon cooldown
)

// String returns the name of the pickup kind.
func (k PickupKind) String() string {
	switch k {
	case PickupBulletSpeed:
		return "Speed"
	case PickupFireRate:
		return "Rapid"
	default:
		return "?"
	}
}

// Apply grants the upgrade to p. Levels have no ceiling.
func (k PickupKind) Apply(p *Player) {
	switch k {
	case PickupBulletSpeed:
		p.BulletSpeedLevel++
	case PickupFireRate:
		p.FireRateLevel++
	}
}

// Pickup pops up from a dead enemy and rests on the ground until collected
// or expired.
type Pickup struct {
	Body
	PickupKind PickupKind
	Lifetime   int // Ticks left
}

// NewPickup creates a pickup at (x, y) with its upward pop already applied.
func NewPickup(x, y float64, kind PickupKind, cfg *config.RunGunConfig) *Pickup {
	c := &cfg.Pickups
	p := &Pickup{
		Body:       newBody(KindPickup, x, y, c.Size, c.Size),
		PickupKind: kind,
		Lifetime:   c.Lifetime,
	}
	p.Vel.Y = c.PopImpulse
	return p
}

// Update falls, lands and counts down.
func (p *Pickup) Update(tc *TickContext) {
	applyGravity(&p.Vel, tc.Cfg.Physics.Gravity, 0)

	res := tc.Tiles.Resolve(p.Pos, p.W, p.H, p.Vel)
	p.Pos = res.Pos
	p.Vel = res.Vel

	p.Lifetime--
	if p.Lifetime <= 0 || p.Pos.Y > tc.Tiles.Height() {
		p.Active = false
	}
}

// Draw renders the pickup with a small bob driven by its lifetime.
func (p *Pickup) Draw(r Renderer) {
	bob := math.Sin(float64(p.Lifetime)/12) * 2
	r.DrawSprite(pickupSprite(p.PickupKind), p.Pos.X, p.Pos.Y+bob, false)
}
