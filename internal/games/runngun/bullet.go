package runngun

import (
	"github.com/vovakirdan/runngun/internal/config"
)

// Bullet flies horizontally until it expires or hits a wall.
type Bullet struct {
	Body
	Dir        Direction
	Speed      float64
	FromPlayer bool
	Lifetime   int // Ticks left
}

// NewBullet creates a bullet moving in dir at the base speed times multiplier.
func NewBullet(x, y float64, dir Direction, fromPlayer bool, multiplier float64, w *config.RunGunWeapon) *Bullet {
	b := &Bullet{
		Body:       newBody(KindBullet, x, y, w.BulletSize, w.BulletSize),
		Dir:        dir,
		Speed:      w.BulletSpeed * multiplier,
		FromPlayer: fromPlayer,
		Lifetime:   w.BulletLifetime,
	}
	b.Vel.X = float64(dir) * b.Speed
	return b
}

// Update moves the bullet and expires it.
func (b *Bullet) Update(tc *TickContext) {
	b.Pos.X += b.Vel.X
	b.Lifetime--
	if b.Lifetime <= 0 {
		b.Active = false
		return
	}

	if tc.Tiles.TileAt(b.Pos.X+b.W/2, b.Pos.Y+b.H/2) == TileSolid {
		b.Active = false
	}
}

// Draw renders the bullet in its owner's color.
func (b *Bullet) Draw(r Renderer) {
	if b.FromPlayer {
		r.DrawSprite(&playerBulletSprite, b.Pos.X, b.Pos.Y, false)
		return
	}
	r.DrawSprite(&enemyBulletSprite, b.Pos.X, b.Pos.Y, false)
}
