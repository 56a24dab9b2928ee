package runngun

import (
	"math"

	"github.com/vovakirdan/runngun/internal/config"
)

// enemyBody holds what the enemy variants share.
type enemyBody struct {
	Body
	HP    int
	Score int
}

// TakeDamage removes hp and deactivates the enemy once it is depleted.
// Scoring and drops belong to the interaction pass.
func (e *enemyBody) TakeDamage(amount int) {
	e.HP -= amount
	if e.HP <= 0 {
		e.Active = false
	}
}

// ScoreValue is the score awarded for the kill.
func (e *enemyBody) ScoreValue() int { return e.Score }

// Health returns the remaining hp.
func (e *enemyBody) Health() int { return e.HP }

// Walker patrols left and right, turning at walls and ledges.
type Walker struct {
	enemyBody
	Facing Direction
}

// NewWalker creates a walker at (x, y) heading left.
func NewWalker(x, y float64, cfg *config.RunGunConfig) *Walker {
	c := &cfg.Walker
	return &Walker{
		enemyBody: enemyBody{
			Body:  newBody(KindEnemy, x, y, c.Width, c.Height),
			HP:    c.HP,
			Score: c.Score,
		},
		Facing: Left,
	}
}

// Update walks, falls and turns around.
func (w *Walker) Update(tc *TickContext) {
	c := &tc.Cfg.Walker
	w.Vel.X = float64(w.Facing) * c.Speed
	applyGravity(&w.Vel, tc.Cfg.Physics.Gravity, 0)

	res := tc.Tiles.Resolve(w.Pos, w.W, w.H, w.Vel)
	w.Pos = res.Pos
	w.Vel = res.Vel

	// Wall one unit past the leading edge.
	probeX := w.Pos.X - 1
	if w.Facing == Right {
		probeX = w.Pos.X + w.W + 1
	}
	if tc.Tiles.TileAt(probeX, w.Pos.Y) == TileSolid {
		w.Facing = -w.Facing
	}

	// No ground ahead of the leading edge.
	if res.Grounded {
		groundX := w.Pos.X + float64(w.Facing)*c.LedgeProbe
		if w.Facing == Right {
			groundX += w.W
		}
		if tc.Tiles.TileAt(groundX, w.Pos.Y+w.H+1) == TileAir {
			w.Facing = -w.Facing
		}
	}

	if w.Pos.Y > tc.Tiles.Height() {
		w.Active = false
	}
}

// Draw renders the walker facing its patrol direction.
func (w *Walker) Draw(r Renderer) {
	r.DrawSprite(&walkerSprite, w.Pos.X, w.Pos.Y, w.Facing == Left)
}

// Turret stands still and shoots at a player in range.
type Turret struct {
	enemyBody
	FireTimer int
}

// NewTurret creates a turret at (x, y).
func NewTurret(x, y float64, cfg *config.RunGunConfig) *Turret {
	c := &cfg.Turret
	return &Turret{
		enemyBody: enemyBody{
			Body:  newBody(KindEnemy, x, y, c.Width, c.Height),
			HP:    c.HP,
			Score: c.Score,
		},
	}
}

// Update charges while the player is within range and fires when charged.
func (t *Turret) Update(tc *TickContext) {
	player := tc.Player()
	if player == nil {
		return
	}
	c := &tc.Cfg.Turret
	if math.Abs(player.Pos.X-t.Pos.X) >= c.Range {
		return
	}
	t.FireTimer++
	if t.FireTimer > c.FireInterval {
		t.fire(tc, player)
		t.FireTimer = 0
	}
}

func (t *Turret) fire(tc *TickContext, player *Player) {
	w := &tc.Cfg.Weapon
	dir := Right
	bx := t.Pos.X + t.W
	if player.Pos.X < t.Pos.X {
		dir = Left
		bx = t.Pos.X - w.BulletSize
	}
	tc.Spawn(NewBullet(bx, t.Pos.Y+w.EnemyMuzzleY, dir, false, w.EnemySpeedMultiple, w))
}

// Draw renders the turret.
func (t *Turret) Draw(r Renderer) {
	r.DrawSprite(&turretSprite, t.Pos.X, t.Pos.Y, false)
}
