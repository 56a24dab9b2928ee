package runngun

import (
	"github.com/vovakirdan/runngun/internal/config"
	"github.com/vovakirdan/runngun/internal/core"
)

// Kind tags the broad category of an entity.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBullet
	KindPickup
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindEnemy:
		return "Enemy"
	case KindBullet:
		return "Bullet"
	case KindPickup:
		return "Pickup"
	default:
		return "Unknown"
	}
}

// Direction is a horizontal facing, usable as a velocity sign.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// EntityID identifies an entity within a session. IDs are never reused.
type EntityID uint64

// IDAllocator hands out monotonically increasing entity IDs.
// It is owned by a Session; there is no process-wide counter.
type IDAllocator struct {
	next EntityID
}

// Next returns a fresh ID.
func (a *IDAllocator) Next() EntityID {
	a.next++
	return a.next
}

// Body holds the state every entity shares.
type Body struct {
	ID     EntityID
	Kind   Kind
	Pos    core.Vec2
	Vel    core.Vec2
	W, H   float64
	Active bool
}

func newBody(kind Kind, x, y, w, h float64) Body {
	return Body{Kind: kind, Pos: core.V(x, y), W: w, H: h, Active: true}
}

// Base returns the shared body; embedding types inherit it.
func (b *Body) Base() *Body { return b }

// Bounds returns the body's world-space box.
func (b *Body) Bounds() core.RectF {
	return core.NewRectF(b.Pos.X, b.Pos.Y, b.W, b.H)
}

// Entity is implemented by the closed set of simulation objects:
// *Player, *Walker, *Turret, *Bullet and *Pickup.
type Entity interface {
	Base() *Body

	// Update advances the entity by one tick. It may mutate the entity
	// itself and queue new entities through the context.
	Update(tc *TickContext)

	// Draw hands the entity's sprite to the renderer.
	Draw(r Renderer)
}

// Enemy is the capability shared by enemy variants.
type Enemy interface {
	Entity
	TakeDamage(amount int)
	ScoreValue() int
	Health() int
}

// TickContext is what an entity sees during its update.
type TickContext struct {
	Tiles *TileMap
	Input core.InputFrame
	Cfg   *config.RunGunConfig
	Tick  uint64

	// Entities is the live set as it was when the update phase began.
	// Entities spawned during the tick are not in it.
	Entities []Entity

	spawn func(Entity)
}

// Spawn queues e for insertion at the next phase boundary.
func (tc *TickContext) Spawn(e Entity) {
	if tc.spawn != nil {
		tc.spawn(e)
	}
}

// Player returns the first active player in the live set, or nil.
func (tc *TickContext) Player() *Player {
	return findPlayer(tc.Entities)
}

func findPlayer(entities []Entity) *Player {
	for _, e := range entities {
		if p, ok := e.(*Player); ok && p.Active {
			return p
		}
	}
	return nil
}

// applyGravity adds one tick of gravity, capped at limit when limit > 0.
func applyGravity(v *core.Vec2, gravity, limit float64) {
	v.Y += gravity
	if limit > 0 && v.Y > limit {
		v.Y = limit
	}
}
