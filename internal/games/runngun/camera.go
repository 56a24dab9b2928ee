package runngun

import "github.com/vovakirdan/runngun/internal/core"

// Camera is the visible window onto the level, in world units.
type Camera struct {
	Pos    core.Vec2
	ViewW  float64
	ViewH  float64
	LevelW float64
	LevelH float64
}

// NewCamera creates a camera for a level of the given size.
func NewCamera(viewW, viewH, levelW, levelH float64) *Camera {
	return &Camera{ViewW: viewW, ViewH: viewH, LevelW: levelW, LevelH: levelH}
}

// Follow centres the view horizontally on target, clamped to the level.
// The view never scrolls vertically.
func (c *Camera) Follow(target core.Vec2) {
	maxX := c.LevelW - c.ViewW
	if maxX < 0 {
		maxX = 0
	}
	c.Pos.X = core.ClampF(target.X-c.ViewW/2, 0, maxX)
	c.Pos.Y = 0
}

// Resize changes the viewport, keeping the current clamp.
func (c *Camera) Resize(viewW, viewH float64) {
	c.ViewW = viewW
	c.ViewH = viewH
	c.Follow(core.V(c.Pos.X+viewW/2, 0))
}
