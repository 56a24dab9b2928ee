package runngun

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/runngun/internal/core"
)

// gridFromRows builds a 16-unit tile map from glyph rows.
func gridFromRows(t *testing.T, rows ...string) *TileMap {
	t.Helper()
	cells := make([][]Tile, len(rows))
	for r, line := range rows {
		cells[r] = make([]Tile, len(line))
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case '#':
				cells[r][c] = TileSolid
			case '=':
				cells[r][c] = TileOneWay
			}
		}
	}
	m, err := NewTileMap(cells, 16)
	require.NoError(t, err)
	return m
}

func TestNewTileMapRejectsBadGrids(t *testing.T) {
	_, err := NewTileMap(nil, 16)
	assert.True(t, errors.Is(err, ErrEmptyLevel))

	_, err = NewTileMap([][]Tile{{}}, 16)
	assert.True(t, errors.Is(err, ErrEmptyLevel))

	_, err = NewTileMap([][]Tile{{0, 0}, {0}}, 16)
	assert.True(t, errors.Is(err, ErrRaggedLevel))

	_, err = NewTileMap([][]Tile{{0}}, 0)
	assert.Error(t, err)
}

func TestTileAt(t *testing.T) {
	m := gridFromRows(t,
		"#.",
		".=",
	)

	tests := []struct {
		name string
		x, y float64
		want Tile
	}{
		{"origin", 0, 0, TileSolid},
		{"inside first tile", 15.9, 15.9, TileSolid},
		{"next column", 16, 0, TileAir},
		{"one-way", 20, 20, TileOneWay},
		{"negative x floors to column -1", -0.5, 0, TileAir},
		{"negative y floors to row -1", 0, -0.01, TileAir},
		{"past right edge", 32, 0, TileAir},
		{"past bottom edge", 0, 32, TileAir},
		{"far away", -1e6, 1e6, TileAir},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.TileAt(tt.x, tt.y))
		})
	}
}

func TestResolveRestingIsIdempotent(t *testing.T) {
	m := gridFromRows(t,
		"....",
		"....",
		"####",
	)
	pos := core.V(16, 16) // 16x16 box whose bottom sits on the ground at y=32

	res := m.Resolve(pos, 16, 16, core.Vec2{})
	assert.Equal(t, pos, res.Pos)
	assert.Equal(t, core.Vec2{}, res.Vel)
	assert.True(t, res.Grounded)

	again := m.Resolve(res.Pos, 16, 16, res.Vel)
	assert.Equal(t, res, again)
}

func TestResolveLandsWithGravity(t *testing.T) {
	m := gridFromRows(t,
		"....",
		"....",
		"####",
	)

	res := m.Resolve(core.V(16, 16), 16, 16, core.V(0, 0.25))
	assert.Equal(t, core.V(16, 16), res.Pos)
	assert.Equal(t, 0.0, res.Vel.Y)
	assert.True(t, res.Grounded)
}

func TestResolveInAirIsNotGrounded(t *testing.T) {
	m := gridFromRows(t,
		"....",
		"....",
		"####",
	)

	res := m.Resolve(core.V(16, 4), 16, 16, core.Vec2{})
	assert.False(t, res.Grounded)
}

func TestResolveNoTunneling(t *testing.T) {
	m := gridFromRows(t,
		"...#....",
		"...#....",
	)
	const wallLeft, wallRight = 48.0, 64.0

	for vx := 0.5; vx < 16; vx += 0.5 {
		res := m.Resolve(core.V(wallLeft-16, 0), 16, 16, core.V(vx, 0))
		assert.LessOrEqual(t, res.Pos.X+16, wallLeft, "rightward vx=%v", vx)

		res = m.Resolve(core.V(wallRight, 0), 16, 16, core.V(-vx, 0))
		assert.GreaterOrEqual(t, res.Pos.X, wallRight, "leftward vx=%v", vx)
	}
}

func TestResolveHorizontalClamp(t *testing.T) {
	m := gridFromRows(t,
		"...#",
	)

	res := m.Resolve(core.V(30, 0), 16, 16, core.V(5, 0))
	assert.Equal(t, 32.0, res.Pos.X)
	assert.Equal(t, 0.0, res.Vel.X)

	m = gridFromRows(t,
		"#...",
	)
	res = m.Resolve(core.V(18, 0), 16, 16, core.V(-5, 0))
	assert.Equal(t, 16.0, res.Pos.X)
	assert.Equal(t, 0.0, res.Vel.X)
}

func TestResolveCeiling(t *testing.T) {
	m := gridFromRows(t,
		"####",
		"....",
		"....",
	)

	res := m.Resolve(core.V(16, 18), 16, 16, core.V(0, -5.5))
	assert.Equal(t, 16.0, res.Pos.Y)
	assert.Equal(t, 0.0, res.Vel.Y)
	assert.False(t, res.Grounded)
}

func TestResolveEdgeFlushWithWallIsNotBlocked(t *testing.T) {
	m := gridFromRows(t,
		"....",
		"....",
		"#...",
	)

	// Box flush against the right face of the ground tile falls freely.
	res := m.Resolve(core.V(16, 16), 16, 16, core.V(0, 4))
	assert.Equal(t, 20.0, res.Pos.Y)
	assert.False(t, res.Grounded)
}

func TestOneWayPlatform(t *testing.T) {
	m := gridFromRows(t,
		"....",
		"....",
		"====",
		"....",
		"....",
	)

	t.Run("jumping up passes through", func(t *testing.T) {
		res := m.Resolve(core.V(16, 40), 16, 16, core.V(0, -5))
		assert.Equal(t, 35.0, res.Pos.Y)
		assert.Equal(t, -5.0, res.Vel.Y)
		assert.False(t, res.Grounded)
	})

	t.Run("landing from above stops at the top edge", func(t *testing.T) {
		res := m.Resolve(core.V(16, 14), 16, 16, core.V(0, 4))
		assert.Equal(t, 16.0, res.Pos.Y)
		assert.Equal(t, 0.0, res.Vel.Y)
		assert.True(t, res.Grounded)
	})

	t.Run("falling from inside the platform does not snap up", func(t *testing.T) {
		res := m.Resolve(core.V(16, 30), 16, 16, core.V(0, 1))
		assert.Equal(t, 31.0, res.Pos.Y)
		assert.False(t, res.Grounded)
	})

	t.Run("tolerance scales with fall speed", func(t *testing.T) {
		// Bottom at 37 is 5 below the top; a 6/tick fall still lands.
		res := m.Resolve(core.V(16, 21), 16, 16, core.V(0, 6))
		assert.Equal(t, 16.0, res.Pos.Y)
		assert.True(t, res.Grounded)
	})
}

func TestResolveMultiTileFirstClampWins(t *testing.T) {
	m := gridFromRows(t,
		"....",
		"....",
		"#...",
		".#..",
	)

	// A 32x32 box overlaps both solid tiles after the move. Cells are visited
	// row by row: row 2 clamps the box to y=0 and zeroes vy, so the row 3
	// tile matches neither direction and leaves the position alone.
	res := m.Resolve(core.V(0, 12), 32, 32, core.V(0, 8))
	assert.Equal(t, 0.0, res.Pos.Y)
	assert.Equal(t, 0.0, res.Vel.Y)
	assert.True(t, res.Grounded)
}

func TestOverlap(t *testing.T) {
	a := core.NewRectF(0, 0, 10, 10)

	tests := []struct {
		name string
		b    core.RectF
		want bool
	}{
		{"intersecting", core.NewRectF(5, 5, 10, 10), true},
		{"contained", core.NewRectF(2, 2, 2, 2), true},
		{"touching right edge", core.NewRectF(10, 0, 5, 5), false},
		{"touching bottom edge", core.NewRectF(0, 10, 5, 5), false},
		{"apart", core.NewRectF(20, 20, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlap(a, tt.b))
			assert.Equal(t, tt.want, Overlap(tt.b, a), "symmetry")
		})
	}
}
