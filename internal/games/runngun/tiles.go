package runngun

import (
	"fmt"
	"math"

	"github.com/vovakirdan/runngun/internal/core"
)

// Tile is a cell code of the level grid.
type Tile int

const (
	TileAir    Tile = 0 // Empty space
	TileSolid  Tile = 1 // Blocks from every side
	TileOneWay Tile = 2 // Blocks only when landing from above
)

// edgeEpsilon keeps a box whose edge sits exactly on a tile boundary from
// counting the neighbouring tile as overlapped.
const edgeEpsilon = 0.1

// TileMap is the read-only level grid. It is indexed [row][col] and never
// mutated after construction, so every entity can query it freely.
type TileMap struct {
	cells    [][]Tile
	cols     int
	tileSize float64
}

// NewTileMap validates and wraps a grid. Empty or ragged grids are rejected
// here so that the simulation never has to handle them.
func NewTileMap(cells [][]Tile, tileSize float64) (*TileMap, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("runngun: tile size must be positive, got %v", tileSize)
	}
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyLevel
	}
	cols := len(cells[0])
	for i, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRaggedLevel, i, len(row), cols)
		}
	}
	return &TileMap{cells: cells, cols: cols, tileSize: tileSize}, nil
}

// Rows returns the grid height in tiles.
func (m *TileMap) Rows() int { return len(m.cells) }

// Cols returns the grid width in tiles.
func (m *TileMap) Cols() int { return m.cols }

// TileSize returns the edge length of a tile in world units.
func (m *TileMap) TileSize() float64 { return m.tileSize }

// Width returns the level width in world units.
func (m *TileMap) Width() float64 { return float64(m.cols) * m.tileSize }

// Height returns the level height in world units.
func (m *TileMap) Height() float64 { return float64(len(m.cells)) * m.tileSize }

// Cell returns the tile at a grid position. Anything outside the grid is air.
func (m *TileMap) Cell(row, col int) Tile {
	if row < 0 || row >= len(m.cells) || col < 0 || col >= m.cols {
		return TileAir
	}
	return m.cells[row][col]
}

// TileAt returns the tile containing a world point. Anything outside the
// grid is air.
func (m *TileMap) TileAt(x, y float64) Tile {
	return m.Cell(core.FloorDiv(y, m.tileSize), core.FloorDiv(x, m.tileSize))
}

// Resolution is the outcome of moving a box through the grid for one tick.
type Resolution struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Grounded bool // A downward collision zeroed Vel.Y this tick
}

// span returns the first and last tile index covered by [start, start+size).
func (m *TileMap) span(start, size float64) (int, int) {
	return core.FloorDiv(start, m.tileSize), core.FloorDiv(start+size-edgeEpsilon, m.tileSize)
}

// Resolve moves a w×h box at pos by vel and pushes it out of the grid.
//
// The horizontal axis is moved and corrected before the vertical one. Every
// overlapped tile is applied in row-major order and a later correction
// overwrites an earlier one.
func (m *TileMap) Resolve(pos core.Vec2, w, h float64, vel core.Vec2) Resolution {
	ts := m.tileSize
	p := pos
	v := vel
	grounded := false

	p.X += v.X
	r0, r1 := m.span(p.Y, h)
	c0, c1 := m.span(p.X, w)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if m.Cell(row, col) != TileSolid {
				continue
			}
			switch {
			case v.X > 0:
				p.X = float64(col)*ts - w
				v.X = 0
			case v.X < 0:
				p.X = float64(col+1) * ts
				v.X = 0
			}
		}
	}

	prevBottom := pos.Y + h
	p.Y += v.Y
	r0, r1 = m.span(p.Y, h)
	c0, c1 = m.span(p.X, w)
	for row := r0; row <= r1; row++ {
		top := float64(row) * ts
		for col := c0; col <= c1; col++ {
			switch m.Cell(row, col) {
			case TileSolid:
				switch {
				case v.Y > 0:
					// Applies even when the box starts embedded in the tile.
					p.Y = top - h
					v.Y = 0
					grounded = true
				case v.Y < 0:
					p.Y = top + ts
					v.Y = 0
				}
			case TileOneWay:
				if v.Y > 0 && prevBottom <= top+math.Max(v.Y, 1) {
					p.Y = top - h
					v.Y = 0
					grounded = true
				}
			}
		}
	}

	if !grounded && vel.Y == 0 {
		grounded = m.supported(p, w, h)
	}

	return Resolution{Pos: p, Vel: v, Grounded: grounded}
}

// supported reports whether a box's bottom edge rests exactly on the top of
// a solid or one-way tile.
func (m *TileMap) supported(p core.Vec2, w, h float64) bool {
	bottom := p.Y + h
	row := core.FloorDiv(bottom, m.tileSize)
	if float64(row)*m.tileSize != bottom {
		return false
	}
	c0, c1 := m.span(p.X, w)
	for col := c0; col <= c1; col++ {
		if m.Cell(row, col) != TileAir {
			return true
		}
	}
	return false
}

// Overlap is the half-open AABB test used for every entity interaction.
func Overlap(a, b core.RectF) bool {
	return a.Overlaps(b)
}
