package runngun

import (
	"math"

	"github.com/vovakirdan/runngun/internal/core"
)

// Renderer is what entities and the session draw through.
type Renderer interface {
	Clear()
	DrawSprite(s *Sprite, x, y float64, flip bool)
	DrawTilemap(m *TileMap)
}

// Terrain glyphs.
const (
	groundChar = '█'
	grassChar  = '▀'
	ledgeChar  = '═'
)

// ScreenRenderer projects world coordinates onto a character Screen.
// Each cell covers CellW×CellH world units; rows above Top are left to the HUD.
type ScreenRenderer struct {
	Screen *core.Screen
	Camera *Camera
	CellW  float64
	CellH  float64
	Top    int
}

// NewScreenRenderer creates a renderer drawing below the given number of HUD rows.
func NewScreenRenderer(dst *core.Screen, cam *Camera, cellW, cellH float64, top int) *ScreenRenderer {
	return &ScreenRenderer{Screen: dst, Camera: cam, CellW: cellW, CellH: cellH, Top: top}
}

// toCell maps a world point to a screen cell.
func (r *ScreenRenderer) toCell(x, y float64) (int, int) {
	cx := int(math.Floor((x - r.Camera.Pos.X) / r.CellW))
	cy := int(math.Floor((y-r.Camera.Pos.Y)/r.CellH)) + r.Top
	return cx, cy
}

// Clear blanks the play area.
func (r *ScreenRenderer) Clear() {
	s := r.Screen
	s.DrawRect(core.NewRect(0, r.Top, s.Width(), s.Height()-r.Top), ' ', core.ColorDefault)
}

// DrawSprite draws s with its top-left corner at world (x, y). Spaces are
// transparent.
func (r *ScreenRenderer) DrawSprite(s *Sprite, x, y float64, flip bool) {
	cx, cy := r.toCell(x, y)
	for dy, row := range s.Rows {
		if cy+dy < r.Top {
			continue
		}
		if flip {
			row = mirrorRow(row)
		}
		dx := 0
		for _, ch := range row {
			if ch != ' ' {
				r.Screen.SetColored(cx+dx, cy+dy, ch, s.Color)
			}
			dx++
		}
	}
}

// DrawTilemap samples the grid at the centre of every visible cell.
func (r *ScreenRenderer) DrawTilemap(m *TileMap) {
	ts := m.TileSize()
	for cy := r.Top; cy < r.Screen.Height(); cy++ {
		wy := r.Camera.Pos.Y + (float64(cy-r.Top)+0.5)*r.CellH
		row := core.FloorDiv(wy, ts)
		topCell := wy-float64(row)*ts < r.CellH
		for cx := 0; cx < r.Screen.Width(); cx++ {
			wx := r.Camera.Pos.X + (float64(cx)+0.5)*r.CellW
			col := core.FloorDiv(wx, ts)
			switch m.Cell(row, col) {
			case TileSolid:
				if topCell && m.Cell(row-1, col) == TileAir {
					r.Screen.SetColored(cx, cy, grassChar, core.ColorGreen)
				} else {
					r.Screen.SetColored(cx, cy, groundChar, core.ColorBrown)
				}
			case TileOneWay:
				if topCell {
					r.Screen.SetColored(cx, cy, ledgeChar, core.ColorGray)
				}
			}
		}
	}
}
