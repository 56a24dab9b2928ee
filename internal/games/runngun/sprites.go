package runngun

import "github.com/vovakirdan/runngun/internal/core"

// Sprite is a small block of glyphs drawn at an entity's position.
// Sprites face right; the renderer mirrors them for left-facing entities.
type Sprite struct {
	Rows  []string
	Color core.Color
}

var mirrorRunes = map[rune]rune{
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'<': '>', '>': '<',
	'/': '\\', '\\': '/',
	'{': '}', '}': '{',
	'▶': '◀', '◀': '▶',
	'╘': '╛', '╛': '╘',
	'╒': '╕', '╕': '╒',
}

// mirrorRow flips a sprite row horizontally.
func mirrorRow(row string) string {
	rs := []rune(row)
	out := make([]rune, len(rs))
	for i, r := range rs {
		if m, ok := mirrorRunes[r]; ok {
			r = m
		}
		out[len(rs)-1-i] = r
	}
	return string(out)
}

var (
	playerSprite = Sprite{
		Rows: []string{
			" () ",
			"/██═",
			" /\\ ",
		},
		Color: core.ColorBrightCyan,
	}
	walkerSprite = Sprite{
		Rows: []string{
			"[oo>",
			"/  \\",
		},
		Color: core.ColorRed,
	}
	turretSprite = Sprite{
		Rows: []string{
			"╒══▶",
			"[██]",
		},
		Color: core.ColorMagenta,
	}
	playerBulletSprite = Sprite{Rows: []string{"•"}, Color: core.ColorBrightYellow}
	enemyBulletSprite  = Sprite{Rows: []string{"•"}, Color: core.ColorBrightRed}

	bulletSpeedPickup = Sprite{Rows: []string{"[S]"}, Color: core.ColorBrightGreen}
	fireRatePickup    = Sprite{Rows: []string{"[R]"}, Color: core.ColorOrange}
)

func pickupSprite(k PickupKind) *Sprite {
	if k == PickupFireRate {
		return &fireRatePickup
	}
	return &bulletSpeedPickup
}
