package runngun

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/runngun/internal/config"
	"github.com/vovakirdan/runngun/internal/core"
)

// Level validation errors.
var (
	ErrEmptyLevel   = errors.New("level has no tiles")
	ErrRaggedLevel  = errors.New("level rows differ in length")
	ErrUnknownTile  = errors.New("unknown tile glyph")
	ErrUnknownEnemy = errors.New("unknown enemy kind")
)

//go:embed levels/level1.yaml
var defaultLevelYAML []byte

// Glyphs used in level rows.
const (
	glyphAir    = '.'
	glyphSolid  = '#'
	glyphOneWay = '='
)

// EnemyKind names an enemy variant in a spawn table.
type EnemyKind string

const (
	EnemyWalker EnemyKind = "walker"
	EnemyTurret EnemyKind = "turret"
)

// EnemySpawn places one enemy when the level starts.
type EnemySpawn struct {
	Kind EnemyKind `yaml:"kind"`
	X    float64   `yaml:"x"`
	Y    float64   `yaml:"y"`
}

func (s EnemySpawn) build(cfg *config.RunGunConfig) Entity {
	if s.Kind == EnemyTurret {
		return NewTurret(s.X, s.Y, cfg)
	}
	return NewWalker(s.X, s.Y, cfg)
}

// Level is a parsed level: tile grid, player spawn point and enemy roster.
type Level struct {
	ID      string
	Name    string
	Spawn   core.Vec2
	Enemies []EnemySpawn
	Tiles   [][]Tile
}

// levelFile is the YAML layout of a level document.
type levelFile struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Spawn struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	} `yaml:"spawn"`
	Enemies []EnemySpawn `yaml:"enemies"`
	Rows    []string     `yaml:"rows"`
}

// ParseLevel decodes and validates a YAML level document.
func ParseLevel(data []byte) (*Level, error) {
	var f levelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}

	if len(f.Rows) == 0 || len(f.Rows[0]) == 0 {
		return nil, ErrEmptyLevel
	}
	cols := len(f.Rows[0])
	tiles := make([][]Tile, len(f.Rows))
	for r, line := range f.Rows {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRaggedLevel, r, len(line), cols)
		}
		row := make([]Tile, cols)
		for c := 0; c < cols; c++ {
			switch line[c] {
			case glyphAir:
				row[c] = TileAir
			case glyphSolid:
				row[c] = TileSolid
			case glyphOneWay:
				row[c] = TileOneWay
			default:
				return nil, fmt.Errorf("%w %q at row %d col %d", ErrUnknownTile, line[c], r, c)
			}
		}
		tiles[r] = row
	}

	for i, e := range f.Enemies {
		switch e.Kind {
		case EnemyWalker, EnemyTurret:
		default:
			return nil, fmt.Errorf("%w %q in spawn %d", ErrUnknownEnemy, e.Kind, i)
		}
	}

	id := f.ID
	if id == "" {
		id = "custom"
	}
	return &Level{
		ID:      id,
		Name:    f.Name,
		Spawn:   core.V(f.Spawn.X, f.Spawn.Y),
		Enemies: f.Enemies,
		Tiles:   tiles,
	}, nil
}

// LoadLevelFile reads and parses a level from disk.
func LoadLevelFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	lvl, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return lvl, nil
}

// DefaultLevel returns a fresh copy of the built-in level.
func DefaultLevel() *Level {
	lvl, err := ParseLevel(defaultLevelYAML)
	if err != nil {
		panic("runngun: embedded level is invalid: " + err.Error())
	}
	return lvl
}

// String renders the grid back into glyph rows.
func (l *Level) String() string {
	var b strings.Builder
	for _, row := range l.Tiles {
		for _, t := range row {
			switch t {
			case TileSolid:
				b.WriteByte(glyphSolid)
			case TileOneWay:
				b.WriteByte(glyphOneWay)
			default:
				b.WriteByte(glyphAir)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
