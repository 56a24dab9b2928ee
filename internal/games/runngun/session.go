package runngun

import (
	"fmt"

	"github.com/vovakirdan/runngun/internal/config"
	"github.com/vovakirdan/runngun/internal/core"
)

// SessionState is the top-level mode of a session.
type SessionState int

const (
	StatePlaying SessionState = iota
	StateGameOver
)

// String returns the name of the state.
func (s SessionState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// TickResult reports what a single tick did.
type TickResult struct {
	ScoreDelta int
	Restarted  bool
	Ended      bool // The session entered GameOver on this tick
}

// Session owns one playthrough of a level: the entity set, score, state
// machine and the immutable tile grid.
//
// The entity set only changes at phase boundaries. Spawns made while
// entities update or interact are buffered and merged between phases;
// inactive entities are dropped at the end of the tick.
type Session struct {
	cfg    config.RunGunConfig
	level  *Level
	tiles  *TileMap
	camera *Camera
	rng    Roller

	entities []Entity
	pending  []Entity
	ids      IDAllocator

	player *Player
	score  int
	state  SessionState
	paused bool
	tick   uint64
}

// NewSession validates cfg and level and starts the level. viewW and viewH
// size the camera viewport in world units.
func NewSession(cfg config.RunGunConfig, level *Level, rng Roller, viewW, viewH float64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if level == nil {
		return nil, fmt.Errorf("runngun: %w", ErrEmptyLevel)
	}
	tiles, err := NewTileMap(level.Tiles, cfg.Physics.TileSize)
	if err != nil {
		return nil, fmt.Errorf("runngun: level %q: %w", level.ID, err)
	}
	if rng == nil {
		rng = core.NewSimpleRNG(1)
	}

	s := &Session{
		cfg:    cfg,
		level:  level,
		tiles:  tiles,
		camera: NewCamera(viewW, viewH, tiles.Width(), tiles.Height()),
		rng:    rng,
	}
	s.Restart()
	return s, nil
}

// Restart clears the world and respawns the player and the level roster.
func (s *Session) Restart() {
	s.entities = s.entities[:0]
	s.pending = s.pending[:0]
	s.score = 0
	s.state = StatePlaying
	s.paused = false

	s.player = NewPlayer(s.level.Spawn.X, s.level.Spawn.Y, &s.cfg)
	s.add(s.player)
	for _, sp := range s.level.Enemies {
		s.add(sp.build(&s.cfg))
	}
	s.camera.Follow(s.player.Pos)
}

func (s *Session) add(e Entity) {
	e.Base().ID = s.ids.Next()
	s.entities = append(s.entities, e)
}

func (s *Session) queue(e Entity) {
	s.pending = append(s.pending, e)
}

func (s *Session) flush() {
	for _, e := range s.pending {
		s.add(e)
	}
	s.pending = s.pending[:0]
}

// Tick advances the session by one fixed step.
func (s *Session) Tick(in core.InputFrame) TickResult {
	if in.Has(core.ActionRestart) {
		s.Restart()
		return TickResult{Restarted: true}
	}
	if s.state == StateGameOver {
		return TickResult{}
	}
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return TickResult{}
	}

	live := s.entities
	tc := &TickContext{
		Tiles:    s.tiles,
		Input:    in,
		Cfg:      &s.cfg,
		Tick:     s.tick,
		Entities: live,
		spawn:    s.queue,
	}
	for _, e := range live {
		if e.Base().Active {
			e.Update(tc)
		}
	}
	s.flush()

	delta := ResolveInteractions(s.entities, s.queue, &s.cfg, s.rng)
	s.score += delta
	s.flush()

	res := TickResult{ScoreDelta: delta}
	if s.player != nil && s.player.Active && s.player.HP <= 0 {
		s.player.Active = false
		s.state = StateGameOver
		res.Ended = true
	}

	s.cleanup()

	if s.player != nil && s.player.Active {
		s.camera.Follow(s.player.Pos)
	}
	s.tick++
	return res
}

// cleanup drops inactive entities in place, keeping order.
func (s *Session) cleanup() {
	kept := s.entities[:0]
	for _, e := range s.entities {
		if e.Base().Active {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(s.entities); i++ {
		s.entities[i] = nil
	}
	s.entities = kept
}

// Draw renders the tile grid and every live entity.
func (s *Session) Draw(r Renderer) {
	r.Clear()
	r.DrawTilemap(s.tiles)
	for _, e := range s.entities {
		e.Draw(r)
	}
}

// Entities returns the live set. Callers must not modify it.
func (s *Session) Entities() []Entity { return s.entities }

// Player returns the current player, which stays reachable after death.
func (s *Session) Player() *Player { return s.player }

// Score returns the running score.
func (s *Session) Score() int { return s.score }

// State returns the current session state.
func (s *Session) State() SessionState { return s.state }

// Paused reports whether the simulation is frozen by the pause toggle.
func (s *Session) Paused() bool { return s.paused }

// Ticks returns the number of simulated ticks since the session began.
func (s *Session) Ticks() uint64 { return s.tick }

// Tiles returns the level grid.
func (s *Session) Tiles() *TileMap { return s.tiles }

// Camera returns the view that follows the player.
func (s *Session) Camera() *Camera { return s.camera }

// Level returns the level being played.
func (s *Session) Level() *Level { return s.level }
