package runngun

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/runngun/internal/config"
	"github.com/vovakirdan/runngun/internal/core"
)

func newTestSession(t *testing.T, seed int64) *Session {
	t.Helper()
	s, err := NewSession(config.DefaultRunGunConfig(), DefaultLevel(), core.NewSimpleRNG(seed), 320, 176)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

// scriptedInput is a fixed input sequence: run right shooting, jump now and then.
func scriptedInput(tick int) core.InputFrame {
	in := core.NewInputFrame()
	in.Hold(core.ActionRight)
	in.Hold(core.ActionFire)
	if tick%45 == 0 {
		in.Set(core.ActionJump)
	}
	if tick%300 > 240 {
		in = core.NewInputFrame()
		in.Hold(core.ActionLeft)
	}
	return in
}

func TestNewSessionSpawnsRoster(t *testing.T) {
	s := newTestSession(t, 1)

	if got, want := len(s.Entities()), 1+len(s.Level().Enemies); got != want {
		t.Fatalf("entities = %d, want %d", got, want)
	}
	if s.Entities()[0] != Entity(s.Player()) {
		t.Error("player should be the first entity")
	}
	if s.State() != StatePlaying || s.Score() != 0 {
		t.Errorf("state=%v score=%d", s.State(), s.Score())
	}

	seen := map[EntityID]bool{}
	for _, e := range s.Entities() {
		id := e.Base().ID
		if id == 0 || seen[id] {
			t.Errorf("bad or duplicate id %d", id)
		}
		seen[id] = true
	}
}

func TestNewSessionRejectsBadInput(t *testing.T) {
	cfg := config.DefaultRunGunConfig()

	if _, err := NewSession(cfg, nil, nil, 100, 100); !errors.Is(err, ErrEmptyLevel) {
		t.Errorf("nil level: err = %v", err)
	}

	ragged := &Level{Tiles: [][]Tile{{0, 0}, {0}}}
	if _, err := NewSession(cfg, ragged, nil, 100, 100); !errors.Is(err, ErrRaggedLevel) {
		t.Errorf("ragged level: err = %v", err)
	}

	cfg.Physics.TileSize = 0
	if _, err := NewSession(cfg, DefaultLevel(), nil, 100, 100); err == nil {
		t.Error("invalid config accepted")
	}
}

func TestSessionDeterminism(t *testing.T) {
	a := newTestSession(t, 42)
	b := newTestSession(t, 42)

	for i := 0; i < 1200; i++ {
		a.Tick(scriptedInput(i))
		b.Tick(scriptedInput(i))

		if i%100 == 0 && a.Snapshot().Hash() != b.Snapshot().Hash() {
			t.Fatalf("diverged at tick %d", i)
		}
	}

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Hash() != sb.Hash() {
		t.Fatalf("final hash mismatch: %d vs %d", sa.Hash(), sb.Hash())
	}
	if sa.Score != sb.Score || sa.State != sb.State || len(sa.Entities) != len(sb.Entities) {
		t.Errorf("snapshots differ: %+v vs %+v", sa, sb)
	}
}

func TestSpawnedBulletSkipsItsFirstUpdate(t *testing.T) {
	s := newTestSession(t, 1)
	before := len(s.Entities())

	s.Tick(pressed(core.ActionFire))

	if len(s.Entities()) != before+1 {
		t.Fatalf("entities = %d, want %d", len(s.Entities()), before+1)
	}
	b, ok := s.Entities()[len(s.Entities())-1].(*Bullet)
	if !ok {
		t.Fatalf("last entity is %T, want *Bullet", s.Entities()[len(s.Entities())-1])
	}
	p := s.Player()
	if b.Pos.X != p.Pos.X+p.W {
		t.Errorf("bullet x = %v, want %v (not yet moved)", b.Pos.X, p.Pos.X+p.W)
	}
	if b.Lifetime != s.cfg.Weapon.BulletLifetime {
		t.Errorf("bullet lifetime = %d, want untouched %d", b.Lifetime, s.cfg.Weapon.BulletLifetime)
	}
}

func TestSessionCleansUpInactive(t *testing.T) {
	s := newTestSession(t, 1)
	victim := s.Entities()[1]
	victim.Base().Active = false

	s.Tick(core.NewInputFrame())

	for _, e := range s.Entities() {
		if e == victim {
			t.Fatal("inactive entity survived cleanup")
		}
		if !e.Base().Active {
			t.Fatalf("inactive %v left in the live set", e.Base().Kind)
		}
	}
}

func TestGameOverFreezesWorld(t *testing.T) {
	s := newTestSession(t, 1)
	s.Tick(core.NewInputFrame())
	s.Player().HP = 0

	res := s.Tick(core.NewInputFrame())
	if !res.Ended || s.State() != StateGameOver {
		t.Fatalf("expected game over, state=%v ended=%v", s.State(), res.Ended)
	}
	if s.Player().Active {
		t.Error("dead player should be inactive")
	}

	frozen := s.Snapshot().Hash()
	for i := 0; i < 60; i++ {
		in := scriptedInput(i)
		in.Set(core.ActionPause)
		s.Tick(in)
	}
	if s.Snapshot().Hash() != frozen {
		t.Error("world changed while game over")
	}
	if s.Paused() {
		t.Error("pause should not toggle while game over")
	}
}

func TestRestartResetsSession(t *testing.T) {
	s := newTestSession(t, 1)
	for i := 0; i < 300; i++ {
		s.Tick(scriptedInput(i))
	}
	s.score = 700
	s.Player().HP = 0
	s.Tick(core.NewInputFrame())
	if s.State() != StateGameOver {
		t.Fatal("setup: expected game over")
	}

	var maxID EntityID
	for _, e := range s.Entities() {
		maxID = max(maxID, e.Base().ID)
	}

	res := s.Tick(pressed(core.ActionRestart))
	if !res.Restarted {
		t.Fatal("restart not reported")
	}
	if s.State() != StatePlaying || s.Score() != 0 {
		t.Errorf("after restart state=%v score=%d", s.State(), s.Score())
	}
	if got, want := len(s.Entities()), 1+len(s.Level().Enemies); got != want {
		t.Errorf("entities = %d, want %d", got, want)
	}
	p := s.Player()
	if p.Pos != s.Level().Spawn || p.HP != p.MaxHP || !p.Active {
		t.Errorf("player not respawned: pos=%v hp=%d", p.Pos, p.HP)
	}
	for _, e := range s.Entities() {
		if e.Base().ID <= maxID {
			t.Errorf("id %d reused after restart", e.Base().ID)
		}
	}
}

func TestRestartWhilePlaying(t *testing.T) {
	s := newTestSession(t, 1)
	for i := 0; i < 30; i++ {
		s.Tick(scriptedInput(i))
	}
	ticks := s.Ticks()

	s.Tick(pressed(core.ActionRestart, core.ActionRight))

	if s.Player().Pos != s.Level().Spawn {
		t.Error("restart tick should not run the simulation")
	}
	if s.Ticks() != ticks {
		t.Errorf("ticks advanced on restart: %d -> %d", ticks, s.Ticks())
	}
}

func TestPauseToggle(t *testing.T) {
	s := newTestSession(t, 1)
	s.Tick(core.NewInputFrame())

	s.Tick(pressed(core.ActionPause))
	if !s.Paused() {
		t.Fatal("expected paused")
	}
	frozen := s.Snapshot().Hash()
	for i := 0; i < 10; i++ {
		s.Tick(held(core.ActionRight))
	}
	if s.Snapshot().Hash() != frozen {
		t.Error("world changed while paused")
	}

	s.Tick(pressed(core.ActionPause))
	if s.Paused() {
		t.Error("expected resumed")
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	s := newTestSession(t, 7)
	last := 0
	for i := 0; i < 2000 && s.State() == StatePlaying; i++ {
		s.Tick(scriptedInput(i))
		if s.Score() < last {
			t.Fatalf("score dropped from %d to %d at tick %d", last, s.Score(), i)
		}
		last = s.Score()
	}
}

func TestCameraFollowsAndClamps(t *testing.T) {
	s := newTestSession(t, 1)
	cam := s.Camera()
	if cam.Pos.X != 0 {
		t.Errorf("camera at spawn x=%v, want clamped to 0", cam.Pos.X)
	}

	cam.Follow(core.V(1e6, 500))
	if want := s.Tiles().Width() - cam.ViewW; cam.Pos.X != want || cam.Pos.Y != 0 {
		t.Errorf("camera = %v, want (%v, 0)", cam.Pos, want)
	}

	cam.Follow(core.V(400, 0))
	if cam.Pos.X != 400-cam.ViewW/2 {
		t.Errorf("camera x = %v, want centred", cam.Pos.X)
	}
}

func TestParseLevel(t *testing.T) {
	doc := `
id: tiny
name: Tiny
spawn: {x: 16, y: 0}
enemies:
  - {kind: walker, x: 32, y: 0}
  - {kind: turret, x: 48, y: 0}
rows:
  - "...."
  - "..=."
  - "####"
`
	lvl, err := ParseLevel([]byte(doc))
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	if lvl.ID != "tiny" || lvl.Spawn != core.V(16, 0) || len(lvl.Enemies) != 2 {
		t.Errorf("unexpected level %+v", lvl)
	}
	if lvl.Tiles[1][2] != TileOneWay || lvl.Tiles[2][0] != TileSolid {
		t.Error("glyphs decoded wrong")
	}
	if got := lvl.String(); got != "....\n..=.\n####\n" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseLevelErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"no rows", "id: x\n", ErrEmptyLevel},
		{"empty row", "rows: [\"\"]\n", ErrEmptyLevel},
		{"ragged", "rows: [\"...\", \"..\"]\n", ErrRaggedLevel},
		{"bad glyph", "rows: [\"..x\"]\n", ErrUnknownTile},
		{"bad enemy", "rows: [\"...\"]\nenemies: [{kind: dragon, x: 0, y: 0}]\n", ErrUnknownEnemy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevel([]byte(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := ParseLevel([]byte("rows: {")); err == nil || errors.Is(err, ErrEmptyLevel) {
		t.Errorf("malformed yaml: err = %v", err)
	}
}

func TestDefaultLevelShape(t *testing.T) {
	lvl := DefaultLevel()
	if len(lvl.Tiles) != 11 || len(lvl.Tiles[0]) != 80 {
		t.Errorf("default level is %dx%d", len(lvl.Tiles[0]), len(lvl.Tiles))
	}
	if !strings.Contains(lvl.Name, "Jungle") {
		t.Errorf("name = %q", lvl.Name)
	}
}
