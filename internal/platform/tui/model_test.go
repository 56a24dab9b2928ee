package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/runngun/internal/core"
	"github.com/vovakirdan/runngun/internal/storage"
)

// fakeGame ends after a fixed number of ticks and restarts on request.
type fakeGame struct {
	endAt     int
	ticks     int
	score     int
	over      bool
	highScore int
	inputs    []core.InputFrame
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.ticks, g.score, g.over = 0, 0, false }
func (g *fakeGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) LevelID() string          { return "arena" }
func (g *fakeGame) Ticks() uint64            { return uint64(g.ticks) }
func (g *fakeGame) SetHighScore(score int)   { g.highScore = score }
func (g *fakeGame) State() core.GameState    { return core.GameState{Score: g.score, GameOver: g.over} }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in)
	if in.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{})
		return core.StepResult{State: g.State(), Restarted: true}
	}
	if !g.over {
		g.ticks++
		g.score += 10
		g.over = g.ticks >= g.endAt
	}
	return core.StepResult{State: g.State()}
}

func newTestModel(t *testing.T, g *fakeGame) (*Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	rt := core.DefaultConfig()
	rt.Seed = 7
	m := NewModel(g, store, Options{Runtime: rt, Logger: log.New(io.Discard)})
	m.Init()
	return m, store
}

func TestModelRunsFixedTicksPerFrame(t *testing.T) {
	g := &fakeGame{endAt: 1000}
	m, _ := newTestModel(t, g)

	start := time.Unix(0, 0)
	m.Update(TickMsg(start))
	if g.ticks != 0 {
		t.Fatalf("first frame should only prime the clock, ran %d ticks", g.ticks)
	}

	m.Update(TickMsg(start.Add(50 * time.Millisecond)))
	if g.ticks != 3 {
		t.Errorf("ticks after 50ms = %d, want 3", g.ticks)
	}

	// A long stall is capped.
	m.Update(TickMsg(start.Add(10 * time.Second)))
	if g.ticks != 3+15 {
		t.Errorf("ticks after stall = %d, want %d", g.ticks, 3+15)
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	g := &fakeGame{endAt: 5}
	m, store := newTestModel(t, g)

	for i := 0; i < 20; i++ {
		m.step()
	}

	runs, err := store.TopRuns("fake", "arena", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(runs))
	}
	if runs[0].Score != 50 || runs[0].Ticks != 5 || runs[0].Seed != 7 {
		t.Errorf("saved run = %+v", runs[0])
	}

	m.keys.Press(core.ActionRestart)
	m.step()
	if g.highScore != 50 {
		t.Errorf("high score after restart = %d, want 50", g.highScore)
	}
	for i := 0; i < 20; i++ {
		m.step()
	}
	runs, _ = store.TopRuns("fake", "arena", 10)
	if len(runs) != 2 {
		t.Errorf("saved %d runs after second game over, want 2", len(runs))
	}
}

func TestModelKeysReachGame(t *testing.T) {
	g := &fakeGame{endAt: 1000}
	m, _ := newTestModel(t, g)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m.step()
	m.step()

	if len(g.inputs) != 2 {
		t.Fatalf("inputs = %d", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionRight) {
		t.Error("first tick should see the press")
	}
	if g.inputs[1].Has(core.ActionRight) || !g.inputs[1].IsDown(core.ActionRight) {
		t.Error("second tick should see the key held, not pressed again")
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{endAt: 1000}
	m, _ := newTestModel(t, g)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil || !m.quitting {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &fakeGame{endAt: 1000}
	m, _ := newTestModel(t, g)
	m.step()

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.ticks != 1 {
		t.Error("resize should not reset the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelBlurReleasesKeys(t *testing.T) {
	g := &fakeGame{endAt: 1000}
	m, _ := newTestModel(t, g)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m.step()
	m.Update(tea.BlurMsg{})
	m.step()

	if len(g.inputs) != 2 {
		t.Fatalf("inputs = %d", len(g.inputs))
	}
	if g.inputs[1].IsDown(core.ActionRight) {
		t.Error("key still held after the terminal lost focus")
	}
}
