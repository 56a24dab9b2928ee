// Package runngun implements a side-scrolling run-and-gun platformer.
// The player crosses a tile level, shooting walkers and turrets and
// collecting the upgrades they drop.
package runngun

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/runngun/internal/config"
	"github.com/vovakirdan/runngun/internal/core"
	"github.com/vovakirdan/runngun/internal/registry"
)

// hudRows is the number of screen rows reserved above the play area.
const hudRows = 1

// Game adapts a Session to the registry.Game interface.
type Game struct {
	session   *Session
	runtime   core.RuntimeConfig
	cfg       config.RunGunConfig
	rng       *core.SimpleRNG
	highScore int
}

var (
	configPath       string
	levelPath        string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevelPath sets a level file to play instead of the built-in level.
func SetLevelPath(path string) {
	levelPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runngun"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Run & Gun"
}

// Reset loads config and level and starts a fresh session.
// Broken config or level files fall back to the built-in ones.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRunGun(configPath)
	if err != nil {
		cfg = config.DefaultRunGunConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRunGunPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	level := DefaultLevel()
	if levelPath != "" {
		if lvl, err := LoadLevelFile(levelPath); err == nil {
			level = lvl
		}
	}

	g.rng = core.NewSimpleRNG(runtime.Seed)
	viewW, viewH := g.viewport(runtime.ScreenW, runtime.ScreenH)

	s, err := NewSession(g.cfg, level, g.rng, viewW, viewH)
	if err != nil {
		g.cfg = config.DefaultRunGunConfig()
		s, err = NewSession(g.cfg, DefaultLevel(), g.rng, viewW, viewH)
		if err != nil {
			panic("runngun: built-in level rejected: " + err.Error())
		}
	}
	g.session = s
}

// viewport converts a terminal size into world units.
func (g *Game) viewport(cols, rows int) (float64, float64) {
	return float64(cols) * g.cfg.View.CellWidth, float64(max(rows-hudRows, 0)) * g.cfg.View.CellHeight
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	res := g.session.Tick(in)
	return core.StepResult{State: g.State(), Restarted: res.Restarted}
}

// Render draws the level, entities, HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	cam := g.session.Camera()
	if w, h := g.viewport(dst.Width(), dst.Height()); w != cam.ViewW || h != cam.ViewH {
		cam.Resize(w, h)
	}

	r := NewScreenRenderer(dst, cam, g.cfg.View.CellWidth, g.cfg.View.CellHeight, hudRows)
	g.session.Draw(r)
	g.drawHUD(dst)

	if g.session.Paused() {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.session.State() == StateGameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to Restart", g.session.Score()))
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	p := g.session.Player()
	hp := max(p.HP, 0)
	hearts := strings.Repeat("♥", hp) + strings.Repeat("♡", max(p.MaxHP-hp, 0))

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.session.Score()), core.ColorBrightWhite)
	dst.DrawTextColored(16, 0, hearts, core.ColorBrightRed)
	dst.DrawTextColored(24, 0, fmt.Sprintf("Spd:%d Rate:%d", p.BulletSpeedLevel, p.FireRateLevel), core.ColorBrightCyan)

	best := fmt.Sprintf("Best: %d", max(g.highScore, g.session.Score()))
	dst.DrawTextColored(dst.Width()-len(best)-1, 0, best, core.ColorYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.State() == StateGameOver,
		Paused:   g.session.Paused(),
	}
}

// SetHighScore tells the game the best stored score, shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// LevelID identifies the level being played, for score records.
func (g *Game) LevelID() string {
	return g.session.Level().ID
}

// Ticks returns the simulated ticks of the current run.
func (g *Game) Ticks() uint64 {
	return g.session.Ticks()
}

// Session exposes the running session for headless drivers.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the configuration the session runs with.
func (g *Game) Config() config.RunGunConfig {
	return g.cfg
}

// Register the game with the registry
func init() {
	registry.Register("runngun", func() registry.Game {
		return New()
	})
}
