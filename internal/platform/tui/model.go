package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/runngun/internal/core"
	"github.com/vovakirdan/runngun/internal/registry"
	"github.com/vovakirdan/runngun/internal/storage"
)

// maxFrame bounds how much wall time one frame may credit to the simulation,
// so a stalled terminal does not trigger a burst of catch-up ticks.
const maxFrame = 250 * time.Millisecond

// Options configure a play session.
type Options struct {
	Runtime   core.RuntimeConfig
	FPS       int // Frame rate requested from Bubble Tea
	HoldTicks int // Input hold window, see KeyState
	Logger    *log.Logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	fps        int
	keys       *KeyState
	mapper     *KeyMapper
	clock      *core.FixedStep
	logger     *log.Logger
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the run has been saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, opts Options) *Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = cfg.TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := &Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		fps:    fps,
		keys:   NewKeyState(opts.HoldTicks),
		mapper: NewKeyMapper(),
		logger: logger,
	}
	m.clock = core.NewFixedStep(cfg.TickRate, m.step)
	m.clock.MaxFrame = maxFrame
	return m
}

// Init initializes the model and starts the game.
func (m *Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.loadHighScore()
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))

	return frameCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleFrame(time.Time(msg))

	case tea.BlurMsg:
		// Keys released while unfocused are never reported.
		m.keys.Reset()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.mapper.MapKeyToState(msg, m.keys) {
		m.quitting = true
		m.logger.Info("game quit", "score", m.gameState.Score)
		return m, tea.Quit
	}
	return m, nil
}

// handleResize resizes the screen buffer. The game adapts its view on the
// next render; the run itself continues.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleFrame runs every simulation tick due by now.
func (m *Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if n := m.clock.Advance(now); n > 1 {
		m.logger.Debug("catch-up ticks", "ticks", n, "carry", m.clock.Accumulated())
	}
	return m, frameCmd(m.fps)
}

// step runs one simulation tick with the buffered input.
func (m *Model) step() {
	result := m.game.Step(m.keys.Frame())
	m.gameState = result.State

	if result.Restarted {
		m.scoreSaved = false
		m.loadHighScore()
		m.logger.Info("game restarted")
	}

	// Save the run on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.scoreSaved = true
		m.logger.Info("game over", "score", m.gameState.Score)
		if m.gameState.Score > 0 {
			m.saveRun()
		}
	}
}

func (m *Model) levelID() string {
	if lr, ok := m.game.(registry.LevelReporter); ok {
		return lr.LevelID()
	}
	return m.game.ID()
}

func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	run := storage.Run{
		GameID:  m.game.ID(),
		LevelID: m.levelID(),
		Score:   m.gameState.Score,
		Seed:    m.config.Seed,
	}
	if tr, ok := m.game.(registry.TickReporter); ok {
		run.Ticks = tr.Ticks()
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "level", run.LevelID, "score", run.Score, "ticks", run.Ticks)
}

func (m *Model) loadHighScore() {
	hs, ok := m.game.(registry.HighScoreSetter)
	if !ok || m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.ID(), m.levelID())
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return
	}
	hs.SetHighScore(best)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".runngun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, opts Options) error {
	model := NewModel(game, store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
