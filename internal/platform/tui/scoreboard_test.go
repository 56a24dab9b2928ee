package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/runngun/internal/storage"
)

func TestScoreboardCyclesLevels(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Run{
		{GameID: "runngun", LevelID: "level1", Score: 300, Ticks: 3600},
		{GameID: "runngun", LevelID: "level1", Score: 100, Ticks: 600},
		{GameID: "runngun", LevelID: "caves", Score: 900, Ticks: 60},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, "runngun", "level1", 100, 30)
	if len(m.levels) != 2 || m.currentLevel() != "level1" {
		t.Fatalf("levels = %v", m.levels)
	}
	if len(m.runs) != 2 || m.runs[0].Score != 300 {
		t.Fatalf("level1 runs = %+v", m.runs)
	}
	view := m.View()
	if !strings.Contains(view, "level1") || !strings.Contains(view, "1:00") {
		t.Errorf("view missing level or time:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.currentLevel() != "caves" || len(m.runs) != 1 {
		t.Errorf("after tab: level=%s runs=%d", m.currentLevel(), len(m.runs))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.currentLevel() != "level1" {
		t.Errorf("after shift+tab: level=%s", m.currentLevel())
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "runngun", "level1", 60, 20)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty scoreboard message missing")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).quitting || cmd == nil {
		t.Error("esc should close the scoreboard")
	}
}

func TestFormatTicks(t *testing.T) {
	tests := []struct {
		ticks uint64
		want  string
	}{
		{0, "0:00"},
		{59, "0:00"},
		{60, "0:01"},
		{3600, "1:00"},
		{3600*10 + 61*60, "11:01"},
	}
	for _, tt := range tests {
		if got := formatTicks(tt.ticks); got != tt.want {
			t.Errorf("formatTicks(%d) = %q, want %q", tt.ticks, got, tt.want)
		}
	}
}
