// Package tui provides the Bubble Tea integration for the game platform.
// It handles the terminal UI loop, input buffering, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent when a frame is due. It carries the frame's wall time,
// which the fixed-step clock turns into simulation ticks.
type TickMsg time.Time

// frameCmd returns a Bubble Tea command that requests the next frame at
// roughly the given rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
