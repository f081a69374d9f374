// Package tui is the Bubble Tea frontend: the fixed-rate tick loop, key
// bindings, the variant menu, session recording and the replay browser.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick. The interval matches the seconds each
// Step feeds the simulation, so game time tracks wall time.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	interval := time.Duration(cfg.TickSeconds() * float64(time.Second))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
