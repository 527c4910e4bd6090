// Package tui provides the Bubble Tea shell for Arbolín: the screen router,
// the play loop driver, input mapping and SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step. Token identifies the play session
// that armed it; ticks from a session that has since been left or
// restarted are dropped without re-arming.
type TickMsg struct {
	Time  time.Time
	Token uint64
}

// tickCmd schedules the next tick for the session identified by token.
func tickCmd(tickRate int, token uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Token: token}
	})
}
