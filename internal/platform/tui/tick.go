// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the model that scheduled it, so ticks left over from a
// finished game never drive the next one.
type TickMsg struct {
	Loop uint64
	Time time.Time
}

var loopSeq atomic.Uint64

func nextLoopID() uint64 {
	return loopSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, Time: t}
	})
}
