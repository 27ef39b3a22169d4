package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// scheduledMsg carries a delayed callback back into the event loop.
type scheduledMsg struct {
	fn func()
}

// Scheduler turns delayed callbacks into Bubble Tea tick commands so they
// run on the program's event loop like any other message.
type Scheduler struct {
	pending []tea.Cmd
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After queues fn to run once d has elapsed.
func (s *Scheduler) After(d time.Duration, fn func()) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return scheduledMsg{fn: fn}
	}))
}

// Drain returns the queued ticks as one command and empties the queue.
func (s *Scheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
