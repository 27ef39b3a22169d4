package game

import (
	"strings"
	"time"

	"github.com/vovakirdan/color-quest/internal/core"
	"github.com/vovakirdan/color-quest/internal/history"
)

// Session is the mutable state of one player's visit.
// It lives as long as the program (or SSH session) and is only touched
// from the event loop.
type Session struct {
	PlayerName   string
	Level        core.Level
	CurrentColor core.Color
	Score        int
}

// SetPlayer stores the trimmed player name.
func (s *Session) SetPlayer(name string) {
	s.PlayerName = strings.TrimSpace(name)
}

// StartLevel records the chosen level and resets the score.
func (s *Session) StartLevel(level core.Level) {
	s.Level = level
	s.Score = 0
}

// SetRound makes the round's target the current color.
func (s *Session) SetRound(r Round) {
	s.CurrentColor = r.Target
}

// Apply adds the outcome's score delta.
func (s *Session) Apply(o Outcome) {
	s.Score += o.Delta()
}

// ResetScore zeroes the score without touching name or level.
func (s *Session) ResetScore() {
	s.Score = 0
}

// Record snapshots the session as a history record dated now.
func (s *Session) Record(now time.Time) history.Record {
	return history.Record{
		PlayerName: s.PlayerName,
		Level:      s.Level,
		Score:      s.Score,
		Date:       now,
	}
}
