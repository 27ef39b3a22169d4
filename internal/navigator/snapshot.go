package navigator

import (
	"github.com/vovakirdan/color-quest/internal/core"
	"github.com/vovakirdan/color-quest/internal/game"
	"github.com/vovakirdan/color-quest/internal/history"
)

// Snapshot is everything the presentation layer needs to draw a frame.
type Snapshot struct {
	Screen Screen
	Popup  Popup

	PlayerName string
	Level      core.Level
	Target     core.Color
	Tiles      [game.GridSize]core.Color
	Score      int
	LastPick   int // Index of the last picked tile, -1 if none

	NameRejected bool // Show the "enter your name" hint
	ConfirmClear bool // Show the clear-history prompt
	History      []history.Record
}

// View returns the current snapshot.
func (n *Navigator) View() Snapshot {
	records := make([]history.Record, len(n.records))
	copy(records, n.records)

	return Snapshot{
		Screen:       n.screen,
		Popup:        n.popup,
		PlayerName:   n.session.PlayerName,
		Level:        n.session.Level,
		Target:       n.session.CurrentColor,
		Tiles:        n.round.Tiles,
		Score:        n.session.Score,
		LastPick:     n.lastPick,
		NameRejected: n.nameRejected,
		ConfirmClear: n.confirmClear,
		History:      records,
	}
}
