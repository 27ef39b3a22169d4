// Package history keeps the ranked list of finished play sessions.
//
// The whole history is stored as one JSON array under a single key of a
// key/value Backend.
package history

import (
	"sort"
	"time"

	"github.com/vovakirdan/color-quest/internal/core"
)

// Record summarizes one finished play session. Records are immutable once saved.
type Record struct {
	PlayerName string     `json:"playerName"`
	Level      core.Level `json:"level"`
	Score      int        `json:"score"`
	Date       time.Time  `json:"date"`
}

// Eligible reports whether the record may be saved: a positive score and
// both a player name and a level.
func (r Record) Eligible() bool {
	return r.Score > 0 && r.PlayerName != "" && r.Level != ""
}

// Sort orders records by score descending, most recent first on ties.
func Sort(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Score != records[j].Score {
			return records[i].Score > records[j].Score
		}
		return records[i].Date.After(records[j].Date)
	})
}

// Best returns the top-ranked record of a sorted history.
func Best(records []Record) (Record, bool) {
	if len(records) == 0 {
		return Record{}, false
	}
	return records[0], true
}
