package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned by ParseLevel for unrecognized names.
var ErrUnknownLevel = errors.New("core: unknown level")

// Level is a named difficulty tier. It only labels saved records;
// round generation is the same for every level.
// The empty Level means no level has been chosen yet.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// levelAliases accepts the labels older history entries were written with.
var levelAliases = map[string]Level{
	"facile":    LevelEasy,
	"moyen":     LevelMedium,
	"difficile": LevelHard,
	"normal":    LevelMedium,
}

// AllLevels returns the levels in selection order.
func AllLevels() []Level {
	return []Level{LevelEasy, LevelMedium, LevelHard}
}

// Valid reports whether l is one of the three known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelEasy, LevelMedium, LevelHard:
		return true
	}
	return false
}

// Title returns the capitalized display label.
func (l Level) Title() string {
	switch l {
	case LevelEasy:
		return "Easy"
	case LevelMedium:
		return "Medium"
	case LevelHard:
		return "Hard"
	case "":
		return ""
	}
	// Labels written by older versions show under their current name.
	if known, err := ParseLevel(string(l)); err == nil {
		return known.Title()
	}
	return string(l)
}

// Index returns the position of l in AllLevels, or -1.
func (l Level) Index() int {
	for i, lv := range AllLevels() {
		if lv == l {
			return i
		}
	}
	return -1
}

// Next returns the level after l, wrapping around.
func (l Level) Next() Level {
	levels := AllLevels()
	return levels[(l.Index()+1)%len(levels)]
}

// Prev returns the level before l, wrapping around.
func (l Level) Prev() Level {
	levels := AllLevels()
	i := l.Index()
	if i <= 0 {
		return levels[len(levels)-1]
	}
	return levels[i-1]
}

// ParseLevel resolves a level name, case-insensitively.
func ParseLevel(name string) (Level, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if l := Level(key); l.Valid() {
		return l, nil
	}
	if l, ok := levelAliases[key]; ok {
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}
