// Package feedback provides the optional audio and speech cues played
// while a round is answered. Every cue is best-effort: a missing device or
// program is logged and otherwise ignored.
package feedback

import "github.com/vovakirdan/color-quest/internal/core"

// Announcer receives the cues for a picked tile.
type Announcer interface {
	// SayColor reads the picked color's name aloud.
	SayColor(c core.Color)
	// Success plays the correct-answer tone.
	Success()
	// Failure plays the wrong-answer tone.
	Failure()
	// Bravo congratulates the player after a correct answer.
	Bravo()
}

// Nop is an Announcer that does nothing.
type Nop struct{}

func (Nop) SayColor(core.Color) {}
func (Nop) Success()            {}
func (Nop) Failure()            {}
func (Nop) Bravo()              {}

// Multi fans every cue out to several announcers in order.
type Multi []Announcer

func (m Multi) SayColor(c core.Color) {
	for _, a := range m {
		a.SayColor(c)
	}
}

func (m Multi) Success() {
	for _, a := range m {
		a.Success()
	}
}

func (m Multi) Failure() {
	for _, a := range m {
		a.Failure()
	}
}

func (m Multi) Bravo() {
	for _, a := range m {
		a.Bravo()
	}
}
