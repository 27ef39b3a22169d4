package game

import "github.com/vovakirdan/color-quest/internal/core"

// Outcome is the result of comparing a picked tile with the target.
type Outcome int

const (
	Incorrect Outcome = iota
	Correct
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	if o == Correct {
		return "Correct"
	}
	return "Incorrect"
}

// Delta is the score change the caller applies for this outcome.
func (o Outcome) Delta() int {
	if o == Correct {
		return 1
	}
	return 0
}

// Evaluate compares the selected tile color with the round target.
func Evaluate(selected, target core.Color) Outcome {
	if selected == target {
		return Correct
	}
	return Incorrect
}
