package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions; the navigator only ever sees actions.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // Up arrow, k - move cursor up
	ActionDown             // Down arrow, j - move cursor down
	ActionLeft             // Left arrow, h - move cursor left
	ActionRight            // Right arrow, l - move cursor right
	ActionConfirm          // Enter, Space - submit / pick / continue
	ActionBack             // Esc, b - back to previous screen
	ActionQuit             // Ctrl+C, q - exit the program
	ActionHistory          // Tab - open history from home
	ActionClear            // c - clear history (asks for confirmation)
	ActionNextLevel        // ] - switch to next level in game
	ActionPrevLevel        // [ - switch to previous level in game
	ActionYes              // y - accept a confirmation prompt
	ActionNo               // n - reject a confirmation prompt
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionHistory:
		return "History"
	case ActionClear:
		return "Clear"
	case ActionNextLevel:
		return "NextLevel"
	case ActionPrevLevel:
		return "PrevLevel"
	case ActionYes:
		return "Yes"
	case ActionNo:
		return "No"
	default:
		return "Unknown"
	}
}
