package navigator

// Screen identifies which screen is visible.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenDescription
	ScreenLevelSelect
	ScreenGame
	ScreenHistory
)

// String returns a human-readable name for the screen.
func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "Home"
	case ScreenDescription:
		return "Description"
	case ScreenLevelSelect:
		return "LevelSelect"
	case ScreenGame:
		return "Game"
	case ScreenHistory:
		return "History"
	default:
		return "Unknown"
	}
}

// Popup is the result overlay shown on top of the game screen.
type Popup int

const (
	PopupNone Popup = iota
	PopupSuccess
	PopupError
)

// String returns a human-readable name for the popup.
func (p Popup) String() string {
	switch p {
	case PopupSuccess:
		return "Success"
	case PopupError:
		return "Error"
	default:
		return "None"
	}
}
