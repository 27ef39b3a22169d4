package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/color-quest/internal/core"
	"github.com/vovakirdan/color-quest/internal/navigator"
)

// KeyMap defines the key bindings of every screen.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Confirm   key.Binding
	Back      key.Binding
	Quit      key.Binding
	History   key.Binding
	Clear     key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Yes       key.Binding
	No        key.Binding
	Pick      key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		History: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "history"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "x"),
			key.WithHelp("c", "clear history"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev level"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "no"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "pick tile"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// MapKey translates a key message to an action.
// While typing, printable keys belong to the text field and map to
// ActionNone; only control keys are actions.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, typing bool) core.Action {
	if typing {
		switch msg.Type {
		case tea.KeyCtrlC:
			return core.ActionQuit
		case tea.KeyEnter:
			return core.ActionConfirm
		case tea.KeyEsc:
			return core.ActionBack
		case tea.KeyTab:
			return core.ActionHistory
		}
		return core.ActionNone
	}

	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.History):
		return core.ActionHistory
	case key.Matches(msg, k.Clear):
		return core.ActionClear
	case key.Matches(msg, k.NextLevel):
		return core.ActionNextLevel
	case key.Matches(msg, k.PrevLevel):
		return core.ActionPrevLevel
	case key.Matches(msg, k.Yes):
		return core.ActionYes
	case key.Matches(msg, k.No):
		return core.ActionNo
	}
	return core.ActionNone
}

// MapTileKey returns the grid index for a digit key 1-9.
func (km *KeyMapper) MapTileKey(msg tea.KeyMsg) (int, bool) {
	if !key.Matches(msg, km.keys.Pick) {
		return 0, false
	}
	s := msg.String()
	return int(s[0] - '1'), true
}

// screenHelp lists the bindings shown in the help bar.
type screenHelp []key.Binding

// ShortHelp returns key bindings for the short help view.
func (h screenHelp) ShortHelp() []key.Binding {
	return h
}

// FullHelp returns key bindings for the full help view.
func (h screenHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h}
}

// HelpFor returns the bindings relevant to the snapshot's screen.
func (km *KeyMapper) HelpFor(snap navigator.Snapshot) screenHelp {
	k := km.keys
	enter := func(desc string) key.Binding {
		return key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", desc))
	}
	quit := key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))

	switch snap.Screen {
	case navigator.ScreenDescription:
		return screenHelp{enter("start"), quit}
	case navigator.ScreenHome:
		about := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "about"))
		return screenHelp{enter("play"), k.History, about, quit}
	case navigator.ScreenLevelSelect:
		return screenHelp{k.Up, k.Down, enter("start"), k.Back, k.Quit}
	case navigator.ScreenGame:
		if snap.Popup != navigator.PopupNone {
			return screenHelp{enter("continue"), k.Back, k.Quit}
		}
		return screenHelp{k.Up, k.Down, k.Left, k.Right, enter("pick"), k.Pick, k.PrevLevel, k.NextLevel, k.Back, k.Quit}
	case navigator.ScreenHistory:
		if snap.ConfirmClear {
			return screenHelp{k.Yes, k.No}
		}
		return screenHelp{k.Up, k.Down, k.Clear, k.Back, k.Quit}
	}
	return screenHelp{k.Quit}
}
