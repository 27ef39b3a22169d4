// Package tui provides the Bubble Tea front end of the game, for a local
// terminal and for SSH sessions. It maps keys to navigator transitions and
// draws the navigator's snapshot.
package tui

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/color-quest/internal/core"
	"github.com/vovakirdan/color-quest/internal/game"
	"github.com/vovakirdan/color-quest/internal/history"
	"github.com/vovakirdan/color-quest/internal/navigator"
)

// Model is the Bubble Tea model for a whole visit: intro, name prompt,
// level selection, game and history.
type Model struct {
	nav       *navigator.Navigator
	scheduler *Scheduler
	keyMapper *KeyMapper
	logger    *log.Logger

	name        textinput.Model
	levelCursor int
	tileCursor  int
	history     HistoryTable
	help        help.Model

	width    int
	height   int
	quitting bool
}

// NewModel creates a model with its own navigator. The scheduler and
// logger in opts are replaced by the model's.
func NewModel(store *history.Store, cfg core.RuntimeConfig, opts navigator.Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	scheduler := NewScheduler()
	opts.Scheduler = scheduler

	name := textinput.New()
	name.Placeholder = namePlaceholder
	name.CharLimit = 24
	name.Width = 24
	name.Focus()

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		nav:        navigator.New(store, rand.New(rand.NewSource(cfg.Seed)), opts),
		scheduler:  scheduler,
		keyMapper:  NewKeyMapper(),
		logger:     opts.Logger,
		name:       name,
		tileCursor: game.GridSize / 2,
		history:    NewHistoryTable(cfg.ScreenW, cfg.ScreenH),
		help:       h,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.history.Resize(msg.Width, msg.Height)
		m.history.SetRecords(m.nav.View().History)
		return m, nil

	case scheduledMsg:
		msg.fn()
		return m, m.scheduler.Drain()
	}

	if m.nav.Screen() == navigator.ScreenHome {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey dispatches a key press to the current screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	screen := m.nav.Screen()
	action := m.keyMapper.MapKey(msg, screen == navigator.ScreenHome)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch screen {
	case navigator.ScreenDescription:
		m.updateDescription(action)
	case navigator.ScreenHome:
		cmd = m.updateHome(msg, action)
	case navigator.ScreenLevelSelect:
		m.updateLevelSelect(action)
	case navigator.ScreenGame:
		m.updateGame(msg, action)
	case navigator.ScreenHistory:
		cmd = m.updateHistory(msg, action)
	}

	return m, tea.Batch(cmd, m.scheduler.Drain())
}

func (m *Model) updateDescription(action core.Action) {
	switch action {
	case core.ActionConfirm, core.ActionBack:
		m.nav.Enter()
	}
}

func (m *Model) updateHome(msg tea.KeyMsg, action core.Action) tea.Cmd {
	switch action {
	case core.ActionConfirm:
		err := m.nav.SubmitName(m.name.Value())
		if errors.Is(err, navigator.ErrEmptyName) {
			m.name.SetValue("")
			return nil
		}
		m.levelCursor = 0
		return nil
	case core.ActionHistory:
		m.nav.OpenHistory()
		m.history.SetRecords(m.nav.View().History)
		return nil
	case core.ActionBack:
		m.nav.ShowDescription()
		return nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return cmd
}

func (m *Model) updateLevelSelect(action core.Action) {
	levels := core.AllLevels()
	switch action {
	case core.ActionUp, core.ActionLeft:
		m.levelCursor = core.Wrap(m.levelCursor-1, len(levels))
	case core.ActionDown, core.ActionRight:
		m.levelCursor = core.Wrap(m.levelCursor+1, len(levels))
	case core.ActionConfirm:
		m.nav.SelectLevel(levels[m.levelCursor])
		m.tileCursor = game.GridSize / 2
	case core.ActionBack:
		m.nav.Back()
	}
}

func (m *Model) updateGame(msg tea.KeyMsg, action core.Action) {
	if action == core.ActionBack {
		m.nav.Back()
		return
	}

	if m.nav.Popup() != navigator.PopupNone {
		if action == core.ActionConfirm {
			m.nav.Continue()
		}
		return
	}

	if index, ok := m.keyMapper.MapTileKey(msg); ok {
		m.tileCursor = index
		m.pick(index)
		return
	}

	row, col := m.tileCursor/game.GridCols, m.tileCursor%game.GridCols
	switch action {
	case core.ActionUp:
		row = core.Clamp(row-1, 0, game.GridRows-1)
	case core.ActionDown:
		row = core.Clamp(row+1, 0, game.GridRows-1)
	case core.ActionLeft:
		col = core.Clamp(col-1, 0, game.GridCols-1)
	case core.ActionRight:
		col = core.Clamp(col+1, 0, game.GridCols-1)
	case core.ActionConfirm:
		m.pick(m.tileCursor)
		return
	case core.ActionNextLevel:
		m.nav.SwitchLevel(m.nav.Session().Level.Next())
		return
	case core.ActionPrevLevel:
		m.nav.SwitchLevel(m.nav.Session().Level.Prev())
		return
	}
	m.tileCursor = row*game.GridCols + col
}

func (m *Model) pick(index int) {
	outcome, ok := m.nav.PickTile(index)
	if !ok {
		return
	}
	m.logger.Debug("tile picked", "index", index, "outcome", outcome, "score", m.nav.Session().Score)
}

func (m *Model) updateHistory(msg tea.KeyMsg, action core.Action) tea.Cmd {
	if m.nav.View().ConfirmClear {
		switch action {
		case core.ActionYes, core.ActionConfirm:
			m.nav.ConfirmClear(true)
			m.history.SetRecords(m.nav.View().History)
		case core.ActionNo, core.ActionBack:
			m.nav.ConfirmClear(false)
		}
		return nil
	}

	switch action {
	case core.ActionClear:
		m.nav.RequestClear()
	case core.ActionBack:
		m.nav.Back()
	case core.ActionUp, core.ActionDown:
		return m.history.Update(msg)
	}
	return nil
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.nav.View()

	var body string
	switch snap.Screen {
	case navigator.ScreenDescription:
		body = m.renderDescription()
	case navigator.ScreenHome:
		body = m.renderHome(snap)
	case navigator.ScreenLevelSelect:
		body = m.renderLevelSelect(snap)
	case navigator.ScreenGame:
		body = m.renderGame(snap)
	case navigator.ScreenHistory:
		body = m.renderHistory(snap)
	}

	return body + "\n" + helpStyle.Render(centerText(m.help.View(m.keyMapper.HelpFor(snap)), m.width))
}

// Snapshot returns the navigator's current snapshot.
func (m Model) Snapshot() navigator.Snapshot {
	return m.nav.View()
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run runs the game in the local terminal until the player quits.
// A non-nil out replaces stdout; cues that write to the terminal should
// share it.
func Run(store *history.Store, cfg core.RuntimeConfig, opts navigator.Options, out *LockedOutput) error {
	model := NewModel(store, cfg, opts)

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if out != nil {
		programOpts = append(programOpts, tea.WithOutput(out))
	}
	p := tea.NewProgram(model, programOpts...)

	_, err := p.Run()
	return err
}
