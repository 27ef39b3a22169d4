// Package navigator is the screen state machine of the game. It owns the
// session state, decides which screen is visible and when scores are
// committed to the history.
//
// Every method is one named transition and runs to completion; callers
// invoke them from a single event loop.
package navigator

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/color-quest/internal/core"
	"github.com/vovakirdan/color-quest/internal/feedback"
	"github.com/vovakirdan/color-quest/internal/game"
	"github.com/vovakirdan/color-quest/internal/history"
)

// ErrEmptyName is returned by SubmitName for a blank player name.
var ErrEmptyName = errors.New("navigator: player name is empty")

// Scheduler runs cosmetic callbacks after a delay. Scheduled callbacks have
// no ordering guarantee relative to later events.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Options configures a Navigator. Zero values select defaults.
type Options struct {
	ShowDescription  bool
	Colors           []core.Color
	NameHintDuration time.Duration
	BravoDelay       time.Duration
	Scheduler        Scheduler
	Announcer        feedback.Announcer
	Logger           *log.Logger
	Clock            func() time.Time
}

// Navigator drives one player's visit through the screens.
type Navigator struct {
	history *history.Store
	rng     *rand.Rand
	opts    Options

	session game.Session
	round   game.Round

	screen       Screen
	popup        Popup
	lastPick     int
	nameRejected bool
	confirmClear bool
	records      []history.Record
}

// New creates a navigator in its initial state.
func New(store *history.Store, rng *rand.Rand, opts Options) *Navigator {
	if len(opts.Colors) == 0 {
		opts.Colors = core.AllColors()
	}
	if opts.NameHintDuration <= 0 {
		opts.NameHintDuration = 2 * time.Second
	}
	if opts.BravoDelay <= 0 {
		opts.BravoDelay = 500 * time.Millisecond
	}
	if opts.Scheduler == nil {
		opts.Scheduler = immediateScheduler{}
	}
	if opts.Announcer == nil {
		opts.Announcer = feedback.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	n := &Navigator{
		history:  store,
		rng:      rng,
		opts:     opts,
		lastPick: -1,
	}
	n.screen = ScreenHome
	if opts.ShowDescription {
		n.screen = ScreenDescription
	}
	return n
}

// Screen returns the visible screen.
func (n *Navigator) Screen() Screen { return n.screen }

// Popup returns the overlay shown on the game screen.
func (n *Navigator) Popup() Popup { return n.popup }

// Session returns a copy of the session state.
func (n *Navigator) Session() game.Session { return n.session }

// Round returns the current round.
func (n *Navigator) Round() game.Round { return n.round }

// ShowDescription opens the intro screen from home.
func (n *Navigator) ShowDescription() {
	if n.screen == ScreenHome {
		n.screen = ScreenDescription
	}
}

// Enter leaves the intro screen for home.
func (n *Navigator) Enter() {
	if n.screen == ScreenDescription {
		n.screen = ScreenHome
	}
}

// SubmitName validates the player name and moves to level selection.
// A blank name raises a transient hint and leaves the screen unchanged.
func (n *Navigator) SubmitName(raw string) error {
	if n.screen != ScreenHome {
		return nil
	}

	name := strings.TrimSpace(raw)
	if name == "" {
		n.nameRejected = true
		n.opts.Scheduler.After(n.opts.NameHintDuration, n.resetNameHint)
		return ErrEmptyName
	}

	n.nameRejected = false
	n.session.SetPlayer(name)
	n.screen = ScreenLevelSelect
	n.opts.Logger.Debug("player entered", "player", name)
	return nil
}

func (n *Navigator) resetNameHint() {
	n.nameRejected = false
}

// SelectLevel starts a game at level from the level selection screen.
func (n *Navigator) SelectLevel(level core.Level) {
	if n.screen != ScreenLevelSelect || !level.Valid() {
		return
	}
	n.startLevel(level)
}

// SwitchLevel changes level from inside the game. The score earned at the
// old level is saved first. Choosing the current level does nothing.
func (n *Navigator) SwitchLevel(level core.Level) {
	if n.screen != ScreenGame || !level.Valid() || level == n.session.Level {
		return
	}
	n.saveScore()
	n.startLevel(level)
}

func (n *Navigator) startLevel(level core.Level) {
	n.session.StartLevel(level)
	n.popup = PopupNone
	n.screen = ScreenGame
	n.newRound()
	n.opts.Logger.Debug("level started", "player", n.session.PlayerName, "level", level)
}

func (n *Navigator) newRound() {
	n.round = game.NewRound(n.rng, n.opts.Colors)
	n.session.SetRound(n.round)
	n.lastPick = -1
}

// Back returns to the home screen. Leaving the game saves the score.
func (n *Navigator) Back() {
	switch n.screen {
	case ScreenGame:
		n.saveScore()
		// The saved score must not be committed twice by a later exit.
		n.session.ResetScore()
		n.popup = PopupNone
		n.screen = ScreenHome
	case ScreenLevelSelect, ScreenDescription:
		n.screen = ScreenHome
	case ScreenHistory:
		n.confirmClear = false
		n.screen = ScreenHome
	}
}

// PickTile evaluates the tile at index against the round target.
// It reports false when no pick is possible (wrong screen, popup open,
// index outside the grid).
func (n *Navigator) PickTile(index int) (game.Outcome, bool) {
	if n.screen != ScreenGame || n.popup != PopupNone {
		return game.Incorrect, false
	}
	selected, ok := n.round.Tile(index)
	if !ok {
		return game.Incorrect, false
	}

	outcome := game.Evaluate(selected, n.session.CurrentColor)
	n.session.Apply(outcome)
	n.lastPick = index

	n.opts.Announcer.SayColor(selected)
	if outcome == game.Correct {
		n.opts.Announcer.Success()
		n.opts.Scheduler.After(n.opts.BravoDelay, n.opts.Announcer.Bravo)
		n.popup = PopupSuccess
	} else {
		n.opts.Announcer.Failure()
		n.popup = PopupError
	}
	return outcome, true
}

// Continue dismisses the result popup. After a correct answer a new
// round is dealt; after a wrong one the same round stays.
func (n *Navigator) Continue() {
	switch n.popup {
	case PopupSuccess:
		n.popup = PopupNone
		n.newRound()
	case PopupError:
		n.popup = PopupNone
		n.lastPick = -1
	}
}

// OpenHistory shows the freshly loaded history.
func (n *Navigator) OpenHistory() {
	if n.screen != ScreenHome {
		return
	}
	n.reloadHistory()
	n.confirmClear = false
	n.screen = ScreenHistory
}

// RequestClear asks for confirmation before clearing the history.
func (n *Navigator) RequestClear() {
	if n.screen == ScreenHistory {
		n.confirmClear = true
	}
}

// ConfirmClear answers the clear prompt. Only a confirmed prompt
// deletes the history.
func (n *Navigator) ConfirmClear(confirmed bool) {
	if n.screen != ScreenHistory || !n.confirmClear {
		return
	}
	n.confirmClear = false
	if !confirmed {
		return
	}

	if err := n.history.Clear(context.Background()); err != nil {
		n.opts.Logger.Warn("cannot clear history", "error", err)
	}
	n.reloadHistory()
}

func (n *Navigator) reloadHistory() {
	n.records = n.history.Load(context.Background())
}

// saveScore commits the current session to the history. Sessions without
// a score, name or level are skipped by the store.
func (n *Navigator) saveScore() {
	rec := n.session.Record(n.opts.Clock())

	saved, err := n.history.Save(context.Background(), rec)
	if err != nil {
		n.opts.Logger.Warn("cannot save score", "player", rec.PlayerName, "score", rec.Score, "error", err)
		return
	}
	if saved {
		n.opts.Logger.Info("score saved", "player", rec.PlayerName, "level", rec.Level, "score", rec.Score)
	}
}

// immediateScheduler runs callbacks synchronously. It is the default
// when no event loop is attached, e.g. in tests.
type immediateScheduler struct{}

func (immediateScheduler) After(_ time.Duration, fn func()) { fn() }
