package navigator

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/color-quest/internal/core"
	"github.com/vovakirdan/color-quest/internal/game"
	"github.com/vovakirdan/color-quest/internal/history"
)

// countingBackend records how many times the history was written.
type countingBackend struct {
	*history.MemoryBackend
	sets    int
	deletes int
}

func newCountingBackend() *countingBackend {
	return &countingBackend{MemoryBackend: history.NewMemoryBackend()}
}

func (c *countingBackend) Set(ctx context.Context, key, value string) error {
	c.sets++
	return c.MemoryBackend.Set(ctx, key, value)
}

func (c *countingBackend) Delete(ctx context.Context, key string) error {
	c.deletes++
	return c.MemoryBackend.Delete(ctx, key)
}

// manualScheduler holds callbacks until the test runs them.
type manualScheduler struct {
	pending []scheduled
}

type scheduled struct {
	delay time.Duration
	fn    func()
}

func (m *manualScheduler) After(d time.Duration, fn func()) {
	m.pending = append(m.pending, scheduled{delay: d, fn: fn})
}

func (m *manualScheduler) runAll() {
	pending := m.pending
	m.pending = nil
	for _, s := range pending {
		s.fn()
	}
}

// recordingAnnouncer records the cues in order.
type recordingAnnouncer struct {
	cues []string
}

func (r *recordingAnnouncer) SayColor(c core.Color) { r.cues = append(r.cues, "say:"+c.Name()) }
func (r *recordingAnnouncer) Success()              { r.cues = append(r.cues, "success") }
func (r *recordingAnnouncer) Failure()              { r.cues = append(r.cues, "failure") }
func (r *recordingAnnouncer) Bravo()                { r.cues = append(r.cues, "bravo") }

type fixture struct {
	nav       *Navigator
	backend   *countingBackend
	store     *history.Store
	sched     *manualScheduler
	announcer *recordingAnnouncer
	now       time.Time
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	f := &fixture{
		backend:   newCountingBackend(),
		sched:     &manualScheduler{},
		announcer: &recordingAnnouncer{},
		now:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.store = history.New(f.backend)

	opts.Scheduler = f.sched
	opts.Announcer = f.announcer
	opts.Clock = func() time.Time {
		f.now = f.now.Add(time.Second)
		return f.now
	}
	f.nav = New(f.store, rand.New(rand.NewSource(1)), opts)
	return f
}

// targetIndex finds a tile carrying the target color.
func targetIndex(t *testing.T, n *Navigator) int {
	t.Helper()
	r := n.Round()
	for i, c := range r.Tiles {
		if c == r.Target {
			return i
		}
	}
	t.Fatal("round does not contain its target")
	return -1
}

// wrongIndex finds a tile not carrying the target color.
func wrongIndex(t *testing.T, n *Navigator) int {
	t.Helper()
	r := n.Round()
	for i, c := range r.Tiles {
		if c != r.Target {
			return i
		}
	}
	t.Fatal("round has no wrong tile")
	return -1
}

// scorePoints answers correctly count times.
func scorePoints(t *testing.T, n *Navigator, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		if outcome, ok := n.PickTile(targetIndex(t, n)); !ok || outcome != game.Correct {
			t.Fatalf("pick %d: outcome=%v ok=%v", i, outcome, ok)
		}
		n.Continue()
	}
}

func (f *fixture) enterGame(t *testing.T, name string, level core.Level) {
	t.Helper()
	if err := f.nav.SubmitName(name); err != nil {
		t.Fatalf("SubmitName(%q) failed: %v", name, err)
	}
	f.nav.SelectLevel(level)
	if f.nav.Screen() != ScreenGame {
		t.Fatalf("screen = %v, expected Game", f.nav.Screen())
	}
}

func TestInitialScreen(t *testing.T) {
	f := newFixture(t, Options{})
	if f.nav.Screen() != ScreenHome {
		t.Errorf("initial screen = %v, expected Home", f.nav.Screen())
	}

	f = newFixture(t, Options{ShowDescription: true})
	if f.nav.Screen() != ScreenDescription {
		t.Errorf("initial screen = %v, expected Description", f.nav.Screen())
	}
	f.nav.Enter()
	if f.nav.Screen() != ScreenHome {
		t.Errorf("after Enter() screen = %v, expected Home", f.nav.Screen())
	}
	f.nav.ShowDescription()
	if f.nav.Screen() != ScreenDescription {
		t.Errorf("after ShowDescription() screen = %v, expected Description", f.nav.Screen())
	}
	f.nav.Back()
	if f.nav.Screen() != ScreenHome {
		t.Errorf("Back() from Description should go Home, got %v", f.nav.Screen())
	}
}

func TestSubmitNameRejectsBlank(t *testing.T) {
	f := newFixture(t, Options{NameHintDuration: 2 * time.Second})

	for _, raw := range []string{"", "   ", "\t\n"} {
		if err := f.nav.SubmitName(raw); !errors.Is(err, ErrEmptyName) {
			t.Errorf("SubmitName(%q) error = %v, expected ErrEmptyName", raw, err)
		}
	}

	if f.nav.Screen() != ScreenHome {
		t.Errorf("screen = %v, expected Home after blank name", f.nav.Screen())
	}
	if !f.nav.View().NameRejected {
		t.Error("blank name should raise the hint")
	}
	if len(f.sched.pending) == 0 || f.sched.pending[0].delay != 2*time.Second {
		t.Fatalf("hint reset not scheduled: %+v", f.sched.pending)
	}

	f.sched.runAll()
	if f.nav.View().NameRejected {
		t.Error("hint should clear after the scheduled reset")
	}
}

func TestSubmitNameTrims(t *testing.T) {
	f := newFixture(t, Options{})

	if err := f.nav.SubmitName("  Alice "); err != nil {
		t.Fatalf("SubmitName() failed: %v", err)
	}
	if f.nav.Screen() != ScreenLevelSelect {
		t.Errorf("screen = %v, expected LevelSelect", f.nav.Screen())
	}
	if f.nav.Session().PlayerName != "Alice" {
		t.Errorf("PlayerName = %q, expected Alice", f.nav.Session().PlayerName)
	}
}

func TestLateHintResetIsHarmless(t *testing.T) {
	f := newFixture(t, Options{})

	f.nav.SubmitName("")
	f.nav.SubmitName("Alice")
	f.sched.runAll()

	if f.nav.Screen() != ScreenLevelSelect {
		t.Errorf("late cosmetic callback changed the screen to %v", f.nav.Screen())
	}
}

func TestSelectLevelStartsGame(t *testing.T) {
	f := newFixture(t, Options{})
	f.enterGame(t, "Alice", core.LevelEasy)

	s := f.nav.Session()
	if s.Level != core.LevelEasy || s.Score != 0 {
		t.Errorf("session = %+v, expected easy with score 0", s)
	}
	if !s.CurrentColor.Valid() {
		t.Errorf("CurrentColor = %v, expected a palette color", s.CurrentColor)
	}
	if !f.nav.Round().Contains(s.CurrentColor) {
		t.Error("first round should contain the current color")
	}

	// Invalid levels are ignored
	g := newFixture(t, Options{})
	g.nav.SubmitName("Bob")
	g.nav.SelectLevel("insane")
	if g.nav.Screen() != ScreenLevelSelect {
		t.Errorf("invalid level changed screen to %v", g.nav.Screen())
	}
}

func TestCorrectPickFlow(t *testing.T) {
	f := newFixture(t, Options{BravoDelay: 500 * time.Millisecond})
	f.enterGame(t, "Alice", core.LevelMedium)

	target := f.nav.Session().CurrentColor
	idx := targetIndex(t, f.nav)
	outcome, ok := f.nav.PickTile(idx)
	if !ok || outcome != game.Correct {
		t.Fatalf("PickTile() = %v, %v", outcome, ok)
	}

	snap := f.nav.View()
	if snap.Popup != PopupSuccess {
		t.Errorf("popup = %v, expected Success", snap.Popup)
	}
	if snap.Score != 1 {
		t.Errorf("score = %d, expected 1", snap.Score)
	}
	if snap.LastPick != idx {
		t.Errorf("LastPick = %d, expected %d", snap.LastPick, idx)
	}

	// Color spoken and tone played immediately; bravo is delayed
	if len(f.announcer.cues) != 2 || f.announcer.cues[0] != "say:"+target.Name() || f.announcer.cues[1] != "success" {
		t.Errorf("cues = %v", f.announcer.cues)
	}
	f.sched.runAll()
	if last := f.announcer.cues[len(f.announcer.cues)-1]; last != "bravo" {
		t.Errorf("last cue = %q, expected bravo", last)
	}

	// No picks while the popup is open
	if _, ok := f.nav.PickTile(idx); ok {
		t.Error("PickTile() should be ignored while a popup is shown")
	}

	f.nav.Continue()
	if f.nav.Popup() != PopupNone {
		t.Errorf("popup = %v after Continue(), expected None", f.nav.Popup())
	}
	if f.nav.View().LastPick != -1 {
		t.Error("new round should clear the last pick")
	}
	if f.nav.Session().Score != 1 {
		t.Error("Continue() must not change the score")
	}
}

func TestIncorrectPickFlow(t *testing.T) {
	f := newFixture(t, Options{})
	f.enterGame(t, "Alice", core.LevelHard)

	before := f.nav.Round()
	outcome, ok := f.nav.PickTile(wrongIndex(t, f.nav))
	if !ok || outcome != game.Incorrect {
		t.Fatalf("PickTile() = %v, %v", outcome, ok)
	}
	if f.nav.Popup() != PopupError {
		t.Errorf("popup = %v, expected Error", f.nav.Popup())
	}
	if f.nav.Session().Score != 0 {
		t.Errorf("score = %d, expected 0", f.nav.Session().Score)
	}
	if f.announcer.cues[len(f.announcer.cues)-1] != "failure" {
		t.Errorf("cues = %v", f.announcer.cues)
	}
	if len(f.sched.pending) != 0 {
		t.Error("no bravo should be scheduled after a wrong answer")
	}

	f.nav.Continue()
	if f.nav.Popup() != PopupNone {
		t.Errorf("popup = %v, expected None", f.nav.Popup())
	}
	if f.nav.Round() != before {
		t.Error("dismissing an error must keep the same round")
	}
}

func TestPickTileOutOfRange(t *testing.T) {
	f := newFixture(t, Options{})
	f.enterGame(t, "Alice", core.LevelEasy)

	for _, idx := range []int{-1, game.GridSize, 42} {
		if _, ok := f.nav.PickTile(idx); ok {
			t.Errorf("PickTile(%d) should be rejected", idx)
		}
	}

	g := newFixture(t, Options{})
	if _, ok := g.nav.PickTile(0); ok {
		t.Error("PickTile() outside the game screen should be rejected")
	}
}

func TestBackFromGameSavesScore(t *testing.T) {
	f := newFixture(t, Options{})

	// A pre-existing lower score
	f.store.Save(context.Background(), history.Record{
		PlayerName: "Zoe", Level: core.LevelEasy, Score: 1,
		Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	f.enterGame(t, "Alice", core.LevelMedium)
	scorePoints(t, f.nav, 3)
	f.nav.Back()

	if f.nav.Screen() != ScreenHome {
		t.Errorf("screen = %v, expected Home", f.nav.Screen())
	}

	records := f.store.Load(context.Background())
	if len(records) != 2 {
		t.Fatalf("history has %d records, expected 2", len(records))
	}
	first := records[0]
	if first.PlayerName != "Alice" || first.Level != core.LevelMedium || first.Score != 3 {
		t.Errorf("first record = %+v, expected Alice/medium/3", first)
	}
	if records[1].PlayerName != "Zoe" {
		t.Errorf("second record = %+v, expected Zoe", records[1])
	}
}

func TestBackWithZeroScoreSavesNothing(t *testing.T) {
	f := newFixture(t, Options{})
	f.enterGame(t, "Alice", core.LevelEasy)
	f.nav.Back()

	if f.backend.sets != 0 {
		t.Errorf("history written %d times, expected 0", f.backend.sets)
	}
}

func TestBackDoesNotSaveTwice(t *testing.T) {
	f := newFixture(t, Options{})
	f.enterGame(t, "Alice", core.LevelEasy)
	scorePoints(t, f.nav, 2)

	f.nav.Back()
	f.nav.SubmitName("Alice")
	f.nav.Back() // from level select

	if f.backend.sets != 1 {
		t.Errorf("history written %d times, expected 1", f.backend.sets)
	}
}

func TestSwitchLevelSavesOnce(t *testing.T) {
	f := newFixture(t, Options{})
	f.enterGame(t, "Alice", core.LevelEasy)
	scorePoints(t, f.nav, 4)

	f.nav.SwitchLevel(core.LevelHard)

	if f.backend.sets != 1 {
		t.Errorf("history written %d times, expected exactly 1", f.backend.sets)
	}
	s := f.nav.Session()
	if s.Level != core.LevelHard || s.Score != 0 {
		t.Errorf("session = %+v, expected hard with score 0", s)
	}
	if f.nav.Screen() != ScreenGame {
		t.Errorf("screen = %v, expected Game", f.nav.Screen())
	}

	records := f.store.Load(context.Background())
	if len(records) != 1 || records[0].Level != core.LevelEasy || records[0].Score != 4 {
		t.Errorf("records = %+v, expected one easy/4", records)
	}
}

func TestSwitchLevelSameLevelIsNoop(t *testing.T) {
	f := newFixture(t, Options{})
	f.enterGame(t, "Alice", core.LevelMedium)
	scorePoints(t, f.nav, 2)
	round := f.nav.Round()

	f.nav.SwitchLevel(core.LevelMedium)

	if f.backend.sets != 0 {
		t.Errorf("history written %d times, expected 0", f.backend.sets)
	}
	if f.nav.Session().Score != 2 {
		t.Errorf("score = %d, expected 2", f.nav.Session().Score)
	}
	if f.nav.Round() != round {
		t.Error("same-level switch should keep the round")
	}
}

func TestHistoryScreen(t *testing.T) {
	f := newFixture(t, Options{})
	f.enterGame(t, "Alice", core.LevelEasy)
	scorePoints(t, f.nav, 1)
	f.nav.Back()

	f.nav.OpenHistory()
	if f.nav.Screen() != ScreenHistory {
		t.Fatalf("screen = %v, expected History", f.nav.Screen())
	}
	if len(f.nav.View().History) != 1 {
		t.Errorf("history rows = %d, expected 1", len(f.nav.View().History))
	}

	// Declined prompt keeps everything
	f.nav.RequestClear()
	if !f.nav.View().ConfirmClear {
		t.Error("RequestClear() should open the prompt")
	}
	f.nav.ConfirmClear(false)
	if f.backend.deletes != 0 || len(f.nav.View().History) != 1 {
		t.Error("declined prompt must not clear the history")
	}

	// Confirming without a prompt does nothing
	f.nav.ConfirmClear(true)
	if f.backend.deletes != 0 {
		t.Error("ConfirmClear() without a prompt must not clear")
	}

	f.nav.RequestClear()
	f.nav.ConfirmClear(true)
	if f.backend.deletes != 1 {
		t.Errorf("deletes = %d, expected 1", f.backend.deletes)
	}
	if len(f.nav.View().History) != 0 {
		t.Error("history should be empty after clearing")
	}
	if len(f.store.Load(context.Background())) != 0 {
		t.Error("stored history should be empty after clearing")
	}

	f.nav.Back()
	if f.nav.Screen() != ScreenHome {
		t.Errorf("screen = %v, expected Home", f.nav.Screen())
	}
}

func TestOpenHistoryReloads(t *testing.T) {
	f := newFixture(t, Options{})
	f.nav.OpenHistory()
	if len(f.nav.View().History) != 0 {
		t.Fatal("expected empty history")
	}
	f.nav.Back()

	// Written behind the navigator's back
	f.store.Save(context.Background(), history.Record{PlayerName: "Bob", Level: core.LevelHard, Score: 9})

	f.nav.OpenHistory()
	if len(f.nav.View().History) != 1 {
		t.Error("entering History should load fresh records")
	}
}

func TestTransitionsIgnoredOnWrongScreen(t *testing.T) {
	f := newFixture(t, Options{})

	f.nav.SelectLevel(core.LevelEasy)
	f.nav.SwitchLevel(core.LevelHard)
	f.nav.Continue()
	f.nav.RequestClear()
	if f.nav.Screen() != ScreenHome || f.nav.View().ConfirmClear {
		t.Errorf("screen = %v, expected untouched Home", f.nav.Screen())
	}

	f.enterGame(t, "Alice", core.LevelEasy)
	f.nav.OpenHistory()
	if f.nav.Screen() != ScreenGame {
		t.Error("history is only reachable from Home")
	}
	if err := f.nav.SubmitName(""); err != nil {
		t.Error("SubmitName() outside Home should be ignored")
	}
}
