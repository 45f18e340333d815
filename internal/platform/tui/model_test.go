package tui

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/math-blaster/internal/arith"
	"github.com/vovakirdan/math-blaster/internal/config"
	"github.com/vovakirdan/math-blaster/internal/core"
	"github.com/vovakirdan/math-blaster/internal/game"
)

type fakeNames struct{ name string }

func (f *fakeNames) PlayerName() (string, error) { return f.name, nil }

func (f *fakeNames) SetPlayerName(name string) error {
	f.name = name
	return nil
}

// fixedProblem always spawns "3 + 4 =" in the middle of the field.
func fixedProblem(_ *rand.Rand, _ arith.Params, id int) (arith.Problem, error) {
	return arith.Problem{ID: id, Text: "3 + 4 =", Answer: 7, X: 50, Y: 300}, nil
}

func newTestModel(t *testing.T, name string) (Model, *game.Session, *Toasts) {
	t.Helper()
	toasts := NewToasts()
	s := game.NewSession(game.Options{
		Config:   config.DefaultConfig(),
		Notifier: toasts,
		Names:    &fakeNames{name: name},
		Seed:     1,
		Generate: fixedProblem,
	})
	m := NewModel(s, toasts, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	return m, s, toasts
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func hasToast(toasts *Toasts, title string) bool {
	for _, n := range toasts.Active() {
		if n.Title == title {
			return true
		}
	}
	return false
}

func TestModelNaming(t *testing.T) {
	m, s, toasts := newTestModel(t, "")

	if m.current() != ScreenNaming || !m.input.Focused() {
		t.Fatal("model without a name should start on the focused name field")
	}

	// Blank name is refused
	m, _ = update(t, m, enter)
	if s.PlayerName() != "" || !hasToast(toasts, "Please enter a name") {
		t.Error("blank name should be refused with a warning")
	}

	m, _ = update(t, m, runes("Ada"))
	m, _ = update(t, m, enter)

	if s.PlayerName() != "Ada" {
		t.Fatalf("PlayerName() = %q, expected Ada", s.PlayerName())
	}
	if m.current() != ScreenSetup {
		t.Errorf("screen = %d, expected setup", m.current())
	}
	if m.input.Focused() {
		t.Error("name field should be blurred after the name is set")
	}
}

func TestModelEditName(t *testing.T) {
	m, s, _ := newTestModel(t, "Ada")

	m, _ = update(t, m, runes("n"))
	if s.PlayerName() != "" || m.current() != ScreenNaming {
		t.Fatal("n should reopen the name editor")
	}
	if m.input.Value() != "Ada" {
		t.Errorf("editor prefilled with %q, expected Ada", m.input.Value())
	}
}

func TestModelSettingsEditor(t *testing.T) {
	m, s, _ := newTestModel(t, "Ada")

	m, _ = update(t, m, runes("3"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp}) // Clamped at the maximum

	got := s.Settings()
	if !got.HasOperation(arith.OpMul) || !got.HasOperation(arith.OpAdd) {
		t.Errorf("operations = %v, expected + and *", got.Operations)
	}
	if got.Digits != config.MaxDigits {
		t.Errorf("digits = %d, expected %d", got.Digits, config.MaxDigits)
	}

	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if d := s.Settings().Digits; d != config.MaxDigits-1 {
		t.Errorf("digits = %d after down, expected %d", d, config.MaxDigits-1)
	}
}

func TestModelStartRefusedWithoutOperations(t *testing.T) {
	m, s, toasts := newTestModel(t, "Ada")

	m, _ = update(t, m, runes("1")) // Disable the only operation
	m, _ = update(t, m, enter)

	if s.Status() != game.StatusIdle {
		t.Errorf("status = %s, expected idle", s.Status())
	}
	if !hasToast(toasts, "Please select at least one operation!") {
		t.Error("expected a warning toast")
	}
	if m.current() != ScreenSetup {
		t.Errorf("screen = %d, expected setup", m.current())
	}
}

func TestModelPlayRound(t *testing.T) {
	m, s, _ := newTestModel(t, "Ada")

	m, cmd := update(t, m, enter)
	if s.Status() != game.StatusPlaying {
		t.Fatalf("status = %s, expected playing", s.Status())
	}
	if cmd == nil || m.handles.Loop == 0 || m.handles.Spawn == 0 {
		t.Fatal("start should schedule both tasks")
	}
	if !m.input.Focused() {
		t.Error("answer field should be focused while playing")
	}

	m, cmd = update(t, m, SpawnTickMsg{Token: m.handles.Spawn})
	if cmd == nil {
		t.Error("spawn tick should reschedule itself")
	}
	if n := len(s.State().Problems); n != 1 {
		t.Fatalf("expected 1 problem, got %d", n)
	}
	if view := m.View(); !strings.Contains(view, "3 + 4 = ?") {
		t.Error("playfield should show the problem")
	}

	// Wrong answer keeps the field
	m, _ = update(t, m, runes("9"))
	m, _ = update(t, m, enter)
	if m.input.Value() != "9" {
		t.Errorf("input = %q after a wrong answer, expected it kept", m.input.Value())
	}

	m.input.SetValue("7")
	m, _ = update(t, m, enter)

	st := s.State()
	if st.Score != 1 || len(st.Problems) != 0 {
		t.Errorf("score %d, %d problems; expected 1 and 0", st.Score, len(st.Problems))
	}
	if m.input.Value() != "" {
		t.Errorf("input = %q after a correct answer, expected empty", m.input.Value())
	}
}

func TestModelLettersGoToAnswerField(t *testing.T) {
	m, s, _ := newTestModel(t, "Ada")
	m, _ = update(t, m, enter)

	m, _ = update(t, m, runes("q"))
	if m.quitting {
		t.Fatal("q while playing must not quit")
	}
	if m.input.Value() != "q" {
		t.Errorf("input = %q, expected q", m.input.Value())
	}
	if s.Status() != game.StatusPlaying {
		t.Errorf("status = %s, expected playing", s.Status())
	}
}

func TestModelEndAndPlayAgain(t *testing.T) {
	m, s, toasts := newTestModel(t, "Ada")
	m, _ = update(t, m, enter)
	first := m.handles

	m, _ = update(t, m, SpawnTickMsg{Token: first.Spawn})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if s.Status() != game.StatusGameOver {
		t.Fatalf("status = %s, expected gameOver", s.Status())
	}
	if !hasToast(toasts, "Game Ended") {
		t.Error("expected Game Ended toast")
	}

	// Ticks from the ended game change nothing
	before := s.State()
	m, _ = update(t, m, LoopTickMsg{Token: first.Loop})
	m, _ = update(t, m, SpawnTickMsg{Token: first.Spawn})
	after := s.State()
	if len(after.Problems) != len(before.Problems) || after.Problems[0].Y != before.Problems[0].Y {
		t.Error("stale ticks modified the game")
	}
	if view := m.View(); !strings.Contains(view, "GAME OVER") {
		t.Error("game over screen not shown")
	}

	m, _ = update(t, m, runes("r"))
	if s.Status() != game.StatusIdle || m.current() != ScreenSetup {
		t.Errorf("status = %s, expected idle after play again", s.Status())
	}

	m, _ = update(t, m, enter)
	if st := s.State(); st.Status != game.StatusPlaying || len(st.Problems) != 0 || st.Score != 0 {
		t.Errorf("second game not reset: %+v", st)
	}
	if m.handles == first {
		t.Error("second game should have new task tokens")
	}
}

func TestModelQuitClosesSession(t *testing.T) {
	m, s, _ := newTestModel(t, "Ada")
	m, _ = update(t, m, enter)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !m.quitting {
		t.Fatal("ctrl+c should quit")
	}
	if s.Status() != game.StatusGameOver {
		t.Errorf("status = %s, expected gameOver after quit", s.Status())
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}

	// Loop ticks already in flight are dropped
	_, cmd = update(t, m, LoopTickMsg{Token: m.handles.Loop})
	if cmd != nil {
		t.Error("a tick after quit should not reschedule")
	}
}

func TestModelResize(t *testing.T) {
	m, _, _ := newTestModel(t, "Ada")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 || m.screen.Height() != 40-chromeRows {
		t.Errorf("screen = %dx%d, expected 120x%d", m.screen.Width(), m.screen.Height(), 40-chromeRows)
	}
}

func TestDrawPlayfield(t *testing.T) {
	s := core.NewScreen(40, 12)
	st := game.Snapshot{
		Floor: 600,
		Problems: []arith.Problem{
			{ID: 0, Text: "1 + 1 =", Answer: 2, X: 50, Y: 0},
			{ID: 1, Text: "2 + 2 =", Answer: 4, X: 50, Y: -10},
		},
	}

	DrawPlayfield(s, st)

	if !strings.Contains(s.Row(1), "1 + 1 = ?") {
		t.Errorf("row 1 = %q, expected the visible problem", s.Row(1))
	}
	if c := s.GetCell(16, 1); c.Rune != '1' || c.Color != core.ProblemColor(0) {
		t.Errorf("label start cell = %+v", c)
	}
	if strings.Contains(s.String(), "2 + 2") {
		t.Error("problems above the field must not be drawn")
	}
	if s.Get(1, 10) != '▔' {
		t.Errorf("floor line missing, got %q", s.Get(1, 10))
	}
}
