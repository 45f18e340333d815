package tui

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-blaster/internal/config"
	"github.com/vovakirdan/math-blaster/internal/core"
	"github.com/vovakirdan/math-blaster/internal/game"
)

// Rows used around the playfield: status line, blank, answer line, help.
const chromeRows = 5

// Model is the Bubble Tea model for a game session.
// The session owns all game state; the model only keeps UI state and the
// task tokens of the running game.
type Model struct {
	session  *game.Session
	toasts   *Toasts
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	input    textinput.Model
	screen   *core.Screen
	config   core.RuntimeConfig
	handles  game.Handles
	toasting bool // A toast refresh tick is pending
	quitting bool
}

// NewModel creates the model. toasts must be the notifier the session was
// created with, or nil if notices are not shown.
func NewModel(session *game.Session, toasts *Toasts, logger *log.Logger, cfg core.RuntimeConfig) Model {
	cfg = cfg.Normalize()
	if toasts == nil {
		toasts = NewToasts()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	in := textinput.New()
	in.CharLimit = 32
	in.Width = 24

	m := Model{
		session: session,
		toasts:  toasts,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		input:   in,
		screen:  core.NewScreen(cfg.ScreenW, max(3, cfg.ScreenH-chromeRows)),
		config:  cfg,
	}
	m.help.Width = cfg.ScreenW
	m.prepareInput()
	return m
}

// Init starts the cursor blink when a text field is focused.
func (m Model) Init() tea.Cmd {
	if m.input.Focused() {
		return textinput.Blink
	}
	return nil
}

// current returns the active screen.
func (m Model) current() Screen {
	return ScreenFor(m.session.Status(), m.session.PlayerName())
}

// prepareInput focuses and labels the text field for the active screen.
func (m *Model) prepareInput() {
	switch m.current() {
	case ScreenNaming:
		m.input.Prompt = "Name: "
		m.input.Placeholder = "your name"
		m.input.CharLimit = 32
		m.input.Focus()
	case ScreenPlaying:
		m.input.Prompt = "Answer: "
		m.input.Placeholder = "type and press enter"
		m.input.CharLimit = 8
		m.input.Reset()
		m.input.Focus()
	default:
		m.input.Blur()
		m.input.Reset()
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(3, msg.Height-chromeRows))
		m.help.Width = msg.Width

	case LoopTickMsg:
		if m.session.Tick(msg.Token) {
			cmd = loopTickCmd(m.config.TickRate, msg.Token)
		} else if m.session.Status() == game.StatusGameOver {
			m.prepareInput()
		}

	case SpawnTickMsg:
		if m.session.Spawn(msg.Token) {
			cmd = spawnTickCmd(m.session.Gameplay().SpawnInterval(), msg.Token)
		}

	case toastTickMsg:
		m.toasting = false

	default:
		if m.input.Focused() {
			m.input, cmd = m.input.Update(msg)
		}
	}

	if m.quitting {
		return m, cmd
	}
	return m.scheduleToasts(cmd)
}

// scheduleToasts keeps a refresh tick running while toasts are visible so
// they disappear even when nothing else redraws.
func (m Model) scheduleToasts(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.toasting || m.toasts.Len() == 0 {
		return m, cmd
	}
	m.toasting = true
	return m, tea.Batch(cmd, toastTickCmd())
}

// handleKey processes keyboard input for the active screen.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	screen := m.current()
	action := m.keys.MapKey(msg, screen)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.session.Close()
		return m, tea.Quit

	case core.ActionSubmit:
		return m.submit(screen)

	case core.ActionStart:
		return m.start()

	case core.ActionEnd:
		if err := m.session.End(); err != nil {
			m.logger.Debug("end ignored", "error", err)
		}
		m.prepareInput()
		return m, nil

	case core.ActionPlayAgain:
		if err := m.session.Reset(); err != nil {
			m.logger.Debug("reset ignored", "error", err)
		}
		m.prepareInput()
		return m, nil

	case core.ActionEditName:
		prev, err := m.session.EditName()
		if err != nil {
			m.logger.Debug("edit name ignored", "error", err)
			return m, nil
		}
		m.prepareInput()
		m.input.SetValue(prev)
		m.input.CursorEnd()
		return m, textinput.Blink

	case core.ActionDigitsUp, core.ActionDigitsDown:
		settings := m.session.Settings()
		delta := 1
		if action == core.ActionDigitsDown {
			delta = -1
		}
		m.applySettings(settings.WithDigits(settings.Digits + delta))
		return m, nil
	}

	if op, ok := toggleOperation(action); ok {
		m.applySettings(m.session.Settings().ToggleOperation(op))
		return m, nil
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) applySettings(s config.GameSettings) {
	if err := m.session.SetSettings(s); err != nil {
		m.logger.Warn("settings rejected", "error", err)
	}
}

// submit sends the text field to the session: the name while naming, an
// answer while playing. A correct answer clears the field.
func (m Model) submit(screen Screen) (Model, tea.Cmd) {
	switch screen {
	case ScreenNaming:
		if err := m.session.SetPlayerName(m.input.Value()); err != nil {
			if !errors.Is(err, game.ErrEmptyName) {
				m.logger.Warn("could not set name", "error", err)
			}
			return m, nil
		}
		m.prepareInput()

	case ScreenPlaying:
		res := m.session.Submit(m.input.Value())
		if res.Matched() {
			m.input.Reset()
		}
	}
	return m, nil
}

// start begins a game and schedules the first tick of each task.
func (m Model) start() (Model, tea.Cmd) {
	h, err := m.session.Start()
	if err != nil {
		m.logger.Debug("start refused", "error", err)
		return m, nil
	}
	m.handles = h
	m.prepareInput()
	return m, tea.Batch(
		loopTickCmd(m.config.TickRate, h.Loop),
		spawnTickCmd(m.session.Gameplay().SpawnInterval(), h.Spawn),
		textinput.Blink,
	)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.session.State()
	var body string

	switch ScreenFor(st.Status, st.PlayerName) {
	case ScreenNaming:
		body = panelStyle.Render(titleStyle.Render("Welcome to Math Blaster") +
			"\n\n" + "Enter your name to begin.\n\n" + m.input.View())
		body = m.center(body)

	case ScreenSetup:
		body = m.center(renderSettings(st))

	case ScreenPlaying:
		DrawPlayfield(m.screen, st)
		body = RenderScreen(m.screen) + "\n" + m.input.View()

	case ScreenGameOver:
		DrawPlayfield(m.screen, st)
		over := panelStyle.Render(titleStyle.Render("GAME OVER") + "\n\n" +
			"Final score: " + titleStyle.Render(strconv.Itoa(st.Score)))
		body = RenderScreen(m.screen) + "\n" + m.center(over)
	}

	var b strings.Builder
	b.WriteString(renderStatus(st))
	b.WriteString("\n\n")
	b.WriteString(body)
	if toasts := renderToasts(m.toasts.Active(), m.config.ScreenW); toasts != "" {
		b.WriteString("\n")
		b.WriteString(toasts)
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(screenHelp{keys: m.keys, screen: ScreenFor(st.Status, st.PlayerName)})))
	return b.String()
}

func (m Model) center(s string) string {
	return lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, s)
}

// Run starts the Bubble Tea program for the session and blocks until the
// player quits. The session is closed on return.
func Run(session *game.Session, toasts *Toasts, logger *log.Logger, cfg core.RuntimeConfig) error {
	defer session.Close()

	model := NewModel(session, toasts, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
