package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-blaster/internal/arith"
	"github.com/vovakirdan/math-blaster/internal/config"
)

var (
	// ErrInvalidTransition is returned when an action is not legal in the
	// current status.
	ErrInvalidTransition = errors.New("game: invalid transition")

	// ErrNotIdle is returned when editing settings or the name outside idle.
	ErrNotIdle = errors.New("game: only editable while idle")

	// ErrNoPlayerName is returned when starting without a player name.
	ErrNoPlayerName = errors.New("game: player name not set")

	// ErrNoOperations is returned when starting with no operation enabled.
	ErrNoOperations = errors.New("game: no operations selected")

	// ErrEmptyName is returned when setting a blank player name.
	ErrEmptyName = errors.New("game: empty player name")
)

// NameStore persists the player name. An absent value is "".
type NameStore interface {
	PlayerName() (string, error)
	SetPlayerName(name string) error
}

// GenerateFunc produces a problem; arith.Generate in production.
type GenerateFunc func(rng *rand.Rand, p arith.Params, id int) (arith.Problem, error)

// Options configures a new Session. Zero values fall back to defaults.
type Options struct {
	Config   config.Config
	Notifier Notifier
	Names    NameStore
	Logger   *log.Logger
	Seed     int64 // 0 means seed from the clock
	Generate GenerateFunc
}

// Handles are the task tokens of a started game.
type Handles struct {
	Loop  Token
	Spawn Token
}

// Snapshot is a copy of the session state for renderers.
type Snapshot struct {
	Status     Status
	Settings   config.GameSettings
	PlayerName string
	Score      int
	Lives      int
	MaxLives   int
	Speed      float64
	Floor      float64
	Problems   []arith.Problem
}

// Session is one player's game: settings, lifecycle and live problems.
// All methods are safe for concurrent use.
type Session struct {
	mu sync.Mutex

	settings config.GameSettings // Editable while idle
	active   config.GameSettings // Snapshot taken on start
	gameplay config.Gameplay

	notifier Notifier
	names    NameStore
	logger   *log.Logger
	rng      *rand.Rand
	generate GenerateFunc

	status   Status
	name     string
	score    int
	lives    int
	speed    float64
	problems []arith.Problem
	nextID   int

	loop    Task
	spawner Task

	outbox []Notice // Published after the lock is released
}

// NewSession creates an idle session. The player name is loaded from the
// name store; a read failure is logged and treated as no name.
func NewSession(opts Options) *Session {
	cfg := opts.Config
	if cfg.Gameplay == (config.Gameplay{}) {
		cfg.Gameplay = config.DefaultGameplay()
	}
	if cfg.Settings.Digits == 0 {
		cfg.Settings = config.DefaultSettings()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		settings: cfg.Settings.Clone(),
		gameplay: cfg.Gameplay,
		notifier: opts.Notifier,
		names:    opts.Names,
		logger:   opts.Logger,
		rng:      rand.New(rand.NewSource(seed)),
		generate: opts.Generate,
		lives:    cfg.Gameplay.Lives,
		speed:    cfg.Settings.InitialSpeed,
	}
	if s.notifier == nil {
		s.notifier = discardNotifier{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.generate == nil {
		s.generate = arith.Generate
	}

	if s.names != nil {
		name, err := s.names.PlayerName()
		if err != nil {
			s.logger.Warn("could not load player name", "error", err)
		}
		s.name = strings.TrimSpace(name)
	}

	return s
}

// unlock releases the mutex and then publishes queued notices, so notifiers
// never run while the session is locked.
func (s *Session) unlock() {
	out := s.outbox
	s.outbox = nil
	s.mu.Unlock()

	for _, n := range out {
		s.notifier.Notify(n)
	}
}

func (s *Session) notify(n Notice) {
	s.outbox = append(s.outbox, n)
}

// State returns a snapshot of the session.
func (s *Session) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Status:     s.status,
		Settings:   s.settings.Clone(),
		PlayerName: s.name,
		Score:      s.score,
		Lives:      s.lives,
		MaxLives:   s.gameplay.Lives,
		Speed:      s.speed,
		Floor:      s.gameplay.Floor,
		Problems:   append([]arith.Problem(nil), s.problems...),
	}
}

// Status returns the current lifecycle state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Gameplay returns the rules the session was created with.
func (s *Session) Gameplay() config.Gameplay {
	return s.gameplay
}

// PlayerName returns the current player name ("" if unset).
func (s *Session) PlayerName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// SetPlayerName trims and stores the player name. Only legal while idle.
func (s *Session) SetPlayerName(raw string) error {
	s.mu.Lock()
	defer s.unlock()

	if s.status != StatusIdle {
		return ErrNotIdle
	}

	name := strings.TrimSpace(raw)
	if name == "" {
		s.notify(Notice{Title: "Please enter a name", Severity: SeverityWarning, Duration: 2 * time.Second})
		return ErrEmptyName
	}

	s.name = name
	s.persistName(name)
	s.notify(Notice{Title: "Name set: " + name, Severity: SeveritySuccess, Duration: 1500 * time.Millisecond})
	return nil
}

// EditName clears the player name so it can be entered again and returns the
// previous value to prefill the editor. Only legal while idle.
func (s *Session) EditName() (string, error) {
	s.mu.Lock()
	defer s.unlock()

	if s.status != StatusIdle {
		return "", ErrNotIdle
	}

	prev := s.name
	s.name = ""
	s.persistName("")
	return prev, nil
}

// persistName writes through to the name store. Failures are logged only.
func (s *Session) persistName(name string) {
	if s.names == nil {
		return
	}
	if err := s.names.SetPlayerName(name); err != nil {
		s.logger.Warn("could not save player name", "error", err)
	}
}

// Settings returns the editable settings.
func (s *Session) Settings() config.GameSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Clone()
}

// SetSettings replaces the settings. Only legal while idle.
func (s *Session) SetSettings(settings config.GameSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusIdle {
		return ErrNotIdle
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	s.settings = settings.Clone()
	return nil
}

// Start moves idle to playing: it resets score, lives, problems, the id
// counter and speed, then starts the loop and scheduler tasks.
func (s *Session) Start() (Handles, error) {
	s.mu.Lock()
	defer s.unlock()

	if s.status != StatusIdle {
		return Handles{}, fmt.Errorf("%w: start from %s", ErrInvalidTransition, s.status)
	}
	if s.name == "" {
		s.notify(Notice{Title: "Please set player name first!", Severity: SeverityWarning, Duration: 3 * time.Second})
		return Handles{}, ErrNoPlayerName
	}
	if len(s.settings.Operations) == 0 {
		s.notify(Notice{Title: "Please select at least one operation!", Severity: SeverityWarning, Duration: 3 * time.Second})
		return Handles{}, ErrNoOperations
	}
	if err := s.settings.Validate(); err != nil {
		s.notify(Notice{Title: "Invalid settings", Description: err.Error(), Severity: SeverityWarning, Duration: 3 * time.Second})
		return Handles{}, err
	}

	s.active = s.settings.Clone()
	s.score = 0
	s.lives = s.gameplay.Lives
	s.problems = nil
	s.nextID = 0
	s.speed = s.active.InitialSpeed
	s.status = StatusPlaying

	loop, _ := s.loop.Start()
	spawn := s.spawner.Restart()

	s.logger.Info("game started",
		"player", s.name,
		"digits", s.active.Digits,
		"operations", fmt.Sprint(s.active.Operations),
	)
	s.notify(Notice{
		Title:       "Game started!",
		Description: fmt.Sprintf("Good luck, %s!", s.name),
		Severity:    SeverityInfo,
		Duration:    2 * time.Second,
	})

	return Handles{Loop: loop, Spawn: spawn}, nil
}

// End is the player giving up: playing moves to gameOver.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.unlock()

	if s.status != StatusPlaying {
		return fmt.Errorf("%w: end from %s", ErrInvalidTransition, s.status)
	}
	s.finish(Notice{
		Title:       "Game Ended",
		Description: fmt.Sprintf("Final Score: %d", s.score),
		Severity:    SeverityInfo,
		Duration:    3 * time.Second,
	})
	return nil
}

// Reset returns from gameOver to idle. Game state is left as is until the
// next Start.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusGameOver {
		return fmt.Errorf("%w: reset from %s", ErrInvalidTransition, s.status)
	}
	s.status = StatusIdle
	return nil
}

// Close stops both tasks. A game still in progress ends without a notice.
// Safe to call any number of times.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.unlock()

	if s.status == StatusPlaying {
		s.status = StatusGameOver
		s.logger.Info("game closed", "player", s.name, "score", s.score)
	}
	s.loop.Stop()
	s.spawner.Stop()
}

// finish stops the tasks and enters gameOver. Caller holds the lock.
func (s *Session) finish(n Notice) {
	s.loop.Stop()
	s.spawner.Stop()
	s.status = StatusGameOver
	s.logger.Info("game over", "player", s.name, "score", s.score, "reason", n.Title)
	s.notify(n)
}
