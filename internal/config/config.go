// Package config provides YAML-based configuration for the game: the
// player-editable settings and the fixed gameplay rules.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/math-blaster/internal/arith"
)

// Bounds for the digits editor.
const (
	MinDigits = 1
	MaxDigits = 3
)

var (
	// ErrInvalidSettings wraps every settings validation failure.
	ErrInvalidSettings = errors.New("config: invalid settings")

	// ErrInvalidGameplay wraps every gameplay validation failure.
	ErrInvalidGameplay = errors.New("config: invalid gameplay")
)

// Config is the full file layout.
type Config struct {
	Settings GameSettings `yaml:"settings"`
	Gameplay Gameplay     `yaml:"gameplay"`
}

// GameSettings are the values a player may edit while idle.
type GameSettings struct {
	Digits         int               `yaml:"digits"`          // Operand digit count
	Operations     []arith.Operation `yaml:"operations"`      // Enabled operations, non-empty to play
	InitialSpeed   float64           `yaml:"initial_speed"`   // Distance per tick at game start
	SpeedIncrement float64           `yaml:"speed_increment"` // Added to speed on every correct answer
}

// Gameplay holds the rules that are not editable in game.
type Gameplay struct {
	Lives           int     `yaml:"lives"`             // Lives at game start
	Floor           float64 `yaml:"floor"`             // Vertical position at which a problem is missed
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"` // Problem generation period
	MaxAttempts     int     `yaml:"max_attempts"`      // Generation attempts per spawn tick
}

// SpawnInterval returns the generation period as a duration.
func (g Gameplay) SpawnInterval() time.Duration {
	return time.Duration(g.SpawnIntervalMS) * time.Millisecond
}

// Params converts the settings into generator parameters.
func (s GameSettings) Params() arith.Params {
	return arith.Params{
		Digits:     s.Digits,
		Operations: append([]arith.Operation(nil), s.Operations...),
	}
}

// Clone returns a copy that shares no memory with s.
func (s GameSettings) Clone() GameSettings {
	s.Operations = append([]arith.Operation(nil), s.Operations...)
	return s
}

// HasOperation reports whether op is enabled.
func (s GameSettings) HasOperation(op arith.Operation) bool {
	for _, o := range s.Operations {
		if o == op {
			return true
		}
	}
	return false
}

// ToggleOperation enables or disables op, keeping the display order of
// arith.Operations for the result.
func (s GameSettings) ToggleOperation(op arith.Operation) GameSettings {
	enabled := !s.HasOperation(op)
	ops := make([]arith.Operation, 0, len(s.Operations)+1)
	for _, info := range arith.Operations() {
		on := s.HasOperation(info.Op)
		if info.Op == op {
			on = enabled
		}
		if on {
			ops = append(ops, info.Op)
		}
	}
	s.Operations = ops
	return s
}

// WithDigits returns a copy with digits clamped to [MinDigits, MaxDigits].
func (s GameSettings) WithDigits(digits int) GameSettings {
	s.Digits = max(MinDigits, min(MaxDigits, digits))
	return s
}

// Validate checks the settings. An empty operation set is allowed here since
// the editor may pass through it; starting a game checks it separately.
func (s GameSettings) Validate() error {
	if s.Digits < MinDigits || s.Digits > MaxDigits {
		return fmt.Errorf("%w: digits %d outside [%d, %d]", ErrInvalidSettings, s.Digits, MinDigits, MaxDigits)
	}
	for _, op := range s.Operations {
		if !op.Valid() {
			return fmt.Errorf("%w: unknown operation %q", ErrInvalidSettings, string(op))
		}
	}
	if s.InitialSpeed <= 0 {
		return fmt.Errorf("%w: initial_speed must be positive", ErrInvalidSettings)
	}
	if s.SpeedIncrement < 0 {
		return fmt.Errorf("%w: speed_increment must not be negative", ErrInvalidSettings)
	}
	return nil
}

// Validate checks the gameplay rules.
func (g Gameplay) Validate() error {
	switch {
	case g.Lives < 1:
		return fmt.Errorf("%w: lives must be at least 1", ErrInvalidGameplay)
	case g.Floor <= 0:
		return fmt.Errorf("%w: floor must be positive", ErrInvalidGameplay)
	case g.SpawnIntervalMS <= 0:
		return fmt.Errorf("%w: spawn_interval_ms must be positive", ErrInvalidGameplay)
	case g.MaxAttempts < 1:
		return fmt.Errorf("%w: max_attempts must be at least 1", ErrInvalidGameplay)
	}
	return nil
}

// Validate checks both sections.
func (c Config) Validate() error {
	if err := c.Settings.Validate(); err != nil {
		return err
	}
	return c.Gameplay.Validate()
}
