package config

import (
	_ "embed"

	"github.com/vovakirdan/math-blaster/internal/arith"
)

//go:embed defaults/blaster.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Settings: DefaultSettings(),
		Gameplay: DefaultGameplay(),
	}
}

// DefaultSettings returns the settings a fresh player starts with.
func DefaultSettings() GameSettings {
	return GameSettings{
		Digits:         1,
		Operations:     []arith.Operation{arith.OpAdd},
		InitialSpeed:   0.7,
		SpeedIncrement: 0.03,
	}
}

// DefaultGameplay returns the standard rules.
func DefaultGameplay() Gameplay {
	return Gameplay{
		Lives:           5,
		Floor:           600,
		SpawnIntervalMS: 2500,
		MaxAttempts:     5,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
