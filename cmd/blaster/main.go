// blaster is a falling-problems arithmetic drill for the terminal.
//
// Usage:
//
//	blaster play              - Play interactively
//	blaster bot               - Let a bot play headless and log the game
//	blaster name [set|clear]  - Show or change the saved player name
//	blaster config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>     - Set simulation tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible problems
//	--db <path>      - Set database path (default: ~/.blaster/blaster.db)
//	--config <path>  - Use a custom config YAML
//	--log <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-blaster/internal/arith"
	"github.com/vovakirdan/math-blaster/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string

	// Settings overrides shared by play and bot
	flagDigits int
	flagOps    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blaster",
	Short: "Math Blaster - solve falling problems before they land",
	Long: `Math Blaster drops arithmetic problems down the screen. Type the answer
and press enter to blast a problem before it reaches the floor. Every problem
that lands costs a life.

Available commands:
  play     - Play a game
  bot      - Run a headless game played by a bot
  name     - Show, set or clear the saved player name
  config   - Print the default configuration

Examples:
  blaster play
  blaster play --digits 2 --ops +,-,x
  blaster bot --duration 20s --accuracy 0.8
  blaster name set Ada`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blaster/blaster.db", "Path to preferences database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(botCmd)
	rootCmd.AddCommand(nameCmd)
	rootCmd.AddCommand(configCmd)
}

// addSettingsFlags registers the settings overrides on a command.
func addSettingsFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagDigits, "digits", 0, "Digits per operand (1-3), overrides config")
	cmd.Flags().StringVar(&flagOps, "ops", "", "Comma separated operations (+,-,x,/), overrides config")
}

// loadConfig loads the configuration and applies command line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("digits") {
		cfg.Settings.Digits = flagDigits
	}
	if flagOps != "" {
		ops, err := arith.ParseOperations(flagOps)
		if err != nil {
			return cfg, err
		}
		cfg.Settings.Operations = ops
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blaster",
	})
}

// openLog returns a logger for --log, or fallback when no file was given.
// The returned close function is always safe to call.
func openLog(fallback io.Writer) (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return newLogger(fallback), func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := newLogger(f)
	logger.SetLevel(log.DebugLevel)
	return logger, func() { f.Close() }, nil
}
