package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/math-blaster/internal/core"
	"github.com/vovakirdan/math-blaster/internal/game"
	"github.com/vovakirdan/math-blaster/internal/platform/tui"
	"github.com/vovakirdan/math-blaster/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start the game in the terminal.

Before a game:
  Enter/S      - Start
  Up/Down      - More or fewer digits per operand
  1-4          - Toggle addition, subtraction, multiplication, division
  N            - Change player name
  Q/Ctrl+C     - Quit

While playing:
  0-9, Enter   - Type and submit an answer
  Esc          - End the game
  Ctrl+C       - Quit

After game over:
  Enter/R      - Play again
  Q/Ctrl+C     - Quit

Examples:
  blaster play
  blaster play --digits 2
  blaster play --ops +,x --seed 42
  blaster play --config ./my-blaster.yaml --log ./blaster.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addSettingsFlags(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go nowhere unless --log is set
	logger, closeLog, err := openLog(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var names game.NameStore
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open preferences database: %v\n", err)
		// Continue without storage - the name is just not remembered
	} else {
		names = store
	}

	toasts := tui.NewToasts()
	session := game.NewSession(game.Options{
		Config:   cfg,
		Notifier: game.Notifiers{toasts, game.LogNotifier{Logger: logger}},
		Names:    names,
		Logger:   logger,
		Seed:     flagSeed,
	})

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runErr := tui.Run(session, toasts, logger, runtime)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
