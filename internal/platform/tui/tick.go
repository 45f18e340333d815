// Package tui provides the Bubble Tea front end for the game.
// It maps keys to session actions, drives the session timers with tea.Tick
// and renders the playfield.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/math-blaster/internal/game"
)

// LoopTickMsg triggers one simulation step for the run identified by Token.
type LoopTickMsg struct {
	Token game.Token
}

// SpawnTickMsg triggers one scheduler tick for the run identified by Token.
type SpawnTickMsg struct {
	Token game.Token
}

// toastTickMsg expires old toasts while the game is not ticking.
type toastTickMsg time.Time

const toastRefresh = 250 * time.Millisecond

// loopTickCmd schedules the next simulation step at the given tick rate.
func loopTickCmd(tickRate int, tok game.Token) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return LoopTickMsg{Token: tok}
	})
}

// spawnTickCmd schedules the next scheduler tick.
func spawnTickCmd(interval time.Duration, tok game.Token) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return SpawnTickMsg{Token: tok}
	})
}

func toastTickCmd() tea.Cmd {
	return tea.Tick(toastRefresh, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}
