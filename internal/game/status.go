// Package game implements the falling-problem drill: the state machine, the
// simulation loop, the problem scheduler and the answer resolver.
//
// A Session owns all mutable game state behind a mutex. Periodic work is
// driven from outside: a driver (the Bubble Tea model or the headless Driver)
// schedules ticks carrying Task tokens and calls Session.Tick and
// Session.Spawn. Ticks holding a stale token are ignored, which is how
// stopping a task guarantees no further ticks run.
package game

// Status is the lifecycle state of a session.
type Status int

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusGameOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}
