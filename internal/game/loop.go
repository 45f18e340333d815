package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/math-blaster/internal/arith"
)

// Tick runs one simulation step for the loop run identified by tok.
// It returns true when the driver should schedule the next tick.
func (s *Session) Tick(tok Token) bool {
	s.mu.Lock()
	defer s.unlock()

	if s.status != StatusPlaying || !s.loop.Live(tok) {
		return false
	}

	kept, dropped := advance(s.problems, s.speed, s.gameplay.Floor)
	if dropped > 0 {
		s.lives = max(0, s.lives-1)
	}
	s.problems = kept

	if s.lives <= 0 {
		s.finish(Notice{
			Title:       "Game Over!",
			Description: fmt.Sprintf("Final Score: %d", s.score),
			Severity:    SeverityError,
			Duration:    5 * time.Second,
		})
		return false
	}
	return true
}

// advance moves every problem down by speed and splits off those that reached
// the floor. The input slice is left untouched.
func advance(problems []arith.Problem, speed, floor float64) (kept []arith.Problem, dropped int) {
	kept = make([]arith.Problem, 0, len(problems))
	for _, p := range problems {
		p.Y += speed
		if p.Y < floor {
			kept = append(kept, p)
			continue
		}
		dropped++
	}
	return kept, dropped
}
