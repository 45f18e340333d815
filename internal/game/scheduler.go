package game

import (
	"github.com/vovakirdan/math-blaster/internal/arith"
)

// Spawn runs one scheduler tick for the run identified by tok: it generates a
// problem, retrying transient failures up to the configured attempts, and
// appends it to the live set. It returns true when the driver should schedule
// the next tick.
func (s *Session) Spawn(tok Token) bool {
	s.mu.Lock()
	defer s.unlock()

	if s.status != StatusPlaying || !s.spawner.Live(tok) {
		return false
	}

	params := s.active.Params()
	var lastErr error
	for attempt := 1; attempt <= s.gameplay.MaxAttempts; attempt++ {
		id := s.nextID
		s.nextID++

		p, err := s.generate(s.rng, params, id)
		if err == nil {
			s.problems = appendProblem(s.problems, p)
			return true
		}
		if !arith.IsRetryable(err) {
			s.logger.Error("problem generation failed", "id", id, "error", err)
			return true
		}
		lastErr = err
	}

	s.logger.Warn("failed to generate problem, skipping tick",
		"attempts", s.gameplay.MaxAttempts,
		"error", lastErr,
	)
	return true
}

// appendProblem returns a new slice with p appended.
func appendProblem(problems []arith.Problem, p arith.Problem) []arith.Problem {
	next := make([]arith.Problem, len(problems), len(problems)+1)
	copy(next, problems)
	return append(next, p)
}
