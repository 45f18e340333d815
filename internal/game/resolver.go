package game

import (
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/math-blaster/internal/arith"
)

// Outcome classifies a submitted answer.
type Outcome int

const (
	OutcomeIgnored Outcome = iota // Not playing, or blank input
	OutcomeInvalid                // Not a number
	OutcomeWrong                  // No live problem has this answer
	OutcomeCorrect                // One problem removed
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeWrong:
		return "wrong"
	case OutcomeCorrect:
		return "correct"
	default:
		return "unknown"
	}
}

// SubmitResult is returned by Session.Submit.
type SubmitResult struct {
	Outcome Outcome
	Problem arith.Problem // The removed problem when Outcome is OutcomeCorrect
}

// Matched reports whether a problem was removed.
func (r SubmitResult) Matched() bool {
	return r.Outcome == OutcomeCorrect
}

// Resolve removes the first problem whose answer equals value.
// The input slice is never modified; ok is false when nothing matched and
// remaining is then the input itself.
func Resolve(problems []arith.Problem, value int) (remaining []arith.Problem, matched arith.Problem, ok bool) {
	for i, p := range problems {
		if p.Answer != value {
			continue
		}
		remaining = make([]arith.Problem, 0, len(problems)-1)
		remaining = append(remaining, problems[:i]...)
		remaining = append(remaining, problems[i+1:]...)
		return remaining, p, true
	}
	return problems, arith.Problem{}, false
}

// Submit checks raw player input against the live problems.
// A match scores a point and raises the fall speed; the caller clears its
// input buffer when the result is Matched.
func (s *Session) Submit(raw string) SubmitResult {
	s.mu.Lock()
	defer s.unlock()

	input := strings.TrimSpace(raw)
	if s.status != StatusPlaying || input == "" {
		return SubmitResult{Outcome: OutcomeIgnored}
	}

	value, err := strconv.Atoi(input)
	if err != nil {
		s.notify(Notice{Title: "Please enter a number", Severity: SeverityWarning, Duration: 1500 * time.Millisecond})
		return SubmitResult{Outcome: OutcomeInvalid}
	}

	remaining, matched, ok := Resolve(s.problems, value)
	if !ok {
		s.notify(Notice{Title: "Try again!", Severity: SeverityWarning, Duration: time.Second})
		return SubmitResult{Outcome: OutcomeWrong}
	}

	s.problems = remaining
	s.score++
	s.speed += s.active.SpeedIncrement
	s.notify(Notice{Title: "Correct!", Severity: SeveritySuccess, Duration: time.Second})
	return SubmitResult{Outcome: OutcomeCorrect, Problem: matched}
}
