package arith

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrNoOperations is returned when the parameters enable no operation.
	ErrNoOperations = errors.New("arith: no operations enabled")

	// ErrInvalidDigits is returned for a digit count below one.
	ErrInvalidDigits = errors.New("arith: digits must be at least 1")

	// ErrUnknownOperation means an operation outside the supported set reached
	// the generator. Settings validation should make this impossible.
	ErrUnknownOperation = errors.New("arith: unknown operation")

	// ErrDividendTooLarge is a transient failure: the division draw produced a
	// dividend with too many digits. Drawing again usually succeeds.
	ErrDividendTooLarge = errors.New("arith: dividend too large")
)

// Params selects what the generator draws.
type Params struct {
	Digits     int
	Operations []Operation
}

// IsRetryable reports whether a Generate error can be cured by drawing again.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrDividendTooLarge)
}

// Generate produces one problem with the given id.
// The horizontal position is drawn from [10, 90) and the vertical position
// starts at StartY.
func Generate(rng *rand.Rand, p Params, id int) (Problem, error) {
	if len(p.Operations) == 0 {
		return Problem{}, ErrNoOperations
	}
	if p.Digits < 1 {
		return Problem{}, fmt.Errorf("%w: got %d", ErrInvalidDigits, p.Digits)
	}

	op := p.Operations[rng.Intn(len(p.Operations))]
	a := randDigits(rng, p.Digits)
	b := randDigits(rng, p.Digits)

	var answer int
	switch op {
	case OpAdd:
		answer = a + b
	case OpSub:
		if a < b {
			a, b = b, a
		}
		answer = a - b
	case OpMul:
		answer = a * b
	case OpDiv:
		answer = randDigits(rng, max(p.Digits-1, 1))
		if answer == 0 {
			answer = 1
		}
		b = randDigits(rng, p.Digits)
		if b == 0 {
			b = 1
		}
		a = answer * b
		if a >= pow10(p.Digits+1) {
			return Problem{}, fmt.Errorf("%w: %d ÷ %d", ErrDividendTooLarge, a, b)
		}
	default:
		return Problem{}, fmt.Errorf("%w: %q", ErrUnknownOperation, string(op))
	}

	return Problem{
		ID:     id,
		Text:   fmt.Sprintf("%d %s %d =", a, op.Symbol(), b),
		Answer: answer,
		X:      rng.Float64()*80 + 10,
		Y:      StartY,
	}, nil
}

// DigitRange returns the inclusive operand range for a digit count.
// A single digit yields [1, 9]; zero is never drawn.
func DigitRange(digits int) (lo, hi int) {
	return pow10(digits - 1), pow10(digits) - 1
}

// randDigits draws uniformly from DigitRange(digits).
func randDigits(rng *rand.Rand, digits int) int {
	lo, hi := DigitRange(digits)
	return rng.Intn(hi-lo+1) + lo
}

func pow10(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}
