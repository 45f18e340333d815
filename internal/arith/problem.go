// Package arith generates the arithmetic problems that fall down the play area.
// It has no dependencies beyond the standard library so the generator can be
// driven from tests with a seeded RNG.
package arith

import (
	"fmt"
	"strings"
)

// StartY is the vertical position new problems spawn at, above the visible area.
const StartY = -50.0

// Operation is one of the four supported arithmetic operations.
type Operation string

const (
	OpAdd Operation = "+"
	OpSub Operation = "-"
	OpMul Operation = "*"
	OpDiv Operation = "/"
)

// OperationInfo describes an operation for settings editors.
type OperationInfo struct {
	Op    Operation
	Label string
}

// Operations returns the supported operations in display order.
func Operations() []OperationInfo {
	return []OperationInfo{
		{Op: OpAdd, Label: "Addition (+)"},
		{Op: OpSub, Label: "Subtraction (-)"},
		{Op: OpMul, Label: "Multiplication (x)"},
		{Op: OpDiv, Label: "Division (÷)"},
	}
}

// Symbol returns the symbol used when rendering a problem.
func (o Operation) Symbol() string {
	switch o {
	case OpMul:
		return "x"
	case OpDiv:
		return "÷"
	default:
		return string(o)
	}
}

// Valid reports whether o is a supported operation.
func (o Operation) Valid() bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

// ParseOperation converts a symbol or name into an Operation.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+", "add", "plus":
		return OpAdd, nil
	case "-", "sub", "minus":
		return OpSub, nil
	case "*", "x", "mul", "times":
		return OpMul, nil
	case "/", "÷", "div":
		return OpDiv, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

// ParseOperations parses a comma separated list such as "+,-,x".
// Duplicates are dropped while keeping the first occurrence order.
func ParseOperations(list string) ([]Operation, error) {
	var ops []Operation
	seen := make(map[Operation]bool)
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		op, err := ParseOperation(part)
		if err != nil {
			return nil, err
		}
		if seen[op] {
			continue
		}
		seen[op] = true
		ops = append(ops, op)
	}
	return ops, nil
}

// Problem is one falling expression.
type Problem struct {
	ID     int     // Unique within a game session, never reused
	Text   string  // Rendered expression, e.g. "5 + 3 ="
	Answer int     // Expected answer
	X      float64 // Horizontal position in percent, fixed at creation
	Y      float64 // Distance from the top, advanced every tick
}
