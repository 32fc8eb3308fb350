package types

import "errors"

// Candidate errors. Each marks a postfix sequence the enumerator discards.
var (
	// ErrStackUnderflow is returned when an operator finds fewer than two
	// values on the stack.
	ErrStackUnderflow = errors.New("malformed stack")

	// ErrInexactDivision is returned for division by zero or a division that
	// leaves a remainder.
	ErrInexactDivision = errors.New("non-exact or zero division")

	// ErrIncompleteExpression is returned when the final stack does not hold
	// exactly one value.
	ErrIncompleteExpression = errors.New("incomplete or over-complete expression")

	// ErrOverflow is returned when an intermediate value does not fit in an
	// int64.
	ErrOverflow = errors.New("integer overflow")
)

// ErrInvariantViolation marks a bug in the enumerator, such as an Unset term
// reaching the evaluator. It is raised with panic, never returned.
var ErrInvariantViolation = errors.New("internal invariant violation")
