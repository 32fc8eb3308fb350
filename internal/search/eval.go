package search

import (
	"fmt"
	"math"

	"github.com/mesh-intelligence/repunit/pkg/types"
)

// Evaluate computes the value of a postfix sequence. It returns
// ErrStackUnderflow, ErrInexactDivision, ErrOverflow, or
// ErrIncompleteExpression for sequences that do not reduce to one integer.
// An Unset term panics with ErrInvariantViolation.
func Evaluate(expr []types.Term) (int64, error) {
	// Sequences up to MaxExprLen stay on the stack; longer ones grow.
	var buf [types.MaxExprLen]int64
	stack := buf[:0]

	for i, term := range expr {
		switch term.Kind {
		case types.KindOperand:
			stack = append(stack, term.Value)
		case types.KindOperator:
			n := len(stack)
			if n < 2 {
				return 0, types.ErrStackUnderflow
			}
			a, b := stack[n-2], stack[n-1]

			res, err := apply(term.Op, a, b)
			if err != nil {
				return 0, err
			}
			stack = append(stack[:n-2], res)
		default:
			panic(fmt.Errorf("%w: unset term at position %d of %q",
				types.ErrInvariantViolation, i, types.FormatPostfix(expr)))
		}
	}

	if len(stack) != 1 {
		return 0, types.ErrIncompleteExpression
	}
	return stack[0], nil
}

// apply computes a op b with overflow and exact-division checks.
func apply(op types.Op, a, b int64) (int64, error) {
	switch op {
	case types.OpAdd:
		if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
			return 0, types.ErrOverflow
		}
		return a + b, nil
	case types.OpSub:
		if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
			return 0, types.ErrOverflow
		}
		return a - b, nil
	case types.OpMul:
		if a == 0 || b == 0 {
			return 0, nil
		}
		if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
			return 0, types.ErrOverflow
		}
		c := a * b
		if c/b != a {
			return 0, types.ErrOverflow
		}
		return c, nil
	case types.OpDiv:
		if b == 0 || a%b != 0 {
			return 0, types.ErrInexactDivision
		}
		if a == math.MinInt64 && b == -1 {
			return 0, types.ErrOverflow
		}
		return a / b, nil
	default:
		panic(fmt.Errorf("%w: unknown operator %q", types.ErrInvariantViolation, op))
	}
}
