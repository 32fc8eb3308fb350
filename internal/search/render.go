package search

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/repunit/pkg/types"
)

// Render converts a postfix sequence into an infix string with the fewest
// parentheses that keep the expression tree intact. Fragments are joined
// without separators, e.g. "2-(22-222)".
//
// Render fails in the same structural cases as Evaluate but never checks
// division.
func Render(expr []types.Term) (string, error) {
	stack := make([][]string, 0, len(expr)/2+1)

	for i, term := range expr {
		switch term.Kind {
		case types.KindOperand:
			stack = append(stack, []string{strconv.FormatInt(term.Value, 10)})
		case types.KindOperator:
			if len(stack) < 2 {
				return "", types.ErrStackUnderflow
			}
			a, b := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]

			prec := term.Op.Precedence()
			// Equal precedence on the right needs parentheses: a-(b-c).
			if len(a) >= 2 && minPrecedence(a) < prec {
				a = []string{parenthesize(a)}
			}
			if len(b) >= 2 && minPrecedence(b) <= prec {
				b = []string{parenthesize(b)}
			}

			seq := make([]string, 0, len(a)+1+len(b))
			seq = append(seq, a...)
			seq = append(seq, term.Op.String())
			seq = append(seq, b...)
			stack = append(stack, seq)
		default:
			panic(fmt.Errorf("%w: unset term at position %d of %q",
				types.ErrInvariantViolation, i, types.FormatPostfix(expr)))
		}
	}

	if len(stack) != 1 {
		return "", types.ErrIncompleteExpression
	}
	return strings.Join(stack[0], ""), nil
}

// minPrecedence returns the weakest top-level operator of a fragment
// sequence. Operators sit at the odd indices.
func minPrecedence(seq []string) int {
	prec := types.PrecedenceAtom
	for i := 1; i < len(seq); i += 2 {
		prec = min(prec, types.Op(seq[i][0]).Precedence())
	}
	return prec
}

func parenthesize(seq []string) string {
	return "(" + strings.Join(seq, "") + ")"
}
