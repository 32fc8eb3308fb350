// Package verify re-evaluates rendered solutions with an independent
// expression engine (CEL) and reports entries whose value does not match
// their index.
package verify

import (
	"fmt"
	"math"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/operators"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
)

// Mismatch describes a solution entry that failed verification.
type Mismatch struct {
	Result     int    // Index of the entry.
	Expression string // Stored expression.
	Got        int64  // Value computed by CEL; zero when Err is set.
	Err        error  // Compile or evaluation error, if any.
}

func (m Mismatch) String() string {
	if m.Err != nil {
		return fmt.Sprintf("%d %s: %v", m.Result, m.Expression, m.Err)
	}
	return fmt.Sprintf("%d %s: evaluates to %d", m.Result, m.Expression, m.Got)
}

// Checker evaluates infix integer expressions with CEL.
type Checker struct {
	env *cel.Env
}

// NewChecker creates a Checker. The environment carries no standard
// library: it declares only int + - * / with checked overflow, and a
// division that leaves a remainder is an evaluation error rather than a
// truncation.
func NewChecker() (*Checker, error) {
	env, err := cel.NewCustomEnv(
		intOperator(operators.Add, "add_int64_exact", add),
		intOperator(operators.Subtract, "subtract_int64_exact", subtract),
		intOperator(operators.Multiply, "multiply_int64_exact", multiply),
		intOperator(operators.Divide, "divide_int64_exact", divide),
	)
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}
	return &Checker{env: env}, nil
}

// Eval compiles and evaluates expr and returns its integer value.
func (c *Checker) Eval(expr string) (int64, error) {
	ast, issues := c.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return 0, fmt.Errorf("CEL compilation error: %w", issues.Err())
	}

	program, err := c.env.Program(ast)
	if err != nil {
		return 0, fmt.Errorf("failed to create CEL program: %w", err)
	}

	out, _, err := program.Eval(map[string]any{})
	if err != nil {
		return 0, fmt.Errorf("CEL evaluation error: %w", err)
	}

	v, ok := out.Value().(int64)
	if !ok {
		return 0, fmt.Errorf("expression %q is not an integer: %T", expr, out.Value())
	}
	return v, nil
}

// CheckEntries evaluates every non-empty entry and returns those whose value
// differs from their index, in index order.
func (c *Checker) CheckEntries(entries []string) []Mismatch {
	var bad []Mismatch
	for r, expr := range entries {
		if expr == "" {
			continue
		}
		got, err := c.Eval(expr)
		if err != nil {
			bad = append(bad, Mismatch{Result: r, Expression: expr, Err: err})
			continue
		}
		if got != int64(r) {
			bad = append(bad, Mismatch{Result: r, Expression: expr, Got: got})
		}
	}
	return bad
}

// intOperator declares a binary int operator backed by fn.
func intOperator(name, overloadID string, fn func(a, b int64) (int64, error)) cel.EnvOption {
	return cel.Function(name,
		cel.Overload(overloadID, []*cel.Type{cel.IntType, cel.IntType}, cel.IntType,
			cel.BinaryBinding(func(lhs, rhs ref.Val) ref.Val {
				a, okA := lhs.(types.Int)
				b, okB := rhs.(types.Int)
				if !okA || !okB {
					return types.NewErr("%s: operands must be int", name)
				}
				v, err := fn(int64(a), int64(b))
				if err != nil {
					return types.NewErr("%v", err)
				}
				return types.Int(v)
			})))
}

func add(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("overflow in %d+%d", a, b)
	}
	return a + b, nil
}

func subtract(a, b int64) (int64, error) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, fmt.Errorf("overflow in %d-%d", a, b)
	}
	return a - b, nil
}

func multiply(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || c/b != a {
		return 0, fmt.Errorf("overflow in %d*%d", a, b)
	}
	return c, nil
}

func divide(a, b int64) (int64, error) {
	if b == 0 {
		return 0, fmt.Errorf("division by zero in %d/%d", a, b)
	}
	if a%b != 0 {
		return 0, fmt.Errorf("inexact division %d/%d", a, b)
	}
	if a == math.MinInt64 && b == -1 {
		return 0, fmt.Errorf("overflow in %d/%d", a, b)
	}
	return a / b, nil
}
