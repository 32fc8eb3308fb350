package types

// Search bounds.
const (
	// MaxResult is the largest result recorded in a solution table. Results
	// are kept for the closed range [0, MaxResult].
	MaxResult = 1000

	// MaxExprLen bounds the length of a postfix expression.
	MaxExprLen = 50

	// DefaultRounds is the number of rounds run when none is configured.
	DefaultRounds = 6
)

// Alphabet is the fixed vocabulary the enumerator draws from at every
// position: operand constants and operators.
type Alphabet struct {
	Operands  []int64
	Operators []Op
}

// DefaultAlphabet returns the repunits of the digit 2 (one to four digits)
// with the four basic operators.
func DefaultAlphabet() Alphabet {
	return Alphabet{
		Operands:  []int64{2, 22, 222, 2222},
		Operators: []Op{OpAdd, OpSub, OpMul, OpDiv},
	}
}

// Repunits returns the constants formed by repeating digit 1 to count times,
// e.g. Repunits(2, 4) is 2, 22, 222, 2222.
func Repunits(digit int64, count int) []int64 {
	out := make([]int64, 0, count)
	var v int64
	for i := 0; i < count; i++ {
		v = v*10 + digit
		out = append(out, v)
	}
	return out
}

// Terms returns the alphabet in search order: operands in listed order,
// then operators in listed order.
func (a Alphabet) Terms() []Term {
	terms := make([]Term, 0, len(a.Operands)+len(a.Operators))
	for _, v := range a.Operands {
		terms = append(terms, Operand(v))
	}
	for _, op := range a.Operators {
		terms = append(terms, Operator(op))
	}
	return terms
}

// Validate checks that the alphabet has at least one non-negative operand
// and at least one supported operator.
func (a Alphabet) Validate() error {
	if len(a.Operands) == 0 {
		return ErrOperandsEmpty
	}
	for _, v := range a.Operands {
		if v < 0 {
			return ErrOperandNegative
		}
	}
	if len(a.Operators) == 0 {
		return ErrOperatorsEmpty
	}
	for _, op := range a.Operators {
		if !op.Valid() {
			return ErrOperatorUnknown
		}
	}
	return nil
}

// ParseOperators converts operator symbols such as "+" into Ops.
// Returns ErrOperatorUnknown for anything else.
func ParseOperators(symbols []string) ([]Op, error) {
	ops := make([]Op, 0, len(symbols))
	for _, s := range symbols {
		if len(s) != 1 || !Op(s[0]).Valid() {
			return nil, ErrOperatorUnknown
		}
		ops = append(ops, Op(s[0]))
	}
	return ops, nil
}
