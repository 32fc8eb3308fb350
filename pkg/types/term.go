package types

import "strconv"

// Kind discriminates the variants of a Term.
type Kind uint8

// Term kinds. The zero value is KindUnset so freshly allocated buffers hold
// Unset terms until the generator assigns them.
const (
	KindUnset Kind = iota
	KindOperand
	KindOperator
)

// Op is one of the four basic binary operators.
type Op byte

// Supported operators.
const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
)

// PrecedenceAtom is the precedence of a bare operand. It is higher than any
// operator so an operand never needs its own parentheses.
const PrecedenceAtom = 99

// Precedence returns the binding strength of the operator: 2 for * and /,
// 1 for + and -.
func (o Op) Precedence() int {
	switch o {
	case OpMul, OpDiv:
		return 2
	case OpAdd, OpSub:
		return 1
	default:
		return PrecedenceAtom
	}
}

// Valid reports whether o is one of the supported operators.
func (o Op) Valid() bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}
	return false
}

func (o Op) String() string {
	return string(rune(o))
}

// Term is one position of a postfix expression: an operand constant, an
// operator, or the Unset placeholder.
type Term struct {
	Kind  Kind
	Value int64 // Set for KindOperand.
	Op    Op    // Set for KindOperator.
}

// Operand returns an operand term holding v.
func Operand(v int64) Term {
	return Term{Kind: KindOperand, Value: v}
}

// Operator returns an operator term for op.
func Operator(op Op) Term {
	return Term{Kind: KindOperator, Op: op}
}

// IsOperand reports whether t is an operand.
func (t Term) IsOperand() bool { return t.Kind == KindOperand }

// IsOperator reports whether t is an operator.
func (t Term) IsOperator() bool { return t.Kind == KindOperator }

// IsUnset reports whether t is the placeholder.
func (t Term) IsUnset() bool { return t.Kind == KindUnset }

func (t Term) String() string {
	switch t.Kind {
	case KindOperand:
		return strconv.FormatInt(t.Value, 10)
	case KindOperator:
		return t.Op.String()
	default:
		return "(empty)"
	}
}

// FormatPostfix renders a term sequence space-separated, for diagnostics.
func FormatPostfix(expr []Term) string {
	buf := make([]byte, 0, len(expr)*3)
	for i, t := range expr {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, t.String()...)
	}
	return string(buf)
}
