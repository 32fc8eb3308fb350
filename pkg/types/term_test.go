package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermClassification(t *testing.T) {
	var zero Term
	assert.True(t, zero.IsUnset(), "zero value must be Unset")
	assert.False(t, zero.IsOperand())
	assert.False(t, zero.IsOperator())

	n := Operand(22)
	assert.True(t, n.IsOperand())
	assert.Equal(t, "22", n.String())

	op := Operator(OpDiv)
	assert.True(t, op.IsOperator())
	assert.Equal(t, "/", op.String())

	assert.Equal(t, "(empty)", zero.String())
}

func TestOpPrecedence(t *testing.T) {
	assert.Equal(t, 2, OpMul.Precedence())
	assert.Equal(t, 2, OpDiv.Precedence())
	assert.Equal(t, 1, OpAdd.Precedence())
	assert.Equal(t, 1, OpSub.Precedence())
	assert.Greater(t, PrecedenceAtom, OpMul.Precedence())
}

func TestFormatPostfix(t *testing.T) {
	expr := []Term{Operand(2), Operand(22), Operator(OpSub), {}}
	assert.Equal(t, "2 22 - (empty)", FormatPostfix(expr))
	assert.Equal(t, "", FormatPostfix(nil))
}

func TestAlphabetTermsOrder(t *testing.T) {
	terms := DefaultAlphabet().Terms()
	require.Len(t, terms, 8)
	assert.Equal(t, []Term{
		Operand(2), Operand(22), Operand(222), Operand(2222),
		Operator(OpAdd), Operator(OpSub), Operator(OpMul), Operator(OpDiv),
	}, terms)
}

func TestRepunits(t *testing.T) {
	assert.Equal(t, []int64{2, 22, 222, 2222}, Repunits(2, 4))
	assert.Equal(t, []int64{7}, Repunits(7, 1))
	assert.Empty(t, Repunits(1, 0))
}

func TestParseOperators(t *testing.T) {
	ops, err := ParseOperators([]string{"+", "-", "*", "/"})
	require.NoError(t, err)
	assert.Equal(t, []Op{OpAdd, OpSub, OpMul, OpDiv}, ops)

	_, err = ParseOperators([]string{"^"})
	assert.ErrorIs(t, err, ErrOperatorUnknown)

	_, err = ParseOperators([]string{"++"})
	assert.ErrorIs(t, err, ErrOperatorUnknown)
}
